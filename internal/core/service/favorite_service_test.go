package service

import (
	"context"
	"errors"
	"testing"

	"github.com/tradepost/marketplace-system/internal/core/domain"
)

func TestFavoriteService_AddTwice_Conflict(t *testing.T) {
	users := newStubUserRepo()
	products := newStubProductRepo()
	svc := NewFavoriteService(users, products, discardLogger)

	alice := seedUser(users, "Alice", "alice@example.com", false)
	p := seedProduct(products, "seller", "Lamp")
	actor := domain.Actor{ID: alice.ID}

	if err := svc.Add(context.Background(), actor, p.ID); err != nil {
		t.Fatalf("first add failed: %v", err)
	}
	if err := svc.Add(context.Background(), actor, p.ID); !errors.Is(err, domain.ErrDuplicateFavorite) {
		t.Fatalf("second add must conflict, got %v", err)
	}

	list, err := svc.List(context.Background(), actor)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(list) != 1 {
		t.Fatalf("expected 1 favorite, got %d", len(list))
	}
}

func TestFavoriteService_Add_ProductMustExist(t *testing.T) {
	users := newStubUserRepo()
	products := newStubProductRepo()
	svc := NewFavoriteService(users, products, discardLogger)

	alice := seedUser(users, "Alice", "alice@example.com", false)
	err := svc.Add(context.Background(), domain.Actor{ID: alice.ID}, "missing")
	if !errors.Is(err, domain.ErrProductNotFound) {
		t.Fatalf("expected ErrProductNotFound, got %v", err)
	}
}

func TestFavoriteService_Remove_NonMemberNoOp(t *testing.T) {
	users := newStubUserRepo()
	products := newStubProductRepo()
	svc := NewFavoriteService(users, products, discardLogger)

	alice := seedUser(users, "Alice", "alice@example.com", false)
	p := seedProduct(products, "seller", "Lamp")
	actor := domain.Actor{ID: alice.ID}

	// removing something never added is a harmless no-op
	if err := svc.Remove(context.Background(), actor, p.ID); err != nil {
		t.Fatalf("no-op remove failed: %v", err)
	}

	if err := svc.Add(context.Background(), actor, p.ID); err != nil {
		t.Fatalf("add failed: %v", err)
	}
	if err := svc.Remove(context.Background(), actor, p.ID); err != nil {
		t.Fatalf("remove failed: %v", err)
	}
	list, _ := svc.List(context.Background(), actor)
	if len(list) != 0 {
		t.Fatalf("expected empty favorites, got %d", len(list))
	}
}

func TestFavoriteService_List_PreservesInsertionOrder(t *testing.T) {
	users := newStubUserRepo()
	products := newStubProductRepo()
	svc := NewFavoriteService(users, products, discardLogger)

	alice := seedUser(users, "Alice", "alice@example.com", false)
	actor := domain.Actor{ID: alice.ID}
	first := seedProduct(products, "seller", "First")
	second := seedProduct(products, "seller", "Second")
	third := seedProduct(products, "seller", "Third")

	for _, p := range []string{second.ID, third.ID, first.ID} {
		if err := svc.Add(context.Background(), actor, p); err != nil {
			t.Fatalf("add failed: %v", err)
		}
	}

	list, _ := svc.List(context.Background(), actor)
	want := []string{"Second", "Third", "First"}
	if len(list) != len(want) {
		t.Fatalf("expected %d favorites, got %d", len(want), len(list))
	}
	for i, p := range list {
		if p.Name != want[i] {
			t.Errorf("position %d: got %q, want %q", i, p.Name, want[i])
		}
	}
}

func TestFavoriteService_List_SkipsDeletedProducts(t *testing.T) {
	users := newStubUserRepo()
	products := newStubProductRepo()
	svc := NewFavoriteService(users, products, discardLogger)

	alice := seedUser(users, "Alice", "alice@example.com", false)
	actor := domain.Actor{ID: alice.ID}
	kept := seedProduct(products, "seller", "Kept")
	gone := seedProduct(products, "seller", "Gone")

	_ = svc.Add(context.Background(), actor, kept.ID)
	_ = svc.Add(context.Background(), actor, gone.ID)
	_ = products.Delete(context.Background(), gone.ID)

	list, err := svc.List(context.Background(), actor)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(list) != 1 || list[0].Name != "Kept" {
		t.Fatalf("deleted favorites must be skipped, got %d entries", len(list))
	}

	// the stale reference is tolerated, not pruned from the stored list
	stored, _ := users.FindByID(context.Background(), alice.ID)
	if len(stored.Favorites) != 2 {
		t.Errorf("stored favorites must keep the dangling reference, got %d", len(stored.Favorites))
	}
}
