package service

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/rs/zerolog"

	"github.com/tradepost/marketplace-system/internal/core/domain"
	"github.com/tradepost/marketplace-system/internal/core/ports"
)

// ---------------------------------------------------------------------------
// In-memory stub repositories shared by the service tests. They mirror the
// semantics of the real Mongo repositories: sentinel errors on missing
// documents, unique email, ordering guarantees.
// ---------------------------------------------------------------------------

var discardLogger = zerolog.Nop()

// --- users ---

type stubUserRepo struct {
	users  map[string]*domain.User
	nextID int
	// if set, Delete returns this error (for cascade partial-failure tests)
	deleteErr error
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{users: make(map[string]*domain.User)}
}

func cloneUser(u *domain.User) *domain.User {
	if u == nil {
		return nil
	}
	clone := *u
	clone.Favorites = append([]string(nil), u.Favorites...)
	return &clone
}

func (r *stubUserRepo) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	for _, u := range r.users {
		if u.Email == user.Email {
			return nil, domain.ErrEmailTaken
		}
	}
	clone := cloneUser(user)
	r.nextID++
	clone.ID = fmt.Sprintf("u%d", r.nextID)
	r.users[clone.ID] = clone
	return cloneUser(clone), nil
}

func (r *stubUserRepo) FindByID(_ context.Context, id string) (*domain.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return cloneUser(u), nil
}

func (r *stubUserRepo) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			return cloneUser(u), nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) List(_ context.Context) ([]*domain.User, error) {
	out := make([]*domain.User, 0, len(r.users))
	for _, u := range r.users {
		out = append(out, cloneUser(u))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *stubUserRepo) ListRecent(_ context.Context, limit int) ([]*domain.User, error) {
	out, _ := r.List(context.Background())
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (r *stubUserRepo) Delete(_ context.Context, id string) error {
	if r.deleteErr != nil {
		return r.deleteErr
	}
	if _, ok := r.users[id]; !ok {
		return domain.ErrUserNotFound
	}
	delete(r.users, id)
	return nil
}

func (r *stubUserRepo) SetAdmin(_ context.Context, id string, isAdmin bool) error {
	u, ok := r.users[id]
	if !ok {
		return domain.ErrUserNotFound
	}
	u.IsAdmin = isAdmin
	return nil
}

func (r *stubUserRepo) PushFavorite(_ context.Context, userID, productID string) error {
	u, ok := r.users[userID]
	if !ok {
		return domain.ErrUserNotFound
	}
	u.Favorites = append(u.Favorites, productID)
	return nil
}

func (r *stubUserRepo) PullFavorite(_ context.Context, userID, productID string) error {
	u, ok := r.users[userID]
	if !ok {
		return domain.ErrUserNotFound
	}
	kept := u.Favorites[:0]
	for _, id := range u.Favorites {
		if id != productID {
			kept = append(kept, id)
		}
	}
	u.Favorites = kept
	return nil
}

func (r *stubUserRepo) Count(_ context.Context) (int64, error) {
	return int64(len(r.users)), nil
}

func (r *stubUserRepo) CountAdmins(_ context.Context) (int64, error) {
	var n int64
	for _, u := range r.users {
		if u.IsAdmin {
			n++
		}
	}
	return n, nil
}

func (r *stubUserRepo) CountCreatedSince(_ context.Context, since time.Time) (int64, error) {
	var n int64
	for _, u := range r.users {
		if !u.CreatedAt.Before(since) {
			n++
		}
	}
	return n, nil
}

// --- products ---

type stubProductRepo struct {
	products map[string]*domain.Product
	nextID   int
	// if set, DeleteByOwner returns this error
	deleteByOwnerErr error
}

func newStubProductRepo() *stubProductRepo {
	return &stubProductRepo{products: make(map[string]*domain.Product)}
}

func cloneProduct(p *domain.Product) *domain.Product {
	clone := *p
	clone.Images = append([]domain.Image(nil), p.Images...)
	return &clone
}

func (r *stubProductRepo) Create(_ context.Context, p *domain.Product) (*domain.Product, error) {
	clone := cloneProduct(p)
	r.nextID++
	clone.ID = fmt.Sprintf("p%d", r.nextID)
	r.products[clone.ID] = clone
	return cloneProduct(clone), nil
}

func (r *stubProductRepo) FindByID(_ context.Context, id string) (*domain.Product, error) {
	p, ok := r.products[id]
	if !ok {
		return nil, domain.ErrProductNotFound
	}
	return cloneProduct(p), nil
}

func (r *stubProductRepo) FindByIDs(_ context.Context, ids []string) ([]*domain.Product, error) {
	out := make([]*domain.Product, 0, len(ids))
	for _, id := range ids {
		if p, ok := r.products[id]; ok {
			out = append(out, cloneProduct(p))
		}
	}
	return out, nil
}

func (r *stubProductRepo) List(_ context.Context, filter ports.ListProductsFilter) ([]*domain.Product, error) {
	var out []*domain.Product
	for _, p := range r.products {
		if filter.OwnerID != "" && p.OwnerID != filter.OwnerID {
			continue
		}
		if filter.Category != "" && string(p.Category) != filter.Category {
			continue
		}
		if filter.Region != "" && string(p.Region) != filter.Region {
			continue
		}
		if filter.ActiveOnly && !p.IsActive {
			continue
		}
		out = append(out, cloneProduct(p))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *stubProductRepo) ListRecent(_ context.Context, limit int) ([]*domain.Product, error) {
	out, _ := r.List(context.Background(), ports.ListProductsFilter{})
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (r *stubProductRepo) Update(_ context.Context, p *domain.Product) (*domain.Product, error) {
	stored, ok := r.products[p.ID]
	if !ok {
		return nil, domain.ErrProductNotFound
	}
	clone := cloneProduct(p)
	// owner and creation time never change on update
	clone.OwnerID = stored.OwnerID
	clone.CreatedAt = stored.CreatedAt
	r.products[p.ID] = clone
	return cloneProduct(clone), nil
}

func (r *stubProductRepo) SetActive(_ context.Context, id string, active bool) error {
	p, ok := r.products[id]
	if !ok {
		return domain.ErrProductNotFound
	}
	p.IsActive = active
	return nil
}

func (r *stubProductRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.products[id]; !ok {
		return domain.ErrProductNotFound
	}
	delete(r.products, id)
	return nil
}

func (r *stubProductRepo) DeleteByOwner(_ context.Context, ownerID string) (int64, error) {
	if r.deleteByOwnerErr != nil {
		return 0, r.deleteByOwnerErr
	}
	var n int64
	for id, p := range r.products {
		if p.OwnerID == ownerID {
			delete(r.products, id)
			n++
		}
	}
	return n, nil
}

func (r *stubProductRepo) Count(_ context.Context) (int64, error) {
	return int64(len(r.products)), nil
}

func (r *stubProductRepo) CountActive(_ context.Context) (int64, error) {
	var n int64
	for _, p := range r.products {
		if p.IsActive {
			n++
		}
	}
	return n, nil
}

func (r *stubProductRepo) CountCreatedSince(_ context.Context, since time.Time) (int64, error) {
	var n int64
	for _, p := range r.products {
		if !p.CreatedAt.Before(since) {
			n++
		}
	}
	return n, nil
}

// --- messages ---

type stubMessageRepo struct {
	messages []*domain.Message
	nextID   int
}

func newStubMessageRepo() *stubMessageRepo {
	return &stubMessageRepo{}
}

func cloneMessage(m *domain.Message) *domain.Message {
	clone := *m
	return &clone
}

func (r *stubMessageRepo) Create(_ context.Context, m *domain.Message) (*domain.Message, error) {
	clone := cloneMessage(m)
	r.nextID++
	clone.ID = fmt.Sprintf("m%d", r.nextID)
	r.messages = append(r.messages, clone)
	return cloneMessage(clone), nil
}

func (r *stubMessageRepo) FindByID(_ context.Context, id string) (*domain.Message, error) {
	for _, m := range r.messages {
		if m.ID == id {
			return cloneMessage(m), nil
		}
	}
	return nil, domain.ErrMessageNotFound
}

func (r *stubMessageRepo) ListByParticipant(_ context.Context, userID string) ([]*domain.Message, error) {
	var out []*domain.Message
	for _, m := range r.messages {
		if m.Involves(userID) {
			out = append(out, cloneMessage(m))
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].SentAt.After(out[j].SentAt) })
	return out, nil
}

func (r *stubMessageRepo) ListByProductForUser(_ context.Context, productID, userID string) ([]*domain.Message, error) {
	var out []*domain.Message
	for _, m := range r.messages {
		if m.ProductID == productID && m.Involves(userID) {
			out = append(out, cloneMessage(m))
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].SentAt.Before(out[j].SentAt) })
	return out, nil
}

func (r *stubMessageRepo) ListConversation(_ context.Context, productID, userA, userB string) ([]*domain.Message, error) {
	var out []*domain.Message
	for _, m := range r.messages {
		if m.ProductID != productID {
			continue
		}
		pair := (m.SenderID == userA && m.RecipientID == userB) ||
			(m.SenderID == userB && m.RecipientID == userA)
		if pair {
			out = append(out, cloneMessage(m))
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].SentAt.Before(out[j].SentAt) })
	return out, nil
}

func (r *stubMessageRepo) MarkRead(_ context.Context, id string) error {
	for _, m := range r.messages {
		if m.ID == id {
			m.Read = true
			return nil
		}
	}
	return domain.ErrMessageNotFound
}

func (r *stubMessageRepo) CountUnread(_ context.Context, recipientID string) (int64, error) {
	var n int64
	for _, m := range r.messages {
		if m.RecipientID == recipientID && !m.Read {
			n++
		}
	}
	return n, nil
}

// --- unread cache ---

type stubUnreadCache struct {
	counts      map[string]int64
	invalidated []string
	getErr      error
}

func newStubUnreadCache() *stubUnreadCache {
	return &stubUnreadCache{counts: make(map[string]int64)}
}

func (c *stubUnreadCache) Get(_ context.Context, userID string) (int64, bool, error) {
	if c.getErr != nil {
		return 0, false, c.getErr
	}
	n, ok := c.counts[userID]
	return n, ok, nil
}

func (c *stubUnreadCache) Set(_ context.Context, userID string, count int64) error {
	c.counts[userID] = count
	return nil
}

func (c *stubUnreadCache) Invalidate(_ context.Context, userID string) error {
	delete(c.counts, userID)
	c.invalidated = append(c.invalidated, userID)
	return nil
}

// --- notifier ---

type stubNotifier struct {
	sent []ports.NewMessageNotification
}

func (n *stubNotifier) NotifyNewMessage(_ context.Context, notification ports.NewMessageNotification) {
	n.sent = append(n.sent, notification)
}

// --- fixtures ---

func seedUser(r *stubUserRepo, firstName, email string, isAdmin bool) *domain.User {
	u, _ := r.Create(context.Background(), &domain.User{
		FirstName: firstName,
		LastName:  "Tester",
		Email:     email,
		IsAdmin:   isAdmin,
		CreatedAt: time.Now().UTC(),
		UpdatedAt: time.Now().UTC(),
	})
	return u
}

func seedProduct(r *stubProductRepo, ownerID, name string) *domain.Product {
	p, _ := r.Create(context.Background(), &domain.Product{
		Name:         name,
		Description:  "a test listing",
		Price:        10,
		Category:     domain.CategoryBooks,
		Region:       domain.RegionNorth,
		ContactEmail: "seller@example.com",
		OwnerID:      ownerID,
		IsActive:     true,
		CreatedAt:    time.Now().UTC(),
		UpdatedAt:    time.Now().UTC(),
	})
	return p
}
