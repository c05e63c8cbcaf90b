package domain

// Authorization policy: pure allow/deny decisions over an actor and an
// already-fetched resource snapshot. No I/O, no side effects. Callers
// translate a false result into ErrForbidden.

// CanMutateProduct reports whether actor may update, deactivate or delete the
// product. Admins may mutate anything; otherwise only the owner.
func CanMutateProduct(actor Actor, p *Product) bool {
	return actor.IsAdmin || actor.ID == p.OwnerID
}

// CanMarkMessageRead reports whether actor may flip the message's read flag.
// Only the recipient may, admin or not.
func CanMarkMessageRead(actor Actor, m *Message) bool {
	return actor.ID == m.RecipientID
}

// CanDeleteUser reports whether actor may delete the target account through
// the moderation path. Admins only, and never themselves; self-service
// deletion is a separate path reserved for the account owner.
func CanDeleteUser(actor Actor, targetUserID string) bool {
	return actor.IsAdmin && actor.ID != targetUserID
}

// CanToggleAdmin reports whether actor may grant or revoke admin on the
// target account. Admins only, and never on themselves.
func CanToggleAdmin(actor Actor, targetUserID string) bool {
	return actor.IsAdmin && actor.ID != targetUserID
}
