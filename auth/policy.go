package auth

// CanAccessCustomer is the single ownership check consulted by every
// operation that touches customer-owned resources: the caller must be the
// owning customer or an admin.
func CanAccessCustomer(caller Identity, ownerID uint) bool {
	return caller.IsAdmin() || caller.CustomerID == ownerID
}
