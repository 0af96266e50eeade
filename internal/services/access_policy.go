package services

import "invenBack/internal/models"

// CanAccess decides whether the requester may read, modify or delete a
// resource owned by ownerID. Admins may access anything; everyone else
// only what they own. Pure function, no I/O. The creator-role snapshot
// on items is deliberately not an input here.
func CanAccess(requester models.Claims, ownerID int) bool {
	if requester.Role == models.RoleAdmin {
		return true
	}
	return requester.UserID == ownerID
}
