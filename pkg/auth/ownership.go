package auth

// Authorize decides whether a principal may mutate a resource. It is a
// pure equality check between the principal's ID and the resource's
// recorded owner; ErrForbidden means the resource exists but belongs to
// someone else.
//
// Callers check existence before ownership, so a missing resource yields
// not-found and never a forbidden. The reverse ordering would hide
// existence from non-owners; the current behavior is kept deliberately.
func Authorize(principalID, ownerID string) error {
	if principalID == "" || principalID != ownerID {
		return ErrForbidden
	}
	return nil
}
