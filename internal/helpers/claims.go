package helpers

import "github.com/google/uuid"

// EnhancedClaims wraps the raw token claims with profile data resolved by
// the auth middleware.
type EnhancedClaims struct {
	*CustomClaims
	UserID    string `json:"id"`
	Email     string `json:"email,omitempty"`
	CreatedAt string `json:"created_at,omitempty"`
}

// ParsedUserID returns the subject as a UUID, or uuid.Nil when the token
// carried no usable subject.
func (ec *EnhancedClaims) ParsedUserID() uuid.UUID {
	id, err := uuid.Parse(ec.UserID)
	if err != nil {
		return uuid.Nil
	}
	return id
}

func (ec *EnhancedClaims) IsOwner(userID string) bool {
	return ec.UserID == userID
}
