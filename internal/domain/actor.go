package domain

import "github.com/google/uuid"

// Actor is the authenticated caller of a request, resolved once by the auth
// middleware from verified token claims. Role-based dispatch branches on
// Actor.Role rather than re-reading the token or the database.
type Actor struct {
	UserID uuid.UUID
	Email  string
	Role   Role
}
