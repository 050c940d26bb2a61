package entity

import "time"

type Role string

const (
	RoleAdmin Role = "admin"
	RoleUser  Role = "user"
)

// Profile is the stored record backing an authenticated identity.
type Profile struct {
	ID        string    `json:"id" firestore:"id"`
	Email     string    `json:"email" firestore:"email"`
	Role      Role      `json:"role" firestore:"role"`
	CreatedAt time.Time `json:"created_at" firestore:"createdAt"`
}

// Session is the resolved authentication state of the current caller.
// Either no identity was established, or an identity with a role was;
// there is no in-between state once resolution completes.
type Session struct {
	Authenticated bool   `json:"authenticated"`
	UID           string `json:"uid,omitempty"`
	Role          Role   `json:"role,omitempty"`
}

func Unauthenticated() Session {
	return Session{}
}

func AuthenticatedAs(uid string, role Role) Session {
	return Session{Authenticated: true, UID: uid, Role: role}
}

func (s Session) IsAdmin() bool {
	return s.Authenticated && s.Role == RoleAdmin
}
