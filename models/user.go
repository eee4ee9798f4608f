package models

import "time"

// User roles.
const (
	RoleStudent   = "student"
	RoleModerator = "moderator"
	RoleCounselor = "counselor"
	RoleAdmin     = "admin"
)

// User represents a registered member of an institution.
type User struct {
	ID            string    `bson:"id" json:"id"`
	Role          string    `bson:"role" json:"role"`
	Firstname     string    `bson:"firstname" json:"firstname"`
	Lastname      string    `bson:"lastname" json:"lastname"`
	Email         string    `bson:"email" json:"email"`
	PasswordHash  string    `bson:"passwordHash" json:"-"`
	Bio           string    `bson:"bio,omitempty" json:"bio,omitempty"`
	Pseudonym     string    `bson:"pseudonym,omitempty" json:"pseudonym,omitempty"`
	IsVerified    bool      `bson:"isVerified" json:"isVerified"`
	IsBanned      bool      `bson:"isBanned" json:"isBanned"`
	IsDeleted     bool      `bson:"isDeleted" json:"isDeleted"`
	InstitutionID string    `bson:"institutionId" json:"institutionId"`
	CreatedAt     time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt     time.Time `bson:"updatedAt" json:"updatedAt"`
}

// DisplayName returns the name shown to other members. Students interact
// under a pseudonym when one is set.
func (u *User) DisplayName() string {
	if u.Pseudonym != "" {
		return u.Pseudonym
	}
	return u.Firstname + " " + u.Lastname
}

// HasRole reports whether the user holds any of the given roles.
func HasRole(role string, allowed ...string) bool {
	for _, a := range allowed {
		if role == a {
			return true
		}
	}
	return false
}
