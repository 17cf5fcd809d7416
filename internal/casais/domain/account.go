package domain

import "time"

// Account roles.
const (
	RoleUser   = "user"
	RoleLeader = "leader"
)

type Account struct {
	ID           string
	Username     string
	PasswordHash string // argon2id, or bcrypt for accounts created before the switch
	Role         string
	NameHistory  []string
	CreatedAt    time.Time
}

// ValidRole reports whether r is one of the known roles.
func ValidRole(r string) bool {
	return r == RoleUser || r == RoleLeader
}
