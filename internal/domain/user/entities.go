package user

import (
	"errors"
	"strings"
	"time"
)

var (
	ErrNotFound   = errors.New("user: not found")
	ErrEmailTaken = errors.New("user: email already registered")
)

// User is an admin account. Email is stored normalized (lowercase,
// trimmed) and is unique. Roles is a comma-separated role list.
type User struct {
	ID           uint64     `gorm:"primaryKey;column:id" json:"id"`
	Email        string     `gorm:"size:254;uniqueIndex:ux_users_email" json:"email"`
	PasswordHash string     `gorm:"size:256" json:"-"`
	Roles        string     `gorm:"size:256" json:"-"`
	LastLoginAt  *time.Time `json:"last_login_at,omitempty"`
	CreatedAt    time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time  `gorm:"autoUpdateTime" json:"updated_at"`
}

func (User) TableName() string { return "users" }

func (u *User) RoleList() []string {
	if u.Roles == "" {
		return nil
	}
	parts := strings.Split(u.Roles, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func (u *User) SetRoles(roles []string) {
	u.Roles = strings.Join(roles, ",")
}

// NormalizeEmail applies the canonical form used for lookup and storage.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
