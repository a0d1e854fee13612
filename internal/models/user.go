package models

import "time"

// Role ids stored in Profile.Rid.
const (
	RoleMember = 1
	RoleAdmin  = 2
)

// Account holds the credentials of a registered user.
type Account struct {
	ID               string     `gorm:"primaryKey;size:36" json:"id"`
	Email            string     `gorm:"size:255;unique;not null" json:"email"`
	PasswordHash     string     `gorm:"size:255;not null" json:"-"`
	EmailConfirmedAt *time.Time `json:"email_confirmed_at,omitempty"`
	PendingEmail     string     `gorm:"size:255" json:"pending_email,omitempty"`
	EmailToken       *string    `gorm:"size:64;uniqueIndex" json:"-"`
	CreatedAt        time.Time  `json:"created_at"`
	UpdatedAt        time.Time  `json:"updated_at"`
}

// Profile is the public face of an account. It is created in the same
// transaction as its Account.
type Profile struct {
	UID       string    `gorm:"primaryKey;column:uid;size:36" json:"id"`
	Email     string    `gorm:"size:255;not null" json:"email"`
	Nickname  string    `gorm:"size:255;not null;index" json:"nickname"`
	Rid       int       `gorm:"not null;default:1" json:"rid"`
	CreatedAt time.Time `json:"created_at"`

	Account Account `gorm:"foreignKey:UID;references:ID;constraint:OnDelete:CASCADE;" json:"-"`
}

// IsAdmin reports whether the profile may manage the catalog.
func (p *Profile) IsAdmin() bool {
	return p != nil && p.Rid == RoleAdmin
}
