package auth

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Role string

const (
	RoleSuperAdmin  Role = "super_admin"
	RolePartnerUser Role = "partner_user"
)

func (r Role) Valid() bool { return r == RoleSuperAdmin || r == RolePartnerUser }

type User struct {
	ID           string    `gorm:"column:id;type:char(36);primaryKey" json:"id"`
	Email        string    `gorm:"column:email;size:255;not null;uniqueIndex:ux_users_email" json:"email"`
	PasswordHash string    `gorm:"column:password_hash;size:72;not null" json:"-"`
	Role         Role      `gorm:"column:role;size:16;not null" json:"role"`
	PartnerCode  *string   `gorm:"column:partner_code;size:32;index" json:"partner_code"`
	IsActive     bool      `gorm:"column:is_active;not null" json:"is_active"`
	CreatedAt    time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (User) TableName() string { return "users" }

func (u *User) BeforeCreate(*gorm.DB) error {
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	u.Email = NormalizeEmail(u.Email)
	return nil
}

func NormalizeEmail(email string) string { return strings.ToLower(strings.TrimSpace(email)) }

// Session is the server side record behind a session token.
type Session struct {
	ID          string    `json:"id"`
	UserID      string    `json:"user_id"`
	Role        Role      `json:"role"`
	PartnerCode string    `json:"partner_code,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	ExpiresAt   time.Time `json:"expires_at"`
}

// Principal is the authenticated caller of a request.
type Principal struct {
	UserID      string
	SessionID   string
	Role        Role
	PartnerCode string
}

func (p Principal) IsSuperAdmin() bool { return p.Role == RoleSuperAdmin }

// CanAccessPartner is true for super admins and for users of that partner.
func (p Principal) CanAccessPartner(code string) bool {
	return p.IsSuperAdmin() || (p.PartnerCode != "" && p.PartnerCode == code)
}
