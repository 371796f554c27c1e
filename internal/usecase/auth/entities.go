package auth

import (
	"time"

	domain "aquaria-partner-portal/internal/domain/auth"
)

type SignInResult struct {
	Token     string       `json:"token"`
	ExpiresAt time.Time    `json:"expires_at"`
	User      *domain.User `json:"user"`
}

type CreateUserInput struct {
	Email       string
	Password    string
	Role        domain.Role
	PartnerCode string
}
