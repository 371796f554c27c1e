package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"golang.org/x/crypto/bcrypt"

	"aquaria-partner-portal/internal/domain/apperr"
	domain "aquaria-partner-portal/internal/domain/auth"
	"aquaria-partner-portal/internal/domain/partner"
	"aquaria-partner-portal/pkg/id"
)

const minPasswordLen = 8

// claims are carried in the session token. The session id is checked against
// the session store on every use, so signing out revokes the token.
type claims struct {
	SessionID   string      `json:"sid"`
	Role        domain.Role `json:"role"`
	PartnerCode string      `json:"partner_code,omitempty"`
	jwt.RegisteredClaims
}

type Usecase struct {
	users    domain.UserRepository
	partners partner.Repository
	sessions domain.SessionStore
	secret   []byte
	ttl      time.Duration
	log      *slog.Logger
	now      func() time.Time
}

func NewUsecase(users domain.UserRepository, partners partner.Repository, sessions domain.SessionStore, secret string, ttl time.Duration, log *slog.Logger) *Usecase {
	if log == nil {
		log = slog.Default()
	}
	return &Usecase{users: users, partners: partners, sessions: sessions, secret: []byte(secret), ttl: ttl, log: log, now: time.Now}
}

// SignIn checks the credential and opens a session.
// Unknown email, wrong password and disabled users are indistinguishable to the caller.
func (u *Usecase) SignIn(ctx context.Context, email, password string) (*SignInResult, error) {
	user, err := u.users.GetByEmail(ctx, domain.NormalizeEmail(email))
	if err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			return nil, apperr.ErrUnauthorized
		}
		return nil, err
	}
	if !user.IsActive {
		return nil, apperr.ErrUnauthorized
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, apperr.ErrUnauthorized
	}

	now := u.now().UTC()
	sess := domain.Session{
		ID:        id.New(),
		UserID:    user.ID,
		Role:      user.Role,
		CreatedAt: now,
		ExpiresAt: now.Add(u.ttl),
	}
	if user.PartnerCode != nil {
		sess.PartnerCode = *user.PartnerCode
	}
	if err := u.sessions.Save(ctx, sess, u.ttl); err != nil {
		u.log.ErrorContext(ctx, "save session failed", "user_id", user.ID, "err", err)
		return nil, err
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims{
		SessionID:   sess.ID,
		Role:        sess.Role,
		PartnerCode: sess.PartnerCode,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(sess.ExpiresAt),
		},
	}).SignedString(u.secret)
	if err != nil {
		return nil, fmt.Errorf("sign session token: %w", err)
	}
	u.log.InfoContext(ctx, "signed in", "user_id", user.ID, "role", string(user.Role))
	return &SignInResult{Token: token, ExpiresAt: sess.ExpiresAt, User: user}, nil
}

// GetSession returns the live session behind token. It has no side effects.
func (u *Usecase) GetSession(ctx context.Context, token string) (*domain.Session, error) {
	c, err := u.parse(token)
	if err != nil {
		return nil, err
	}
	sess, err := u.sessions.Get(ctx, c.SessionID)
	if err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			return nil, apperr.ErrUnauthorized
		}
		return nil, err
	}
	if sess.UserID != c.Subject {
		return nil, apperr.ErrUnauthorized
	}
	return sess, nil
}

// Authenticate resolves token to the calling principal.
func (u *Usecase) Authenticate(ctx context.Context, token string) (domain.Principal, error) {
	sess, err := u.GetSession(ctx, token)
	if err != nil {
		return domain.Principal{}, err
	}
	return domain.Principal{UserID: sess.UserID, SessionID: sess.ID, Role: sess.Role, PartnerCode: sess.PartnerCode}, nil
}

// SignOut deletes the session so the token stops working. Signing out twice is not an error.
func (u *Usecase) SignOut(ctx context.Context, token string) error {
	c, err := u.parse(token)
	if err != nil {
		return err
	}
	if err := u.sessions.Delete(ctx, c.SessionID); err != nil {
		return err
	}
	u.log.InfoContext(ctx, "signed out", "user_id", c.Subject)
	return nil
}

func (u *Usecase) CurrentUser(ctx context.Context, token string) (*domain.User, error) {
	sess, err := u.GetSession(ctx, token)
	if err != nil {
		return nil, err
	}
	user, err := u.users.GetByID(ctx, sess.UserID)
	if err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			return nil, apperr.ErrUnauthorized
		}
		return nil, err
	}
	return user, nil
}

// CreateUser adds a login. Partner users must name an existing partner.
func (u *Usecase) CreateUser(ctx context.Context, in CreateUserInput) (*domain.User, error) {
	email := domain.NormalizeEmail(in.Email)
	if email == "" || !strings.Contains(email, "@") {
		return nil, apperr.Invalid("email", "must be a valid email address")
	}
	if len(in.Password) < minPasswordLen {
		return nil, apperr.Invalid("password", "must be at least %d characters", minPasswordLen)
	}
	if !in.Role.Valid() {
		return nil, apperr.Invalid("role", "must be super_admin or partner_user")
	}
	user := &domain.User{Email: email, Role: in.Role, IsActive: true}
	if in.Role == domain.RolePartnerUser {
		code := partner.NormalizeCode(in.PartnerCode)
		if code == "" {
			return nil, apperr.Invalid("partner_code", "is required for partner users")
		}
		if _, err := u.partners.GetByCode(ctx, code); err != nil {
			if errors.Is(err, apperr.ErrNotFound) {
				return nil, apperr.Invalid("partner_code", "unknown partner %q", code)
			}
			return nil, err
		}
		user.PartnerCode = &code
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}
	user.PasswordHash = string(hash)
	if err := u.users.Create(ctx, user); err != nil {
		return nil, err
	}
	u.log.InfoContext(ctx, "user created", "user_id", user.ID, "role", string(user.Role))
	return user, nil
}

// EnsureSuperAdmin creates the bootstrap super admin unless the email is already registered.
func (u *Usecase) EnsureSuperAdmin(ctx context.Context, email, password string) error {
	_, err := u.users.GetByEmail(ctx, domain.NormalizeEmail(email))
	if err == nil {
		return nil
	}
	if !errors.Is(err, apperr.ErrNotFound) {
		return err
	}
	_, err = u.CreateUser(ctx, CreateUserInput{Email: email, Password: password, Role: domain.RoleSuperAdmin})
	if errors.Is(err, apperr.ErrDuplicateCode) {
		return nil
	}
	return err
}

func (u *Usecase) parse(token string) (*claims, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return nil, apperr.ErrUnauthorized
	}
	var c claims
	tok, err := jwt.ParseWithClaims(token, &c, func(*jwt.Token) (any, error) {
		return u.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil || !tok.Valid || c.SessionID == "" {
		return nil, apperr.ErrUnauthorized
	}
	return &c, nil
}
