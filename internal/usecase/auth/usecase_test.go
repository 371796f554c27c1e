package auth

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"golang.org/x/crypto/bcrypt"

	"aquaria-partner-portal/internal/domain/apperr"
	domain "aquaria-partner-portal/internal/domain/auth"
	"aquaria-partner-portal/internal/domain/partner"
	"aquaria-partner-portal/internal/testutil/authmock"
	"aquaria-partner-portal/internal/testutil/partnermock"
)

const secret = "test-secret"

type fixture struct {
	uc       *Usecase
	users    map[string]*domain.User
	sessions *authmock.Sessions
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	f := &fixture{users: map[string]*domain.User{}, sessions: authmock.NewSessions()}
	users := &authmock.Users{
		CreateFn: func(_ context.Context, u *domain.User) error {
			if _, ok := f.users[u.Email]; ok {
				return apperr.ErrDuplicateCode
			}
			if u.ID == "" {
				u.ID = "u-" + u.Email
			}
			f.users[u.Email] = u
			return nil
		},
		GetByEmailFn: func(_ context.Context, email string) (*domain.User, error) {
			if u, ok := f.users[email]; ok {
				return u, nil
			}
			return nil, apperr.ErrNotFound
		},
		GetByIDFn: func(_ context.Context, id string) (*domain.User, error) {
			for _, u := range f.users {
				if u.ID == id {
					return u, nil
				}
			}
			return nil, apperr.ErrNotFound
		},
	}
	partners := &partnermock.Repo{
		GetByCodeFn: func(_ context.Context, code string) (*partner.Partner, error) {
			if code == "AWS07" {
				return &partner.Partner{ID: "p-aws", PartnerCode: code}, nil
			}
			return nil, apperr.ErrNotFound
		},
	}
	f.uc = NewUsecase(users, partners, f.sessions, secret, time.Hour, slog.New(slog.NewTextHandler(io.Discard, nil)))
	return f
}

func (f *fixture) addUser(t *testing.T, email, password string, role domain.Role, code string) *domain.User {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	u := &domain.User{ID: "u-" + email, Email: email, PasswordHash: string(hash), Role: role, IsActive: true}
	if code != "" {
		u.PartnerCode = &code
	}
	f.users[email] = u
	return u
}

func TestSignIn_SessionLifecycle(t *testing.T) {
	f := newFixture(t)
	f.addUser(t, "dana@abcwater.com", "correct horse", domain.RolePartnerUser, "AWS07")
	ctx := context.Background()

	res, err := f.uc.SignIn(ctx, " Dana@ABCwater.com ", "correct horse")
	if err != nil {
		t.Fatalf("SignIn: %v", err)
	}
	if res.Token == "" || res.User.Email != "dana@abcwater.com" {
		t.Fatalf("result = %+v", res)
	}

	for i := 0; i < 2; i++ {
		sess, err := f.uc.GetSession(ctx, res.Token)
		if err != nil {
			t.Fatalf("GetSession #%d: %v", i, err)
		}
		if sess.Role != domain.RolePartnerUser || sess.PartnerCode != "AWS07" {
			t.Fatalf("session = %+v", sess)
		}
	}

	p, err := f.uc.Authenticate(ctx, res.Token)
	if err != nil || !p.CanAccessPartner("AWS07") || p.IsSuperAdmin() {
		t.Fatalf("principal = %+v, %v", p, err)
	}
	me, err := f.uc.CurrentUser(ctx, res.Token)
	if err != nil || me.ID != "u-dana@abcwater.com" {
		t.Fatalf("CurrentUser = %+v, %v", me, err)
	}

	if err := f.uc.SignOut(ctx, res.Token); err != nil {
		t.Fatalf("SignOut: %v", err)
	}
	if _, err := f.uc.GetSession(ctx, res.Token); !errors.Is(err, apperr.ErrUnauthorized) {
		t.Fatalf("token after sign out: want ErrUnauthorized, got %v", err)
	}
	if err := f.uc.SignOut(ctx, res.Token); err != nil {
		t.Fatalf("second SignOut: %v", err)
	}
}

func TestSignIn_Rejections(t *testing.T) {
	f := newFixture(t)
	f.addUser(t, "ops@aquaria.com", "hunter22", domain.RoleSuperAdmin, "")
	disabled := f.addUser(t, "old@aquaria.com", "hunter22", domain.RoleSuperAdmin, "")
	disabled.IsActive = false

	tests := []struct{ email, password string }{
		{"ops@aquaria.com", "wrong"},
		{"nobody@aquaria.com", "hunter22"},
		{"old@aquaria.com", "hunter22"},
	}
	for _, tt := range tests {
		if _, err := f.uc.SignIn(context.Background(), tt.email, tt.password); !errors.Is(err, apperr.ErrUnauthorized) {
			t.Errorf("SignIn(%s): want ErrUnauthorized, got %v", tt.email, err)
		}
	}
	if len(f.sessions.Data) != 0 {
		t.Fatal("failed sign in must not open a session")
	}
}

func TestSignIn_StoreFailure(t *testing.T) {
	f := newFixture(t)
	f.addUser(t, "ops@aquaria.com", "hunter22", domain.RoleSuperAdmin, "")
	f.sessions.Err = apperr.ErrStoreUnavailable
	if _, err := f.uc.SignIn(context.Background(), "ops@aquaria.com", "hunter22"); !errors.Is(err, apperr.ErrStoreUnavailable) {
		t.Fatalf("want ErrStoreUnavailable, got %v", err)
	}
}

func TestGetSession_BadTokens(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	forged, _ := jwt.NewWithClaims(jwt.SigningMethodHS256, claims{SessionID: "s1"}).SignedString([]byte("other-secret"))
	expired, _ := jwt.NewWithClaims(jwt.SigningMethodHS256, claims{
		SessionID:        "s1",
		RegisteredClaims: jwt.RegisteredClaims{ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Minute))},
	}).SignedString([]byte(secret))
	noSession, _ := jwt.NewWithClaims(jwt.SigningMethodHS256, claims{}).SignedString([]byte(secret))
	unsigned, _ := jwt.NewWithClaims(jwt.SigningMethodNone, claims{SessionID: "s1"}).SignedString(jwt.UnsafeAllowNoneSignatureType)

	for name, tok := range map[string]string{
		"empty": "", "garbage": "abc.def.ghi", "forged": forged, "expired": expired,
		"no session id": noSession, "alg none": unsigned,
	} {
		if _, err := f.uc.GetSession(ctx, tok); !errors.Is(err, apperr.ErrUnauthorized) {
			t.Errorf("%s: want ErrUnauthorized, got %v", name, err)
		}
	}
}

func TestGetSession_SubjectMustMatch(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	_ = f.sessions.Save(ctx, domain.Session{ID: "s1", UserID: "u-1"}, time.Hour)
	tok, _ := jwt.NewWithClaims(jwt.SigningMethodHS256, claims{
		SessionID:        "s1",
		RegisteredClaims: jwt.RegisteredClaims{Subject: "u-2"},
	}).SignedString([]byte(secret))
	if _, err := f.uc.GetSession(ctx, tok); !errors.Is(err, apperr.ErrUnauthorized) {
		t.Fatalf("want ErrUnauthorized, got %v", err)
	}
}

func TestCreateUser(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	u, err := f.uc.CreateUser(ctx, CreateUserInput{Email: "Sam@ABCwater.com", Password: "longenough", Role: domain.RolePartnerUser, PartnerCode: "aws07"})
	if err != nil {
		t.Fatalf("CreateUser: %v", err)
	}
	if u.Email != "sam@abcwater.com" || *u.PartnerCode != "AWS07" || strings.Contains(u.PasswordHash, "longenough") {
		t.Fatalf("user = %+v", u)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte("longenough")); err != nil {
		t.Fatalf("stored hash does not verify: %v", err)
	}

	tests := []struct {
		name string
		in   CreateUserInput
	}{
		{"bad email", CreateUserInput{Email: "nope", Password: "longenough", Role: domain.RoleSuperAdmin}},
		{"short password", CreateUserInput{Email: "a@b.co", Password: "short", Role: domain.RoleSuperAdmin}},
		{"bad role", CreateUserInput{Email: "a@b.co", Password: "longenough", Role: "owner"}},
		{"partner user without partner", CreateUserInput{Email: "a@b.co", Password: "longenough", Role: domain.RolePartnerUser}},
		{"unknown partner", CreateUserInput{Email: "a@b.co", Password: "longenough", Role: domain.RolePartnerUser, PartnerCode: "ZZZ"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := f.uc.CreateUser(ctx, tt.in); !errors.Is(err, apperr.ErrValidation) {
				t.Fatalf("want validation error, got %v", err)
			}
		})
	}
}

func TestEnsureSuperAdmin_Idempotent(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	if err := f.uc.EnsureSuperAdmin(ctx, "root@aquaria.com", "bootstrap-pass"); err != nil {
		t.Fatalf("first EnsureSuperAdmin: %v", err)
	}
	first := f.users["root@aquaria.com"]
	if first == nil || first.Role != domain.RoleSuperAdmin {
		t.Fatalf("admin not created: %+v", first)
	}
	if err := f.uc.EnsureSuperAdmin(ctx, "ROOT@aquaria.com", "other-pass"); err != nil {
		t.Fatalf("second EnsureSuperAdmin: %v", err)
	}
	if f.users["root@aquaria.com"] != first || len(f.users) != 1 {
		t.Fatal("existing admin must be left alone")
	}
}
