package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"aquaria-partner-portal/internal/domain/apperr"
	"aquaria-partner-portal/internal/domain/auth"
)

type authFunc func(ctx context.Context, token string) (auth.Principal, error)

func (f authFunc) Authenticate(ctx context.Context, token string) (auth.Principal, error) {
	return f(ctx, token)
}

var tokens = authFunc(func(_ context.Context, token string) (auth.Principal, error) {
	switch token {
	case "admin":
		return auth.Principal{UserID: "u-admin", Role: auth.RoleSuperAdmin}, nil
	case "aws":
		return auth.Principal{UserID: "u-aws", Role: auth.RolePartnerUser, PartnerCode: "AWS07"}, nil
	}
	return auth.Principal{}, apperr.ErrUnauthorized
})

func guarded(mw ...echo.MiddlewareFunc) *echo.Echo {
	e := echo.New()
	g := e.Group("", append([]echo.MiddlewareFunc{Authenticate(tokens)}, mw...)...)
	handler := func(c echo.Context) error {
		p, _ := PrincipalFrom(c)
		return c.String(http.StatusOK, p.UserID)
	}
	g.GET("/admin/partners", handler)
	g.GET("/portal/:code", handler)
	return e
}

func get(e *echo.Echo, path, authz string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if authz != "" {
		req.Header.Set(echo.HeaderAuthorization, authz)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestBearerToken(t *testing.T) {
	cases := map[string]string{
		"Bearer abc":   "abc",
		"bearer  abc ": "abc",
		"Basic abc":    "",
		"Bearer":       "",
		"":             "",
	}
	for header, want := range cases {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(echo.HeaderAuthorization, header)
		if got := BearerToken(req); got != want {
			t.Errorf("BearerToken(%q) = %q, want %q", header, got, want)
		}
	}
}

func TestAuthenticate(t *testing.T) {
	e := guarded()
	tests := []struct {
		name  string
		authz string
		code  int
		body  string
	}{
		{"missing header", "", http.StatusUnauthorized, ""},
		{"unknown token", "Bearer nope", http.StatusUnauthorized, ""},
		{"valid", "Bearer admin", http.StatusOK, "u-admin"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := get(e, "/admin/partners", tt.authz)
			if rec.Code != tt.code {
				t.Fatalf("status = %d, want %d", rec.Code, tt.code)
			}
			if tt.body != "" && rec.Body.String() != tt.body {
				t.Fatalf("body = %q, want %q", rec.Body.String(), tt.body)
			}
		})
	}
}

func TestRequireRole(t *testing.T) {
	e := guarded(RequireRole(auth.RoleSuperAdmin))
	if rec := get(e, "/admin/partners", "Bearer admin"); rec.Code != http.StatusOK {
		t.Fatalf("super admin: want 200, got %d", rec.Code)
	}
	if rec := get(e, "/admin/partners", "Bearer aws"); rec.Code != http.StatusForbidden {
		t.Fatalf("partner user: want 403, got %d", rec.Code)
	}
}

func TestRequirePartnerScope(t *testing.T) {
	e := guarded(RequirePartnerScope("code"))
	tests := []struct {
		path, authz string
		code        int
	}{
		{"/portal/AWS07", "Bearer aws", http.StatusOK},
		{"/portal/aws07", "Bearer aws", http.StatusOK},
		{"/portal/LSP42", "Bearer aws", http.StatusForbidden},
		{"/portal/LSP42", "Bearer admin", http.StatusOK},
	}
	for _, tt := range tests {
		if rec := get(e, tt.path, tt.authz); rec.Code != tt.code {
			t.Errorf("GET %s as %s: status = %d, want %d", tt.path, tt.authz, rec.Code, tt.code)
		}
	}
}

func TestGuardsWithoutPrincipal(t *testing.T) {
	e := echo.New()
	ok := func(c echo.Context) error { return c.NoContent(http.StatusOK) }
	e.GET("/role", ok, RequireRole(auth.RoleSuperAdmin))
	e.GET("/scope/:code", ok, RequirePartnerScope("code"))
	for _, path := range []string{"/role", "/scope/AWS07"} {
		if rec := get(e, path, ""); rec.Code != http.StatusUnauthorized {
			t.Errorf("%s: want 401, got %d", path, rec.Code)
		}
	}
}
