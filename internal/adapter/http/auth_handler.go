package http

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"aquaria-partner-portal/internal/adapter/middleware"
	domain "aquaria-partner-portal/internal/domain/auth"
	ucAuth "aquaria-partner-portal/internal/usecase/auth"
)

type AuthHandler struct{ uc *ucAuth.Usecase }

func NewAuthHandler(uc *ucAuth.Usecase) *AuthHandler { return &AuthHandler{uc: uc} }

type loginReq struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type createUserReq struct {
	Email       string `json:"email"        validate:"required,email"`
	Password    string `json:"password"     validate:"required,min=8,max=72"`
	Role        string `json:"role"         validate:"required,oneof=super_admin partner_user"`
	PartnerCode string `json:"partner_code" validate:"omitempty,partnercode"`
}

type sessionResp struct {
	UserID      string      `json:"user_id"`
	Role        domain.Role `json:"role"`
	PartnerCode string      `json:"partner_code,omitempty"`
	ExpiresAt   string      `json:"expires_at"`
}

func (h *AuthHandler) Login(c echo.Context) error {
	var req loginReq
	if err := decode(c, &req); err != nil {
		return respondErr(c, err)
	}
	res, err := h.uc.SignIn(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		return respondErr(c, err)
	}
	return c.JSON(http.StatusOK, res)
}

func (h *AuthHandler) Logout(c echo.Context) error {
	if err := h.uc.SignOut(c.Request().Context(), middleware.BearerToken(c.Request())); err != nil {
		return respondErr(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *AuthHandler) Session(c echo.Context) error {
	s, err := h.uc.GetSession(c.Request().Context(), middleware.BearerToken(c.Request()))
	if err != nil {
		return respondErr(c, err)
	}
	return c.JSON(http.StatusOK, sessionResp{
		UserID:      s.UserID,
		Role:        s.Role,
		PartnerCode: s.PartnerCode,
		ExpiresAt:   s.ExpiresAt.UTC().Format(time.RFC3339),
	})
}

func (h *AuthHandler) Me(c echo.Context) error {
	u, err := h.uc.CurrentUser(c.Request().Context(), middleware.BearerToken(c.Request()))
	if err != nil {
		return respondErr(c, err)
	}
	return c.JSON(http.StatusOK, u)
}

func (h *AuthHandler) CreateUser(c echo.Context) error {
	var req createUserReq
	if err := decode(c, &req); err != nil {
		return respondErr(c, err)
	}
	u, err := h.uc.CreateUser(c.Request().Context(), ucAuth.CreateUserInput{
		Email:       req.Email,
		Password:    req.Password,
		Role:        domain.Role(req.Role),
		PartnerCode: req.PartnerCode,
	})
	if err != nil {
		return respondErr(c, err)
	}
	return c.JSON(http.StatusCreated, u)
}
