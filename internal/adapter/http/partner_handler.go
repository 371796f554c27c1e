package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"aquaria-partner-portal/internal/domain/catalog"
	"aquaria-partner-portal/internal/domain/feature"
	ucPartner "aquaria-partner-portal/internal/usecase/partner"
	ucQuote "aquaria-partner-portal/internal/usecase/quote"
)

type PartnerHandler struct {
	uc     *ucPartner.Usecase
	quotes *ucQuote.Usecase
}

func NewPartnerHandler(uc *ucPartner.Usecase, quotes *ucQuote.Usecase) *PartnerHandler {
	return &PartnerHandler{uc: uc, quotes: quotes}
}

// profileReq is shared by create and settings updates.
type profileReq struct {
	ContactName    *string `json:"contact_name"    validate:"omitempty,max=255"`
	ContactEmail   *string `json:"contact_email"   validate:"omitempty,email"`
	ContactPhone   *string `json:"contact_phone"   validate:"omitempty,max=64"`
	LogoURL        *string `json:"logo_url"        validate:"omitempty,url"`
	PrimaryColor   *string `json:"primary_color"   validate:"omitempty,hexcolor"`
	AccentColor    *string `json:"accent_color"    validate:"omitempty,hexcolor"`
	DisplayAddress *string `json:"display_address" validate:"omitempty,max=512"`
	DisplayPhone   *string `json:"display_phone"   validate:"omitempty,max=64"`
	DisplayEmail   *string `json:"display_email"   validate:"omitempty,email"`
	DisplayWebsite *string `json:"display_website" validate:"omitempty,url"`

	IsActive        *bool   `json:"is_active"`
	CanCreateQuotes *bool   `json:"can_create_quotes"`
	CanEditPricing  *bool   `json:"can_edit_pricing"`
	Notes           *string `json:"notes"`
}

type createPartnerReq struct {
	CompanyName string `json:"company_name" validate:"required,max=255"`
	PartnerCode string `json:"partner_code" validate:"omitempty,partnercode"`
	profileReq

	FeatureConfig    *feature.Partial        `json:"feature_config"`
	PricingOverrides *catalog.PriceOverrides `json:"pricing_overrides"`
}

type settingsReq struct {
	CompanyName *string `json:"company_name" validate:"omitempty,min=1,max=255"`
	profileReq
}

func (r settingsReq) input() ucPartner.SettingsInput {
	return ucPartner.SettingsInput{
		CompanyName:     r.CompanyName,
		ContactName:     r.ContactName,
		ContactEmail:    r.ContactEmail,
		ContactPhone:    r.ContactPhone,
		LogoURL:         r.LogoURL,
		PrimaryColor:    r.PrimaryColor,
		AccentColor:     r.AccentColor,
		DisplayAddress:  r.DisplayAddress,
		DisplayPhone:    r.DisplayPhone,
		DisplayEmail:    r.DisplayEmail,
		DisplayWebsite:  r.DisplayWebsite,
		IsActive:        r.IsActive,
		CanCreateQuotes: r.CanCreateQuotes,
		CanEditPricing:  r.CanEditPricing,
		Notes:           r.Notes,
	}
}

type suggestCodeReq struct {
	CompanyName string `json:"company_name" validate:"required,max=255"`
}

// ---- super admin ----

func (h *PartnerHandler) List(c echo.Context) error {
	out, err := h.uc.List(c.Request().Context(), ucPartner.ListFilter{
		Status: c.QueryParam("status"),
		Query:  c.QueryParam("q"),
	})
	if err != nil {
		return respondErr(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *PartnerHandler) Stats(c echo.Context) error {
	s, err := h.uc.Stats(c.Request().Context())
	if err != nil {
		return respondErr(c, err)
	}
	return c.JSON(http.StatusOK, s)
}

func (h *PartnerHandler) Create(c echo.Context) error {
	var req createPartnerReq
	if err := decode(c, &req); err != nil {
		return respondErr(c, err)
	}
	p, err := h.uc.Create(c.Request().Context(), ucPartner.CreateInput{
		CompanyName:      req.CompanyName,
		PartnerCode:      req.PartnerCode,
		ContactName:      req.ContactName,
		ContactEmail:     req.ContactEmail,
		ContactPhone:     req.ContactPhone,
		LogoURL:          req.LogoURL,
		PrimaryColor:     req.PrimaryColor,
		AccentColor:      req.AccentColor,
		DisplayAddress:   req.DisplayAddress,
		DisplayPhone:     req.DisplayPhone,
		DisplayEmail:     req.DisplayEmail,
		DisplayWebsite:   req.DisplayWebsite,
		FeatureConfig:    req.FeatureConfig,
		PricingOverrides: req.PricingOverrides,
		IsActive:         req.IsActive,
		CanCreateQuotes:  req.CanCreateQuotes,
		CanEditPricing:   req.CanEditPricing,
		Notes:            req.Notes,
	})
	if err != nil {
		return respondErr(c, err)
	}
	return c.JSON(http.StatusCreated, p)
}

func (h *PartnerHandler) SuggestCode(c echo.Context) error {
	var req suggestCodeReq
	if err := decode(c, &req); err != nil {
		return respondErr(c, err)
	}
	code, err := h.uc.SuggestCode(c.Request().Context(), req.CompanyName)
	if err != nil {
		return respondErr(c, err)
	}
	return c.JSON(http.StatusOK, map[string]string{"partner_code": code})
}

func (h *PartnerHandler) Get(c echo.Context) error {
	p, err := h.uc.GetByCode(c.Request().Context(), c.Param("code"))
	if err != nil {
		return respondErr(c, err)
	}
	return c.JSON(http.StatusOK, p)
}

// ---- partner portal (super admin or the partner's own users) ----

func (h *PartnerHandler) Portal(c echo.Context) error {
	dto, err := h.uc.Portal(c.Request().Context(), principal(c), c.Param("code"))
	if err != nil {
		return respondErr(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *PartnerHandler) UpdateSettings(c echo.Context) error {
	var req settingsReq
	if err := decode(c, &req); err != nil {
		return respondErr(c, err)
	}
	p, err := h.uc.UpdateSettings(c.Request().Context(), principal(c), c.Param("code"), req.input())
	if err != nil {
		return respondErr(c, err)
	}
	return c.JSON(http.StatusOK, p)
}

func (h *PartnerHandler) UpdateFeatures(c echo.Context) error {
	var req feature.Partial
	if err := decode(c, &req); err != nil {
		return respondErr(c, err)
	}
	p, err := h.uc.UpdateFeatures(c.Request().Context(), principal(c), c.Param("code"), &req)
	if err != nil {
		return respondErr(c, err)
	}
	return c.JSON(http.StatusOK, p)
}

func (h *PartnerHandler) UpdatePricing(c echo.Context) error {
	var req catalog.PriceOverrides
	if err := decode(c, &req); err != nil {
		return respondErr(c, err)
	}
	p, err := h.uc.UpdatePricing(c.Request().Context(), principal(c), c.Param("code"), &req)
	if err != nil {
		return respondErr(c, err)
	}
	return c.JSON(http.StatusOK, p)
}

func (h *PartnerHandler) ResetPricing(c echo.Context) error {
	p, err := h.uc.ResetPricing(c.Request().Context(), principal(c), c.Param("code"))
	if err != nil {
		return respondErr(c, err)
	}
	return c.JSON(http.StatusOK, p)
}

func (h *PartnerHandler) Quotes(c echo.Context) error {
	out, err := h.quotes.ListForPartner(c.Request().Context(), principal(c), c.Param("code"))
	if err != nil {
		return respondErr(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *PartnerHandler) QuoteStats(c echo.Context) error {
	s, err := h.quotes.Stats(c.Request().Context(), principal(c), c.Param("code"))
	if err != nil {
		return respondErr(c, err)
	}
	return c.JSON(http.StatusOK, s)
}

// ---- public ----

func (h *PartnerHandler) Calculator(c echo.Context) error {
	dto, err := h.uc.Calculator(c.Request().Context(), c.Param("code"))
	if err != nil {
		return respondErr(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}
