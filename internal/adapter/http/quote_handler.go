package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	domain "aquaria-partner-portal/internal/domain/quote"
	ucQuote "aquaria-partner-portal/internal/usecase/quote"
)

type QuoteHandler struct{ uc *ucQuote.Usecase }

func NewQuoteHandler(uc *ucQuote.Usecase) *QuoteHandler { return &QuoteHandler{uc: uc} }

type priceReq struct {
	Config         domain.Config `json:"config"`
	DiscountAmount float64       `json:"discount_amount" validate:"gte=0,dec2"`
}

type createQuoteReq struct {
	PartnerCode     string  `json:"partner_code"     validate:"omitempty,partnercode"`
	CustomerCompany *string `json:"customer_company" validate:"omitempty,max=255"`
	CustomerName    string  `json:"customer_name"    validate:"required,max=255"`
	CustomerEmail   *string `json:"customer_email"   validate:"omitempty,email"`
	CustomerPhone   *string `json:"customer_phone"   validate:"omitempty,max=64"`
	ServiceStreet   string  `json:"service_street"   validate:"max=255"`
	ServiceCity     string  `json:"service_city"     validate:"max=128"`
	ServiceState    string  `json:"service_state"    validate:"max=64"`
	ServiceZip      string  `json:"service_zip"      validate:"max=16"`
	PONumber        *string `json:"po_number"        validate:"omitempty,max=64"`
	Notes           *string `json:"notes"`

	Config         domain.Config `json:"config"`
	DiscountAmount float64       `json:"discount_amount" validate:"gte=0,dec2"`
}

type updateQuoteReq struct {
	Status          *string `json:"status"           validate:"omitempty,oneof=draft sent accepted ordered"`
	CustomerCompany *string `json:"customer_company" validate:"omitempty,max=255"`
	CustomerName    *string `json:"customer_name"    validate:"omitempty,max=255"`
	CustomerEmail   *string `json:"customer_email"   validate:"omitempty,email"`
	CustomerPhone   *string `json:"customer_phone"   validate:"omitempty,max=64"`
	PONumber        *string `json:"po_number"        validate:"omitempty,max=64"`
	Notes           *string `json:"notes"`
}

// Price is the public calculator preview. Without :code it prices against the defaults.
func (h *QuoteHandler) Price(c echo.Context) error {
	var req priceReq
	if err := decode(c, &req); err != nil {
		return respondErr(c, err)
	}
	dto, err := h.uc.Price(c.Request().Context(), ucQuote.PriceInput{
		PartnerCode: c.Param("code"),
		Config:      req.Config,
		Discount:    req.DiscountAmount,
	})
	if err != nil {
		return respondErr(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *QuoteHandler) Create(c echo.Context) error {
	var req createQuoteReq
	if err := decode(c, &req); err != nil {
		return respondErr(c, err)
	}
	q, err := h.uc.Create(c.Request().Context(), principal(c), ucQuote.CreateInput{
		PartnerCode:     req.PartnerCode,
		CustomerCompany: req.CustomerCompany,
		CustomerName:    req.CustomerName,
		CustomerEmail:   req.CustomerEmail,
		CustomerPhone:   req.CustomerPhone,
		ServiceStreet:   req.ServiceStreet,
		ServiceCity:     req.ServiceCity,
		ServiceState:    req.ServiceState,
		ServiceZip:      req.ServiceZip,
		PONumber:        req.PONumber,
		Config:          req.Config,
		Discount:        req.DiscountAmount,
		Notes:           req.Notes,
	})
	if err != nil {
		return respondErr(c, err)
	}
	return c.JSON(http.StatusCreated, q)
}

func (h *QuoteHandler) Get(c echo.Context) error {
	q, err := h.uc.Get(c.Request().Context(), principal(c), c.Param("number"))
	if err != nil {
		return respondErr(c, err)
	}
	return c.JSON(http.StatusOK, q)
}

func (h *QuoteHandler) Update(c echo.Context) error {
	var req updateQuoteReq
	if err := decode(c, &req); err != nil {
		return respondErr(c, err)
	}
	in := ucQuote.UpdateInput{
		CustomerCompany: req.CustomerCompany,
		CustomerName:    req.CustomerName,
		CustomerEmail:   req.CustomerEmail,
		CustomerPhone:   req.CustomerPhone,
		PONumber:        req.PONumber,
		Notes:           req.Notes,
	}
	if req.Status != nil {
		s := domain.Status(*req.Status)
		in.Status = &s
	}
	q, err := h.uc.Update(c.Request().Context(), principal(c), c.Param("number"), in)
	if err != nil {
		return respondErr(c, err)
	}
	return c.JSON(http.StatusOK, q)
}

func (h *QuoteHandler) Resend(c echo.Context) error {
	q, err := h.uc.Resend(c.Request().Context(), principal(c), c.Param("number"))
	if err != nil {
		return respondErr(c, err)
	}
	return c.JSON(http.StatusOK, q)
}

func (h *QuoteHandler) Delete(c echo.Context) error {
	if err := h.uc.Delete(c.Request().Context(), principal(c), c.Param("number")); err != nil {
		return respondErr(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}
