package quote

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/datatypes"

	"aquaria-partner-portal/internal/domain/apperr"
	"aquaria-partner-portal/internal/domain/auth"
	"aquaria-partner-portal/internal/domain/partner"
	"aquaria-partner-portal/internal/domain/pricing"
	domain "aquaria-partner-portal/internal/domain/quote"
	"aquaria-partner-portal/internal/domain/uow"
	"aquaria-partner-portal/pkg/id"
)

const (
	resultOK      = "ok"
	resultInvalid = "invalid"
	resultError   = "error"
)

type Usecase struct {
	quotes    domain.Repository
	partners  partner.Repository
	uow       uow.UnitOfWork
	events    domain.EventPublisher
	metrics   Metrics
	log       *slog.Logger
	houseCode string
	now       func() time.Time
	suffix    func() string
}

type Option func(*Usecase)

func WithPublisher(p domain.EventPublisher) Option { return func(u *Usecase) { u.events = p } }
func WithMetrics(m Metrics) Option                 { return func(u *Usecase) { u.metrics = m } }
func WithLogger(l *slog.Logger) Option             { return func(u *Usecase) { u.log = l } }

// WithHouseCode names the vendor's own partner; its quotes use the default prefix.
func WithHouseCode(code string) Option { return func(u *Usecase) { u.houseCode = code } }

func WithClock(now func() time.Time) Option { return func(u *Usecase) { u.now = now } }

func NewUsecase(quotes domain.Repository, partners partner.Repository, tx uow.UnitOfWork, opts ...Option) *Usecase {
	u := &Usecase{
		quotes:   quotes,
		partners: partners,
		uow:      tx,
		events:   nopPublisher{},
		metrics:  nopMetrics{},
		log:      slog.Default(),
		now:      time.Now,
		suffix:   id.Suffix,
	}
	for _, o := range opts {
		o(u)
	}
	return u
}

// Price is the calculator preview. Nothing is written.
func (u *Usecase) Price(ctx context.Context, in PriceInput) (*PriceDTO, error) {
	code := partner.NormalizeCode(in.PartnerCode)
	eff := partner.DefaultEffective()
	if code != "" {
		p, err := u.partners.GetByCode(ctx, code)
		if err != nil {
			return nil, err
		}
		if !p.IsActive {
			return nil, apperr.ErrNotFound
		}
		if eff, err = p.Effective(); err != nil {
			return nil, err
		}
	}
	res, err := u.compute(code, in.Config, eff, in.Discount)
	if err != nil {
		return nil, err
	}
	return &PriceDTO{PartnerCode: code, ShowPricing: eff.Features.ShowPricing, Result: res}, nil
}

// Create prices the configuration against the partner's effective table and
// stores it with a snapshot of that table. The stored total is never recomputed.
func (u *Usecase) Create(ctx context.Context, actor auth.Principal, in CreateInput) (*domain.Quote, error) {
	if strings.TrimSpace(in.CustomerName) == "" {
		return nil, apperr.Invalid("customer_name", "is required")
	}
	code := partner.NormalizeCode(in.PartnerCode)
	if !actor.IsSuperAdmin() {
		if code == "" {
			code = actor.PartnerCode
		}
		if code == "" || code != actor.PartnerCode {
			return nil, apperr.ErrForbidden
		}
	}

	q := &domain.Quote{
		CustomerCompany: in.CustomerCompany,
		CustomerName:    strings.TrimSpace(in.CustomerName),
		CustomerEmail:   in.CustomerEmail,
		CustomerPhone:   in.CustomerPhone,
		ServiceStreet:   in.ServiceStreet,
		ServiceCity:     in.ServiceCity,
		ServiceState:    in.ServiceState,
		ServiceZip:      in.ServiceZip,
		PONumber:        in.PONumber,
		Notes:           in.Notes,
		Status:          domain.StatusDraft,
	}

	var err error
	if code == "" {
		err = u.price(q, code, in, partner.DefaultEffective())
		if err == nil {
			err = u.quotes.Create(ctx, q)
		}
	} else {
		err = u.uow.WithinPartnerTx(ctx, code, func(r uow.Repos, p *partner.Partner) error {
			if !p.IsActive || (!p.CanCreateQuotes && !actor.IsSuperAdmin()) {
				return fmt.Errorf("%w: %s may not create quotes", apperr.ErrForbidden, code)
			}
			eff, err := p.Effective()
			if err != nil {
				return err
			}
			q.PartnerID = &p.ID
			q.PartnerName = &p.CompanyName
			q.PartnerLogoURL = p.LogoURL
			if err := u.price(q, code, in, eff); err != nil {
				return err
			}
			return r.Quotes.Create(ctx, q)
		})
	}
	if err != nil {
		if errors.Is(err, apperr.ErrStoreUnavailable) || errors.Is(err, apperr.ErrDuplicateCode) {
			u.log.ErrorContext(ctx, "save quote failed", "partner_code", code, "quote_number", q.QuoteNumber, "err", err)
		}
		return nil, err
	}

	u.metrics.QuoteSaved(code, q.FinalTotal)
	u.publish(ctx, domain.EventCreated, q, "")
	u.log.InfoContext(ctx, "quote saved", "partner_code", code, "quote_number", q.QuoteNumber, "final_total", q.FinalTotal)
	return q, nil
}

// price fills totals, snapshots and the quote number on q.
func (u *Usecase) price(q *domain.Quote, code string, in CreateInput, eff partner.Effective) error {
	res, err := u.compute(code, in.Config, eff, in.Discount)
	if err != nil {
		return err
	}
	cfg, err := json.Marshal(in.Config)
	if err != nil {
		return fmt.Errorf("encode quote config: %w", err)
	}
	prices, err := json.Marshal(eff.Prices)
	if err != nil {
		return fmt.Errorf("encode partner pricing: %w", err)
	}
	original := res.OriginalTotal
	q.QuoteConfig = datatypes.JSON(cfg)
	q.PartnerPricing = datatypes.JSON(prices)
	q.OriginalTotal = &original
	q.DiscountAmount = res.Discount
	q.FinalTotal = res.FinalTotal
	q.QuoteNumber = domain.NewNumber(code, u.houseCode, u.now().UTC(), u.suffix())
	return nil
}

func (u *Usecase) compute(code string, cfg domain.Config, eff partner.Effective, discount float64) (pricing.Result, error) {
	start := time.Now()
	if err := eff.Features.CheckSelection(cfg.Model, cfg.Tank, cfg.City); err != nil {
		u.metrics.ObservePricing(code, resultInvalid, time.Since(start))
		return pricing.Result{}, err
	}
	res, err := pricing.Compute(cfg, eff.Prices, eff.Features, discount)
	switch {
	case err == nil:
		u.metrics.ObservePricing(code, resultOK, time.Since(start))
	case errors.Is(err, apperr.ErrInvalidConfiguration):
		u.metrics.ObservePricing(code, resultInvalid, time.Since(start))
	default:
		u.metrics.ObservePricing(code, resultError, time.Since(start))
	}
	return res, err
}

func (u *Usecase) Get(ctx context.Context, actor auth.Principal, number string) (*domain.Quote, error) {
	q, err := u.quotes.GetByNumber(ctx, strings.ToUpper(strings.TrimSpace(number)))
	if err != nil {
		return nil, err
	}
	if err := u.authorize(ctx, actor, q); err != nil {
		return nil, err
	}
	return q, nil
}

// ListForPartner returns the partner's quotes, newest first.
func (u *Usecase) ListForPartner(ctx context.Context, actor auth.Principal, code string) ([]domain.Quote, error) {
	p, err := u.partnerFor(ctx, actor, code)
	if err != nil {
		return nil, err
	}
	return u.quotes.ListForPartner(ctx, p.ID)
}

func (u *Usecase) Stats(ctx context.Context, actor auth.Principal, code string) (Stats, error) {
	qs, err := u.ListForPartner(ctx, actor, code)
	if err != nil {
		return Stats{}, err
	}
	s := Stats{Total: len(qs)}
	total := decimal.Zero
	for _, q := range qs {
		total = total.Add(decimal.NewFromFloat(q.FinalTotal))
		switch q.Status {
		case domain.StatusDraft:
			s.Draft++
		case domain.StatusSent:
			s.Sent++
		case domain.StatusAccepted:
			s.Accepted++
		case domain.StatusOrdered:
			s.Ordered++
		}
	}
	s.TotalValue = total.Round(2).InexactFloat64()
	return s, nil
}

// Update changes status, customer contact or notes. Status only moves forward.
func (u *Usecase) Update(ctx context.Context, actor auth.Principal, number string, in UpdateInput) (*domain.Quote, error) {
	q, err := u.Get(ctx, actor, number)
	if err != nil {
		return nil, err
	}
	patch := domain.Patch{
		Status:          in.Status,
		CustomerCompany: in.CustomerCompany,
		CustomerName:    in.CustomerName,
		CustomerEmail:   in.CustomerEmail,
		CustomerPhone:   in.CustomerPhone,
		PONumber:        in.PONumber,
		Notes:           in.Notes,
	}
	if patch.Empty() {
		return nil, apperr.Invalid("", "nothing to update")
	}
	if in.CustomerName != nil && strings.TrimSpace(*in.CustomerName) == "" {
		return nil, apperr.Invalid("customer_name", "must not be blank")
	}
	prev := q.Status
	if in.Status != nil {
		if err := prev.Transition(*in.Status); err != nil {
			return nil, err
		}
	}
	out, err := u.quotes.Update(ctx, q.ID, patch)
	if err != nil {
		u.log.ErrorContext(ctx, "update quote failed", "quote_number", q.QuoteNumber, "err", err)
		return nil, err
	}
	if in.Status != nil {
		u.metrics.StatusChanged(prev, out.Status)
		u.publish(ctx, domain.EventStatusChanged, out, prev)
	}
	return out, nil
}

// Resend marks a draft or sent quote as sent again and counts the send.
func (u *Usecase) Resend(ctx context.Context, actor auth.Principal, number string) (*domain.Quote, error) {
	q, err := u.Get(ctx, actor, number)
	if err != nil {
		return nil, err
	}
	if !q.Status.Resendable() {
		return nil, apperr.Transition(string(q.Status), string(domain.StatusSent))
	}
	sent := domain.StatusSent
	count := q.SentCount + 1
	at := u.now().UTC()
	out, err := u.quotes.Update(ctx, q.ID, domain.Patch{Status: &sent, SentCount: &count, LastSentAt: &at})
	if err != nil {
		u.log.ErrorContext(ctx, "resend quote failed", "quote_number", q.QuoteNumber, "err", err)
		return nil, err
	}
	if q.Status != sent {
		u.metrics.StatusChanged(q.Status, sent)
	}
	u.publish(ctx, domain.EventResent, out, q.Status)
	return out, nil
}

func (u *Usecase) Delete(ctx context.Context, actor auth.Principal, number string) error {
	q, err := u.Get(ctx, actor, number)
	if err != nil {
		return err
	}
	if err := u.quotes.Delete(ctx, q.ID); err != nil {
		u.log.ErrorContext(ctx, "delete quote failed", "quote_number", q.QuoteNumber, "err", err)
		return err
	}
	return nil
}

// authorize lets super admins through and partner users only to their own partner's quotes.
func (u *Usecase) authorize(ctx context.Context, actor auth.Principal, q *domain.Quote) error {
	if actor.IsSuperAdmin() {
		return nil
	}
	if q.PartnerID == nil || actor.PartnerCode == "" {
		return apperr.ErrForbidden
	}
	p, err := u.partners.GetByCode(ctx, actor.PartnerCode)
	if err != nil {
		return err
	}
	if p.ID != *q.PartnerID {
		return apperr.ErrForbidden
	}
	return nil
}

func (u *Usecase) partnerFor(ctx context.Context, actor auth.Principal, code string) (*partner.Partner, error) {
	code = partner.NormalizeCode(code)
	if !actor.CanAccessPartner(code) {
		return nil, apperr.ErrForbidden
	}
	return u.partners.GetByCode(ctx, code)
}

// publish sends e once. Failures are logged, the write already happened.
func (u *Usecase) publish(ctx context.Context, t domain.EventType, q *domain.Quote, prev domain.Status) {
	e := domain.NewEvent(t, q, prev, u.now())
	if err := u.events.Publish(ctx, e); err != nil {
		u.log.WarnContext(ctx, "publish quote event failed", "type", string(t), "quote_number", q.QuoteNumber, "err", err)
	}
}
