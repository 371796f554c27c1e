package gormrepo

import (
	"context"
	"errors"
	"testing"
	"time"

	"aquaria-partner-portal/internal/domain/apperr"
	"aquaria-partner-portal/internal/domain/partner"
	"aquaria-partner-portal/internal/domain/uow"
)

func TestGormUoW_WithinTx_Commit(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()
	guow := NewGormUoW(db)

	err := guow.WithinTx(ctx, func(r uow.Repos) error {
		p := makePartner("AWS07", "ABC Water Solutions")
		if err := r.Partners.Create(ctx, p); err != nil {
			return err
		}
		return r.Quotes.Create(ctx, makeQuote("AW-20250602-COMMIT", &p.ID, time.Now()))
	})
	if err != nil {
		t.Fatalf("WithinTx commit err: %v", err)
	}

	if _, err := NewPartnerRepository(db).GetByCode(ctx, "AWS07"); err != nil {
		t.Fatalf("partner not visible after commit: %v", err)
	}
	if _, err := NewQuoteRepository(db).GetByNumber(ctx, "AW-20250602-COMMIT"); err != nil {
		t.Fatalf("quote not visible after commit: %v", err)
	}
}

func TestGormUoW_WithinTx_Rollback(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()
	guow := NewGormUoW(db)
	sentinel := errors.New("boom")

	err := guow.WithinTx(ctx, func(r uow.Repos) error {
		if err := r.Partners.Create(ctx, makePartner("ROLL01", "Rollback Inc")); err != nil {
			return err
		}
		return sentinel
	})
	if !errors.Is(err, sentinel) {
		t.Fatalf("fn error must be returned unchanged, got %v", err)
	}
	if _, err := NewPartnerRepository(db).GetByCode(ctx, "ROLL01"); !errors.Is(err, apperr.ErrNotFound) {
		t.Fatalf("expected partner absent after rollback, got %v", err)
	}
}

// Check-then-insert under one transaction: a taken code fails without writing.
func TestGormUoW_WithinTx_DuplicateCodeNoWrite(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()
	guow := NewGormUoW(db)

	if err := NewPartnerRepository(db).Create(ctx, makePartner("AWS07", "ABC Water Solutions")); err != nil {
		t.Fatalf("seed: %v", err)
	}
	err := guow.WithinTx(ctx, func(r uow.Repos) error {
		exists, err := r.Partners.ExistsByCode(ctx, "AWS07")
		if err != nil {
			return err
		}
		if exists {
			return apperr.ErrDuplicateCode
		}
		return r.Partners.Create(ctx, makePartner("AWS07", "Acme Water Systems"))
	})
	if !errors.Is(err, apperr.ErrDuplicateCode) {
		t.Fatalf("want ErrDuplicateCode, got %v", err)
	}
	all, _ := NewPartnerRepository(db).ListAll(ctx)
	if len(all) != 1 || all[0].CompanyName != "ABC Water Solutions" {
		t.Fatalf("store changed: %+v", all)
	}
}

func TestGormUoW_WithinPartnerTx(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()
	guow := NewGormUoW(db)

	seed := makePartner("AWS07", "ABC Water Solutions")
	if err := NewPartnerRepository(db).Create(ctx, seed); err != nil {
		t.Fatalf("seed: %v", err)
	}

	err := guow.WithinPartnerTx(ctx, "AWS07", func(r uow.Repos, p *partner.Partner) error {
		if p == nil || p.ID != seed.ID {
			t.Fatalf("unexpected partner passed to fn: %+v", p)
		}
		return r.Quotes.Create(ctx, makeQuote("AW-20250602-LOCKED", &p.ID, time.Now()))
	})
	if err != nil {
		t.Fatalf("WithinPartnerTx: %v", err)
	}
	got, err := NewQuoteRepository(db).ListForPartner(ctx, seed.ID)
	if err != nil || len(got) != 1 {
		t.Fatalf("quotes after commit: %v, %v", got, err)
	}

	err = guow.WithinPartnerTx(ctx, "AWS07", func(r uow.Repos, p *partner.Partner) error {
		if err := r.Quotes.Create(ctx, makeQuote("AW-20250602-ROLLED", &p.ID, time.Now())); err != nil {
			return err
		}
		return apperr.ErrForbidden
	})
	if !errors.Is(err, apperr.ErrForbidden) {
		t.Fatalf("want ErrForbidden, got %v", err)
	}
	if _, err := NewQuoteRepository(db).GetByNumber(ctx, "AW-20250602-ROLLED"); !errors.Is(err, apperr.ErrNotFound) {
		t.Fatalf("expected quote absent after rollback, got %v", err)
	}
}

func TestGormUoW_WithinPartnerTx_PartnerNotFound(t *testing.T) {
	db := openTestDB(t)
	guow := NewGormUoW(db)

	err := guow.WithinPartnerTx(context.Background(), "NOPE", func(uow.Repos, *partner.Partner) error {
		t.Fatalf("callback should not be called when partner missing")
		return nil
	})
	if !errors.Is(err, apperr.ErrNotFound) {
		t.Fatalf("want ErrNotFound, got %v", err)
	}
}
