package uowmock

import (
	"context"
	"errors"
	"testing"

	"aquaria-partner-portal/internal/domain/partner"
	"aquaria-partner-portal/internal/domain/uow"
	"aquaria-partner-portal/internal/testutil/partnermock"
	"aquaria-partner-portal/internal/testutil/quotemock"
)

func TestUoW_WithinTx_Happy(t *testing.T) {
	ctx := context.Background()

	partners := &partnermock.Repo{}
	quotes := &quotemock.Repo{}
	repos := uow.Repos{Partners: partners, Quotes: quotes}

	innerCalled := false
	m := &UoW{
		WithinTxFn: func(gotCtx context.Context, fn func(r uow.Repos) error) error {
			if gotCtx != ctx {
				t.Fatalf("WithinTx: ctx mismatch")
			}
			if fn == nil {
				t.Fatalf("WithinTx: fn is nil")
			}
			// simulate transaction body
			return fn(repos)
		},
	}

	err := m.WithinTx(ctx, func(r uow.Repos) error {
		innerCalled = true
		if r.Partners != partners || r.Quotes != quotes {
			t.Fatalf("WithinTx: repos not forwarded correctly")
		}
		return nil
	})
	if err != nil {
		t.Fatalf("WithinTx: unexpected err: %v", err)
	}
	if !innerCalled {
		t.Fatalf("WithinTx: inner fn not called")
	}
}

func TestUoW_WithinTx_PropagatesError(t *testing.T) {
	ctx := context.Background()
	sentinel := errors.New("boom")

	m := &UoW{
		WithinTxFn: func(context.Context, func(uow.Repos) error) error {
			return sentinel
		},
	}
	if err := m.WithinTx(ctx, func(uow.Repos) error { return nil }); !errors.Is(err, sentinel) {
		t.Fatalf("WithinTx: want %v, got %v", sentinel, err)
	}
}

func TestUoW_Default_Unimplemented(t *testing.T) {
	ctx := context.Background()
	m := &UoW{} // no funcs set
	if err := m.WithinTx(ctx, func(uow.Repos) error { return nil }); !errors.Is(err, errUnimplemented) {
		t.Fatalf("WithinTx default: want errUnimplemented, got %v", err)
	}
	if err := m.WithinPartnerTx(ctx, "AWS07", func(uow.Repos, *partner.Partner) error { return nil }); !errors.Is(err, errUnimplemented) {
		t.Fatalf("WithinPartnerTx default: want errUnimplemented, got %v", err)
	}
}

func TestPassthrough_WithinPartnerTx(t *testing.T) {
	ctx := context.Background()
	lock := &partner.Partner{ID: "p-7", PartnerCode: "AWS07"}
	partners := &partnermock.Repo{
		GetByCodeFn: func(_ context.Context, code string) (*partner.Partner, error) {
			if code != "AWS07" {
				t.Fatalf("GetByCode: code mismatch, got %s", code)
			}
			return lock, nil
		},
	}
	m := Passthrough(uow.Repos{Partners: partners})

	innerCalled := false
	err := m.WithinPartnerTx(ctx, "AWS07", func(r uow.Repos, p *partner.Partner) error {
		innerCalled = true
		if r.Partners != partners || p != lock {
			t.Fatalf("WithinPartnerTx: args not forwarded: %+v", p)
		}
		return nil
	})
	if err != nil || !innerCalled {
		t.Fatalf("WithinPartnerTx: err=%v called=%v", err, innerCalled)
	}
}

func TestUoW_FluentSetters_And_Reset(t *testing.T) {
	m := New()
	if m.WithinTxFn != nil || m.WithinPartnerTxFn != nil {
		t.Fatalf("New should start with nil funcs")
	}

	m.WithWithinTx(func(context.Context, func(uow.Repos) error) error { return nil }).
		WithWithinPartnerTx(func(context.Context, string, func(uow.Repos, *partner.Partner) error) error { return nil })

	if m.WithinTxFn == nil || m.WithinPartnerTxFn == nil {
		t.Fatalf("fluent setters didn't assign funcs")
	}

	m.Reset()
	if m.WithinTxFn != nil || m.WithinPartnerTxFn != nil {
		t.Fatalf("Reset should clear function fields")
	}
}
