package authmock

import (
	"context"
	"errors"
	"sync"
	"time"

	"aquaria-partner-portal/internal/domain/apperr"
	domain "aquaria-partner-portal/internal/domain/auth"
)

var (
	_ domain.UserRepository = (*Users)(nil)
	_ domain.SessionStore   = (*Sessions)(nil)
)

var errUnimplemented = errors.New("authmock: method not implemented")

// Users is a function-backed mock that satisfies domain.UserRepository.
type Users struct {
	CreateFn     func(ctx context.Context, u *domain.User) error
	GetByIDFn    func(ctx context.Context, id string) (*domain.User, error)
	GetByEmailFn func(ctx context.Context, email string) (*domain.User, error)
}

func (m *Users) Create(ctx context.Context, u *domain.User) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, u)
	}
	return nil
}

func (m *Users) GetByID(ctx context.Context, id string) (*domain.User, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}
	return nil, errUnimplemented
}

func (m *Users) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	if m.GetByEmailFn != nil {
		return m.GetByEmailFn(ctx, email)
	}
	return nil, errUnimplemented
}

// Sessions is an in-memory session store. TTLs are recorded, not enforced.
type Sessions struct {
	mu   sync.Mutex
	Data map[string]domain.Session
	TTLs map[string]time.Duration
	Err  error
}

func NewSessions() *Sessions {
	return &Sessions{Data: map[string]domain.Session{}, TTLs: map[string]time.Duration{}}
}

func (s *Sessions) Save(_ context.Context, sess domain.Session, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return s.Err
	}
	s.Data[sess.ID] = sess
	s.TTLs[sess.ID] = ttl
	return nil
}

func (s *Sessions) Get(_ context.Context, id string) (*domain.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return nil, s.Err
	}
	sess, ok := s.Data[id]
	if !ok {
		return nil, apperr.ErrNotFound
	}
	return &sess, nil
}

func (s *Sessions) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return s.Err
	}
	delete(s.Data, id)
	return nil
}
