package gormrepo

import (
	"context"

	"gorm.io/gorm"

	"aquaria-partner-portal/internal/domain/auth"
)

var _ auth.UserRepository = (*UserRepository)(nil)

type UserRepository struct{ db *gorm.DB }

func NewUserRepository(db *gorm.DB) *UserRepository { return &UserRepository{db: db} }

func (r *UserRepository) Create(ctx context.Context, u *auth.User) error {
	return translate(r.db.WithContext(ctx).Create(u).Error)
}

func (r *UserRepository) GetByID(ctx context.Context, id string) (*auth.User, error) {
	var out auth.User
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&out).Error; err != nil {
		return nil, translate(err)
	}
	return &out, nil
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*auth.User, error) {
	var out auth.User
	if err := r.db.WithContext(ctx).Where("email = ?", auth.NormalizeEmail(email)).First(&out).Error; err != nil {
		return nil, translate(err)
	}
	return &out, nil
}
