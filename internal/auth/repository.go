// internal/auth/repository.go
package auth

import (
	"context"
	"errors"

	"ticketly/internal/accounts"

	"gorm.io/gorm"
)

type Repository interface {
	CreateAccount(ctx context.Context, account *accounts.Account) error
	GetAccountByEmail(ctx context.Context, email string) (*accounts.Account, error)
	GetAccountByID(ctx context.Context, id string) (*accounts.Account, error)
	EmailExists(ctx context.Context, email string) (bool, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{
		db: db,
	}
}

func (r *repository) CreateAccount(ctx context.Context, account *accounts.Account) error {
	if err := r.db.WithContext(ctx).Create(account).Error; err != nil {
		return err
	}
	return nil
}

func (r *repository) GetAccountByEmail(ctx context.Context, email string) (*accounts.Account, error) {
	var account accounts.Account
	err := r.db.WithContext(ctx).Where("email = ?", email).First(&account).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, accounts.ErrAccountNotFound
		}
		return nil, err
	}
	return &account, nil
}

func (r *repository) GetAccountByID(ctx context.Context, id string) (*accounts.Account, error) {
	var account accounts.Account
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&account).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, accounts.ErrAccountNotFound
		}
		return nil, err
	}
	return &account, nil
}

func (r *repository) EmailExists(ctx context.Context, email string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&accounts.Account{}).Where("email = ?", email).Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}
