package concerts

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
)

type Repository interface {
	// Create assigns the next sequential concert id and persists the record.
	Create(ctx context.Context, concert *Concert) error
	GetByID(ctx context.Context, concertID uint32) (*Concert, error)
	GetAll(ctx context.Context) ([]Concert, error)
}

// Advisory lock key guarding the dense concert id sequence.
const concertIDLockKey = 7413001

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

// Create allocates the identifier inside a transaction guarded by an advisory
// lock so the id sequence stays dense even if two operators publish at the
// same instant. Ids start at 0 and concerts are never deleted, so MAX+1 is
// always the next free slot.
func (r *repository) Create(ctx context.Context, concert *Concert) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec("SELECT pg_advisory_xact_lock(?)", concertIDLockKey).Error; err != nil {
			return fmt.Errorf("failed to lock concert id sequence: %w", err)
		}

		var next uint32
		err := tx.Raw("SELECT COALESCE(MAX(concert_id) + 1, 0) FROM concerts").
			Scan(&next).Error
		if err != nil {
			return fmt.Errorf("failed to allocate concert id: %w", err)
		}

		concert.ConcertID = next
		concert.TicketsLeft = concert.TicketsAvailable

		if err := tx.Create(concert).Error; err != nil {
			return fmt.Errorf("failed to create concert: %w", err)
		}
		return nil
	})
}

func (r *repository) GetByID(ctx context.Context, concertID uint32) (*Concert, error) {
	var concert Concert
	err := r.db.WithContext(ctx).Where("concert_id = ?", concertID).First(&concert).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrConcertDoesntExist
		}
		return nil, err
	}
	return &concert, nil
}

func (r *repository) GetAll(ctx context.Context) ([]Concert, error) {
	var concerts []Concert
	err := r.db.WithContext(ctx).Order("concert_id ASC").Find(&concerts).Error
	return concerts, err
}
