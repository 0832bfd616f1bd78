package concerts

import (
	"context"
	"fmt"
	"log/slog"

	"ticketly/internal/notifications"
	"ticketly/internal/shared/constants"
	"ticketly/pkg/cache"
	"ticketly/pkg/logger"
)

// Service interface defines the contract for catalog business logic
type Service interface {
	AddConcert(ctx context.Context, operatorID string, req CreateConcertRequest) (*ConcertResponse, error)
	GetConcertByID(ctx context.Context, concertID uint32) (*ConcertResponse, error)
	ListConcerts(ctx context.Context) ([]ConcertResponse, error)
}

type service struct {
	repo     Repository
	cache    cache.Service
	producer notifications.Producer
}

// NewService creates a new catalog service. cache and producer may be nil, in
// which case reads go straight to the repository and no events are published.
func NewService(repo Repository, cacheService cache.Service, producer notifications.Producer) Service {
	return &service{
		repo:     repo,
		cache:    cacheService,
		producer: producer,
	}
}

// AddConcert appends a new concert to the catalog. The catalog layer performs
// no validation of price, date, or availability; it is append-only and the
// operation never fails for business reasons.
func (s *service) AddConcert(ctx context.Context, operatorID string, req CreateConcertRequest) (*ConcertResponse, error) {
	concert := &Concert{
		TicketPrice:      req.TicketPrice,
		Date:             req.Date,
		TicketsAvailable: req.TicketsAvailable,
		CreatedBy:        operatorID,
	}

	if err := s.repo.Create(ctx, concert); err != nil {
		return nil, err
	}

	s.invalidateListCache(ctx)
	logger.GetDefault().LogConcertCreated(ctx, concert.ConcertID, operatorID)

	if s.producer != nil {
		notification := notifications.NewConcertAddedNotification(concert.ConcertID, operatorID, concert.TicketPrice)
		if err := s.producer.PublishNotification(ctx, notification); err != nil {
			// The concert is committed; a notification failure must not undo it.
			logger.GetDefault().Error("failed to publish concert added notification",
				slog.Uint64("concert_id", uint64(concert.ConcertID)),
				slog.Any("error", err),
			)
		}
	}

	resp := concert.ToResponse()
	return &resp, nil
}

func (s *service) GetConcertByID(ctx context.Context, concertID uint32) (*ConcertResponse, error) {
	concert, err := s.repo.GetByID(ctx, concertID)
	if err != nil {
		return nil, err
	}
	resp := concert.ToResponse()
	return &resp, nil
}

// ListConcerts returns every concert in ascending id order. The id sequence
// is dense, so a mismatch between the stored rows and the 0..n-1 range means
// the catalog is corrupted; that surfaces as ErrConcertDoesntExist rather
// than silently skipping the hole.
func (s *service) ListConcerts(ctx context.Context) ([]ConcertResponse, error) {
	if s.cache != nil {
		var cached []ConcertResponse
		err := s.cache.Get(ctx, constants.CACHE_KEY_CONCERTS_LIST, &cached)
		if err == nil {
			return cached, nil
		}
		if err != cache.ErrCacheMiss {
			logger.GetDefault().Warn("concert list cache read failed", slog.Any("error", err))
		}
	}

	concerts, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list concerts: %w", err)
	}

	responses := make([]ConcertResponse, 0, len(concerts))
	for i, concert := range concerts {
		if concert.ConcertID != uint32(i) {
			return nil, fmt.Errorf("concert %d missing from catalog: %w", i, ErrConcertDoesntExist)
		}
		responses = append(responses, concert.ToResponse())
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, constants.CACHE_KEY_CONCERTS_LIST, responses, constants.TTL_CONCERTS_LIST); err != nil {
			logger.GetDefault().Warn("concert list cache write failed", slog.Any("error", err))
		}
	}

	return responses, nil
}

func (s *service) invalidateListCache(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Delete(ctx, constants.CACHE_KEY_CONCERTS_LIST); err != nil {
		logger.GetDefault().Warn("concert list cache invalidation failed", slog.Any("error", err))
	}
}
