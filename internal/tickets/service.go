package tickets

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"ticketly/internal/clock"
	"ticketly/internal/notifications"
	"ticketly/internal/shared/constants"
	"ticketly/pkg/cache"
	"ticketly/pkg/logger"
)

// Service interface defines the contract for the purchase workflow and
// ledger queries.
type Service interface {
	BuyTicket(ctx context.Context, account uuid.UUID, req PurchaseTicketRequest) (*TicketResponse, error)
	GetMyTickets(ctx context.Context, account uuid.UUID) (*TicketListResponse, error)
	GetTicket(ctx context.Context, ticketID string) (*TicketResponse, error)
}

type service struct {
	repo     Repository
	clock    clock.Clock
	cache    cache.Service
	producer notifications.Producer
}

// NewService creates a new ticket service. cache and producer may be nil;
// the purchase flow works without them.
func NewService(repo Repository, clk clock.Clock, cacheService cache.Service, producer notifications.Producer) Service {
	return &service{
		repo:     repo,
		clock:    clk,
		cache:    cacheService,
		producer: producer,
	}
}

// BuyTicket orchestrates a single purchase. Validation and every write happen
// inside one repository transaction; a failed purchase is terminal for this
// call and leaves no state change. The payment must equal the ticket price
// exactly, so overpayment is rejected the same as underpayment.
func (s *service) BuyTicket(ctx context.Context, account uuid.UUID, req PurchaseTicketRequest) (*TicketResponse, error) {
	ownerName := req.BuyerName + " " + req.BuyerSurname
	now := s.clock.Now().UnixMilli()

	ticket, err := s.repo.PurchaseTicket(ctx, req.ConcertID, account, ownerName, req.PaidAmount, now)
	if err != nil {
		return nil, err
	}

	// Inventory changed; drop the cached catalog listing.
	s.invalidateConcertCache(ctx)

	appLogger := logger.GetDefault()
	appLogger.LogTicketSold(ctx, ticket.TicketID, ticket.ConcertID, account.String())

	if s.producer != nil {
		notification := notifications.NewTicketSoldNotification(ticket.TicketID, ticket.ConcertID, account.String(), ticket.OwnerName, ticket.PricePaid)
		if err := s.producer.PublishNotification(ctx, notification); err != nil {
			// The sale is committed; a notification failure must not undo it.
			appLogger.Error("failed to publish ticket sold notification",
				slog.String("ticket_id", ticket.TicketID),
				slog.Any("error", err),
			)
		}
	}

	resp := ticket.ToResponse()
	return &resp, nil
}

// GetMyTickets returns the caller's tickets in purchase order. An account
// that has never bought a ticket gets an empty list, not an error.
func (s *service) GetMyTickets(ctx context.Context, account uuid.UUID) (*TicketListResponse, error) {
	tickets, err := s.repo.GetTicketsByAccount(ctx, account)
	if err != nil {
		return nil, err
	}

	ticketIDs := make([]string, 0, len(tickets))
	responses := make([]TicketResponse, 0, len(tickets))
	for _, ticket := range tickets {
		ticketIDs = append(ticketIDs, ticket.TicketID)
		responses = append(responses, ticket.ToResponse())
	}

	return &TicketListResponse{
		TicketIDs: ticketIDs,
		Tickets:   responses,
		Count:     len(responses),
	}, nil
}

func (s *service) GetTicket(ctx context.Context, ticketID string) (*TicketResponse, error) {
	ticket, err := s.repo.GetTicketByTicketID(ctx, ticketID)
	if err != nil {
		return nil, err
	}
	resp := ticket.ToResponse()
	return &resp, nil
}

func (s *service) invalidateConcertCache(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Delete(ctx, constants.CACHE_KEY_CONCERTS_LIST); err != nil {
		logger.GetDefault().Warn("concert list cache invalidation failed", slog.Any("error", err))
	}
}
