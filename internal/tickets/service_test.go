package tickets

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ticketly/internal/clock"
	"ticketly/internal/concerts"
)

// fakeRepository mirrors the transactional semantics of the Postgres
// repository: a failed sale leaves both the concert and the ledger untouched.
type fakeRepository struct {
	concerts map[uint32]*concerts.Concert
	tickets  []Ticket
	nextID   uint64
}

func newFakeRepository(cs ...*concerts.Concert) *fakeRepository {
	repo := &fakeRepository{
		concerts: make(map[uint32]*concerts.Concert),
		nextID:   1,
	}
	for _, c := range cs {
		repo.concerts[c.ConcertID] = c
	}
	return repo
}

func (f *fakeRepository) PurchaseTicket(ctx context.Context, concertID uint32, account uuid.UUID, ownerName string, paid uint32, now int64) (*Ticket, error) {
	concert, ok := f.concerts[concertID]
	if !ok {
		return nil, concerts.ErrConcertDoesntExist
	}

	ticketID, err := concert.SellTicket(now, paid)
	if err != nil {
		return nil, err
	}

	ticket := Ticket{
		ID:           f.nextID,
		TicketID:     ticketID,
		ConcertID:    concertID,
		OwnerAccount: account,
		OwnerName:    ownerName,
		PricePaid:    paid,
		CreatedAt:    time.UnixMilli(now),
	}
	f.nextID++
	f.tickets = append(f.tickets, ticket)
	return &ticket, nil
}

func (f *fakeRepository) GetTicketsByAccount(ctx context.Context, account uuid.UUID) ([]Ticket, error) {
	var owned []Ticket
	for _, ticket := range f.tickets {
		if ticket.OwnerAccount == account {
			owned = append(owned, ticket)
		}
	}
	return owned, nil
}

func (f *fakeRepository) GetTicketByTicketID(ctx context.Context, ticketID string) (*Ticket, error) {
	for i := range f.tickets {
		if f.tickets[i].TicketID == ticketID {
			ticket := f.tickets[i]
			return &ticket, nil
		}
	}
	return nil, ErrTicketNotFound
}

var saleOpen = time.Date(2026, 1, 2, 10, 0, 0, 0, time.UTC)

func testConcert() *concerts.Concert {
	return &concerts.Concert{
		ConcertID:        0,
		TicketPrice:      30,
		Date:             saleOpen.Add(24 * time.Hour).UnixMilli(),
		TicketsAvailable: 30,
		TicketsLeft:      30,
	}
}

func TestServiceBuyTicket(t *testing.T) {
	t.Parallel()

	buyer := uuid.MustParse("7d9f0b50-0000-0000-0000-000000000001")

	t.Run("successful purchase records owner and mints counter ids", func(t *testing.T) {
		repo := newFakeRepository(testConcert())
		svc := NewService(repo, clock.NewFixed(saleOpen), nil, nil)

		first, err := svc.BuyTicket(context.Background(), buyer, PurchaseTicketRequest{
			ConcertID:    0,
			BuyerName:    "Jane",
			BuyerSurname: "Doe",
			PaidAmount:   30,
		})
		require.NoError(t, err)
		assert.Equal(t, "0, 30", first.TicketID)
		assert.Equal(t, "Jane Doe", first.OwnerName)
		assert.Equal(t, buyer.String(), first.OwnerAccount)
		assert.Equal(t, uint32(30), first.PricePaid)

		second, err := svc.BuyTicket(context.Background(), buyer, PurchaseTicketRequest{
			ConcertID:    0,
			BuyerName:    "Jane",
			BuyerSurname: "Doe",
			PaidAmount:   30,
		})
		require.NoError(t, err)
		assert.Equal(t, "0, 29", second.TicketID)
	})

	t.Run("unknown concert", func(t *testing.T) {
		repo := newFakeRepository()
		svc := NewService(repo, clock.NewFixed(saleOpen), nil, nil)

		_, err := svc.BuyTicket(context.Background(), buyer, PurchaseTicketRequest{
			ConcertID:    9,
			BuyerName:    "Jane",
			BuyerSurname: "Doe",
			PaidAmount:   30,
		})
		assert.ErrorIs(t, err, concerts.ErrConcertDoesntExist)
	})

	t.Run("selling out is terminal", func(t *testing.T) {
		concert := testConcert()
		concert.TicketsAvailable = 2
		concert.TicketsLeft = 2
		repo := newFakeRepository(concert)
		svc := NewService(repo, clock.NewFixed(saleOpen), nil, nil)

		req := PurchaseTicketRequest{ConcertID: 0, BuyerName: "Jane", BuyerSurname: "Doe", PaidAmount: 30}

		_, err := svc.BuyTicket(context.Background(), buyer, req)
		require.NoError(t, err)
		_, err = svc.BuyTicket(context.Background(), buyer, req)
		require.NoError(t, err)

		_, err = svc.BuyTicket(context.Background(), buyer, req)
		assert.ErrorIs(t, err, concerts.ErrTicketsSoldOut)
		assert.Len(t, repo.tickets, 2)
	})

	t.Run("finished concert rejects the sale", func(t *testing.T) {
		concert := testConcert()
		afterConcert := time.UnixMilli(concert.Date).Add(time.Minute)
		repo := newFakeRepository(concert)
		svc := NewService(repo, clock.NewFixed(afterConcert), nil, nil)

		_, err := svc.BuyTicket(context.Background(), buyer, PurchaseTicketRequest{
			ConcertID:    0,
			BuyerName:    "Jane",
			BuyerSurname: "Doe",
			PaidAmount:   30,
		})
		assert.ErrorIs(t, err, concerts.ErrConcertFinished)
		assert.Equal(t, uint32(30), concert.TicketsLeft)
	})

	t.Run("wrong payment leaves state unchanged", func(t *testing.T) {
		concert := testConcert()
		repo := newFakeRepository(concert)
		svc := NewService(repo, clock.NewFixed(saleOpen), nil, nil)

		for _, paid := range []uint32{0, 29, 31, 1000} {
			_, err := svc.BuyTicket(context.Background(), buyer, PurchaseTicketRequest{
				ConcertID:    0,
				BuyerName:    "Jane",
				BuyerSurname: "Doe",
				PaidAmount:   paid,
			})
			assert.ErrorIs(t, err, concerts.ErrIncorrectPaymentValue, "paid=%d", paid)
		}

		assert.Equal(t, uint32(30), concert.TicketsLeft)
		assert.Empty(t, repo.tickets)
	})
}

func TestServiceGetMyTickets(t *testing.T) {
	t.Parallel()

	buyer := uuid.MustParse("7d9f0b50-0000-0000-0000-000000000001")
	other := uuid.MustParse("7d9f0b50-0000-0000-0000-000000000002")

	t.Run("account with no purchases gets an empty list", func(t *testing.T) {
		repo := newFakeRepository(testConcert())
		svc := NewService(repo, clock.NewFixed(saleOpen), nil, nil)

		list, err := svc.GetMyTickets(context.Background(), buyer)
		require.NoError(t, err)
		assert.Equal(t, 0, list.Count)
		assert.Empty(t, list.TicketIDs)
		assert.Empty(t, list.Tickets)
	})

	t.Run("tickets come back in purchase order and belong to the caller", func(t *testing.T) {
		repo := newFakeRepository(testConcert())
		svc := NewService(repo, clock.NewFixed(saleOpen), nil, nil)

		req := PurchaseTicketRequest{ConcertID: 0, BuyerName: "Jane", BuyerSurname: "Doe", PaidAmount: 30}

		_, err := svc.BuyTicket(context.Background(), buyer, req)
		require.NoError(t, err)
		_, err = svc.BuyTicket(context.Background(), other, req)
		require.NoError(t, err)
		_, err = svc.BuyTicket(context.Background(), buyer, req)
		require.NoError(t, err)

		list, err := svc.GetMyTickets(context.Background(), buyer)
		require.NoError(t, err)
		assert.Equal(t, 2, list.Count)
		assert.Equal(t, []string{"0, 30", "0, 28"}, list.TicketIDs)
		for _, ticket := range list.Tickets {
			assert.Equal(t, buyer.String(), ticket.OwnerAccount)
		}
	})

	t.Run("every sold ticket appears in exactly one account list", func(t *testing.T) {
		repo := newFakeRepository(testConcert())
		svc := NewService(repo, clock.NewFixed(saleOpen), nil, nil)

		req := PurchaseTicketRequest{ConcertID: 0, BuyerName: "Jane", BuyerSurname: "Doe", PaidAmount: 30}
		for i := 0; i < 3; i++ {
			_, err := svc.BuyTicket(context.Background(), buyer, req)
			require.NoError(t, err)
			_, err = svc.BuyTicket(context.Background(), other, req)
			require.NoError(t, err)
		}

		seen := make(map[string]int)
		for _, account := range []uuid.UUID{buyer, other} {
			list, err := svc.GetMyTickets(context.Background(), account)
			require.NoError(t, err)
			for _, id := range list.TicketIDs {
				seen[id]++
			}
		}

		assert.Len(t, seen, 6)
		for id, count := range seen {
			assert.Equal(t, 1, count, "ticket %s listed %d times", id, count)
		}
	})
}

func TestServiceGetTicket(t *testing.T) {
	t.Parallel()

	buyer := uuid.MustParse("7d9f0b50-0000-0000-0000-000000000001")
	repo := newFakeRepository(testConcert())
	svc := NewService(repo, clock.NewFixed(saleOpen), nil, nil)

	bought, err := svc.BuyTicket(context.Background(), buyer, PurchaseTicketRequest{
		ConcertID:    0,
		BuyerName:    "Jane",
		BuyerSurname: "Doe",
		PaidAmount:   30,
	})
	require.NoError(t, err)

	found, err := svc.GetTicket(context.Background(), bought.TicketID)
	require.NoError(t, err)
	assert.Equal(t, bought.TicketID, found.TicketID)
	assert.Equal(t, "Jane Doe", found.OwnerName)

	_, err = svc.GetTicket(context.Background(), fmt.Sprintf("%d, %d", 0, 1))
	assert.ErrorIs(t, err, ErrTicketNotFound)
}
