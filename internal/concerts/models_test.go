package concerts

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConcertSellTicket(t *testing.T) {
	t.Parallel()

	const (
		concertDate = int64(1_700_000_000_000)
		beforeDate  = concertDate - 1
		afterDate   = concertDate + 1
	)

	t.Run("mints counter-based ids and consumes inventory", func(t *testing.T) {
		concert := Concert{
			ConcertID:        0,
			TicketPrice:      30,
			Date:             concertDate,
			TicketsAvailable: 30,
			TicketsLeft:      30,
		}

		ticketID, err := concert.SellTicket(beforeDate, 30)
		require.NoError(t, err)
		assert.Equal(t, "0, 30", ticketID)
		assert.Equal(t, uint32(29), concert.TicketsLeft)

		ticketID, err = concert.SellTicket(beforeDate, 30)
		require.NoError(t, err)
		assert.Equal(t, "0, 29", ticketID)
		assert.Equal(t, uint32(28), concert.TicketsLeft)
	})

	t.Run("id embeds the concert id", func(t *testing.T) {
		concert := Concert{
			ConcertID:   7,
			TicketPrice: 10,
			Date:        concertDate,
			TicketsLeft: 3,
		}

		ticketID, err := concert.SellTicket(beforeDate, 10)
		require.NoError(t, err)
		assert.Equal(t, "7, 3", ticketID)
	})

	t.Run("selling the last ticket succeeds, the next attempt is sold out", func(t *testing.T) {
		concert := Concert{
			ConcertID:   1,
			TicketPrice: 10,
			Date:        concertDate,
			TicketsLeft: 1,
		}

		ticketID, err := concert.SellTicket(beforeDate, 10)
		require.NoError(t, err)
		assert.Equal(t, "1, 1", ticketID)
		assert.True(t, concert.IsSoldOut())

		_, err = concert.SellTicket(beforeDate, 10)
		assert.ErrorIs(t, err, ErrTicketsSoldOut)
	})

	t.Run("sold out wins over finished and payment", func(t *testing.T) {
		concert := Concert{
			ConcertID:   2,
			TicketPrice: 10,
			Date:        concertDate,
			TicketsLeft: 0,
		}

		// Date passed and payment wrong, but availability is checked first.
		_, err := concert.SellTicket(afterDate, 999)
		assert.ErrorIs(t, err, ErrTicketsSoldOut)
	})

	t.Run("finished wins over payment", func(t *testing.T) {
		concert := Concert{
			ConcertID:   3,
			TicketPrice: 10,
			Date:        concertDate,
			TicketsLeft: 5,
		}

		_, err := concert.SellTicket(afterDate, 999)
		assert.ErrorIs(t, err, ErrConcertFinished)
		assert.Equal(t, uint32(5), concert.TicketsLeft)
	})

	t.Run("sale exactly at the concert date is allowed", func(t *testing.T) {
		concert := Concert{
			ConcertID:   4,
			TicketPrice: 10,
			Date:        concertDate,
			TicketsLeft: 5,
		}

		_, err := concert.SellTicket(concertDate, 10)
		assert.NoError(t, err)
	})

	t.Run("underpayment and overpayment are both rejected", func(t *testing.T) {
		concert := Concert{
			ConcertID:   5,
			TicketPrice: 30,
			Date:        concertDate,
			TicketsLeft: 10,
		}

		_, err := concert.SellTicket(beforeDate, 29)
		assert.ErrorIs(t, err, ErrIncorrectPaymentValue)

		_, err = concert.SellTicket(beforeDate, 31)
		assert.ErrorIs(t, err, ErrIncorrectPaymentValue)

		// A rejected sale must not consume inventory.
		assert.Equal(t, uint32(10), concert.TicketsLeft)
	})

	t.Run("free concert sells for zero", func(t *testing.T) {
		concert := Concert{
			ConcertID:   6,
			TicketPrice: 0,
			Date:        concertDate,
			TicketsLeft: 2,
		}

		ticketID, err := concert.SellTicket(beforeDate, 0)
		require.NoError(t, err)
		assert.Equal(t, "6, 2", ticketID)
	})
}

func TestConcertIsFinished(t *testing.T) {
	t.Parallel()

	concert := Concert{Date: 1000}

	assert.False(t, concert.IsFinished(999))
	assert.False(t, concert.IsFinished(1000))
	assert.True(t, concert.IsFinished(1001))
}
