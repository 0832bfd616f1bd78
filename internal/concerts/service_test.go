package concerts

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeRepository allocates ids the same way the Postgres repository does:
// dense, starting at 0, append only.
type fakeRepository struct {
	concerts []Concert
}

func newFakeRepository() *fakeRepository {
	return &fakeRepository{}
}

func (f *fakeRepository) Create(ctx context.Context, concert *Concert) error {
	concert.ConcertID = uint32(len(f.concerts))
	concert.TicketsLeft = concert.TicketsAvailable
	f.concerts = append(f.concerts, *concert)
	return nil
}

func (f *fakeRepository) GetByID(ctx context.Context, concertID uint32) (*Concert, error) {
	for i := range f.concerts {
		if f.concerts[i].ConcertID == concertID {
			concert := f.concerts[i]
			return &concert, nil
		}
	}
	return nil, ErrConcertDoesntExist
}

func (f *fakeRepository) GetAll(ctx context.Context) ([]Concert, error) {
	out := make([]Concert, len(f.concerts))
	copy(out, f.concerts)
	return out, nil
}

func TestServiceAddConcert(t *testing.T) {
	t.Parallel()

	repo := newFakeRepository()
	svc := NewService(repo, nil, nil)

	operator := "3f9e6f60-0000-0000-0000-000000000001"

	first, err := svc.AddConcert(context.Background(), operator, CreateConcertRequest{
		TicketsAvailable: 30,
		TicketPrice:      30,
		Date:             1_700_000_000_000,
	})
	require.NoError(t, err)
	assert.Equal(t, uint32(0), first.ConcertID)
	assert.Equal(t, uint32(30), first.TicketsLeft)

	second, err := svc.AddConcert(context.Background(), operator, CreateConcertRequest{
		TicketsAvailable: 100,
		TicketPrice:      55,
		Date:             1_800_000_000_000,
	})
	require.NoError(t, err)
	assert.Equal(t, uint32(1), second.ConcertID)

	// The catalog accepts anything: zero price, past dates, duplicates.
	free, err := svc.AddConcert(context.Background(), operator, CreateConcertRequest{
		TicketsAvailable: 1,
		TicketPrice:      0,
		Date:             1,
	})
	require.NoError(t, err)
	assert.Equal(t, uint32(2), free.ConcertID)
}

func TestServiceListConcerts(t *testing.T) {
	t.Parallel()

	t.Run("returns concerts in id order", func(t *testing.T) {
		repo := newFakeRepository()
		svc := NewService(repo, nil, nil)

		for i := 0; i < 3; i++ {
			_, err := svc.AddConcert(context.Background(), "op", CreateConcertRequest{
				TicketsAvailable: uint32(10 * (i + 1)),
				TicketPrice:      uint32(i),
				Date:             1_700_000_000_000,
			})
			require.NoError(t, err)
		}

		listed, err := svc.ListConcerts(context.Background())
		require.NoError(t, err)
		require.Len(t, listed, 3)
		for i, concert := range listed {
			assert.Equal(t, uint32(i), concert.ConcertID)
		}
	})

	t.Run("empty catalog lists empty", func(t *testing.T) {
		svc := NewService(newFakeRepository(), nil, nil)

		listed, err := svc.ListConcerts(context.Background())
		require.NoError(t, err)
		assert.Empty(t, listed)
	})

	t.Run("a hole in the id sequence is reported as corruption", func(t *testing.T) {
		repo := newFakeRepository()
		repo.concerts = []Concert{
			{ConcertID: 0, TicketsAvailable: 10, TicketsLeft: 10},
			{ConcertID: 2, TicketsAvailable: 10, TicketsLeft: 10}, // id 1 missing
		}
		svc := NewService(repo, nil, nil)

		_, err := svc.ListConcerts(context.Background())
		assert.ErrorIs(t, err, ErrConcertDoesntExist)
	})
}

func TestServiceGetConcertByID(t *testing.T) {
	t.Parallel()

	repo := newFakeRepository()
	svc := NewService(repo, nil, nil)

	created, err := svc.AddConcert(context.Background(), "op", CreateConcertRequest{
		TicketsAvailable: 5,
		TicketPrice:      20,
		Date:             1_700_000_000_000,
	})
	require.NoError(t, err)

	found, err := svc.GetConcertByID(context.Background(), created.ConcertID)
	require.NoError(t, err)
	assert.Equal(t, created.ConcertID, found.ConcertID)
	assert.Equal(t, uint32(20), found.TicketPrice)

	_, err = svc.GetConcertByID(context.Background(), 42)
	assert.ErrorIs(t, err, ErrConcertDoesntExist)
}
