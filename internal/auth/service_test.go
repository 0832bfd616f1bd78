package auth

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"ticketly/internal/accounts"
	"ticketly/internal/shared/config"
)

type fakeRepository struct {
	byEmail map[string]*accounts.Account
	byID    map[string]*accounts.Account
}

func newFakeRepository() *fakeRepository {
	return &fakeRepository{
		byEmail: make(map[string]*accounts.Account),
		byID:    make(map[string]*accounts.Account),
	}
}

func (f *fakeRepository) CreateAccount(ctx context.Context, account *accounts.Account) error {
	if account.ID == uuid.Nil {
		account.ID = uuid.New()
	}
	now := time.Now()
	account.CreatedAt = now
	account.UpdatedAt = now
	f.byEmail[account.Email] = account
	f.byID[account.ID.String()] = account
	return nil
}

func (f *fakeRepository) GetAccountByEmail(ctx context.Context, email string) (*accounts.Account, error) {
	account, ok := f.byEmail[email]
	if !ok {
		return nil, accounts.ErrAccountNotFound
	}
	return account, nil
}

func (f *fakeRepository) GetAccountByID(ctx context.Context, id string) (*accounts.Account, error) {
	account, ok := f.byID[id]
	if !ok {
		return nil, accounts.ErrAccountNotFound
	}
	return account, nil
}

func (f *fakeRepository) EmailExists(ctx context.Context, email string) (bool, error) {
	_, ok := f.byEmail[email]
	return ok, nil
}

func testConfig() *config.Config {
	return &config.Config{
		JWT: config.JWTConfig{
			Secret:           "test-secret",
			JWTExpiresIn:     15 * time.Minute,
			RefreshExpiresIn: 24 * time.Hour,
		},
	}
}

func TestServiceRegister(t *testing.T) {
	t.Parallel()

	t.Run("creates buyer by default", func(t *testing.T) {
		repo := newFakeRepository()
		svc := NewService(repo, testConfig())

		resp, err := svc.Register(context.Background(), &RegisterRequest{
			FirstName: "Jane",
			LastName:  "Doe",
			Email:     "jane@example.com",
			Password:  "secret123",
		})
		require.NoError(t, err)
		assert.Equal(t, string(accounts.RoleBuyer), resp.Account.Role)
		assert.NotEmpty(t, resp.AccessToken)
		assert.NotEmpty(t, resp.RefreshToken)

		// Password must be stored hashed, never verbatim.
		stored := repo.byEmail["jane@example.com"]
		require.NotNil(t, stored)
		assert.NotEqual(t, "secret123", stored.Password)
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.Password), []byte("secret123")))
	})

	t.Run("accepts operator role case-insensitively", func(t *testing.T) {
		repo := newFakeRepository()
		svc := NewService(repo, testConfig())

		resp, err := svc.Register(context.Background(), &RegisterRequest{
			FirstName: "Olivia",
			LastName:  "Operator",
			Email:     "olivia@example.com",
			Password:  "secret123",
			Role:      "operator",
		})
		require.NoError(t, err)
		assert.Equal(t, string(accounts.RoleOperator), resp.Account.Role)
	})

	t.Run("unknown role falls back to buyer", func(t *testing.T) {
		repo := newFakeRepository()
		svc := NewService(repo, testConfig())

		resp, err := svc.Register(context.Background(), &RegisterRequest{
			FirstName: "Jane",
			LastName:  "Doe",
			Email:     "jane2@example.com",
			Password:  "secret123",
			Role:      "SUPERADMIN",
		})
		require.NoError(t, err)
		assert.Equal(t, string(accounts.RoleBuyer), resp.Account.Role)
	})

	t.Run("duplicate email is rejected", func(t *testing.T) {
		repo := newFakeRepository()
		svc := NewService(repo, testConfig())

		req := &RegisterRequest{
			FirstName: "Jane",
			LastName:  "Doe",
			Email:     "jane@example.com",
			Password:  "secret123",
		}
		_, err := svc.Register(context.Background(), req)
		require.NoError(t, err)

		_, err = svc.Register(context.Background(), req)
		assert.ErrorIs(t, err, ErrAccountAlreadyExists)
	})
}

func TestServiceLogin(t *testing.T) {
	t.Parallel()

	repo := newFakeRepository()
	svc := NewService(repo, testConfig())

	_, err := svc.Register(context.Background(), &RegisterRequest{
		FirstName: "Jane",
		LastName:  "Doe",
		Email:     "jane@example.com",
		Password:  "secret123",
	})
	require.NoError(t, err)

	t.Run("valid credentials issue verifiable claims", func(t *testing.T) {
		resp, err := svc.Login(context.Background(), &LoginRequest{
			Email:    "jane@example.com",
			Password: "secret123",
		})
		require.NoError(t, err)

		claims, err := svc.ValidateToken(resp.AccessToken)
		require.NoError(t, err)
		assert.Equal(t, resp.Account.ID, claims.AccountID)
		assert.Equal(t, "jane@example.com", claims.Email)
		assert.Equal(t, string(accounts.RoleBuyer), claims.Role)
		assert.Equal(t, "access", claims.Type)
		assert.Equal(t, "ticketly", claims.Issuer)
	})

	t.Run("wrong password", func(t *testing.T) {
		_, err := svc.Login(context.Background(), &LoginRequest{
			Email:    "jane@example.com",
			Password: "wrong",
		})
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("unknown email", func(t *testing.T) {
		_, err := svc.Login(context.Background(), &LoginRequest{
			Email:    "nobody@example.com",
			Password: "secret123",
		})
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})
}

func TestServiceRefreshToken(t *testing.T) {
	t.Parallel()

	repo := newFakeRepository()
	svc := NewService(repo, testConfig())

	registered, err := svc.Register(context.Background(), &RegisterRequest{
		FirstName: "Jane",
		LastName:  "Doe",
		Email:     "jane@example.com",
		Password:  "secret123",
	})
	require.NoError(t, err)

	t.Run("refresh token issues a new pair", func(t *testing.T) {
		pair, err := svc.RefreshToken(context.Background(), registered.RefreshToken)
		require.NoError(t, err)
		assert.NotEmpty(t, pair.AccessToken)
		assert.NotEmpty(t, pair.RefreshToken)
	})

	t.Run("access token is not accepted as refresh token", func(t *testing.T) {
		_, err := svc.RefreshToken(context.Background(), registered.AccessToken)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("garbage token", func(t *testing.T) {
		_, err := svc.RefreshToken(context.Background(), "not-a-token")
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("deleted account cannot refresh", func(t *testing.T) {
		delete(repo.byID, registered.Account.ID)
		delete(repo.byEmail, "jane@example.com")

		_, err := svc.RefreshToken(context.Background(), registered.RefreshToken)
		assert.ErrorIs(t, err, accounts.ErrAccountNotFound)
	})
}
