package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"ticketly/internal/accounts"
	"ticketly/internal/concerts"
	"ticketly/internal/shared/config"
	"ticketly/internal/shared/database"
	"ticketly/internal/tickets"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

type Seeder struct {
	db *database.DB
}

func main() {
	fmt.Println("🌱 Starting Ticketly Database Seeder...")

	// Load configuration
	cfg := config.Load()

	// Initialize database
	db, err := database.InitDB(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close()

	seeder := &Seeder{db: db}

	// Clean database
	fmt.Println("\n🧹 Cleaning database...")
	if err := seeder.CleanDatabase(); err != nil {
		log.Fatalf("Failed to clean database: %v", err)
	}
	fmt.Println("✅ Database cleaned successfully")

	// Seed data
	fmt.Println("\n🌱 Seeding database...")
	if err := seeder.SeedAll(); err != nil {
		log.Fatalf("Failed to seed database: %v", err)
	}
	fmt.Println("✅ Database seeded successfully")

	fmt.Println("\n🎉 Seeding completed! Database is ready for testing.")
}

// CleanDatabase truncates all tables in the correct order (respecting foreign key constraints)
func (s *Seeder) CleanDatabase() error {
	// Delete in reverse dependency order
	tables := []string{
		"tickets",
		"concerts",
		"accounts",
	}

	tx := s.db.PostgreSQL.Begin()
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
		}
	}()

	for _, table := range tables {
		fmt.Printf("  Truncating table: %s\n", table)
		if err := tx.Exec(fmt.Sprintf("TRUNCATE TABLE %s RESTART IDENTITY CASCADE", table)).Error; err != nil {
			tx.Rollback()
			return fmt.Errorf("failed to truncate table %s: %w", table, err)
		}
	}

	return tx.Commit().Error
}

// SeedAll seeds all required data
func (s *Seeder) SeedAll() error {
	ctx := context.Background()

	operatorID, buyerIDs, err := s.SeedAccounts(ctx)
	if err != nil {
		return fmt.Errorf("failed to seed accounts: %w", err)
	}

	concertIDs, err := s.SeedConcerts(ctx, operatorID)
	if err != nil {
		return fmt.Errorf("failed to seed concerts: %w", err)
	}

	if err := s.SeedTickets(ctx, concertIDs, buyerIDs); err != nil {
		return fmt.Errorf("failed to seed tickets: %w", err)
	}

	return nil
}

// SeedAccounts creates one operator and a couple of buyer accounts
func (s *Seeder) SeedAccounts(ctx context.Context) (uuid.UUID, []uuid.UUID, error) {
	fmt.Println("  Seeding accounts...")

	password, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	if err != nil {
		return uuid.Nil, nil, err
	}

	seedAccounts := []accounts.Account{
		{
			FirstName: "Olivia",
			LastName:  "Operator",
			Email:     "operator@ticketly.local",
			Password:  string(password),
			Role:      accounts.RoleOperator,
		},
		{
			FirstName: "Bob",
			LastName:  "Buyer",
			Email:     "bob@ticketly.local",
			Password:  string(password),
			Role:      accounts.RoleBuyer,
		},
		{
			FirstName: "Berta",
			LastName:  "Buyer",
			Email:     "berta@ticketly.local",
			Password:  string(password),
			Role:      accounts.RoleBuyer,
		},
	}

	var operatorID uuid.UUID
	var buyerIDs []uuid.UUID
	for i := range seedAccounts {
		account := &seedAccounts[i]
		if err := s.db.PostgreSQL.WithContext(ctx).Create(account).Error; err != nil {
			return uuid.Nil, nil, err
		}
		if account.Role == accounts.RoleOperator {
			operatorID = account.ID
		} else {
			buyerIDs = append(buyerIDs, account.ID)
		}
		fmt.Printf("    Created %s account: %s\n", account.Role, account.Email)
	}

	return operatorID, buyerIDs, nil
}

// SeedConcerts publishes a small catalog through the repository so ids stay dense
func (s *Seeder) SeedConcerts(ctx context.Context, operatorID uuid.UUID) ([]uint32, error) {
	fmt.Println("  Seeding concerts...")

	repo := concerts.NewRepository(s.db.GetPostgreSQL())

	in30Days := time.Now().Add(30 * 24 * time.Hour).UnixMilli()
	in60Days := time.Now().Add(60 * 24 * time.Hour).UnixMilli()
	yesterday := time.Now().Add(-24 * time.Hour).UnixMilli()

	seedConcerts := []concerts.Concert{
		{TicketPrice: 30, Date: in30Days, TicketsAvailable: 30, CreatedBy: operatorID.String()},
		{TicketPrice: 75, Date: in60Days, TicketsAvailable: 500, CreatedBy: operatorID.String()},
		{TicketPrice: 15, Date: yesterday, TicketsAvailable: 100, CreatedBy: operatorID.String()}, // already finished
	}

	var ids []uint32
	for i := range seedConcerts {
		concert := &seedConcerts[i]
		if err := repo.Create(ctx, concert); err != nil {
			return nil, err
		}
		ids = append(ids, concert.ConcertID)
		fmt.Printf("    Created concert %d (price %d, %d tickets)\n",
			concert.ConcertID, concert.TicketPrice, concert.TicketsAvailable)
	}

	return ids, nil
}

// SeedTickets runs a few purchases through the real purchase path
func (s *Seeder) SeedTickets(ctx context.Context, concertIDs []uint32, buyerIDs []uuid.UUID) error {
	if len(concertIDs) == 0 || len(buyerIDs) == 0 {
		return nil
	}
	fmt.Println("  Seeding tickets...")

	repo := tickets.NewRepository(s.db.GetPostgreSQL())
	now := time.Now().UnixMilli()

	purchases := []struct {
		concertID uint32
		buyer     uuid.UUID
		ownerName string
		paid      uint32
	}{
		{concertIDs[0], buyerIDs[0], "Bob Buyer", 30},
		{concertIDs[0], buyerIDs[1%len(buyerIDs)], "Berta Buyer", 30},
		{concertIDs[1%len(concertIDs)], buyerIDs[0], "Bob Buyer", 75},
	}

	for _, p := range purchases {
		ticket, err := repo.PurchaseTicket(ctx, p.concertID, p.buyer, p.ownerName, p.paid, now)
		if err != nil {
			return err
		}
		fmt.Printf("    Sold ticket %q to %s\n", ticket.TicketID, p.ownerName)
	}

	return nil
}
