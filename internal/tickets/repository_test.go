package tickets

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"ticketly/internal/concerts"
)

// The purchase transaction is only atomic if the concert lookup actually
// locks the row. Build the lookup against a dry-run session and check the
// SQL gorm generates carries the locking clause.
func TestConcertLockQueryGeneratesRowLock(t *testing.T) {
	t.Parallel()

	db, err := gorm.Open(postgres.Open("host=localhost user=ticketly dbname=ticketly sslmode=disable"), &gorm.Config{
		DryRun:               true,
		DisableAutomaticPing: true,
	})
	require.NoError(t, err)

	var concert concerts.Concert
	stmt := concertLockQuery(db, 7).Find(&concert).Statement

	sql := stmt.SQL.String()
	assert.Contains(t, sql, `FROM "concerts"`)
	assert.Contains(t, sql, "FOR UPDATE")
	assert.Equal(t, []interface{}{uint32(7)}, stmt.Vars)
}
