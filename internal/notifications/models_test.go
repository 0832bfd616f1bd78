package notifications

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTicketSoldNotification(t *testing.T) {
	t.Parallel()

	n := NewTicketSoldNotification("0, 30", 0, "account-1", "Jane Doe", 30)

	assert.Equal(t, NotificationTypeTicketSold, n.Type)
	assert.Equal(t, NotificationStatusPending, n.Status)
	assert.Equal(t, "0, 30", n.TicketID)
	assert.Equal(t, uint32(30), n.Amount)
	assert.Equal(t, "account-1", n.GetPartitionKey())
}

func TestNewConcertAddedNotification(t *testing.T) {
	t.Parallel()

	n := NewConcertAddedNotification(3, "operator-1", 75)

	assert.Equal(t, NotificationTypeConcertAdded, n.Type)
	assert.Equal(t, uint32(3), n.ConcertID)
	assert.Equal(t, "operator-1", n.GetPartitionKey())
}

func TestGetPartitionKeyFallsBackToID(t *testing.T) {
	t.Parallel()

	n := NewConcertAddedNotification(0, "", 10)

	assert.Equal(t, n.ID.String(), n.GetPartitionKey())
}

func TestLedgerNotificationToJSON(t *testing.T) {
	t.Parallel()

	n := NewTicketSoldNotification("2, 5", 2, "account-1", "Jane Doe", 15)

	data, err := n.ToJSON()
	require.NoError(t, err)

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, "TICKET_SOLD", decoded["type"])
	assert.Equal(t, "2, 5", decoded["ticket_id"])
	assert.Equal(t, float64(2), decoded["concert_id"])
}
