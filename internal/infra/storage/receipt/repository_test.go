package receipt

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SlotBooking/internal/domain"
	"github.com/m04kA/SMC-SlotBooking/pkg/types"
)

func TestBuildInsertQuery(t *testing.T) {
	receipt := &domain.BookingReceipt{
		SessionID:  "0b6f4b1c-0000-4000-8000-000000000001",
		ProviderID: "abc123",
		Date:       domain.CalendarDate{Year: 2025, Month: time.March, Day: 17},
		Time:       types.TimeString("09:30"),
		Contact: domain.ContactDetails{
			FullName: "Ada Lovelace",
			Email:    "ada@example.com",
			Phone:    "5551234567",
		},
	}

	query, args, err := buildInsertQuery(receipt)
	require.NoError(t, err)

	assert.Equal(t,
		"INSERT INTO booking_receipts (session_id,provider_id,booking_date,start_time,full_name,email,phone) "+
			"VALUES ($1,$2,$3,$4,$5,$6,$7) RETURNING id, created_at",
		query)
	require.Len(t, args, 7)
	assert.Equal(t, "abc123", args[1])
	assert.Equal(t, time.Date(2025, time.March, 17, 0, 0, 0, 0, time.UTC), args[2])
	assert.Equal(t, types.TimeString("09:30"), args[3])
	assert.Equal(t, "5551234567", args[6])
}

func TestBuildListByProviderQuery(t *testing.T) {
	query, args, err := buildListByProviderQuery("abc123", 50)
	require.NoError(t, err)

	assert.Equal(t,
		"SELECT id, session_id, provider_id, booking_date, start_time, full_name, email, phone, created_at "+
			"FROM booking_receipts WHERE provider_id = $1 ORDER BY created_at DESC, id DESC LIMIT 50",
		query)
	assert.Equal(t, []interface{}{"abc123"}, args)

	query, _, err = buildListByProviderQuery("abc123", 0)
	require.NoError(t, err)
	assert.NotContains(t, query, "LIMIT")
}
