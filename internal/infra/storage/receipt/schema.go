package receipt

import (
	"context"
	"fmt"
)

const schemaDDL = `
CREATE TABLE IF NOT EXISTS booking_receipts (
    id           BIGSERIAL PRIMARY KEY,
    session_id   UUID        NOT NULL,
    provider_id  VARCHAR(255) NOT NULL,
    booking_date DATE        NOT NULL,
    start_time   TIME        NOT NULL,
    full_name    VARCHAR(255) NOT NULL,
    email        VARCHAR(255) NOT NULL,
    phone        VARCHAR(32)  NOT NULL,
    created_at   TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE INDEX IF NOT EXISTS idx_booking_receipts_provider_created
    ON booking_receipts (provider_id, created_at DESC);
`

// EnsureSchema создает таблицу журнала, если ее еще нет
func EnsureSchema(ctx context.Context, db DBExecutor) error {
	if _, err := db.ExecContext(ctx, schemaDDL); err != nil {
		return fmt.Errorf("%w: EnsureSchema: %v", ErrExecQuery, err)
	}
	return nil
}
