package receipt

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-SlotBooking/internal/domain"
	"github.com/m04kA/SMC-SlotBooking/pkg/psqlbuilder"
)

const tableReceipts = "booking_receipts"

var receiptColumns = []string{
	"id",
	"session_id",
	"provider_id",
	"booking_date",
	"start_time",
	"full_name",
	"email",
	"phone",
	"created_at",
}

// Repository журнал квитанций об успешных бронированиях
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория квитанций
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create добавляет квитанцию; ID и created_at заполняет БД
func (r *Repository) Create(ctx context.Context, receipt *domain.BookingReceipt) (*domain.BookingReceipt, error) {
	query, args, err := buildInsertQuery(receipt)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt sql.NullTime
	err = r.db.QueryRowContext(ctx, query, args...).Scan(&receipt.ID, &createdAt)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	receipt.CreatedAt = createdAt.Time

	return receipt, nil
}

// ListByProvider квитанции провайдера, сначала новые. limit == 0 - без ограничения
func (r *Repository) ListByProvider(ctx context.Context, providerID string, limit uint64) ([]*domain.BookingReceipt, error) {
	query, args, err := buildListByProviderQuery(providerID, limit)
	if err != nil {
		return nil, fmt.Errorf("%w: ListByProvider - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListByProvider - execute select: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	receipts := make([]*domain.BookingReceipt, 0)
	for rows.Next() {
		receipt, err := scanReceipt(rows)
		if err != nil {
			return nil, err
		}
		receipts = append(receipts, receipt)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListByProvider - rows iteration: %v", ErrScanRow, err)
	}

	return receipts, nil
}

func buildInsertQuery(receipt *domain.BookingReceipt) (string, []interface{}, error) {
	return psqlbuilder.Insert(tableReceipts).
		Columns(
			"session_id",
			"provider_id",
			"booking_date",
			"start_time",
			"full_name",
			"email",
			"phone",
		).
		Values(
			receipt.SessionID,
			receipt.ProviderID,
			receipt.Date.Time(),
			receipt.Time,
			receipt.Contact.FullName,
			receipt.Contact.Email,
			receipt.Contact.Phone,
		).
		Suffix("RETURNING id, created_at").
		ToSql()
}

func buildListByProviderQuery(providerID string, limit uint64) (string, []interface{}, error) {
	builder := psqlbuilder.Select(receiptColumns...).
		From(tableReceipts).
		Where(squirrel.Eq{"provider_id": providerID}).
		OrderBy("created_at DESC", "id DESC")

	if limit > 0 {
		builder = builder.Limit(limit)
	}

	return builder.ToSql()
}

func scanReceipt(rows *sql.Rows) (*domain.BookingReceipt, error) {
	var (
		receipt     domain.BookingReceipt
		bookingDate time.Time
		createdAt   sql.NullTime
	)

	err := rows.Scan(
		&receipt.ID,
		&receipt.SessionID,
		&receipt.ProviderID,
		&bookingDate,
		&receipt.Time,
		&receipt.Contact.FullName,
		&receipt.Contact.Email,
		&receipt.Contact.Phone,
		&createdAt,
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrScanRow, err)
	}

	receipt.Date = domain.NewCalendarDate(bookingDate)
	receipt.CreatedAt = createdAt.Time

	return &receipt, nil
}
