package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/husan7006/davon-taxi-bot/internal/flow"
)

type orderRow struct {
	ID                  int64     `db:"id"`
	RefCode             string    `db:"ref_code"`
	TelegramUserID      int64     `db:"telegram_user_id"`
	FullName            string    `db:"full_name"`
	Username            *string   `db:"username"`
	Phone               string    `db:"phone"`
	OriginCity          string    `db:"origin_city"`
	OriginDistrict      string    `db:"origin_district"`
	DestinationCity     string    `db:"destination_city"`
	DestinationDistrict string    `db:"destination_district"`
	Passengers          int       `db:"passengers"`
	Cargo               bool      `db:"cargo"`
	Note                *string   `db:"note"`
	CreatedAt           time.Time `db:"created_at"`
}

type OrderRepository struct {
	db *sqlx.DB
}

func NewOrdersRepository(db *sqlx.DB) *OrderRepository {
	return &OrderRepository{
		db: db,
	}
}

// Create appends one completed order. Orders are immutable once
// written; there is no update path.
func (r *OrderRepository) Create(ctx context.Context, order *flow.Order) error {
	var username *string
	if order.Handle != "" {
		username = &order.Handle
	}

	_, err := r.db.ExecContext(ctx, `
	    INSERT INTO orders
		(ref_code, telegram_user_id, full_name, username, phone,
		 origin_city, origin_district, destination_city, destination_district,
		 passengers, cargo, note, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
	`,
		order.RefCode,
		order.UserID,
		order.DisplayName,
		username,
		order.Phone,
		order.OriginCity,
		order.OriginDistrict,
		order.DestinationCity,
		order.DestinationDistrict,
		order.Passengers,
		order.Cargo,
		order.Note,
		order.CreatedAt,
	)

	if err != nil {
		return fmt.Errorf("OrderRepository.Create: %w", err)
	}

	return nil
}

// GetLastByUser returns the user's most recent order, or nil when the
// user has never ordered.
func (r *OrderRepository) GetLastByUser(ctx context.Context, telegramUserID int64) (*flow.Order, error) {
	var row orderRow

	err := r.db.GetContext(ctx, &row, `
	    SELECT * FROM orders
		WHERE telegram_user_id = $1
		ORDER BY created_at DESC
		LIMIT 1
	`, telegramUserID)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}

		return nil, fmt.Errorf("OrderRepository.GetLastByUser: %w", err)
	}

	return row.toOrder(), nil
}

func (row *orderRow) toOrder() *flow.Order {
	order := &flow.Order{
		RefCode:             row.RefCode,
		UserID:              row.TelegramUserID,
		DisplayName:         row.FullName,
		Phone:               row.Phone,
		OriginCity:          row.OriginCity,
		OriginDistrict:      row.OriginDistrict,
		DestinationCity:     row.DestinationCity,
		DestinationDistrict: row.DestinationDistrict,
		Passengers:          row.Passengers,
		Cargo:               row.Cargo,
		Note:                row.Note,
		CreatedAt:           row.CreatedAt,
	}

	if row.Username != nil {
		order.Handle = *row.Username
	}

	return order
}
