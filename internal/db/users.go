package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
)

// Profile is the lightweight per-user record kept for statistics and
// session pre-fill. It is never authoritative for a submitted order.
type Profile struct {
	TelegramUserID  int64     `db:"telegram_user_id"`
	FullName        string    `db:"full_name"`
	Username        *string   `db:"username"`
	RememberedPhone *string   `db:"remembered_phone"`
	JoinedAt        time.Time `db:"joined_at"`
	LastSeen        time.Time `db:"last_seen"`
}

type UserRepository struct {
	db *sqlx.DB
}

func NewUsersRepository(db *sqlx.DB) *UserRepository {
	return &UserRepository{
		db: db,
	}
}

// Upsert records the user on every session start: inserts on first
// contact, refreshes display fields and last_seen afterwards.
func (r *UserRepository) Upsert(ctx context.Context, telegramUserID int64, fullName, username string) error {
	_, err := r.db.ExecContext(ctx, `
	    INSERT INTO users (telegram_user_id, full_name, username, joined_at, last_seen)
		VALUES ($1, $2, NULLIF($3, ''), NOW(), NOW())
		ON CONFLICT (telegram_user_id) DO UPDATE SET
		    full_name = EXCLUDED.full_name,
			username = EXCLUDED.username,
			last_seen = EXCLUDED.last_seen
	`, telegramUserID, fullName, username)

	if err != nil {
		return fmt.Errorf("UserRepository.Upsert: %w", err)
	}

	return nil
}

func (r *UserRepository) RememberPhone(ctx context.Context, telegramUserID int64, phone string) error {
	_, err := r.db.ExecContext(ctx, `
	    UPDATE users
		SET remembered_phone = $1
		WHERE telegram_user_id = $2
	`, phone, telegramUserID)

	if err != nil {
		return fmt.Errorf("UserRepository.RememberPhone: %w", err)
	}

	return nil
}

func (r *UserRepository) GetByTelegramUserID(ctx context.Context, telegramUserID int64) (*Profile, error) {
	var profile Profile

	err := r.db.GetContext(ctx, &profile, `
	    SELECT * FROM users
		WHERE telegram_user_id = $1
	`, telegramUserID)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}

		return nil, fmt.Errorf("UserRepository.GetByTelegramUserID: %w", err)
	}

	return &profile, nil
}

func (r *UserRepository) CountAll(ctx context.Context) (int64, error) {
	var total int64

	err := r.db.GetContext(ctx, &total, `SELECT COUNT(*) FROM users`)
	if err != nil {
		return 0, fmt.Errorf("UserRepository.CountAll: %w", err)
	}

	return total, nil
}

func (r *UserRepository) CountJoinedSince(ctx context.Context, since time.Time) (int64, error) {
	var total int64

	err := r.db.GetContext(ctx, &total, `
	    SELECT COUNT(*) FROM users
		WHERE joined_at >= $1
	`, since)

	if err != nil {
		return 0, fmt.Errorf("UserRepository.CountJoinedSince: %w", err)
	}

	return total, nil
}
