package db

import (
	"context"

	"github.com/husan7006/davon-taxi-bot/internal/flow"
)

// Store bundles the per-table repositories behind the conversation
// engine's storage contract.
type Store struct {
	orders *OrderRepository
	users  *UserRepository
}

var _ flow.Store = (*Store)(nil)

func NewStore(orders *OrderRepository, users *UserRepository) *Store {
	return &Store{
		orders: orders,
		users:  users,
	}
}

func (s *Store) SaveOrder(ctx context.Context, order *flow.Order) error {
	return s.orders.Create(ctx, order)
}

func (s *Store) UpsertProfile(ctx context.Context, user flow.User) error {
	return s.users.Upsert(ctx, user.ID, user.DisplayName, user.Handle)
}

func (s *Store) RememberPhone(ctx context.Context, userID int64, phone string) error {
	return s.users.RememberPhone(ctx, userID, phone)
}

func (s *Store) LastOrder(ctx context.Context, userID int64) (*flow.Order, error) {
	return s.orders.GetLastByUser(ctx, userID)
}
