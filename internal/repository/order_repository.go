package repository

import (
	"context"

	"kreps/internal/domain/model"
)

type OrderRepository interface {
	Create(ctx context.Context, order model.Order) error
	FindByID(ctx context.Context, orderID string) (model.Order, error)

	// キッチン/管理画面用の新しい順一覧
	ListRecent(ctx context.Context, limit int) ([]model.Order, error)

	UpdateStatus(ctx context.Context, orderID string, status model.OrderStatus) error
	SetPaymentPaid(ctx context.Context, orderID string, paid bool) error
}
