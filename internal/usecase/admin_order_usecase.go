package usecase

import (
	"context"
	"net/http"
	"strings"

	"kreps/internal/domain/model"
	repo "kreps/internal/repository"
)

type AdminOrderUsecase struct {
	orderRepo repo.OrderRepository
}

func NewAdminOrderUsecase(orderRepo repo.OrderRepository) *AdminOrderUsecase {
	return &AdminOrderUsecase{orderRepo: orderRepo}
}

type AdminOrderListItem struct {
	ID            string `json:"id"`
	Code          string `json:"code"`
	Status        string `json:"status"`
	TotalCents    int64  `json:"total_cents"`
	PaymentMethod string `json:"payment_method"`
	PaymentPaid   bool   `json:"payment_paid"`
	CustomerName  string `json:"customer_name"`
	CreatedAt     string `json:"created_at"`
}

// List はキッチン/管理画面用の新しい順一覧（ヘッダのみ、最大100件）。
func (u *AdminOrderUsecase) List(ctx context.Context) ([]AdminOrderListItem, error) {
	orders, err := u.orderRepo.ListRecent(ctx, 100)
	if err != nil {
		return []AdminOrderListItem{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	outs := make([]AdminOrderListItem, 0, len(orders))
	for _, o := range orders {
		outs = append(outs, AdminOrderListItem{
			ID:            o.ID,
			Code:          o.Code,
			Status:        string(o.Status),
			TotalCents:    o.TotalCents,
			PaymentMethod: o.PaymentMethod,
			PaymentPaid:   o.PaymentPaid,
			CustomerName:  o.CustomerName,
			CreatedAt:     o.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
		})
	}
	return outs, nil
}

// UpdateStatus はステータス更新。5値のどれかなら既存ステータスに関係なく通す
// （キッチン運用では戻す操作も普通にある）。それ以外は許可リストを添えて400。
func (u *AdminOrderUsecase) UpdateStatus(ctx context.Context, orderID string, status string) error {
	if strings.TrimSpace(orderID) == "" {
		return NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	s := model.OrderStatus(strings.TrimSpace(status))
	if !model.IsValidOrderStatus(s) {
		return NewHTTPError(http.StatusBadRequest, "invalid status. allowed: "+model.OrderStatusList())
	}

	err := u.orderRepo.UpdateStatus(ctx, orderID, s)
	if err == repo.ErrNotFound {
		return NewHTTPError(http.StatusNotFound, "not found")
	}
	if err != nil {
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return nil
}

// SetPaid は支払い受領フラグ。ステータスとは独立でいつでも切り替えられる。
func (u *AdminOrderUsecase) SetPaid(ctx context.Context, orderID string, paid bool) error {
	if strings.TrimSpace(orderID) == "" {
		return NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	err := u.orderRepo.SetPaymentPaid(ctx, orderID, paid)
	if err == repo.ErrNotFound {
		return NewHTTPError(http.StatusNotFound, "not found")
	}
	if err != nil {
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return nil
}
