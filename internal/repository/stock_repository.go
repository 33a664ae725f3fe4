package repository

import (
	"context"

	"kreps/internal/domain/model"
)

type StockRepository interface {
	// 在庫の現在値。行が無ければ0を返す（エラーにしない）
	GetQuantity(ctx context.Context, productID string) (int64, error)

	// 在庫の絶対値設定（行が無ければ作る）
	SetQuantity(ctx context.Context, productID string, quantity int64) error

	// 在庫が足りるときだけ減算。1文のUPDATEで行うこと（チェックと減算を分けない）
	DecreaseIfEnough(ctx context.Context, productID string, qty int64) (bool, error)

	// 調整履歴作成
	CreateAdjustment(ctx context.Context, adjustment model.StockAdjustment) error
}
