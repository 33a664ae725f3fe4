package repository

import (
	"context"
	"errors"

	"kreps/internal/domain/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type StockGormRepository struct {
	db *gorm.DB
}

func NewStockGormRepository(db *gorm.DB) *StockGormRepository {
	return &StockGormRepository{db: db}
}

// 行が無い商品は在庫0
func (r *StockGormRepository) GetQuantity(ctx context.Context, productID string) (int64, error) {
	var s model.Stock
	err := r.db.WithContext(ctx).Where("product_id = ?", productID).First(&s).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	return s.Quantity, nil
}

// 在庫の絶対値設定（upsert）
func (r *StockGormRepository) SetQuantity(ctx context.Context, productID string, quantity int64) error {
	s := model.Stock{ProductID: productID, Quantity: quantity}
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "product_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"quantity", "updated_at"}),
		}).
		Create(&s).Error
}

// 在庫が足りるときだけ減らす。チェックと減算を1文のUPDATEにまとめて同時注文の競合を塞ぐ。
// 行が無い商品は条件に合わず RowsAffected=0 → 在庫0扱い。
func (r *StockGormRepository) DecreaseIfEnough(ctx context.Context, productID string, qty int64) (bool, error) {
	res := r.db.WithContext(ctx).
		Model(&model.Stock{}).
		Where("product_id = ? AND quantity >= ?", productID, qty).
		Update("quantity", gorm.Expr("quantity - ?", qty))

	if res.Error != nil {
		return false, res.Error
	}
	if res.RowsAffected == 0 {
		return false, nil
	}
	return true, nil
}

// 調整履歴作成
func (r *StockGormRepository) CreateAdjustment(ctx context.Context, adj model.StockAdjustment) error {
	if err := r.db.WithContext(ctx).Create(&adj).Error; err != nil {
		return err
	}
	return nil
}
