package model

import "time"

// Stock は商品ごとの在庫数。行が無い商品は在庫0として扱う。
type Stock struct {
	ProductID string    `gorm:"type:uuid;primaryKey" json:"product_id"`
	Quantity  int64     `gorm:"not null;default:0" json:"quantity"`
	UpdatedAt time.Time `gorm:"not null;autoUpdateTime" json:"updated_at"`
}
