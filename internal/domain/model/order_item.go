package model

import "time"

// OrderItem は注文明細のスナップショット。後から商品や価格が変わっても過去の注文は変えない。
type OrderItem struct {
	ID              int64           `gorm:"primaryKey;autoIncrement" json:"id"`
	OrderID         string          `gorm:"type:uuid;not null;index" json:"order_id"`
	ProductID       string          `gorm:"type:uuid;not null;index" json:"product_id"`
	NameSnapshot    string          `gorm:"type:varchar(255);not null" json:"name_snapshot"`
	UnitPriceCents  int64           `gorm:"not null" json:"unit_price_cents"`
	Quantity        int64           `gorm:"not null" json:"quantity"`
	SelectedOptions SelectedOptions `gorm:"type:jsonb;not null;default:'{}'" json:"selected_options"`
	CreatedAt       time.Time       `gorm:"not null;autoCreateTime" json:"created_at"`
}
