package model

import "time"

//在庫の絶対値更新の履歴

type StockAdjustment struct {
	ID             int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	ProductID      string    `gorm:"type:uuid;not null;index" json:"product_id"`
	BeforeQuantity int64     `gorm:"not null" json:"before_quantity"`
	AfterQuantity  int64     `gorm:"not null" json:"after_quantity"`
	Reason         string    `gorm:"type:varchar(255)" json:"reason"`
	CreatedAt      time.Time `gorm:"not null;autoCreateTime" json:"created_at"`
}
