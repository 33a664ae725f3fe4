package model

import (
	"database/sql/driver"
	"encoding/json"
	"time"

	"gorm.io/gorm"
)

// StringSlice はjsonbに保存する文字列リスト（商品に紐づくオプショングループIDで使う）。
type StringSlice []string

func (s StringSlice) Value() (driver.Value, error) {
	if s == nil {
		return []byte("[]"), nil
	}
	return json.Marshal([]string(s))
}

func (s *StringSlice) Scan(value any) error {
	b, err := jsonbBytes(value)
	if err != nil {
		return err
	}
	if len(b) == 0 {
		*s = StringSlice{}
		return nil
	}
	return json.Unmarshal(b, (*[]string)(s))
}

type Product struct {
	ID             string         `gorm:"type:uuid;primaryKey" json:"id"`
	Slug           string         `gorm:"type:varchar(100);not null;uniqueIndex" json:"slug"`
	Name           string         `gorm:"type:varchar(255);not null" json:"name"`
	BasePriceCents int64          `gorm:"not null" json:"base_price_cents"`
	Image          string         `gorm:"type:varchar(255)" json:"image"`
	OptionGroupIDs StringSlice    `gorm:"type:jsonb;not null;default:'[]'" json:"option_group_ids"`
	IsActive       bool           `gorm:"not null;default:false" json:"is_active"`
	CreatedAt      time.Time      `gorm:"not null;autoCreateTime" json:"created_at"`
	UpdatedAt      time.Time      `gorm:"not null;autoUpdateTime" json:"updated_at"`
	DeletedAt      gorm.DeletedAt `gorm:"index" json:"-"`
}
