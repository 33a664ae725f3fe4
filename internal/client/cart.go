// Package client は客側端末（キオスク/フロント）のローカル状態。
// カート・チェックアウト下書き・注文履歴を localstore に持つ。
package client

import (
	"kreps/internal/domain/model"
	"kreps/internal/localstore"

	"github.com/google/uuid"
)

const cartKey = "kreps_cart_v1"

type CartItem struct {
	ID               string                `json:"id"`
	ProductID        string                `json:"productId"`
	Name             string                `json:"name"`
	BasePriceCents   int64                 `json:"basePriceCents"`
	OptionPriceCents int64                 `json:"optionPriceCents"`
	Quantity         int64                 `json:"quantity"`
	SelectedOptions  model.SelectedOptions `json:"selectedOptions"`
}

func (it CartItem) LineTotalCents() int64 {
	return (it.BasePriceCents + it.OptionPriceCents) * it.Quantity
}

type Cart struct {
	store *localstore.Store
}

func NewCart(store *localstore.Store) *Cart {
	return &Cart{store: store}
}

func (c *Cart) Items() []CartItem {
	items := []CartItem{}
	c.store.Read(cartKey, &items)
	return items
}

// Add はカートに1行追加する。同じ商品でもオプションが違えば別の行。
func (c *Cart) Add(item CartItem) (CartItem, error) {
	item.ID = uuid.NewString()
	if item.Quantity < 1 {
		item.Quantity = 1
	}
	if item.SelectedOptions == nil {
		item.SelectedOptions = model.SelectedOptions{}
	}

	_, err := localstore.Merge(c.store, cartKey, []CartItem{}, func(items []CartItem) []CartItem {
		return append(items, item)
	})
	return item, err
}

// SetQuantity は数量変更（1未満にはしない）。
func (c *Cart) SetQuantity(itemID string, quantity int64) error {
	if quantity < 1 {
		quantity = 1
	}

	_, err := localstore.Merge(c.store, cartKey, []CartItem{}, func(items []CartItem) []CartItem {
		for i := range items {
			if items[i].ID == itemID {
				items[i].Quantity = quantity
			}
		}
		return items
	})
	return err
}

func (c *Cart) Remove(itemID string) error {
	_, err := localstore.Merge(c.store, cartKey, []CartItem{}, func(items []CartItem) []CartItem {
		out := items[:0]
		for _, it := range items {
			if it.ID != itemID {
				out = append(out, it)
			}
		}
		return out
	})
	return err
}

func (c *Cart) Clear() error {
	return c.store.Delete(cartKey)
}

func (c *Cart) SubtotalCents() int64 {
	var sum int64
	for _, it := range c.Items() {
		sum += it.LineTotalCents()
	}
	return sum
}
