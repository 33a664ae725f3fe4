package client_test

import (
	"testing"

	"kreps/internal/client"
	"kreps/internal/domain/model"
	"kreps/internal/localstore"

	"github.com/stretchr/testify/assert"
)

func newCart(t *testing.T) *client.Cart {
	t.Helper()
	return client.NewCart(localstore.New(t.TempDir()))
}

func Test_CartAdd_AssignsIDAndClampsQuantity(t *testing.T) {
	cart := newCart(t)

	added, err := cart.Add(client.CartItem{
		ProductID:      "prod-1",
		Name:           "Crousty",
		BasePriceCents: 700,
		Quantity:       0, // 0は1に寄せる
	})

	assert.NoError(t, err)
	assert.NotEmpty(t, added.ID)
	assert.Equal(t, int64(1), added.Quantity)
	assert.NotNil(t, added.SelectedOptions)

	items := cart.Items()
	if assert.Len(t, items, 1) {
		assert.Equal(t, added.ID, items[0].ID)
	}
}

// 同じ商品でもオプション違いは別の行として持つ
func Test_CartAdd_SameProductDifferentOptionsAreSeparateLines(t *testing.T) {
	cart := newCart(t)

	_, err := cart.Add(client.CartItem{
		ProductID: "prod-1", Name: "Crousty", BasePriceCents: 700, Quantity: 1,
		SelectedOptions: model.SelectedOptions{"size": {"m"}},
	})
	assert.NoError(t, err)

	_, err = cart.Add(client.CartItem{
		ProductID: "prod-1", Name: "Crousty", BasePriceCents: 700, OptionPriceCents: 200, Quantity: 1,
		SelectedOptions: model.SelectedOptions{"size": {"l"}},
	})
	assert.NoError(t, err)

	assert.Len(t, cart.Items(), 2)
}

func Test_CartSubtotal(t *testing.T) {
	cart := newCart(t)

	_, err := cart.Add(client.CartItem{ProductID: "prod-1", BasePriceCents: 700, OptionPriceCents: 200, Quantity: 2})
	assert.NoError(t, err)
	_, err = cart.Add(client.CartItem{ProductID: "prod-2", BasePriceCents: 300, Quantity: 1})
	assert.NoError(t, err)

	// (700+200)*2 + 300
	assert.Equal(t, int64(2100), cart.SubtotalCents())
}

func Test_CartSetQuantity_ClampsAtOne(t *testing.T) {
	cart := newCart(t)

	added, err := cart.Add(client.CartItem{ProductID: "prod-1", BasePriceCents: 700, Quantity: 3})
	assert.NoError(t, err)

	assert.NoError(t, cart.SetQuantity(added.ID, -5))

	items := cart.Items()
	if assert.Len(t, items, 1) {
		assert.Equal(t, int64(1), items[0].Quantity)
	}
}

func Test_CartRemoveAndClear(t *testing.T) {
	cart := newCart(t)

	a, _ := cart.Add(client.CartItem{ProductID: "prod-1", BasePriceCents: 700, Quantity: 1})
	_, _ = cart.Add(client.CartItem{ProductID: "prod-2", BasePriceCents: 300, Quantity: 1})

	assert.NoError(t, cart.Remove(a.ID))
	assert.Len(t, cart.Items(), 1)

	assert.NoError(t, cart.Clear())
	assert.Empty(t, cart.Items())
}
