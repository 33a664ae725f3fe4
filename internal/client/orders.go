package client

import (
	"sort"
	"time"

	"kreps/internal/localstore"

	"github.com/google/uuid"
)

const (
	draftKey     = "kreps_order_draft_v1"
	lastOrderKey = "kreps_last_order_v1"
	historyKey   = "kreps_orders_v1"

	// 配達の既定手数料
	defaultDeliveryFeeCents = 250
)

type Address struct {
	Street     string `json:"street"`
	PostalCode string `json:"postalCode"`
	City       string `json:"city"`
}

// Draft はチェックアウトで入力した内容。支払い確定までローカルに置く。
type Draft struct {
	FullName         string   `json:"fullName"`
	Phone            string   `json:"phone"`
	Mode             string   `json:"mode"` // pickup / delivery
	Address          *Address `json:"address,omitempty"`
	Note             string   `json:"note,omitempty"`
	DeliveryFeeCents int64    `json:"deliveryFeeCents,omitempty"`
}

// LocalOrder は客側に残すレシート。サーバの注文コードと同じIDを入れて渡すと
// キッチン側とチケット番号が揃う。
type LocalOrder struct {
	ID               string     `json:"id"`
	CreatedAt        time.Time  `json:"createdAt"`
	Status           string     `json:"status"`
	PaymentMethod    string     `json:"paymentMethod"`
	PaymentPaid      bool       `json:"paymentPaid"`
	Draft            Draft      `json:"draft"`
	Items            []CartItem `json:"items"`
	SubtotalCents    int64      `json:"subtotalCents"`
	DeliveryFeeCents int64      `json:"deliveryFeeCents"`
	TotalCents       int64      `json:"totalCents"`
}

type OrderHistory struct {
	store *localstore.Store
}

func NewOrderHistory(store *localstore.Store) *OrderHistory {
	return &OrderHistory{store: store}
}

func (h *OrderHistory) SaveDraft(d Draft) error {
	return h.store.Write(draftKey, d)
}

func (h *OrderHistory) ReadDraft() (Draft, bool) {
	var d Draft
	ok := h.store.Read(draftKey, &d)
	return d, ok
}

func (h *OrderHistory) ClearDraft() error {
	return h.store.Delete(draftKey)
}

// BuildLocalOrder は下書きとカートからレシートを組み立てる。
// id が空なら採番する（サーバ発行の注文コードがあればそれを渡す）。
func BuildLocalOrder(id string, draft Draft, items []CartItem, paymentMethod string) LocalOrder {
	var subtotal int64
	for _, it := range items {
		subtotal += it.LineTotalCents()
	}

	var fee int64
	if draft.Mode == "delivery" {
		fee = draft.DeliveryFeeCents
		if fee == 0 {
			fee = defaultDeliveryFeeCents
		}
	}

	if id == "" {
		id = uuid.NewString()
	}

	return LocalOrder{
		ID:               id,
		CreatedAt:        time.Now(),
		Status:           "pending",
		PaymentMethod:    paymentMethod,
		Draft:            draft,
		Items:            items,
		SubtotalCents:    subtotal,
		DeliveryFeeCents: fee,
		TotalCents:       subtotal + fee,
	}
}

func (h *OrderHistory) SaveLastOrder(o LocalOrder) error {
	return h.store.Write(lastOrderKey, o)
}

func (h *OrderHistory) LastOrder() (LocalOrder, bool) {
	var o LocalOrder
	ok := h.store.Read(lastOrderKey, &o)
	return o, ok
}

// Append は履歴の先頭に追加する。
func (h *OrderHistory) Append(o LocalOrder) error {
	_, err := localstore.Merge(h.store, historyKey, []LocalOrder{}, func(orders []LocalOrder) []LocalOrder {
		return append([]LocalOrder{o}, orders...)
	})
	return err
}

// List は新しい順で返す。
func (h *OrderHistory) List() []LocalOrder {
	orders := []LocalOrder{}
	h.store.Read(historyKey, &orders)

	sort.SliceStable(orders, func(i, j int) bool {
		return orders[i].CreatedAt.After(orders[j].CreatedAt)
	})
	return orders
}
