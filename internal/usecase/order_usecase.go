package usecase

import (
	"context"
	"net/http"
	"strings"
	"time"

	"kreps/internal/domain/model"
	repo "kreps/internal/repository"
)

// IDGenerator はuuid生成をusecaseから切り離す（テストで固定値を入れる）。
type IDGenerator interface {
	NewID() string
}

type OrderUsecase struct {
	tx    repo.TransactionManager
	idGen IDGenerator
}

func NewOrderUsecase(tx repo.TransactionManager, idGen IDGenerator) *OrderUsecase {
	return &OrderUsecase{tx: tx, idGen: idGen}
}

type PlaceOrderItemInput struct {
	ProductID        string
	Name             string
	UnitPriceCents   *int64
	BasePriceCents   int64
	OptionPriceCents int64
	Quantity         int64
	SelectedOptions  model.SelectedOptions
}

type PlaceOrderInput struct {
	TotalCents    *int64
	CustomerName  string
	CustomerPhone string
	Note          string

	PaymentMethod string

	DeliveryMode      string
	AddressStreet     string
	AddressPostalCode string
	AddressCity       string
	DeliveryFeeCents  int64

	Items []PlaceOrderItemInput
}

type PlaceOrderOutput struct {
	OK      bool   `json:"ok"`
	OrderID string `json:"orderId"`
	Code    string `json:"code"`
}

type OrderItemOutput struct {
	ProductID       string                `json:"product_id"`
	Name            string                `json:"name"`
	UnitPriceCents  int64                 `json:"unit_price_cents"`
	Quantity        int64                 `json:"quantity"`
	SelectedOptions model.SelectedOptions `json:"selected_options"`
}

type OrderOutput struct {
	ID            string            `json:"id"`
	Code          string            `json:"code"`
	Status        string            `json:"status"`
	TotalCents    int64             `json:"total_cents"`
	PaymentMethod string            `json:"payment_method"`
	PaymentPaid   bool              `json:"payment_paid"`
	CustomerName  string            `json:"customer_name"`
	CustomerPhone string            `json:"customer_phone"`
	Note          string            `json:"note"`
	CreatedAt     time.Time         `json:"created_at"`
	Items         []OrderItemOutput `json:"items"`
}

// productDemand は商品ごとに合算した必要数。入力に現れた順を保つ（409で先頭の不足商品を返すため）。
type productDemand struct {
	productID string
	quantity  int64
}

// PlaceOrder は注文確定。検証 → 商品ごとの必要数合算 → 条件付き在庫減算 →
// 注文ヘッダ作成 → 明細スナップショット作成 を1トランザクションで行う。
// 在庫が足りなければロールバックして副作用ゼロで409を返す。
func (u *OrderUsecase) PlaceOrder(ctx context.Context, in PlaceOrderInput) (PlaceOrderOutput, error) {
	if in.TotalCents == nil {
		return PlaceOrderOutput{}, NewHTTPError(http.StatusBadRequest, "totalCents(number) required")
	}
	if len(in.Items) == 0 {
		return PlaceOrderOutput{}, NewHTTPError(http.StatusBadRequest, "items must not be empty")
	}

	demands := make([]productDemand, 0, len(in.Items))
	indexByProduct := make(map[string]int, len(in.Items))

	for _, it := range in.Items {
		if strings.TrimSpace(it.ProductID) == "" {
			return PlaceOrderOutput{}, NewHTTPError(http.StatusBadRequest, "items[].productId required")
		}
		if it.Quantity < 1 {
			return PlaceOrderOutput{}, NewHTTPError(http.StatusBadRequest, "items[].quantity must be >= 1")
		}

		// 同じ商品がオプション違いで複数行に入ることがあるので合算する
		if i, ok := indexByProduct[it.ProductID]; ok {
			demands[i].quantity += it.Quantity
			continue
		}
		indexByProduct[it.ProductID] = len(demands)
		demands = append(demands, productDemand{productID: it.ProductID, quantity: it.Quantity})
	}

	deliveryMode := model.DeliveryModePickup
	if in.DeliveryMode == string(model.DeliveryModeDelivery) {
		deliveryMode = model.DeliveryModeDelivery
	}
	feeCents := in.DeliveryFeeCents
	if deliveryMode != model.DeliveryModeDelivery {
		feeCents = 0
	}

	var out PlaceOrderOutput

	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		// 在庫は1文のUPDATEで条件付き減算。足りなければロールバックで全部無かったことになる
		for _, d := range demands {
			ok, err := r.Stocks().DecreaseIfEnough(ctx, d.productID, d.quantity)
			if err != nil {
				return NewHTTPError(http.StatusInternalServerError, "db error")
			}
			if !ok {
				available, err := r.Stocks().GetQuantity(ctx, d.productID)
				if err != nil {
					return NewHTTPError(http.StatusInternalServerError, "db error")
				}
				return &StockConflictError{
					ProductID: d.productID,
					Available: available,
					Requested: d.quantity,
				}
			}
		}

		now := time.Now()
		orderID := u.idGen.NewID()
		code := makeOrderCode(u.idGen.NewID())

		order := model.Order{
			ID:                orderID,
			Code:              code,
			Status:            model.OrderStatusPending,
			TotalCents:        *in.TotalCents,
			PaymentMethod:     in.PaymentMethod,
			CustomerName:      in.CustomerName,
			CustomerPhone:     in.CustomerPhone,
			Note:              in.Note,
			DeliveryMode:      deliveryMode,
			AddressStreet:     in.AddressStreet,
			AddressPostalCode: in.AddressPostalCode,
			AddressCity:       in.AddressCity,
			DeliveryFeeCents:  feeCents,
			CreatedAt:         now,
			UpdatedAt:         now,
		}
		if err := r.Orders().Create(ctx, order); err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		items := make([]model.OrderItem, 0, len(in.Items))
		for _, it := range in.Items {
			selected := it.SelectedOptions
			if selected == nil {
				selected = model.SelectedOptions{}
			}
			items = append(items, model.OrderItem{
				ProductID:       it.ProductID,
				NameSnapshot:    it.Name,
				UnitPriceCents:  resolveUnitPrice(it),
				Quantity:        it.Quantity,
				SelectedOptions: selected,
				CreatedAt:       now,
			})
		}
		if err := r.OrderItems().CreateBulk(ctx, orderID, items); err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		out = PlaceOrderOutput{OK: true, OrderID: orderID, Code: code}
		return nil
	})

	if err != nil {
		return PlaceOrderOutput{}, err
	}
	return out, nil
}

// GetOrder は注文1件（ヘッダ＋明細）。客のレシート画面とキッチンの詳細で使う。
func (u *OrderUsecase) GetOrder(ctx context.Context, orderID string) (OrderOutput, error) {
	if strings.TrimSpace(orderID) == "" {
		return OrderOutput{}, NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	var out OrderOutput

	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		o, err := r.Orders().FindByID(ctx, orderID)
		if err == repo.ErrNotFound {
			return NewHTTPError(http.StatusNotFound, "not found")
		}
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		items, err := r.OrderItems().ListByOrderID(ctx, orderID)
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		out = toOrderOutput(o, items)
		return nil
	})

	if err != nil {
		return OrderOutput{}, err
	}
	return out, nil
}

// 明示の単価があればそれ、無ければ base+option、それも無ければ0
func resolveUnitPrice(it PlaceOrderItemInput) int64 {
	if it.UnitPriceCents != nil && *it.UnitPriceCents != 0 {
		return *it.UnitPriceCents
	}
	return it.BasePriceCents + it.OptionPriceCents
}

// 注文コードは人が読む用。uuidの先頭8桁を大文字にして KREPS- を付ける
func makeOrderCode(id string) string {
	rnd := strings.ToUpper(strings.ReplaceAll(id, "-", ""))
	if len(rnd) > 8 {
		rnd = rnd[:8]
	}
	return "KREPS-" + rnd
}

func toOrderOutput(o model.Order, items []model.OrderItem) OrderOutput {
	outItems := make([]OrderItemOutput, 0, len(items))
	for _, it := range items {
		outItems = append(outItems, OrderItemOutput{
			ProductID:       it.ProductID,
			Name:            it.NameSnapshot,
			UnitPriceCents:  it.UnitPriceCents,
			Quantity:        it.Quantity,
			SelectedOptions: it.SelectedOptions,
		})
	}

	return OrderOutput{
		ID:            o.ID,
		Code:          o.Code,
		Status:        string(o.Status),
		TotalCents:    o.TotalCents,
		PaymentMethod: o.PaymentMethod,
		PaymentPaid:   o.PaymentPaid,
		CustomerName:  o.CustomerName,
		CustomerPhone: o.CustomerPhone,
		Note:          o.Note,
		CreatedAt:     o.CreatedAt,
		Items:         outItems,
	}
}
