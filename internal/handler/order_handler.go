package handler

import (
	"net/http"

	"kreps/internal/domain/model"
	"kreps/internal/usecase"

	"github.com/labstack/echo/v4"
)

type OrderHandler struct {
	uc *usecase.OrderUsecase
}

func NewOrderHandler(uc *usecase.OrderUsecase) *OrderHandler {
	return &OrderHandler{uc: uc}
}

type AddressRequest struct {
	Street     string `json:"street"`
	PostalCode string `json:"postalCode"`
	City       string `json:"city"`
}

type OrderItemRequest struct {
	ProductID        string                `json:"productId"`
	Name             string                `json:"name"`
	UnitPriceCents   *int64                `json:"unitPriceCents"`
	BasePriceCents   int64                 `json:"basePriceCents"`
	OptionPriceCents int64                 `json:"optionPriceCents"`
	Quantity         int64                 `json:"quantity"`
	SelectedOptions  model.SelectedOptions `json:"selectedOptions"`
}

type OrderCreateRequest struct {
	TotalCents       *int64             `json:"totalCents"`
	CustomerName     string             `json:"customerName"`
	CustomerPhone    string             `json:"customerPhone"`
	Note             string             `json:"note"`
	PaymentMethod    string             `json:"paymentMethod"`
	DeliveryMode     string             `json:"deliveryMode"`
	Address          *AddressRequest    `json:"address"`
	DeliveryFeeCents int64              `json:"deliveryFeeCents"`
	Items            []OrderItemRequest `json:"items"`
}

func (h *OrderHandler) RegisterRoutes(e *echo.Echo) {
	g := e.Group("/api/orders")
	g.POST("", h.create)
	g.GET("/:id", h.detail)
}

func (h *OrderHandler) create(c echo.Context) error {
	var req OrderCreateRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	in := usecase.PlaceOrderInput{
		TotalCents:       req.TotalCents,
		CustomerName:     req.CustomerName,
		CustomerPhone:    req.CustomerPhone,
		Note:             req.Note,
		PaymentMethod:    req.PaymentMethod,
		DeliveryMode:     req.DeliveryMode,
		DeliveryFeeCents: req.DeliveryFeeCents,
	}
	if req.Address != nil {
		in.AddressStreet = req.Address.Street
		in.AddressPostalCode = req.Address.PostalCode
		in.AddressCity = req.Address.City
	}
	for _, it := range req.Items {
		in.Items = append(in.Items, usecase.PlaceOrderItemInput{
			ProductID:        it.ProductID,
			Name:             it.Name,
			UnitPriceCents:   it.UnitPriceCents,
			BasePriceCents:   it.BasePriceCents,
			OptionPriceCents: it.OptionPriceCents,
			Quantity:         it.Quantity,
			SelectedOptions:  it.SelectedOptions,
		})
	}

	out, err := h.uc.PlaceOrder(c.Request().Context(), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *OrderHandler) detail(c echo.Context) error {
	out, err := h.uc.GetOrder(c.Request().Context(), c.Param("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}
