package handler

import (
	"net/http"

	"kreps/internal/usecase"

	"github.com/labstack/echo/v4"
)

type AdminOrderHandler struct {
	uc      *usecase.AdminOrderUsecase
	orderUC *usecase.OrderUsecase
}

func NewAdminOrderHandler(uc *usecase.AdminOrderUsecase, orderUC *usecase.OrderUsecase) *AdminOrderHandler {
	return &AdminOrderHandler{uc: uc, orderUC: orderUC}
}

// status と paid はどちらか片方だけでも送れる
type OrderUpdateRequest struct {
	Status *string `json:"status"`
	Paid   *bool   `json:"paid"`
}

func (h *AdminOrderHandler) RegisterRoutes(e *echo.Echo) {
	admin := e.Group("/api/admin")

	admin.GET("/orders", h.list)
	admin.GET("/orders/:id", h.detail)
	admin.PATCH("/orders/:id", h.update)
}

func (h *AdminOrderHandler) list(c echo.Context) error {
	out, err := h.uc.List(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *AdminOrderHandler) detail(c echo.Context) error {
	out, err := h.orderUC.GetOrder(c.Request().Context(), c.Param("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *AdminOrderHandler) update(c echo.Context) error {
	orderID := c.Param("id")

	var req OrderUpdateRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if req.Status == nil && req.Paid == nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "status or paid required"})
	}

	ctx := c.Request().Context()

	if req.Status != nil {
		if err := h.uc.UpdateStatus(ctx, orderID, *req.Status); err != nil {
			return writeError(c, err)
		}
	}
	if req.Paid != nil {
		if err := h.uc.SetPaid(ctx, orderID, *req.Paid); err != nil {
			return writeError(c, err)
		}
	}

	return c.JSON(http.StatusOK, OkResponse{OK: true})
}
