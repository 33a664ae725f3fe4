package handler

import (
	"net/http"

	"kreps/internal/usecase"

	"github.com/labstack/echo/v4"
)

type AdminProductHandler struct {
	uc *usecase.AdminProductUsecase
}

func NewAdminProductHandler(uc *usecase.AdminProductUsecase) *AdminProductHandler {
	return &AdminProductHandler{uc: uc}
}

type ProductCreateRequest struct {
	Name           string   `json:"name"`
	Slug           string   `json:"slug"`
	BasePriceCents int64    `json:"basePriceCents"`
	Image          string   `json:"image"`
	OptionGroupIDs []string `json:"optionGroupIds"`
}

type ProductUpdateRequest struct {
	Name           *string   `json:"name"`
	Slug           *string   `json:"slug"`
	BasePriceCents *int64    `json:"basePriceCents"`
	Image          *string   `json:"image"`
	IsActive       *bool     `json:"isActive"`
	OptionGroupIDs *[]string `json:"optionGroupIds"`
}

type StockUpdateRequest struct {
	Quantity *int64 `json:"quantity"`
	Reason   string `json:"reason"`
}

func (h *AdminProductHandler) RegisterRoutes(e *echo.Echo) {
	admin := e.Group("/api/admin")

	admin.GET("/products", h.list)
	admin.POST("/products", h.create)
	admin.PATCH("/products/:id", h.update)
	admin.PATCH("/stock/:productId", h.setStock)
}

func (h *AdminProductHandler) list(c echo.Context) error {
	out, err := h.uc.List(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *AdminProductHandler) create(c echo.Context) error {
	var req ProductCreateRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	_, err := h.uc.Create(c.Request().Context(), usecase.CreateProductInput{
		Name:           req.Name,
		Slug:           req.Slug,
		BasePriceCents: req.BasePriceCents,
		Image:          req.Image,
		OptionGroupIDs: req.OptionGroupIDs,
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, OkResponse{OK: true})
}

func (h *AdminProductHandler) update(c echo.Context) error {
	var req ProductUpdateRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	err := h.uc.Update(c.Request().Context(), c.Param("id"), usecase.UpdateProductInput{
		Name:           req.Name,
		Slug:           req.Slug,
		BasePriceCents: req.BasePriceCents,
		Image:          req.Image,
		IsActive:       req.IsActive,
		OptionGroupIDs: req.OptionGroupIDs,
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, OkResponse{OK: true})
}

func (h *AdminProductHandler) setStock(c echo.Context) error {
	var req StockUpdateRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if req.Quantity == nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "quantity(number) required"})
	}

	err := h.uc.SetStock(c.Request().Context(), c.Param("productId"), usecase.SetStockInput{
		Quantity: *req.Quantity,
		Reason:   req.Reason,
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, OkResponse{OK: true})
}
