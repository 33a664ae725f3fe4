package handler

import (
	"net/http"

	"kreps/internal/catalog"
	"kreps/internal/usecase"

	"github.com/labstack/echo/v4"
)

type ErrorResponse struct {
	Error string `json:"error"`
}

type OkResponse struct {
	OK bool `json:"ok"`
}

// StockConflictResponse は409の専用ボディ。UIはこれを見て数量調整に誘導する。
type StockConflictResponse struct {
	Error     string `json:"error"`
	ProductID string `json:"productId"`
	Available int64  `json:"available"`
	Requested int64  `json:"requested"`
}

func writeError(c echo.Context, err error) error {
	if err == nil {
		return nil
	}
	if sc, ok := usecase.AsStockConflictError(err); ok {
		return c.JSON(http.StatusConflict, StockConflictResponse{
			Error:     "stock conflict",
			ProductID: sc.ProductID,
			Available: sc.Available,
			Requested: sc.Requested,
		})
	}
	if he, ok := usecase.AsHTTPError(err); ok {
		return c.JSON(he.Status, ErrorResponse{Error: he.Message})
	}

	//500
	return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal error"})
}

// /api/products と /api/stock の公開API
type ProductHandler struct {
	uc *usecase.ProductUsecase
}

func NewProductHandler(uc *usecase.ProductUsecase) *ProductHandler {
	return &ProductHandler{uc: uc}
}

func (h *ProductHandler) RegisterRoutes(e *echo.Echo) {
	g := e.Group("/api")
	g.GET("/products", h.list)
	g.GET("/products/:slug", h.detail)
	g.GET("/options", h.options)
	g.GET("/stock/:slug", h.stock)
}

func (h *ProductHandler) list(c echo.Context) error {
	out, err := h.uc.ListPublicProducts(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *ProductHandler) detail(c echo.Context) error {
	out, err := h.uc.GetProductBySlug(c.Request().Context(), c.Param("slug"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

// オプショングループは静的設定なのでそのまま返す
func (h *ProductHandler) options(c echo.Context) error {
	return c.JSON(http.StatusOK, catalog.GroupList())
}

func (h *ProductHandler) stock(c echo.Context) error {
	out, err := h.uc.GetStockBySlug(c.Request().Context(), c.Param("slug"))
	if err != nil {
		return writeError(c, err)
	}

	// 在庫は鮮度が命なのでキャッシュさせない
	c.Response().Header().Set("Cache-Control", "no-store")
	return c.JSON(http.StatusOK, out)
}
