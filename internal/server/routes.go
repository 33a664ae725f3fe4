package server

import (
	"kreps/internal/handler"

	"github.com/labstack/echo/v4"
)

func RegisterRoutes(
	e *echo.Echo,
	productH *handler.ProductHandler,
	orderH *handler.OrderHandler,
	adminOrderH *handler.AdminOrderHandler,
	adminProductH *handler.AdminProductHandler,
) {
	productH.RegisterRoutes(e)
	orderH.RegisterRoutes(e)
	adminOrderH.RegisterRoutes(e)
	adminProductH.RegisterRoutes(e)
}
