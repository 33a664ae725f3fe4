package usecase

import (
	"errors"
	"fmt"
)

type HTTPError struct {
	Status  int
	Message string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("%d: %s", e.Status, e.Message)
}

func NewHTTPError(status int, message string) error {
	return &HTTPError{
		Status:  status,
		Message: message,
	}
}

func AsHTTPError(err error) (*HTTPError, bool) {
	var he *HTTPError
	ok := errors.As(err, &he)
	return he, ok
}

// StockConflictError は在庫不足（409）。どの商品が・いくつ残っていて・いくつ要求されたかを運ぶ。
// 呼び出し元のUIはこれを見て数量調整画面に誘導する。
type StockConflictError struct {
	ProductID string
	Available int64
	Requested int64
}

func (e *StockConflictError) Error() string {
	return fmt.Sprintf("stock conflict: product=%s available=%d requested=%d",
		e.ProductID, e.Available, e.Requested)
}

func AsStockConflictError(err error) (*StockConflictError, bool) {
	var sc *StockConflictError
	ok := errors.As(err, &sc)
	return sc, ok
}
