package usecase

import (
	"context"
	"net/http"
	"strings"

	"kreps/internal/domain/model"
	repo "kreps/internal/repository"
)

// ProductUsecase は公開側（客が見る）商品・在庫の読み取り。
type ProductUsecase struct {
	productRepo repo.ProductRepository
	stockRepo   repo.StockRepository
}

func NewProductUsecase(productRepo repo.ProductRepository, stockRepo repo.StockRepository) *ProductUsecase {
	return &ProductUsecase{
		productRepo: productRepo,
		stockRepo:   stockRepo,
	}
}

func (u *ProductUsecase) ListPublicProducts(ctx context.Context) ([]model.Product, error) {
	items, err := u.productRepo.ListActive(ctx)
	if err != nil {
		return []model.Product{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return items, nil
}

func (u *ProductUsecase) GetProductBySlug(ctx context.Context, slug string) (model.Product, error) {
	if strings.TrimSpace(slug) == "" {
		return model.Product{}, NewHTTPError(http.StatusBadRequest, "invalid slug")
	}

	p, err := u.productRepo.FindBySlug(ctx, slug)
	if err == repo.ErrNotFound {
		return model.Product{}, NewHTTPError(http.StatusNotFound, "product not found")
	}
	if err != nil {
		return model.Product{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return p, nil
}

type StockOutput struct {
	Quantity int64 `json:"quantity"`
}

// GetStockBySlug は商品ページの在庫表示用。在庫行が無い商品は0を返す（エラーにしない）。
func (u *ProductUsecase) GetStockBySlug(ctx context.Context, slug string) (StockOutput, error) {
	p, err := u.GetProductBySlug(ctx, slug)
	if err != nil {
		return StockOutput{}, err
	}

	qty, err := u.stockRepo.GetQuantity(ctx, p.ID)
	if err != nil {
		return StockOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return StockOutput{Quantity: qty}, nil
}
