package usecase

import (
	"context"
	"net/http"
	"strings"

	"kreps/internal/domain/model"
	repo "kreps/internal/repository"
)

type AdminProductUsecase struct {
	productRepo repo.ProductRepository
	stockRepo   repo.StockRepository
	idGen       IDGenerator
}

func NewAdminProductUsecase(
	productRepo repo.ProductRepository,
	stockRepo repo.StockRepository,
	idGen IDGenerator,
) *AdminProductUsecase {
	return &AdminProductUsecase{
		productRepo: productRepo,
		stockRepo:   stockRepo,
		idGen:       idGen,
	}
}

// AdminProductOutput は管理画面の一覧行。在庫数も一緒に返す。
type AdminProductOutput struct {
	model.Product
	StockQuantity int64 `json:"stock_quantity"`
}

func (u *AdminProductUsecase) List(ctx context.Context) ([]AdminProductOutput, error) {
	products, err := u.productRepo.ListAll(ctx)
	if err != nil {
		return []AdminProductOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	outs := make([]AdminProductOutput, 0, len(products))
	for _, p := range products {
		qty, err := u.stockRepo.GetQuantity(ctx, p.ID)
		if err != nil {
			return []AdminProductOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
		}
		outs = append(outs, AdminProductOutput{Product: p, StockQuantity: qty})
	}
	return outs, nil
}

type CreateProductInput struct {
	Name           string
	Slug           string
	BasePriceCents int64
	Image          string
	OptionGroupIDs []string
}

// Create は商品作成。在庫行も0で作っておく（在庫未設定＝売り切れ表示になる）。
func (u *AdminProductUsecase) Create(ctx context.Context, in CreateProductInput) (model.Product, error) {
	if strings.TrimSpace(in.Name) == "" || strings.TrimSpace(in.Slug) == "" {
		return model.Product{}, NewHTTPError(http.StatusBadRequest, "name and slug required")
	}
	if in.BasePriceCents < 0 {
		return model.Product{}, NewHTTPError(http.StatusBadRequest, "basePriceCents must be >= 0")
	}

	p := model.Product{
		ID:             u.idGen.NewID(),
		Slug:           strings.TrimSpace(in.Slug),
		Name:           strings.TrimSpace(in.Name),
		BasePriceCents: in.BasePriceCents,
		Image:          in.Image,
		OptionGroupIDs: model.StringSlice(in.OptionGroupIDs),
		IsActive:       true,
	}

	created, err := u.productRepo.Create(ctx, p)
	if err != nil {
		return model.Product{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	if err := u.stockRepo.SetQuantity(ctx, created.ID, 0); err != nil {
		return model.Product{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	return created, nil
}

// UpdateProductInput はPATCH用。nilのフィールドは触らない。
type UpdateProductInput struct {
	Name           *string
	Slug           *string
	BasePriceCents *int64
	Image          *string
	IsActive       *bool
	OptionGroupIDs *[]string
}

func (u *AdminProductUsecase) Update(ctx context.Context, productID string, in UpdateProductInput) error {
	if strings.TrimSpace(productID) == "" {
		return NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	p, err := u.productRepo.FindByID(ctx, productID)
	if err == repo.ErrNotFound {
		return NewHTTPError(http.StatusNotFound, "not found")
	}
	if err != nil {
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}

	if in.Name != nil {
		if strings.TrimSpace(*in.Name) == "" {
			return NewHTTPError(http.StatusBadRequest, "name must not be empty")
		}
		p.Name = strings.TrimSpace(*in.Name)
	}
	if in.Slug != nil {
		if strings.TrimSpace(*in.Slug) == "" {
			return NewHTTPError(http.StatusBadRequest, "slug must not be empty")
		}
		p.Slug = strings.TrimSpace(*in.Slug)
	}
	if in.BasePriceCents != nil {
		if *in.BasePriceCents < 0 {
			return NewHTTPError(http.StatusBadRequest, "basePriceCents must be >= 0")
		}
		p.BasePriceCents = *in.BasePriceCents
	}
	if in.Image != nil {
		p.Image = *in.Image
	}
	if in.IsActive != nil {
		p.IsActive = *in.IsActive
	}
	if in.OptionGroupIDs != nil {
		p.OptionGroupIDs = model.StringSlice(*in.OptionGroupIDs)
	}

	if err := u.productRepo.Update(ctx, p); err != nil {
		if err == repo.ErrNotFound {
			return NewHTTPError(http.StatusNotFound, "not found")
		}
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return nil
}

type SetStockInput struct {
	Quantity int64
	Reason   string
}

// SetStock は在庫の絶対値設定。履歴（before/after）も残す。
func (u *AdminProductUsecase) SetStock(ctx context.Context, productID string, in SetStockInput) error {
	if strings.TrimSpace(productID) == "" {
		return NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	if in.Quantity < 0 {
		return NewHTTPError(http.StatusBadRequest, "quantity must be >= 0")
	}

	if _, err := u.productRepo.FindByID(ctx, productID); err != nil {
		if err == repo.ErrNotFound {
			return NewHTTPError(http.StatusNotFound, "not found")
		}
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}

	before, err := u.stockRepo.GetQuantity(ctx, productID)
	if err != nil {
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}

	if err := u.stockRepo.SetQuantity(ctx, productID, in.Quantity); err != nil {
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}

	if err := u.stockRepo.CreateAdjustment(ctx, model.StockAdjustment{
		ProductID:      productID,
		BeforeQuantity: before,
		AfterQuantity:  in.Quantity,
		Reason:         in.Reason,
	}); err != nil {
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}

	return nil
}
