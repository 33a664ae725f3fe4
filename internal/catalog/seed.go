package catalog

import (
	"context"

	"kreps/internal/domain/model"
	repo "kreps/internal/repository"
)

type seedProduct struct {
	Slug           string
	Name           string
	BasePriceCents int64
	Image          string
	OptionGroupIDs []string
	InitialStock   int64
}

// 初期メニュー。商品テーブルが空のときだけ投入する。
var seedProducts = []seedProduct{
	{
		Slug:           "crousty",
		Name:           "Crousty",
		BasePriceCents: 700,
		Image:          "/products/crousty.jpg",
		OptionGroupIDs: []string{"protein", "base", "size", "sauce"},
		InitialStock:   50,
	},
	{
		Slug:           "drink-coca",
		Name:           "Coca-Cola",
		BasePriceCents: 200,
		Image:          "/products/drink-coca.jpg",
		InitialStock:   100,
	},
	{
		Slug:           "drink-fanta",
		Name:           "Fanta",
		BasePriceCents: 200,
		Image:          "/products/drink-fanta.jpg",
		InitialStock:   100,
	},
	{
		Slug:           "drink-water",
		Name:           "Eau",
		BasePriceCents: 150,
		Image:          "/products/drink-water.jpg",
		InitialStock:   100,
	},
	{
		Slug:           "dessert-tiramisu",
		Name:           "Tiramisu",
		BasePriceCents: 350,
		Image:          "/products/dessert-tiramisu.jpg",
		InitialStock:   30,
	},
	{
		Slug:           "dessert-cookie",
		Name:           "Cookie",
		BasePriceCents: 250,
		Image:          "/products/dessert-cookie.jpg",
		InitialStock:   30,
	},
}

// SeedProducts は初回起動時にメニューと在庫行を作る。2回目以降は何もしない。
func SeedProducts(ctx context.Context, products repo.ProductRepository, stocks repo.StockRepository, newID func() string) error {
	n, err := products.Count(ctx)
	if err != nil {
		return err
	}
	if n > 0 {
		return nil
	}

	for _, s := range seedProducts {
		p := model.Product{
			ID:             newID(),
			Slug:           s.Slug,
			Name:           s.Name,
			BasePriceCents: s.BasePriceCents,
			Image:          s.Image,
			OptionGroupIDs: model.StringSlice(s.OptionGroupIDs),
			IsActive:       true,
		}
		created, err := products.Create(ctx, p)
		if err != nil {
			return err
		}
		if err := stocks.SetQuantity(ctx, created.ID, s.InitialStock); err != nil {
			return err
		}
	}
	return nil
}
