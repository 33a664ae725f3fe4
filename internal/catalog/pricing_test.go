package catalog_test

import (
	"testing"

	"kreps/internal/catalog"
	"kreps/internal/domain/model"

	"github.com/stretchr/testify/assert"
)

// テスト用のグループ定義（複数選択グループは本番カタログに無いのでここで作る）
func testGroups() map[string]catalog.OptionGroup {
	return map[string]catalog.OptionGroup{
		"size": {
			ID:       "size",
			Type:     catalog.GroupTypeSingle,
			Required: true,
			Options: []catalog.Option{
				{ID: "m"},
				{ID: "l", PriceDeltaCents: 200},
				{ID: "xl", PriceDeltaCents: 500},
			},
		},
		"promo": {
			ID:   "promo",
			Type: catalog.GroupTypeSingle,
			Options: []catalog.Option{
				{ID: "midi", PriceDeltaCents: -100},
			},
		},
		"extras": {
			ID:        "extras",
			Type:      catalog.GroupTypeMultiple,
			MaxSelect: 2,
			Options: []catalog.Option{
				{ID: "cheese", PriceDeltaCents: 100},
				{ID: "egg", PriceDeltaCents: 150},
			},
		},
	}
}

func Test_UnitPriceCents(t *testing.T) {
	groups := testGroups()

	cases := []struct {
		name     string
		base     int64
		selected model.SelectedOptions
		want     int64
	}{
		{name: "base only", base: 700, selected: nil, want: 700},
		{name: "single delta", base: 700, selected: model.SelectedOptions{"size": {"l"}}, want: 900},
		{name: "zero delta option", base: 700, selected: model.SelectedOptions{"size": {"m"}}, want: 700},
		{name: "negative delta", base: 700, selected: model.SelectedOptions{"promo": {"midi"}}, want: 600},
		{name: "multiple group sums every selection", base: 700, selected: model.SelectedOptions{"extras": {"cheese", "egg"}}, want: 950},
		{name: "mixed groups", base: 700, selected: model.SelectedOptions{"size": {"xl"}, "extras": {"cheese"}}, want: 1300},
		// 知らないIDは0円扱いでエラーにしない（古いスナップショット互換）
		{name: "unknown group ignored", base: 700, selected: model.SelectedOptions{"topping": {"gold"}}, want: 700},
		{name: "unknown option ignored", base: 700, selected: model.SelectedOptions{"size": {"xxl"}}, want: 700},
		{name: "empty selection for group", base: 700, selected: model.SelectedOptions{"size": {}}, want: 700},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := catalog.UnitPriceCents(tc.base, tc.selected, groups)
			assert.Equal(t, tc.want, got)
		})
	}
}

// 単一選択グループは先頭の1つだけ数える
func Test_UnitPriceCents_SingleGroupTakesFirstOnly(t *testing.T) {
	got := catalog.UnitPriceCents(700, model.SelectedOptions{"size": {"l", "xl"}}, testGroups())
	assert.Equal(t, int64(900), got)
}

func Test_ValidateSelection(t *testing.T) {
	err := catalog.ValidateSelection([]string{"protein", "size"}, model.SelectedOptions{
		"protein": {"poulet"},
		"size":    {"l"},
	})
	assert.NoError(t, err)

	// 必須グループ未選択
	err = catalog.ValidateSelection([]string{"protein", "size"}, model.SelectedOptions{
		"size": {"l"},
	})
	assert.Error(t, err)

	// 単一グループに2つ
	err = catalog.ValidateSelection([]string{"size"}, model.SelectedOptions{
		"size": {"l", "xl"},
	})
	assert.Error(t, err)

	// 商品側が知らないグループIDを持っていても落ちない
	err = catalog.ValidateSelection([]string{"does-not-exist"}, model.SelectedOptions{})
	assert.NoError(t, err)
}

func Test_GroupList_KeepsDisplayOrder(t *testing.T) {
	groups := catalog.GroupList()

	ids := make([]string, 0, len(groups))
	for _, g := range groups {
		ids = append(ids, g.ID)
	}
	assert.Equal(t, []string{"protein", "base", "size", "sauce", "drink", "dessert"}, ids)
}
