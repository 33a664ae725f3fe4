package catalog

import (
	"fmt"

	"kreps/internal/domain/model"
)

// UnitPriceCents は 基本価格 + 選択オプションの差額 を返す。
// 知らないグループIDやオプションIDは0円として無視する（古いスナップショットが来ても落とさない）。
func UnitPriceCents(basePriceCents int64, selected model.SelectedOptions, groups map[string]OptionGroup) int64 {
	total := basePriceCents

	for groupID, optionIDs := range selected {
		group, ok := groups[groupID]
		if !ok {
			continue
		}

		if group.Type == GroupTypeSingle {
			// 単一選択は先頭の1つだけ
			if len(optionIDs) == 0 {
				continue
			}
			total += optionDelta(group, optionIDs[0])
			continue
		}

		for _, id := range optionIDs {
			total += optionDelta(group, id)
		}
	}

	return total
}

func optionDelta(group OptionGroup, optionID string) int64 {
	for _, o := range group.Options {
		if o.ID == optionID {
			return o.PriceDeltaCents
		}
	}
	return 0
}

// ValidateSelection は選択時点のチェック。必須グループが選ばれているか、
// 単一グループに2つ以上入っていないか、複数グループが MaxSelect を超えていないか。
// 価格計算（UnitPriceCents）はこのチェックをしない。
func ValidateSelection(groupIDs []string, selected model.SelectedOptions) error {
	for _, groupID := range groupIDs {
		group, ok := Groups[groupID]
		if !ok {
			continue
		}

		ids := selected[groupID]
		if group.Required && len(ids) == 0 {
			return fmt.Errorf("option group %q is required", groupID)
		}
		if group.Type == GroupTypeSingle && len(ids) > 1 {
			return fmt.Errorf("option group %q allows one choice", groupID)
		}
		if group.Type == GroupTypeMultiple && group.MaxSelect > 0 && len(ids) > group.MaxSelect {
			return fmt.Errorf("option group %q allows up to %d choices", groupID, group.MaxSelect)
		}
	}
	return nil
}
