package catalog

type GroupType string

const (
	GroupTypeSingle   GroupType = "single"
	GroupTypeMultiple GroupType = "multiple"
)

type Option struct {
	ID              string `json:"id"`
	Label           string `json:"label"`
	PriceDeltaCents int64  `json:"price_delta_cents"`
}

// OptionGroup は商品カスタマイズの1軸（タンパク・サイズ・ソースなど）。静的設定で、DBには持たない。
type OptionGroup struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Type      GroupType `json:"type"`
	Required  bool      `json:"required"`
	MaxSelect int       `json:"max_select,omitempty"`
	Options   []Option  `json:"options"`
}

var Groups = map[string]OptionGroup{
	"protein": {
		ID:       "protein",
		Title:    "Choisis ton crousty",
		Type:     GroupTypeSingle,
		Required: true,
		Options: []Option{
			{ID: "poulet", Label: "Poulet"},
			{ID: "crevettes", Label: "Crevettes"},
			{ID: "poisson", Label: "Poisson"},
		},
	},
	"base": {
		ID:       "base",
		Title:    "Base",
		Type:     GroupTypeSingle,
		Required: true,
		Options: []Option{
			{ID: "base", Label: "Originale"},
			{ID: "curry", Label: "Curry"},
		},
	},
	"size": {
		ID:       "size",
		Title:    "Taille",
		Type:     GroupTypeSingle,
		Required: true,
		Options: []Option{
			{ID: "m", Label: "M"},
			{ID: "l", Label: "L", PriceDeltaCents: 200},
			{ID: "xl", Label: "XL", PriceDeltaCents: 500},
		},
	},
	"sauce": {
		ID:       "sauce",
		Title:    "Sauce",
		Type:     GroupTypeSingle,
		Required: true,
		Options: []Option{
			{ID: "spicy", Label: "Piquante"},
			{ID: "sweet", Label: "Sucrée"},
			{ID: "mix", Label: "Piquante + Sucrée"},
			{ID: "bbq", Label: "Barbecue"},
		},
	},
	"drink": {
		ID:    "drink",
		Title: "Boisson",
		Type:  GroupTypeSingle,
		Options: []Option{
			{ID: "none", Label: "Aucune"},
			{ID: "coca", Label: "Coca-Cola", PriceDeltaCents: 200},
			{ID: "coca_zero", Label: "Coca Zero", PriceDeltaCents: 200},
			{ID: "fanta", Label: "Fanta", PriceDeltaCents: 200},
			{ID: "sprite", Label: "Sprite", PriceDeltaCents: 200},
			{ID: "water", Label: "Eau", PriceDeltaCents: 150},
		},
	},
	"dessert": {
		ID:    "dessert",
		Title: "Dessert",
		Type:  GroupTypeSingle,
		Options: []Option{
			{ID: "none", Label: "Aucun"},
			{ID: "tiramisu", Label: "Tiramisu", PriceDeltaCents: 350},
		},
	},
}

// groupOrder はAPIに返すときの表示順
var groupOrder = []string{"protein", "base", "size", "sauce", "drink", "dessert"}

func GroupList() []OptionGroup {
	out := make([]OptionGroup, 0, len(groupOrder))
	for _, id := range groupOrder {
		if g, ok := Groups[id]; ok {
			out = append(out, g)
		}
	}
	return out
}
