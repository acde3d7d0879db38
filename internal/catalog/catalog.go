package catalog

import (
	"sort"
	"strings"

	"daddeck/internal/models"
)

// Catalog is the read-only card database. All lookups return copies, so
// callers can never mutate the catalog through a result.
type Catalog struct {
	cards []*models.Card
	byID  map[string]*models.Card
}

func New() *Catalog {
	byID := make(map[string]*models.Card, len(builtinCards))
	for _, c := range builtinCards {
		byID[c.ID] = c
	}
	return &Catalog{cards: builtinCards, byID: byID}
}

func (c *Catalog) Size() int {
	return len(c.cards)
}

func (c *Catalog) Get(id string) (*models.Card, bool) {
	card, ok := c.byID[id]
	if !ok {
		return nil, false
	}
	return card.Clone(), true
}

type ListFilter struct {
	Rarity   string
	Type     string
	Series   int
	Search   string
	Page     int
	PageSize int
}

// List returns catalog cards matching the filter, ordered by series then
// card number, paginated.
func (c *Catalog) List(f ListFilter) ([]*models.Card, models.Pagination) {
	matched := make([]*models.Card, 0, len(c.cards))
	search := strings.ToLower(f.Search)
	for _, card := range c.cards {
		if f.Rarity != "" && string(card.Rarity) != f.Rarity {
			continue
		}
		if f.Type != "" && string(card.Type) != f.Type {
			continue
		}
		if f.Series != 0 && card.Series != f.Series {
			continue
		}
		if search != "" && !strings.Contains(strings.ToLower(card.Name), search) {
			continue
		}
		matched = append(matched, card)
	}

	sort.SliceStable(matched, func(i, j int) bool {
		if matched[i].Series != matched[j].Series {
			return matched[i].Series < matched[j].Series
		}
		return matched[i].CardNumber < matched[j].CardNumber
	})

	start, end, pagination := models.Paginate(f.Page, f.PageSize, len(matched))
	out := make([]*models.Card, 0, end-start)
	for _, card := range matched[start:end] {
		out = append(out, card.Clone())
	}
	return out, pagination
}

// candidates returns the indices of cards matching rarity/type/series
// filters and not excluded.
func (c *Catalog) candidates(rarity models.Rarity, typ string, series int, exclude map[string]struct{}) []*models.Card {
	out := make([]*models.Card, 0, len(c.cards))
	for _, card := range c.cards {
		if rarity != "" && card.Rarity != rarity {
			continue
		}
		if typ != "" && string(card.Type) != typ {
			continue
		}
		if series != 0 && card.Series != series {
			continue
		}
		if _, skip := exclude[card.ID]; skip {
			continue
		}
		out = append(out, card)
	}
	return out
}
