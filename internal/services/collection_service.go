package services

import (
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"daddeck/internal/models"
)

type ViewQuery struct {
	Rarity    string
	SortBy    string
	SortOrder string
	Page      int
	PageSize  int
}

// OwnedCard is a card in the collection together with its pack context.
type OwnedCard struct {
	*models.Card
	PackID     string    `json:"packId"`
	ObtainedAt time.Time `json:"obtainedAt"`
}

type CollectionView struct {
	Cards      []*OwnedCard      `json:"cards"`
	Pagination models.Pagination `json:"pagination"`
}

type CollectionServiceInterface interface {
	Snapshot() *models.Collection
	Replace(c *models.Collection)
	Merge(c *models.Collection) int
	AddPacks(packs []*models.Pack)
	AddTradedCards(cards []*models.Card) string
	RemoveCards(ids []string) bool
	Owns(ids []string) bool
	View(q ViewQuery) *CollectionView
	PackCount() int
	CardCount() int
	UniqueCardCount() int
	Revision() uint64
}

type CollectionService struct {
	store *models.CollectionStore
}

func NewCollectionService() CollectionServiceInterface {
	return &CollectionService{store: models.NewCollectionStore()}
}

func (cs *CollectionService) Snapshot() *models.Collection    { return cs.store.Snapshot() }
func (cs *CollectionService) Replace(c *models.Collection)    { cs.store.Replace(c) }
func (cs *CollectionService) Merge(c *models.Collection) int  { return cs.store.Merge(c) }
func (cs *CollectionService) AddPacks(packs []*models.Pack)   { cs.store.AddPacks(packs) }
func (cs *CollectionService) RemoveCards(ids []string) bool   { return cs.store.RemoveCards(ids) }
func (cs *CollectionService) Owns(ids []string) bool          { return cs.store.Owns(ids) }
func (cs *CollectionService) PackCount() int                  { return cs.store.PackCount() }
func (cs *CollectionService) CardCount() int                  { return cs.store.CardCount() }
func (cs *CollectionService) UniqueCardCount() int            { return cs.store.UniqueCardCount() }
func (cs *CollectionService) Revision() uint64                { return cs.store.Revision() }

// AddTradedCards adds cards received in a trade as a dedicated pack.
// Trades are not opening events, so the merge path is used rather than
// AddPacks and totalPacksOpened stays untouched. Returns the pack id.
func (cs *CollectionService) AddTradedCards(cards []*models.Card) string {
	pack := &models.Pack{
		ID:         uuid.NewString(),
		Cards:      cards,
		Opened:     time.Now().UTC(),
		BestRarity: models.BestRarityOf(cards),
		Design:     "trade",
	}
	in := models.NewCollection()
	in.Packs = append(in.Packs, pack)
	cs.store.Merge(in)
	return pack.ID
}

// View flattens the collection into cards with filtering, sorting and
// pagination applied.
func (cs *CollectionService) View(q ViewQuery) *CollectionView {
	snapshot := cs.store.Snapshot()

	cards := make([]*OwnedCard, 0, snapshot.CardCount())
	for _, p := range snapshot.Packs {
		for _, c := range p.Cards {
			if q.Rarity != "" && string(c.Rarity) != q.Rarity {
				continue
			}
			cards = append(cards, &OwnedCard{Card: c, PackID: p.ID, ObtainedAt: p.Opened})
		}
	}

	sortCards(cards, q.SortBy, q.SortOrder)

	start, end, pagination := models.Paginate(q.Page, q.PageSize, len(cards))
	return &CollectionView{
		Cards:      cards[start:end],
		Pagination: pagination,
	}
}

func sortCards(cards []*OwnedCard, by, order string) {
	less := func(i, j int) bool { return cards[i].Rarity.Rank() < cards[j].Rarity.Rank() }
	switch by {
	case "name":
		less = func(i, j int) bool {
			return strings.ToLower(cards[i].Name) < strings.ToLower(cards[j].Name)
		}
	case "date":
		less = func(i, j int) bool { return cards[i].ObtainedAt.Before(cards[j].ObtainedAt) }
	}
	if order == "desc" {
		inner := less
		less = func(i, j int) bool { return inner(j, i) }
	}
	sort.SliceStable(cards, less)
}
