package catalog

import (
	"errors"
	"math/rand"
	"sync"
	"time"

	"github.com/google/uuid"

	"daddeck/internal/models"
	"daddeck/internal/structures"
)

const (
	PackTypeStandard = "standard"
	PackTypePremium  = "premium"

	maxRandomCards = 10
	maxPacksPerReq = 10
)

var ErrBadPackType = errors.New("unknown pack type")

var packDesigns = []string{"classic", "retro", "neon", "holographic"}

// rarityWeight is a cumulative-roll entry: a roll below Cut yields Rarity.
type rarityWeight struct {
	Cut    float64
	Rarity models.Rarity
}

// standardOdds roughly follow booster distributions: mostly commons, a
// mythic roughly every 200 cards.
var standardOdds = []rarityWeight{
	{0.55, models.RarityCommon},
	{0.80, models.RarityUncommon},
	{0.92, models.RarityRare},
	{0.97, models.RarityEpic},
	{0.995, models.RarityLegendary},
	{1.0, models.RarityMythic},
}

var premiumOdds = []rarityWeight{
	{0.30, models.RarityCommon},
	{0.58, models.RarityUncommon},
	{0.80, models.RarityRare},
	{0.92, models.RarityEpic},
	{0.98, models.RarityLegendary},
	{1.0, models.RarityMythic},
}

const (
	standardHoloChance = 0.05
	premiumHoloChance  = 0.15
)

type GenerateRequest struct {
	PackType string `json:"packType"`
	Count    int    `json:"count"`
	Design   string `json:"design"`
	Series   int    `json:"series"`
}

type RandomRequest struct {
	Count   int
	Rarity  string
	Type    string
	Exclude []string
}

type Generator struct {
	catalog      *Catalog
	standardSize int
	premiumSize  int
	maxPerReq    int

	mu  sync.Mutex
	rng *rand.Rand
}

func NewGenerator(conf *structures.Config, catalog *Catalog) *Generator {
	standardSize := conf.Packs.StandardSize
	if standardSize < 1 {
		standardSize = 5
	}
	premiumSize := conf.Packs.PremiumSize
	if premiumSize < 1 {
		premiumSize = 7
	}
	maxPerReq := conf.Packs.MaxPerRequest
	if maxPerReq < 1 || maxPerReq > maxPacksPerReq {
		maxPerReq = maxPacksPerReq
	}
	return &Generator{
		catalog:      catalog,
		standardSize: standardSize,
		premiumSize:  premiumSize,
		maxPerReq:    maxPerReq,
		rng:          rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// Generate opens count packs of the requested type. Count is clamped to
// 1..maxPerRequest. Premium packs are larger, pull from richer odds and
// guarantee at least one rare-or-better card.
func (g *Generator) Generate(req GenerateRequest) ([]*models.Pack, error) {
	packType := req.PackType
	if packType == "" {
		packType = PackTypeStandard
	}
	if packType != PackTypeStandard && packType != PackTypePremium {
		return nil, ErrBadPackType
	}

	count := req.Count
	if count < 1 {
		count = 1
	}
	if count > g.maxPerReq {
		count = g.maxPerReq
	}

	size, odds, holoChance := g.standardSize, standardOdds, standardHoloChance
	if packType == PackTypePremium {
		size, odds, holoChance = g.premiumSize, premiumOdds, premiumHoloChance
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	packs := make([]*models.Pack, 0, count)
	for i := 0; i < count; i++ {
		cards := make([]*models.Card, 0, size)
		for j := 0; j < size; j++ {
			rarity := g.rollRarity(odds)
			if packType == PackTypePremium && j == size-1 && models.BestRarityOf(cards).Rank() < models.RarityRare.Rank() {
				rarity = models.RarityRare
			}
			card := g.draw(rarity, req.Series)
			if card == nil {
				continue
			}
			if g.rng.Float64() < holoChance {
				card.Holo = true
			}
			cards = append(cards, card)
		}

		design := req.Design
		if design == "" {
			design = packDesigns[g.rng.Intn(len(packDesigns))]
		}
		packs = append(packs, &models.Pack{
			ID:         uuid.NewString(),
			Cards:      cards,
			Opened:     time.Now().UTC(),
			BestRarity: models.BestRarityOf(cards),
			Design:     design,
		})
	}
	return packs, nil
}

// Random draws count random catalog cards, honoring rarity/type filters
// and an exclusion list. Count is clamped to 1..10.
func (g *Generator) Random(req RandomRequest) []*models.Card {
	count := req.Count
	if count < 1 {
		count = 1
	}
	if count > maxRandomCards {
		count = maxRandomCards
	}

	exclude := make(map[string]struct{}, len(req.Exclude))
	for _, id := range req.Exclude {
		exclude[id] = struct{}{}
	}

	pool := g.catalog.candidates(models.Rarity(req.Rarity), req.Type, 0, exclude)
	if len(pool) == 0 {
		return []*models.Card{}
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	out := make([]*models.Card, 0, count)
	for i := 0; i < count; i++ {
		out = append(out, pool[g.rng.Intn(len(pool))].Clone())
	}
	return out
}

func (g *Generator) rollRarity(odds []rarityWeight) models.Rarity {
	roll := g.rng.Float64()
	for _, w := range odds {
		if roll < w.Cut {
			return w.Rarity
		}
	}
	return odds[len(odds)-1].Rarity
}

// draw picks a random catalog card of the given rarity, falling back to
// progressively lower rarities when the series filter leaves no pool.
func (g *Generator) draw(rarity models.Rarity, series int) *models.Card {
	for rank := rarity.Rank(); rank >= 0; rank-- {
		pool := g.catalog.candidates(models.Rarities[rank], "", series, nil)
		if len(pool) == 0 && series != 0 {
			pool = g.catalog.candidates(models.Rarities[rank], "", 0, nil)
		}
		if len(pool) > 0 {
			return pool[g.rng.Intn(len(pool))].Clone()
		}
	}
	return nil
}
