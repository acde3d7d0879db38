package models

type Rarity string

const (
	RarityCommon    Rarity = "common"
	RarityUncommon  Rarity = "uncommon"
	RarityRare      Rarity = "rare"
	RarityEpic      Rarity = "epic"
	RarityLegendary Rarity = "legendary"
	RarityMythic    Rarity = "mythic"
)

// Rarities lists every rarity ascending by pull value.
var Rarities = []Rarity{
	RarityCommon,
	RarityUncommon,
	RarityRare,
	RarityEpic,
	RarityLegendary,
	RarityMythic,
}

var rarityRank = map[Rarity]int{
	RarityCommon:    0,
	RarityUncommon:  1,
	RarityRare:      2,
	RarityEpic:      3,
	RarityLegendary: 4,
	RarityMythic:    5,
}

// Rank returns the ordering position of a rarity, -1 for unknown values.
func (r Rarity) Rank() int {
	if rank, ok := rarityRank[r]; ok {
		return rank
	}
	return -1
}

func (r Rarity) Valid() bool {
	_, ok := rarityRank[r]
	return ok
}

type DadType string

const (
	TypeBBQ       DadType = "BBQ_DICKTATOR"
	TypeFixIt     DadType = "FIX_IT_FUCKBOY"
	TypeGolf      DadType = "GOLF_GONAD"
	TypeCouch     DadType = "COUCH_CUMMANDER"
	TypeLawn      DadType = "LAWN_LUNATIC"
	TypeCar       DadType = "CAR_COCK"
	TypeOffice    DadType = "OFFICE_ORGASMS"
	TypeCool      DadType = "COOL_CUCKS"
	TypeCoach     DadType = "COACH_CUMSTERS"
	TypeChef      DadType = "CHEF_CUMSTERS"
	TypeHoliday   DadType = "HOLIDAY_HORNDOGS"
	TypeWarehouse DadType = "WAREHOUSE_WANKERS"
	TypeVintage   DadType = "VINTAGE_VAGABONDS"
	TypeFashion   DadType = "FASHION_FUCK"
	TypeTech      DadType = "TECH_TWATS"

	TypeItem      DadType = "ITEM"
	TypeEvent     DadType = "EVENT"
	TypeTerrain   DadType = "TERRAIN"
	TypeEvolution DadType = "EVOLUTION"
	TypeCurse     DadType = "CURSE"
	TypeTrap      DadType = "TRAP"
)

// LegacyDadTypes maps pre-v3 dad type names to the current vocabulary.
// Special card types (ITEM, EVENT, ...) are not part of the rename and
// pass through migration unchanged.
var LegacyDadTypes = map[string]DadType{
	"BBQ_DAD":       TypeBBQ,
	"FIX_IT_DAD":    TypeFixIt,
	"GOLF_DAD":      TypeGolf,
	"COUCH_DAD":     TypeCouch,
	"LAWN_DAD":      TypeLawn,
	"CAR_DAD":       TypeCar,
	"OFFICE_DAD":    TypeOffice,
	"COOL_DAD":      TypeCool,
	"COACH_DAD":     TypeCoach,
	"CHEF_DAD":      TypeChef,
	"HOLIDAY_DAD":   TypeHoliday,
	"WAREHOUSE_DAD": TypeWarehouse,
	"VINTAGE_DAD":   TypeVintage,
	"FASHION_DAD":   TypeFashion,
	"TECH_DAD":      TypeTech,
}

// CardStats holds the eight bounded stat fields. All values are 0-100.
type CardStats struct {
	Grilling   int `json:"grilling"`
	DadJokes   int `json:"dadJokes"`
	Thermostat int `json:"thermostat"`
	LawnCare   int `json:"lawnCare"`
	Napping    int `json:"napping"`
	Fixing     int `json:"fixing"`
	Coaching   int `json:"coaching"`
	Swagger    int `json:"swagger"`
}

type Card struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Type          DadType   `json:"type"`
	Rarity        Rarity    `json:"rarity"`
	Stats         CardStats `json:"stats"`
	Holo          bool      `json:"holo,omitempty"`
	Abilities     []string  `json:"abilities,omitempty"`
	Effects       []string  `json:"effects"`
	Series        int       `json:"series"`
	CardNumber    int       `json:"cardNumber"`
	TotalInSeries int       `json:"totalInSeries"`
	SeasonID      int       `json:"seasonId"`
}

// Clone returns an independent copy of the card.
func (c *Card) Clone() *Card {
	cp := *c
	if c.Abilities != nil {
		cp.Abilities = append([]string(nil), c.Abilities...)
	}
	cp.Effects = append([]string{}, c.Effects...)
	return &cp
}
