package catalog

import "daddeck/internal/models"

// builtinCards is the card database shipped with the server. Card ids are
// stable across schema versions; only the type vocabulary was renamed.
var builtinCards = []*models.Card{
	{
		ID: "bbq_dad_001", Name: "Grillmaster Gary", Type: models.TypeBBQ, Rarity: models.RarityCommon,
		Stats:     models.CardStats{Grilling: 82, DadJokes: 55, Thermostat: 40, LawnCare: 30, Napping: 45, Fixing: 35, Coaching: 25, Swagger: 50},
		Abilities: []string{"Flame On: +10 grilling when shirtless"},
		Series:    1, CardNumber: 1, TotalInSeries: 25, SeasonID: 1, Effects: []string{},
	},
	{
		ID: "lawn_dad_001", Name: "Mower Mike", Type: models.TypeLawn, Rarity: models.RarityCommon,
		Stats:     models.CardStats{Grilling: 30, DadJokes: 48, Thermostat: 35, LawnCare: 85, Napping: 40, Fixing: 42, Coaching: 20, Swagger: 38},
		Abilities: []string{"Diagonal Stripes: intimidate neighboring lawns"},
		Series:    1, CardNumber: 2, TotalInSeries: 25, SeasonID: 1, Effects: []string{},
	},
	{
		ID: "couch_dad_001", Name: "Recliner Rick", Type: models.TypeCouch, Rarity: models.RarityCommon,
		Stats:     models.CardStats{Grilling: 20, DadJokes: 60, Thermostat: 70, LawnCare: 15, Napping: 95, Fixing: 25, Coaching: 30, Swagger: 22},
		Abilities: []string{"Remote Guardian: the clicker never leaves his hand"},
		Series:    1, CardNumber: 3, TotalInSeries: 25, SeasonID: 1, Effects: []string{},
	},
	{
		ID: "office_dad_001", Name: "Spreadsheet Steve", Type: models.TypeOffice, Rarity: models.RarityCommon,
		Stats:  models.CardStats{Grilling: 25, DadJokes: 52, Thermostat: 45, LawnCare: 28, Napping: 35, Fixing: 30, Coaching: 40, Swagger: 33},
		Series: 1, CardNumber: 4, TotalInSeries: 25, SeasonID: 1, Effects: []string{},
	},
	{
		ID: "car_dad_001", Name: "Driveway Dave", Type: models.TypeCar, Rarity: models.RarityCommon,
		Stats:  models.CardStats{Grilling: 35, DadJokes: 45, Thermostat: 38, LawnCare: 32, Napping: 30, Fixing: 72, Coaching: 28, Swagger: 55},
		Series: 1, CardNumber: 5, TotalInSeries: 25, SeasonID: 1, Effects: []string{},
	},
	{
		ID: "chef_dad_001", Name: "Casserole Carl", Type: models.TypeChef, Rarity: models.RarityCommon,
		Stats:  models.CardStats{Grilling: 65, DadJokes: 50, Thermostat: 42, LawnCare: 20, Napping: 38, Fixing: 28, Coaching: 25, Swagger: 35},
		Series: 2, CardNumber: 1, TotalInSeries: 20, SeasonID: 2, Effects: []string{},
	},
	{
		ID: "fix_it_dad_001", Name: "Duct Tape Doug", Type: models.TypeFixIt, Rarity: models.RarityUncommon,
		Stats:     models.CardStats{Grilling: 40, DadJokes: 58, Thermostat: 50, LawnCare: 45, Napping: 30, Fixing: 88, Coaching: 35, Swagger: 42},
		Abilities: []string{"Good Enough: repairs hold for exactly one season"},
		Series:    1, CardNumber: 6, TotalInSeries: 25, SeasonID: 1, Effects: []string{},
	},
	{
		ID: "golf_dad_001", Name: "Mulligan Marv", Type: models.TypeGolf, Rarity: models.RarityUncommon,
		Stats:  models.CardStats{Grilling: 38, DadJokes: 62, Thermostat: 40, LawnCare: 55, Napping: 42, Fixing: 30, Coaching: 48, Swagger: 60},
		Series: 1, CardNumber: 7, TotalInSeries: 25, SeasonID: 1, Effects: []string{},
	},
	{
		ID: "coach_dad_001", Name: "Whistle Walt", Type: models.TypeCoach, Rarity: models.RarityUncommon,
		Stats:     models.CardStats{Grilling: 42, DadJokes: 40, Thermostat: 35, LawnCare: 38, Napping: 25, Fixing: 35, Coaching: 90, Swagger: 52},
		Abilities: []string{"Hustle Up: everyone runs one more lap"},
		Series:    1, CardNumber: 8, TotalInSeries: 25, SeasonID: 1, Effects: []string{},
	},
	{
		ID: "warehouse_dad_001", Name: "Pallet Pete", Type: models.TypeWarehouse, Rarity: models.RarityUncommon,
		Stats:  models.CardStats{Grilling: 35, DadJokes: 44, Thermostat: 30, LawnCare: 25, Napping: 35, Fixing: 65, Coaching: 30, Swagger: 48},
		Series: 2, CardNumber: 2, TotalInSeries: 20, SeasonID: 2, Effects: []string{},
	},
	{
		ID: "tech_dad_001", Name: "Router Randy", Type: models.TypeTech, Rarity: models.RarityUncommon,
		Stats:     models.CardStats{Grilling: 28, DadJokes: 55, Thermostat: 60, LawnCare: 20, Napping: 32, Fixing: 70, Coaching: 25, Swagger: 45},
		Abilities: []string{"Have You Tried Turning It Off And On Again"},
		Series:    2, CardNumber: 3, TotalInSeries: 20, SeasonID: 2, Effects: []string{},
	},
	{
		ID: "cool_dad_001", Name: "Finger Guns Phil", Type: models.TypeCool, Rarity: models.RarityRare,
		Stats:     models.CardStats{Grilling: 50, DadJokes: 75, Thermostat: 45, LawnCare: 35, Napping: 40, Fixing: 45, Coaching: 55, Swagger: 85},
		Abilities: []string{"Ayyy: disarms any argument with double finger guns"},
		Series:    1, CardNumber: 9, TotalInSeries: 25, SeasonID: 1, Effects: []string{},
	},
	{
		ID: "holiday_dad_001", Name: "Tinsel Tim", Type: models.TypeHoliday, Rarity: models.RarityRare,
		Stats:     models.CardStats{Grilling: 45, DadJokes: 70, Thermostat: 55, LawnCare: 40, Napping: 35, Fixing: 50, Coaching: 38, Swagger: 58},
		Abilities: []string{"Ladder Season: hangs lights in November, removes them in July"},
		Series:    1, CardNumber: 10, TotalInSeries: 25, SeasonID: 1, Effects: []string{},
	},
	{
		ID: "vintage_dad_001", Name: "Turntable Tony", Type: models.TypeVintage, Rarity: models.RarityRare,
		Stats:  models.CardStats{Grilling: 40, DadJokes: 65, Thermostat: 48, LawnCare: 30, Napping: 50, Fixing: 55, Coaching: 32, Swagger: 72},
		Series: 2, CardNumber: 4, TotalInSeries: 20, SeasonID: 2, Effects: []string{},
	},
	{
		ID: "fashion_dad_001", Name: "New Balance Ned", Type: models.TypeFashion, Rarity: models.RarityRare,
		Stats:     models.CardStats{Grilling: 38, DadJokes: 60, Thermostat: 42, LawnCare: 45, Napping: 38, Fixing: 40, Coaching: 35, Swagger: 78},
		Abilities: []string{"Cargo Shorts: infinite pocket capacity"},
		Series:    2, CardNumber: 5, TotalInSeries: 20, SeasonID: 2, Effects: []string{},
	},
	{
		ID: "trap_001", Name: "Garage Sale Ambush", Type: models.TypeTrap, Rarity: models.RarityRare,
		Stats:  models.CardStats{Grilling: 0, DadJokes: 30, Thermostat: 0, LawnCare: 0, Napping: 0, Fixing: 20, Coaching: 0, Swagger: 40},
		Series: 1, CardNumber: 11, TotalInSeries: 25, SeasonID: 1, Effects: []string{"Opponent must haggle for every card played this turn"},
	},
	{
		ID: "bbq_dad_002", Name: "Brisket Baron", Type: models.TypeBBQ, Rarity: models.RarityEpic,
		Stats:     models.CardStats{Grilling: 94, DadJokes: 60, Thermostat: 50, LawnCare: 35, Napping: 42, Fixing: 40, Coaching: 30, Swagger: 68},
		Abilities: []string{"Low and Slow: doubles grilling after 12 hours"},
		Series:    1, CardNumber: 12, TotalInSeries: 25, SeasonID: 1, Effects: []string{},
	},
	{
		ID: "item_001", Name: "The Sacred Spatula", Type: models.TypeItem, Rarity: models.RarityEpic,
		Stats:  models.CardStats{Grilling: 50, DadJokes: 0, Thermostat: 0, LawnCare: 0, Napping: 0, Fixing: 0, Coaching: 0, Swagger: 30},
		Series: 1, CardNumber: 13, TotalInSeries: 25, SeasonID: 1, Effects: []string{"Equipped dad gains +15 grilling"},
	},
	{
		ID: "terrain_001", Name: "The Man Cave", Type: models.TypeTerrain, Rarity: models.RarityEpic,
		Stats:  models.CardStats{Grilling: 0, DadJokes: 20, Thermostat: 40, LawnCare: 0, Napping: 60, Fixing: 30, Coaching: 0, Swagger: 35},
		Series: 2, CardNumber: 6, TotalInSeries: 20, SeasonID: 2, Effects: []string{"All couch dads gain +20 napping"},
	},
	{
		ID: "lawn_dad_002", Name: "The Lawnfather", Type: models.TypeLawn, Rarity: models.RarityLegendary,
		Stats:     models.CardStats{Grilling: 55, DadJokes: 70, Thermostat: 60, LawnCare: 98, Napping: 45, Fixing: 60, Coaching: 50, Swagger: 80},
		Abilities: []string{"Get Off My Lawn: banish all trespassers", "Sprinkler Symphony: heal all friendly lawns"},
		Series:    1, CardNumber: 14, TotalInSeries: 25, SeasonID: 1, Effects: []string{},
	},
	{
		ID: "event_001", Name: "Thanksgiving Standoff", Type: models.TypeEvent, Rarity: models.RarityLegendary,
		Stats:  models.CardStats{Grilling: 40, DadJokes: 80, Thermostat: 90, LawnCare: 0, Napping: 70, Fixing: 0, Coaching: 0, Swagger: 50},
		Series: 1, CardNumber: 15, TotalInSeries: 25, SeasonID: 1, Effects: []string{"All dads argue about the thermostat for three turns"},
	},
	{
		ID: "evolution_001", Name: "Grandpa Ascendant", Type: models.TypeEvolution, Rarity: models.RarityLegendary,
		Stats:  models.CardStats{Grilling: 70, DadJokes: 95, Thermostat: 85, LawnCare: 65, Napping: 88, Fixing: 75, Coaching: 60, Swagger: 65},
		Series: 2, CardNumber: 7, TotalInSeries: 20, SeasonID: 2, Effects: []string{"Evolves any dad with 3+ seasons of experience"},
	},
	{
		ID: "bbq_dad_003", Name: "Propane Prometheus", Type: models.TypeBBQ, Rarity: models.RarityMythic,
		Stats:     models.CardStats{Grilling: 100, DadJokes: 85, Thermostat: 70, LawnCare: 50, Napping: 40, Fixing: 65, Coaching: 55, Swagger: 92},
		Abilities: []string{"Eternal Flame: grilling can never be reduced", "Tank's Never Empty"},
		Series:    1, CardNumber: 16, TotalInSeries: 25, SeasonID: 1, Effects: []string{},
	},
	{
		ID: "curse_001", Name: "Curse of the Thermostat", Type: models.TypeCurse, Rarity: models.RarityMythic,
		Stats:  models.CardStats{Grilling: 0, DadJokes: 0, Thermostat: 100, LawnCare: 0, Napping: 0, Fixing: 0, Coaching: 0, Swagger: 0},
		Series: 2, CardNumber: 8, TotalInSeries: 20, SeasonID: 2, Effects: []string{"Target player may never touch the thermostat again"},
	},
}
