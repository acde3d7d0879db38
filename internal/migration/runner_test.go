package migration

import (
	"testing"

	json "github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"daddeck/internal/models"
	"daddeck/internal/testutil"
)

func newTestRunner() (*Runner, *testutil.MockLogger) {
	logger := &testutil.MockLogger{}
	return NewRunner(NewRegistry(), logger), logger
}

func legacyV0Payload() []byte {
	return []byte(`{
		"packs": [
			{
				"id": "pack-1",
				"cards": [
					{"id": "bbq_dad_001", "name": "Grillmaster Gary", "type": "BBQ_DAD", "rarity": "common"},
					{"id": "lawn_dad_002", "name": "Scythe Lord Stan", "type": "LAWN_DAD", "rarity": "legendary"},
					{"id": "item_001", "name": "Golden Spatula", "type": "ITEM", "rarity": "epic"}
				]
			}
		],
		"metadata": {
			"totalPacksOpened": 1,
			"uniqueCards": ["bbq_dad_001", "lawn_dad_002", "item_001"],
			"rarePulls": 1,
			"holoPulls": 0
		}
	}`)
}

func TestRunner_MigratesLegacyV0ToCurrent(t *testing.T) {
	runner, _ := newTestRunner()

	res := runner.Migrate(legacyV0Payload())

	require.True(t, res.Success)
	c := res.Collection
	require.Len(t, c.Packs, 1)
	require.Len(t, c.Packs[0].Cards, 3)

	// v3 rename applied, specials untouched
	assert.Equal(t, models.TypeBBQ, c.Packs[0].Cards[0].Type)
	assert.Equal(t, models.TypeLawn, c.Packs[0].Cards[1].Type)
	assert.Equal(t, models.TypeItem, c.Packs[0].Cards[2].Type)

	// v2 season default
	for _, card := range c.Packs[0].Cards {
		assert.Equal(t, 1, card.SeasonID)
		assert.NotNil(t, card.Effects)
	}

	// v1 derived tally
	assert.Equal(t, 1, c.Metadata.RarityCounts[models.RarityCommon])
	assert.Equal(t, 1, c.Metadata.RarityCounts[models.RarityLegendary])
	assert.Equal(t, 1, c.Metadata.RarityCounts[models.RarityEpic])
	assert.False(t, c.Metadata.Created.IsZero())

	// original metadata preserved
	assert.Equal(t, 1, c.Metadata.TotalPacksOpened)
	assert.Len(t, c.Metadata.UniqueCards, 3)
}

func TestRunner_PartialMigrationFromV2(t *testing.T) {
	runner, _ := newTestRunner()
	raw := []byte(`{
		"version": 2,
		"data": {
			"packs": [
				{"id": "p1", "cards": [{"id": "c1", "type": "GOLF_DAD", "rarity": "rare", "seasonId": 2}]}
			],
			"metadata": {
				"totalPacksOpened": 1,
				"uniqueCards": ["c1"],
				"rarePulls": 1,
				"holoPulls": 0,
				"rarityCounts": {"rare": 1},
				"created": "2024-06-01T00:00:00Z"
			}
		}
	}`)

	res := runner.Migrate(raw)

	require.True(t, res.Success)
	card := res.Collection.Packs[0].Cards[0]
	// only the v3 step ran
	assert.Equal(t, models.TypeGolf, card.Type)
	assert.Equal(t, 2, card.SeasonID)
	// earlier-version fields untouched
	assert.Equal(t, 1, res.Collection.Metadata.RarityCounts[models.RarityRare])
}

func TestRunner_CurrentVersionIsNoOp(t *testing.T) {
	runner, logger := newTestRunner()
	codec := NewCodec(runner)

	c := models.NewCollection()
	c.Packs = append(c.Packs, &models.Pack{
		ID:    "p1",
		Cards: []*models.Card{{ID: "c1", Type: models.TypeTech, Rarity: models.RarityRare, Effects: []string{}, SeasonID: 2}},
	})
	data, err := codec.Encode(c)
	require.NoError(t, err)

	res := runner.Migrate(data)

	require.True(t, res.Success)
	assert.Equal(t, models.TypeTech, res.Collection.Packs[0].Cards[0].Type)
	assert.Equal(t, 2, res.Collection.Packs[0].Cards[0].SeasonID)
	assert.False(t, logger.HasLog("info", "Migrated collection from v%d to v%d (%d steps)"))
}

func TestRunner_MigrationIsIdempotent(t *testing.T) {
	runner, _ := newTestRunner()
	codec := NewCodec(runner)

	first := runner.Migrate(legacyV0Payload()).Collection
	data, err := codec.Encode(first)
	require.NoError(t, err)
	second := runner.Migrate(data).Collection

	a, err := json.Marshal(first.Packs)
	require.NoError(t, err)
	b, err := json.Marshal(second.Packs)
	require.NoError(t, err)
	assert.JSONEq(t, string(a), string(b))
}

func TestRunner_CorruptInputYieldsEmptyCollection(t *testing.T) {
	runner, logger := newTestRunner()

	res := runner.Migrate([]byte(`{{{not json`))

	require.True(t, res.Success)
	assert.Empty(t, res.Collection.Packs)
	assert.NotNil(t, res.Collection.Metadata)
	assert.NotNil(t, res.Collection.Metadata.RarityCounts)
	assert.True(t, logger.HasLog("warn", "Unreadable collection data, starting from an empty collection"))
}

func TestRunner_EmptyInputDoesNotWarn(t *testing.T) {
	runner, logger := newTestRunner()

	res := runner.Migrate(nil)

	require.True(t, res.Success)
	assert.Empty(t, res.Collection.Packs)
	assert.False(t, logger.HasLog("warn", "Unreadable collection data, starting from an empty collection"))
}

func TestRunner_MissingPacksSubstituted(t *testing.T) {
	runner, _ := newTestRunner()

	res := runner.Migrate([]byte(`{"metadata": {"totalPacksOpened": 5, "uniqueCards": []}}`))

	require.True(t, res.Success)
	assert.NotNil(t, res.Collection.Packs)
	assert.Empty(t, res.Collection.Packs)
	assert.Equal(t, 5, res.Collection.Metadata.TotalPacksOpened)
}

func TestRunner_MalformedCardsSkippedNotFatal(t *testing.T) {
	runner, _ := newTestRunner()
	raw := []byte(`{
		"packs": [
			{"id": "p1", "cards": [{"id": "c1", "type": "BBQ_DAD", "rarity": "common"}, "not a card", 42]}
		],
		"metadata": {"uniqueCards": []}
	}`)

	res := runner.Migrate(raw)

	require.True(t, res.Success)
	require.Len(t, res.Collection.Packs, 1)
	require.Len(t, res.Collection.Packs[0].Cards, 1)
	assert.Equal(t, models.TypeBBQ, res.Collection.Packs[0].Cards[0].Type)
}

func TestRunner_LogsAppliedSteps(t *testing.T) {
	runner, logger := newTestRunner()

	runner.Migrate(legacyV0Payload())

	assert.True(t, logger.HasLog("info", "Migrated collection from v%d to v%d (%d steps)"))
}
