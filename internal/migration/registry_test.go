package migration

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistry_StepsAscendByVersion(t *testing.T) {
	reg := NewRegistry()
	steps := reg.Steps()

	require.NotEmpty(t, steps)
	for i, step := range steps {
		assert.Equal(t, i+1, step.Version)
		assert.NotEmpty(t, step.Description)
		assert.NotNil(t, step.Apply)
	}
	assert.Equal(t, CurrentSchemaVersion, steps[len(steps)-1].Version)
}

func TestRegistry_MigrationHistoryIsACopy(t *testing.T) {
	reg := NewRegistry()
	history := reg.MigrationHistory()

	require.Len(t, history, len(reg.Steps()))
	history[0].Version = 99
	assert.Equal(t, 1, reg.Steps()[0].Version)
}

func TestMigrateV1_TalliesRarityCounts(t *testing.T) {
	payload := map[string]any{
		"packs": []any{
			map[string]any{
				"id": "p1",
				"cards": []any{
					map[string]any{"id": "c1", "rarity": "common"},
					map[string]any{"id": "c2", "rarity": "common"},
					map[string]any{"id": "c3", "rarity": "mythic"},
				},
			},
		},
		"metadata": map[string]any{"totalPacksOpened": 1, "uniqueCards": []any{}},
	}

	out := migrateV1(payload)

	meta := out["metadata"].(map[string]any)
	counts := meta["rarityCounts"].(map[string]any)
	assert.Equal(t, 2, counts["common"])
	assert.Equal(t, 1, counts["mythic"])
	assert.Equal(t, 0, counts["rare"])
	assert.NotEmpty(t, meta["created"])
}

func TestMigrateV1_PreservesExistingCreated(t *testing.T) {
	payload := map[string]any{
		"packs":    []any{},
		"metadata": map[string]any{"created": "2020-01-01T00:00:00Z", "uniqueCards": []any{}},
	}

	out := migrateV1(payload)

	meta := out["metadata"].(map[string]any)
	assert.Equal(t, "2020-01-01T00:00:00Z", meta["created"])
}

func TestMigrateV1_CreatesMissingMetadata(t *testing.T) {
	payload := map[string]any{"packs": []any{}}

	out := migrateV1(payload)

	meta, ok := out["metadata"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, 0, meta["totalPacksOpened"])
	assert.NotNil(t, meta["rarityCounts"])
}

func TestMigrateV2_DefaultsSeasonId(t *testing.T) {
	payload := map[string]any{
		"packs": []any{
			map[string]any{
				"id": "p1",
				"cards": []any{
					map[string]any{"id": "c1"},
					map[string]any{"id": "c2", "seasonId": 2},
				},
			},
		},
	}

	out := migrateV2(payload)

	cards := out["packs"].([]any)[0].(map[string]any)["cards"].([]any)
	assert.Equal(t, 1, cards[0].(map[string]any)["seasonId"])
	assert.Equal(t, 2, cards[1].(map[string]any)["seasonId"])
}

func TestMigrateV3_RenamesLegacyTypes(t *testing.T) {
	payload := map[string]any{
		"packs": []any{
			map[string]any{
				"id": "p1",
				"cards": []any{
					map[string]any{"id": "c1", "type": "BBQ_DAD"},
					map[string]any{"id": "c2", "type": "LAWN_DAD"},
					map[string]any{"id": "c3", "type": "ITEM"},
				},
			},
		},
	}

	out := migrateV3(payload)

	cards := out["packs"].([]any)[0].(map[string]any)["cards"].([]any)
	assert.Equal(t, "BBQ_DICKTATOR", cards[0].(map[string]any)["type"])
	assert.Equal(t, "LAWN_LUNATIC", cards[1].(map[string]any)["type"])
	// Special card types are not renamed
	assert.Equal(t, "ITEM", cards[2].(map[string]any)["type"])
}

func TestMigrateV3_AddsEffectsOnlyWhenAbsent(t *testing.T) {
	payload := map[string]any{
		"packs": []any{
			map[string]any{
				"id": "p1",
				"cards": []any{
					map[string]any{"id": "c1"},
					map[string]any{"id": "c2", "effects": []any{"burn"}},
				},
			},
		},
	}

	out := migrateV3(payload)

	cards := out["packs"].([]any)[0].(map[string]any)["cards"].([]any)
	assert.Equal(t, []any{}, cards[0].(map[string]any)["effects"])
	assert.Equal(t, []any{"burn"}, cards[1].(map[string]any)["effects"])
}

func TestMigrateV3_AlreadyCurrentTypesUntouched(t *testing.T) {
	payload := map[string]any{
		"packs": []any{
			map[string]any{
				"id": "p1",
				"cards": []any{
					map[string]any{"id": "c1", "type": "BBQ_DICKTATOR", "effects": []any{}},
				},
			},
		},
	}

	out := migrateV3(payload)

	card := out["packs"].([]any)[0].(map[string]any)["cards"].([]any)[0].(map[string]any)
	assert.Equal(t, "BBQ_DICKTATOR", card["type"])
}
