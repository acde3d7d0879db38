package migration

import (
	"time"

	"daddeck/internal/models"
)

// CurrentSchemaVersion is the version produced by the last registered step.
const CurrentSchemaVersion = 3

// Step transforms a generic collection payload from one schema version's
// shape to the next. Apply must be pure with respect to its input: it
// returns the (possibly same) payload and never touches external state.
type Step struct {
	Version     int
	Description string
	Apply       func(payload map[string]any) map[string]any
}

// Registry is the ordered, append-only list of migration steps, ascending
// by version. It is built once at startup and never mutated afterwards.
type Registry struct {
	steps []Step
}

func NewRegistry() *Registry {
	return &Registry{steps: []Step{
		{
			Version:     1,
			Description: "add rarityCounts tally and created timestamp to metadata",
			Apply:       migrateV1,
		},
		{
			Version:     2,
			Description: "add seasonId to every card",
			Apply:       migrateV2,
		},
		{
			Version:     3,
			Description: "rename legacy dad types, add effects array to every card",
			Apply:       migrateV3,
		},
	}}
}

// Steps returns the registered steps in ascending version order.
func (r *Registry) Steps() []Step {
	return r.steps
}

// MigrationHistory returns a read-only copy of the registered steps for
// diagnostics and tests.
func (r *Registry) MigrationHistory() []Step {
	out := make([]Step, len(r.steps))
	copy(out, r.steps)
	return out
}

func metadataOf(payload map[string]any) map[string]any {
	meta, ok := payload["metadata"].(map[string]any)
	if !ok {
		meta = map[string]any{
			"totalPacksOpened": 0,
			"uniqueCards":      []any{},
			"rarePulls":        0,
			"holoPulls":        0,
		}
		payload["metadata"] = meta
	}
	return meta
}

// eachCard applies fn to every card object reachable under packs.
// Malformed packs or cards are skipped rather than rejected.
func eachCard(payload map[string]any, fn func(card map[string]any)) {
	packs, ok := payload["packs"].([]any)
	if !ok {
		return
	}
	for _, p := range packs {
		pack, ok := p.(map[string]any)
		if !ok {
			continue
		}
		cards, ok := pack["cards"].([]any)
		if !ok {
			continue
		}
		for _, c := range cards {
			if card, ok := c.(map[string]any); ok {
				fn(card)
			}
		}
	}
}

// v0 -> v1: metadata gains the derived rarityCounts tally and, when
// absent, a created timestamp.
func migrateV1(payload map[string]any) map[string]any {
	meta := metadataOf(payload)

	counts := make(map[string]any, len(models.Rarities))
	for _, r := range models.Rarities {
		counts[string(r)] = 0
	}
	eachCard(payload, func(card map[string]any) {
		if r, ok := card["rarity"].(string); ok {
			if n, ok := counts[r].(int); ok {
				counts[r] = n + 1
			}
		}
	})
	meta["rarityCounts"] = counts

	if _, ok := meta["created"]; !ok {
		meta["created"] = time.Now().UTC().Format(time.RFC3339)
	}
	return payload
}

// v1 -> v2: every card lacking a seasonId gets the default season 1.
func migrateV2(payload map[string]any) map[string]any {
	eachCard(payload, func(card map[string]any) {
		if _, ok := card["seasonId"]; !ok {
			card["seasonId"] = 1
		}
	})
	return payload
}

// v2 -> v3: legacy dad type names are remapped to the current vocabulary
// and every card lacking an effects list gets an empty one. Special card
// types are not in the rename table and pass through unchanged.
func migrateV3(payload map[string]any) map[string]any {
	eachCard(payload, func(card map[string]any) {
		if typ, ok := card["type"].(string); ok {
			if renamed, ok := models.LegacyDadTypes[typ]; ok {
				card["type"] = string(renamed)
			}
		}
		if _, ok := card["effects"]; !ok {
			card["effects"] = []any{}
		}
	})
	return payload
}
