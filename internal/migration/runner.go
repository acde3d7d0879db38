package migration

import (
	json "github.com/goccy/go-json"

	"daddeck/internal/models"
	"daddeck/internal/providers"
)

// MigrateResult always carries Success=true: the runner substitutes
// defaults for missing or corrupt pieces instead of failing. Invalid
// imports are rejected one layer up, by the validator and facade.
type MigrateResult struct {
	Success    bool
	Collection *models.Collection
}

type Runner struct {
	registry *Registry
	logger   providers.Logger
}

func NewRunner(registry *Registry, logger providers.Logger) *Runner {
	return &Runner{registry: registry, logger: logger}
}

// emptyPayload is the base substituted for unparseable input.
func emptyPayload() map[string]any {
	return map[string]any{
		"packs": []any{},
		"metadata": map[string]any{
			"totalPacksOpened": 0,
			"uniqueCards":      []any{},
			"rarePulls":        0,
			"holoPulls":        0,
		},
	}
}

// Migrate brings raw collection bytes to the current schema version.
// Unversioned legacy payloads are treated as version 0; corrupted input
// falls back to an empty version-0 payload (availability over fidelity).
func (r *Runner) Migrate(raw []byte) MigrateResult {
	detected := Detect(raw)

	payload := detected.Payload
	if payload == nil {
		if len(raw) > 0 {
			r.logger.Warnf(providers.TypeApp, "Unreadable collection data, starting from an empty collection")
		}
		payload = emptyPayload()
	}
	if _, ok := payload["packs"].([]any); !ok {
		payload["packs"] = []any{}
	}
	sanitizePayload(payload)

	applied := 0
	for _, step := range r.registry.Steps() {
		if step.Version <= detected.Version {
			continue
		}
		payload = step.Apply(payload)
		applied++
	}
	if applied > 0 {
		r.logger.Infof(providers.TypeApp, "Migrated collection from v%d to v%d (%d steps)", detected.Version, CurrentSchemaVersion, applied)
	}

	return MigrateResult{Success: true, Collection: decodePayload(payload)}
}

// sanitizePayload drops pack and card entries that are not objects, so a
// partially damaged payload loses only the damaged entries.
func sanitizePayload(payload map[string]any) {
	packs := payload["packs"].([]any)
	kept := make([]any, 0, len(packs))
	for _, p := range packs {
		pack, ok := p.(map[string]any)
		if !ok {
			continue
		}
		cards, _ := pack["cards"].([]any)
		cleanCards := make([]any, 0, len(cards))
		for _, c := range cards {
			if card, ok := c.(map[string]any); ok {
				cleanCards = append(cleanCards, card)
			}
		}
		pack["cards"] = cleanCards
		kept = append(kept, pack)
	}
	payload["packs"] = kept
}

// decodePayload turns the migrated generic payload into the typed
// collection, substituting defaults for anything that does not decode.
func decodePayload(payload map[string]any) *models.Collection {
	data, err := json.Marshal(payload)
	if err != nil {
		return models.NewCollection()
	}

	var c models.Collection
	if err := json.Unmarshal(data, &c); err != nil {
		return models.NewCollection()
	}

	if c.Packs == nil {
		c.Packs = []*models.Pack{}
	}
	if c.Metadata == nil {
		return models.NewCollection()
	}
	if c.Metadata.UniqueCards == nil {
		c.Metadata.UniqueCards = []string{}
	}
	if c.Metadata.RarityCounts == nil {
		c.Metadata.RarityCounts = models.ZeroRarityCounts()
	}
	return &c
}
