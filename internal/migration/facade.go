package migration

import (
	json "github.com/goccy/go-json"

	"daddeck/internal/models"
	"daddeck/internal/providers"
)

const errInvalidStructure = "Invalid collection data structure"

type ImportResult struct {
	Success    bool               `json:"success"`
	Collection *models.Collection `json:"-"`
	Imported   int                `json:"imported,omitempty"`
	Error      string             `json:"error,omitempty"`
}

// Facade is the externally consumed import/export surface. Unlike the
// runner's recovery mode, import explicitly rejects invalid input.
type Facade struct {
	runner *Runner
	logger providers.Logger
}

func NewFacade(runner *Runner, logger providers.Logger) *Facade {
	return &Facade{runner: runner, logger: logger}
}

// ExportCollection renders a human-portable file: pretty-printed JSON with
// exactly packs and metadata at the top level, no version envelope. A
// re-imported export is detected as version 0, which the runner handles.
func (f *Facade) ExportCollection(c *models.Collection) ([]byte, error) {
	return json.MarshalIndent(c, "", "  ")
}

// ImportCollection accepts both plain legacy exports and versioned
// snapshots. The payload must pass the structural validator before any
// migration runs; failures come back as a structured result, never a
// panic, and no external state is touched.
func (f *Facade) ImportCollection(raw []byte) ImportResult {
	detected := Detect(raw)
	if detected.Payload == nil {
		f.logger.Warnf(providers.TypePost, "Import rejected: unparseable JSON")
		return ImportResult{Success: false, Error: errInvalidStructure}
	}
	if !ValidateCollection(detected.Payload) {
		f.logger.Warnf(providers.TypePost, "Import rejected: %s", errInvalidStructure)
		return ImportResult{Success: false, Error: errInvalidStructure}
	}

	res := f.runner.Migrate(raw)
	return ImportResult{
		Success:    true,
		Collection: res.Collection,
		Imported:   len(res.Collection.Packs),
	}
}
