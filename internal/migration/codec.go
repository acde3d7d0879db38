package migration

import (
	json "github.com/goccy/go-json"

	"daddeck/internal/models"
)

// Envelope is the on-disk wrapper for internally persisted snapshots.
// Exported files never carry it.
type Envelope struct {
	Version int                `json:"version"`
	Data    *models.Collection `json:"data"`
}

// Detected is the resolved form of raw input: either a legacy unversioned
// export (Version 0, whole object as payload) or a versioned envelope.
// Resolving this once at the codec boundary keeps version probing out of
// the migration steps themselves.
type Detected struct {
	Version int
	Payload map[string]any
}

// Detect classifies raw bytes. Unparseable or non-object input yields
// {Version: 0, Payload: nil}.
func Detect(raw []byte) Detected {
	var obj map[string]any
	if err := json.Unmarshal(raw, &obj); err != nil || obj == nil {
		return Detected{Version: 0, Payload: nil}
	}

	v, hasVersion := obj["version"]
	data, hasData := obj["data"].(map[string]any)
	if hasVersion && hasData {
		if f, ok := v.(float64); ok && f == float64(int(f)) {
			return Detected{Version: int(f), Payload: data}
		}
	}
	return Detected{Version: 0, Payload: obj}
}

// Codec wraps and unwraps collections with the version envelope.
type Codec struct {
	runner *Runner
}

func NewCodec(runner *Runner) *Codec {
	return &Codec{runner: runner}
}

// Encode wraps the collection in a current-version envelope. Date fields
// serialize as RFC 3339 text and round-trip through Decode.
func (c *Codec) Encode(collection *models.Collection) ([]byte, error) {
	return json.Marshal(&Envelope{
		Version: CurrentSchemaVersion,
		Data:    collection,
	})
}

// Decode parses and migrates raw bytes into a current-version collection.
// Recovery mode: malformed input yields a fresh empty collection, never an
// error. Rejection of bad input is the import facade's job, not Decode's.
func (c *Codec) Decode(raw []byte) *models.Collection {
	res := c.runner.Migrate(raw)
	if res.Collection == nil {
		return models.NewCollection()
	}
	return res.Collection
}
