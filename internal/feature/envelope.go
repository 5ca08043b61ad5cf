package feature

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// currentSchema is the version tag embedded in every persisted blob.
// Bump it when a record shape changes and add a migration to decode.
const currentSchema = 1

type envelope struct {
	Schema  int             `json:"schema"`
	Records json.RawMessage `json:"records"`
}

// decode parses a persisted blob. Blobs written before versioning were
// bare arrays; those are treated as schema 0 and lifted into the
// current envelope unchanged.
func decode[T Record](raw []byte) ([]T, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 {
		return nil, nil
	}

	records := json.RawMessage(trimmed)

	if trimmed[0] != '[' {
		var env envelope
		if err := json.Unmarshal(trimmed, &env); err != nil {
			return nil, fmt.Errorf("parse envelope: %w", err)
		}

		if env.Schema > currentSchema {
			return nil, fmt.Errorf("unsupported schema version %d", env.Schema)
		}

		records = env.Records
	}

	var recs []T
	if err := json.Unmarshal(records, &recs); err != nil {
		return nil, fmt.Errorf("parse records: %w", err)
	}

	return recs, nil
}
