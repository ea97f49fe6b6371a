package archivestore

import (
	"encoding/json"
	"fmt"

	"github.com/igorsergioJS/GA-PSO-web-app/internal/optimization"
)

// codecVersion is stored alongside each payload so future format changes
// can be detected on read.
const codecVersion = 1

type envelope struct {
	Version int                       `json:"version"`
	Entry   optimization.ArchiveEntry `json:"entry"`
}

// EncodeEntry serializes an archived run for storage.
func EncodeEntry(entry optimization.ArchiveEntry) ([]byte, error) {
	return json.Marshal(envelope{Version: codecVersion, Entry: entry})
}

// DecodeEntry deserializes a stored payload.
func DecodeEntry(payload []byte) (optimization.ArchiveEntry, error) {
	var env envelope
	if err := json.Unmarshal(payload, &env); err != nil {
		return optimization.ArchiveEntry{}, fmt.Errorf("decode archive entry: %w", err)
	}
	if env.Version != codecVersion {
		return optimization.ArchiveEntry{}, fmt.Errorf("unsupported archive codec version %d", env.Version)
	}
	return env.Entry, nil
}
