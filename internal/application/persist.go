package application

import (
	"encoding/json"

	"github.com/rs/zerolog"

	"simplenotes/internal/ports"
)

// loadJSON decodes key into dst. A missing key, a read failure or a parse
// failure all report false and leave dst untouched; failures are logged.
func loadJSON(kv ports.KeyValueStore, log zerolog.Logger, key string, dst any) bool {
	data, ok, err := kv.Get(key)
	if err != nil {
		log.Warn().Err(err).Str("key", key).Msg("storage read failed, using defaults")
		return false
	}
	if !ok {
		return false
	}
	if err := json.Unmarshal(data, dst); err != nil {
		log.Warn().Err(err).Str("key", key).Msg("stored value is not valid JSON, using defaults")
		return false
	}
	return true
}

// writeJSON overwrites key with the JSON encoding of v
func writeJSON(kv ports.KeyValueStore, log zerolog.Logger, key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return &PersistError{Key: key, Err: err}
	}
	if err := kv.Set(key, data); err != nil {
		log.Error().Err(err).Str("key", key).Int("bytes", len(data)).Msg("storage write failed")
		return &PersistError{Key: key, Err: err}
	}
	return nil
}
