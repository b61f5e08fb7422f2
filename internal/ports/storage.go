package ports

// Keys under which the notebook is persisted
const (
	KeyNotes          = "notesList"
	KeyGroups         = "noteGroups"
	KeyExpandedGroups = "expandedGroups"
	KeyLastOpenedNote = "lastOpenedNote"
)

// KeyValueStore is a synchronous string-keyed store holding JSON values.
// Every write overwrites the whole value for its key.
type KeyValueStore interface {
	// Get returns the value for key; ok is false when the key was never set
	Get(key string) (value []byte, ok bool, err error)

	// Set overwrites the value for key
	Set(key string, value []byte) error

	// Delete removes key; deleting a missing key is not an error
	Delete(key string) error

	// Close releases the underlying storage
	Close() error
}
