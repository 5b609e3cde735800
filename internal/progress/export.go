package progress

import (
	"encoding/json"
	"fmt"
)

// Export serializes the full state, daily logs included, as a single JSON
// document. The layout is the persisted wire format and must stay stable so
// old exports keep importing.
func (t *Tracker) Export() ([]byte, error) {
	data, err := json.MarshalIndent(t.State, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to serialize state: %w", err)
	}
	return data, nil
}

// Import merges a previously exported document into the current state,
// overwriting whichever fields the document carries. Malformed input returns
// ErrImport and leaves the state untouched. Importing an unmodified export is
// a no-op.
func (t *Tracker) Import(data []byte) error {
	merged := t.State.Clone()
	if err := json.Unmarshal(data, merged); err != nil {
		return fmt.Errorf("%w: %v", ErrImport, err)
	}
	*t.State = *merged
	return nil
}
