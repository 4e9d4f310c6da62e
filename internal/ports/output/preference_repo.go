package output

import "context"

// PreferenceStore reads and writes named plain-text values.
type PreferenceStore interface {
	// Get returns the stored value and whether it exists.
	Get(ctx context.Context, name string) (string, bool, error)
	Set(ctx context.Context, name, value string) error
}
