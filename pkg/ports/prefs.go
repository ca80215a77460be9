package ports

import "context"

// Preference keys persisted across sessions. Everything else in DemoState
// resets on startup.
const (
	PrefIndustry = "industry"
	PrefPersona  = "persona"
	PrefTheme    = "theme"
)

// PrefsStore persists the small set of string preferences that survive a
// session. Implementations must return domain.ErrPrefNotFound for a
// missing key.
type PrefsStore interface {
	// Get retrieves the value for a key.
	Get(ctx context.Context, key string) (string, error)

	// Set stores the value for a key, overwriting any previous value.
	Set(ctx context.Context, key, value string) error

	// Delete removes a key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error
}
