package driven

// ConfigStore holds the user's agenda settings as dot-notation keys
// such as "view.default_mode". Missing keys and type mismatches yield
// zero values rather than errors.
type ConfigStore interface {
	// Get returns the raw value for key and whether it is set.
	Get(key string) (any, bool)

	// GetString returns the string at key, or "".
	GetString(key string) string

	// GetInt returns the integer at key, or 0.
	GetInt(key string) int

	// GetBool returns the boolean at key, or false.
	GetBool(key string) bool

	// GetStringSlice returns the string list at key, or nil.
	GetStringSlice(key string) []string

	// Set stores value at key and persists it.
	Set(key string, value any) error

	// Save writes all values to the backing file.
	Save() error

	// Load replaces the in-memory values with the backing file's.
	Load() error

	// Path returns the backing file path.
	Path() string
}
