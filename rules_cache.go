package state

// ProgramCache stores compiled expression programs keyed by expression
// strings.
type ProgramCache interface {
	Get(key string) (any, bool)
	Set(key string, value any)
}

// WithProgramCache registers a program cache on the Rules engine.
func WithProgramCache(cache ProgramCache) Option {
	return func(cfg *rulesConfig) {
		cfg.programCache = cache
	}
}
