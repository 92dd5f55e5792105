package config

// DefaultPrompt is shown by the REPL when no settings file overrides it.
const DefaultPrompt = ">> "

// Color modes accepted by the settings file.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// DefaultHistoryLimit caps the number of REPL lines kept in memory.
const DefaultHistoryLimit = 500
