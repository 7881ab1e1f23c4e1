// Package meta implements the search orchestrator that picks the cheapest
// way to run a compiled program.
//
// The engine combines two pieces:
//   - Prefilter: literal-based candidate finding (optional)
//   - Backtracker: the greedy comparator from package backtrack
//
// Strategy selection looks at the program's leading instructions only:
// whether it is anchored at the start, and whether it begins with (or is
// entirely) a literal byte string. Every strategy reports exactly the span
// the plain backtracking search would.
package meta

import "github.com/coregx/bytere/syntax"

// Config controls engine construction.
//
// Example:
//
//	config := meta.DefaultConfig()
//	config.Capacity = 512 // Allow longer patterns
//	engine, err := meta.Compile(pattern, config)
type Config struct {
	// Capacity is the program storage budget handed to syntax.Compile.
	// Default: syntax.DefaultCapacity (128)
	Capacity int

	// EnablePrefilter enables literal-based prefiltering.
	// When false, every unanchored search runs the plain backtracker.
	// Default: true
	EnablePrefilter bool
}

// DefaultConfig returns a configuration with the default capacity and the
// prefilter enabled.
func DefaultConfig() Config {
	return Config{
		Capacity:        syntax.DefaultCapacity,
		EnablePrefilter: true,
	}
}

// Validate checks if the configuration is valid.
// Capacity must be between 1 and syntax.MaxCapacity.
//
// Example:
//
//	config := meta.Config{Capacity: 0} // Invalid!
//	if err := config.Validate(); err != nil {
//	    log.Fatal(err)
//	}
func (c Config) Validate() error {
	if c.Capacity < 1 || c.Capacity > syntax.MaxCapacity {
		return &ConfigError{
			Field:   "Capacity",
			Message: "must be between 1 and 1,048,576",
		}
	}
	return nil
}

// ConfigError represents an invalid configuration parameter.
type ConfigError struct {
	Field   string
	Message string
}

// Error implements the error interface.
func (e *ConfigError) Error() string {
	return "bytere: invalid config: " + e.Field + ": " + e.Message
}
