package marshal

import (
	"log"
	"os"
	"strconv"
	"sync"
)

// Config holds rendering configuration for query documents
type Config struct {
	// Indent is the indentation string used by Indent (default: two spaces)
	Indent string `json:"indent" yaml:"indent"`

	// EscapeHTML controls whether <, > and & are escaped in string values.
	// Search DSL documents are not embedded in HTML, so this defaults to off.
	EscapeHTML bool `json:"escape_html" yaml:"escape_html"`

	// SortKeys is accepted for config-file compatibility. encoding/json
	// already emits map keys in sorted order, so it has no effect.
	SortKeys bool `json:"sort_keys" yaml:"sort_keys"`
}

var (
	globalConfig Config
	configMutex  sync.RWMutex
)

// DefaultConfig returns the default rendering configuration
func DefaultConfig() Config {
	return Config{
		Indent:     "  ",
		EscapeHTML: false,
		SortKeys:   true,
	}
}

// SetGlobalConfig sets the global rendering configuration
func SetGlobalConfig(config Config) {
	configMutex.Lock()
	defer configMutex.Unlock()
	globalConfig = config
}

// GetGlobalConfig returns the current global configuration
func GetGlobalConfig() Config {
	configMutex.RLock()
	defer configMutex.RUnlock()
	return globalConfig
}

// init initializes the global configuration and applies environment overrides
func init() {
	globalConfig = DefaultConfig()

	if indent := os.Getenv("ESB_MARSHAL_INDENT"); indent != "" {
		globalConfig.Indent = indent
	}

	if escape := os.Getenv("ESB_MARSHAL_ESCAPE_HTML"); escape != "" {
		v, err := strconv.ParseBool(escape)
		if err != nil {
			log.Printf("marshal: ignoring invalid ESB_MARSHAL_ESCAPE_HTML=%q: %v", escape, err)
		} else {
			globalConfig.EscapeHTML = v
		}
	}
}
