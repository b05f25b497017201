package configloader

import (
	"fmt"
	"os"
	"strconv"

	"github.com/inkdown/mdoutline/pkg/config"
)

// envVarPrefix is the prefix for all mdoutline environment variables.
const envVarPrefix = "MDOUTLINE_"

// LoadFromEnv applies environment variable overrides to the configuration.
// Variables are prefixed with MDOUTLINE_ (e.g. MDOUTLINE_FORMAT).
func LoadFromEnv(cfg *config.Config) error {
	if cfg == nil {
		return nil
	}

	if v := os.Getenv(envVarPrefix + "FORMAT"); v != "" {
		cfg.Format = config.OutputFormat(v)
	}

	if v := os.Getenv(envVarPrefix + "COLOR"); v != "" {
		cfg.Color = config.ColorMode(v)
	}

	if v := os.Getenv(envVarPrefix + "MAX_DEPTH"); v != "" {
		depth, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid integer for %sMAX_DEPTH: %q", envVarPrefix, v)
		}
		cfg.MaxDepth = depth
	}

	if v := os.Getenv(envVarPrefix + "DETECT_LANGUAGES"); v != "" {
		detect, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("invalid boolean for %sDETECT_LANGUAGES: %q (expected true/false/1/0)",
				envVarPrefix, v)
		}
		cfg.DetectLanguages = detect
	}

	return nil
}
