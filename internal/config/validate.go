package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

var outputModes = []string{"plain", "json", "ndjson", "pretty"}

// CheckConfigValidity reports every problem in the resolved configuration
// as one joined error.
func CheckConfigValidity(v *viper.Viper) error {
	var errs []error

	if p := strings.TrimSpace(v.GetString("catalog_path")); p != "" {
		if st, err := os.Stat(p); err != nil {
			errs = append(errs, fmt.Errorf("catalog_path %s is not readable: %w", p, err))
		} else if st.IsDir() {
			errs = append(errs, fmt.Errorf("catalog_path %s is a directory", p))
		} else {
			switch strings.ToLower(filepath.Ext(p)) {
			case ".json", ".yaml", ".yml":
			default:
				errs = append(errs, fmt.Errorf("catalog_path %s must end in .json, .yaml or .yml", p))
			}
		}
	}

	out := strings.ToLower(strings.TrimSpace(v.GetString("output")))
	valid := false
	for _, m := range outputModes {
		if out == m {
			valid = true
		}
	}
	if !valid {
		errs = append(errs, fmt.Errorf("output must be one of %s", strings.Join(outputModes, "|")))
	}

	if v.GetInt("suggest.max_results") <= 0 {
		errs = append(errs, errors.New("suggest.max_results must be greater than 0"))
	}
	if v.GetInt("tui.status_seconds") < 0 {
		errs = append(errs, errors.New("tui.status_seconds must not be negative"))
	}
	return errors.Join(errs...)
}
