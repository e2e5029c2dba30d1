package config

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Editable field ids used by the settings form.
const (
	FieldMaxSeconds = "max_seconds"
	FieldOutputDir  = "output_dir"
	FieldDither     = "dither"
)

var ErrInvalidField = errors.New("invalid config field")

// FieldValues returns the textual form of every editable field.
func (c *Config) FieldValues() map[string]string {
	return map[string]string{
		FieldMaxSeconds: strconv.Itoa(c.MaxSeconds),
		FieldOutputDir:  c.OutputDir,
		FieldDither:     strconv.FormatBool(c.Dither),
	}
}

// WithFields returns a validated copy of c with the given textual values
// applied. Unknown ids are ignored; unparsable values fail without touching c.
func (c *Config) WithFields(values map[string]string) (*Config, error) {
	cfg := *c // copy
	for id, raw := range values {
		v := strings.TrimSpace(raw)
		switch id {
		case FieldMaxSeconds:
			i, err := strconv.Atoi(v)
			if err != nil || i <= 0 {
				return nil, fmt.Errorf("%w: %s=%q", ErrInvalidField, id, raw)
			}
			cfg.MaxSeconds = i
		case FieldOutputDir:
			cfg.OutputDir = v
		case FieldDither:
			b, ok := parseBoolLoose(v)
			if !ok {
				return nil, fmt.Errorf("%w: %s=%q", ErrInvalidField, id, raw)
			}
			cfg.Dither = b
		}
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func parseBoolLoose(s string) (bool, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "true", "1", "yes", "y", "on", "t":
		return true, true
	case "false", "0", "no", "n", "off", "f":
		return false, true
	default:
		return false, false
	}
}
