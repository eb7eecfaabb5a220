package config

import (
	"os"
	"strconv"
)

// ApplyEnv overrides c from RINGDIAL_* variables. Malformed values are ignored
func (c *Config) ApplyEnv() {
	str := func(name string, dst *string) {
		if v := os.Getenv(name); v != "" {
			*dst = v
		}
	}
	boolean := func(name string, dst *bool) {
		if v := os.Getenv(name); v != "" {
			if b, err := strconv.ParseBool(v); err == nil {
				*dst = b
			}
		}
	}

	str("RINGDIAL_HOST", &c.Host)
	str("RINGDIAL_PAGE", &c.Page)
	str("RINGDIAL_COLOR", &c.Color)
	str("RINGDIAL_MEDIA_ROOT", &c.MediaRoot)
	boolean("RINGDIAL_COARSE", &c.Coarse)
	boolean("RINGDIAL_REDUCED_MOTION", &c.ReducedMotion)
	boolean("RINGDIAL_SKIP_INTRO", &c.SkipIntro)
	boolean("RINGDIAL_DEBUG", &c.Debug)

	if v := os.Getenv("RINGDIAL_DPR"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil && f > 0 {
			c.DPR = f
		}
	}
}
