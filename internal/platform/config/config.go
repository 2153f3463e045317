package config

import (
	"fmt"
	"os"
	"strconv"
)

// Config is the explicit runtime configuration for the tool. The defaults
// mirror the workbook layout the Canvas roster export produces; every value
// can be overridden by environment variables, and the CLI layers its flags
// on top.
type Config struct {
	// WorkbookPath is the xlsx file all commands operate on.
	WorkbookPath string
	// NamesSheet holds the normalized roster, one display name per row.
	NamesSheet string
	// SourceSheet holds the raw "Last, First" export.
	SourceSheet string
	// DropLeadingRows and DropTrailingRows remove export artifacts from
	// either end of the raw name column (the export opens with a second
	// header-ish row and ends with a "Test Student" row).
	DropLeadingRows  int
	DropTrailingRows int

	// DatabaseURL enables the optional Postgres pairing-history archive
	// when non-empty.
	DatabaseURL string

	// HTTPPort is the listen port for serve mode.
	HTTPPort string

	LogLevel  string
	LogFormat string
}

// Default returns the configuration used when nothing is overridden.
func Default() Config {
	return Config{
		WorkbookPath:     "students.xlsx",
		NamesSheet:       "Names",
		SourceSheet:      "full_list",
		DropLeadingRows:  1,
		DropTrailingRows: 1,
		HTTPPort:         "8080",
		LogLevel:         "info",
		LogFormat:        "console",
	}
}

// LoadFromEnv builds a Config from LABPAIR_* environment variables on top
// of the defaults. It returns errors rather than exiting so callers decide
// how failures surface.
func LoadFromEnv() (Config, error) {
	cfg := Default()

	if v := os.Getenv("LABPAIR_WORKBOOK"); v != "" {
		cfg.WorkbookPath = v
	}
	if v := os.Getenv("LABPAIR_NAMES_SHEET"); v != "" {
		cfg.NamesSheet = v
	}
	if v := os.Getenv("LABPAIR_SOURCE_SHEET"); v != "" {
		cfg.SourceSheet = v
	}
	if v := os.Getenv("LABPAIR_DROP_LEADING"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			return Config{}, fmt.Errorf("LABPAIR_DROP_LEADING must be a non-negative integer, got %q", v)
		}
		cfg.DropLeadingRows = n
	}
	if v := os.Getenv("LABPAIR_DROP_TRAILING"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			return Config{}, fmt.Errorf("LABPAIR_DROP_TRAILING must be a non-negative integer, got %q", v)
		}
		cfg.DropTrailingRows = n
	}
	if v := os.Getenv("LABPAIR_DATABASE_URL"); v != "" {
		cfg.DatabaseURL = v
	}
	if v := os.Getenv("LABPAIR_PORT"); v != "" {
		p, err := strconv.Atoi(v)
		if err != nil || p < 1 || p > 65535 {
			return Config{}, fmt.Errorf("LABPAIR_PORT must be a TCP port, got %q", v)
		}
		cfg.HTTPPort = v
	}
	if v := os.Getenv("LABPAIR_LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
	if v := os.Getenv("LABPAIR_LOG_FORMAT"); v != "" {
		cfg.LogFormat = v
	}

	return cfg, nil
}
