// Package config loads the TOML configuration file that tunes the decode
// pipeline's dictionary source, layout constants, cache backend, server
// address, and archive sink — falling back to compiled-in defaults for
// every field the file omits or that is missing entirely.
package config

import (
	"os"

	"github.com/BurntSushi/toml"
)

// Config is the root configuration shape, loaded from a single TOML file.
type Config struct {
	Dictionary DictionaryConfig `toml:"dictionary"`
	Layout     LayoutConfig     `toml:"layout"`
	Cache      CacheConfig      `toml:"cache"`
	Server     ServerConfig     `toml:"server"`
	Archive    ArchiveConfig    `toml:"archive"`
}

// DictionaryConfig points at an extra newline-separated identifier list to
// load on top of the compiled-in curated and bulk dictionaries.
type DictionaryConfig struct {
	Path string `toml:"path"`
}

// LayoutConfig holds layout spacing values read from the config file; [Load]
// merges them over the defaults, and a zero field keeps the default. The
// layout engine in pkg/layout uses its own compiled-in constants and does
// not read these values.
type LayoutConfig struct {
	LayerGapX          int `toml:"layer_gap_x"`
	LayerGapY          int `toml:"layer_gap_y"`
	MaxPerLayer        int `toml:"max_per_layer"`
	VariableCellWidth  int `toml:"variable_cell_width"`
	VariableCellHeight int `toml:"variable_cell_height"`
	VariableColumns    int `toml:"variable_columns"`
	VariableZoneGapY   int `toml:"variable_zone_gap_y"`
	OrphanRowGapX      int `toml:"orphan_row_gap_x"`
}

// CacheConfig selects and configures the caching backend.
type CacheConfig struct {
	Backend    string `toml:"backend"` // "none", "file", "redis"
	TTLSeconds int    `toml:"ttl_seconds"`
	RedisAddr  string `toml:"redis_addr"`
	FileDir    string `toml:"file_dir"`
}

// ServerConfig configures the HTTP decode server.
type ServerConfig struct {
	Address string `toml:"address"`
}

// ArchiveConfig configures the MongoDB decode-run archive sink. Archiving
// is disabled when URI is empty.
type ArchiveConfig struct {
	URI        string `toml:"uri"`
	Database   string `toml:"database"`
	Collection string `toml:"collection"`
}

// Defaults returns the compiled-in configuration used when no file is
// present, and as the base that [Load] overlays a found file onto.
func Defaults() Config {
	return Config{
		Layout: LayoutConfig{
			LayerGapX:          360,
			LayerGapY:          140,
			MaxPerLayer:        4,
			VariableCellWidth:  240,
			VariableCellHeight: 100,
			VariableColumns:    6,
			VariableZoneGapY:   160,
			OrphanRowGapX:      300,
		},
		Cache: CacheConfig{
			Backend:    "none",
			TTLSeconds: 3600,
		},
		Server: ServerConfig{
			Address: ":8080",
		},
		Archive: ArchiveConfig{
			Database:   "gsgraph",
			Collection: "decode_runs",
		},
	}
}

// Load reads and parses the TOML file at path, then fills any zero-valued
// field with the matching compiled-in default. A missing file is not an
// error: Load returns the pure defaults.
func Load(path string) (Config, error) {
	cfg := Defaults()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return Config{}, err
	}

	var file Config
	if _, err := toml.Decode(string(data), &file); err != nil {
		return Config{}, err
	}
	cfg.applyOverrides(file)
	return cfg, nil
}

// applyOverrides copies every non-zero field of file onto cfg, leaving
// defaults in place for anything file left unset.
func (cfg *Config) applyOverrides(file Config) {
	if file.Dictionary.Path != "" {
		cfg.Dictionary.Path = file.Dictionary.Path
	}

	overrideInt(&cfg.Layout.LayerGapX, file.Layout.LayerGapX)
	overrideInt(&cfg.Layout.LayerGapY, file.Layout.LayerGapY)
	overrideInt(&cfg.Layout.MaxPerLayer, file.Layout.MaxPerLayer)
	overrideInt(&cfg.Layout.VariableCellWidth, file.Layout.VariableCellWidth)
	overrideInt(&cfg.Layout.VariableCellHeight, file.Layout.VariableCellHeight)
	overrideInt(&cfg.Layout.VariableColumns, file.Layout.VariableColumns)
	overrideInt(&cfg.Layout.VariableZoneGapY, file.Layout.VariableZoneGapY)
	overrideInt(&cfg.Layout.OrphanRowGapX, file.Layout.OrphanRowGapX)

	if file.Cache.Backend != "" {
		cfg.Cache.Backend = file.Cache.Backend
	}
	overrideInt(&cfg.Cache.TTLSeconds, file.Cache.TTLSeconds)
	if file.Cache.RedisAddr != "" {
		cfg.Cache.RedisAddr = file.Cache.RedisAddr
	}
	if file.Cache.FileDir != "" {
		cfg.Cache.FileDir = file.Cache.FileDir
	}

	if file.Server.Address != "" {
		cfg.Server.Address = file.Server.Address
	}

	if file.Archive.URI != "" {
		cfg.Archive.URI = file.Archive.URI
	}
	if file.Archive.Database != "" {
		cfg.Archive.Database = file.Archive.Database
	}
	if file.Archive.Collection != "" {
		cfg.Archive.Collection = file.Archive.Collection
	}
}

func overrideInt(dst *int, v int) {
	if v != 0 {
		*dst = v
	}
}
