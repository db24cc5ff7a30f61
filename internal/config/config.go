package config

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/imgajeed76/tabview/internal/viewmodel"
)

// Config represents the tabview config.toml file
type Config struct {
	View   ViewConfig   `toml:"view"`
	Source SourceConfig `toml:"source"`
	Export ExportConfig `toml:"export"`
	Status StatusConfig `toml:"status"`
}

// ViewConfig controls paging, the pager and text ordering
type ViewConfig struct {
	PageSize       int    `toml:"page_size" config:"view.page_size" default:"10" min:"1" max:"1000" desc:"Rows per page"`
	MaxPageButtons int    `toml:"max_page_buttons" config:"view.max_page_buttons" default:"5" min:"1" max:"25" desc:"Numbered pager buttons"`
	PinnedColumns  int    `toml:"pinned_columns" config:"view.pinned_columns" default:"2" min:"0" max:"50" desc:"Leading columns that cannot be hidden"`
	Locale         string `toml:"locale" config:"view.locale" default:"pt-BR" desc:"Locale used to order text columns"`
}

// SourceConfig maps row source fields onto the row model
type SourceConfig struct {
	IDField     string   `toml:"id_field" config:"source.id_field" default:"id" desc:"Field holding the row identifier"`
	TypeField   string   `toml:"type_field" config:"source.type_field" default:"type" desc:"Field holding the process type"`
	StatusField string   `toml:"status_field" config:"source.status_field" default:"status" desc:"Field holding the status label"`
	Query       string   `toml:"query" config:"source.query" desc:"Default SQL query for database sources"`
	Columns     []string `toml:"columns"` // explicit column order, empty = discover
}

// ExportConfig contains HTML export settings
type ExportConfig struct {
	Title         string `toml:"title" config:"export.title" default:"Relatório de Processos" desc:"Report title"`
	SanitizeCells bool   `toml:"sanitize_cells" config:"export.sanitize_cells" default:"true" desc:"Allow sanitized inline HTML in cells"`
}

// StatusConfig contains status badge colours, keyed by status label
type StatusConfig struct {
	Colors map[string]string `toml:"colors"`
}

// DefaultConfig returns a config with default values
func DefaultConfig() *Config {
	opts := viewmodel.DefaultOptions()
	return &Config{
		View: ViewConfig{
			PageSize:       opts.PageSize,
			MaxPageButtons: opts.MaxPageButtons,
			PinnedColumns:  opts.PinnedColumns,
			Locale:         opts.Locale,
		},
		Source: SourceConfig{
			IDField:     "id",
			TypeField:   "type",
			StatusField: "status",
		},
		Export: ExportConfig{
			Title:         "Relatório de Processos",
			SanitizeCells: true,
		},
		Status: StatusConfig{
			Colors: make(map[string]string),
		},
	}
}

// DefaultPath returns the path to the user config file
// Follows XDG Base Directory spec on Linux, platform conventions elsewhere
func DefaultPath() string {
	var configDir string

	switch runtime.GOOS {
	case "darwin":
		home, _ := os.UserHomeDir()
		configDir = filepath.Join(home, "Library", "Application Support", "tabview")
	case "windows":
		configDir = filepath.Join(os.Getenv("APPDATA"), "tabview")
	default: // Linux and others - follow XDG
		if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
			configDir = filepath.Join(xdg, "tabview")
		} else {
			home, _ := os.UserHomeDir()
			configDir = filepath.Join(home, ".config", "tabview")
		}
	}

	return filepath.Join(configDir, "config.toml")
}

// Load reads the config file at path (DefaultPath when empty). A missing
// file is not an error: defaults are returned.
func Load(path string) (*Config, error) {
	if path == "" {
		path = DefaultPath()
	}

	cfg := DefaultConfig()

	if _, err := os.Stat(path); err == nil {
		if _, err := toml.DecodeFile(path, cfg); err != nil {
			return nil, err
		}
	}

	cfg.applyDefaults()
	return cfg, nil
}

// applyDefaults fills values a partial file left empty
func (c *Config) applyDefaults() {
	defaults := DefaultConfig()

	if c.View.PageSize == 0 {
		c.View.PageSize = defaults.View.PageSize
	}
	if c.View.MaxPageButtons == 0 {
		c.View.MaxPageButtons = defaults.View.MaxPageButtons
	}
	// NOTE: PinnedColumns is NOT defaulted here because 0 is a valid value
	// (every column can be hidden).
	if c.View.Locale == "" {
		c.View.Locale = defaults.View.Locale
	}
	if c.Source.IDField == "" {
		c.Source.IDField = defaults.Source.IDField
	}
	if c.Source.TypeField == "" {
		c.Source.TypeField = defaults.Source.TypeField
	}
	if c.Source.StatusField == "" {
		c.Source.StatusField = defaults.Source.StatusField
	}
	if c.Export.Title == "" {
		c.Export.Title = defaults.Export.Title
	}
	if c.Status.Colors == nil {
		c.Status.Colors = make(map[string]string)
	}
}

// Save writes the config file to path (DefaultPath when empty)
func (c *Config) Save(path string) error {
	if path == "" {
		path = DefaultPath()
	}

	// Ensure directory exists
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	encoder := toml.NewEncoder(f)
	return encoder.Encode(c)
}

// ViewOptions converts the view section into view model options
func (c *Config) ViewOptions() viewmodel.Options {
	return viewmodel.Options{
		PageSize:       c.View.PageSize,
		MaxPageButtons: c.View.MaxPageButtons,
		PinnedColumns:  c.View.PinnedColumns,
		Locale:         c.View.Locale,
	}
}

// StatusColor returns the configured colour for a status label
func (c *Config) StatusColor(status string) (string, bool) {
	color, ok := c.Status.Colors[status]
	return color, ok
}

// SetStatusColor adds or updates a status colour
func (c *Config) SetStatusColor(status, color string) {
	if c.Status.Colors == nil {
		c.Status.Colors = make(map[string]string)
	}
	c.Status.Colors[status] = color
}

// GetValue returns a config value by key (uses reflection)
func (c *Config) GetValue(key string) (string, bool) {
	if status, ok := statusColorKey(key); ok {
		return c.StatusColor(status)
	}
	return getFieldValue(c, key)
}

// SetValue sets a config value by key (uses reflection with validation)
func (c *Config) SetValue(key, value string) error {
	if status, ok := statusColorKey(key); ok {
		c.SetStatusColor(status, value)
		return nil
	}
	return setFieldValue(c, key, value)
}

// statusColorKey parses "status.colors.<label>"
func statusColorKey(key string) (string, bool) {
	const prefix = "status.colors."
	if !strings.HasPrefix(key, prefix) || len(key) == len(prefix) {
		return "", false
	}
	return key[len(prefix):], true
}
