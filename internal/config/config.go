package config

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Config is the root configuration for hyprkit, stored in
// ~/.config/hyprkit/config.json. The file supports single-line // comments
// for documentation purposes.
type Config struct {
	Salaat  SalaatConfig  `json:"salaat"`
	Binds   BindsConfig   `json:"binds"`
	Palette PaletteConfig `json:"palette"`
	Power   PowerConfig   `json:"power"`
	Hadith  HadithConfig  `json:"hadith"`
}

// SalaatConfig holds the prayer-time widget settings.
type SalaatConfig struct {
	City    string `json:"city"`
	Country string `json:"country"`
	// Method is the Aladhan calculation method id.
	Method *int `json:"method"`
	// School is 0 for Shafi'i, 1 for Hanafi.
	School *int `json:"school"`
	// APIBase overrides the Aladhan endpoint, e.g. for a self-hosted mirror.
	APIBase string `json:"api_base"`
	// APIToken is sent as a bearer token when set.
	APIToken string `json:"api_token"`
	// CachePath is the last-known-good timings file. Empty = ~/.cache/prayer_times.json.
	CachePath      string `json:"cache_path"`
	TimeoutSeconds int    `json:"timeout_seconds"`
}

// BindsConfig holds the cheat-sheet settings.
type BindsConfig struct {
	// Path to binds.conf. Empty = ~/.config/hypr/binds.conf.
	Path string `json:"path"`
}

// PaletteConfig points at the pywal cache files. Empty = ~/.cache/wal/*.
type PaletteConfig struct {
	ColorsPath     string `json:"colors_path"`
	ColorsJSONPath string `json:"colors_json_path"`
}

// PowerConfig overrides the command run by each power action. Each entry is
// an argv array; empty keeps the built-in command.
type PowerConfig struct {
	Lock     []string `json:"lock"`
	Logout   []string `json:"logout"`
	Shutdown []string `json:"shutdown"`
	Reboot   []string `json:"reboot"`
}

// HadithConfig holds the hadith viewer settings.
type HadithConfig struct {
	BaseURL    string `json:"base_url"`
	Collection string `json:"collection"`
	MaxNumber  int    `json:"max_number"`
}

const (
	DefaultCity           = "Johannesburg"
	DefaultCountry        = "South Africa"
	DefaultMethod         = 3
	DefaultSchool         = 0
	DefaultTimeoutSeconds = 5
	DefaultHadithBaseURL  = "https://sunnah.com"
	DefaultCollection     = "bukhari"
	// DefaultMaxNumber is the number of hadith in Sahih al-Bukhari.
	DefaultMaxNumber = 7563
)

// MethodOrDefault returns the configured method or DefaultMethod.
func (s SalaatConfig) MethodOrDefault() int {
	if s.Method == nil {
		return DefaultMethod
	}
	return *s.Method
}

// SchoolOrDefault returns the configured school or DefaultSchool.
func (s SalaatConfig) SchoolOrDefault() int {
	if s.School == nil {
		return DefaultSchool
	}
	return *s.School
}

// Default returns a Config pre-filled with the built-in defaults.
func Default() Config {
	method, school := DefaultMethod, DefaultSchool
	return Config{
		Salaat: SalaatConfig{
			City:           DefaultCity,
			Country:        DefaultCountry,
			Method:         &method,
			School:         &school,
			TimeoutSeconds: DefaultTimeoutSeconds,
		},
		Hadith: HadithConfig{
			BaseURL:    DefaultHadithBaseURL,
			Collection: DefaultCollection,
			MaxNumber:  DefaultMaxNumber,
		},
	}
}

// configTemplate is the annotated config written on first run.
// Lines whose trimmed content starts with // are stripped before JSON parsing,
// allowing human-readable documentation inside the file.
const configTemplate = `// hyprkit configuration – ~/.config/hyprkit/config.json
//
// All settings are optional. Empty strings and arrays keep the built-in
// defaults. Command-line flags override anything set here.
{
  // ── Prayer-time widget (hyprkit salaat) ──────────────────────────────────
  "salaat": {
    "city": "Johannesburg",
    "country": "South Africa",

    // Aladhan calculation method id, e.g. 3 = Muslim World League.
    "method": 3,

    // Juristic school for Asr: 0 = Shafi'i, 1 = Hanafi.
    "school": 0,

    // Alternative API endpoint and optional bearer token for self-hosted mirrors.
    "api_base": "",
    "api_token": "",

    // Last-known-good timings, used when the API is unreachable.
    // Leave empty for ~/.cache/prayer_times.json.
    "cache_path": "",

    "timeout_seconds": 5
  },

  // ── Keybind cheat sheet (hyprkit binds) ──────────────────────────────────
  "binds": {
    // Leave empty for ~/.config/hypr/binds.conf.
    "path": ""
  },

  // ── pywal colours used by the terminal views ─────────────────────────────
  "palette": {
    // Leave empty for ~/.cache/wal/colors and ~/.cache/wal/colors.json.
    "colors_path": "",
    "colors_json_path": ""
  },

  // ── Power menu (hyprkit power) ───────────────────────────────────────────
  // Each command is an argv array, e.g. ["loginctl", "lock-session"].
  "power": {
    "lock": [],
    "logout": [],
    "shutdown": [],
    "reboot": []
  },

  // ── Hadith viewer (hyprkit hadith) ───────────────────────────────────────
  "hadith": {
    "base_url": "https://sunnah.com",
    "collection": "bukhari",
    "max_number": 7563
  }
}
`

// DefaultPath returns the path to ~/.config/hyprkit/config.json.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot determine home directory: %w", err)
	}
	return filepath.Join(home, ".config", "hyprkit", "config.json"), nil
}

// stripLineComments removes lines whose leading non-whitespace content starts
// with //. Only full-line comments are handled; inline comments are not stripped.
func stripLineComments(data []byte) []byte {
	var out []byte
	for _, line := range bytes.Split(data, []byte("\n")) {
		if bytes.HasPrefix(bytes.TrimLeft(line, " \t"), []byte("//")) {
			continue
		}
		out = append(out, line...)
		out = append(out, '\n')
	}
	return out
}

// Load reads the config at the default location, creating it with annotated
// defaults on first run.
func Load() (Config, error) {
	path, err := DefaultPath()
	if err != nil {
		return Default(), err
	}
	return LoadFile(path, true)
}

// LoadFile reads the config at path. When the file is missing and create is
// true, the annotated template is written there; failing to write it is only
// a warning. Lines starting with // are
// treated as comments and stripped before JSON parsing.
func LoadFile(path string, create bool) (Config, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		if create {
			if writeErr := writeDefault(path); writeErr != nil {
				fmt.Fprintf(os.Stderr, "Warning: could not create config file %s: %v\n", path, writeErr)
			}
		}
		return Default(), nil
	}
	if err != nil {
		return Default(), fmt.Errorf("reading config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(stripLineComments(data), &cfg); err != nil {
		return Default(), fmt.Errorf("parsing config file %s: %w\nTip: delete the file to regenerate defaults", path, err)
	}
	cfg.fillDefaults()
	return cfg, nil
}

// fillDefaults back-fills zero-value fields so callers always get a usable
// Config even if the user only partially fills in the file.
func (c *Config) fillDefaults() {
	def := Default()
	if c.Salaat.City == "" {
		c.Salaat.City = def.Salaat.City
	}
	if c.Salaat.Country == "" {
		c.Salaat.Country = def.Salaat.Country
	}
	if c.Salaat.Method == nil {
		c.Salaat.Method = def.Salaat.Method
	}
	if c.Salaat.School == nil {
		c.Salaat.School = def.Salaat.School
	}
	if c.Salaat.TimeoutSeconds <= 0 {
		c.Salaat.TimeoutSeconds = def.Salaat.TimeoutSeconds
	}
	if c.Hadith.BaseURL == "" {
		c.Hadith.BaseURL = def.Hadith.BaseURL
	}
	if c.Hadith.Collection == "" {
		c.Hadith.Collection = def.Hadith.Collection
	}
	if c.Hadith.MaxNumber <= 0 {
		c.Hadith.MaxNumber = def.Hadith.MaxNumber
	}
}

// writeDefault creates the config directory and writes the annotated default
// config template.
func writeDefault(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	if err := os.WriteFile(path, []byte(configTemplate), 0o600); err != nil {
		return fmt.Errorf("writing default config: %w", err)
	}
	return nil
}
