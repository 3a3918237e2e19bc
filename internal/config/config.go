package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/pelletier/go-toml/v2"
	"github.com/samber/lo"

	"pageview/internal/domain"
	"pageview/internal/eventbus"
	"pageview/internal/pager"
)

// DefaultFileName is the config file looked up in the working directory
const DefaultFileName = ".pageview.toml"

const currentVersion = 1

// Config represents the application configuration
type Config struct {
	Version int            `toml:"version"`
	Mode    string         `toml:"mode"`
	Count   int            `toml:"count"` // int mode bound, 0 = unbounded
	Start   int            `toml:"start"` // initial int page
	Paging  PagingSettings `toml:"paging"`
	UI      UISettings     `toml:"ui"`
}

// PagingSettings mirrors the tunables of the paging engine
type PagingSettings struct {
	Threshold         float64  `toml:"threshold"`
	ThresholdCap      float64  `toml:"threshold_cap"`
	MinDistance       float64  `toml:"min_distance"`
	VerticalTolerance float64  `toml:"vertical_tolerance"`
	AdjustOnSwipe     bool     `toml:"adjust_on_swipe"`
	Impacts           []string `toml:"impacts"`
	ResizeDebounceMS  int      `toml:"resize_debounce_ms"`
	SmoothDrag        bool     `toml:"smooth_drag"`
}

// UISettings represents UI-related configuration
type UISettings struct {
	PageBackground string `toml:"page_background"`
	Bell           bool   `toml:"bell"`
	LogFile        string `toml:"log_file"`
	LogLevel       string `toml:"log_level"`
}

// ConfigService handles configuration management
type ConfigService interface {
	Path() string
	Load() (*Config, error)
	Save(config *Config) error
	LoadFromPath(path string) (*Config, error)
	SaveToPath(config *Config, path string) error
}

// configService is the concrete implementation
type configService struct {
	bus      eventbus.EventBus
	filePath string
}

// NewConfigService creates a config service for path. An empty path
// means DefaultFileName in the working directory.
func NewConfigService(path string) ConfigService {
	if path == "" {
		path = DefaultFileName
	}
	return &configService{filePath: path}
}

// NewConfigServiceWithBus creates a config service with event bus support
func NewConfigServiceWithBus(path string, bus eventbus.EventBus) ConfigService {
	cs := NewConfigService(path).(*configService)
	cs.bus = bus
	return cs
}

func (cs *configService) Path() string {
	return cs.filePath
}

// Load loads the configuration from the service's file, falling back
// to the defaults when it does not exist
func (cs *configService) Load() (*Config, error) {
	cfg, err := cs.LoadFromPath(cs.filePath)
	if errors.Is(err, os.ErrNotExist) {
		cfg = DefaultConfig()
	} else if err != nil {
		return nil, err
	}

	if cs.bus != nil {
		mode, _ := cfg.ModeValue()
		cs.bus.Publish(eventbus.ConfigLoadedEvent{Path: cs.filePath, Mode: mode})
	}
	return cfg, nil
}

// Save saves the configuration to the service's file
func (cs *configService) Save(config *Config) error {
	if err := cs.SaveToPath(config, cs.filePath); err != nil {
		return err
	}
	if cs.bus != nil {
		cs.bus.Publish(eventbus.ConfigSavedEvent{Path: cs.filePath})
	}
	return nil
}

// LoadFromPath loads configuration from a specific path. Keys missing
// from the file keep their default values.
func (cs *configService) LoadFromPath(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	if _, err := cfg.ModeValue(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	if _, unknown := cfg.Paging.ImpactSet(); len(unknown) > 0 {
		return nil, fmt.Errorf("invalid config %s: unknown impacts %v", path, unknown)
	}
	return cfg, nil
}

// SaveToPath saves configuration to a specific path
func (cs *configService) SaveToPath(config *Config, path string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create config directory: %w", err)
		}
	}

	data, err := toml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Version: currentVersion,
		Mode:    string(domain.ModeInt),
		Paging: PagingSettings{
			Threshold:         pager.DefaultThreshold,
			ThresholdCap:      40,
			VerticalTolerance: 1,
			Impacts:           []string{"start", "threshold", "end"},
			ResizeDebounceMS:  int(pager.DefaultResizeDebounce / time.Millisecond),
		},
		UI: UISettings{
			PageBackground: "236",
			LogFile:        "pageview.log",
			LogLevel:       "info",
		},
	}
}

// ModeValue parses the configured mode
func (c *Config) ModeValue() (domain.Mode, error) {
	return domain.ParseMode(c.Mode)
}

// ImpactSet parses the impact names. Duplicates are ignored and names
// that are not milestones are returned as unknown.
func (p PagingSettings) ImpactSet() (pager.ImpactSet, []string) {
	var impacts []pager.Impact
	var unknown []string
	for _, name := range lo.Uniq(p.Impacts) {
		if i, ok := pager.ParseImpact(name); ok {
			impacts = append(impacts, i)
		} else {
			unknown = append(unknown, name)
		}
	}
	return pager.NewImpactSet(impacts...), unknown
}

// ResizeDebounce returns the debounce as a duration
func (p PagingSettings) ResizeDebounce() time.Duration {
	return time.Duration(p.ResizeDebounceMS) * time.Millisecond
}

// Apply copies the paging settings onto an engine configuration.
// Callbacks and bindings on c are left alone.
func Apply[T comparable](p PagingSettings, c *pager.Config[T]) {
	c.Threshold = p.Threshold
	c.ThresholdCap = p.ThresholdCap
	c.MinDistance = p.MinDistance
	c.VerticalTolerance = p.VerticalTolerance
	c.AdjustOnSwipe = p.AdjustOnSwipe
	c.SmoothDrag = p.SmoothDrag
	c.ResizeDebounce = p.ResizeDebounce()
	c.Impacts, _ = p.ImpactSet()
}
