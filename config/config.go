package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/viper"
)

const keyEnv = "ENV"
const envLocal = "local"

const (
	keyWindowWidth      = "window.width"
	keyWindowHeight     = "window.height"
	keyWindowTitle      = "window.title"
	keyGridCount        = "grid.count"
	keyGridCanvasSize   = "grid.canvas_size"
	keyDefaultMinutes   = "timer.default_minutes"
	keyRefreshInterval  = "timer.refresh_interval_ms"
	keyLogLevel         = "log.level"
	defaultWindowWidth  = 340
	defaultWindowHeight = 460
)

type Config struct {
	config *viper.Viper
}

func Load(env string) (*Config, error) {

	if len(env) == 0 {
		if env = os.Getenv(keyEnv); len(env) == 0 {
			env = envLocal
		}
	}

	configPath, err := getConfigPath(env)

	viperConfig := viper.New()
	SetDefaults(viperConfig)
	if err == nil {
		viperConfig.SetConfigFile(configPath)
		if err := viperConfig.ReadInConfig(); err != nil {
			slog.Warn(fmt.Sprintf("error reading config file, %s", err))
		}
	}
	viperConfig.AutomaticEnv()

	cfg := &Config{
		config: viperConfig,
	}

	return cfg, nil
}

// SetDefaults registers the value of every known key.
func SetDefaults(v *viper.Viper) {
	v.SetDefault(keyWindowWidth, defaultWindowWidth)
	v.SetDefault(keyWindowHeight, defaultWindowHeight)
	v.SetDefault(keyWindowTitle, "ADHD Friendly Timer")
	v.SetDefault(keyGridCount, 20)
	v.SetDefault(keyGridCanvasSize, 300)
	v.SetDefault(keyDefaultMinutes, 25.0)
	v.SetDefault(keyRefreshInterval, 100)
	v.SetDefault(keyLogLevel, "info")
}

// KnownKeys returns every configuration key the application reads.
func KnownKeys() []string {
	return []string{
		keyWindowWidth,
		keyWindowHeight,
		keyWindowTitle,
		keyGridCount,
		keyGridCanvasSize,
		keyDefaultMinutes,
		keyRefreshInterval,
		keyLogLevel,
	}
}

// Default returns a configuration holding only the built-in defaults.
func Default() *Config {
	v := viper.New()
	SetDefaults(v)
	return &Config{config: v}
}

// ConfigFileUsed returns the path of the file read by Load, if any.
func (c *Config) ConfigFileUsed() string {
	return c.config.ConfigFileUsed()
}

// FileKeys returns the keys present in the loaded config file.
func (c *Config) FileKeys() ([]string, error) {
	path := c.config.ConfigFileUsed()
	if path == "" {
		return nil, nil
	}

	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}
	return v.AllKeys(), nil
}

// Validate checks that the loaded values can drive the timer.
func (c *Config) Validate() error {
	var errs []error
	if c.GetWindowWidth() <= 0 || c.GetWindowHeight() <= 0 {
		errs = append(errs, fmt.Errorf("window size must be positive, got %dx%d", c.GetWindowWidth(), c.GetWindowHeight()))
	}
	if c.GetGridCount() <= 0 {
		errs = append(errs, fmt.Errorf("%s must be positive, got %d", keyGridCount, c.GetGridCount()))
	}
	if c.GetGridCanvasSize() < c.GetGridCount() {
		errs = append(errs, fmt.Errorf("%s must be at least %s, got %d", keyGridCanvasSize, keyGridCount, c.GetGridCanvasSize()))
	}
	if c.GetDefaultMinutes() <= 0 {
		errs = append(errs, fmt.Errorf("%s must be positive, got %v", keyDefaultMinutes, c.GetDefaultMinutes()))
	}
	if c.GetRefreshInterval() <= 0 {
		errs = append(errs, fmt.Errorf("%s must be positive, got %d", keyRefreshInterval, c.config.GetInt(keyRefreshInterval)))
	}
	return errors.Join(errs...)
}

func (c *Config) GetWindowWidth() int {
	windowWidth := c.config.GetInt("WINDOW_WIDTH")
	if windowWidth == 0 {
		windowWidth = c.config.GetInt(keyWindowWidth)
	}

	return windowWidth
}

func (c *Config) GetWindowHeight() int {
	windowHeight := c.config.GetInt("WINDOW_HEIGHT")
	if windowHeight == 0 {
		windowHeight = c.config.GetInt(keyWindowHeight)
	}

	return windowHeight
}

func (c *Config) GetWindowTitle() string {
	windowTitle := c.config.GetString("WINDOW_TITLE")
	if len(windowTitle) == 0 {
		windowTitle = c.config.GetString(keyWindowTitle)
	}

	return windowTitle
}

// GetGridCount is the number of cells per row and column.
func (c *Config) GetGridCount() int {
	gridCount := c.config.GetInt("GRID_COUNT")
	if gridCount == 0 {
		gridCount = c.config.GetInt(keyGridCount)
	}

	return gridCount
}

func (c *Config) GetGridCanvasSize() int {
	canvasSize := c.config.GetInt("GRID_CANVAS_SIZE")
	if canvasSize == 0 {
		canvasSize = c.config.GetInt(keyGridCanvasSize)
	}

	return canvasSize
}

// GetDefaultMinutes is used when the duration entry is left empty.
func (c *Config) GetDefaultMinutes() float64 {
	defaultMinutes := c.config.GetFloat64("TIMER_DEFAULT_MINUTES")
	if defaultMinutes == 0 {
		defaultMinutes = c.config.GetFloat64(keyDefaultMinutes)
	}

	return defaultMinutes
}

func (c *Config) GetRefreshInterval() time.Duration {
	refreshIntervalMs := c.config.GetInt("TIMER_REFRESH_INTERVAL_MS")
	if refreshIntervalMs == 0 {
		refreshIntervalMs = c.config.GetInt(keyRefreshInterval)
	}

	return time.Duration(refreshIntervalMs) * time.Millisecond
}

func (c *Config) GetLogLevel() string {
	logLevel := c.config.GetString("LOG_LEVEL")
	if len(logLevel) == 0 {
		logLevel = c.config.GetString(keyLogLevel)
	}

	return logLevel
}

func getProjectRoot() (string, error) {
	currentDir, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("failed to get current working directory: %w", err)
	}

	for {
		configDir := filepath.Join(currentDir, "config")
		if info, err := os.Stat(configDir); err == nil && info.IsDir() {
			return currentDir, nil
		}

		parent := filepath.Dir(currentDir)

		if parent == currentDir {
			break
		}

		currentDir = parent
	}

	return "", fmt.Errorf("could not find project root (directory containing 'config' folder)")
}

func getConfigPath(env string) (string, error) {
	configFile := fmt.Sprintf("config.%s.yaml", env)

	projectRoot, err := getProjectRoot()
	if err != nil {
		slog.Warn("failed to find project root with config directory, will use environment variables instead", "err", err.Error())
		return "", fmt.Errorf("failed to find project root: %w", err)
	}
	configPath := filepath.Join(projectRoot, "config", configFile)
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		slog.Warn("failed to find config file within config directory, will use environment variables instead", "err", err.Error())
		return "", fmt.Errorf("config file does not exist: %s", configPath)
	}

	return configPath, nil
}
