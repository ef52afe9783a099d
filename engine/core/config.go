package core

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"github.com/mitchellh/go-homedir"
	"github.com/pelletier/go-toml/v2"
)

const (
	DefaultConfigFile   = "bridge.toml"
	DefaultDataFileName = "it_export_dataFile.ini"
	DefaultDataDir      = "config"
	DefaultLogLevel     = "info"
)

// Config holds the settings shared by the exporter and the populator.
type Config struct {
	Data   DataConfig   `toml:"data"`
	Viewer ViewerConfig `toml:"viewer"`
	Log    LogConfig    `toml:"log"`
}

type DataConfig struct {
	// File is the shared transform data file. "~" is expanded.
	File string `toml:"file"`
}

type ViewerConfig struct {
	// Command is the program used to open the data file, parsed shell-style.
	Command string `toml:"command"`
}

type LogConfig struct {
	Level string `toml:"level"`
}

// Overrides carries values given on the command line. Empty fields leave the
// configuration untouched.
type Overrides struct {
	DataFile string
	Viewer   string
	LogLevel string
}

// DefaultConfig returns the configuration used when no file is present.
func DefaultConfig() Config {
	return Config{
		Data:   DataConfig{File: defaultDataFile()},
		Viewer: ViewerConfig{Command: defaultViewer()},
		Log:    LogConfig{Level: DefaultLogLevel},
	}
}

// LoadConfig reads a TOML configuration. A missing file yields the defaults;
// fields absent from the file keep their default values.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
	}
	return cfg, nil
}

// Resolve applies the overrides and expands the data file path.
func (c *Config) Resolve(o Overrides) error {
	if o.DataFile != "" {
		c.Data.File = o.DataFile
	}
	if o.Viewer != "" {
		c.Viewer.Command = o.Viewer
	}
	if o.LogLevel != "" {
		c.Log.Level = o.LogLevel
	}
	if c.Data.File == "" {
		c.Data.File = defaultDataFile()
	}

	p, err := homedir.Expand(c.Data.File)
	if err != nil {
		return fmt.Errorf("config: expand %s: %w", c.Data.File, err)
	}
	c.Data.File = filepath.Clean(p)
	return nil
}

// defaultDataFile locates the data file next to the installed tool.
func defaultDataFile() string {
	dir := "."
	if exe, err := os.Executable(); err == nil {
		dir = filepath.Dir(exe)
	}
	return filepath.Join(dir, DefaultDataDir, DefaultDataFileName)
}

func defaultViewer() string {
	switch runtime.GOOS {
	case "windows":
		return "notepad.exe"
	case "darwin":
		return "open -t"
	default:
		return "xdg-open"
	}
}
