// Package config provides configuration types, defaults, and persistence
// for registrar.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/zjrosen/registrar/internal/log"
)

// FilesConfig names the three roster data files inside the data directory.
type FilesConfig struct {
	Students    string `mapstructure:"students"`
	Instructors string `mapstructure:"instructors"`
	Courses     string `mapstructure:"courses"`
}

// WatchConfig holds watch-mode options.
type WatchConfig struct {
	// Debounce coalesces rapid file writes into one refresh.
	Debounce time.Duration `mapstructure:"debounce"`
}

// Config holds all configuration options for registrar.
type Config struct {
	DataDir  string      `mapstructure:"data_dir"`
	Files    FilesConfig `mapstructure:"files"`
	Debug    bool        `mapstructure:"debug"`
	DebugLog string      `mapstructure:"debug_log"`
	Watch    WatchConfig `mapstructure:"watch"`
}

// Defaults returns the built-in configuration.
func Defaults() Config {
	return Config{
		DataDir: ".",
		Files: FilesConfig{
			Students:    "students.csv",
			Instructors: "instructors.csv",
			Courses:     "courses.csv",
		},
		Debug:    false,
		DebugLog: "registrar.log",
		Watch: WatchConfig{
			Debounce: 1 * time.Second,
		},
	}
}

// StudentsPath returns the absolute or data-dir-relative students file path.
func (c Config) StudentsPath() string {
	return filepath.Join(c.DataDir, c.Files.Students)
}

// InstructorsPath returns the instructors file path.
func (c Config) InstructorsPath() string {
	return filepath.Join(c.DataDir, c.Files.Instructors)
}

// CoursesPath returns the courses file path.
func (c Config) CoursesPath() string {
	return filepath.Join(c.DataDir, c.Files.Courses)
}

// DataFileNames returns the configured file basenames, used by watch mode
// to decide which filesystem events matter.
func (c Config) DataFileNames() []string {
	return []string{c.Files.Students, c.Files.Instructors, c.Files.Courses}
}

// DefaultConfigTemplate returns the commented YAML written on first run.
func DefaultConfigTemplate() string {
	return `# registrar configuration
#
# Directory holding the three roster data files.
data_dir: .

# File names inside data_dir. The formats are fixed; only the names move.
files:
  students: students.csv
  instructors: instructors.csv
  courses: courses.csv

# Structured debug logging. Also enabled by --debug or REGISTRAR_DEBUG=1.
debug: false
debug_log: registrar.log

# Watch mode coalesces rapid file writes into one schedule refresh.
watch:
  debounce: 1s
`
}

// WriteDefaultConfig creates a config file at the given path with default settings and comments.
// Creates the parent directory if it doesn't exist.
func WriteDefaultConfig(configPath string) error {
	log.Debug(log.CatConfig, "Writing default config", "path", configPath)

	dir := filepath.Dir(configPath)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		log.ErrorErr(log.CatConfig, "Failed to create config directory", err, "dir", dir)
		return fmt.Errorf("creating config directory: %w", err)
	}

	if err := os.WriteFile(configPath, []byte(DefaultConfigTemplate()), 0o600); err != nil {
		log.ErrorErr(log.CatConfig, "Failed to write config file", err, "path", configPath)
		return fmt.Errorf("writing config file: %w", err)
	}

	log.Info(log.CatConfig, "Created default config", "path", configPath)
	return nil
}
