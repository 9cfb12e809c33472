// Package cmd wires the registrar CLI: command definitions, configuration
// loading, and construction of the registry with its file-backed stores.
package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/zjrosen/registrar/internal/config"
	"github.com/zjrosen/registrar/internal/domain/roster"
	"github.com/zjrosen/registrar/internal/infrastructure/csvfile"
	"github.com/zjrosen/registrar/internal/log"
)

var (
	version    = "dev"
	cfgFile    string
	cfg        config.Config
	logCleanup func()
)

var rootCmd = &cobra.Command{
	Use:   "registrar",
	Short: "A record keeper for students, instructors, and courses",
	Long: `registrar manages student, instructor, and course records for a small
academic institution: create, find, and remove records, enroll and drop
students, detect schedule clashes, and keep everything in flat delimited
files. Running registrar with no subcommand executes the embedded demo
scenario against the configured data directory.`,
	Version:           version,
	PersistentPreRunE: setupLogging,
	PersistentPostRun: teardownLogging,
	RunE:              runDemo,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "",
		"config file (default: ~/.config/registrar/config.yaml)")
	rootCmd.PersistentFlags().StringP("data", "d", "",
		"directory holding the roster data files")
	rootCmd.PersistentFlags().Bool("debug", false,
		"enable debug logging to the configured log file")

	// Bind flags to viper
	_ = viper.BindPFlag("data_dir", rootCmd.PersistentFlags().Lookup("data"))
	_ = viper.BindPFlag("debug", rootCmd.PersistentFlags().Lookup("debug"))
}

func initConfig() {
	defaults := config.Defaults()
	viper.SetDefault("data_dir", defaults.DataDir)
	viper.SetDefault("files.students", defaults.Files.Students)
	viper.SetDefault("files.instructors", defaults.Files.Instructors)
	viper.SetDefault("files.courses", defaults.Files.Courses)
	viper.SetDefault("debug", defaults.Debug)
	viper.SetDefault("debug_log", defaults.DebugLog)
	viper.SetDefault("watch.debounce", defaults.Watch.Debounce)

	viper.SetEnvPrefix("registrar")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		// Config lookup order:
		// 1. .registrar/config.yaml (current directory)
		// 2. ~/.config/registrar/config.yaml (user config)
		if _, err := os.Stat(".registrar/config.yaml"); err == nil {
			viper.SetConfigFile(".registrar/config.yaml")
		} else {
			home, _ := os.UserHomeDir()
			viper.AddConfigPath(filepath.Join(home, ".config", "registrar"))
			viper.SetConfigName("config")
			viper.SetConfigType("yaml")
		}
	}

	if err := viper.ReadInConfig(); err != nil {
		// No config file found anywhere - create default at .registrar/config.yaml
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			defaultPath := ".registrar/config.yaml"
			if writeErr := config.WriteDefaultConfig(defaultPath); writeErr == nil {
				viper.SetConfigFile(defaultPath)
				_ = viper.ReadInConfig()
			}
			// If write fails, just continue with defaults (no config file)
		} else {
			fmt.Fprintf(os.Stderr, "warning: unreadable config: %v\n", err)
		}
	}

	_ = viper.Unmarshal(&cfg)
}

// setupLogging initializes the debug log when enabled and tags every entry
// stream with a fresh invocation ID so interleaved runs stay separable.
func setupLogging(cmd *cobra.Command, args []string) error {
	if !cfg.Debug {
		return nil
	}
	cleanup, err := log.Init(cfg.DebugLog)
	if err != nil {
		return fmt.Errorf("initializing debug log: %w", err)
	}
	logCleanup = cleanup
	log.Info(log.CatCLI, "Invocation started",
		"id", uuid.NewString(), "command", cmd.Name(), "args", strings.Join(args, " "))
	return nil
}

func teardownLogging(cmd *cobra.Command, args []string) {
	if logCleanup != nil {
		logCleanup()
		logCleanup = nil
	}
}

// stores bundles the three file-backed persistence collaborators.
type stores struct {
	students    *csvfile.StudentFile
	instructors *csvfile.InstructorFile
	courses     *csvfile.CourseFile
}

func newStores() *stores {
	return &stores{
		students:    csvfile.NewStudentFile(cfg.StudentsPath()),
		instructors: csvfile.NewInstructorFile(cfg.InstructorsPath()),
		courses:     csvfile.NewCourseFile(cfg.CoursesPath()),
	}
}

// invalidate drops every cached parse so the next load re-reads the files.
func (s *stores) invalidate() {
	s.students.Invalidate()
	s.instructors.Invalidate()
	s.courses.Invalidate()
}

// openRegistry hydrates a registry from the configured data files.
func openRegistry() (*roster.Registry, *stores, error) {
	s := newStores()
	reg, err := roster.NewRegistry(s.students, s.instructors, s.courses)
	if err != nil {
		return nil, nil, fmt.Errorf("opening registry: %w", err)
	}
	return reg, s, nil
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

// SetVersion sets the version string (called from main with ldflags)
func SetVersion(v string) {
	version = v
	rootCmd.Version = v
}
