package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestDefaults(t *testing.T) {
	cfg := Defaults()

	assert.Equal(t, ".", cfg.DataDir)
	assert.Equal(t, "students.csv", cfg.Files.Students)
	assert.Equal(t, "instructors.csv", cfg.Files.Instructors)
	assert.Equal(t, "courses.csv", cfg.Files.Courses)
	assert.False(t, cfg.Debug)
	assert.Equal(t, "registrar.log", cfg.DebugLog)
	assert.Equal(t, 1*time.Second, cfg.Watch.Debounce)
}

func TestConfig_Paths(t *testing.T) {
	cfg := Defaults()
	cfg.DataDir = "/data"

	assert.Equal(t, filepath.Join("/data", "students.csv"), cfg.StudentsPath())
	assert.Equal(t, filepath.Join("/data", "instructors.csv"), cfg.InstructorsPath())
	assert.Equal(t, filepath.Join("/data", "courses.csv"), cfg.CoursesPath())
	assert.Equal(t, []string{"students.csv", "instructors.csv", "courses.csv"}, cfg.DataFileNames())
}

func TestDefaultConfigTemplate_ParsesToDefaults(t *testing.T) {
	// The commented template and Defaults() must agree.
	var cfg struct {
		DataDir string `yaml:"data_dir"`
		Files   struct {
			Students    string `yaml:"students"`
			Instructors string `yaml:"instructors"`
			Courses     string `yaml:"courses"`
		} `yaml:"files"`
		Debug    bool   `yaml:"debug"`
		DebugLog string `yaml:"debug_log"`
	}
	err := yaml.Unmarshal([]byte(DefaultConfigTemplate()), &cfg)
	require.NoError(t, err)

	defaults := Defaults()
	assert.Equal(t, defaults.DataDir, cfg.DataDir)
	assert.Equal(t, defaults.Files.Students, cfg.Files.Students)
	assert.Equal(t, defaults.Files.Instructors, cfg.Files.Instructors)
	assert.Equal(t, defaults.Files.Courses, cfg.Files.Courses)
	assert.Equal(t, defaults.Debug, cfg.Debug)
	assert.Equal(t, defaults.DebugLog, cfg.DebugLog)
}

func TestWriteDefaultConfig_CreatesFileAndDirectory(t *testing.T) {
	tempDir := t.TempDir()
	configPath := filepath.Join(tempDir, ".registrar", "config.yaml")

	err := WriteDefaultConfig(configPath)
	require.NoError(t, err)

	data, err := os.ReadFile(configPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), "data_dir: .")
	assert.Contains(t, string(data), "students: students.csv")
	assert.Contains(t, string(data), "# registrar configuration")
}

func TestSaveDataDir_CreatesNewFile(t *testing.T) {
	tempDir := t.TempDir()
	configPath := filepath.Join(tempDir, "config.yaml")

	err := SaveDataDir(configPath, "/srv/roster")
	require.NoError(t, err)

	data, err := os.ReadFile(configPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), "data_dir: /srv/roster")
}

func TestSaveDataDir_UpdatesExistingKey(t *testing.T) {
	tempDir := t.TempDir()
	configPath := filepath.Join(tempDir, "config.yaml")
	err := os.WriteFile(configPath, []byte("data_dir: ./old\ndebug: true\n"), 0644)
	require.NoError(t, err)

	err = SaveDataDir(configPath, "./new")
	require.NoError(t, err)

	data, err := os.ReadFile(configPath)
	require.NoError(t, err)
	content := string(data)
	assert.Contains(t, content, "data_dir: ./new")
	assert.NotContains(t, content, "./old")
	assert.Contains(t, content, "debug: true")
}

func TestSaveDataDir_PreservesComments(t *testing.T) {
	tempDir := t.TempDir()
	configPath := filepath.Join(tempDir, "config.yaml")

	err := WriteDefaultConfig(configPath)
	require.NoError(t, err)

	err = SaveDataDir(configPath, "/srv/roster")
	require.NoError(t, err)

	data, err := os.ReadFile(configPath)
	require.NoError(t, err)
	content := string(data)
	assert.Contains(t, content, "data_dir: /srv/roster")
	assert.Contains(t, content, "# registrar configuration")
	assert.Contains(t, content, "# Watch mode coalesces")
}

func TestSaveDataDir_AppendsMissingKey(t *testing.T) {
	tempDir := t.TempDir()
	configPath := filepath.Join(tempDir, "config.yaml")
	err := os.WriteFile(configPath, []byte("debug: false\n"), 0644)
	require.NoError(t, err)

	err = SaveDataDir(configPath, "/srv/roster")
	require.NoError(t, err)

	data, err := os.ReadFile(configPath)
	require.NoError(t, err)
	content := string(data)
	assert.Contains(t, content, "debug: false")
	assert.Contains(t, content, "data_dir: /srv/roster")
}
