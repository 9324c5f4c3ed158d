package entities

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	logger "github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

const (
	defaultProvider   = "github"
	defaultAPIBaseURL = "https://api.github.com/"
	defaultCacheSize  = 128
)

// Settings is the top-level configuration for readmegen.
type Settings struct {
	Provider    string        `yaml:"provider"`     // data source name, only "github" is registered
	APIBaseURL  string        `yaml:"api_base_url"` // inline or ${ENV_VAR}
	CacheSize   int           `yaml:"cache_size"`   // file bodies kept in memory
	HTTPTimeout time.Duration `yaml:"http_timeout"` // 0 keeps the transport default
}

// envVarPattern matches ${VAR_NAME} placeholders.
var envVarPattern = regexp.MustCompile(`\$\{([^}]+)}`)

// NewDefaultSettings returns the settings used when no config file exists.
func NewDefaultSettings() *Settings {
	return &Settings{
		Provider:   defaultProvider,
		APIBaseURL: defaultAPIBaseURL,
		CacheSize:  defaultCacheSize,
	}
}

// NewSettings reads and parses a configuration file, expanding environment
// variables and filling in defaults for anything left blank.
func NewSettings(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %q: %w", path, err)
	}

	settings := NewDefaultSettings()
	if unmarshalErr := yaml.Unmarshal(data, settings); unmarshalErr != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", unmarshalErr)
	}

	settings.APIBaseURL = expandEnv(settings.APIBaseURL)
	settings.applyDefaults()

	if validateErr := settings.validate(); validateErr != nil {
		return nil, validateErr
	}

	return settings, nil
}

// LoadSettings loads the given config file, or the first one found in the
// standard locations. Without any config file the defaults are returned.
func LoadSettings(path string) (*Settings, error) {
	if path != "" {
		return NewSettings(path)
	}

	found, err := FindConfigFile()
	if err != nil {
		logger.Debugf("No config file found, using defaults: %v", err)
		return NewDefaultSettings(), nil
	}

	logger.Debugf("Using config file: %s", found)
	return NewSettings(found)
}

// configFileNames are tried in each search directory, in this order.
var configFileNames = []string{
	".readmegen.yaml",
	".readmegen.yml",
	"readmegen.yaml",
	"readmegen.yml",
}

// configSearchDirs lists the directories searched for a config file, the
// working directory first and the home directory last.
func configSearchDirs() []string {
	dirs := []string{".", ".config", "configs"}
	if home, err := os.UserHomeDir(); err == nil && home != "" {
		dirs = append(dirs, home, filepath.Join(home, ".config"))
	}
	return dirs
}

// FindConfigFile returns the first regular config file found in the search directories.
func FindConfigFile() (string, error) {
	dirs := configSearchDirs()
	for _, dir := range dirs {
		for _, name := range configFileNames {
			candidate := filepath.Join(dir, name)
			if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
				return candidate, nil
			}
		}
	}
	return "", fmt.Errorf("no config file named %s in %s",
		strings.Join(configFileNames, ", "), strings.Join(dirs, ", "))
}

// expandEnv replaces ${ENV_VAR} references with their values.
func expandEnv(raw string) string {
	if raw == "" {
		return raw
	}

	return envVarPattern.ReplaceAllStringFunc(raw, func(match string) string {
		varName := envVarPattern.FindStringSubmatch(match)[1]
		if val := os.Getenv(varName); val != "" {
			return val
		}
		logger.Warnf("Environment variable %q is not set", varName)
		return ""
	})
}

func (s *Settings) applyDefaults() {
	if s.Provider == "" {
		s.Provider = defaultProvider
	}
	if s.APIBaseURL == "" {
		s.APIBaseURL = defaultAPIBaseURL
	}
	if s.CacheSize <= 0 {
		s.CacheSize = defaultCacheSize
	}
}

// validate checks for configuration values that cannot work.
func (s *Settings) validate() error {
	if s.HTTPTimeout < 0 {
		return fmt.Errorf("http_timeout must not be negative, got %s", s.HTTPTimeout)
	}
	return nil
}
