package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
)

const (
	// APIKeyEnv holds the completion API credential. It wins over the profile key.
	APIKeyEnv  = "GROQ_API_KEY"
	BaseURLEnv = "GROQ_BASE_URL"
	ModelEnv   = "LOFISTUDIO_MODEL"
	HomeEnv    = "LOFISTUDIO_HOME"

	LogLevelEnv = "LOFISTUDIO_LOG_LEVEL"
	LogFileEnv  = "LOFISTUDIO_LOG_FILE"

	DefaultProfile = "default"
)

type Profile struct {
	APIKey  string `json:"api_key"`
	BaseURL string `json:"base_url,omitempty"`
	Model   string `json:"model,omitempty"`
}

type Config struct {
	Profiles      map[string]Profile `json:"profiles"`
	ActiveProfile string             `json:"active_profile"`

	// Env overrides, never written back to the profile file.
	envAPIKey  string
	envBaseURL string
	envModel   string

	LogLevel string `json:"-"`
	LogFile  string `json:"-"`

	currentProfile *Profile
}

// New builds an in-memory config holding a single active profile.
func New(name string, profile Profile) *Config {
	cfg := &Config{
		Profiles:      map[string]Profile{name: profile},
		ActiveProfile: name,
	}
	_ = cfg.setCurrentProfile()
	return cfg
}

func LoadConfig() (*Config, error) {
	// A missing .env is fine, the variables may come from the shell.
	_ = godotenv.Load()

	configPath, err := getConfigPath()
	if err != nil {
		return nil, fmt.Errorf("failed to get config path: %w", err)
	}

	if err := ensureConfigDir(configPath); err != nil {
		return nil, fmt.Errorf("failed to create config directory: %w", err)
	}

	config, err := loadConfigFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	if err := config.setCurrentProfile(); err != nil {
		return nil, fmt.Errorf("failed to set current profile: %w", err)
	}

	config.applyEnv()

	return config, nil
}

func (c *Config) applyEnv() {
	c.envAPIKey = strings.TrimSpace(os.Getenv(APIKeyEnv))
	c.envBaseURL = strings.TrimSpace(os.Getenv(BaseURLEnv))
	c.envModel = strings.TrimSpace(os.Getenv(ModelEnv))
	c.LogLevel = getEnv(LogLevelEnv, "info")
	c.LogFile = os.Getenv(LogFileEnv)
}

// UseProfile switches the active profile for this process only.
func (c *Config) UseProfile(name string) error {
	if _, exists := c.Profiles[name]; !exists {
		return fmt.Errorf("profile '%s' does not exist", name)
	}
	c.ActiveProfile = name
	return c.setCurrentProfile()
}

// OverrideModel replaces the model for this process only.
func (c *Config) OverrideModel(model string) {
	if model = strings.TrimSpace(model); model != "" {
		c.envModel = model
	}
}

func (c *Config) IsValid() bool {
	return c.GetAPIKey() != ""
}

func (c *Config) GetAPIKey() string {
	if c.envAPIKey != "" {
		return c.envAPIKey
	}
	if c.currentProfile == nil {
		return ""
	}
	return strings.TrimSpace(c.currentProfile.APIKey)
}

// GetModel returns "" when nothing is configured, leaving the default to the client.
func (c *Config) GetModel() string {
	if c.envModel != "" {
		return c.envModel
	}
	if c.currentProfile == nil {
		return ""
	}
	return c.currentProfile.Model
}

func (c *Config) GetBaseURL() string {
	if c.envBaseURL != "" {
		return c.envBaseURL
	}
	if c.currentProfile == nil {
		return ""
	}
	return c.currentProfile.BaseURL
}

// Dir is where the profile file and the default log file live.
func Dir() (string, error) {
	configPath, err := getConfigPath()
	if err != nil {
		return "", err
	}
	return filepath.Dir(configPath), nil
}

func getConfigPath() (string, error) {
	var configDir string

	if home := os.Getenv(HomeEnv); home != "" {
		configDir = home
	} else {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		configDir = homeDir
	}

	return filepath.Join(configDir, ".lofistudio", "config.json"), nil
}

func ensureConfigDir(configPath string) error {
	configDir := filepath.Dir(configPath)
	return os.MkdirAll(configDir, 0755)
}

func loadConfigFile(configPath string) (*Config, error) {
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return createDefaultConfig(configPath)
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, err
	}

	var config Config
	if err := json.Unmarshal(data, &config); err != nil {
		return nil, err
	}

	return &config, nil
}

func createDefaultConfig(configPath string) (*Config, error) {
	config := &Config{
		Profiles: map[string]Profile{
			DefaultProfile: {},
		},
		ActiveProfile: DefaultProfile,
	}

	if err := saveConfig(config, configPath); err != nil {
		return nil, err
	}

	return config, nil
}

func saveConfig(config *Config, configPath string) error {
	data, err := json.MarshalIndent(config, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(configPath, data, 0600)
}

func (c *Config) Save() error {
	configPath, err := getConfigPath()
	if err != nil {
		return fmt.Errorf("failed to get config path: %w", err)
	}

	return saveConfig(c, configPath)
}

func (c *Config) setCurrentProfile() error {
	if len(c.Profiles) == 0 {
		return fmt.Errorf("no profiles defined")
	}

	profile, exists := c.Profiles[c.ActiveProfile]
	if !exists {
		// Fall back to the default profile, then to any profile.
		if p, ok := c.Profiles[DefaultProfile]; ok {
			c.ActiveProfile = DefaultProfile
			profile = p
		} else {
			for name, p := range c.Profiles {
				c.ActiveProfile = name
				profile = p
				break
			}
		}
	}

	c.currentProfile = &profile
	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
