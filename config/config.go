package config

import (
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const ENV_FILE = ".env"
const CONFIG_FILE = "config.yaml"

type AppConfig struct {
	Logging               LoggingConfig      `yaml:"logging"`
	GeminiModel           string             `yaml:"gemini_model"`
	DataDir               string             `yaml:"data_dir"`
	API                   APIConfig          `yaml:"api"`
	SummaryTimeoutSeconds int                `yaml:"summary_timeout_seconds"`
	SummaryQuota          SummaryQuotaConfig `yaml:"summary_quota"`
}

type LoggingConfig struct {
	Level string `yaml:"level"`
}

type APIConfig struct {
	Addr string `yaml:"addr"`
}

// SummaryQuotaConfig bounds the LLM calls made for report summaries.
// Values of 0 or below mean no limit in that direction.
type SummaryQuotaConfig struct {
	// RequestsPerMinute spaces out summary calls within a minute.
	RequestsPerMinute int `yaml:"requests_per_minute"`

	// RequestsPerDay caps summary calls per UTC day.
	RequestsPerDay int `yaml:"requests_per_day"`
}

var config *AppConfig

func InitApp() {
	// load environment variables
	godotenv.Load(filepath.Join(GetBasePath(), ENV_FILE))

	// load configuration file
	data, err := os.ReadFile(filepath.Join(GetBasePath(), CONFIG_FILE))
	if err != nil {
		panic(err)
	}

	var c AppConfig
	err = yaml.Unmarshal(data, &c)
	if err != nil {
		panic(err)
	}

	applyDefaults(&c)
	config = &c
}

func applyDefaults(c *AppConfig) {
	if c.GeminiModel == "" {
		c.GeminiModel = "gemini-2.0-flash"
	}
	if c.DataDir == "" {
		c.DataDir = "data"
	}
	if c.API.Addr == "" {
		c.API.Addr = ":8080"
	}
	if c.SummaryTimeoutSeconds <= 0 {
		c.SummaryTimeoutSeconds = 30
	}
}

func GetConfig() AppConfig {
	if config == nil {
		InitApp()
	}

	return *config
}

// DataPath resolves the photo/report directory against the base path.
func DataPath() string {
	cfg := GetConfig()
	if filepath.IsAbs(cfg.DataDir) {
		return cfg.DataDir
	}
	return filepath.Join(GetBasePath(), cfg.DataDir)
}

func GetBasePath() string {
	cwd, err := os.Getwd()
	if err != nil {
		return ""
	}

	dir := cwd
	for {
		cfgPath := filepath.Join(dir, CONFIG_FILE)
		if info, err := os.Stat(cfgPath); err == nil && !info.IsDir() {
			return dir
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	return ""
}
