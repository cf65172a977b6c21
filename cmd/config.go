package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"myexplorer/domain"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Env variable names.
const (
	envHTTPPort   = "SERVICE_PORT_HTTP"
	envGRPCPort   = "SERVICE_PORT_GRPC"
	envConfigPath = "CONFIG_PATH"
	envFile       = "ENV_FILE"
)

// Source types of source.type.
const (
	sourceHTTP  = "http"
	sourceRedis = "redis"
)

// Defaults applied when the YAML leaves a field unset.
const (
	defaultPageSize        = 100
	defaultRequestTimeout  = 5 * time.Second
	defaultPollInterval    = 5 * time.Second
	defaultRefreshInterval = time.Minute
)

// Config holds the explorer configuration loaded by LoadConfig from environment variables and the YAML file.
// HTTPPort and GRPCPort come from SERVICE_PORT_HTTP and SERVICE_PORT_GRPC; everything else from the YAML at CONFIG_PATH.
type Config struct {
	HTTPPort        int
	GRPCPort        int
	Region          string
	Source          SourceConfig
	Filter          domain.InstanceFilter
	PollInterval    time.Duration
	RefreshInterval time.Duration
}

// SourceConfig selects and configures the instance source. BaseURL is used by the http source;
// RedisAddr and KeyPrefix by the redis source. PageSize and RequestTimeout apply to both.
type SourceConfig struct {
	Type           string
	BaseURL        string
	RedisAddr      string
	KeyPrefix      string
	PageSize       int
	RequestTimeout time.Duration
}

// yamlConfig is the root struct for YAML unmarshalling.
type yamlConfig struct {
	Region  string       `yaml:"region"`
	Source  yamlSource   `yaml:"source"`
	Filter  yamlFilter   `yaml:"filter"`
	Polling yamlInterval `yaml:"polling"`
	Refresh yamlInterval `yaml:"refresh"`
}

type yamlSource struct {
	Type             string `yaml:"type"`
	BaseURL          string `yaml:"base_url"`
	RedisAddr        string `yaml:"redis_addr"`
	KeyPrefix        string `yaml:"key_prefix"`
	PageSize         int    `yaml:"page_size"`
	RequestTimeoutMs int    `yaml:"request_timeout_ms"`
}

type yamlFilter struct {
	States []string `yaml:"states"`
}

type yamlInterval struct {
	IntervalMs int `yaml:"interval_ms"`
}

// loadYAMLConfig reads and unmarshals the YAML file at path. Unknown fields are an error.
func loadYAMLConfig(path string) (*yamlConfig, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	var out yamlConfig
	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err := dec.Decode(&out); err != nil {
		return nil, err
	}
	return &out, nil
}

// LoadConfig builds the explorer config. When ENV_FILE is set the file is loaded first with godotenv; variables
// already present in the environment win. SERVICE_PORT_HTTP, SERVICE_PORT_GRPC (1-65535) and CONFIG_PATH are
// required. The YAML must name a region and a source: type http needs base_url, type redis needs redis_addr.
// Millisecond fields must not be negative; zero or absent means the default.
//
// Returns: (*Config, nil) on success; (nil, error) describing the first invalid setting.
//
// Called only from main at startup.
func LoadConfig() (*Config, error) {
	if path := strings.TrimSpace(os.Getenv(envFile)); path != "" {
		if err := godotenv.Load(path); err != nil {
			return nil, fmt.Errorf("load %s %s: %w", envFile, path, err)
		}
	}
	httpPort, err := portFromEnv(envHTTPPort)
	if err != nil {
		return nil, err
	}
	grpcPort, err := portFromEnv(envGRPCPort)
	if err != nil {
		return nil, err
	}
	if httpPort == grpcPort {
		return nil, fmt.Errorf("%s and %s must differ, both are %d", envHTTPPort, envGRPCPort, httpPort)
	}
	configPath := strings.TrimSpace(os.Getenv(envConfigPath))
	if configPath == "" {
		return nil, fmt.Errorf("%s is required", envConfigPath)
	}
	if !filepath.IsAbs(configPath) {
		abs, absErr := filepath.Abs(configPath)
		if absErr != nil {
			return nil, absErr
		}
		configPath = abs
	}
	raw, err := loadYAMLConfig(configPath)
	if err != nil {
		return nil, fmt.Errorf("load config %s: %w", configPath, err)
	}

	region := strings.TrimSpace(raw.Region)
	if region == "" {
		return nil, fmt.Errorf("region is required")
	}
	source, err := toSourceConfig(raw.Source)
	if err != nil {
		return nil, err
	}
	var filter domain.InstanceFilter
	for _, s := range raw.Filter.States {
		state := strings.TrimSpace(s)
		if state == "" {
			return nil, fmt.Errorf("filter.states must not contain empty entries")
		}
		filter.States = append(filter.States, domain.InstanceStatus(state))
	}
	pollInterval, err := millis("polling.interval_ms", raw.Polling.IntervalMs, defaultPollInterval)
	if err != nil {
		return nil, err
	}
	refreshInterval, err := millis("refresh.interval_ms", raw.Refresh.IntervalMs, defaultRefreshInterval)
	if err != nil {
		return nil, err
	}
	return &Config{
		HTTPPort:        httpPort,
		GRPCPort:        grpcPort,
		Region:          region,
		Source:          source,
		Filter:          filter,
		PollInterval:    pollInterval,
		RefreshInterval: refreshInterval,
	}, nil
}

func toSourceConfig(raw yamlSource) (SourceConfig, error) {
	cfg := SourceConfig{
		Type:      strings.TrimSpace(raw.Type),
		BaseURL:   strings.TrimSuffix(strings.TrimSpace(raw.BaseURL), "/"),
		RedisAddr: strings.TrimSpace(raw.RedisAddr),
		KeyPrefix: strings.TrimSpace(raw.KeyPrefix),
		PageSize:  raw.PageSize,
	}
	switch cfg.Type {
	case sourceHTTP:
		if cfg.BaseURL == "" {
			return cfg, fmt.Errorf("source.base_url is required for source type %s", sourceHTTP)
		}
	case sourceRedis:
		if cfg.RedisAddr == "" {
			return cfg, fmt.Errorf("source.redis_addr is required for source type %s", sourceRedis)
		}
	default:
		return cfg, fmt.Errorf("source.type must be %s|%s, got %q", sourceHTTP, sourceRedis, cfg.Type)
	}
	if cfg.PageSize < 0 {
		return cfg, fmt.Errorf("source.page_size must not be negative, got %d", cfg.PageSize)
	}
	if cfg.PageSize == 0 {
		cfg.PageSize = defaultPageSize
	}
	timeout, err := millis("source.request_timeout_ms", raw.RequestTimeoutMs, defaultRequestTimeout)
	if err != nil {
		return cfg, err
	}
	cfg.RequestTimeout = timeout
	return cfg, nil
}

func portFromEnv(name string) (int, error) {
	v := strings.TrimSpace(os.Getenv(name))
	port, err := strconv.Atoi(v)
	if err != nil || v == "" {
		return 0, fmt.Errorf("%s must be a valid port (1-65535)", name)
	}
	if port <= 0 || port > 65535 {
		return 0, fmt.Errorf("%s must be 1-65535, got %d", name, port)
	}
	return port, nil
}

func millis(field string, ms int, def time.Duration) (time.Duration, error) {
	if ms < 0 {
		return 0, fmt.Errorf("%s must not be negative, got %d", field, ms)
	}
	if ms == 0 {
		return def, nil
	}
	return time.Duration(ms) * time.Millisecond, nil
}
