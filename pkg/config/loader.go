package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Loader 配置加载器
type Loader struct {
	// searchPaths 配置文件搜索路径
	searchPaths []string
	// envPrefix 环境变量前缀
	envPrefix string
	// defaultConfig 默认配置
	defaultConfig *Config
}

// NewLoader 创建配置加载器
func NewLoader() *Loader {
	return &Loader{
		searchPaths: []string{
			".",
			"./config",
			"./configs",
		},
		envPrefix:     "ROUTER",
		defaultConfig: DefaultConfig(),
	}
}

// SetSearchPaths 设置配置文件搜索路径
func (l *Loader) SetSearchPaths(paths []string) *Loader {
	l.searchPaths = paths
	return l
}

// SetEnvPrefix 设置环境变量前缀
func (l *Loader) SetEnvPrefix(prefix string) *Loader {
	l.envPrefix = prefix
	return l
}

// SetDefaultConfig 设置默认配置
func (l *Loader) SetDefaultConfig(config *Config) *Loader {
	l.defaultConfig = config
	return l
}

// Load 加载配置
// filename 为空时只应用默认值与环境变量覆盖
func (l *Loader) Load(filename string) (*Config, error) {
	config := l.defaultConfig
	if config == nil {
		config = DefaultConfig()
	}
	cfg := *config

	if filename != "" {
		if err := l.loadFromFile(filename, &cfg); err != nil {
			return nil, fmt.Errorf("failed to load config from file %s: %w", filename, err)
		}
	}

	if err := l.loadFromEnv(&cfg); err != nil {
		return nil, fmt.Errorf("failed to load config from environment: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return &cfg, nil
}

// Find 在搜索路径中查找配置文件
func (l *Loader) Find(name string) (string, error) {
	for _, dir := range l.searchPaths {
		path := filepath.Join(dir, name)
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			return path, nil
		}
	}
	return "", fmt.Errorf("%w: %s", ErrConfigFileNotFound, name)
}

// loadFromFile 按扩展名解析配置文件
func (l *Loader) loadFromFile(filename string, cfg *Config) error {
	data, err := os.ReadFile(filename)
	if err != nil {
		return err
	}

	switch strings.ToLower(filepath.Ext(filename)) {
	case ".yaml", ".yml":
		return yaml.Unmarshal(data, cfg)
	case ".json":
		return json.Unmarshal(data, cfg)
	default:
		return fmt.Errorf("%w: %s", ErrUnsupportedFormat, filepath.Ext(filename))
	}
}

// loadFromEnv 使用环境变量覆盖配置
// 识别 <PREFIX>_NAME、<PREFIX>_MAILBOX_CAPACITY、
// <PREFIX>_EVENT_BUFFER_SIZE、<PREFIX>_LOG_LEVEL
func (l *Loader) loadFromEnv(cfg *Config) error {
	if v := os.Getenv(l.envPrefix + "_NAME"); v != "" {
		cfg.Name = v
	}
	if v := os.Getenv(l.envPrefix + "_MAILBOX_CAPACITY"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid %s_MAILBOX_CAPACITY: %w", l.envPrefix, err)
		}
		cfg.MailboxCapacity = n
	}
	if v := os.Getenv(l.envPrefix + "_EVENT_BUFFER_SIZE"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid %s_EVENT_BUFFER_SIZE: %w", l.envPrefix, err)
		}
		cfg.EventBufferSize = n
	}
	if v := os.Getenv(l.envPrefix + "_LOG_LEVEL"); v != "" {
		cfg.LogLevel = LogLevel(strings.ToLower(v))
	}
	return nil
}
