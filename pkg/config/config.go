// Package config 提供搜索默认参数的本地配置管理
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// SearchConfig 搜索默认配置
type SearchConfig struct {
	// DefaultVariance 默认颜色容差 (0-255)
	DefaultVariance int `json:"default_variance"`
	// MaxMatches FindAll 默认最大匹配数量，<= 0 表示不限制
	MaxMatches int `json:"max_matches"`
	// LogLevel 日志级别 (DEBUG/INFO/WARN/ERROR)
	LogLevel string `json:"log_level"`
	// LogFile 日志文件路径，为空时仅输出到控制台
	LogFile string `json:"log_file"`
}

// DefaultSearchConfig 默认配置: 精确匹配、不限数量、INFO 级别
func DefaultSearchConfig() *SearchConfig {
	return &SearchConfig{
		DefaultVariance: 0,
		MaxMatches:      0,
		LogLevel:        "INFO",
		LogFile:         "",
	}
}

// normalize 修正越界的配置值
func (c *SearchConfig) normalize() {
	if c.DefaultVariance < 0 {
		c.DefaultVariance = 0
	}
	if c.DefaultVariance > 255 {
		c.DefaultVariance = 255
	}
}

// Manager 配置管理器
type Manager struct {
	configDir  string
	configFile string
	mu         sync.RWMutex
}

// NewManager 创建配置管理器，配置存放于 ~/.bitmap-searcher/config.json
func NewManager() *Manager {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		homeDir = "."
	}
	return NewManagerWithDir(filepath.Join(homeDir, ".bitmap-searcher"))
}

// NewManagerWithDir 使用指定目录创建配置管理器
func NewManagerWithDir(configDir string) *Manager {
	return &Manager{
		configDir:  configDir,
		configFile: filepath.Join(configDir, "config.json"),
	}
}

// Load 加载配置，文件不存在时返回默认配置
func (m *Manager) Load() (*SearchConfig, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	data, err := os.ReadFile(m.configFile)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultSearchConfig(), nil
		}
		return DefaultSearchConfig(), fmt.Errorf("读取配置文件失败: %w", err)
	}

	cfg := DefaultSearchConfig()
	if err := json.Unmarshal(data, cfg); err != nil {
		return DefaultSearchConfig(), fmt.Errorf("解析配置文件失败: %w", err)
	}

	cfg.normalize()
	return cfg, nil
}

// Save 保存配置
func (m *Manager) Save(cfg *SearchConfig) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := os.MkdirAll(m.configDir, 0755); err != nil {
		return fmt.Errorf("创建配置目录失败: %w", err)
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("序列化配置失败: %w", err)
	}

	if err := os.WriteFile(m.configFile, data, 0644); err != nil {
		return fmt.Errorf("写入配置文件失败: %w", err)
	}
	return nil
}

// Clear 删除配置文件
func (m *Manager) Clear() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	err := os.Remove(m.configFile)
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("删除配置文件失败: %w", err)
	}
	return nil
}

// Exists 配置文件是否存在
func (m *Manager) Exists() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()

	_, err := os.Stat(m.configFile)
	return err == nil
}

// GetConfigFile 配置文件路径
func (m *Manager) GetConfigFile() string {
	return m.configFile
}

var (
	defaultManager     *Manager
	defaultManagerOnce sync.Once
)

// GetDefaultManager 获取默认配置管理器
func GetDefaultManager() *Manager {
	defaultManagerOnce.Do(func() {
		defaultManager = NewManager()
	})
	return defaultManager
}

// Load 使用默认管理器加载配置
func Load() (*SearchConfig, error) {
	return GetDefaultManager().Load()
}

// Save 使用默认管理器保存配置
func Save(cfg *SearchConfig) error {
	return GetDefaultManager().Save(cfg)
}
