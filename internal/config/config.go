// Package config содержит функции для загрузки конфигурации приложения
package config

import (
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// EnvServerBaseURL переопределяет адрес сервера из файла конфигурации
const EnvServerBaseURL = "SERVER_BASE_URL"

// Значения по умолчанию
const (
	DefaultStaticDir = "."
	DefaultLogFile   = "~/.feelmusic.log"
	DefaultSeekStep  = 5 * time.Second
)

// Config структура для хранения конфигурации приложения
type Config struct {
	ServerBaseURL string        `yaml:"server_base_url"`
	StaticDir     string        `yaml:"static_dir"` // Каталог, в котором лежит mock_data
	LogFile       string        `yaml:"log_file"`
	SeekStep      time.Duration `yaml:"seek_step"`
}

// LoadConfig загружает конфигурацию приложения из указанного файла.
// Если файла нет, используются значения по умолчанию.
func LoadConfig(filePath string) (*Config, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, err
	}
	path := strings.Replace(filePath, "~", home, 1)

	config := &Config{}

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, err
	}
	if err == nil {
		if err := yaml.Unmarshal(data, config); err != nil {
			return nil, err
		}
	}

	if baseURL := os.Getenv(EnvServerBaseURL); baseURL != "" {
		config.ServerBaseURL = baseURL
	}

	// Устанавливаем значения по умолчанию, если они не заданы
	if config.StaticDir == "" {
		config.StaticDir = DefaultStaticDir
	}
	if config.LogFile == "" {
		config.LogFile = DefaultLogFile
	}
	if config.SeekStep <= 0 {
		config.SeekStep = DefaultSeekStep
	}

	config.StaticDir = strings.Replace(config.StaticDir, "~", home, 1)
	config.LogFile = strings.Replace(config.LogFile, "~", home, 1)
	config.ServerBaseURL = strings.TrimSuffix(config.ServerBaseURL, "/")

	return config, nil
}
