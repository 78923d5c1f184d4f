package config

import (
	"gopkg.in/yaml.v3"
	"os"
)

type Configuration struct {
	Server ServerConfig `yaml:"server"`
}

type ServerConfig struct {
	Port          int           `yaml:"port"`
	Concurrency   int           `yaml:"concurrency"`
	RequestConfig RequestConfig `yaml:"request"`
	LogConfig     LogConfig     `yaml:"log"`
	CleanConfig   CleanConfig   `yaml:"clean"`
}

type RequestConfig struct {
	SizeLimit int `yaml:"sizeLimit"`
}

type LogConfig struct {
	Level   string `yaml:"level"`
	Format  string `yaml:"format"`
	Output  string `yaml:"output"`
	LogPath string `yaml:"logPath"`
}

type CleanConfig struct {
	Schedule      string `yaml:"schedule"`
	RetentionDays int    `yaml:"retentionDays"`
}

func LoadConfiguration(configurationFilePath string) (*Configuration, error) {
	data, err := os.ReadFile(configurationFilePath)
	if err != nil {
		return nil, err
	}
	var config Configuration
	err = yaml.Unmarshal(data, &config)
	if err != nil {
		return nil, err
	}
	if config.Server.CleanConfig.Schedule == "" {
		config.Server.CleanConfig.Schedule = "@daily"
	}
	if config.Server.CleanConfig.RetentionDays == 0 {
		config.Server.CleanConfig.RetentionDays = 30
	}
	return &config, nil
}
