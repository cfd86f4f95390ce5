package main

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

type AudioConfig struct {
	SampleRate int `yaml:"sample_rate"`
	BlockSize  int `yaml:"block_size"`
}

type MeterConfig struct {
	ClipThreshold float64 `yaml:"clip_threshold"`
}

type Config struct {
	FPS      int         `yaml:"fps"`
	Audio    AudioConfig `yaml:"audio"`
	Meter    MeterConfig `yaml:"meter"`
	DemoMode bool        `yaml:"-"`
}

func DefaultConfig() *Config {
	return &Config{
		FPS: 30,
		Audio: AudioConfig{
			SampleRate: 44100,
			BlockSize:  1024,
		},
		Meter: MeterConfig{
			ClipThreshold: 0.9,
		},
	}
}

func (c *Config) LoadFromFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(data, c)
}

func (c *Config) TryLoadDefault() {
	home, err := os.UserHomeDir()
	if err != nil {
		return
	}
	paths := []string{
		filepath.Join(home, ".config", "audioscope", "config.yaml"),
		filepath.Join(home, ".config", "audioscope", "config.yml"),
		filepath.Join(home, ".audioscope.yaml"),
	}
	for _, p := range paths {
		if _, err := os.Stat(p); err == nil {
			_ = c.LoadFromFile(p)
			return
		}
	}
}
