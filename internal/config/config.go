package config

import (
	"encoding/json"
	"os"
	"path/filepath"
)

type Config struct {
	// ChatModel is the Gemini model used by the chat relay.
	ChatModel string `json:"chat_model"`
	// LowFX reduces decorative rendering (smaller starfield) on slow
	// terminals.
	LowFX bool `json:"low_fx"`
}

func DefaultConfig() Config {
	return Config{
		ChatModel: "gemini-2.5-flash",
		LowFX:     false,
	}
}

func ConfigDir() string {
	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		return filepath.Join(dir, "cinelux")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "cinelux")
}

func configPath() string {
	return filepath.Join(ConfigDir(), "config.json")
}

func Load() Config {
	cfg := DefaultConfig()
	data, err := os.ReadFile(configPath())
	if err != nil {
		return cfg
	}
	_ = json.Unmarshal(data, &cfg) // ignore errors; fall back to defaults
	if cfg.ChatModel == "" {
		cfg.ChatModel = DefaultConfig().ChatModel
	}
	return cfg
}

func Save(cfg Config) error {
	dir := ConfigDir()
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(configPath(), data, 0o644)
}
