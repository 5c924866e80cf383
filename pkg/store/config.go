package store

import (
	"fmt"
	"os"
	"strings"

	"github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
)

const (
	BackendDiskv  = "diskv"
	BackendSQLite = "sqlite"
)

// Config locates the store.
type Config interface {
	BasePath() string
	Backend() string
}

// Settings is the full user configuration read from .agenda.yaml and
// AGENDA_* environment variables.
type Settings struct {
	Path         string `json:"path" yaml:"path"`
	Store        string `json:"backend" yaml:"backend"`
	OverdueAdd   string `json:"overdueAdd" yaml:"overdueAdd"`
	OverdueEdit  string `json:"overdueEdit" yaml:"overdueEdit"`
	HistoryLimit int    `json:"historyLimit" yaml:"historyLimit"`
	LogLevel     string `json:"logLevel" yaml:"logLevel"`
	LogFormat    string `json:"logFormat" yaml:"logFormat"`
}

func (s *Settings) BasePath() string {
	return s.Path
}

func (s *Settings) Backend() string {
	return s.Store
}

// LoadConfig reads .agenda.yaml from $AGENDA_CONFIG_PATH or the working
// directory. A missing file is not an error.
func LoadConfig() (*Settings, error) {
	v := viper.New()
	v.SetDefault("path", "~/.agenda.db")
	v.SetDefault("backend", BackendDiskv)
	v.SetDefault("overdue.add", "lenient")
	v.SetDefault("overdue.edit", "lenient")
	v.SetDefault("history.limit", 100)
	v.SetDefault("log.level", "warn")
	v.SetDefault("log.format", "text")
	v.SetConfigName(".agenda") // .yaml is implicit
	v.SetEnvPrefix("AGENDA")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if override := os.Getenv("AGENDA_CONFIG_PATH"); override != "" {
		v.AddConfigPath(override)
	}

	v.AddConfigPath("./")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("store: reading config file: %w", err)
		}
	}

	path, err := homedir.Expand(v.GetString("path"))
	if err != nil {
		return nil, fmt.Errorf("store: expanding path: %w", err)
	}

	s := &Settings{
		Path:         path,
		Store:        strings.ToLower(v.GetString("backend")),
		OverdueAdd:   v.GetString("overdue.add"),
		OverdueEdit:  v.GetString("overdue.edit"),
		HistoryLimit: v.GetInt("history.limit"),
		LogLevel:     v.GetString("log.level"),
		LogFormat:    v.GetString("log.format"),
	}
	if s.Store != BackendDiskv && s.Store != BackendSQLite {
		return nil, fmt.Errorf("store: unknown backend %q", s.Store)
	}
	return s, nil
}
