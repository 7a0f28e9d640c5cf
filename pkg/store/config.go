package store

import (
	"fmt"
	"time"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
)

// Config carries the store location and collaborator endpoints.
type Config interface {
	BasePath() string
	CalendarAPI() string
	IdentityAPI() string
	AssistAPI() string
	AssistKey() string
	SyncTimeout() time.Duration
}

// LoadConfig reads configuration from .tick.yaml and TICK_* environment
// variables, falling back to defaults.
func LoadConfig() (Config, error) {
	v := viper.New()
	v.SetDefault("path", "~/.tick.db")
	v.SetDefault("calendar_api", "https://www.googleapis.com/calendar/v3")
	v.SetDefault("identity_api", "")
	v.SetDefault("assist_api", "https://generativelanguage.googleapis.com")
	v.SetDefault("assist_key", "")
	v.SetDefault("sync_timeout", "10s")

	v.SetConfigName(".tick") // .yaml is implicit
	v.SetEnvPrefix("TICK")
	v.AutomaticEnv()
	v.AddConfigPath("$HOME")
	v.AddConfigPath("./")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("store: read config: %w", err)
		}
	}

	path, err := homedir.Expand(v.GetString("path"))
	if err != nil {
		return nil, fmt.Errorf("store: expand path: %w", err)
	}

	return &fileConfig{
		Path:     path,
		Calendar: v.GetString("calendar_api"),
		Identity: v.GetString("identity_api"),
		Assist:   v.GetString("assist_api"),
		Key:      v.GetString("assist_key"),
		Timeout:  v.GetDuration("sync_timeout"),
	}, nil
}

type fileConfig struct {
	Path     string
	Calendar string
	Identity string
	Assist   string
	Key      string
	Timeout  time.Duration
}

func (f *fileConfig) BasePath() string    { return f.Path }
func (f *fileConfig) CalendarAPI() string { return f.Calendar }
func (f *fileConfig) IdentityAPI() string { return f.Identity }
func (f *fileConfig) AssistAPI() string   { return f.Assist }
func (f *fileConfig) AssistKey() string   { return f.Key }

func (f *fileConfig) SyncTimeout() time.Duration {
	if f.Timeout <= 0 {
		return 10 * time.Second
	}
	return f.Timeout
}
