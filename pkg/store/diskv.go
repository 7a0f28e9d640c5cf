// Package store persists each named collection as one JSON value in a
// local diskv key-value area. Reads that fail to parse and writes that
// fail to land are logged and absorbed; callers always get a usable
// value and never an error.
package store

import (
	"encoding/json"
	"os"

	"github.com/peterbourgon/diskv/v3"
	"go.uber.org/zap"
)

// Fixed keys, one per collection or singleton.
const (
	KeyTasks           = "tasks"
	KeyLists           = "lists"
	KeyHabits          = "habits"
	KeyFocusCategories = "focus-categories"
	KeyFocusSessions   = "focus-sessions"
	KeySettings        = "settings"
	KeySyncToken       = "sync-token"
)

// KV is the diskv-backed store.
type KV struct {
	d   *diskv.Diskv
	log *zap.Logger
}

// Open creates a KV rooted at the configured base path.
func Open(cfg Config, log *zap.Logger) (*KV, error) {
	if cfg == nil {
		var err error
		cfg, err = LoadConfig()
		if err != nil {
			return nil, err
		}
	}
	return OpenPath(cfg.BasePath(), log)
}

// OpenPath creates a KV rooted at an explicit directory.
func OpenPath(basePath string, log *zap.Logger) (*KV, error) {
	if log == nil {
		log = zap.NewNop()
	}
	if err := os.MkdirAll(basePath, 0o755); err != nil {
		return nil, err
	}
	return &KV{
		d: diskv.New(diskv.Options{
			BasePath:     basePath,
			CacheSizeMax: 1024 * 1024, // 1MB
		}),
		log: log,
	}, nil
}

// Has reports whether a value exists under the key.
func (kv *KV) Has(key string) bool {
	return kv.d.Has(key)
}

// Erase removes the value under the key. Missing keys are fine.
func (kv *KV) Erase(key string) {
	if err := kv.d.Erase(key); err != nil && !os.IsNotExist(err) {
		kv.log.Warn("store: erase failed", zap.String("key", key), zap.Error(err))
	}
}

// Load reads and decodes the value under key into T. An absent key or a
// value that fails to parse yields the caller's default; parse failures
// are logged, never raised.
func Load[T any](kv *KV, key string, defaultValue T) T {
	raw, err := kv.d.Read(key)
	if err != nil {
		if !os.IsNotExist(err) {
			kv.log.Warn("store: read failed", zap.String("key", key), zap.Error(err))
		}
		return defaultValue
	}
	var value T
	if err := json.Unmarshal(raw, &value); err != nil {
		kv.log.Warn("store: corrupt value, using default", zap.String("key", key), zap.Error(err))
		return defaultValue
	}
	return value
}

// Save encodes and writes the value under key. Failures are logged and
// absorbed; a full disk must not interrupt the mutation that got us here.
func Save[T any](kv *KV, key string, value T) {
	raw, err := json.Marshal(value)
	if err != nil {
		kv.log.Warn("store: marshal failed", zap.String("key", key), zap.Error(err))
		return
	}
	if err := kv.d.Write(key, raw); err != nil {
		kv.log.Warn("store: write failed", zap.String("key", key), zap.Error(err))
	}
}
