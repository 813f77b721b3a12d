package state

import (
	"sort"
	"sync"

	"litepos/internal/model"
)

// SettingsCache is a key/setting snapshot loaded from storage. Update only
// changes the cached copy; persisting is the caller's job.
type SettingsCache struct {
	mu       sync.RWMutex
	settings map[string]model.Setting
	loaded   bool
}

func NewSettingsCache() *SettingsCache {
	return &SettingsCache{settings: map[string]model.Setting{}}
}

// Load replaces the snapshot.
func (c *SettingsCache) Load(settings []model.Setting) {
	m := make(map[string]model.Setting, len(settings))
	for _, s := range settings {
		m[s.Key] = s
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.settings = m
	c.loaded = true
}

func (c *SettingsCache) Loaded() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.loaded
}

func (c *SettingsCache) lookup(key string) (model.Setting, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	s, ok := c.settings[key]
	return s, ok
}

// Get returns the raw text, "" for unknown keys.
func (c *SettingsCache) Get(key string) string {
	s, _ := c.lookup(key)
	return s.Value
}

// GetNumber parses the value as an integer, 0 when absent or not a number.
func (c *SettingsCache) GetNumber(key string) int {
	s, _ := c.lookup(key)
	return s.Int()
}

// GetBoolean is true only when the stored text is exactly "true".
func (c *SettingsCache) GetBoolean(key string) bool {
	s, _ := c.lookup(key)
	return s.Bool()
}

// GetJSON decodes the value; absent keys and malformed JSON yield nil.
func (c *SettingsCache) GetJSON(key string) any {
	s, ok := c.lookup(key)
	if !ok {
		return nil
	}
	return s.JSON()
}

// Update changes the cached value of a known key. Unknown keys are ignored.
func (c *SettingsCache) Update(key, value string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	s, ok := c.settings[key]
	if !ok {
		return
	}
	s.Value = value
	c.settings[key] = s
}

// All returns the snapshot sorted by group, then key.
func (c *SettingsCache) All() []model.Setting {
	c.mu.RLock()
	out := make([]model.Setting, 0, len(c.settings))
	for _, s := range c.settings {
		out = append(out, s)
	}
	c.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool {
		if out[i].GroupName != out[j].GroupName {
			return out[i].GroupName < out[j].GroupName
		}
		return out[i].Key < out[j].Key
	})
	return out
}
