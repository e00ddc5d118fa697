package store

import (
	"encoding/json"
	"fmt"
	"sync"
)

// Memory is a map-backed Port for tests and throwaway runs. It applies the
// same marshal/unmarshal round trip as the database store so tolerant-type
// behavior matches production.
type Memory struct {
	mu      sync.RWMutex
	entries map[string]json.RawMessage
}

// NewMemory returns an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{entries: make(map[string]json.RawMessage)}
}

func (m *Memory) Load(key string, out any) (bool, error) {
	m.mu.RLock()
	raw, ok := m.entries[key]
	m.mu.RUnlock()
	if !ok {
		return false, nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return false, fmt.Errorf("decode %q: %w", key, err)
	}
	return true, nil
}

func (m *Memory) Save(key string, value any) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("encode %q: %w", key, err)
	}
	m.mu.Lock()
	m.entries[key] = raw
	m.mu.Unlock()
	return nil
}

func (m *Memory) Delete(key string) error {
	m.mu.Lock()
	delete(m.entries, key)
	m.mu.Unlock()
	return nil
}

func (m *Memory) Snapshot(keys []string) (map[string]json.RawMessage, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make(map[string]json.RawMessage, len(keys))
	for _, key := range keys {
		if raw, ok := m.entries[key]; ok {
			out[key] = append(json.RawMessage(nil), raw...)
		} else {
			out[key] = json.RawMessage("null")
		}
	}
	return out, nil
}

func (m *Memory) Restore(entries map[string]json.RawMessage) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for key, raw := range entries {
		m.entries[key] = append(json.RawMessage(nil), raw...)
	}
	return nil
}
