package connector

import (
	"net/http"
	"sort"
	"sync"
)

// NewFunc constructs a provider. The HTTP client is shared so the transport
// timeout is configured once per process.
type NewFunc func(client *http.Client) Connector

var (
	registryMu sync.RWMutex
	registry   = make(map[string]NewFunc)
)

// Register adds a provider constructor under its connector identifier. It is
// called from each provider package's init.
func Register(id string, newFunc NewFunc) {
	registryMu.Lock()
	defer registryMu.Unlock()
	if _, exists := registry[id]; exists {
		return
	}
	registry[id] = newFunc
}

// New resolves a connector identifier to a provider instance. The result is
// bound once at startup and shared for the process lifetime; an unrecognized
// identifier is a fatal configuration error.
func New(id string, client *http.Client) (Connector, error) {
	registryMu.RLock()
	newFunc, exists := registry[id]
	registryMu.RUnlock()
	if !exists {
		return nil, ConfigurationError("unknown connector identifier: " + id)
	}
	return newFunc(client), nil
}

// Identifiers returns the registered connector identifiers, sorted.
func Identifiers() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()
	ids := make([]string, 0, len(registry))
	for id := range registry {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
