package webclient

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/seolens/seolens/internal/logging"
)

// BackendConstructor constructs a WebClient given the config and logger.
type BackendConstructor func(cfg *Config, logger logging.Logger) (WebClient, error)

var (
	mu       sync.RWMutex
	backends = map[string]BackendConstructor{}
)

func init() {
	RegisterBackend("nethttp", func(cfg *Config, logger logging.Logger) (WebClient, error) {
		return NewNetHTTPClient(cfg, logger, nil)
	})
}

// RegisterBackend registers a named backend constructor. Name is lower-cased
// internally. Registering the same name overwrites the previous constructor.
func RegisterBackend(name string, ctor BackendConstructor) {
	if name == "" || ctor == nil {
		return
	}
	mu.Lock()
	defer mu.Unlock()
	backends[strings.ToLower(name)] = ctor
}

// New constructs the configured WebClient backend. It returns an error if the
// named backend has not been registered.
func New(cfg *Config, logger logging.Logger) (WebClient, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	backend := strings.ToLower(strings.TrimSpace(cfg.Backend))
	if backend == "" {
		backend = "nethttp"
	}

	mu.RLock()
	ctor, ok := backends[backend]
	mu.RUnlock()
	if !ok || ctor == nil {
		return nil, fmt.Errorf("webclient backend %q not registered: available backends=%v", backend, ListBackends())
	}

	wc, err := ctor(cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to construct webclient backend %q: %w", backend, err)
	}
	if wc == nil {
		return nil, errors.New("webclient constructor returned nil")
	}
	return wc, nil
}

// ListBackends returns the list of registered backend names.
func ListBackends() []string {
	mu.RLock()
	defer mu.RUnlock()
	out := make([]string, 0, len(backends))
	for k := range backends {
		out = append(out, k)
	}
	return out
}
