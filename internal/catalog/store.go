package catalog

import (
	"context"
	"sync"

	"github.com/lemonscar/detailing-api/internal/httperr"
)

// Store persists the admin-edited catalog and site settings. The production
// implementation sits on Redis; tests use the in-memory one.
type Store interface {
	ListServices(ctx context.Context) ([]Service, error)
	AddService(ctx context.Context, s Service) error
	UpdateService(ctx context.Context, id string, s Service) error
	DeleteService(ctx context.Context, id string) error

	GetSettings(ctx context.Context) (Settings, error)
	PutSettings(ctx context.Context, s Settings) error
}

// DisplayServices is what every consumer renders: the edited list when the
// admin published one, else exactly the hardcoded defaults.
func DisplayServices(ctx context.Context, store Store) ([]Service, error) {
	services, err := store.ListServices(ctx)
	if err != nil {
		return nil, err
	}
	if len(services) == 0 {
		return DefaultServices(), nil
	}
	return services, nil
}

// FindDisplayService resolves a service id against the display list.
func FindDisplayService(ctx context.Context, store Store, id string) (*Service, error) {
	services, err := DisplayServices(ctx, store)
	if err != nil {
		return nil, err
	}
	for i := range services {
		if services[i].ID == id {
			return &services[i], nil
		}
	}
	return nil, httperr.ErrBusiness("service_not_found")
}

// --------------------------------------------------
// In-memory store
// --------------------------------------------------

type MemoryStore struct {
	mu       sync.RWMutex
	services []Service
	settings *Settings
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (m *MemoryStore) ListServices(_ context.Context) ([]Service, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]Service, len(m.services))
	copy(out, m.services)
	return out, nil
}

func (m *MemoryStore) AddService(_ context.Context, s Service) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.services = append(m.services, s)
	return nil
}

func (m *MemoryStore) UpdateService(_ context.Context, id string, s Service) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for i := range m.services {
		if m.services[i].ID == id {
			m.services[i] = s
			return nil
		}
	}
	return httperr.ErrBusiness("service_not_found")
}

func (m *MemoryStore) DeleteService(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for i := range m.services {
		if m.services[i].ID == id {
			m.services = append(m.services[:i], m.services[i+1:]...)
			return nil
		}
	}
	return httperr.ErrBusiness("service_not_found")
}

func (m *MemoryStore) GetSettings(_ context.Context) (Settings, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.settings == nil {
		return DefaultSettings(), nil
	}
	return *m.settings, nil
}

func (m *MemoryStore) PutSettings(_ context.Context, s Settings) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.settings = &s
	return nil
}

var _ Store = (*MemoryStore)(nil)
