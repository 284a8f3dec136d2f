package catalog

import (
	"context"
	"encoding/json"

	"github.com/go-redis/redis/v8"

	"github.com/lemonscar/detailing-api/internal/httperr"
)

const (
	servicesKey = "site:services"
	settingsKey = "site:settings"
)

// RedisStore keeps the catalog and settings as JSON blobs under fixed keys,
// the durable replacement for the browser-local storage the admin editor
// used to write. Last writer wins, same as before.
type RedisStore struct {
	client *redis.Client
}

func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{client: client}
}

func (r *RedisStore) ListServices(ctx context.Context) ([]Service, error) {
	raw, err := r.client.Get(ctx, servicesKey).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var services []Service
	if err := json.Unmarshal(raw, &services); err != nil {
		return nil, err
	}
	return services, nil
}

func (r *RedisStore) writeServices(ctx context.Context, services []Service) error {
	raw, err := json.Marshal(services)
	if err != nil {
		return err
	}
	return r.client.Set(ctx, servicesKey, raw, 0).Err()
}

func (r *RedisStore) AddService(ctx context.Context, s Service) error {
	services, err := r.ListServices(ctx)
	if err != nil {
		return err
	}
	return r.writeServices(ctx, append(services, s))
}

func (r *RedisStore) UpdateService(ctx context.Context, id string, s Service) error {
	services, err := r.ListServices(ctx)
	if err != nil {
		return err
	}

	for i := range services {
		if services[i].ID == id {
			services[i] = s
			return r.writeServices(ctx, services)
		}
	}
	return httperr.ErrBusiness("service_not_found")
}

func (r *RedisStore) DeleteService(ctx context.Context, id string) error {
	services, err := r.ListServices(ctx)
	if err != nil {
		return err
	}

	for i := range services {
		if services[i].ID == id {
			return r.writeServices(ctx, append(services[:i], services[i+1:]...))
		}
	}
	return httperr.ErrBusiness("service_not_found")
}

func (r *RedisStore) GetSettings(ctx context.Context) (Settings, error) {
	raw, err := r.client.Get(ctx, settingsKey).Bytes()
	if err == redis.Nil {
		return DefaultSettings(), nil
	}
	if err != nil {
		return Settings{}, err
	}

	var s Settings
	if err := json.Unmarshal(raw, &s); err != nil {
		return Settings{}, err
	}
	return s, nil
}

func (r *RedisStore) PutSettings(ctx context.Context, s Settings) error {
	raw, err := json.Marshal(s)
	if err != nil {
		return err
	}
	return r.client.Set(ctx, settingsKey, raw, 0).Err()
}

var _ Store = (*RedisStore)(nil)
