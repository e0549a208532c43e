package fixture

import (
	_ "embed"
	"fmt"
	"io"
	"os"

	"github.com/de-tools/cloud-portal/pkg/adapters"
	"github.com/de-tools/cloud-portal/pkg/models/domain"
	"github.com/de-tools/cloud-portal/pkg/models/store"
	"gopkg.in/yaml.v3"
)

//go:embed dataset.yaml
var defaultDataset []byte

// Option adjusts a decoded dataset before it is validated.
type Option func(ds *domain.Dataset)

// WithCredentials replaces the demo credentials of the given roles.
func WithCredentials(creds map[domain.RoleID]domain.Credentials) Option {
	return func(ds *domain.Dataset) {
		for i := range ds.Roles {
			if c, ok := creds[ds.Roles[i].ID]; ok {
				ds.Roles[i].Credentials = c
			}
		}
	}
}

// Default returns a store over the dataset compiled into the binary.
func Default(opts ...Option) (*Store, error) {
	return Decode(defaultDataset, opts...)
}

func LoadFile(path string, opts ...Option) (*Store, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open fixture file: %w", err)
	}
	defer f.Close()

	return Load(f, opts...)
}

func Load(r io.Reader, opts ...Option) (*Store, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read fixture: %w", err)
	}
	return Decode(data, opts...)
}

func Decode(data []byte, opts ...Option) (*Store, error) {
	var raw store.Fixture
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("decode fixture: %w", err)
	}

	ds, err := adapters.MapStoreFixtureToDomain(raw)
	if err != nil {
		return nil, fmt.Errorf("map fixture: %w", err)
	}

	for _, opt := range opts {
		opt(ds)
	}

	if err := Validate(ds); err != nil {
		return nil, err
	}

	return newStore(ds), nil
}
