package accounts

import (
	"context"
	"fmt"

	"github.com/de-tools/cloud-portal/pkg/models/domain"
	"gopkg.in/ini.v1"
)

// Registry reads demo account profiles from an ini file such as
//
//	[employee]
//	role     = user
//	username = john.doe
//	password = employee123
type Registry interface {
	GetProfiles(ctx context.Context) ([]domain.AccountProfile, error)
	GetProfile(ctx context.Context, name string) (domain.AccountProfile, error)
	// Credentials returns the credentials to use per role. When several
	// profiles name the same role the last one wins.
	Credentials(ctx context.Context) (map[domain.RoleID]domain.Credentials, error)
}

type iniRegistry struct {
	cfg *ini.File
}

func NewRegistry(path string) (Registry, error) {
	cfg, err := ini.Load(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load accounts file: %w", err)
	}
	return &iniRegistry{cfg: cfg}, nil
}

func (r *iniRegistry) GetProfiles(ctx context.Context) ([]domain.AccountProfile, error) {
	var profiles []domain.AccountProfile
	for _, section := range r.cfg.Sections() {
		if len(section.Keys()) == 0 {
			continue
		}
		p, err := r.GetProfile(ctx, section.Name())
		if err != nil {
			return nil, err
		}
		profiles = append(profiles, p)
	}
	return profiles, nil
}

func (r *iniRegistry) GetProfile(_ context.Context, name string) (domain.AccountProfile, error) {
	section, err := r.cfg.GetSection(name)
	if err != nil {
		return domain.AccountProfile{}, fmt.Errorf("profile %s not found", name)
	}

	role := domain.RoleID(section.Key("role").String())
	if !role.Valid() {
		return domain.AccountProfile{}, fmt.Errorf("profile %s: unknown role %q", name, role)
	}
	username := section.Key("username").String()
	if username == "" {
		return domain.AccountProfile{}, fmt.Errorf("profile %s: username is required", name)
	}

	return domain.AccountProfile{
		Name: name,
		Role: role,
		Credentials: domain.Credentials{
			Username: username,
			Password: section.Key("password").String(),
		},
	}, nil
}

func (r *iniRegistry) Credentials(ctx context.Context) (map[domain.RoleID]domain.Credentials, error) {
	profiles, err := r.GetProfiles(ctx)
	if err != nil {
		return nil, err
	}

	creds := make(map[domain.RoleID]domain.Credentials, len(profiles))
	for _, p := range profiles {
		creds[p.Role] = p.Credentials
	}
	return creds, nil
}
