package accounts

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/de-tools/cloud-portal/pkg/models/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeAccounts(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "accounts.ini")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestRegistry(t *testing.T) {
	ctx := context.Background()
	path := writeAccounts(t, `
[employee]
role = user
username = alice
password = a-pass

[lead]
role = manager
username = bob

[empty]
`)

	reg, err := NewRegistry(path)
	require.NoError(t, err)

	profiles, err := reg.GetProfiles(ctx)
	require.NoError(t, err)
	require.Len(t, profiles, 2)
	assert.Equal(t, "employee", profiles[0].Name)
	assert.Equal(t, "user:alice", profiles[0].String())
	assert.Equal(t, "manager:bob", profiles[1].String())

	creds, err := reg.Credentials(ctx)
	require.NoError(t, err)
	assert.Equal(t, map[domain.RoleID]domain.Credentials{
		domain.RoleEmployee: {Username: "alice", Password: "a-pass"},
		domain.RoleManager:  {Username: "bob"},
	}, creds)

	_, err = reg.GetProfile(ctx, "nobody")
	assert.Error(t, err)
}

func TestRegistry_InvalidProfiles(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name    string
		content string
		wantErr string
	}{
		{"unknown role", "[x]\nrole = root\nusername = r", `unknown role "root"`},
		{"missing username", "[x]\nrole = admin", "username is required"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reg, err := NewRegistry(writeAccounts(t, tt.content))
			require.NoError(t, err)

			_, err = reg.Credentials(ctx)
			assert.ErrorContains(t, err, tt.wantErr)
		})
	}

	_, err := NewRegistry(filepath.Join(t.TempDir(), "missing.ini"))
	assert.Error(t, err)
}
