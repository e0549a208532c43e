package session

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistry(t *testing.T) {
	reg := NewRegistry()
	wantErr := errors.New("boom")

	require.NoError(t, reg.Register("memory", func(context.Context, Settings) (Store, error) { return nil, nil }))
	require.NoError(t, reg.Register("broken", func(context.Context, Settings) (Store, error) { return nil, wantErr }))

	assert.Error(t, reg.Register("", func(context.Context, Settings) (Store, error) { return nil, nil }))
	assert.Error(t, reg.Register("nil", nil))
	assert.Error(t, reg.Register("memory", func(context.Context, Settings) (Store, error) { return nil, nil }))

	assert.Equal(t, []string{"broken", "memory"}, reg.ListBackends())

	_, err := reg.Create(context.Background(), "broken", Settings{})
	assert.ErrorIs(t, err, wantErr)

	_, err = reg.Create(context.Background(), "etcd", Settings{})
	assert.ErrorContains(t, err, `"etcd" is not registered`)
}
