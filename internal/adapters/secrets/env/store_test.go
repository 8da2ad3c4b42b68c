package env

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/trailkit/regname/internal/domain"
)

func TestGetReadsPrefixedVariable(t *testing.T) {
	t.Setenv("REGNAME_WALLET_KEY", "  0xsecret \n")

	store := NewStore("REGNAME")

	value, err := store.Get(context.Background(), "wallet_key")
	require.NoError(t, err)
	assert.Equal(t, "0xsecret", value)
}

func TestGetMapsKeyCharacters(t *testing.T) {
	t.Setenv("REGNAME_WALLET_KEY", "v")

	store := NewStore("REGNAME")

	value, err := store.Get(context.Background(), "wallet-key")
	require.NoError(t, err)
	assert.Equal(t, "v", value)
}

func TestGetMissingVariableIsNotFound(t *testing.T) {
	store := NewStore("REGNAME_TEST_UNSET")

	_, err := store.Get(context.Background(), "wallet_key")
	require.ErrorIs(t, err, domain.ErrSecretNotFound)
}

func TestMutationsAreReadOnly(t *testing.T) {
	store := NewStore("REGNAME")

	require.ErrorIs(t, store.Put(context.Background(), "wallet_key", "v"), ErrReadOnly)
	require.ErrorIs(t, store.Delete(context.Background(), "wallet_key"), ErrReadOnly)
}
