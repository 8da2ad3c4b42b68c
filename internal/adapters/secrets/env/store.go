package env

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/trailkit/regname/internal/domain"
	"github.com/trailkit/regname/internal/ports"
)

// ErrReadOnly marks mutations on the environment-backed store; the chain
// store falls through to its writable fallback on it.
var ErrReadOnly = errors.New("environment secret store is read-only")

// Store resolves secrets from process environment variables. The key
// "wallet_key" with prefix "REGNAME" reads REGNAME_WALLET_KEY.
type Store struct {
	prefix string
	getenv func(string) string
}

var _ ports.SecretStore = (*Store)(nil)

func NewStore(prefix string) *Store {
	return &Store{prefix: prefix, getenv: os.Getenv}
}

func (s *Store) Get(ctx context.Context, key string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	name := s.variableName(key)
	value := strings.TrimSpace(s.getenv(name))
	if value == "" {
		return "", fmt.Errorf("environment variable %s: %w", name, domain.ErrSecretNotFound)
	}

	return value, nil
}

func (s *Store) Put(ctx context.Context, key string, _ string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	return fmt.Errorf("put secret %q: %w", key, ErrReadOnly)
}

func (s *Store) Delete(ctx context.Context, key string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	return fmt.Errorf("delete secret %q: %w", key, ErrReadOnly)
}

func (s *Store) variableName(key string) string {
	mapped := strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z':
			return r - ('a' - 'A')
		case r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			return r
		default:
			return '_'
		}
	}, strings.TrimSpace(key))

	if s.prefix == "" {
		return mapped
	}

	return s.prefix + "_" + mapped
}
