package myvault

import (
	"context"
	"fmt"
	"strings"

	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"

	"github.com/MarcGrol/shopfront/lib/mystore"
)

type vault struct {
	store mystore.Store[Secret]
}

// New returns a reader that looks secrets up in the store first and in the process environment second.
// Nothing is cached: a secret that is rotated or removed is noticed on the next call.
func New(store mystore.Store[Secret]) VaultReader {
	return &vault{
		store: store,
	}
}

func (v *vault) Get(c context.Context, name string) (string, bool, error) {
	if v.store != nil {
		secret, found, err := v.store.Get(c, name)
		if err != nil {
			return "", false, fmt.Errorf("error fetching secret %s: %s", name, err)
		}
		if found && strings.TrimSpace(secret.Value) != "" {
			return secret.Value, true, nil
		}
	}

	k := koanf.New(".")
	err := k.Load(env.Provider("", ".", func(s string) string { return s }), nil)
	if err != nil {
		return "", false, fmt.Errorf("error reading environment: %s", err)
	}

	value := strings.TrimSpace(k.String(name))
	if value == "" {
		return "", false, nil
	}
	return value, true, nil
}
