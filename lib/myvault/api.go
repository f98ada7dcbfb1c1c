package myvault

import (
	"context"
)

const (
	RazorpayKeyID     = "RAZORPAY_KEY_ID"
	RazorpayKeySecret = "RAZORPAY_KEY_SECRET"
)

// Secret is a named credential that overrides the environment.
type Secret struct {
	Name  string
	Value string `datastore:",noindex"`
}

//go:generate mockgen -source=api.go -package myvault -destination vault_reader_mock.go VaultReader
type VaultReader interface {
	Get(c context.Context, name string) (string, bool, error)
}
