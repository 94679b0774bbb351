// Package kv provides the device-local key-value substrate behind the session
// history and the language preference. Values are opaque strings.
package kv

import "context"

type Store interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
	Close() error
}
