package out

import (
	"context"
	"io"

	"gentlemind/internal/modules/journal/domain"
)

type KVStore interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
}

type Exporter interface {
	Format() string
	Export(w io.Writer, records []domain.Record) error
}

type Importer interface {
	Format() string
	Import(r io.Reader) ([]domain.Record, error)
}
