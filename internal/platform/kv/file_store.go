package kv

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"regexp"

	"github.com/klauspost/compress/zstd"
)

var keyPattern = regexp.MustCompile(`^[A-Za-z0-9_.-]+$`)

// FileStore keeps one zstd-compressed file per key inside dir.
type FileStore struct {
	dir     string
	encoder *zstd.Encoder
	decoder *zstd.Decoder
}

func NewFileStore(dir string) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create kv dir: %w", err)
	}
	encoder, err := zstd.NewWriter(nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create zstd encoder: %w", err)
	}
	decoder, err := zstd.NewReader(nil, zstd.WithDecoderConcurrency(0))
	if err != nil {
		return nil, fmt.Errorf("failed to create zstd decoder: %w", err)
	}
	return &FileStore{dir: dir, encoder: encoder, decoder: decoder}, nil
}

func (f *FileStore) path(key string) (string, error) {
	if !keyPattern.MatchString(key) {
		return "", fmt.Errorf("invalid key %q", key)
	}
	return filepath.Join(f.dir, key+".zst"), nil
}

func (f *FileStore) Get(_ context.Context, key string) (string, bool, error) {
	path, err := f.path(key)
	if err != nil {
		return "", false, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("read key %s: %w", key, err)
	}
	raw, err := f.decoder.DecodeAll(data, nil)
	if err != nil {
		return "", false, fmt.Errorf("decompress key %s: %w", key, err)
	}
	return string(raw), true, nil
}

func (f *FileStore) Set(_ context.Context, key, value string) error {
	path, err := f.path(key)
	if err != nil {
		return err
	}
	data := f.encoder.EncodeAll([]byte(value), make([]byte, 0, len(value)/2))

	tmpFile := path + ".tmp"
	file, err := os.Create(tmpFile)
	if err != nil {
		return fmt.Errorf("write key %s: %w", key, err)
	}
	if _, err = file.Write(data); err != nil {
		file.Close()
		os.Remove(tmpFile)
		return fmt.Errorf("write key %s: %w", key, err)
	}
	if err = file.Sync(); err != nil {
		file.Close()
		os.Remove(tmpFile)
		return fmt.Errorf("sync key %s: %w", key, err)
	}
	if err = file.Close(); err != nil {
		os.Remove(tmpFile)
		return fmt.Errorf("close key %s: %w", key, err)
	}
	return os.Rename(tmpFile, path)
}

func (f *FileStore) Close() error {
	f.decoder.Close()
	return f.encoder.Close()
}
