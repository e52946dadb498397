package store

import (
	"github.com/peterbourgon/diskv/v3"
)

// KV is the abstract key-value store the journal persists through. Get
// reports whether the key existed so callers can distinguish absence from
// an empty value.
type KV interface {
	Get(key string) ([]byte, bool, error)
	Set(key string, value []byte) error
	Remove(key string) error
}

// NewDiskKV returns a diskv-backed KV rooted at basePath. Keys map to flat
// files under the base path.
func NewDiskKV(basePath string) KV {
	return &diskKV{d: diskv.New(diskv.Options{
		BasePath:     basePath,
		Transform:    func(string) []string { return []string{} },
		CacheSizeMax: 1024 * 1024, // 1MB
	})}
}

type diskKV struct {
	d *diskv.Diskv
}

func (k *diskKV) Get(key string) ([]byte, bool, error) {
	if !k.d.Has(key) {
		return nil, false, nil
	}
	val, err := k.d.Read(key)
	if err != nil {
		return nil, false, err
	}
	return val, true, nil
}

func (k *diskKV) Set(key string, value []byte) error {
	return k.d.Write(key, value)
}

func (k *diskKV) Remove(key string) error {
	if !k.d.Has(key) {
		return nil
	}
	return k.d.Erase(key)
}
