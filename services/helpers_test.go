package services

import (
	"context"
	"errors"
	"gin-fooddelivery/infra"
	"gin-fooddelivery/models"
	"io"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := infra.OpenInMemory()
	require.NoError(t, err)
	t.Cleanup(func() { _ = infra.CloseDB(db) })
	return db
}

type fakeImageStore struct {
	mu        sync.Mutex
	saved     map[string]string
	deleted   []string
	deleteErr error
	saveErr   error
}

func newFakeImageStore() *fakeImageStore {
	return &fakeImageStore{saved: map[string]string{}}
}

func (f *fakeImageStore) Save(ctx context.Context, name string, r io.Reader) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.saveErr != nil {
		return f.saveErr
	}
	b, _ := io.ReadAll(r)
	f.saved[name] = string(b)
	return nil
}

func (f *fakeImageStore) Delete(ctx context.Context, name string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.deleted = append(f.deleted, name)
	if f.deleteErr != nil {
		return f.deleteErr
	}
	delete(f.saved, name)
	return nil
}

type fakeCache struct {
	mu      sync.Mutex
	values  map[string][]byte
	deletes []string
}

func newFakeCache() *fakeCache {
	return &fakeCache{values: map[string][]byte{}}
}

func (f *fakeCache) Get(ctx context.Context, key string) ([]byte, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.values[key], nil
}

func (f *fakeCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.values[key] = value
	return nil
}

func (f *fakeCache) Delete(ctx context.Context, keys ...string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, k := range keys {
		delete(f.values, k)
		f.deletes = append(f.deletes, k)
	}
	return nil
}

type fakeNotifier struct {
	orders []string
	err    error
}

func (f *fakeNotifier) OrderPlaced(ctx context.Context, order *models.Order) error {
	f.orders = append(f.orders, order.ID)
	return f.err
}

var errBoom = errors.New("boom")
