package wizard

import (
	"context"
	"errors"
	"sync"

	"github.com/khoahotran/cvos/internal/application/service"
)

type fakeKV struct {
	mu     sync.Mutex
	data   map[string]string
	writes []string
	fail   error
}

func newFakeKV() *fakeKV {
	return &fakeKV{data: map[string]string{}}
}

func (f *fakeKV) Get(_ context.Context, key string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.fail != nil {
		return "", f.fail
	}
	v, ok := f.data[key]
	if !ok {
		return "", service.ErrKeyNotFound
	}
	return v, nil
}

func (f *fakeKV) Set(_ context.Context, key, value string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.fail != nil {
		return f.fail
	}
	f.data[key] = value
	f.writes = append(f.writes, value)
	return nil
}

var errStoreDown = errors.New("store unavailable")
