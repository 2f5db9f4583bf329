package wizard

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/khoahotran/cvos/internal/domain/profile"
	"github.com/khoahotran/cvos/pkg/logger"
)

func newStore(kv *fakeKV) *ProfileStore {
	return NewProfileStore(kv, ScopedKey(uuid.Nil, NamespaceProfile), 0, logger.NewNop())
}

func TestScopedKey(t *testing.T) {
	owner := uuid.MustParse("00000000-0000-0000-0000-000000000001")
	assert.Equal(t, "00000000-0000-0000-0000-000000000001:cvos_wizard_profile", ScopedKey(owner, NamespaceProfile))
}

func TestProfileStore_SaveThenLoad(t *testing.T) {
	kv := newFakeKV()
	s := newStore(kv)

	p, err := profile.UpdateField(profile.New(), profile.FieldFullName, "Jane Doe")
	require.NoError(t, err)
	s.Save(context.Background(), p)

	got, ok, err := s.Load(context.Background())
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, p, got)
}

func TestProfileStore_LoadAbsent(t *testing.T) {
	s := newStore(newFakeKV())
	_, ok, err := s.Load(context.Background())
	require.NoError(t, err)
	assert.False(t, ok)

	p, err := s.LoadOrNew(context.Background())
	require.NoError(t, err)
	assert.Equal(t, profile.New(), p)
}

func TestProfileStore_DiscardsOutdatedShapes(t *testing.T) {
	for name, raw := range map[string]string{
		"legacy tabbed": `{"fullName":"Jane","experience":"- Acme","education":"","skills":""}`,
		"garbage":       `not json`,
		"empty ids":     `{"full_name":"","title":"","email":"","phone":"","location":"","website":"","github":"","summary":"","skills":"","languages":"","interests":"","education":[{"id":"","institution":"","degree":"","location":"","start_date":"","end_date":"","description":""}],"experience":[],"certifications":[]}`,
	} {
		t.Run(name, func(t *testing.T) {
			kv := newFakeKV()
			kv.data[ScopedKey(uuid.Nil, NamespaceProfile)] = raw
			s := newStore(kv)

			_, ok, err := s.Load(context.Background())
			require.NoError(t, err)
			assert.False(t, ok)

			p, err := s.LoadOrNew(context.Background())
			require.NoError(t, err)
			assert.Equal(t, profile.New(), p)
		})
	}
}

func TestProfileStore_FailingSaveIsSilent(t *testing.T) {
	kv := newFakeKV()
	kv.fail = errStoreDown
	s := newStore(kv)

	assert.NotPanics(t, func() { s.Save(context.Background(), profile.New()) })
}

func TestProfileStore_FailingReadIsNotAMiss(t *testing.T) {
	kv := newFakeKV()
	kv.data[ScopedKey(uuid.Nil, NamespaceProfile)] = "stored"
	kv.fail = errStoreDown
	s := newStore(kv)

	_, ok, err := s.Load(context.Background())
	assert.ErrorIs(t, err, errStoreDown)
	assert.False(t, ok)

	_, err = s.LoadOrNew(context.Background())
	assert.ErrorIs(t, err, errStoreDown)
}

func TestProfileStore_SaveSurvivesCanceledRequest(t *testing.T) {
	kv := newFakeKV()
	s := newStore(kv)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	s.Save(ctx, profile.New())

	assert.Len(t, kv.writes, 1)
}
