package scoreboard

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memStore struct {
	items map[string][]byte
	err   error
}

func (m *memStore) LoadItem(key string) ([]byte, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.items[key], nil
}

func (m *memStore) SaveItem(key string, data []byte) error {
	if m.err != nil {
		return m.err
	}
	if m.items == nil {
		m.items = make(map[string][]byte)
	}
	m.items[key] = data
	return nil
}

func TestRecordAndLeader(t *testing.T) {
	var s Scoreboard
	assert.Equal(t, 0, s.Leader())

	s.Record(1)
	s.Record(2)
	s.Record(2)
	s.Record(9)

	assert.Equal(t, [2]int{1, 2}, s.Wins)
	assert.Equal(t, 4, s.Rounds)
	assert.Equal(t, 2, s.Leader())
}

func TestSaveThenLoad(t *testing.T) {
	store := &memStore{}
	s := &Scoreboard{Wins: [2]int{3, 1}, Rounds: 5}
	require.NoError(t, Save(store, s))

	got, err := Load(store)
	require.NoError(t, err)
	assert.Equal(t, s, got)
}

func TestLoadWithoutSavedData(t *testing.T) {
	got, err := Load(&memStore{})
	require.NoError(t, err)
	assert.Equal(t, &Scoreboard{}, got)

	got, err = Load(nil)
	require.NoError(t, err)
	assert.Equal(t, &Scoreboard{}, got)
	assert.NoError(t, Save(nil, got))
}

func TestLoadCorrupt(t *testing.T) {
	store := &memStore{items: map[string][]byte{itemKey: []byte("{")}}
	got, err := Load(store)
	assert.Error(t, err)
	assert.Equal(t, &Scoreboard{}, got)
}

func TestStoreErrorsWrapped(t *testing.T) {
	boom := errors.New("disk gone")
	store := &memStore{err: boom}

	_, err := Load(store)
	assert.ErrorIs(t, err, boom)
	assert.ErrorIs(t, Save(store, &Scoreboard{}), boom)
}
