package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hotel-site/config"
	"hotel-site/models"
)

func TestRoomCatalogInitialState(t *testing.T) {
	st := NewRoomCatalog(&fakeBackend{}).State()

	assert.True(t, st.Loading)
	assert.Empty(t, st.Error)
	assert.Equal(t, config.FallbackRooms(), st.Rooms)
}

func TestRoomCatalogLoadSuccess(t *testing.T) {
	remote := []models.Room{{ID: 7, Name: "Garden Room", PricePerNight: 180}}
	backend := &fakeBackend{rooms: remote}
	catalog := NewRoomCatalog(backend)

	st := catalog.Load(context.Background())
	assert.False(t, st.Loading)
	assert.Empty(t, st.Error)
	assert.Equal(t, remote, st.Rooms)

	catalog.Load(context.Background())
	assert.Equal(t, 1, backend.listCalls)
}

func TestRoomCatalogLoadEmptyListIsNotAnError(t *testing.T) {
	st := NewRoomCatalog(&fakeBackend{rooms: []models.Room{}}).Load(context.Background())

	assert.Empty(t, st.Rooms)
	assert.Empty(t, st.Error)
	assert.False(t, st.Loading)
}

func TestRoomCatalogLoadFailureUsesFallback(t *testing.T) {
	backend := &fakeBackend{roomsErr: ErrServiceUnreachable}

	st := NewRoomCatalog(backend).Load(context.Background())
	assert.False(t, st.Loading)
	assert.Equal(t, CatalogFallbackMessage, st.Error)
	require.Len(t, st.Rooms, 3)
	assert.Equal(t, []uint{1, 2, 3}, []uint{st.Rooms[0].ID, st.Rooms[1].ID, st.Rooms[2].ID})
	assert.Equal(t, models.Price(120), st.Rooms[0].PricePerNight)
}

func TestRoomCatalogStateIsACopy(t *testing.T) {
	catalog := NewRoomCatalog(&fakeBackend{rooms: []models.Room{{ID: 7, Name: "Garden Room"}}})
	st := catalog.Load(context.Background())
	st.Rooms[0].Name = "changed"

	assert.Equal(t, "Garden Room", catalog.State().Rooms[0].Name)
}

func TestCatalogLoaderFetchesPerLoad(t *testing.T) {
	backend := &fakeBackend{rooms: []models.Room{{ID: 7}}}
	loader := NewCatalogLoader(backend)

	loader.Load(context.Background())
	loader.Load(context.Background())
	assert.Equal(t, 2, backend.listCalls)
}

func TestFindRoom(t *testing.T) {
	room, ok := FindRoom(testRooms(), 2)
	require.True(t, ok)
	assert.Equal(t, "Executive Suite", room.Name)

	_, ok = FindRoom(testRooms(), 0)
	assert.False(t, ok)
	_, ok = FindRoom(testRooms(), 42)
	assert.False(t, ok)
}
