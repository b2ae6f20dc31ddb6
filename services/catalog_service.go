package services

import (
	"context"
	"sync"

	"hotel-site/config"
	"hotel-site/models"
	"hotel-site/utils"
)

// CatalogFallbackMessage is shown when the live catalog could not be loaded.
const CatalogFallbackMessage = "Unable to load rooms — showing curated selections."

// CatalogState is what pages render: the rooms, whether the fetch is still
// pending, and an advisory message when the fallback is in use.
type CatalogState struct {
	Rooms   []models.Room `json:"rooms"`
	Loading bool          `json:"loading"`
	Error   string        `json:"error,omitempty"`
}

// MergeCatalog applies the remote-first, static-fallback policy to the
// outcome of one fetch.
func MergeCatalog(remote []models.Room, err error) CatalogState {
	if err != nil {
		return CatalogState{Rooms: config.FallbackRooms(), Error: CatalogFallbackMessage}
	}
	return CatalogState{Rooms: remote}
}

// RoomCatalog provides the room list for one page load. It starts out with
// the fallback rooms so there is always something to render, fetches once,
// and never revalidates.
type RoomCatalog struct {
	source RoomLister

	once  sync.Once
	mu    sync.RWMutex
	state CatalogState
}

func NewRoomCatalog(source RoomLister) *RoomCatalog {
	return &RoomCatalog{
		source: source,
		state:  CatalogState{Rooms: config.FallbackRooms(), Loading: true},
	}
}

// Load fetches the catalog on first use and returns the resulting state.
// Later calls return the stored state without another request.
func (c *RoomCatalog) Load(ctx context.Context) CatalogState {
	c.once.Do(func() {
		rooms, err := c.source.ListRooms(ctx)
		if err != nil {
			utils.GetLogger().WithError(err).WarnContext(ctx, "Room catalog unavailable, using fallback rooms")
		}
		next := MergeCatalog(rooms, err)

		c.mu.Lock()
		c.state = next
		c.mu.Unlock()
	})
	return c.State()
}

// State returns a snapshot of the current catalog.
func (c *RoomCatalog) State() CatalogState {
	c.mu.RLock()
	defer c.mu.RUnlock()

	rooms := make([]models.Room, len(c.state.Rooms))
	copy(rooms, c.state.Rooms)
	return CatalogState{Rooms: rooms, Loading: c.state.Loading, Error: c.state.Error}
}

// FindRoom returns the room with the given id.
func FindRoom(rooms []models.Room, id uint) (models.Room, bool) {
	if id == 0 {
		return models.Room{}, false
	}
	for _, r := range rooms {
		if r.ID == id {
			return r, true
		}
	}
	return models.Room{}, false
}

// CatalogLoader builds a fresh RoomCatalog per page load.
type CatalogLoader struct {
	Source RoomLister
}

func NewCatalogLoader(source RoomLister) *CatalogLoader {
	return &CatalogLoader{Source: source}
}

// Load runs one fetch and returns the page's catalog state.
func (l *CatalogLoader) Load(ctx context.Context) CatalogState {
	return NewRoomCatalog(l.Source).Load(ctx)
}
