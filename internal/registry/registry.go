package registry

import (
	"errors"
	"sync"

	"or-control-backend/internal/models"
)

// ErrRoomNotFound is returned for room ids outside the seeded set
var ErrRoomNotFound = errors.New("room not found")

// Registry is the in-memory room store. It is seeded once at startup and the
// room set never changes afterwards; updates only patch fields of existing
// entries. All returned snapshots are deep copies.
type Registry struct {
	mu    sync.RWMutex
	rooms map[string]models.Room
	order []string
}

// New creates a registry seeded with the given rooms, preserving their order
func New(rooms []models.Room) *Registry {
	reg := &Registry{
		rooms: make(map[string]models.Room, len(rooms)),
		order: make([]string, 0, len(rooms)),
	}
	for _, r := range rooms {
		if _, dup := reg.rooms[r.ID]; dup {
			continue
		}
		reg.rooms[r.ID] = r.Clone()
		reg.order = append(reg.order, r.ID)
	}
	return reg
}

// Get returns a snapshot of one room
func (reg *Registry) Get(id string) (models.Room, error) {
	reg.mu.RLock()
	defer reg.mu.RUnlock()
	room, ok := reg.rooms[id]
	if !ok {
		return models.Room{}, ErrRoomNotFound
	}
	return room.Clone(), nil
}

// List returns snapshots of all rooms in seed order
func (reg *Registry) List() []models.Room {
	reg.mu.RLock()
	defer reg.mu.RUnlock()
	out := make([]models.Room, 0, len(reg.order))
	for _, id := range reg.order {
		out = append(out, reg.rooms[id].Clone())
	}
	return out
}

// Update applies fn to a snapshot of the room and stores the result
// atomically. fn receives and returns a value, so a rejected action can
// simply hand the snapshot back unchanged.
func (reg *Registry) Update(id string, fn func(models.Room) models.Room) (models.Room, error) {
	reg.mu.Lock()
	defer reg.mu.Unlock()
	room, ok := reg.rooms[id]
	if !ok {
		return models.Room{}, ErrRoomNotFound
	}
	updated := fn(room.Clone())
	// identity and placement are fixed at seed time
	updated.ID = room.ID
	reg.rooms[id] = updated
	return updated.Clone(), nil
}

// Len reports the number of seeded rooms
func (reg *Registry) Len() int {
	reg.mu.RLock()
	defer reg.mu.RUnlock()
	return len(reg.order)
}
