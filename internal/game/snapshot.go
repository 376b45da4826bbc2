package game

import (
	"fmt"

	"github.com/pixil98/go-errors"
)

// Snapshot is the persisted form of a GameState.
type Snapshot struct {
	Player PlayerSnapshot          `json:"player"`
	Room   string                  `json:"room"`
	Score  int                     `json:"score"`
	Rooms  map[string]RoomSnapshot `json:"rooms"`
}

type PlayerSnapshot struct {
	Name      string `json:"name"`
	HP        int    `json:"hp"`
	Attack    int    `json:"attack"`
	Inventory []Item `json:"inventory"`
}

// RoomSnapshot records the contents of one room.
type RoomSnapshot struct {
	Items   []Item   `json:"items"`
	Monster *Monster `json:"monster,omitempty"`
}

// Validate satisfies storage.ValidatingSpec.
func (s *Snapshot) Validate() error {
	el := errors.NewErrorList()

	if s.Room == "" {
		el.Add(fmt.Errorf("room is required"))
	}
	if s.Player.Name == "" {
		el.Add(fmt.Errorf("player name is required"))
	}
	for i := range s.Player.Inventory {
		el.Add(s.Player.Inventory[i].Validate())
	}
	for id, rs := range s.Rooms {
		for i := range rs.Items {
			if err := rs.Items[i].Validate(); err != nil {
				el.Add(fmt.Errorf("room %q: %w", id, err))
			}
		}
	}

	return el.Err()
}

// Snapshot captures the session and the contents of every room.
func (s *GameState) Snapshot() *Snapshot {
	snap := &Snapshot{
		Player: PlayerSnapshot{
			Name:      s.Player.Name,
			HP:        s.Player.HP,
			Attack:    s.Player.Attack,
			Inventory: copyItems(s.Player.Inventory),
		},
		Room:  s.Current.Id,
		Score: s.Score,
		Rooms: make(map[string]RoomSnapshot),
	}

	for _, r := range s.World.Rooms() {
		rs := RoomSnapshot{Items: copyItems(r.Items)}
		if r.Monster != nil {
			m := *r.Monster
			rs.Monster = &m
		}
		snap.Rooms[r.Id] = rs
	}

	return snap
}

// Restore replaces the session with snap. Every room snap names is checked
// against the world before anything is changed.
func (s *GameState) Restore(snap *Snapshot) error {
	if s.World == nil {
		return ErrNoWorld
	}

	current := s.World.Room(snap.Room)
	if current == nil {
		return fmt.Errorf("%w: %q", ErrUnknownRoom, snap.Room)
	}
	for id := range snap.Rooms {
		if s.World.Room(id) == nil {
			return fmt.Errorf("%w: %q", ErrUnknownRoom, id)
		}
	}

	s.Player = &Player{
		Name:      snap.Player.Name,
		HP:        snap.Player.HP,
		Attack:    snap.Player.Attack,
		Inventory: inventoryOf(snap.Player.Inventory),
	}
	s.Current = current
	s.Score = snap.Score

	for id, rs := range snap.Rooms {
		room := s.World.Room(id)
		room.Items = inventoryOf(rs.Items)
		room.Monster = nil
		if rs.Monster != nil {
			m := *rs.Monster
			room.Monster = &m
		}
	}

	return nil
}

func copyItems(inv *Inventory) []Item {
	items := make([]Item, 0, inv.Len())
	for _, it := range inv.Items() {
		items = append(items, *it)
	}
	return items
}

func inventoryOf(items []Item) *Inventory {
	inv := NewInventory()
	for _, it := range items {
		inv.Add(&it)
	}
	return inv
}
