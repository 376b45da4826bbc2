package game

import (
	"bytes"
	_ "embed"
	"fmt"
	"io"
	"os"

	"github.com/pixil98/go-errors"
	"gopkg.in/yaml.v3"
)

//go:embed world.yaml
var defaultWorld []byte

// WorldSpec is the file form of a world.
type WorldSpec struct {
	Start  string     `yaml:"start"`
	Player PlayerSpec `yaml:"player"`
	Rooms  []RoomSpec `yaml:"rooms"`
}

// PlayerSpec holds the hero's starting stats.
type PlayerSpec struct {
	Name   string `yaml:"name"`
	HP     int    `yaml:"hp"`
	Attack int    `yaml:"attack"`
}

type RoomSpec struct {
	Id          string              `yaml:"id"`
	Name        string              `yaml:"name"`
	Description string              `yaml:"description"`
	Exits       map[string]ExitSpec `yaml:"exits"`
	Items       []Item              `yaml:"items,omitempty"`
	Monster     *Monster            `yaml:"monster,omitempty"`
}

type ExitSpec struct {
	Room          string   `yaml:"room"`
	Requires      ItemKind `yaml:"requires,omitempty"`
	LockedMessage string   `yaml:"locked_message,omitempty"`
	UnlockMessage string   `yaml:"unlock_message,omitempty"`
}

// Validate checks the spec for internal consistency, reporting every problem found.
func (ws *WorldSpec) Validate() error {
	el := errors.NewErrorList()

	ids := make(map[string]bool, len(ws.Rooms))
	for i, r := range ws.Rooms {
		if r.Id == "" {
			el.Add(fmt.Errorf("room %d: id is required", i))
			continue
		}
		if ids[r.Id] {
			el.Add(fmt.Errorf("room %q: duplicate id", r.Id))
		}
		ids[r.Id] = true
	}

	if ws.Start == "" {
		el.Add(fmt.Errorf("start room is required"))
	} else if !ids[ws.Start] {
		el.Add(fmt.Errorf("start room %q does not exist", ws.Start))
	}

	if ws.Player.Name == "" {
		el.Add(fmt.Errorf("player name is required"))
	}
	if ws.Player.HP <= 0 {
		el.Add(fmt.Errorf("player hp must be positive"))
	}

	for _, r := range ws.Rooms {
		if r.Name == "" {
			el.Add(fmt.Errorf("room %q: name is required", r.Id))
		}
		for dir, exit := range r.Exits {
			if !IsDirection(dir) {
				el.Add(fmt.Errorf("room %q: unknown direction %q", r.Id, dir))
			}
			if !ids[exit.Room] {
				el.Add(fmt.Errorf("room %q: exit %s leads to unknown room %q", r.Id, dir, exit.Room))
			}
		}
		for i := range r.Items {
			if err := r.Items[i].Validate(); err != nil {
				el.Add(fmt.Errorf("room %q: %w", r.Id, err))
			}
		}
		if r.Monster != nil {
			if err := r.Monster.Validate(); err != nil {
				el.Add(fmt.Errorf("room %q: %w", r.Id, err))
			}
		}
	}

	return el.Err()
}

// World is the room graph built from a WorldSpec. The graph's links never
// change after Build; room contents do.
type World struct {
	rooms  map[string]*Room
	order  []string
	start  *Room
	player PlayerSpec
}

// DefaultWorld builds a fresh copy of the built-in world.
func DefaultWorld() (*World, error) {
	return LoadWorld(bytes.NewReader(defaultWorld))
}

// LoadWorldFile builds a world from a YAML file on disk.
func LoadWorldFile(path string) (*World, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening world file: %w", err)
	}
	defer func() { _ = f.Close() }()

	return LoadWorld(f)
}

// LoadWorld decodes a YAML world spec and builds it.
func LoadWorld(r io.Reader) (*World, error) {
	var spec WorldSpec
	if err := yaml.NewDecoder(r).Decode(&spec); err != nil {
		return nil, fmt.Errorf("decoding world: %w", err)
	}
	return BuildWorld(&spec)
}

// BuildWorld validates spec and links its rooms together.
func BuildWorld(spec *WorldSpec) (*World, error) {
	if err := spec.Validate(); err != nil {
		return nil, fmt.Errorf("validating world: %w", err)
	}

	w := &World{
		rooms:  make(map[string]*Room, len(spec.Rooms)),
		player: spec.Player,
	}

	for _, rs := range spec.Rooms {
		room := &Room{
			Id:          rs.Id,
			Name:        rs.Name,
			Description: rs.Description,
			Exits:       make(map[string]*Exit, len(rs.Exits)),
			Items:       NewInventory(),
		}
		for _, it := range rs.Items {
			room.Items.Add(&it)
		}
		if rs.Monster != nil {
			m := *rs.Monster
			room.Monster = &m
		}
		w.rooms[rs.Id] = room
		w.order = append(w.order, rs.Id)
	}

	for _, rs := range spec.Rooms {
		room := w.rooms[rs.Id]
		for dir, es := range rs.Exits {
			room.Exits[dir] = &Exit{
				Direction:     dir,
				To:            w.rooms[es.Room],
				Requires:      es.Requires,
				LockedMessage: es.LockedMessage,
				UnlockMessage: es.UnlockMessage,
			}
		}
	}

	w.start = w.rooms[spec.Start]
	return w, nil
}

// Room returns the room with the given id, or nil if not found.
func (w *World) Room(id string) *Room {
	return w.rooms[id]
}

// Rooms returns every room in definition order.
func (w *World) Rooms() []*Room {
	rooms := make([]*Room, len(w.order))
	for i, id := range w.order {
		rooms[i] = w.rooms[id]
	}
	return rooms
}

// Start returns the room a new game begins in.
func (w *World) Start() *Room {
	return w.start
}

// NewPlayer creates a hero with the world's starting stats and an empty inventory.
func (w *World) NewPlayer() *Player {
	return &Player{
		Name:      w.player.Name,
		HP:        w.player.HP,
		Attack:    w.player.Attack,
		Inventory: NewInventory(),
	}
}
