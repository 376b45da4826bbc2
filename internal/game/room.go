package game

import (
	"fmt"
	"slices"
	"strings"
)

// Directions lists the directions an exit may face.
var Directions = []string{"north", "south", "east", "west"}

// IsDirection reports whether dir is one of Directions.
func IsDirection(dir string) bool {
	return slices.Contains(Directions, dir)
}

// Exit connects a room to a neighbour in one direction. An exit that
// requires an item kind can only be used while the player carries one.
type Exit struct {
	Direction     string
	To            *Room
	Requires      ItemKind
	LockedMessage string
	UnlockMessage string
}

// Locked reports whether inv lacks the item this exit requires.
func (e *Exit) Locked(inv *Inventory) bool {
	return e.Requires != ItemNone && !inv.HasKind(e.Requires)
}

// Room is a location in the world. Its exits are fixed once the world is
// built; its items and monster change during play.
type Room struct {
	Id          string
	Name        string
	Description string
	Exits       map[string]*Exit
	Items       *Inventory
	Monster     *Monster
}

// Exit returns the exit in the given direction, or nil if there is none.
func (r *Room) Exit(dir string) *Exit {
	return r.Exits[dir]
}

// Describe returns the text shown when the player looks around.
func (r *Room) Describe() string {
	lines := []string{fmt.Sprintf("%s: %s", r.Name, r.Description)}

	if r.Items.Len() > 0 {
		lines = append(lines, fmt.Sprintf("Items: %s", strings.Join(r.Items.names(), ", ")))
	}
	if r.Monster != nil {
		lines = append(lines, fmt.Sprintf("Monster: %s (lvl %d)", r.Monster.Name, r.Monster.Level))
	}

	var dirs []string
	for _, d := range Directions {
		if _, ok := r.Exits[d]; ok {
			dirs = append(dirs, d)
		}
	}
	if len(dirs) > 0 {
		lines = append(lines, fmt.Sprintf("Exits: %s", strings.Join(dirs, ", ")))
	}

	return strings.Join(lines, "\n")
}
