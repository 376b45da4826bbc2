package game

import (
	"slices"
	"strings"
)

// Inventory is an ordered collection of items. Lookups are by exact name
// and return the first match.
type Inventory struct {
	items []*Item
}

// NewInventory creates an inventory holding the given items in order.
func NewInventory(items ...*Item) *Inventory {
	inv := &Inventory{}
	for _, it := range items {
		inv.Add(it)
	}
	return inv
}

// Add appends an item to the inventory.
func (inv *Inventory) Add(it *Item) {
	inv.items = append(inv.items, it)
}

// Find returns the first item with the given name, or nil if not found.
func (inv *Inventory) Find(name string) *Item {
	for _, it := range inv.items {
		if it.Name == name {
			return it
		}
	}
	return nil
}

// Remove removes the first item with the given name.
// Returns the removed item, or nil if not found.
func (inv *Inventory) Remove(name string) *Item {
	for i, it := range inv.items {
		if it.Name == name {
			inv.items = slices.Delete(inv.items, i, i+1)
			return it
		}
	}
	return nil
}

// HasKind reports whether any item of the given kind is held.
func (inv *Inventory) HasKind(k ItemKind) bool {
	return slices.ContainsFunc(inv.items, func(it *Item) bool { return it.Kind == k })
}

// Items returns a copy of the held items in order.
func (inv *Inventory) Items() []*Item {
	return slices.Clone(inv.items)
}

// Len returns the number of held items.
func (inv *Inventory) Len() int {
	return len(inv.items)
}

// ItemGroup lists the names of all held items of one kind.
type ItemGroup struct {
	Kind  ItemKind
	Names []string
}

// Groups returns the inventory grouped by kind. Groups are ordered by kind
// name and names within a group are sorted.
func (inv *Inventory) Groups() []ItemGroup {
	byKind := map[ItemKind][]string{}
	for _, it := range inv.items {
		byKind[it.Kind] = append(byKind[it.Kind], it.Name)
	}

	groups := make([]ItemGroup, 0, len(byKind))
	for k, names := range byKind {
		slices.Sort(names)
		groups = append(groups, ItemGroup{Kind: k, Names: names})
	}
	slices.SortFunc(groups, func(a, b ItemGroup) int {
		return strings.Compare(a.Kind.String(), b.Kind.String())
	})
	return groups
}

func (inv *Inventory) names() []string {
	names := make([]string, len(inv.items))
	for i, it := range inv.items {
		names[i] = it.Name
	}
	return names
}
