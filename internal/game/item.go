package game

import (
	"fmt"
	"strings"
)

// ItemKind identifies the variant of an Item.
type ItemKind int

const (
	ItemNone ItemKind = iota
	ItemPotion
	ItemKey
	ItemGold
)

// String returns the variant name used when grouping items.
func (k ItemKind) String() string {
	switch k {
	case ItemPotion:
		return "Potion"
	case ItemKey:
		return "Key"
	case ItemGold:
		return "Gold"
	default:
		return "None"
	}
}

func (k ItemKind) MarshalText() ([]byte, error) {
	if k == ItemNone {
		return []byte{}, nil
	}
	return []byte(strings.ToLower(k.String())), nil
}

func (k *ItemKind) UnmarshalText(text []byte) error {
	switch strings.ToLower(string(text)) {
	case "":
		*k = ItemNone
	case "potion":
		*k = ItemPotion
	case "key":
		*k = ItemKey
	case "gold":
		*k = ItemGold
	default:
		return fmt.Errorf("unknown item kind: %s", text)
	}
	return nil
}

// Item is something that lies in a room or is carried by the player.
// Heal applies to potions and Value to gold.
type Item struct {
	Kind  ItemKind `json:"kind" yaml:"kind"`
	Name  string   `json:"name" yaml:"name"`
	Heal  int      `json:"heal,omitempty" yaml:"heal,omitempty"`
	Value int      `json:"value,omitempty" yaml:"value,omitempty"`
}

func NewPotion(name string, heal int) *Item {
	return &Item{Kind: ItemPotion, Name: name, Heal: heal}
}

func NewKey(name string) *Item {
	return &Item{Kind: ItemKey, Name: name}
}

func NewGold(name string, value int) *Item {
	return &Item{Kind: ItemGold, Name: name, Value: value}
}

func (i *Item) Validate() error {
	if i.Name == "" {
		return fmt.Errorf("item name is required")
	}
	switch i.Kind {
	case ItemPotion:
		if i.Heal <= 0 {
			return fmt.Errorf("potion %q: heal must be positive", i.Name)
		}
	case ItemGold:
		if i.Value <= 0 {
			return fmt.Errorf("gold %q: value must be positive", i.Name)
		}
	case ItemKey:
	default:
		return fmt.Errorf("item %q: kind is required", i.Name)
	}
	return nil
}

// Apply performs the item's effect on the session and returns the text to
// show the player. Consumed items are removed from the player's inventory.
func (i *Item) Apply(s *GameState) string {
	switch i.Kind {
	case ItemPotion:
		s.Player.HP += i.Heal
		if s.Rules.ConsumePotions {
			s.Player.Inventory.Remove(i.Name)
		}
		return fmt.Sprintf("You drink %s and recover %d HP. HP: %d", i.Name, i.Heal, s.Player.HP)

	case ItemGold:
		s.AddScore(i.Value)
		s.Player.Inventory.Remove(i.Name)
		return fmt.Sprintf("Shiny gold! It is worth %d coins.", i.Value)

	case ItemKey:
		return fmt.Sprintf("%s does nothing on its own. Perhaps it opens a door.", i.Name)

	default:
		return "Nothing happens."
	}
}
