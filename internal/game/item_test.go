package game

import (
	"testing"

	"github.com/pixil98/go-testutil"
)

func newItemState(t *testing.T, rules Rules, items ...*Item) *GameState {
	t.Helper()
	w, err := DefaultWorld()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	s := NewGameState(w, rules)
	for _, it := range items {
		s.Player.Inventory.Add(it)
	}
	return s
}

func TestItem_Apply(t *testing.T) {
	tests := map[string]struct {
		item     *Item
		rules    Rules
		expMsg   string
		expHP    int
		expScore int
		expKept  bool
	}{
		"potion consumed": {
			item:   NewPotion("Малое зелье", 5),
			rules:  Rules{ConsumePotions: true},
			expMsg: "You drink Малое зелье and recover 5 HP. HP: 25",
			expHP:  25,
		},
		"potion kept": {
			item:    NewPotion("Малое зелье", 5),
			rules:   Rules{ConsumePotions: false},
			expMsg:  "You drink Малое зелье and recover 5 HP. HP: 25",
			expHP:   25,
			expKept: true,
		},
		"gold": {
			item:     NewGold("Золотой слиток", 50),
			rules:    DefaultRules(),
			expMsg:   "Shiny gold! It is worth 50 coins.",
			expHP:    20,
			expScore: 50,
		},
		"key": {
			item:    NewKey("Старый ключ"),
			rules:   DefaultRules(),
			expMsg:  "Старый ключ does nothing on its own. Perhaps it opens a door.",
			expHP:   20,
			expKept: true,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			s := newItemState(t, tt.rules, tt.item)

			msg := tt.item.Apply(s)

			testutil.AssertEqual(t, "message", msg, tt.expMsg)
			testutil.AssertEqual(t, "hp", s.Player.HP, tt.expHP)
			testutil.AssertEqual(t, "score", s.Score, tt.expScore)
			testutil.AssertEqual(t, "kept", s.Player.Inventory.Find(tt.item.Name) != nil, tt.expKept)
		})
	}
}

func TestItem_PotionHasNoUpperBound(t *testing.T) {
	s := newItemState(t, Rules{ConsumePotions: false}, NewPotion("Зелье", 15))
	potion := s.Player.Inventory.Find("Зелье")

	potion.Apply(s)
	potion.Apply(s)

	testutil.AssertEqual(t, "hp", s.Player.HP, 50)
}

func TestItem_Validate(t *testing.T) {
	tests := map[string]struct {
		item   Item
		expErr string
	}{
		"potion":        {item: *NewPotion("Зелье", 1)},
		"key":           {item: *NewKey("Ключ")},
		"gold":          {item: *NewGold("Монета", 1)},
		"no name":       {item: Item{Kind: ItemKey}, expErr: "item name is required"},
		"no kind":       {item: Item{Name: "Камень"}, expErr: "kind is required"},
		"zero heal":     {item: Item{Kind: ItemPotion, Name: "Вода"}, expErr: "heal must be positive"},
		"negative gold": {item: Item{Kind: ItemGold, Name: "Долг", Value: -1}, expErr: "value must be positive"},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			err := tt.item.Validate()
			if tt.expErr != "" {
				testutil.AssertErrorContains(t, err, tt.expErr)
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}
}

func TestItemKind_Text(t *testing.T) {
	tests := map[string]struct {
		text   string
		exp    ItemKind
		expErr string
	}{
		"potion":     {text: "potion", exp: ItemPotion},
		"mixed case": {text: "Gold", exp: ItemGold},
		"empty":      {text: "", exp: ItemNone},
		"unknown":    {text: "sword", expErr: "unknown item kind: sword"},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			var k ItemKind
			err := k.UnmarshalText([]byte(tt.text))
			if tt.expErr != "" {
				testutil.AssertErrorContains(t, err, tt.expErr)
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			testutil.AssertEqual(t, "kind", k, tt.exp)
		})
	}

	text, err := ItemKey.MarshalText()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	testutil.AssertEqual(t, "marshal", string(text), "key")
}
