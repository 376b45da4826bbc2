package game

import (
	"testing"

	"github.com/pixil98/go-testutil"
)

func TestInventory_FindRemove(t *testing.T) {
	first := NewPotion("Зелье", 5)
	second := NewPotion("Зелье", 7)
	inv := NewInventory(first, NewKey("Ключ"), second)

	testutil.AssertEqual(t, "find first", inv.Find("Зелье") == first, true)
	testutil.AssertEqual(t, "find missing", inv.Find("зелье") == nil, true)

	testutil.AssertEqual(t, "remove first", inv.Remove("Зелье") == first, true)
	testutil.AssertEqual(t, "len", inv.Len(), 2)
	testutil.AssertEqual(t, "remaining", inv.Find("Зелье") == second, true)
	testutil.AssertEqual(t, "remove missing", inv.Remove("Меч") == nil, true)
}

func TestInventory_ItemsIsCopy(t *testing.T) {
	inv := NewInventory(NewKey("Ключ"))

	items := inv.Items()
	items[0] = NewGold("Монета", 1)

	testutil.AssertEqual(t, "unchanged", inv.Find("Ключ") != nil, true)
}

func TestInventory_Groups(t *testing.T) {
	tests := map[string]struct {
		items []*Item
		exp   []ItemGroup
	}{
		"empty": {},
		"single": {
			items: []*Item{NewKey("Старый ключ")},
			exp:   []ItemGroup{{Kind: ItemKey, Names: []string{"Старый ключ"}}},
		},
		"sorted kinds and names": {
			items: []*Item{
				NewPotion("Малое зелье", 5),
				NewKey("Старый ключ"),
				NewGold("Слиток", 50),
				NewPotion("Большое зелье", 10),
			},
			exp: []ItemGroup{
				{Kind: ItemGold, Names: []string{"Слиток"}},
				{Kind: ItemKey, Names: []string{"Старый ключ"}},
				{Kind: ItemPotion, Names: []string{"Большое зелье", "Малое зелье"}},
			},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			groups := NewInventory(tt.items...).Groups()

			testutil.AssertEqual(t, "group count", len(groups), len(tt.exp))
			for i := range tt.exp {
				if i >= len(groups) {
					break
				}
				testutil.AssertEqual(t, "kind", groups[i].Kind, tt.exp[i].Kind)
				testutil.AssertEqual(t, "name count", len(groups[i].Names), len(tt.exp[i].Names))
				for j := range tt.exp[i].Names {
					if j < len(groups[i].Names) {
						testutil.AssertEqual(t, "name", groups[i].Names[j], tt.exp[i].Names[j])
					}
				}
			}
		})
	}
}

func TestInventory_HasKind(t *testing.T) {
	inv := NewInventory(NewPotion("Зелье", 1))

	testutil.AssertEqual(t, "potion", inv.HasKind(ItemPotion), true)
	testutil.AssertEqual(t, "key", inv.HasKind(ItemKey), false)
}
