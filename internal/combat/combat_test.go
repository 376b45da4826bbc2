package combat

import (
	"testing"

	"github.com/pixil98/go-testutil"
)

type mockCombatant struct {
	name   string
	damage int
	hp     int
}

func (m *mockCombatant) CombatName() string { return m.name }
func (m *mockCombatant) Damage() int        { return m.damage }
func (m *mockCombatant) CurrentHP() int     { return m.hp }
func (m *mockCombatant) ApplyDamage(n int)  { m.hp -= n }
func (m *mockCombatant) IsAlive() bool      { return m.hp > 0 }

func TestFight(t *testing.T) {
	tests := map[string]struct {
		attacker      *mockCombatant
		defender      *mockCombatant
		expOutcome    Outcome
		expAttackerHP int
		expDefenderHP int
		expDealt      int
		expTaken      int
	}{
		"both survive": {
			attacker:      &mockCombatant{name: "hero", damage: 5, hp: 20},
			defender:      &mockCombatant{name: "zombie", damage: 2, hp: 6},
			expOutcome:    OutcomeOngoing,
			expAttackerHP: 18,
			expDefenderHP: 1,
			expDealt:      5,
			expTaken:      2,
		},
		"defender dies without striking back": {
			attacker:      &mockCombatant{name: "hero", damage: 5, hp: 20},
			defender:      &mockCombatant{name: "zombie", damage: 2, hp: 5},
			expOutcome:    OutcomeDefenderDefeated,
			expAttackerHP: 20,
			expDefenderHP: 0,
			expDealt:      5,
			expTaken:      0,
		},
		"overkill is displayed as zero": {
			attacker:      &mockCombatant{name: "hero", damage: 5, hp: 20},
			defender:      &mockCombatant{name: "zombie", damage: 2, hp: 1},
			expOutcome:    OutcomeDefenderDefeated,
			expAttackerHP: 20,
			expDefenderHP: 0,
			expDealt:      5,
		},
		"attacker dies to counter-strike": {
			attacker:      &mockCombatant{name: "hero", damage: 1, hp: 2},
			defender:      &mockCombatant{name: "wolf", damage: 3, hp: 8},
			expOutcome:    OutcomeAttackerDefeated,
			expAttackerHP: -1,
			expDefenderHP: 7,
			expDealt:      1,
			expTaken:      3,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			r := Fight(tt.attacker, tt.defender)

			testutil.AssertEqual(t, "outcome", r.Outcome, tt.expOutcome)
			testutil.AssertEqual(t, "attacker hp", r.AttackerHP, tt.expAttackerHP)
			testutil.AssertEqual(t, "defender hp", r.DefenderHP, tt.expDefenderHP)
			testutil.AssertEqual(t, "dealt", r.AttackerDamage, tt.expDealt)
			testutil.AssertEqual(t, "taken", r.DefenderDamage, tt.expTaken)
		})
	}
}

func TestFight_TwoRounds(t *testing.T) {
	hero := &mockCombatant{name: "hero", damage: 5, hp: 20}
	zombie := &mockCombatant{name: "zombie", damage: 2, hp: 6}

	first := Fight(hero, zombie)
	testutil.AssertEqual(t, "first outcome", first.Outcome, OutcomeOngoing)
	testutil.AssertEqual(t, "zombie hp", zombie.hp, 1)
	testutil.AssertEqual(t, "hero hp", hero.hp, 18)

	second := Fight(hero, zombie)
	testutil.AssertEqual(t, "second outcome", second.Outcome, OutcomeDefenderDefeated)
	testutil.AssertEqual(t, "hero hp after kill", hero.hp, 18)
}
