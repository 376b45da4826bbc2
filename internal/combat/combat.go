package combat

// Outcome describes how a round ended.
type Outcome int

const (
	// OutcomeOngoing means both sides are still standing.
	OutcomeOngoing Outcome = iota
	// OutcomeDefenderDefeated means the attacker's strike finished the defender.
	OutcomeDefenderDefeated
	// OutcomeAttackerDefeated means the defender's counter-strike finished the attacker.
	OutcomeAttackerDefeated
)

// Round is the record of a single exchange of blows.
type Round struct {
	AttackerDamage int
	DefenderDamage int
	AttackerHP     int
	DefenderHP     int
	Outcome        Outcome
}

// Fight runs one round. The attacker always strikes first; the defender
// strikes back only if it survived. Nothing is random.
func Fight(attacker, defender Combatant) Round {
	r := Round{AttackerDamage: attacker.Damage()}
	defender.ApplyDamage(r.AttackerDamage)

	if !defender.IsAlive() {
		r.AttackerHP = attacker.CurrentHP()
		r.DefenderHP = clamp(defender.CurrentHP())
		r.Outcome = OutcomeDefenderDefeated
		return r
	}

	r.DefenderDamage = defender.Damage()
	attacker.ApplyDamage(r.DefenderDamage)

	r.AttackerHP = attacker.CurrentHP()
	r.DefenderHP = clamp(defender.CurrentHP())
	if !attacker.IsAlive() {
		r.Outcome = OutcomeAttackerDefeated
	}
	return r
}

// clamp hides negative hit points from display.
func clamp(hp int) int {
	return max(hp, 0)
}
