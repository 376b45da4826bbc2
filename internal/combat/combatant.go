package combat

// Combatant is anything that can take part in a fight.
type Combatant interface {
	CombatName() string
	// Damage is the fixed number of hit points removed per strike.
	Damage() int
	CurrentHP() int
	ApplyDamage(int)
	IsAlive() bool
}
