package game

// The methods below satisfy combat.Combatant.

func (p *Player) CombatName() string { return p.Name }
func (p *Player) Damage() int        { return p.Attack }
func (p *Player) CurrentHP() int     { return p.HP }
func (p *Player) ApplyDamage(n int)  { p.HP -= n }

func (m *Monster) CombatName() string { return m.Name }
func (m *Monster) Damage() int        { return m.Level }
func (m *Monster) CurrentHP() int     { return m.HP }
func (m *Monster) ApplyDamage(n int)  { m.HP -= n }
