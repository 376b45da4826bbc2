package game

// Player is the hero controlled from the console.
type Player struct {
	Name      string
	HP        int
	Attack    int
	Inventory *Inventory
}

// IsAlive reports whether the player still has hit points.
func (p *Player) IsAlive() bool {
	return p.HP > 0
}
