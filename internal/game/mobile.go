package game

import (
	"fmt"

	"github.com/pixil98/go-errors"
)

// Monster guards a room. Its level is also the damage it deals per round.
type Monster struct {
	Name  string `json:"name" yaml:"name"`
	Level int    `json:"level" yaml:"level"`
	HP    int    `json:"hp" yaml:"hp"`
}

// IsAlive reports whether the monster still has hit points.
func (m *Monster) IsAlive() bool {
	return m.HP > 0
}

func (m *Monster) Validate() error {
	el := errors.NewErrorList()

	if m.Name == "" {
		el.Add(fmt.Errorf("monster name is required"))
	}
	if m.Level < 0 {
		el.Add(fmt.Errorf("monster %q: level must not be negative", m.Name))
	}
	if m.HP <= 0 {
		el.Add(fmt.Errorf("monster %q: hp must be positive", m.Name))
	}

	return el.Err()
}
