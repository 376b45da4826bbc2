package commands

import (
	"context"
	"fmt"

	"github.com/pixil98/go-dungeon/internal/combat"
)

// VictoryBonus is added to the score for each monster slain.
const VictoryBonus = 10

// FightHandlerFactory creates handlers that run one round of combat against
// the monster in the current room.
type FightHandlerFactory struct{}

func (f *FightHandlerFactory) Create() (CommandFunc, error) {
	return func(ctx context.Context, cmdCtx *CommandContext) error {
		state := cmdCtx.State
		room := state.Current
		monster := room.Monster
		player := state.Player

		if monster == nil {
			return NewInvalidCommand("There is no monster to fight here")
		}
		if !monster.IsAlive() {
			return NewInvalidCommand("The monster is already defeated")
		}
		if !player.IsAlive() {
			return NewInvalidCommand("You are dead and cannot fight")
		}

		r := combat.Fight(player, monster)
		name := monster.CombatName()
		fmt.Fprintf(cmdCtx.Out, "You hit %s for %d. Monster HP: %d\n", name, r.AttackerDamage, r.DefenderHP)

		if r.Outcome == combat.OutcomeDefenderDefeated {
			room.Monster = nil
			state.AddScore(VictoryBonus)
			_, err := fmt.Fprintf(cmdCtx.Out, "%s is defeated!\n", name)
			return err
		}

		fmt.Fprintf(cmdCtx.Out, "%s strikes back for %d. Your HP: %d\n", name, r.DefenderDamage, r.AttackerHP)

		if r.Outcome == combat.OutcomeAttackerDefeated {
			// The session ends even if the message cannot be shown.
			cmdCtx.Signal = SignalDeath
			text, err := ExpandTemplate(deathTemplate, map[string]any{"Score": state.Score})
			if err != nil {
				return fmt.Errorf("rendering death message: %w", err)
			}
			fmt.Fprintln(cmdCtx.Out, text)
		}

		return nil
	}, nil
}
