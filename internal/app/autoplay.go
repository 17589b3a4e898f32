// internal/app/autoplay.go
package app

import (
	"context"
	"errors"
	"fmt"
)

// ErrStalled is returned when the autoplayer hits its tick limit.
var ErrStalled = errors.New("autoplay: tick limit reached")

// RoundSummary — итог одного сыгранного раунда.
type RoundSummary struct {
	Round  int
	Trees  int
	Trunks int
	Ticks  int
}

// Autoplayer drives a World without a window: it advances animations by a
// fixed step and taps whenever the tree is ready.
type Autoplayer struct {
	world    *World
	step     float64
	maxTicks int
}

// NewAutoplayer creates a driver that steps the world by step seconds per tick.
func NewAutoplayer(world *World, step float64, maxTicks int) *Autoplayer {
	return &Autoplayer{world: world, step: step, maxTicks: maxTicks}
}

// PlayRounds plays until rounds more rounds are finished and reports each one.
// The controller must already be started.
func (a *Autoplayer) PlayRounds(ctx context.Context, rounds int, report func(RoundSummary)) error {
	ctrl := a.world.Controller
	target := ctrl.Round() + rounds
	cur := RoundSummary{Round: ctrl.Round()}

	for tick := 0; ctrl.Round() < target; tick++ {
		if tick >= a.maxTicks {
			return fmt.Errorf("%w after %d ticks in round %d", ErrStalled, tick, ctrl.Round())
		}
		if tick%256 == 0 {
			if err := ctx.Err(); err != nil {
				return err
			}
		}

		a.world.Update(a.step)
		cur.Ticks++
		if !ctrl.Enterable() {
			continue
		}

		before := ctrl.Round()
		ctrl.CollapseTree()
		cur.Trunks++
		if ctrl.CollapsedSegments() == 0 {
			cur.Trees++
		}
		if ctrl.Round() != before {
			if report != nil {
				report(cur)
			}
			cur = RoundSummary{Round: ctrl.Round()}
		}
	}
	return nil
}
