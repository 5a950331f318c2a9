// File: life/supervisor_actor.go
package life

import (
	"fmt"
	"time"

	"github.com/lguibr/golife/bollywood"
	"github.com/lguibr/golife/utils"
)

// BoardSupervisorActor owns the board actor's lifecycle: it spawns the board
// with itself registered for Failure notifications, restarts it on crashes
// under a rolling-window budget, and escalates once the budget is exhausted.
// It also fronts the board for inbound AddCells so gateway routing keeps
// working across restarts.
type BoardSupervisorActor struct {
	engine        *bollywood.Engine
	cfg           utils.Config
	boardProducer bollywood.Producer
	boardPID      *bollywood.PID
	restarts      []time.Time
	selfPID       *bollywood.PID
	escalated     bool
	fatalCh       chan struct{}
}

// NewBoardSupervisorProducer creates a producer for the supervisor.
// boardProducer is invoked once at startup and once per restart; fatalCh is
// closed when the restart budget is exhausted.
func NewBoardSupervisorProducer(engine *bollywood.Engine, cfg utils.Config, boardProducer bollywood.Producer, fatalCh chan struct{}) bollywood.Producer {
	return func() bollywood.Actor {
		return &BoardSupervisorActor{
			engine:        engine,
			cfg:           cfg,
			boardProducer: boardProducer,
			fatalCh:       fatalCh,
		}
	}
}

// Receive handles messages for the BoardSupervisorActor.
func (a *BoardSupervisorActor) Receive(ctx bollywood.Context) {
	if a.selfPID == nil {
		a.selfPID = ctx.Self()
	}

	switch msg := ctx.Message().(type) {
	case bollywood.Started:
		a.spawnBoard()

	case AddCells:
		if a.boardPID != nil {
			a.engine.Send(a.boardPID, msg, a.selfPID)
		}

	case bollywood.Failure:
		a.handleFailure(msg)

	case bollywood.Stopping:
		if a.boardPID != nil {
			a.engine.Stop(a.boardPID)
			a.boardPID = nil
		}

	case bollywood.Stopped:

	default:
		fmt.Printf("BoardSupervisor %s: ignoring unknown message type %T\n", a.selfPID, msg)
	}
}

// spawnBoard starts a fresh board incarnation supervised by this actor.
func (a *BoardSupervisorActor) spawnBoard() {
	props := bollywood.NewProps(a.boardProducer).WithSupervisor(a.selfPID)
	a.boardPID = a.engine.Spawn(props)
	fmt.Printf("BoardSupervisor %s: board actor running as %s\n", a.selfPID, a.boardPID)
}

// handleFailure applies the bounded-restart policy: restart the board unless
// the rolling window already holds the full restart budget.
func (a *BoardSupervisorActor) handleFailure(msg bollywood.Failure) {
	if a.escalated {
		return
	}
	if a.boardPID == nil || msg.Who == nil || msg.Who.ID != a.boardPID.ID {
		fmt.Printf("BoardSupervisor %s: failure from unknown child %s, ignoring\n", a.selfPID, msg.Who)
		return
	}

	now := time.Now()
	a.pruneRestarts(now)
	if len(a.restarts) >= a.cfg.MaxRestarts {
		a.escalated = true
		a.boardPID = nil
		fmt.Printf("BoardSupervisor %s: restart budget exhausted (%d in %s), escalating\n",
			a.selfPID, len(a.restarts), a.cfg.RestartWindow)
		if a.fatalCh != nil {
			close(a.fatalCh)
		}
		return
	}

	a.restarts = append(a.restarts, now)
	fmt.Printf("BoardSupervisor %s: board crashed (%v), restarting (%d/%d in window)\n",
		a.selfPID, msg.Reason, len(a.restarts), a.cfg.MaxRestarts)
	a.spawnBoard()
}

// pruneRestarts drops restart records that fell out of the rolling window.
func (a *BoardSupervisorActor) pruneRestarts(now time.Time) {
	cutoff := now.Add(-a.cfg.RestartWindow)
	kept := a.restarts[:0]
	for _, t := range a.restarts {
		if t.After(cutoff) {
			kept = append(kept, t)
		}
	}
	a.restarts = kept
}
