// File: life/board_actor.go
package life

import (
	"fmt"
	"time"

	"github.com/lguibr/golife/bollywood"
	"github.com/lguibr/golife/utils"
)

// BoardActor is the sole owner of the grid. Every mutation goes through its
// serialized mailbox: ticks advance the simulation, AddCells merges client
// writes, and each mutation ends with a snapshot handed to the broadcaster.
// Receive has no panic guard of its own; a panic reaches the engine, which
// runs the Stopping cleanup and notifies the supervisor.
type BoardActor struct {
	cfg            utils.Config
	grid           Grid
	engine         *bollywood.Engine
	broadcasterPID *bollywood.PID
	ticker         *time.Ticker
	stopTickerCh   chan struct{}
	selfPID        *bollywood.PID
}

// NewBoardActorProducer creates a producer for the BoardActor. The producer
// is reusable: the supervisor calls it again for every restart, so each
// incarnation starts from a fresh all-dead grid.
func NewBoardActorProducer(engine *bollywood.Engine, cfg utils.Config, broadcasterPID *bollywood.PID) bollywood.Producer {
	return func() bollywood.Actor {
		return &BoardActor{
			cfg:            cfg,
			grid:           NewGrid(cfg.GridSize),
			engine:         engine,
			broadcasterPID: broadcasterPID,
			stopTickerCh:   make(chan struct{}),
		}
	}
}

// Receive is the main message handler for the BoardActor.
func (a *BoardActor) Receive(ctx bollywood.Context) {
	if a.selfPID == nil {
		a.selfPID = ctx.Self()
	}

	switch msg := ctx.Message().(type) {
	case bollywood.Started:
		a.ticker = time.NewTicker(a.cfg.TickPeriod)
		go a.runTickerLoop()

	case BoardTick:
		a.grid = NextGeneration(a.grid, a.cfg.BirthColor)
		a.publishSnapshot()

	case AddCells:
		a.grid = MergeCells(a.grid, a.validCells(msg.Cells))
		a.publishSnapshot()

	case bollywood.Stopping:
		a.stopTicker()

	case bollywood.Stopped:
		// Final message, nothing left to release.

	default:
		fmt.Printf("BoardActor %s: ignoring unknown message type %T\n", a.selfPID, msg)
	}
}

// validCells filters a write batch down to in-bounds positions, logging a
// warning for every dropped cell. The rest of the batch applies normally.
func (a *BoardActor) validCells(cells []CellUpdate) []CellUpdate {
	valid := cells[:0:0]
	for _, c := range cells {
		if !a.grid.InBounds(c.X, c.Y) {
			fmt.Printf("BoardActor %s: dropping out-of-range cell (%d, %d)\n", a.selfPID, c.X, c.Y)
			continue
		}
		valid = append(valid, c)
	}
	return valid
}

// publishSnapshot hands an immutable copy of the new state to the
// broadcaster. Fire-and-forget: delivery is the gateway's problem.
func (a *BoardActor) publishSnapshot() {
	a.engine.Send(a.broadcasterPID, BroadcastUpdateCommand{Update: NewBoardUpdate(a.grid)}, a.selfPID)
}

// runTickerLoop forwards ticker fires into the actor's own mailbox so tick
// processing is serialized with every other event.
func (a *BoardActor) runTickerLoop() {
	for {
		select {
		case <-a.stopTickerCh:
			return
		case _, ok := <-a.ticker.C:
			if !ok {
				return
			}
			select {
			case <-a.stopTickerCh:
				return
			default:
				a.engine.Send(a.selfPID, BoardTick{}, nil)
			}
		}
	}
}

// stopTicker cancels the periodic tick. Safe to call more than once.
func (a *BoardActor) stopTicker() {
	if a.ticker != nil {
		a.ticker.Stop()
	}
	select {
	case <-a.stopTickerCh:
	default:
		close(a.stopTickerCh)
	}
}
