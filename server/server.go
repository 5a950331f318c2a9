// File: server/server.go
package server

import (
	"fmt"
	"sync"

	"github.com/lguibr/golife/bollywood"
	"github.com/lguibr/golife/life"
	"github.com/lguibr/golife/utils"
)

// Server wires the gateway to the actor topology: the broadcaster (outbound
// fan-out), the board supervisor, and under it the board actor itself.
type Server struct {
	engine         *bollywood.Engine
	cfg            utils.Config
	broadcaster    *life.BroadcasterActor
	broadcasterPID *bollywood.PID
	supervisorPID  *bollywood.PID
	fatalCh        chan struct{}
	startOnce      sync.Once
}

// NewServer creates a Server; no actors run until Start.
func NewServer(engine *bollywood.Engine, cfg utils.Config) *Server {
	return &Server{
		engine:  engine,
		cfg:     cfg,
		fatalCh: make(chan struct{}),
	}
}

// Start declares the actor topology. Idempotent: calling it again neither
// errors nor spawns duplicate actors or subscriptions.
func (s *Server) Start() error {
	s.startOnce.Do(func() {
		s.broadcaster = life.NewBroadcasterActor()
		s.broadcasterPID = s.engine.Spawn(bollywood.NewProps(s.broadcaster.Producer()))

		boardProducer := life.NewBoardActorProducer(s.engine, s.cfg, s.broadcasterPID)
		s.supervisorPID = s.engine.Spawn(bollywood.NewProps(
			life.NewBoardSupervisorProducer(s.engine, s.cfg, boardProducer, s.fatalCh)))
	})

	if s.broadcasterPID == nil || s.supervisorPID == nil {
		return fmt.Errorf("server: actor topology failed to start")
	}
	return nil
}

// Stop tears the topology down: the supervisor stops the board (cancelling
// its ticker), the broadcaster closes its connections.
func (s *Server) Stop(reason string) {
	fmt.Printf("Server: stopping (%s)\n", reason)
	if s.supervisorPID != nil {
		s.engine.Stop(s.supervisorPID)
	}
	if s.broadcasterPID != nil {
		s.engine.Stop(s.broadcasterPID)
	}
}

// Fatal is closed when the board's restart budget is exhausted and the
// failure escalates beyond the supervisor.
func (s *Server) Fatal() <-chan struct{} {
	return s.fatalCh
}
