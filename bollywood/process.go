package bollywood

import (
	"fmt"
	"runtime/debug"
	"sync/atomic"
)

const defaultMailboxSize = 1024

// process represents the running instance of an actor, including its state and mailbox.
type process struct {
	engine  *Engine
	pid     *PID
	actor   Actor
	mailbox chan *messageEnvelope
	props   *Props
	stopCh  chan struct{} // Signal to stop the run loop
	stopped atomic.Bool
}

func newProcess(engine *Engine, pid *PID, props *Props) *process {
	return &process{
		engine:  engine,
		pid:     pid,
		props:   props,
		mailbox: make(chan *messageEnvelope, defaultMailboxSize),
		stopCh:  make(chan struct{}),
	}
}

// sendMessage delivers a message to the actor's mailbox without blocking.
func (p *process) sendMessage(message interface{}, sender *PID) {
	_, isStopping := message.(Stopping)
	_, isStopped := message.(Stopped)
	if p.stopped.Load() && !isStopping && !isStopped {
		return
	}

	envelope := &messageEnvelope{
		Sender:  sender,
		Message: message,
	}

	select {
	case p.mailbox <- envelope:
	default:
		fmt.Printf("Actor %s mailbox full, dropping message type %T\n", p.pid.ID, message)
	}
}

// signalStop closes the stop channel exactly once.
func (p *process) signalStop() {
	select {
	case <-p.stopCh:
	default:
		close(p.stopCh)
	}
}

// run is the main loop for the actor process.
func (p *process) run() {
	defer func() {
		p.stopped.Store(true)
		if p.actor != nil {
			func() {
				defer func() {
					if r := recover(); r != nil {
						fmt.Printf("Actor %s panicked during Stopped processing: %v\n", p.pid.ID, r)
					}
				}()
				p.invoke(Stopped{}, nil)
			}()
		}
		// Remove from engine *after* Stopped message is processed
		p.engine.remove(p.pid)
	}()

	defer func() {
		if r := recover(); r != nil {
			fmt.Printf("Actor %s panicked: %v\nStack trace:\n%s\n", p.pid.ID, r, string(debug.Stack()))
			p.stopped.Store(true)
			p.signalStop()
		}
	}()

	p.actor = p.props.Produce()
	if p.actor == nil {
		panic(fmt.Sprintf("Actor %s producer returned nil actor", p.pid.ID))
	}

	for {
		select {
		case <-p.stopCh:
			if p.stopped.CompareAndSwap(false, true) {
				// Stop was signalled directly; give the actor its
				// Stopping callback before exiting.
				p.invokeReceive(Stopping{}, nil)
			}
			return

		case envelope, ok := <-p.mailbox:
			if !ok {
				fmt.Printf("Actor %s mailbox closed unexpectedly.\n", p.pid.ID)
				p.stopped.Store(true)
				p.signalStop()
				return
			}

			_, isStopping := envelope.Message.(Stopping)
			_, isStoppedMsg := envelope.Message.(Stopped)
			if p.stopped.Load() && !isStopping && !isStoppedMsg {
				continue
			}

			switch msg := envelope.Message.(type) {
			case Started:
				p.invokeReceive(msg, envelope.Sender)
			case Stopping:
				if p.stopped.CompareAndSwap(false, true) {
					p.invokeReceive(msg, envelope.Sender)
					p.signalStop()
				}
			case Stopped:
				fmt.Printf("Actor %s received unexpected Stopped message via mailbox.\n", p.pid.ID)
				if p.stopped.CompareAndSwap(false, true) {
					p.invokeReceive(msg, envelope.Sender)
					p.signalStop()
				}
			default:
				p.invokeReceive(envelope.Message, envelope.Sender)
			}
		}
	}
}

// invokeReceive calls the actor's Receive method, converting a panic into a
// Failure notification for the supervisor registered on the Props.
func (p *process) invokeReceive(msg interface{}, sender *PID) {
	defer func() {
		if r := recover(); r != nil {
			fmt.Printf("Actor %s panicked during Receive(%T): %v\nStack trace:\n%s\n", p.pid.ID, msg, r, string(debug.Stack()))
			if p.props.supervisor != nil {
				// Run the Stopping cleanup so timers and connections are
				// released even on a crash exit, then notify the supervisor.
				if p.stopped.CompareAndSwap(false, true) {
					func() {
						defer func() {
							if r2 := recover(); r2 != nil {
								fmt.Printf("Actor %s panicked during Stopping cleanup: %v\n", p.pid.ID, r2)
							}
						}()
						p.invoke(Stopping{}, nil)
					}()
				}
				p.signalStop()
				p.engine.Send(p.props.supervisor, Failure{Who: p.pid, Reason: r}, p.pid)
			}
			// Without a supervisor the actor keeps running; the failed
			// message is dropped.
		}
	}()
	p.invoke(msg, sender)
}

// invoke calls Receive without panic protection.
func (p *process) invoke(msg interface{}, sender *PID) {
	ctx := &context{
		engine:  p.engine,
		self:    p.pid,
		sender:  sender,
		message: msg,
	}
	p.actor.Receive(ctx)
}
