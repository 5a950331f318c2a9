package bollywood

// --- System Messages ---

// Started is sent to an actor after its goroutine has started.
type Started struct{}

// Stopping is sent to an actor to signal it should prepare to stop.
// The actor should finish its current message and perform cleanup.
// No more user messages will be delivered after Stopping.
type Stopping struct{}

// Stopped is sent to an actor just before its goroutine exits.
// This is the final message an actor will receive.
type Stopped struct{}

// Failure is sent to the supervisor registered via Props.WithSupervisor
// when an actor panics while processing a message. The failed actor is
// stopped after the notification; restarting it is the supervisor's call.
type Failure struct {
	Who    *PID
	Reason interface{}
}

// messageEnvelope wraps a user message with sender information.
type messageEnvelope struct {
	Sender  *PID
	Message interface{}
}
