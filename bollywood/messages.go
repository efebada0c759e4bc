package bollywood

// Started is the first message an actor receives after Spawn.
type Started struct{}

// Stopping asks the actor to finish up. No user messages follow it.
type Stopping struct{}

// Stopped is delivered right before the actor goroutine exits.
type Stopped struct{}

type messageEnvelope struct {
	Sender  *PID
	Message interface{}
}
