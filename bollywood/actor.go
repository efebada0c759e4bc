package bollywood

// Actor is the interface implemented by anything that can live inside the
// engine. Messages are delivered one at a time; an actor never has to
// guard its own state against concurrent Receive calls.
type Actor interface {
	Receive(ctx Context)
}

// Producer builds a fresh actor instance for Spawn.
type Producer func() Actor

// Props configures actor creation.
type Props struct {
	producer Producer
}

// NewProps wraps a producer. A nil producer is a programmer error.
func NewProps(producer Producer) *Props {
	if producer == nil {
		panic("bollywood: producer cannot be nil")
	}
	return &Props{producer: producer}
}

// Produce creates a new actor instance using the configured producer.
func (p *Props) Produce() Actor {
	return p.producer()
}
