package sink

// Null is a file sink stand-in for a Logger whose file never opened.
// Every write is counted as dropped and reports ErrNotOpen.
type Null struct {
	stats Stats
}

// NewNull creates a Null sink
func NewNull() *Null {
	return &Null{}
}

func (n *Null) Write(p []byte) (int, error) {
	n.stats.IncrementDropped()
	return 0, ErrNotOpen
}

func (n *Null) EndLine() error {
	n.stats.IncrementDropped()
	return ErrNotOpen
}

func (n *Null) Stats() Snapshot {
	return n.stats.GetSnapshot()
}

func (n *Null) Close() error {
	return nil
}
