package i8080

import "sync"

// Interrupts is an embeddable single-line interrupt latch that a Bus
// implementation can use to satisfy the HasInterrupt/GetInterrupt/
// PushInterrupt part of the Bus contract, the 8080 having no priority
// levels or vector table of its own (unlike the interrupt controllers
// bolted onto larger CPUs, every pending request carries its own
// opcode to inject).
type Interrupts struct {
	mu      sync.Mutex
	pending bool
	opcode  uint8
}

// HasInterrupt reports whether a request is pending.
func (i *Interrupts) HasInterrupt() bool {
	i.mu.Lock()
	defer i.mu.Unlock()
	return i.pending
}

// GetInterrupt returns the pending opcode and clears the line.
func (i *Interrupts) GetInterrupt() uint8 {
	i.mu.Lock()
	defer i.mu.Unlock()
	i.pending = false
	return i.opcode
}

// PushInterrupt raises a request with the given opcode to inject,
// typically an RST n. A later call before the CPU services the first
// one overwrites it; the 8080 has no interrupt queue.
func (i *Interrupts) PushInterrupt(op uint8) {
	i.mu.Lock()
	defer i.mu.Unlock()
	i.pending = true
	i.opcode = op
}
