package i8080

// memBusT is a flat 64KiB byte-array bus for testing, the full extent
// of the 8080's address space. It satisfies Bus with an embedded
// single-slot Interrupts latch and I/O ports that just read/write a
// backing array, enough
// for exercising the decoder and execution engine in isolation.
type memBusT struct {
	mem   [65536]byte
	ports [256]uint8
	ints  Interrupts
}

func newMemBusT() *memBusT { return &memBusT{} }

func (b *memBusT) ReadB(addr uint16) uint8 { return b.mem[addr] }

func (b *memBusT) ReadW(addr uint16) uint16 {
	return uint16(b.mem[addr]) | uint16(b.mem[addr+1])<<8
}

func (b *memBusT) WriteB(addr uint16, v uint8) { b.mem[addr] = v }

func (b *memBusT) WriteW(addr uint16, v uint16) {
	b.mem[addr] = uint8(v)
	b.mem[addr+1] = uint8(v >> 8)
}

func (b *memBusT) HasInterrupt() bool        { return b.ints.HasInterrupt() }
func (b *memBusT) GetInterrupt() uint8       { return b.ints.GetInterrupt() }
func (b *memBusT) PushInterrupt(op uint8)    { b.ints.PushInterrupt(op) }
func (b *memBusT) InB(_ *RegisterFile, port uint8) uint8 { return b.ports[port] }
func (b *memBusT) OutB(_ *RegisterFile, port uint8, a uint8) { b.ports[port] = a }

func (b *memBusT) WriteBuffer(addr uint16, data []byte) {
	copy(b.mem[addr:], data)
}

// newTestCPU returns a CPU over a fresh memBusT, in its power-on state.
func newTestCPU() (*CPU, *memBusT) {
	bus := newMemBusT()
	return New(bus), bus
}
