package cpmbus

import (
	"fmt"

	emu "github.com/go8080/emu"
)

// ErrorBus is the reference "error bus": it panics naming the method
// and address or port on every access, so a test that forgets to call
// CPU.SetBus before running fails loudly at the first bus touch
// instead of silently reading zeroed memory.
type ErrorBus struct{}

func (ErrorBus) ReadB(addr uint16) uint8 {
	panic(fmt.Sprintf("cpmbus: ErrorBus.ReadB at %#04x", addr))
}

func (ErrorBus) ReadW(addr uint16) uint16 {
	panic(fmt.Sprintf("cpmbus: ErrorBus.ReadW at %#04x", addr))
}

func (ErrorBus) WriteB(addr uint16, v uint8) {
	panic(fmt.Sprintf("cpmbus: ErrorBus.WriteB at %#04x = %#02x", addr, v))
}

func (ErrorBus) WriteW(addr uint16, v uint16) {
	panic(fmt.Sprintf("cpmbus: ErrorBus.WriteW at %#04x = %#04x", addr, v))
}

func (ErrorBus) HasInterrupt() bool {
	panic("cpmbus: ErrorBus.HasInterrupt")
}

func (ErrorBus) GetInterrupt() uint8 {
	panic("cpmbus: ErrorBus.GetInterrupt")
}

func (ErrorBus) PushInterrupt(op uint8) {
	panic(fmt.Sprintf("cpmbus: ErrorBus.PushInterrupt %#02x", op))
}

func (ErrorBus) InB(_ *emu.RegisterFile, port uint8) uint8 {
	panic(fmt.Sprintf("cpmbus: ErrorBus.InB port %#02x", port))
}

func (ErrorBus) OutB(_ *emu.RegisterFile, port uint8, a uint8) {
	panic(fmt.Sprintf("cpmbus: ErrorBus.OutB port %#02x = %#02x", port, a))
}

func (ErrorBus) WriteBuffer(addr uint16, data []byte) {
	panic(fmt.Sprintf("cpmbus: ErrorBus.WriteBuffer at %#04x len %d", addr, len(data)))
}
