// Package cpmbus implements the i8080.Bus contract with the CP/M
// diagnostic convention the classic TST8080/CPUTEST/8080PRE/8080EXM
// binaries expect: a BDOS call is simulated by patching address 0x0005
// with an OUT/RET pair, and a program signals completion with an OUT
// to port 0.
package cpmbus

import (
	"fmt"
	"log"

	emu "github.com/go8080/emu"
)

// minRAMSize is the smallest address space New accepts: the full
// 8080 64 KiB range.
const minRAMSize = 65536

// Bus wraps a caller-supplied byte slice as the full 8080 address
// space, plus the two CP/M diagnostic patches every test binary in the
// corpus is built to call through.
type Bus struct {
	ram     []byte
	output  []byte
	stopped bool

	ints emu.Interrupts
}

// New wraps ram (which must be at least 64 KiB) as the 8080 address
// space and pre-loads the CP/M diagnostic patches: 0x0000 is OUT 0
// (stop), 0x0005 is OUT 1; RET (the BDOS trampoline CALL 5 lands on).
// It panics if ram is too small.
func New(ram []byte) *Bus {
	if len(ram) < minRAMSize {
		panic(fmt.Sprintf("cpmbus: New requires at least %d bytes of RAM, got %d", minRAMSize, len(ram)))
	}
	b := &Bus{ram: ram}
	b.WriteBuffer(0x0000, []byte{0xD3, 0x00})
	b.WriteBuffer(0x0005, []byte{0xD3, 0x01, 0xC9})
	return b
}

// Output returns everything written through the BDOS console functions
// so far.
func (b *Bus) Output() string { return string(b.output) }

// Stopped reports whether the program executed OUT 0, the CP/M
// diagnostic convention for "finished". i8080.CPU has no notion of
// this; the host loop polls Bus.Stopped after each Step.
func (b *Bus) Stopped() bool { return b.stopped }

func (b *Bus) ReadB(addr uint16) uint8 { return b.ram[addr] }

func (b *Bus) ReadW(addr uint16) uint16 {
	return uint16(b.ram[addr]) | uint16(b.ram[addr+1])<<8
}

func (b *Bus) WriteB(addr uint16, v uint8) { b.ram[addr] = v }

func (b *Bus) WriteW(addr uint16, v uint16) {
	b.ram[addr] = uint8(v)
	b.ram[addr+1] = uint8(v >> 8)
}

// WriteBuffer bulk-loads bytes starting at addr, for installing ROM
// images.
func (b *Bus) WriteBuffer(addr uint16, data []byte) {
	copy(b.ram[addr:], data)
}

func (b *Bus) HasInterrupt() bool     { return b.ints.HasInterrupt() }
func (b *Bus) GetInterrupt() uint8    { return b.ints.GetInterrupt() }
func (b *Bus) PushInterrupt(op uint8) { b.ints.PushInterrupt(op) }

// InB always returns 0xFF: no CP/M diagnostic reads an input port.
func (b *Bus) InB(_ *emu.RegisterFile, port uint8) uint8 {
	log.Printf("[cpmbus] IN from unconnected port %#02x, returning 0xFF", port)
	return 0xFF
}

// OutB implements the two CP/M diagnostic conventions: port 0 stops
// the run, port 1 is the BDOS console trampoline (C=2 prints E, C=9
// prints the $-terminated string at DE). An OUT to any other port is
// logged and ignored rather than treated as fatal, so a slightly-off
// diagnostic ROM still finishes and reports its failure text.
func (b *Bus) OutB(regs *emu.RegisterFile, port uint8, a uint8) {
	switch port {
	case 0x00:
		b.stopped = true

	case 0x01:
		switch regs.C {
		case 0x02:
			b.output = append(b.output, regs.E)
		case 0x09:
			addr := regs.Get16(emu.RegDE)
			for {
				ch := b.ReadB(addr)
				if ch == '$' {
					break
				}
				b.output = append(b.output, ch)
				addr++
			}
		default:
			log.Printf("[cpmbus] undefined BDOS call C=%#02x", regs.C)
		}

	default:
		log.Printf("[cpmbus] OUT to unconnected port %#02x value %#02x", port, a)
	}
}
