package i8080

import (
	"encoding/binary"
	"errors"
)

// cpuSerializeVersion is incremented whenever the binary layout changes.
const cpuSerializeVersion = 1

// cpuSerializeSize is the number of bytes produced by CPU.Serialize.
// Update this constant whenever the binary layout changes.
const cpuSerializeSize = 1 + 8 + 2 + 2 + 1 + 1 + 8 + 1

// SerializeSize returns the number of bytes needed for Serialize.
func (c *CPU) SerializeSize() int { return cpuSerializeSize }

// Serialize writes the full CPU state into buf, which must be at least
// SerializeSize() bytes. Returns an error if the buffer is too small.
// The bus is not included.
func (c *CPU) Serialize(buf []byte) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if len(buf) < cpuSerializeSize {
		return errors.New("i8080: serialize buffer too small")
	}

	buf[0] = cpuSerializeVersion
	be := binary.BigEndian
	off := 1

	buf[off] = c.Regs.A
	buf[off+1] = c.Regs.B
	buf[off+2] = c.Regs.C
	buf[off+3] = c.Regs.D
	buf[off+4] = c.Regs.E
	buf[off+5] = c.Regs.F
	buf[off+6] = c.Regs.H
	buf[off+7] = c.Regs.L
	off += 8

	be.PutUint16(buf[off:], c.Regs.PC)
	off += 2
	be.PutUint16(buf[off:], c.Regs.SP)
	off += 2

	buf[off] = boolByte(c.Regs.Interrupts)
	off++
	buf[off] = boolByte(c.Regs.Halting)
	off++

	be.PutUint64(buf[off:], c.cycles)
	off += 8

	buf[off] = boolByte(c.stopped)
	return nil
}

func boolByte(b bool) uint8 {
	if b {
		return 1
	}
	return 0
}

// Deserialize restores CPU state from buf, which must be at least
// SerializeSize() bytes. Returns an error if the buffer is too small or
// the version does not match. The bus is left unchanged.
func (c *CPU) Deserialize(buf []byte) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if len(buf) < cpuSerializeSize {
		return errors.New("i8080: deserialize buffer too small")
	}
	if buf[0] != cpuSerializeVersion {
		return errors.New("i8080: unsupported serialize version")
	}

	be := binary.BigEndian
	off := 1

	if c.Regs == nil {
		c.Regs = NewRegisterFile()
	}
	c.Regs.A = buf[off]
	c.Regs.B = buf[off+1]
	c.Regs.C = buf[off+2]
	c.Regs.D = buf[off+3]
	c.Regs.E = buf[off+4]
	c.Regs.F = buf[off+5]
	c.Regs.H = buf[off+6]
	c.Regs.L = buf[off+7]
	off += 8

	c.Regs.PC = be.Uint16(buf[off:])
	off += 2
	c.Regs.SP = be.Uint16(buf[off:])
	off += 2

	c.Regs.Interrupts = buf[off] != 0
	off++
	c.Regs.Halting = buf[off] != 0
	off++

	c.cycles = be.Uint64(buf[off:])
	off += 8

	c.stopped = buf[off] != 0
	return nil
}
