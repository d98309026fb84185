package cpmbus

import (
	"testing"

	emu "github.com/go8080/emu"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewInstallsDiagnosticPatches(t *testing.T) {
	b := New(make([]byte, 65536))
	assert.Equal(t, uint8(0xD3), b.ReadB(0x0000))
	assert.Equal(t, uint8(0x00), b.ReadB(0x0001))
	assert.Equal(t, uint8(0xD3), b.ReadB(0x0005))
	assert.Equal(t, uint8(0x01), b.ReadB(0x0006))
	assert.Equal(t, uint8(0xC9), b.ReadB(0x0007))
}

func TestOutPort0Stops(t *testing.T) {
	b := New(make([]byte, 65536))
	regs := emu.NewRegisterFile()
	require.False(t, b.Stopped())
	b.OutB(regs, 0x00, 0x00)
	assert.True(t, b.Stopped())
}

func TestOutPort1PrintChar(t *testing.T) {
	b := New(make([]byte, 65536))
	regs := emu.NewRegisterFile()
	regs.C = 2
	regs.E = 'X'
	b.OutB(regs, 0x01, 0)
	assert.Equal(t, "X", b.Output())
}

func TestOutPort1PrintString(t *testing.T) {
	b := New(make([]byte, 65536))
	regs := emu.NewRegisterFile()
	b.WriteBuffer(0x2000, []byte("hello$"))
	regs.C = 9
	regs.Set16(emu.RegDE, 0x2000)
	b.OutB(regs, 0x01, 0)
	assert.Equal(t, "hello", b.Output())
}

func TestOutUnconnectedPortDoesNotPanic(t *testing.T) {
	b := New(make([]byte, 65536))
	regs := emu.NewRegisterFile()
	assert.NotPanics(t, func() {
		b.OutB(regs, 0x42, 0xAA)
	})
}

func TestInUnconnectedPortReturnsFF(t *testing.T) {
	b := New(make([]byte, 65536))
	regs := emu.NewRegisterFile()
	assert.Equal(t, uint8(0xFF), b.InB(regs, 0x07))
}

func TestPushInterruptRoundTrip(t *testing.T) {
	b := New(make([]byte, 65536))
	require.False(t, b.HasInterrupt())
	b.PushInterrupt(0xCF)
	require.True(t, b.HasInterrupt())
	assert.Equal(t, uint8(0xCF), b.GetInterrupt())
	assert.False(t, b.HasInterrupt())
}

func TestErrorBusPanicsOnEveryMethod(t *testing.T) {
	eb := ErrorBus{}
	regs := emu.NewRegisterFile()

	assert.Panics(t, func() { eb.ReadB(0) })
	assert.Panics(t, func() { eb.ReadW(0) })
	assert.Panics(t, func() { eb.WriteB(0, 0) })
	assert.Panics(t, func() { eb.WriteW(0, 0) })
	assert.Panics(t, func() { eb.HasInterrupt() })
	assert.Panics(t, func() { eb.GetInterrupt() })
	assert.Panics(t, func() { eb.PushInterrupt(0) })
	assert.Panics(t, func() { eb.InB(regs, 0) })
	assert.Panics(t, func() { eb.OutB(regs, 0, 0) })
	assert.Panics(t, func() { eb.WriteBuffer(0, nil) })
}

func TestBusSatisfiesEmuBus(t *testing.T) {
	var _ emu.Bus = New(make([]byte, 65536))
	var _ emu.Bus = ErrorBus{}
}
