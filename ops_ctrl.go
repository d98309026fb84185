package i8080

// execHalt implements HLT: latches Halting, which Step turns into a
// 4-cycle idle tick on every subsequent Step until an interrupt clears
// it.
func (c *CPU) execHalt() int {
	c.Regs.Halting = true
	return 7
}

func (c *CPU) execSetCarry() int {
	c.Regs.SetFlag(FlagC, true)
	return 4
}

func (c *CPU) execComplementCarry() int {
	c.Regs.SetFlag(FlagC, !c.Regs.GetFlag(FlagC))
	return 4
}

// execSetInterrupts implements EI/DI. EI takes effect immediately; the
// one-instruction delay real 8080 silicon applies after EI is not
// modelled.
func (c *CPU) execSetInterrupts(ins Instruction) int {
	c.Regs.Interrupts = ins.FlagValue
	return 4
}

func (c *CPU) execIn8(ins Instruction) int {
	c.Regs.A = c.bus.InB(c.Regs, ins.Target.Imm8)
	return 10
}

func (c *CPU) execOut8(ins Instruction) int {
	c.bus.OutB(c.Regs, ins.Target.Imm8, c.Regs.A)
	return 10
}
