package i8080

// execAndReg implements ANA/ANI. The 8080 sets half-carry from the
// logical OR of bit 3 of the two operands, a documented hardware
// quirk rather than the half-carry an AND would otherwise produce.
func (c *CPU) execAndReg(ins Instruction) int {
	a := c.Regs.Get8(ins.Reg, c.bus)
	operand := c.operand8(ins.Target)
	result := a & operand
	c.Regs.Set8(ins.Reg, c.bus, result)
	c.Regs.SetZSP(result)
	c.Regs.SetFlag(FlagC, false)
	c.Regs.SetFlag(FlagHC, (a|operand)&0x08 != 0)
	return arithCycles(ins)
}

func (c *CPU) execOrReg(ins Instruction) int {
	a := c.Regs.Get8(ins.Reg, c.bus)
	operand := c.operand8(ins.Target)
	result := a | operand
	c.Regs.Set8(ins.Reg, c.bus, result)
	c.Regs.SetZSP(result)
	c.Regs.SetFlag(FlagC, false)
	c.Regs.SetFlag(FlagHC, false)
	return arithCycles(ins)
}

func (c *CPU) execXorReg(ins Instruction) int {
	a := c.Regs.Get8(ins.Reg, c.bus)
	operand := c.operand8(ins.Target)
	result := a ^ operand
	c.Regs.Set8(ins.Reg, c.bus, result)
	c.Regs.SetZSP(result)
	c.Regs.SetFlag(FlagC, false)
	c.Regs.SetFlag(FlagHC, false)
	return arithCycles(ins)
}

// execComplementReg implements CMA: one's-complement A. No flags are
// affected.
func (c *CPU) execComplementReg(ins Instruction) int {
	c.Regs.A = ^c.Regs.A
	return 4
}
