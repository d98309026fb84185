package i8080

// execDAAReg implements DAA: adjust A to a valid packed-BCD result
// after an 8-bit addition, per the Intel 8080 Programmer's Manual's
// two-step correction.
func (c *CPU) execDAAReg(ins Instruction) int {
	a := c.Regs.A
	cy := c.Regs.GetFlag(FlagC)
	hc := c.Regs.GetFlag(FlagHC)

	var corr uint8
	if hc || a&0x0F > 9 {
		corr = 0x06
	}
	if cy || (a>>4) > 9 || ((a>>4) == 9 && a&0x0F > 9) {
		corr |= 0x60
	}

	result, carryOut, hcOut := addFlags(a, corr, false)
	c.Regs.A = result
	c.Regs.SetZSP(result)
	c.Regs.SetFlag(FlagC, cy || carryOut)
	c.Regs.SetFlag(FlagHC, hcOut)
	return 4
}
