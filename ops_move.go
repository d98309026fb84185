package i8080

// execMovReg implements MOV r,r' and MVI r,d8.
func (c *CPU) execMovReg(ins Instruction) int {
	v := c.operand8(ins.Target)
	c.Regs.Set8(ins.Reg, c.bus, v)

	touchesM := ins.Reg == RegM || (ins.Target.Kind == OperandReg8 && ins.Target.Reg8 == RegM)
	if ins.Target.Kind == OperandImm8 {
		if touchesM {
			return 10 // MVI M,d8
		}
		return 7 // MVI r,d8
	}
	if touchesM {
		return 7 // MOV r,M / MOV M,r
	}
	return 5 // MOV r,r'
}

// execStoreRegToMemory implements STAX rp and STA addr.
func (c *CPU) execStoreRegToMemory(ins Instruction) int {
	v := c.Regs.Get8(ins.Reg, c.bus)
	addr := c.operand16(ins.Target)
	c.bus.WriteB(addr, v)
	if ins.Target.Kind == OperandImm16 {
		return 13 // STA
	}
	return 7 // STAX
}

// execLoadRegFromMemory implements LDAX rp and LDA addr.
func (c *CPU) execLoadRegFromMemory(ins Instruction) int {
	addr := c.operand16(ins.Target)
	c.Regs.Set8(ins.Reg, c.bus, c.bus.ReadB(addr))
	if ins.Target.Kind == OperandImm16 {
		return 13 // LDA
	}
	return 7 // LDAX
}

// execStoreReg16ToMemory implements SHLD.
func (c *CPU) execStoreReg16ToMemory(ins Instruction) int {
	addr := ins.Target.Imm16
	v := c.Regs.Get16(ins.Reg16)
	c.bus.WriteB(addr, uint8(v))
	c.bus.WriteB(addr+1, uint8(v>>8))
	return 16
}

// execLoadReg16FromMemory implements LHLD.
func (c *CPU) execLoadReg16FromMemory(ins Instruction) int {
	addr := ins.Target.Imm16
	lo := c.bus.ReadB(addr)
	hi := c.bus.ReadB(addr + 1)
	c.Regs.Set16(ins.Reg16, uint16(hi)<<8|uint16(lo))
	return 16
}

// execLoad16 implements LXI rp,d16 and SPHL.
func (c *CPU) execLoad16(ins Instruction) int {
	c.Regs.Set16(ins.Reg16, c.operand16(ins.Target))
	if ins.Target.Kind == OperandReg16 {
		return 5 // SPHL
	}
	return 10 // LXI
}

// execPush16 implements PUSH rp, including the PSW masking rules.
func (c *CPU) execPush16(ins Instruction) int {
	v := c.Regs.Get16(ins.Reg16)
	if ins.Reg16 == RegPSW {
		v = (v | uint16(flagR1)) &^ (0x08 | 0x20)
	}
	c.push16(v)
	return 11
}

// execPop16 implements POP rp.
func (c *CPU) execPop16(ins Instruction) int {
	c.Regs.Set16(ins.Reg16, c.pop16())
	return 10
}

// execExchangeToStack implements XTHL: swap HL with the word on top of
// the stack. Reads both bytes before writing either, matching the
// 8080's documented read-then-write ordering.
func (c *CPU) execExchangeToStack() int {
	lo := c.bus.ReadB(c.Regs.SP)
	hi := c.bus.ReadB(c.Regs.SP + 1)
	c.bus.WriteB(c.Regs.SP, c.Regs.L)
	c.bus.WriteB(c.Regs.SP+1, c.Regs.H)
	c.Regs.L, c.Regs.H = lo, hi
	return 18
}
