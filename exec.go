package i8080

// execute runs a decoded instruction against the CPU's register file
// and bus, returning the T-states it costs; Step adds them to the cycle
// counter. An ActionUnrecognized record panics via logUnrecognized,
// naming the opcode and PC. Caller (Step)
// holds c.mu; execute and everything it calls assume that lock is held
// and never re-acquire it.
func (c *CPU) execute(ins Instruction) int {
	switch ins.Action {
	case ActionNothing:
		return 4

	case ActionMovReg:
		return c.execMovReg(ins)

	case ActionIncrementReg:
		return c.execIncrementReg(ins)
	case ActionDecrementReg:
		return c.execDecrementReg(ins)

	case ActionAddReg:
		return c.execAddReg(ins)
	case ActionSubReg:
		return c.execSubReg(ins)
	case ActionCompareReg:
		return c.execCompareReg(ins)
	case ActionAndReg:
		return c.execAndReg(ins)
	case ActionOrReg:
		return c.execOrReg(ins)
	case ActionXorReg:
		return c.execXorReg(ins)
	case ActionComplementReg:
		return c.execComplementReg(ins)
	case ActionRotateReg:
		return c.execRotateReg(ins)
	case ActionDAAReg:
		return c.execDAAReg(ins)

	case ActionStoreRegToMemory:
		return c.execStoreRegToMemory(ins)
	case ActionLoadRegFromMemory:
		return c.execLoadRegFromMemory(ins)
	case ActionStoreReg16ToMemory:
		return c.execStoreReg16ToMemory(ins)
	case ActionLoadReg16FromMemory:
		return c.execLoadReg16FromMemory(ins)

	case ActionLoad16:
		return c.execLoad16(ins)
	case ActionIncrement16:
		c.Regs.Set16(ins.Reg16, c.Regs.Get16(ins.Reg16)+1)
		return 5
	case ActionDecrement16:
		c.Regs.Set16(ins.Reg16, c.Regs.Get16(ins.Reg16)-1)
		return 5
	case ActionAdd16:
		return c.execAdd16(ins)

	case ActionPush16:
		return c.execPush16(ins)
	case ActionPop16:
		return c.execPop16(ins)

	case ActionJump:
		return c.execJump(ins)
	case ActionCall:
		return c.execCall(ins)
	case ActionReturn:
		return c.execReturn(ins)

	case ActionExchange:
		c.Regs.D, c.Regs.H = c.Regs.H, c.Regs.D
		c.Regs.E, c.Regs.L = c.Regs.L, c.Regs.E
		return 5
	case ActionExchangeToStack:
		return c.execExchangeToStack()

	case ActionSetCarry:
		return c.execSetCarry()
	case ActionComplementCarry:
		return c.execComplementCarry()
	case ActionSetInterrupts:
		return c.execSetInterrupts(ins)
	case ActionHalt:
		return c.execHalt()

	case ActionIn8:
		return c.execIn8(ins)
	case ActionOut8:
		return c.execOut8(ins)
	}

	c.logUnrecognized(ins)
	return 4
}

// operand8 resolves an Operand of kind Reg8 or Imm8 to its value.
func (c *CPU) operand8(o Operand) uint8 {
	switch o.Kind {
	case OperandReg8:
		return c.Regs.Get8(o.Reg8, c.bus)
	case OperandImm8:
		return o.Imm8
	}
	panic("i8080: operand8 on non-8-bit operand")
}

// operand16 resolves an Operand of kind Reg16 or Imm16 to its value.
func (c *CPU) operand16(o Operand) uint16 {
	switch o.Kind {
	case OperandReg16:
		return c.Regs.Get16(o.Reg16)
	case OperandImm16:
		return o.Imm16
	}
	panic("i8080: operand16 on non-16-bit operand")
}
