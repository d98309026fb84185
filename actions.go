package i8080

// Action tags the semantic operation a decoded instruction performs.
// Decoding never executes an action; it only classifies the opcode.
type Action uint8

const (
	ActionUnrecognized Action = iota // sentinel: should never survive a complete table
	ActionNothing                    // NOP and the documented NOP aliases
	ActionMovReg                     // MOV/MVI: Reg <- Target
	ActionIncrementReg                // INR
	ActionDecrementReg                // DCR
	ActionAddReg                     // ADD/ADC/ADI/ACI
	ActionSubReg                     // SUB/SBB/SUI/SBI
	ActionCompareReg                 // CMP/CPI
	ActionAndReg                     // ANA/ANI
	ActionOrReg                      // ORA/ORI
	ActionXorReg                     // XRA/XRI
	ActionComplementReg               // CMA
	ActionRotateReg                   // RLC/RRC/RAL/RAR
	ActionDAAReg                      // DAA
	ActionStoreRegToMemory             // STAX/STA
	ActionLoadRegFromMemory            // LDAX/LDA
	ActionStoreReg16ToMemory           // SHLD
	ActionLoadReg16FromMemory          // LHLD
	ActionLoad16                      // LXI/SPHL
	ActionIncrement16                 // INX
	ActionDecrement16                 // DCX
	ActionAdd16                       // DAD
	ActionPush16                      // PUSH
	ActionPop16                       // POP
	ActionJump                        // JMP/Jcc (and the documented JMP alias 0xCB)
	ActionCall                        // CALL/Ccc/RST (and the documented CALL aliases)
	ActionReturn                      // RET/Rcc (and the documented RET alias 0xD9)
	ActionExchange                    // XCHG
	ActionExchangeToStack              // XTHL
	ActionSetCarry                    // STC
	ActionComplementCarry              // CMC
	ActionSetInterrupts                // EI/DI
	ActionHalt                        // HLT
	ActionIn8                        // IN
	ActionOut8                        // OUT
)

// OperandKind tags where the data for an instruction's Target lives.
type OperandKind uint8

const (
	OperandNone OperandKind = iota
	OperandReg8
	OperandReg16
	OperandImm8
	OperandImm16
)

// Operand is a tagged union over the four operand shapes the decoder
// can produce. Only the field matching Kind is meaningful.
type Operand struct {
	Kind  OperandKind
	Reg8  Register8
	Reg16 Register16
	Imm8  uint8
	Imm16 uint16
}

// Instruction is the record the decoder produces for a single opcode.
// It is consumed once by the execution engine and then discarded.
type Instruction struct {
	Opcode uint8
	Length uint8
	Action Action
	Target Operand

	// Reg/Reg16 name the primary register or pair the action mutates,
	// independent of Target (e.g. for MOV B,C, Reg=B and Target is
	// Reg8(C); for INR M, Reg=M and Target is unused).
	Reg   Register8
	Reg16 Register16

	// Cond carries the branch condition for Jump/Call/Return.
	Cond Condition

	WithCarry  bool // ADC/SBB fold the carry flag into the operation
	Right      bool // rotate direction: true = right (RRC/RAR)
	Arithmetic bool // rotate variant: true = RAL/RAR, false = RLC/RRC
	FlagValue  bool // value written by SetCarry (STC, always true) or SetInterrupts (EI=true, DI=false)
}
