package i8080

func init() {
	registerNOPs()
	registerHLT()
	registerDIEI()
	registerINOUT()
}

// registerNOPs registers the documented NOP (0x00), its seven undocumented
// aliases (0x08, 0x10, 0x18, 0x20, 0x28, 0x30, 0x38), and the five
// undocumented opcodes that superficially resemble JMP/CALL/RET
// (0xCB, 0xD9, 0xDD, 0xED, 0xFD) but are specified as plain no-ops, not
// control-flow aliases.
func registerNOPs() {
	opcodes := []byte{
		0x00, 0x08, 0x10, 0x18, 0x20, 0x28, 0x30, 0x38,
		0xCB, 0xD9, 0xDD, 0xED, 0xFD,
	}
	for _, opcode := range opcodes {
		opcodeTable[opcode] = opNOP
	}
}

func opNOP(c *CPU) {
	c.cycles += 4
}

// registerHLT registers HLT (0x76), the one opcode carved out of the
// otherwise-regular MOV encoding space (01DDDSSS with D=S=regM).
func registerHLT() {
	opcodeTable[0x76] = opHLT
}

func opHLT(c *CPU) {
	c.halted = true
	c.cycles += 7
}

// registerDIEI registers DI (0xF3) and EI (0xFB).
func registerDIEI() {
	opcodeTable[0xF3] = opDI
	opcodeTable[0xFB] = opEI
}

func opDI(c *CPU) {
	c.ime = false
	c.eiPending = false
	c.cycles += 4
}

// opEI sets ime only after the next instruction completes (see Step),
// modeling the documented one-instruction delay that lets a RET
// immediately following EI always run before an interrupt is taken.
func opEI(c *CPU) {
	c.eiPending = true
	c.cycles += 4
}

// registerINOUT registers IN port (0xDB) and OUT port (0xD3).
func registerINOUT() {
	opcodeTable[0xDB] = opIN
	opcodeTable[0xD3] = opOUT
}

func opIN(c *CPU) {
	port := c.fetchByte()
	c.A = c.PortIn(port)
	c.cycles += 10
}

func opOUT(c *CPU) {
	port := c.fetchByte()
	c.PortOut(port, c.A)
	c.cycles += 10
}
