package i8080

func init() {
	registerJMP()
	registerJcc()
	registerCALL()
	registerCcc()
	registerRET()
	registerRcc()
	registerRST()
}

// registerJMP registers the unconditional JMP a16 (0xC3). 0xCB is an
// undocumented slot left to the NOP fallback in ops_ctrl.go, not a JMP
// alias.
func registerJMP() {
	opcodeTable[0xC3] = opJMP
}

func opJMP(c *CPU) {
	c.PC = c.fetchWord()
	c.cycles += 10
}

// registerJcc registers the eight conditional jumps Jcc a16: 11CCC010.
func registerJcc() {
	for cc := byte(0); cc < 8; cc++ {
		condition := cc
		opcodeTable[0xC2|condition<<3] = func(c *CPU) { opJcc(c, condition) }
	}
}

func opJcc(c *CPU, cc byte) {
	target := c.fetchWord()
	if c.condition(cc) {
		c.PC = target
	}
	c.cycles += 10
}

// registerCALL registers the unconditional CALL a16 (0xCD). 0xDD, 0xED,
// and 0xFD are undocumented slots left to the NOP fallback in
// ops_ctrl.go, not CALL aliases.
func registerCALL() {
	opcodeTable[0xCD] = opCALL
}

func opCALL(c *CPU) {
	target := c.fetchWord()
	c.call(target)
	c.cycles += 17
}

// registerCcc registers the eight conditional calls Ccc a16: 11CCC100.
func registerCcc() {
	for cc := byte(0); cc < 8; cc++ {
		condition := cc
		opcodeTable[0xC4|condition<<3] = func(c *CPU) { opCcc(c, condition) }
	}
}

func opCcc(c *CPU, cc byte) {
	target := c.fetchWord()
	if c.condition(cc) {
		c.call(target)
		c.cycles += 17
	} else {
		c.cycles += 11
	}
}

// registerRET registers the unconditional RET (0xC9). 0xD9 is an
// undocumented slot left to the NOP fallback in ops_ctrl.go, not a RET
// alias.
func registerRET() {
	opcodeTable[0xC9] = opRET
}

func opRET(c *CPU) {
	c.ret()
	c.cycles += 10
}

// registerRcc registers the eight conditional returns Rcc: 11CCC000.
func registerRcc() {
	for cc := byte(0); cc < 8; cc++ {
		condition := cc
		opcodeTable[0xC0|condition<<3] = func(c *CPU) { opRcc(c, condition) }
	}
}

func opRcc(c *CPU, cc byte) {
	if c.condition(cc) {
		c.ret()
		c.cycles += 11
	} else {
		c.cycles += 5
	}
}

// registerRST registers the eight one-byte restarts RST n: 11NNN111.
func registerRST() {
	for n := byte(0); n < 8; n++ {
		vec := n
		opcodeTable[0xC7|vec<<3] = func(c *CPU) { c.rst(vec); c.cycles += 11 }
	}
}
