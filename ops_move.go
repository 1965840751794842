package i8080

func init() {
	registerMOV()
	registerMVI()
	registerLXI()
	registerSTAXLDAX()
	registerSTALDA()
	registerSHLDLHLD()
	registerXCHG()
	registerXTHL()
	registerSPHL()
	registerPCHL()
	registerPUSHPOP()
}

// registerMOV registers the 64 (minus HLT) MOV r1,r2 opcodes.
// Encoding: 01DDDSSS, D=destination regField, S=source regField.
// 0x76 (D=M,S=M) is HLT, not MOV M,M; it is registered separately by
// registerHLT in ops_ctrl.go.
func registerMOV() {
	for dst := regField(0); dst < 8; dst++ {
		for src := regField(0); src < 8; src++ {
			if dst == regM && src == regM {
				continue
			}
			opcode := 0x40 | byte(dst)<<3 | byte(src)
			d, s := dst, src
			opcodeTable[opcode] = func(c *CPU) { opMOV(c, d, s) }
		}
	}
}

func opMOV(c *CPU, dst, src regField) {
	c.set(dst, c.get(src))
	if dst == regM || src == regM {
		c.cycles += 7
	} else {
		c.cycles += 5
	}
}

// registerMVI registers MVI r,d8. Encoding: 00DDD110 d8.
func registerMVI() {
	for dst := regField(0); dst < 8; dst++ {
		opcode := 0x06 | byte(dst)<<3
		d := dst
		opcodeTable[opcode] = func(c *CPU) { opMVI(c, d) }
	}
}

func opMVI(c *CPU, dst regField) {
	imm := c.fetchByte()
	c.set(dst, imm)
	if dst == regM {
		c.cycles += 10
	} else {
		c.cycles += 7
	}
}

// registerLXI registers LXI rp,d16 for BC, DE, HL, SP. Encoding: 00RP0001 d16.
func registerLXI() {
	for _, rp := range []rpField{rpBC, rpDE, rpHL, rpSP} {
		opcode := 0x01 | byte(rp)<<4
		r := rp
		opcodeTable[opcode] = func(c *CPU) { opLXI(c, r) }
	}
}

func opLXI(c *CPU, rp rpField) {
	imm := c.fetchWord()
	c.setRP(rp, imm)
	c.cycles += 10
}

// registerSTAXLDAX registers STAX B/D and LDAX B/D (only BC and DE are
// valid register pairs for these opcodes).
func registerSTAXLDAX() {
	opcodeTable[0x02] = func(c *CPU) { c.WriteByte(c.bc(), c.A); c.cycles += 7 }
	opcodeTable[0x12] = func(c *CPU) { c.WriteByte(c.de(), c.A); c.cycles += 7 }
	opcodeTable[0x0A] = func(c *CPU) { c.A = c.ReadByte(c.bc()); c.cycles += 7 }
	opcodeTable[0x1A] = func(c *CPU) { c.A = c.ReadByte(c.de()); c.cycles += 7 }
}

// registerSTALDA registers STA a16 and LDA a16.
func registerSTALDA() {
	opcodeTable[0x32] = func(c *CPU) {
		addr := c.fetchWord()
		c.WriteByte(addr, c.A)
		c.cycles += 13
	}
	opcodeTable[0x3A] = func(c *CPU) {
		addr := c.fetchWord()
		c.A = c.ReadByte(addr)
		c.cycles += 13
	}
}

// registerSHLDLHLD registers SHLD a16 and LHLD a16.
func registerSHLDLHLD() {
	opcodeTable[0x22] = func(c *CPU) {
		addr := c.fetchWord()
		c.writeWord(addr, c.hl())
		c.cycles += 16
	}
	opcodeTable[0x2A] = func(c *CPU) {
		addr := c.fetchWord()
		c.setHL(c.readWord(addr))
		c.cycles += 16
	}
}

// registerXCHG registers XCHG: swap DE and HL.
func registerXCHG() {
	opcodeTable[0xEB] = opXCHG
}

func opXCHG(c *CPU) {
	c.D, c.H = c.H, c.D
	c.E, c.L = c.L, c.E
	c.cycles += 4
}

// registerXTHL registers XTHL: exchange HL with the word on top of stack.
func registerXTHL() {
	opcodeTable[0xE3] = opXTHL
}

func opXTHL(c *CPU) {
	top := c.readWord(c.SP)
	c.writeWord(c.SP, c.hl())
	c.setHL(top)
	c.cycles += 18
}

// registerSPHL registers SPHL: SP <- HL.
func registerSPHL() {
	opcodeTable[0xF9] = func(c *CPU) { c.SP = c.hl(); c.cycles += 5 }
}

// registerPCHL registers PCHL: PC <- HL (an unconditional jump through HL).
func registerPCHL() {
	opcodeTable[0xE9] = func(c *CPU) { c.PC = c.hl(); c.cycles += 5 }
}

// registerPUSHPOP registers PUSH rp (11RP0101) and POP rp (11RP0001) for
// BC, DE, HL, and PSW (A + flags, in place of SP for this opcode family).
func registerPUSHPOP() {
	pairs := []struct {
		bits byte
		get  func(c *CPU) uint16
		set  func(c *CPU, v uint16)
	}{
		{0, func(c *CPU) uint16 { return c.bc() }, func(c *CPU, v uint16) { c.setBC(v) }},
		{1, func(c *CPU) uint16 { return c.de() }, func(c *CPU, v uint16) { c.setDE(v) }},
		{2, func(c *CPU) uint16 { return c.hl() }, func(c *CPU, v uint16) { c.setHL(v) }},
		{3, func(c *CPU) uint16 { return uint16(c.A)<<8 | uint16(c.psw()) }, func(c *CPU, v uint16) { c.A = byte(v >> 8); c.setPSW(byte(v)) }},
	}
	for _, p := range pairs {
		get, set := p.get, p.set
		opcodeTable[0xC5|p.bits<<4] = func(c *CPU) { c.push(get(c)); c.cycles += 11 }
		opcodeTable[0xC1|p.bits<<4] = func(c *CPU) { set(c, c.pop()); c.cycles += 10 }
	}
}
