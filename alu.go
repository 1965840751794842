package i8080

// This file implements the flag-aware arithmetic/logic primitives every
// opcode handler reuses, ported from the reconciled rules in the
// specification (the source scatters several inconsistent ADD/SUB/ACF
// implementations; these helpers are written once here).

// execAdd implements ADD/ADC: A <- A + val + carryIn, with CF/ACF/ZF/SF/PF
// set from the result.
func (c *CPU) execAdd(val byte, carryIn byte) {
	a := c.A
	result16 := uint16(a) + uint16(val) + uint16(carryIn)
	result := byte(result16)

	c.cf = result16 > 0xFF
	c.acf = ((a ^ val ^ result) & 0x10) != 0
	c.A = result
	c.setSZP(result)
}

// execSub implements SUB/SBB: computed as A + ^val + (1 - borrowIn) using
// 9-bit arithmetic; CF is set when a borrow occurred (the complement of the
// raw carry out of bit 8).
func (c *CPU) execSub(val byte, borrowIn byte) {
	a := c.A
	notVal := ^val
	result16 := uint16(a) + uint16(notVal) + uint16(1-borrowIn)
	result := byte(result16)

	c.cf = result16 <= 0xFF
	c.acf = (a^notVal^result)&0x10 != 0
	c.A = result
	c.setSZP(result)
}

// execAnd implements ANA: A <- A & val. CF is always cleared; ACF carries
// the documented 8080 quirk (set from the OR of the operands' bit 3, not
// from the AND).
func (c *CPU) execAnd(val byte) {
	a := c.A
	result := a & val
	c.cf = false
	c.acf = (a|val)&0x08 != 0
	c.A = result
	c.setSZP(result)
}

// execOr implements ORA: A <- A | val. CF and ACF are always cleared.
func (c *CPU) execOr(val byte) {
	result := c.A | val
	c.cf = false
	c.acf = false
	c.A = result
	c.setSZP(result)
}

// execXor implements XRA: A <- A ^ val. CF and ACF are always cleared.
func (c *CPU) execXor(val byte) {
	result := c.A ^ val
	c.cf = false
	c.acf = false
	c.A = result
	c.setSZP(result)
}

// execCmp implements CMP: compute SUB but discard the numeric result,
// keeping only the flags it produced.
func (c *CPU) execCmp(val byte) {
	saved := c.A
	c.execSub(val, 0)
	c.A = saved
}

// execInr implements INR r: 8-bit increment. CF is untouched; ZF/SF/PF/ACF
// come from the result.
func (c *CPU) execInr(reg *byte) {
	old := *reg
	result := old + 1
	*reg = result
	c.acf = (old & 0x0F) == 0x0F
	c.setSZP(result)
}

// execDcr implements DCR r: 8-bit decrement. CF is untouched. ACF carries
// the documented quirk: it is set when the low nibble does NOT borrow (i.e.
// the low nibble of old was non-zero).
func (c *CPU) execDcr(reg *byte) {
	old := *reg
	result := old - 1
	*reg = result
	c.acf = (old & 0x0F) != 0
	c.setSZP(result)
}

// execRlc rotates A left; bit 7 moves into both bit 0 and CF. ZF/SF/PF/ACF
// are unaffected.
func (c *CPU) execRlc() {
	bit7 := c.A >> 7
	c.A = (c.A << 1) | bit7
	c.cf = bit7 != 0
}

// execRrc rotates A right; bit 0 moves into both bit 7 and CF.
func (c *CPU) execRrc() {
	bit0 := c.A & 0x01
	c.A = (c.A >> 1) | (bit0 << 7)
	c.cf = bit0 != 0
}

// execRal rotates A left through CF: old CF enters bit 0, old bit 7 becomes
// the new CF.
func (c *CPU) execRal() {
	bit7 := c.A >> 7
	var carryIn byte
	if c.cf {
		carryIn = 1
	}
	c.A = (c.A << 1) | carryIn
	c.cf = bit7 != 0
}

// execRar rotates A right through CF: old CF enters bit 7, old bit 0
// becomes the new CF.
func (c *CPU) execRar() {
	bit0 := c.A & 0x01
	var carryIn byte
	if c.cf {
		carryIn = 0x80
	}
	c.A = (c.A >> 1) | carryIn
	c.cf = bit0 != 0
}

// execDad implements DAD rp: HL <- HL + rp (mod 65536). Only CF is
// affected, set on carry out of bit 15.
func (c *CPU) execDad(rp uint16) {
	hl := c.hl()
	result := uint32(hl) + uint32(rp)
	c.setHL(uint16(result))
	c.cf = result > 0xFFFF
}

// execDaa implements decimal-adjust A per the Intel manual: the low-nibble
// correction is applied first and may feed into the high-nibble
// correction; CF is sticky (once DAA sets it, it stays set even if the
// high-nibble test alone wouldn't have set it).
func (c *CPU) execDaa() {
	a := c.A
	cf := c.cf
	acf := c.acf

	lowCorrect := (a&0x0F) > 9 || acf
	if lowCorrect {
		acf = (a&0x0F)+0x06 > 0x0F
		a += 0x06
	} else {
		acf = false
	}

	highCorrect := (a>>4) > 9 || cf
	if highCorrect {
		if uint16(a)+0x60 > 0xFF {
			cf = true
		}
		a += 0x60
	}

	c.A = a
	c.acf = acf
	c.cf = cf
	c.setSZP(a)
}

// execCma implements CMA: A <- bitwise NOT of A. No flags affected. (The
// source uses logical-NOT here, a bug; this implementation uses bitwise
// NOT per the Intel manual, as the specification mandates.)
func (c *CPU) execCma() {
	c.A = ^c.A
}
