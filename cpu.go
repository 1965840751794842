// Package i8080 implements the Intel 8080 microprocessor: a single-step
// interpreter of the full documented instruction set, driven through a
// caller-supplied bus of four callbacks (read byte, write byte, port in,
// port out). The package owns no memory or I/O devices of its own.
package i8080

import (
	"fmt"
	"log/slog"
)

// CPU holds the complete programmer-visible state of an 8080: the
// accumulator, the six general registers (paired as BC/DE/HL), the stack
// pointer, program counter, the five condition flags, and the halt/
// interrupt latches. It carries no memory of its own — all addressable
// state lives behind the four Bus callbacks, installed by the host before
// the first Step.
type CPU struct {
	A, B, C, D, E, H, L byte

	SP, PC uint16

	zf, sf, pf, cf, acf bool

	halted bool

	interruptPending bool
	interruptOpcode  byte

	// ime is the interrupt master enable flag, toggled by DI/EI.
	ime bool
	// eiPending models the one-instruction delay after EI: set when EI
	// runs, consumed (ime <- true) at the end of the *next* Step so that
	// an instruction immediately following EI (typically a RET) always
	// gets to execute before an interrupt can be taken.
	eiPending bool

	cycles uint64

	// Bus callbacks. The host must install all four before calling Step.
	ReadByte  func(addr uint16) byte
	WriteByte func(addr uint16, val byte)
	PortIn    func(port byte) byte
	PortOut   func(port byte, val byte)
}

// Registers is a value snapshot of the programmer-visible CPU state, used
// for diagnostics and by tests to set up or inspect a case
// without reaching into CPU's unexported fields one at a time.
type Registers struct {
	A, B, C, D, E, H, L byte
	SP, PC              uint16
	ZF, SF, PF, CF, ACF  bool
	Halted               bool
	IME                  bool
}

// NewCPU returns a zero-initialized CPU. The host must still install the
// four bus callbacks before calling Step.
func NewCPU() *CPU {
	c := &CPU{}
	c.Init()
	return c
}

// Init resets every field to its power-up value — all registers, flags,
// PC, SP, and cycle count zero; halted and interrupt latches clear — as
// specified for CPU creation. Bus callback slots are left untouched so
// that re-initializing a running CPU does not require rewiring the host.
func (c *CPU) Init() {
	c.A, c.B, c.C, c.D, c.E, c.H, c.L = 0, 0, 0, 0, 0, 0, 0
	c.SP, c.PC = 0, 0
	c.zf, c.sf, c.pf, c.cf, c.acf = false, false, false, false, false
	c.halted = false
	c.interruptPending = false
	c.interruptOpcode = 0
	c.ime = false
	c.eiPending = false
	c.cycles = 0
}

// Registers returns a copy of the current programmer-visible state.
func (c *CPU) Registers() Registers {
	return Registers{
		A: c.A, B: c.B, C: c.C, D: c.D, E: c.E, H: c.H, L: c.L,
		SP: c.SP, PC: c.PC,
		ZF: c.zf, SF: c.sf, PF: c.pf, CF: c.cf, ACF: c.acf,
		Halted: c.halted,
		IME:    c.ime,
	}
}

// SetState installs a full register snapshot directly, bypassing Init.
// Intended for tests, where exact CPU state must be established before
// executing a single instruction.
func (c *CPU) SetState(r Registers) {
	c.A, c.B, c.C, c.D, c.E, c.H, c.L = r.A, r.B, r.C, r.D, r.E, r.H, r.L
	c.SP, c.PC = r.SP, r.PC
	c.zf, c.sf, c.pf, c.cf, c.acf = r.ZF, r.SF, r.PF, r.CF, r.ACF
	c.halted = r.Halted
	c.ime = r.IME
	c.eiPending = false
	c.interruptPending = false
	c.interruptOpcode = 0
}

// Cycles returns the total number of machine cycles executed since the
// last Init.
func (c *CPU) Cycles() uint64 {
	return c.cycles
}

// Halted reports whether the CPU is currently halted (via HLT, pending
// only the consumption of an injected interrupt).
func (c *CPU) Halted() bool {
	return c.halted
}

// checkBus panics if the host has not installed all four bus callbacks.
// Calling Step before wiring the bus is a programmer error against this
// package's API (spec: "the core's behaviour is undefined; implementations
// should enforce the precondition with a runtime check where feasible").
func (c *CPU) checkBus() {
	if c.ReadByte == nil || c.WriteByte == nil || c.PortIn == nil || c.PortOut == nil {
		slog.Warn("i8080: Step called before all four bus callbacks were installed")
		panic(fmt.Sprintf("i8080: incomplete bus (ReadByte=%v WriteByte=%v PortIn=%v PortOut=%v)",
			c.ReadByte != nil, c.WriteByte != nil, c.PortIn != nil, c.PortOut != nil))
	}
}

// readWord reads a little-endian 16-bit word: low byte at addr, high byte
// at addr+1 (wrapping modulo 65536).
func (c *CPU) readWord(addr uint16) uint16 {
	lo := c.ReadByte(addr)
	hi := c.ReadByte(addr + 1)
	return uint16(lo) | uint16(hi)<<8
}

// writeWord writes a little-endian 16-bit word: low byte first, then the
// high byte — this order is observable by device-mapped bus callbacks.
func (c *CPU) writeWord(addr uint16, v uint16) {
	c.WriteByte(addr, byte(v))
	c.WriteByte(addr+1, byte(v>>8))
}

// fetchByte reads the byte at PC and advances PC by one.
func (c *CPU) fetchByte() byte {
	b := c.ReadByte(c.PC)
	c.PC++
	return b
}

// fetchWord reads a little-endian 16-bit immediate at PC and advances PC
// by two.
func (c *CPU) fetchWord() uint16 {
	v := c.readWord(c.PC)
	c.PC += 2
	return v
}

// push decrements SP by two and writes word onto the stack, high byte
// first (at SP+1) then low byte (at SP) — the opposite order from
// writeWord/SHLD, and observable through device-mapped writes.
func (c *CPU) push(word uint16) {
	c.SP -= 2
	c.WriteByte(c.SP+1, byte(word>>8))
	c.WriteByte(c.SP, byte(word))
}

// pop reads the little-endian word at SP and advances SP by two.
func (c *CPU) pop() uint16 {
	word := c.readWord(c.SP)
	c.SP += 2
	return word
}

// call pushes the current PC and jumps to target.
func (c *CPU) call(target uint16) {
	c.push(c.PC)
	c.PC = target
}

// ret pops the return address into PC.
func (c *CPU) ret() {
	c.PC = c.pop()
}

// rst performs a restart to vector n*8 (n in 0..7).
func (c *CPU) rst(n byte) {
	c.call(uint16(n) * 8)
}

// bc, de, hl return the 16-bit value of the named register pair.
func (c *CPU) bc() uint16 { return uint16(c.B)<<8 | uint16(c.C) }
func (c *CPU) de() uint16 { return uint16(c.D)<<8 | uint16(c.E) }
func (c *CPU) hl() uint16 { return uint16(c.H)<<8 | uint16(c.L) }

func (c *CPU) setBC(v uint16) { c.B, c.C = byte(v>>8), byte(v) }
func (c *CPU) setDE(v uint16) { c.D, c.E = byte(v>>8), byte(v) }
func (c *CPU) setHL(v uint16) { c.H, c.L = byte(v>>8), byte(v) }

// Step executes exactly one instruction, or consumes one pending interrupt,
// or — if halted with nothing pending — ticks a nominal 4 cycles. It
// returns the number of machine cycles consumed by this call, mirroring
// the accumulator the core also keeps internally via Cycles().
func (c *CPU) Step() int {
	c.checkBus()

	before := c.cycles

	if c.checkInterrupt() {
		return int(c.cycles - before)
	}

	if c.halted {
		c.cycles += 4
		return int(c.cycles - before)
	}

	wasEIPending := c.eiPending

	opcode := c.fetchByte()
	c.dispatch(opcode)

	if wasEIPending {
		c.ime = true
		c.eiPending = false
	}

	return int(c.cycles - before)
}

// dispatch executes a single already-fetched opcode byte and charges its
// documented cycle cost.
func (c *CPU) dispatch(opcode byte) {
	slog.Debug("i8080: dispatch", "opcode", opcode, "pc", c.PC)

	handler := opcodeTable[opcode]
	if handler == nil {
		// Undocumented slot: treated as NOP (spec: 255 of 256 opcodes are
		// covered; the remainder are no-ops).
		c.cycles += 4
		return
	}
	handler(c)
}
