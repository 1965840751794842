package i8080

import (
	"encoding/binary"
	"errors"
)

// cpuSerializeVersion is incremented whenever the binary layout changes.
const cpuSerializeVersion = 1

// cpuSerializeSize is the number of bytes produced by CPU.Serialize.
// Update this constant whenever the binary layout changes.
const cpuSerializeSize = 1 + 7 + 2 + 2 + 5 + 5 + 8

// SerializeSize returns the number of bytes needed for Serialize.
func (c *CPU) SerializeSize() int { return cpuSerializeSize }

// Serialize writes the full programmer-visible CPU state into buf, which
// must be at least SerializeSize() bytes. Bus callbacks are not included;
// the host must rewire them after Deserialize.
func (c *CPU) Serialize(buf []byte) error {
	if len(buf) < cpuSerializeSize {
		return errors.New("i8080: serialize buffer too small")
	}

	be := binary.BigEndian
	off := 0

	buf[off] = cpuSerializeVersion
	off++

	buf[off] = c.A
	buf[off+1] = c.B
	buf[off+2] = c.C
	buf[off+3] = c.D
	buf[off+4] = c.E
	buf[off+5] = c.H
	buf[off+6] = c.L
	off += 7

	be.PutUint16(buf[off:], c.SP)
	off += 2
	be.PutUint16(buf[off:], c.PC)
	off += 2

	buf[off] = boolByte(c.zf)
	buf[off+1] = boolByte(c.sf)
	buf[off+2] = boolByte(c.pf)
	buf[off+3] = boolByte(c.cf)
	buf[off+4] = boolByte(c.acf)
	off += 5

	buf[off] = boolByte(c.halted)
	off++
	buf[off] = boolByte(c.ime)
	off++
	buf[off] = boolByte(c.eiPending)
	off++
	buf[off] = boolByte(c.interruptPending)
	off++
	buf[off] = c.interruptOpcode
	off++

	be.PutUint64(buf[off:], c.cycles)
	return nil
}

func boolByte(b bool) uint8 {
	if b {
		return 1
	}
	return 0
}

// Deserialize restores CPU state from buf, which must be at least
// SerializeSize() bytes produced by a matching Serialize. Bus callbacks
// are left unchanged; the host must have already wired them, or must wire
// them before the next Step.
func (c *CPU) Deserialize(buf []byte) error {
	if len(buf) < cpuSerializeSize {
		return errors.New("i8080: deserialize buffer too small")
	}
	if buf[0] != cpuSerializeVersion {
		return errors.New("i8080: unsupported serialize version")
	}

	be := binary.BigEndian
	off := 1

	c.A = buf[off]
	c.B = buf[off+1]
	c.C = buf[off+2]
	c.D = buf[off+3]
	c.E = buf[off+4]
	c.H = buf[off+5]
	c.L = buf[off+6]
	off += 7

	c.SP = be.Uint16(buf[off:])
	off += 2
	c.PC = be.Uint16(buf[off:])
	off += 2

	c.zf = buf[off] != 0
	c.sf = buf[off+1] != 0
	c.pf = buf[off+2] != 0
	c.cf = buf[off+3] != 0
	c.acf = buf[off+4] != 0
	off += 5

	c.halted = buf[off] != 0
	off++
	c.ime = buf[off] != 0
	off++
	c.eiPending = buf[off] != 0
	off++
	c.interruptPending = buf[off] != 0
	off++
	c.interruptOpcode = buf[off]
	off++

	c.cycles = be.Uint64(buf[off:])
	return nil
}
