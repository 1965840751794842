package i8080

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSerializeSize(t *testing.T) {
	c := NewCPU()
	assert.Equal(t, cpuSerializeSize, c.SerializeSize())
}

func TestSerializeRoundTrip(t *testing.T) {
	c, _ := newTestCPU()
	c.SetState(Registers{
		A: 0x11, B: 0x22, C: 0x33, D: 0x44, E: 0x55, H: 0x66, L: 0x77,
		SP: 0x8000, PC: 0x4000,
		ZF: true, SF: false, PF: true, CF: true, ACF: false,
		Halted: true, IME: true,
	})
	c.cycles = 9999
	c.eiPending = true
	c.interruptPending = true
	c.interruptOpcode = 0xCF

	buf := make([]byte, c.SerializeSize())
	assert.NoError(t, c.Serialize(buf))

	c2, _ := newTestCPU()
	assert.NoError(t, c2.Deserialize(buf))

	assert.Equal(t, c.Registers(), c2.Registers())
	assert.Equal(t, c.cycles, c2.cycles)
	assert.Equal(t, c.eiPending, c2.eiPending)
	assert.Equal(t, c.interruptPending, c2.interruptPending)
	assert.Equal(t, c.interruptOpcode, c2.interruptOpcode)
}

func TestSerializeRejectsTooSmall(t *testing.T) {
	c := NewCPU()
	assert.Error(t, c.Serialize(make([]byte, 4)))
}

func TestDeserializeRejectsTooSmall(t *testing.T) {
	c := NewCPU()
	assert.Error(t, c.Deserialize(make([]byte, 4)))
}

func TestDeserializeRejectsBadVersion(t *testing.T) {
	c := NewCPU()
	buf := make([]byte, c.SerializeSize())
	assert.NoError(t, c.Serialize(buf))
	buf[0] = 99

	c2 := NewCPU()
	assert.Error(t, c2.Deserialize(buf))
}

func TestSerializeResumeExecution(t *testing.T) {
	c1, bus := newTestCPU()
	bus.load(0x0100, 0x3E, 0x05, 0x06, 0x07) // MVI A,5 ; MVI B,7
	c1.PC = 0x0100

	c1.Step()

	buf := make([]byte, c1.SerializeSize())
	assert.NoError(t, c1.Serialize(buf))

	c2, bus2 := newTestCPU()
	*bus2 = *bus
	assert.NoError(t, c2.Deserialize(buf))

	c1.Step()
	c2.Step()

	assert.Equal(t, c1.Registers(), c2.Registers())
	assert.Equal(t, c1.Cycles(), c2.Cycles())
}
