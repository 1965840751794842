package i8080

// testBus is a flat 64KB byte-array bus wired directly to a CPU's four
// callbacks. It has no I/O devices; ports read back whatever was last
// written to them, a fake useful enough to exercise IN/OUT round-trips.
type testBus struct {
	mem   [65536]byte
	ports [256]byte
}

func newTestCPU() (*CPU, *testBus) {
	c := NewCPU()
	bus := &testBus{}
	c.ReadByte = func(addr uint16) byte { return bus.mem[addr] }
	c.WriteByte = func(addr uint16, val byte) { bus.mem[addr] = val }
	c.PortIn = func(port byte) byte { return bus.ports[port] }
	c.PortOut = func(port byte, val byte) { bus.ports[port] = val }
	return c, bus
}

// load writes a sequence of bytes into the bus starting at addr.
func (b *testBus) load(addr uint16, bytes ...byte) {
	for i, v := range bytes {
		b.mem[int(addr)+i] = v
	}
}
