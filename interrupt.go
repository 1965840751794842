package i8080

// Interrupt latches a one-byte interrupt-acknowledge opcode (almost always
// an RST, but the 8080 bus protocol permits any single-byte instruction).
// It is consumed by checkInterrupt on the next Step; if IME is clear when
// it fires, the latch stays set until EI (after its one-instruction delay)
// makes it eligible.
func (c *CPU) Interrupt(opcode byte) {
	c.interruptPending = true
	c.interruptOpcode = opcode
}

// checkInterrupt tests whether a latched interrupt should be serviced this
// Step and, if so, consumes it. Called at the top of Step, before the
// normal fetch/dispatch path.
func (c *CPU) checkInterrupt() bool {
	if !c.interruptPending || !c.ime {
		return false
	}
	c.processInterrupt()
	return true
}

// processInterrupt consumes the latched interrupt: clears the latch and
// the halt state, disables further interrupts until the handler
// re-enables them with EI, and dispatches the injected opcode in place of
// a normal fetch.
func (c *CPU) processInterrupt() {
	opcode := c.interruptOpcode
	c.interruptPending = false
	c.halted = false
	c.ime = false
	c.dispatch(opcode)
}
