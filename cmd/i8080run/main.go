// Command i8080run is a thin demonstration harness for the i8080 core: it
// loads a hex-encoded program into a flat 64KB RAM-backed bus, wires the
// four callbacks, and steps the core while logging each instruction at
// debug level. It is deliberately minimal — no disassembler, no debugger —
// existing only to exercise the core package end to end.
package main

import (
	"encoding/hex"
	"fmt"
	"log/slog"
	"os"
	"strconv"

	"github.com/oisee/i8080"
	"github.com/spf13/cobra"
)

func main() {
	var loadAddr string
	var startAddr string
	var maxSteps int
	var verbose bool

	rootCmd := &cobra.Command{
		Use:   "i8080run [program.hex]",
		Short: "Step an Intel 8080 core over a hex-encoded program",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			level := slog.LevelInfo
			if verbose {
				level = slog.LevelDebug
			}
			slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

			load, err := parseUint16(loadAddr)
			if err != nil {
				return fmt.Errorf("--load: %w", err)
			}
			start, err := parseUint16(startAddr)
			if err != nil {
				return fmt.Errorf("--start: %w", err)
			}

			program, err := readHexFile(args[0])
			if err != nil {
				return err
			}

			ram := make([]byte, 65536)
			for i, b := range program {
				ram[(int(load)+i)&0xFFFF] = b
			}
			ports := make([]byte, 256)

			cpu := i8080.NewCPU()
			cpu.ReadByte = func(addr uint16) byte { return ram[addr] }
			cpu.WriteByte = func(addr uint16, val byte) { ram[addr] = val }
			cpu.PortIn = func(port byte) byte { return ports[port] }
			cpu.PortOut = func(port byte, val byte) { ports[port] = val }
			cpu.PC = start

			steps := 0
			for !cpu.Halted() && (maxSteps == 0 || steps < maxSteps) {
				cpu.Step()
				steps++
			}

			r := cpu.Registers()
			fmt.Printf("halted=%v steps=%d cycles=%d PC=%04X SP=%04X A=%02X B=%02X C=%02X D=%02X E=%02X H=%02X L=%02X\n",
				cpu.Halted(), steps, cpu.Cycles(), r.PC, r.SP, r.A, r.B, r.C, r.D, r.E, r.H, r.L)
			return nil
		},
	}

	rootCmd.Flags().StringVar(&loadAddr, "load", "0x0000", "address to load the program at")
	rootCmd.Flags().StringVar(&startAddr, "start", "0x0000", "initial PC")
	rootCmd.Flags().IntVar(&maxSteps, "max-steps", 0, "stop after this many steps (0 = run until HLT)")
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "log every dispatched opcode")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func parseUint16(s string) (uint16, error) {
	v, err := strconv.ParseUint(s, 0, 16)
	if err != nil {
		return 0, err
	}
	return uint16(v), nil
}

func readHexFile(path string) ([]byte, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	decoded := make([]byte, hex.DecodedLen(len(trimHex(raw))))
	n, err := hex.Decode(decoded, trimHex(raw))
	if err != nil {
		return nil, fmt.Errorf("decoding hex program: %w", err)
	}
	return decoded[:n], nil
}

// trimHex strips whitespace/newlines a hand-edited hex dump commonly has.
func trimHex(raw []byte) []byte {
	out := make([]byte, 0, len(raw))
	for _, b := range raw {
		switch b {
		case ' ', '\t', '\n', '\r':
			continue
		default:
			out = append(out, b)
		}
	}
	return out
}
