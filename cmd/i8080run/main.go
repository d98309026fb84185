// Command i8080run loads a CP/M-style .COM image, wires the
// diagnostic BDOS trampoline, and drives an i8080 CPU to completion.
package main

import (
	"fmt"
	"os"
	"time"

	emu "github.com/go8080/emu"
	"github.com/go8080/emu/cpmbus"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

func main() {
	var (
		romPath  string
		entry    uint16
		maxSteps int
		snapshot string
		quiet    bool
	)

	rootCmd := &cobra.Command{
		Use:   "i8080run",
		Short: "Run a CP/M .COM image against the i8080 emulator",
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(romPath, entry, maxSteps, snapshot, quiet)
		},
	}
	rootCmd.Flags().StringVar(&romPath, "rom", "", "path to a CP/M .COM image (required)")
	rootCmd.Flags().Uint16Var(&entry, "entry", 0x0100, "entry point address")
	rootCmd.Flags().IntVar(&maxSteps, "max-steps", 200_000_000, "abort after this many steps without a stop")
	rootCmd.Flags().StringVar(&snapshot, "snapshot", "", "write a CPU.Serialize() snapshot here on completion")
	rootCmd.Flags().BoolVar(&quiet, "quiet", false, "suppress the TTY progress line")
	rootCmd.MarkFlagRequired("rom")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(romPath string, entry uint16, maxSteps int, snapshotPath string, quiet bool) error {
	rom, err := os.ReadFile(romPath)
	if err != nil {
		return fmt.Errorf("reading rom: %w", err)
	}

	bus := cpmbus.New(make([]byte, 65536))
	bus.WriteBuffer(0x0100, rom)

	cpu := emu.New(bus)
	cpu.ForceJump(entry)

	showProgress := !quiet && term.IsTerminal(int(os.Stdout.Fd()))
	lastTick := time.Now()

	steps := 0
	for !bus.Stopped() {
		if steps >= maxSteps {
			fmt.Print(bus.Output())
			return fmt.Errorf("exceeded %d steps without the ROM executing OUT 0", maxSteps)
		}
		cpu.Step()
		steps++

		if showProgress && time.Since(lastTick) > 250*time.Millisecond {
			fmt.Printf("\r%d steps, %d cycles", steps, cpu.ExecutedCycles())
			lastTick = time.Now()
		}
	}
	if showProgress {
		fmt.Print("\r")
	}

	fmt.Print(bus.Output())

	if snapshotPath != "" {
		buf := make([]byte, cpu.SerializeSize())
		if err := cpu.Serialize(buf); err != nil {
			return fmt.Errorf("serializing snapshot: %w", err)
		}
		if err := os.WriteFile(snapshotPath, buf, 0o644); err != nil {
			return fmt.Errorf("writing snapshot: %w", err)
		}
	}
	return nil
}
