package main

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"teleivo/nand2tetris/asm"
	"teleivo/nand2tetris/cpu"
	"teleivo/nand2tetris/vm"
)

var (
	maxSteps int
	presets  []string
	dumps    []int
)

var runCmd = &cobra.Command{
	Use:   "run path",
	Short: "Run a program on an emulated hack computer",
	Long: `Run assembles an '.asm' file, or translates and assembles a '.vm' file or a
directory of '.vm' files, and executes it on an emulated hack computer until the
program runs off the end of its code, reaches a halt loop or exceeds the step limit.

The stack and segment pointers and all requested RAM words are printed afterwards.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return run(cmd.OutOrStdout(), args[0])
	},
}

func init() {
	runCmd.Flags().IntVar(&maxSteps, "steps", 1_000_000, "maximum number of instructions to execute")
	runCmd.Flags().StringArrayVar(&presets, "set", nil, "set RAM word before running, as ADDR=VALUE")
	runCmd.Flags().IntSliceVar(&dumps, "dump", nil, "RAM addresses to print after running")
	rootCmd.AddCommand(runCmd)
}

func run(w io.Writer, path string) error {
	src, err := assembly(path)
	if err != nil {
		return err
	}
	rom, err := asm.AssembleWords(src)
	if err != nil {
		return err
	}

	c := cpu.New(rom)
	for _, preset := range presets {
		addr, value, err := parsePreset(preset)
		if err != nil {
			return err
		}
		c.Poke(addr, value)
	}

	err = c.Run(maxSteps)
	logger.Info("ran", "input", path, "steps", c.Steps(), "pc", c.PC)
	renderState(w, c)
	return err
}

// assembly returns the hack assembly for path, translating VM code in memory.
func assembly(path string) (io.Reader, error) {
	if filepath.Ext(path) == ".asm" {
		b, err := os.ReadFile(path)
		if err != nil {
			return nil, err
		}
		return bytes.NewReader(b), nil
	}

	_, files, err := sources(path)
	if err != nil {
		return nil, err
	}
	var b bytes.Buffer
	if _, err := translateFiles(&b, files, vm.BootstrapAuto); err != nil {
		return nil, err
	}
	return &b, nil
}

func parsePreset(s string) (uint16, uint16, error) {
	a, v, found := strings.Cut(s, "=")
	if !found {
		return 0, 0, fmt.Errorf("invalid RAM preset %q: expected ADDR=VALUE", s)
	}
	addr, err := strconv.ParseUint(a, 0, 15)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid RAM preset %q: %v", s, err)
	}
	value, err := strconv.ParseInt(v, 0, 17)
	if err != nil || value < -1<<15 || value >= 1<<16 {
		return 0, 0, fmt.Errorf("invalid RAM preset %q: expected a 16-bit value", s)
	}
	return uint16(addr), uint16(value), nil
}

func renderState(w io.Writer, c *cpu.Computer) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetTitle("steps: %d, pc: %d", c.Steps(), c.PC)
	t.AppendHeader(table.Row{"Address", "Name", "Value"})
	for addr, name := range []string{"SP", "LCL", "ARG", "THIS", "THAT"} {
		t.AppendRow(table.Row{addr, name, int16(c.Peek(uint16(addr)))})
	}
	if len(dumps) > 0 {
		t.AppendSeparator()
	}
	for _, addr := range dumps {
		t.AppendRow(table.Row{addr, "", int16(c.Peek(uint16(addr)))})
	}
	t.Render()
}
