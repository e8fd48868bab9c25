package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"teleivo/nand2tetris/asm"
)

var assembleCmd = &cobra.Command{
	Use:   "assemble file.asm",
	Short: "Assemble hack assembly into machine code",
	Long: `Assemble translates an '.asm' file into a '.hack' file next to it holding one
line of 16 binary digits per instruction.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return assemble(args[0])
	},
}

func init() {
	rootCmd.AddCommand(assembleCmd)
}

func assemble(assemblyFile string) error {
	name, found := strings.CutSuffix(assemblyFile, ".asm")
	if !found {
		return fmt.Errorf("expected assembly file with filename ending in '.asm', instead got %q", assemblyFile)
	}

	fin, err := os.Open(assemblyFile)
	if err != nil {
		return err
	}
	defer fin.Close()

	machineFile := name + ".hack"
	err = writeFile(machineFile, func(f *os.File) error {
		return asm.Assemble(fin, f)
	})
	if err != nil {
		return err
	}
	logger.Info("assembled", "input", assemblyFile, "output", machineFile)
	return nil
}
