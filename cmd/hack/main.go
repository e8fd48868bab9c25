// Command hack is the nand2tetris toolchain: it translates VM code to hack assembly, assembles
// hack assembly into machine code and runs programs on an emulated hack computer.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/tebeka/atexit"
)

var (
	verbose bool
	logger  = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))
)

var rootCmd = &cobra.Command{
	Use:   "hack",
	Short: "Toolchain for the hack computer",
	Long: `Hack translates VM code into hack assembly, assembles hack assembly into
machine code and runs hack programs on an emulated hack computer as documented in
https://www.nand2tetris.org.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if verbose {
			logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
		}
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log progress to stderr")
}

func main() {
	if cmd, err := rootCmd.ExecuteC(); err != nil {
		name := rootCmd.Name()
		if cmd != nil {
			name = cmd.Name()
		}
		fmt.Fprintf(os.Stderr, "%s failed due to:\n%v\n", name, err)
		atexit.Exit(1)
	}
	atexit.Exit(0)
}
