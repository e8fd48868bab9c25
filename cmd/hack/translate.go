package main

import (
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
	"github.com/tebeka/atexit"

	"teleivo/nand2tetris/vm"
)

var (
	bootstrapMode string
	printStats    bool
)

var translateCmd = &cobra.Command{
	Use:   "translate path...",
	Short: "Translate VM code into hack assembly",
	Long: `Translate translates VM code into hack assembly. Every path is translated on its own.

A '.vm' file is translated into an '.asm' file next to it. A directory is translated
into '<dir>/<dir>.asm' holding all '.vm' files found in the directory tree.

Bootstrap code calling Sys.init is written first if Sys.init is declared (auto), always
or never.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		mode, err := vm.ParseBootstrap(bootstrapMode)
		if err != nil {
			return err
		}
		for _, path := range args {
			output, stats, err := translate(path, mode)
			if err != nil {
				return err
			}
			logger.Info("translated", "input", path, "output", output, "instructions", stats.Instructions)
			if printStats {
				renderStats(cmd.OutOrStdout(), output, stats)
			}
		}
		return nil
	},
}

func init() {
	translateCmd.Flags().StringVar(&bootstrapMode, "bootstrap", "auto", "write bootstrap code: auto, always or never")
	translateCmd.Flags().BoolVar(&printStats, "stats", false, "print a summary of every translated path")
	rootCmd.AddCommand(translateCmd)
}

// translate translates a '.vm' file or a directory and returns the name of the written
// assembly file.
func translate(path string, mode vm.Bootstrap) (string, vm.Stats, error) {
	output, files, err := sources(path)
	if err != nil {
		return "", vm.Stats{}, err
	}

	var stats vm.Stats
	err = writeFile(output, func(f *os.File) error {
		stats, err = translateFiles(f, files, mode)
		return err
	})
	return output, stats, err
}

// sources returns the assembly file to write for path and the '.vm' files to translate.
func sources(path string) (string, []string, error) {
	info, err := os.Stat(path)
	if err != nil {
		return "", nil, err
	}
	if !info.IsDir() {
		name, found := strings.CutSuffix(path, ".vm")
		if !found {
			return "", nil, fmt.Errorf("expected VM file with filename ending in '.vm', instead got %q", path)
		}
		return name + ".asm", []string{path}, nil
	}

	dir := filepath.Clean(path)
	abs, err := filepath.Abs(dir)
	if err != nil {
		return "", nil, err
	}
	var files []string
	// static variables are namespaced by file name, which must be unique across the tree
	seen := make(map[string]string)
	err = filepath.WalkDir(dir, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || filepath.Ext(p) != ".vm" {
			return nil
		}
		if other, ok := seen[d.Name()]; ok {
			return fmt.Errorf("VM files %q and %q share the file name %q", other, p, d.Name())
		}
		seen[d.Name()] = p
		files = append(files, p)
		return nil
	})
	if err != nil {
		return "", nil, err
	}
	if len(files) == 0 {
		return "", nil, fmt.Errorf("no '.vm' files found in %q", path)
	}
	return filepath.Join(dir, filepath.Base(abs)+".asm"), files, nil
}

func translateFiles(w io.Writer, files []string, mode vm.Bootstrap) (vm.Stats, error) {
	units := make([]vm.Unit, 0, len(files))
	for _, file := range files {
		f, err := os.Open(file)
		if err != nil {
			return vm.Stats{}, err
		}
		defer f.Close()
		units = append(units, vm.Unit{Name: file, Source: f})
	}

	return vm.Translate(w, units, vm.WithBootstrap(mode), vm.WithLogger(logger))
}

// writeFile creates name with the content written by write. Nothing is left behind if write
// fails, or if the process exits before write returns.
func writeFile(name string, write func(f *os.File) error) (err error) {
	f, err := os.CreateTemp(filepath.Dir(name), "."+filepath.Base(name)+".*")
	if err != nil {
		return err
	}
	tmp := f.Name()
	atexit.Register(func() {
		os.Remove(tmp)
	})
	defer func() {
		if err != nil {
			f.Close()
			os.Remove(tmp)
		}
	}()

	if err = write(f); err != nil {
		return err
	}
	if err = f.Close(); err != nil {
		return err
	}
	if err = os.Rename(tmp, name); err != nil {
		return fmt.Errorf("failed to write %q: %w", name, err)
	}
	return nil
}

func renderStats(w io.Writer, output string, stats vm.Stats) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetTitle("%s", output)
	t.AppendHeader(table.Row{"Unit", "Commands", "Functions"})
	var commands, functions int
	for _, u := range stats.Units {
		t.AppendRow(table.Row{u.Name, u.Commands, u.Functions})
		commands += u.Commands
		functions += u.Functions
	}
	t.AppendFooter(table.Row{fmt.Sprintf("bootstrap: %t, instructions: %d", stats.Bootstrap, stats.Instructions), commands, functions})
	t.Render()
}
