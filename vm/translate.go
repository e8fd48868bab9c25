package vm

import (
	"bytes"
	"fmt"
	"io"
	"log/slog"
)

// Unit is one source of VM code, usually a .vm file. Name namespaces the static segment of
// the unit.
type Unit struct {
	Name   string
	Source io.Reader
}

// Bootstrap controls whether the bootstrap code is written ahead of the translated units.
type Bootstrap int

const (
	// BootstrapAuto writes the bootstrap code if one of the units declares Sys.init.
	BootstrapAuto Bootstrap = iota
	BootstrapAlways
	BootstrapNever
)

var bootstrapNames = map[string]Bootstrap{
	"auto":   BootstrapAuto,
	"always": BootstrapAlways,
	"never":  BootstrapNever,
}

func (b Bootstrap) String() string {
	for name, v := range bootstrapNames {
		if v == b {
			return name
		}
	}
	return fmt.Sprintf("Bootstrap(%d)", int(b))
}

// ParseBootstrap parses one of auto, always or never.
func ParseBootstrap(s string) (Bootstrap, error) {
	b, ok := bootstrapNames[s]
	if !ok {
		return 0, fmt.Errorf("invalid bootstrap mode %q: expected auto, always or never", s)
	}
	return b, nil
}

// UnitStats describes one translated unit.
type UnitStats struct {
	Name      string
	Commands  int
	Functions int
}

// Stats describes a translation run.
type Stats struct {
	Bootstrap    bool
	Units        []UnitStats
	Instructions int
}

// Option configures a Translator.
type Option func(*Translator)

// WithLogger sets the logger. Translation progress is logged at debug level.
func WithLogger(logger *slog.Logger) Option {
	return func(t *Translator) {
		t.logger = logger
	}
}

// WithBootstrap sets the bootstrap mode. The default is BootstrapAuto.
func WithBootstrap(b Bootstrap) Option {
	return func(t *Translator) {
		t.bootstrap = b
	}
}

// Translator feeds the commands of units to a Generator, in order.
type Translator struct {
	gen       Generator
	logger    *slog.Logger
	bootstrap Bootstrap
}

// NewTranslator returns a Translator emitting code through gen.
func NewTranslator(gen Generator, opts ...Option) *Translator {
	t := &Translator{
		gen:    gen,
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

type parsedUnit struct {
	name     string
	commands []Command
}

// Translate translates units in order. All units are read before any code is generated, so a
// unit the Reader rejects fails the run before the generator sees any command. The first error
// aborts the run.
func (t *Translator) Translate(units []Unit) (Stats, error) {
	var stats Stats
	parsed := make([]parsedUnit, 0, len(units))
	hasEntry := false
	for _, u := range units {
		commands, err := ReadAll(u.Source)
		if err != nil {
			return stats, fmt.Errorf("failed to read %s: %w", u.Name, err)
		}
		us := UnitStats{Name: u.Name, Commands: len(commands)}
		for _, c := range commands {
			if c.Kind != KindFunction {
				continue
			}
			us.Functions++
			if c.arg1 == EntryPoint {
				hasEntry = true
			}
		}
		t.logger.Debug("read unit", "unit", u.Name, "commands", us.Commands, "functions", us.Functions)
		parsed = append(parsed, parsedUnit{name: u.Name, commands: commands})
		stats.Units = append(stats.Units, us)
	}

	stats.Bootstrap = t.bootstrap == BootstrapAlways || (t.bootstrap == BootstrapAuto && hasEntry)
	if stats.Bootstrap {
		t.logger.Debug("writing bootstrap", "entry", EntryPoint)
		if err := t.gen.WriteInit(); err != nil {
			return stats, fmt.Errorf("failed to write bootstrap: %w", err)
		}
	}

	for _, u := range parsed {
		t.gen.SetFileName(u.name)
		for _, c := range u.commands {
			if err := t.write(c); err != nil {
				return stats, fmt.Errorf("failed to translate %s: %q: %w", u.name, c.String(), err)
			}
		}
		t.logger.Debug("translated unit", "unit", u.name)
	}
	return stats, nil
}

// write dispatches c to the generator.
func (t *Translator) write(c Command) error {
	switch c.Kind {
	case KindArithmetic:
		return t.gen.WriteArithmetic(c.arg1)
	case KindPush, KindPop:
		return t.gen.WritePushPop(c.Kind, c.arg1, c.arg2)
	case KindLabel:
		return t.gen.WriteLabel(c.arg1)
	case KindGoto:
		return t.gen.WriteGoto(c.arg1)
	case KindIf:
		return t.gen.WriteIf(c.arg1)
	case KindFunction:
		return t.gen.WriteFunction(c.arg1, c.arg2)
	case KindCall:
		return t.gen.WriteCall(c.arg1, c.arg2)
	case KindReturn:
		return t.gen.WriteReturn()
	}
	return &ArgumentError{Kind: c.Kind, Msg: "command kind not determined"}
}

// Translate translates units into hack assembly written to w. Nothing is written to w unless
// every unit translates.
func Translate(w io.Writer, units []Unit, opts ...Option) (Stats, error) {
	var buf bytes.Buffer
	cw := NewCodeWriter(&buf)
	stats, err := NewTranslator(cw, opts...).Translate(units)
	if err != nil {
		return stats, err
	}
	if err := cw.Flush(); err != nil {
		return stats, err
	}
	if _, err := buf.WriteTo(w); err != nil {
		return stats, fmt.Errorf("failed to write assembly: %w", err)
	}
	stats.Instructions = cw.Instructions()
	return stats, nil
}
