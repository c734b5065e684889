package layout

import (
	"errors"
	"fmt"
	"os"

	"github.com/fatih/color"
	"golang.org/x/term"
)

// ErrInvalidConfig signals an invalid layout configuration.
var ErrInvalidConfig = errors.New("layout: invalid configuration")

const (
	// DefaultCellWidth is the number of en used per slot.
	DefaultCellWidth = 4
	// DefaultLineWidth is used when the terminal width is unknown.
	DefaultLineWidth = 64
)

// Palette holds the colours for the different kinds of slots.
type Palette struct {
	Inline *color.Color // occupied slot of an inline vector
	Heap   *color.Color // occupied slot of a heap-backed vector
	Free   *color.Color // unoccupied slot
}

// DefaultPalette returns the palette used if Config.Palette is nil.
func DefaultPalette() *Palette {
	return &Palette{
		Inline: color.New(color.FgBlue),
		Heap:   color.New(color.FgRed),
		Free:   color.New(color.Faint),
	}
}

// Config configures the output of Fprint.
type Config struct {
	LineWidth int      // line length in fixed-width en
	CellWidth int      // width of a slot cell in en, including the separator
	Colored   bool     // output ANSI colour sequences
	Palette   *Palette // colours, or nil for DefaultPalette
}

func (cfg Config) normalized() Config {
	if cfg.LineWidth == 0 {
		cfg.LineWidth = DefaultLineWidth
	}
	if cfg.CellWidth == 0 {
		cfg.CellWidth = DefaultCellWidth
	}
	if cfg.Palette == nil {
		cfg.Palette = DefaultPalette()
	}
	return cfg
}

func (cfg Config) validate() error {
	cfg = cfg.normalized()
	if cfg.CellWidth < 2 {
		return fmt.Errorf("%w: cell width must be >= 2", ErrInvalidConfig)
	}
	if cfg.LineWidth < cfg.CellWidth {
		return fmt.Errorf("%w: line width %d smaller than cell width %d",
			ErrInvalidConfig, cfg.LineWidth, cfg.CellWidth)
	}
	return nil
}

// slotsPerLine returns how many cells fit on a line.
func (cfg Config) slotsPerLine() int {
	return max(cfg.LineWidth/cfg.CellWidth, 1)
}

// ConfigFromTerminal is a simple helper for creating a layout Config.
// It checks whether stdout is a terminal, and if so it reads the terminal's
// width, sets Config.LineWidth accordingly and switches on colours.
func ConfigFromTerminal() *Config {
	config := &Config{}
	fd := int(os.Stdout.Fd())
	if term.IsTerminal(fd) {
		config.Colored = true
		w, _, err := term.GetSize(fd)
		if err != nil {
			config.LineWidth = DefaultLineWidth
		} else if w > 20 {
			config.LineWidth = w - 4
		} else {
			config.LineWidth = w
		}
	} else {
		config.LineWidth = DefaultLineWidth
	}
	tracer().Infof("layout: setting line length to %d en", config.LineWidth)
	return config
}
