package layout

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
)

// Inspectable is the view of a vector needed to print its layout.
// smallvec.Vector implements it, and so does the vector underlying a
// textbuf.Text (see Text.Raw).
type Inspectable[T any] interface {
	Size() int
	Capacity() int
	StaticCapacity() int
	IsInline() bool
	Data() []T
}

// Print outputs the layout of v to stdout, configured for the current
// terminal.
func Print[T any](v Inspectable[T]) error {
	return Fprint(os.Stdout, v, ConfigFromTerminal())
}

// Fprint outputs the layout of v to w. Elements are formatted with fmt.Sprint.
// If config is nil, a default configuration without colours is used.
func Fprint[T any](w io.Writer, v Inspectable[T], config *Config) error {
	return FprintFunc(w, v, config, func(x T) string {
		return fmt.Sprint(x)
	})
}

// FprintFunc outputs the layout of v to w, formatting elements with cell.
//
// The first line is a header with storage mode, size and capacities. The
// following lines hold one cell per slot of the current buffer.
func FprintFunc[T any](w io.Writer, v Inspectable[T], config *Config, cell func(T) string) error {
	if config == nil {
		config = &Config{}
	}
	if err := config.validate(); err != nil {
		return err
	}
	cfg := config.normalized()
	occupied, free := cfg.Palette.Inline, cfg.Palette.Free
	mode := "inline"
	if !v.IsInline() {
		occupied, mode = cfg.Palette.Heap, "heap"
	}
	occupied, free = paint(occupied, cfg.Colored), paint(free, cfg.Colored)
	if _, err := fmt.Fprintf(w, "%s size=%d capacity=%d static=%d\n",
		mode, v.Size(), v.Capacity(), v.StaticCapacity()); err != nil {
		return err
	}
	data := v.Data()
	perLine := cfg.slotsPerLine()
	for i := 0; i < v.Capacity(); i++ {
		var err error
		if i < len(data) {
			_, err = io.WriteString(w, occupied.Sprint(fit(cell(data[i]), cfg.CellWidth)))
		} else {
			_, err = io.WriteString(w, free.Sprint(fit(".", cfg.CellWidth)))
		}
		if err != nil {
			return err
		}
		if (i+1)%perLine == 0 || i == v.Capacity()-1 {
			if _, err := io.WriteString(w, "\n"); err != nil {
				return err
			}
		}
	}
	return nil
}

// paint returns a copy of c with colour output switched on or off. The
// palette of the caller is left untouched.
func paint(c *color.Color, on bool) *color.Color {
	p := *c
	if on {
		p.EnableColor()
	} else {
		p.DisableColor()
	}
	return &p
}

// fit right-aligns s in a cell of width en, including one separating blank.
// Longer strings are truncated.
func fit(s string, width int) string {
	s = strings.ReplaceAll(s, "\n", `\n`)
	r := []rune(s)
	if len(r) > width-1 {
		r = r[:width-1]
	}
	return strings.Repeat(" ", width-len(r)) + string(r)
}
