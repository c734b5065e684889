package layout_test

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/smallvec"
	"github.com/npillmayer/smallvec/layout"
	"github.com/npillmayer/smallvec/textbuf"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFprintInline(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "smallvec")
	defer teardown()
	//
	v := smallvec.FromSlice[int, smallvec.Inline4[int]]([]int{1, 2, 3})
	var buf bytes.Buffer
	err := layout.Fprint[int](&buf, v, &layout.Config{})
	require.NoError(t, err)
	assert.Equal(t, "inline size=3 capacity=4 static=4\n   1   2   3   .\n", buf.String())
}

func TestFprintHeapWraps(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "smallvec")
	defer teardown()
	//
	v := smallvec.New[int, smallvec.Inline4[int]]()
	for i := range 5 {
		v.PushBack(i)
	}
	var buf bytes.Buffer
	err := layout.Fprint[int](&buf, v, &layout.Config{LineWidth: 16})
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "heap size=5 capacity=7 static=4", lines[0])
	assert.Equal(t, "   0   1   2   3", lines[1])
	assert.Equal(t, "   4   .   .", lines[2])
}

func TestFprintFuncText(t *testing.T) {
	s := textbuf.FromString[smallvec.Inline16[byte]]("Hi")
	var buf bytes.Buffer
	err := layout.FprintFunc[byte](&buf, s.Raw(), nil, func(c byte) string {
		if c == textbuf.Terminator {
			return `\0`
		}
		return string(c)
	})
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "inline size=3 capacity=16 static=16", lines[0])
	assert.True(t, strings.HasPrefix(lines[1], "   H   i  \\0   ."), "unexpected cells %q", lines[1])
}

func TestFprintTruncatesCells(t *testing.T) {
	v := smallvec.FromSlice[int, smallvec.Inline4[int]]([]int{123456})
	var buf bytes.Buffer
	err := layout.Fprint[int](&buf, v, &layout.Config{CellWidth: 3})
	require.NoError(t, err)
	assert.Equal(t, "inline size=1 capacity=4 static=4\n 12  .  .  .\n", buf.String())
}

func TestInvalidConfig(t *testing.T) {
	v := smallvec.New[int, smallvec.Inline4[int]]()
	var buf bytes.Buffer
	err := layout.Fprint[int](&buf, v, &layout.Config{CellWidth: 1})
	assert.True(t, errors.Is(err, layout.ErrInvalidConfig), "expected ErrInvalidConfig, got %v", err)
	err = layout.Fprint[int](&buf, v, &layout.Config{LineWidth: 3, CellWidth: 4})
	assert.ErrorIs(t, err, layout.ErrInvalidConfig)
	assert.Empty(t, buf.String())
}

func TestPaletteIsNotModified(t *testing.T) {
	pal := &layout.Palette{
		Inline: color.New(color.FgGreen),
		Heap:   color.New(color.FgYellow),
		Free:   color.New(color.Faint),
	}
	pal.Inline.DisableColor()
	pal.Free.DisableColor()
	v := smallvec.FromSlice[int, smallvec.Inline4[int]]([]int{1})
	var buf bytes.Buffer
	err := layout.Fprint[int](&buf, v, &layout.Config{Colored: true, Palette: pal})
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "\x1b[", "expected colour sequences in output")
	assert.Equal(t, "x", pal.Inline.Sprint("x"), "caller's inline colour was switched on")
	assert.Equal(t, "x", pal.Free.Sprint("x"), "caller's free colour was switched on")
	//
	pal.Heap.EnableColor()
	w := smallvec.FromSlice[int, smallvec.Inline4[int]]([]int{1, 2, 3, 4, 5})
	buf.Reset()
	err = layout.Fprint[int](&buf, w, &layout.Config{Palette: pal})
	require.NoError(t, err)
	assert.NotContains(t, buf.String(), "\x1b[", "expected plain output")
	assert.NotEqual(t, "x", pal.Heap.Sprint("x"), "caller's heap colour was switched off")
}
