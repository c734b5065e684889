package textbuf

import (
	"bufio"
	"bytes"
	"iter"
	"sync"

	"github.com/OneOfOne/xxhash"
	"github.com/npillmayer/uax/grapheme"
	"github.com/npillmayer/uax/segment"
	"github.com/npillmayer/uax/uax11"
	"github.com/npillmayer/uax/uax14"
)

// hashSeed is the seed for Hash (a linear congruential multiplier).
const hashSeed = 1103515245

var setupGraphemes sync.Once

func graphemeClasses() {
	setupGraphemes.Do(func() {
		tracer().Debugf("textbuf: setting up grapheme classes")
		grapheme.SetupGraphemeClasses()
	})
}

// Width returns the display width of t's characters in fixed-width
// positions, measured by grapheme clusters and East Asian width. If ctx is nil,
// uax11.LatinContext is used. t must hold valid UTF-8 for a meaningful result.
func (t *Text[A, PA]) Width(ctx *uax11.Context) int {
	if t.Empty() {
		return 0
	}
	if ctx == nil {
		ctx = uax11.LatinContext
	}
	graphemeClasses()
	gstr := grapheme.StringFromString(t.String())
	return uax11.StringWidth(gstr, ctx)
}

// Segments yields the fragments of t between line-break opportunities
// (UAX #14). Concatenating all fragments reproduces t.
//
// The characters are captured when iteration starts; changing t during
// iteration does not affect the fragments yielded.
func (t *Text[A, PA]) Segments() iter.Seq[string] {
	return func(yield func(string) bool) {
		if t.Empty() {
			return
		}
		graphemeClasses()
		linewrap := uax14.NewLineWrap()
		segmenter := segment.NewSegmenter(linewrap)
		segmenter.Init(bufio.NewReader(bytes.NewReader(t.Bytes())))
		for segmenter.Next() {
			if !yield(string(segmenter.Bytes())) {
				return
			}
		}
	}
}

// Hash returns a 64-bit xxhash checksum of t's characters. Equal texts have
// equal hashes, independent of capacity and storage mode.
func (t *Text[A, PA]) Hash() uint64 {
	return xxhash.Checksum64S(t.logical(), hashSeed)
}
