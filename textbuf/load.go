package textbuf

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/npillmayer/smallvec"
)

// ErrNotRegularFile is returned by Load for directories, devices and the like.
var ErrNotRegularFile = errors.New("textbuf: not a regular file")

// readChunk is the number of bytes ReadFrom requests per read.
const readChunk = 512

// ReadFrom appends everything readable from r to t, until EOF. It implements
// io.ReaderFrom. Bytes read before an error are kept.
func (t *Text[A, PA]) ReadFrom(r io.Reader) (int64, error) {
	var buf [readChunk]byte
	var total int64
	for {
		n, err := r.Read(buf[:])
		if n > 0 {
			t.AppendBytes(buf[:n])
			total += int64(n)
		}
		if err == io.EOF {
			return total, nil
		}
		if err != nil {
			return total, err
		}
	}
}

// WriteTo writes the characters of t to w, without the terminator. It
// implements io.WriterTo.
func (t *Text[A, PA]) WriteTo(w io.Writer) (int64, error) {
	n, err := w.Write(t.logical())
	return int64(n), err
}

// Load reads a file and returns its content as a text. Small files stay in
// inline storage; for larger ones heap storage is reserved once.
func Load[A any, PA smallvec.Storage[byte, A]](name string) (*Text[A, PA], error) {
	fi, err := os.Stat(name)
	if err != nil {
		return nil, err
	} else if !fi.Mode().IsRegular() {
		return nil, fmt.Errorf("%w: %s", ErrNotRegularFile, name)
	}
	content, err := os.ReadFile(name)
	if err != nil {
		return nil, err
	}
	tracer().Debugf("textbuf: loaded %d bytes from %s", len(content), name)
	return FromBytes[A, PA](content), nil
}
