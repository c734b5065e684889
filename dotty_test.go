package smallvec

import (
	"bytes"
	"strings"
	"testing"
)

func TestVector2Dot(t *testing.T) {
	var v Vec4[string]
	v.Append("a", "b|c")
	var bf bytes.Buffer
	Vector2Dot(&v, &bf)
	out := bf.String()
	if !strings.HasPrefix(out, "strict digraph {") || !strings.HasSuffix(out, "}\n") {
		t.Fatalf("unexpected DOT frame: %s", out)
	}
	if !strings.Contains(out, "inline") || !strings.Contains(out, `<s1> b\|c`) || !strings.Contains(out, "<s3> ") {
		t.Errorf("unexpected DOT content: %s", out)
	}
	v.Append("d", "e", "f")
	bf.Reset()
	Vector2Dot(&v, &bf)
	if !strings.Contains(bf.String(), "heap") || !strings.Contains(bf.String(), "<s6> ") {
		t.Errorf("expected heap layout with 7 slots: %s", bf.String())
	}
}
