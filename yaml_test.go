package collection_test

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	collection "github.com/reoring/collection"
	"gopkg.in/yaml.v3"
)

func TestToYAML_FlatMapping(t *testing.T) {
	c := collection.New().Set("a", 1).Set("b", "two")
	out, err := c.ToYAML()
	if err != nil {
		t.Fatalf("ToYAML: %v", err)
	}
	if got := string(out); got != "a: 1\nb: two\n" {
		t.Fatalf("ToYAML = %q", got)
	}
}

func TestToYAML_Sequence(t *testing.T) {
	c := collection.New().Push("a").Push("b")
	out, err := c.ToYAML()
	if err != nil {
		t.Fatalf("ToYAML: %v", err)
	}
	if got := string(out); got != "- a\n- b\n" {
		t.Fatalf("ToYAML = %q", got)
	}
}

func TestToYAML_KeyOrderAndNesting(t *testing.T) {
	inner := collection.New().Push(1).Push(2)
	c := collection.New().Set("z", true).Set("outer", inner).Set("a", nil)
	out, err := c.ToYAML()
	if err != nil {
		t.Fatalf("ToYAML: %v", err)
	}
	s := string(out)
	zi, oi, ai := strings.Index(s, "z:"), strings.Index(s, "outer:"), strings.Index(s, "a:")
	if zi < 0 || oi < 0 || ai < 0 || !(zi < oi && oi < ai) {
		t.Fatalf("key order not preserved in %q", s)
	}

	var decoded map[string]any
	if err := yaml.Unmarshal(out, &decoded); err != nil {
		t.Fatalf("re-decoding output: %v", err)
	}
	want := map[string]any{
		"z":     true,
		"outer": []any{1, 2},
		"a":     nil,
	}
	if diff := cmp.Diff(want, decoded); diff != "" {
		t.Fatalf("decoded output mismatch (-want +got):\n%s", diff)
	}
}

func TestToYAML_AnyMapValue(t *testing.T) {
	c := collection.New().Set("m", map[any]any{1: "a", "b": 2})
	out, err := c.ToYAML()
	if err != nil {
		t.Fatalf("ToYAML: %v", err)
	}
	var decoded map[string]any
	if err := yaml.Unmarshal(out, &decoded); err != nil {
		t.Fatalf("re-decoding output: %v", err)
	}
	want := map[string]any{"m": map[string]any{"1": "a", "b": 2}}
	if diff := cmp.Diff(want, decoded); diff != "" {
		t.Fatalf("decoded output mismatch (-want +got):\n%s", diff)
	}
}

func TestMarshalYAML_EmbedsCollection(t *testing.T) {
	c := collection.New().Set("b", 2).Set("a", 1)
	direct, err := c.ToYAML()
	if err != nil {
		t.Fatalf("ToYAML: %v", err)
	}
	var buf strings.Builder
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(c); err != nil {
		t.Fatalf("Encode: %v", err)
	}
	if err := enc.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	if buf.String() != string(direct) {
		t.Fatalf("Marshal = %q, ToYAML = %q", buf.String(), direct)
	}
}

func TestToYAML_InvalidUTF8(t *testing.T) {
	c := collection.New().Set("s", "bad\xff")
	_, err := c.ToYAML()
	ce, ok := collection.AsCodecError(err)
	if !ok || ce.Code != collection.CodeInvalidUTF8 {
		t.Fatalf("error = %v, want invalid_utf8", err)
	}
}

func TestToYAML_DepthExceeded(t *testing.T) {
	c := collection.New()
	c.Set("self", c)
	_, err := c.ToYAML()
	ce, ok := collection.AsCodecError(err)
	if !ok || ce.Code != collection.CodeDepthExceeded {
		t.Fatalf("error = %v, want depth_exceeded", err)
	}
}
