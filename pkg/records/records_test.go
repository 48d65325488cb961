package records

import "testing"

func TestHas(t *testing.T) {
	r := Record{"a": "x", "b": "", "c": nil, "d": 0}
	cases := []struct {
		field string
		want  bool
	}{
		{"a", true},
		{"b", false},
		{"c", false},
		{"d", true},
		{"missing", false},
	}
	for _, c := range cases {
		if got := r.Has(c.field); got != c.want {
			t.Errorf("Has(%q) = %v, want %v", c.field, got, c.want)
		}
	}
}

func TestString(t *testing.T) {
	r := Record{"s": "hi", "i": 7, "f": 2.5, "n": nil}
	if got := r.String("s"); got != "hi" {
		t.Errorf("String(s) = %q", got)
	}
	if got := r.String("i"); got != "7" {
		t.Errorf("String(i) = %q", got)
	}
	if got := r.String("f"); got != "2.5" {
		t.Errorf("String(f) = %q", got)
	}
	if got := r.String("n"); got != "" {
		t.Errorf("String(n) = %q", got)
	}
}

func TestFloat(t *testing.T) {
	r := Record{"s": "12.50", "f": 3.0, "bad": "abc"}
	if got, err := r.Float("s"); err != nil || got != 12.5 {
		t.Errorf("Float(s) = %v, %v", got, err)
	}
	if got, err := r.Float("f"); err != nil || got != 3.0 {
		t.Errorf("Float(f) = %v, %v", got, err)
	}
	if _, err := r.Float("bad"); err == nil {
		t.Error("Float(bad) expected error")
	}
	if _, err := r.Float("missing"); err == nil {
		t.Error("Float(missing) expected error")
	}
}
