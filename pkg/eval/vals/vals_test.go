package vals

import "testing"

type reprer struct{}

func (reprer) Repr() string { return "<reprer>" }

type kinder struct{}

func (kinder) Kind() string { return "kinder" }

func TestBool(t *testing.T) {
	tests := []struct {
		v    any
		want bool
	}{
		{nil, false},
		{false, false},
		{0, false},
		{true, true},
		{1, true},
		{-1, true},
		{reprer{}, true},
	}
	for _, test := range tests {
		if got := Bool(test.v); got != test.want {
			t.Errorf("Bool(%v) = %v, want %v", test.v, got, test.want)
		}
	}
}

func TestRepr(t *testing.T) {
	tests := []struct {
		v    any
		want string
	}{
		{nil, "nil"},
		{true, "true"},
		{false, "false"},
		{0, "0"},
		{-42, "-42"},
		{reprer{}, "<reprer>"},
		{3.14, "<unknown 3.14>"},
	}
	for _, test := range tests {
		if got := Repr(test.v); got != test.want {
			t.Errorf("Repr(%v) = %q, want %q", test.v, got, test.want)
		}
	}
}

func TestKind(t *testing.T) {
	tests := []struct {
		v    any
		want string
	}{
		{nil, "nil"},
		{true, "bool"},
		{1, "number"},
		{kinder{}, "kinder"},
		{"x", "!!string"},
	}
	for _, test := range tests {
		if got := Kind(test.v); got != test.want {
			t.Errorf("Kind(%v) = %q, want %q", test.v, got, test.want)
		}
	}
}
