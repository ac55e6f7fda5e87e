package testutil

import (
	"errors"
	"testing"
)

// A *testing.T cannot be faked, so only the passing paths of the helpers
// run here. formatMessage is checked directly.

func TestAssertions_Pass(t *testing.T) {
	AssertEqual(t, []int{1, 2, 3}, []int{1, 2, 3})
	AssertEqual(t, nil, nil)
	AssertEqual(t, 42, 42, "value should be %d", 42)
	AssertNoError(t, nil, "no error expected")
	AssertError(t, errors.New("boom"), "from %s", "caller")
	AssertContains(t, "1. e2-e4 e7-e5", "e7-e5")
	AssertContains(t, "anything", "")
	AssertTrue(t, len("mice") == 4)
	AssertFalse(t, len("mice") == 0)

	x := 42
	AssertNotNil(t, &x)
	AssertNotNil(t, []int{})
}

func TestIsNil(t *testing.T) {
	var p *int
	var m map[string]int
	AssertTrue(t, isNil(nil))
	AssertTrue(t, isNil(p), "typed nil pointer")
	AssertTrue(t, isNil(m), "nil map")
	AssertFalse(t, isNil(0))
	AssertFalse(t, isNil(""))
}

func TestFormatMessage(t *testing.T) {
	tests := []struct {
		name string
		args []interface{}
		want string
	}{
		{"no args", nil, ""},
		{"single string", []interface{}{"hello"}, "hello"},
		{"single int", []interface{}{42}, "42"},
		{"format string", []interface{}{"ply %d of %s", 3, "game"}, "ply 3 of game"},
		{"non-string first", []interface{}{7, "ignored"}, "7"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := formatMessage(tt.args...); got != tt.want {
				t.Errorf("formatMessage(%v) = %q, want %q", tt.args, got, tt.want)
			}
		})
	}
}

type opaque struct{ hidden int }

func (o opaque) String() string { return "opaque" }

func TestAssertEqual_Stringer(t *testing.T) {
	// Unexported fields would make cmp panic without the transformer.
	AssertEqual(t, opaque{hidden: 1}, opaque{hidden: 2})
	AssertEqual(t, []opaque{{1}}, []opaque{{3}})
}
