package main

import (
	"reflect"
	"testing"
)

func TestExtractBoolFlag(t *testing.T) {
	cases := []struct {
		args      []string
		flag      string
		wantFound bool
		wantRest  []string
	}{
		{[]string{"--comments", "a.v"}, "--comments", true, []string{"a.v"}},
		{[]string{"a.v", "b.v"}, "--comments", false, []string{"a.v", "b.v"}},
		{[]string{"--comments", "a.v", "--comments"}, "--comments", true, []string{"a.v"}},
		{[]string{}, "--comments", false, []string{}},
	}
	for _, tc := range cases {
		found, rest := extractBoolFlag(tc.args, tc.flag)
		if found != tc.wantFound {
			t.Fatalf("extractBoolFlag(%v, %q) found = %v, want %v", tc.args, tc.flag, found, tc.wantFound)
		}
		if !reflect.DeepEqual(rest, tc.wantRest) {
			t.Fatalf("extractBoolFlag(%v, %q) rest = %v, want %v", tc.args, tc.flag, rest, tc.wantRest)
		}
	}
}

func TestColorTTYs(t *testing.T) {
	if stderr, stdout := colorTTYs("on"); !stderr || !stdout {
		t.Fatalf("colorTTYs(on) = %v, %v, want true, true", stderr, stdout)
	}
	if stderr, stdout := colorTTYs("off"); stderr || stdout {
		t.Fatalf("colorTTYs(off) = %v, %v, want false, false", stderr, stdout)
	}
}
