package table

import (
	"reflect"
	"strings"
	"testing"
)

func TestFormatPadsColumns(t *testing.T) {
	rows := [][]string{
		{"TEXT", "URL", "DEPTH"},
		{"Home", "/home", "1"},
		{"  Intro", "", "12"},
		{"Docs"},
	}
	got := Format(rows, []Alignment{AlignLeft, AlignLeft, AlignRight})
	want := []string{
		"TEXT     URL    DEPTH",
		"Home     /home      1",
		"  Intro" + strings.Repeat(" ", 12) + "12",
		"Docs",
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("unexpected rows\nwant %q\ngot  %q", want, got)
	}
}

func TestFormatCountsRunes(t *testing.T) {
	got := Format([][]string{{"──", "x"}, {"ab", "y"}}, nil)
	if got[0] != "──  x" || got[1] != "ab  y" {
		t.Fatalf("unexpected rows %q", got)
	}
	if Format(nil, nil) != nil {
		t.Fatal("expected nil for no rows")
	}
}
