package table

import (
	"reflect"
	"testing"
)

func TestFormatAlignsColumns(t *testing.T) {
	rows := [][]string{
		{"L001", "John Smith", "K25,000"},
		{"L0002", "Sarah", "K9,200"},
	}
	got := Format(rows, []Alignment{AlignLeft, AlignLeft, AlignRight})
	want := []string{
		"L001   John Smith  K25,000",
		"L0002  Sarah        K9,200",
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("unexpected rows:\n%q\nwant\n%q", got, want)
	}
}

func TestFormatPadsShortRows(t *testing.T) {
	rows := [][]string{
		{"a", "bb", "c"},
		{"aaa"},
	}
	got := Format(rows, nil)
	want := []string{
		"a    bb  c",
		"aaa      ",
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("unexpected rows:\n%q\nwant\n%q", got, want)
	}
}

func TestWithHeaderSharesWidths(t *testing.T) {
	header, rows := WithHeader([]string{"ID", "Name"}, [][]string{{"B001", "Ada"}}, nil)
	if header != "ID    Name" {
		t.Fatalf("unexpected header %q", header)
	}
	if len(rows) != 1 || rows[0] != "B001  Ada" {
		t.Fatalf("unexpected rows %q", rows)
	}
}

func TestFormatEmpty(t *testing.T) {
	if got := Format(nil, nil); got != nil {
		t.Fatalf("expected nil, got %q", got)
	}
}

func TestFormatIgnoresEscapeSequences(t *testing.T) {
	rows := [][]string{
		{"\x1b[1mab\x1b[0m", "x"},
		{"abcd", "y"},
	}
	got := Format(rows, nil)
	if got[0] != "\x1b[1mab\x1b[0m    x" {
		t.Fatalf("expected styled cell padded by its printed width, got %q", got[0])
	}
}
