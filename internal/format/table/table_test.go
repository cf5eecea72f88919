package table

import "testing"

func TestFormatAlignsColumns(t *testing.T) {
	rows := [][]string{
		{"●", "logs"},
		{"", "metrics"},
		{"", "a"},
	}
	got := Format(rows, []Alignment{AlignRight, AlignLeft})
	want := []string{
		"● logs",
		"  metrics",
		"  a",
	}
	if len(got) != len(want) {
		t.Fatalf("expected %d rows, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("row %d: expected %q, got %q", i, want[i], got[i])
		}
	}
}

func TestFormatMeasuresWideRunes(t *testing.T) {
	got := Format([][]string{{"日本", "x"}, {"ab", "y"}}, nil)
	if got[0] != "日本 x" {
		t.Fatalf("unexpected first row %q", got[0])
	}
	if got[1] != "ab   y" {
		t.Fatalf("expected wide runes to count as two cells, got %q", got[1])
	}
}

func TestFormatEmpty(t *testing.T) {
	if Format(nil, nil) != nil {
		t.Fatal("expected nil for no rows")
	}
}
