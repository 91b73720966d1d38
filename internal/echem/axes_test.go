package echem

import "testing"

func TestSelectAxesDefaults(t *testing.T) {
	sel := SelectAxes(nil)
	if sel.XIndex != 0 || sel.YIndex != 1 {
		t.Fatalf("defaults = %d/%d, want 0/1", sel.XIndex, sel.YIndex)
	}
	if sel.XLabel != "X" || sel.YLabel != "Y" {
		t.Fatalf("default labels = %q/%q", sel.XLabel, sel.YLabel)
	}
}

func TestSelectAxesLastMatchWins(t *testing.T) {
	sel := SelectAxes([]string{"t1", "t2", "i1", "i2"})
	if sel.XIndex != 1 || sel.YIndex != 3 {
		t.Fatalf("indices = %d/%d, want 1/3", sel.XIndex, sel.YIndex)
	}
	if sel.XLabel != "t2" || sel.YLabel != "i2" {
		t.Fatalf("labels = %q/%q", sel.XLabel, sel.YLabel)
	}
}

func TestSelectAxesCaseInsensitive(t *testing.T) {
	sel := SelectAxes([]string{"T(s)", "I(A)"})
	if sel.XIndex != 0 || sel.YIndex != 1 {
		t.Fatalf("indices = %d/%d, want 0/1", sel.XIndex, sel.YIndex)
	}
}

func TestSeriesAtSkipsNarrowRows(t *testing.T) {
	sel := AxisSelection{XIndex: 0, YIndex: 2}
	table := [][]float64{
		{0, 1, 2},
		{1, 5},
		{2, 6, 7},
	}
	xs, ys, skipped := SeriesAt(table, sel)
	if skipped != 1 {
		t.Fatalf("skipped = %d, want 1", skipped)
	}
	if len(xs) != 2 || len(ys) != 2 {
		t.Fatalf("series lengths = %d/%d, want 2/2", len(xs), len(ys))
	}
	if ys[1] != 7 {
		t.Fatalf("ys[1] = %v, want 7", ys[1])
	}
}
