package echem

import (
	"reflect"
	"testing"
)

func TestExtractTableBasic(t *testing.T) {
	lines := []string{
		"ID_PotStatic run",
		"",
		"t(s) i(A)",
		"0.0 1.0e-3",
		"1.0 2.0e-3",
	}
	header, table := ExtractTable(lines)
	if !reflect.DeepEqual(header, []string{"t(s)", "i(A)"}) {
		t.Fatalf("header = %v", header)
	}
	if len(table) != 2 {
		t.Fatalf("table rows = %d, want 2", len(table))
	}
	if table[1][1] != 2.0e-3 {
		t.Fatalf("table[1][1] = %v", table[1][1])
	}
}

func TestExtractTableFirstHeaderWins(t *testing.T) {
	lines := []string{
		"t(s) i(A)",
		"E(V) q(C)",
		"0.5 0.25",
	}
	header, table := ExtractTable(lines)
	if !reflect.DeepEqual(header, []string{"t(s)", "i(A)"}) {
		t.Fatalf("header = %v, want first qualifying line", header)
	}
	// The second unit-annotated line is not numeric, so it contributes
	// nothing to the table either.
	if len(table) != 1 {
		t.Fatalf("table rows = %d, want 1", len(table))
	}
}

func TestExtractTableMalformedRowsDropped(t *testing.T) {
	lines := []string{
		"t(s) i(A)",
		"0.0 1.0",
		"1.0 overload",
		"2.0 3.0",
	}
	_, table := ExtractTable(lines)
	if len(table) != 2 {
		t.Fatalf("table rows = %d, want only fully numeric lines", len(table))
	}
}

func TestExtractTableNoHeaderStillReadsData(t *testing.T) {
	lines := []string{
		"metadata without units",
		"0.0 1.0",
		"1.0 2.0",
	}
	header, table := ExtractTable(lines)
	if len(header) != 0 {
		t.Fatalf("header = %v, want empty", header)
	}
	if len(table) != 2 {
		t.Fatalf("table rows = %d, want 2", len(table))
	}
}

func TestExtractTableRaggedRowsAdmitted(t *testing.T) {
	lines := []string{
		"t(s) i(A)",
		"0.0 1.0 7.5",
		"1.0",
	}
	_, table := ExtractTable(lines)
	if len(table) != 2 {
		t.Fatalf("table rows = %d, want 2 (width not validated)", len(table))
	}
	if len(table[0]) != 3 || len(table[1]) != 1 {
		t.Fatalf("row widths = %d,%d", len(table[0]), len(table[1]))
	}
}

func TestExtractTableNonFiniteTokensRejected(t *testing.T) {
	lines := []string{
		"t(s) i(A)",
		"0.0 NaN",
		"1.0 +Inf",
		"2.0 3.0",
	}
	_, table := ExtractTable(lines)
	if len(table) != 1 {
		t.Fatalf("table rows = %d, want 1 (non-finite tokens rejected)", len(table))
	}
}

func TestSplitLinesEitherConvention(t *testing.T) {
	header, table := ExtractTable(splitLines("t(s) i(A)\r\n0.0 1.0\r\n1.0 2.0"))
	if len(header) != 2 || len(table) != 2 {
		t.Fatalf("CRLF input: header=%v rows=%d", header, len(table))
	}
}

func TestLinePredicates(t *testing.T) {
	if !isHeaderLine("t(s) i(A)") {
		t.Fatal("unit-annotated line not recognized as header")
	}
	if isHeaderLine("plain metadata") {
		t.Fatal("plain line misclassified as header")
	}
	for _, s := range []string{"0.5 1", "-3e4 2", "+.5", "1.0e-3 x"} {
		if !isNumericDataLine(s) {
			t.Fatalf("%q should look numeric", s)
		}
	}
	for _, s := range []string{"abc 1.0", "", "e5"} {
		if isNumericDataLine(s) {
			t.Fatalf("%q should not look numeric", s)
		}
	}
}
