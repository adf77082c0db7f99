package models

import "testing"

func TestStringListRoundTrip(t *testing.T) {
	colors := StringList{"Black", "Tan", "Olive"}

	value, err := colors.Value()
	if err != nil {
		t.Fatalf("Value returned error: %v", err)
	}

	var decoded StringList
	if err := decoded.Scan(value); err != nil {
		t.Fatalf("Scan returned error: %v", err)
	}
	if len(decoded) != len(colors) {
		t.Fatalf("decoded %d entries, want %d", len(decoded), len(colors))
	}
	for i := range colors {
		if decoded[i] != colors[i] {
			t.Fatalf("decoded[%d] = %q, want %q (order must survive)", i, decoded[i], colors[i])
		}
	}
}

func TestStringListScanEmpty(t *testing.T) {
	var l StringList
	if err := l.Scan(nil); err != nil {
		t.Fatalf("Scan(nil) returned error: %v", err)
	}
	if len(l) != 0 {
		t.Fatalf("Scan(nil) = %v, want empty", l)
	}

	if err := l.Scan(""); err != nil {
		t.Fatalf("Scan(\"\") returned error: %v", err)
	}
	if len(l) != 0 {
		t.Fatalf("Scan(\"\") = %v, want empty", l)
	}
}

func TestStringListNilValue(t *testing.T) {
	var l StringList
	value, err := l.Value()
	if err != nil {
		t.Fatalf("Value returned error: %v", err)
	}
	if value != "[]" {
		t.Fatalf("nil list serializes to %v, want []", value)
	}
}
