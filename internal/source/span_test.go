package source

import "testing"

func TestSpanCover(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Span
		expected Span
	}{
		{
			name:     "disjoint spans",
			a:        Span{File: 1, Start: 0, End: 1},
			b:        Span{File: 1, Start: 4, End: 8},
			expected: Span{File: 1, Start: 0, End: 8},
		},
		{
			name:     "other inside",
			a:        Span{File: 1, Start: 2, End: 10},
			b:        Span{File: 1, Start: 3, End: 4},
			expected: Span{File: 1, Start: 2, End: 10},
		},
		{
			name:     "other before",
			a:        Span{File: 1, Start: 5, End: 6},
			b:        Span{File: 1, Start: 1, End: 2},
			expected: Span{File: 1, Start: 1, End: 6},
		},
		{
			name:     "different files keep receiver",
			a:        Span{File: 1, Start: 5, End: 6},
			b:        Span{File: 2, Start: 1, End: 9},
			expected: Span{File: 1, Start: 5, End: 6},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Cover(tt.b); got != tt.expected {
				t.Errorf("Cover() = %+v, want %+v", got, tt.expected)
			}
		})
	}
}

func TestSpanToAndContains(t *testing.T) {
	lhs := Span{File: 0, Start: 0, End: 1}
	rhs := Span{File: 0, Start: 4, End: 8}
	full := lhs.To(rhs)
	if full != (Span{File: 0, Start: 0, End: 8}) {
		t.Fatalf("To() = %+v", full)
	}
	if !full.Contains(lhs) || !full.Contains(rhs) {
		t.Fatalf("expected %v to contain both operands", full)
	}
	if lhs.Contains(full) {
		t.Fatalf("lhs must not contain the full span")
	}
	if full.Len() != 8 || full.Empty() {
		t.Fatalf("unexpected len/empty for %v", full)
	}
	if got := full.String(); got != "0:0-8" {
		t.Fatalf("String() = %q", got)
	}
}
