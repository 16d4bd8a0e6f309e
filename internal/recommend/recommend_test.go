package recommend

import (
	"testing"

	"github.com/moodsnap/moodsnap/internal/classifier"
)

func TestFor_EveryLabelHasAdvice(t *testing.T) {
	t.Parallel()

	for _, label := range classifier.Labels {
		got := For(label)
		if got == "" {
			t.Fatalf("For(%q) returned empty string", label)
		}
		if got == Fallback {
			t.Fatalf("For(%q) fell through to the fallback", label)
		}
	}
}

func TestFor_Deterministic(t *testing.T) {
	t.Parallel()

	for _, label := range classifier.Labels {
		first := For(label)
		for i := 0; i < 10; i++ {
			if got := For(label); got != first {
				t.Fatalf("For(%q) not deterministic: %q vs %q", label, got, first)
			}
		}
	}
}

func TestFor_CaseInsensitive(t *testing.T) {
	t.Parallel()

	if For("HAPPY") != For("happy") {
		t.Fatalf("expected case-insensitive lookup for HAPPY")
	}
	if For("Sad") != For("sad") {
		t.Fatalf("expected case-insensitive lookup for Sad")
	}
}

func TestFor_UnknownFallsBack(t *testing.T) {
	t.Parallel()

	for _, in := range []string{"", "bored", "HAPPY!", "12345", "émotion"} {
		if got := For(in); got != Fallback {
			t.Fatalf("For(%q) = %q, want fallback", in, got)
		}
	}
}

func TestTable_CoversAllLabels(t *testing.T) {
	t.Parallel()

	tbl := Table()
	if len(tbl) != len(classifier.Labels) {
		t.Fatalf("table has %d entries, want %d", len(tbl), len(classifier.Labels))
	}
	for _, label := range classifier.Labels {
		if _, ok := tbl[label]; !ok {
			t.Fatalf("table missing label %q", label)
		}
	}
}
