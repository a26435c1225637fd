package organism

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/cwbudde/ecosystem"
)

func TestPhraseFitness(t *testing.T) {
	tests := []struct {
		target string
		text   string
		want   float64
	}{
		{"abc", "abc", 9},
		{"abc", "abd", 4},
		{"abc", "xyz", 0},
		{"abc", "axc", 4},
	}

	for _, tt := range tests {
		p := &Phrase{Target: tt.target, Text: tt.text}
		if got := p.Fitness(); got != tt.want {
			t.Errorf("Fitness(%q vs %q) = %v, want %v", tt.text, tt.target, got, tt.want)
		}
	}
}

func TestNewPhrase(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	target := "To be or not to be?"

	p := NewPhrase(target, rng)
	if len(p.Text) != len(target) {
		t.Errorf("Text length = %d, want %d", len(p.Text), len(target))
	}
	for _, r := range p.Text {
		if !strings.ContainsRune(string(phraseAlphabet), r) {
			t.Errorf("Text contains %q, not in alphabet", r)
		}
	}
}

func TestPhraseBreed(t *testing.T) {
	a := &Phrase{Target: "aaaa", Text: "aaaa"}
	b := &Phrase{Target: "aaaa", Text: "bbbb"}

	for i := 0; i < 50; i++ {
		child := a.Breed(b)
		if len(child.Text) != 4 {
			t.Fatalf("Child length = %d, want 4", len(child.Text))
		}
		// Single-point crossover: a run of a's followed by a run of b's.
		if strings.Contains(child.Text, "ba") {
			t.Fatalf("Child %q is not a single-cut combination", child.Text)
		}
	}

	if a.Text != "aaaa" || b.Text != "bbbb" {
		t.Error("Breed must not mutate either parent")
	}
}

func TestPhraseMutate(t *testing.T) {
	p := &Phrase{Target: "hello", Text: "hello"}

	p.Mutate(0)
	if p.Text != "hello" {
		t.Errorf("Rate 0 should not change the text, got %q", p.Text)
	}

	p.Mutate(1)
	if len(p.Text) != 5 {
		t.Errorf("Mutation changed text length to %d", len(p.Text))
	}
}

func TestPhraseSolved(t *testing.T) {
	p := &Phrase{Target: "done", Text: "done"}
	if !p.Solved() {
		t.Error("Matching phrase should report solved")
	}
	p.Text = "dont"
	if p.Solved() {
		t.Error("Non-matching phrase should not report solved")
	}
}

// TestPhraseEvolution checks that a phrase population makes steady
// progress toward its target under selection pressure.
func TestPhraseEvolution(t *testing.T) {
	const target = "Go gopher"

	rng := rand.New(rand.NewSource(11))
	organisms := make([]*Phrase, 200)
	for i := range organisms {
		organisms[i] = NewPhrase(target, rng)
	}

	eco, err := ecosystem.NewWithRand(organisms, rng)
	if err != nil {
		t.Fatalf("NewWithRand failed: %v", err)
	}

	start := eco.Fittest().Fitness()
	for g := 0; g < 100; g++ {
		eco.AdvanceGeneration(0.01)
		if eco.Fittest().Solved() {
			return
		}
	}

	if end := eco.Fittest().Fitness(); end <= start {
		t.Errorf("Fitness did not improve over 100 generations: %v -> %v", start, end)
	}
}
