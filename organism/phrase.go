package organism

import (
	"math/rand"
	randv2 "math/rand/v2"
	"strings"
)

// phraseAlphabet is the character set phrases are built and mutated from.
var phraseAlphabet = []rune(" !,.?ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz")

// Phrase evolves a fixed-length string toward a target phrase.
// Fitness is the squared count of positions that already match, which
// sharpens selection pressure as phrases get close.
type Phrase struct {
	Target string
	Text   string
}

// NewPhrase creates a phrase of random alphabet characters with the same
// length as the target.
func NewPhrase(target string, rng *rand.Rand) *Phrase {
	var b strings.Builder
	for range target {
		b.WriteRune(phraseAlphabet[rng.Intn(len(phraseAlphabet))])
	}
	return &Phrase{Target: target, Text: b.String()}
}

// Fitness returns the square of the number of matching characters.
func (p *Phrase) Fitness() float64 {
	matches := 0
	target := []rune(p.Target)
	for i, r := range []rune(p.Text) {
		if i < len(target) && r == target[i] {
			matches++
		}
	}
	return float64(matches * matches)
}

// Breed performs single-point crossover: the child takes the receiver's
// text up to a random cut and the other parent's text after it.
func (p *Phrase) Breed(other *Phrase) *Phrase {
	self := []rune(p.Text)
	mate := []rune(other.Text)
	if len(self) == 0 {
		return &Phrase{Target: p.Target, Text: p.Text}
	}
	cut := randv2.IntN(len(self))
	return &Phrase{
		Target: p.Target,
		Text:   string(self[:cut]) + string(mate[cut:]),
	}
}

// Mutate replaces each character with a random alphabet character with
// probability rate.
func (p *Phrase) Mutate(rate float64) {
	if rate <= 0 {
		return
	}
	letters := []rune(p.Text)
	for i := range letters {
		if randv2.Float64() < rate {
			letters[i] = phraseAlphabet[randv2.IntN(len(phraseAlphabet))]
		}
	}
	p.Text = string(letters)
}

// Solved reports whether the phrase matches its target exactly.
func (p *Phrase) Solved() bool {
	return p.Text == p.Target
}
