package textmatch

import (
	"math"
	"testing"
)

func TestSequenceMatcherRatio(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		a, b string
		want float64
	}{
		{name: "identical", a: "FlappyBird", b: "FlappyBird", want: 1},
		{name: "both empty", a: "", b: "", want: 1},
		{name: "one empty", a: "FlappyBird", b: "", want: 0},
		{name: "disjoint", a: "abc", b: "xyz", want: 0},
		{name: "shifted", a: "abcd", b: "bcde", want: 0.75},
		{name: "shared suffix", a: "FlappyBird", b: "AngryBird", want: 10.0 / 19.0},
		{name: "single letters", a: "FlappyBird", b: "FruitNinja", want: 0.2},
		{name: "runes", a: "café", b: "cafe", want: 0.75},
	}

	m := SequenceMatcher{}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got := m.Ratio(tc.a, tc.b)
			if math.Abs(got-tc.want) > 1e-9 {
				t.Fatalf("Ratio(%q, %q) = %v, want %v", tc.a, tc.b, got, tc.want)
			}
		})
	}
}

func TestSequenceMatcherSymmetric(t *testing.T) {
	t.Parallel()

	pairs := [][2]string{
		{"FlappyBird", "AngryBird"},
		{"Temple Run", "Temple Run 2"},
		{"abxcd", "abcxd"},
		{"Clash of Clans", "Clash Royale"},
		{"aaab", "abaa"},
	}

	m := SequenceMatcher{}
	for _, p := range pairs {
		if ab, ba := m.Ratio(p[0], p[1]), m.Ratio(p[1], p[0]); ab != ba {
			t.Fatalf("Ratio not symmetric for %q/%q: %v vs %v", p[0], p[1], ab, ba)
		}
	}
}

func TestSequenceMatcherBounded(t *testing.T) {
	t.Parallel()

	m := SequenceMatcher{}
	inputs := []string{"", "a", "Angry Birds", "Angry Birds 2", "Cut the Rope", "ぷよぷよ", "Rope"}
	for _, a := range inputs {
		for _, b := range inputs {
			r := m.Ratio(a, b)
			if r < 0 || r > 1 {
				t.Fatalf("Ratio(%q, %q) = %v out of [0,1]", a, b, r)
			}
		}
	}
}
