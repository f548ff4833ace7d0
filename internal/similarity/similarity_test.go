package similarity

import "testing"

func TestEditDistance(t *testing.T) {
	tests := []struct {
		name     string
		a, b     string
		expected int
	}{
		{"identical", "maybank.com", "maybank.com", 0},
		{"empty both", "", "", 0},
		{"empty left", "", "cimb", 4},
		{"empty right", "cimb", "", 4},
		{"single substitution", "maybank", "maybenk", 1},
		{"single insertion", "maybank", "maybbank", 1},
		{"single deletion", "maybank", "mybank", 1},
		{"classic kitten", "kitten", "sitting", 3},
		{"disjoint equal length", "abcd", "wxyz", 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := EditDistance(tt.a, tt.b); got != tt.expected {
				t.Errorf("EditDistance(%q, %q) = %d, want %d", tt.a, tt.b, got, tt.expected)
			}
		})
	}
}

func TestEditDistanceSymmetry(t *testing.T) {
	pairs := [][2]string{
		{"maybank2u.com.my", "maybank2u.com"},
		{"cimbclicks.com.my", "cimb-clicks.com"},
		{"pbebank.com", "pbebank.co"},
		{"", "grab.com"},
	}

	for _, p := range pairs {
		if d1, d2 := EditDistance(p[0], p[1]), EditDistance(p[1], p[0]); d1 != d2 {
			t.Errorf("EditDistance not symmetric for (%q, %q): %d vs %d", p[0], p[1], d1, d2)
		}
	}
}

// Spot-check the triangle inequality over arbitrary triples rather than
// proving it exhaustively.
func TestEditDistanceTriangleInequality(t *testing.T) {
	triples := [][3]string{
		{"maybank.com", "mayb4nk.com", "maybank2u.com.my"},
		{"grab", "crab", "grip"},
		{"", "bank", "banking"},
		{"touchngo.com.my", "tngdigital.com.my", "tngo.com"},
	}

	for _, tr := range triples {
		ab := EditDistance(tr[0], tr[1])
		bc := EditDistance(tr[1], tr[2])
		ac := EditDistance(tr[0], tr[2])
		if ac > ab+bc {
			t.Errorf("triangle inequality violated for %v: d(a,c)=%d > d(a,b)+d(b,c)=%d", tr, ac, ab+bc)
		}
	}
}

func TestScoreIdentity(t *testing.T) {
	for _, s := range []string{"", "maybank.com", "x", "very-long-domain-name.com.my"} {
		if got := Score(s, s); got != 1.0 {
			t.Errorf("Score(%q, %q) = %v, want 1.0", s, s, got)
		}
	}
}

func TestScoreSymmetry(t *testing.T) {
	pairs := [][2]string{
		{"maybank.com", "mayb4nk.com"},
		{"cimbclicks.com.my", "cimb.com.my"},
		{"abcd", "wxyz"},
	}

	for _, p := range pairs {
		if s1, s2 := Score(p[0], p[1]), Score(p[1], p[0]); s1 != s2 {
			t.Errorf("Score not symmetric for (%q, %q): %v vs %v", p[0], p[1], s1, s2)
		}
	}
}

func TestScoreRange(t *testing.T) {
	// Disjoint strings of equal length sit at the bottom of the range.
	if got := Score("abcd", "wxyz"); got != 0.0 {
		t.Errorf("Score of disjoint equal-length strings = %v, want 0", got)
	}

	// One substitution in an 11-char domain: (11-1)/11 ≈ 0.909.
	got := Score("maybank.com", "mayb4nk.com")
	if got <= 0.7 || got >= 1.0 {
		t.Errorf("Score(maybank.com, mayb4nk.com) = %v, want in (0.7, 1.0)", got)
	}
}

func TestHasCharacterSubstitution(t *testing.T) {
	tests := []struct {
		name       string
		candidate  string
		legitimate string
		expected   bool
	}{
		// Folding runs over the legitimate string only: a legitimate name
		// containing look-alike sequences folds down to the candidate.
		{"digit 4 folds to a", "maybank.com", "mayb4nk.com", true},
		{"zero folds to o", "boost.com", "b00st.com", true},
		{"rn folds to m", "maybank.com", "rnaybank.com", true},
		{"vv folds to w", "wise.com", "vvise.com", true},
		{"no substitution identical", "grab.com", "grab.com", true},
		{"plain mismatch", "maybank.com", "cimb.com", false},
		// One-directional: look-alikes in the candidate never fold.
		{"lookalike in candidate ignored", "mayb4nk.com", "maybank.com", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := HasCharacterSubstitution(tt.candidate, tt.legitimate); got != tt.expected {
				t.Errorf("HasCharacterSubstitution(%q, %q) = %v, want %v",
					tt.candidate, tt.legitimate, got, tt.expected)
			}
		})
	}
}
