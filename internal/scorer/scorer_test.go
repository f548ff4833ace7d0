package scorer

import (
	"testing"

	"linkvetter/internal/brand"
	"linkvetter/internal/models"
)

func testEngine() *Engine {
	return New(brand.Dataset{
		"malaysia": {
			"Maybank": {
				Domains:     []string{"maybank2u.com.my", "maybank.com.my"},
				ScamMimics:  []string{"mayb4nk.com"},
				CountryCode: "MY",
			},
		},
		"international": {
			"PayPal": {
				Domains:     []string{"paypal.com"},
				CountryCode: "US",
			},
			// A deliberately look-alike-laden domain: folding it exercises
			// the one-directional character-substitution check.
			"Spoofed Bank": {
				Domains:     []string{"rn4yb4nk.c0m"},
				CountryCode: "XX",
			},
		},
	})
}

func TestMatchBrandPriorityOrder(t *testing.T) {
	engine := testEngine()

	tests := []struct {
		name          string
		domain        string
		expectedScore int
		expectedType  models.MatchType
		expectBrand   bool
	}{
		{"exact verified", "maybank2u.com.my", ScoreVerifiedExact, models.MatchExact, true},
		{"subdomain of verified", "secure.maybank2u.com.my", ScoreVerifiedSubdomain, models.MatchSubdomain, true},
		{"known scam mimic", "mayb4nk.com", ScoreKnownScam, models.MatchKnownScam, false},
		{"impersonation by similarity", "paypa1.com", ScoreImpersonation, models.MatchImpersonation, false},
		{"no match", "wikipedia.org", 0, models.MatchNone, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := engine.MatchBrand(tt.domain)
			if result.Score != tt.expectedScore {
				t.Errorf("score = %d, want %d", result.Score, tt.expectedScore)
			}
			if result.MatchType != tt.expectedType {
				t.Errorf("match type = %q, want %q", result.MatchType, tt.expectedType)
			}
			if (result.Brand != nil) != tt.expectBrand {
				t.Errorf("brand presence = %v, want %v", result.Brand != nil, tt.expectBrand)
			}
		})
	}
}

func TestImpersonationConfidence(t *testing.T) {
	engine := testEngine()

	// paypa1.com vs paypal.com: one edit over ten characters, similarity
	// 0.9 — confidence caps at min(0.9, 0.9+0.1) = 0.9.
	result := engine.MatchBrand("paypa1.com")
	if result.MatchType != models.MatchImpersonation {
		t.Fatalf("match type = %q, want impersonation", result.MatchType)
	}
	if result.Confidence != 0.9 {
		t.Errorf("confidence = %v, want 0.9", result.Confidence)
	}
}

func TestImpersonationByCharacterSubstitution(t *testing.T) {
	engine := testEngine()

	// maybank.com sits below the similarity band against rn4yb4nk.c0m but
	// equals it after look-alike folding (rn→m, 4→a, 0→o).
	result := engine.MatchBrand("maybank.com")
	if result.MatchType != models.MatchImpersonation {
		t.Fatalf("match type = %q, want impersonation", result.MatchType)
	}
	if result.Score != ScoreImpersonation {
		t.Errorf("score = %d, want %d", result.Score, ScoreImpersonation)
	}
	if result.Confidence != 0.8 {
		t.Errorf("substitution confidence = %v, want 0.8", result.Confidence)
	}
}

func TestAssessVerifiedBrandSafe(t *testing.T) {
	engine := testEngine()

	result := engine.Assess("https://maybank2u.com.my/login", nil, nil)

	if result.TrustLevel != models.TrustSafe {
		t.Errorf("trust level = %q, want Safe (score %d, reasons %v)",
			result.TrustLevel, result.Score, result.Reasons)
	}
	if result.Score != ScoreVerifiedExact {
		t.Errorf("score = %d, want %d", result.Score, ScoreVerifiedExact)
	}
	if result.Confidence != ConfidenceVerifiedBrand {
		t.Errorf("confidence = %v, want %v", result.Confidence, ConfidenceVerifiedBrand)
	}
	if result.Brand == nil || result.Brand.Name != "Maybank" {
		t.Errorf("brand = %+v, want Maybank", result.Brand)
	}
}

func TestAssessScamURLDangerous(t *testing.T) {
	engine := testEngine()

	// Suspicious TLD + typosquatting + bait subdomain + urgency keyword
	// pushes the heuristic layer alone well past the Dangerous boundary.
	result := engine.Assess("http://mayb4nk-verify.tk/secure-login", nil, nil)

	if result.TrustLevel != models.TrustDangerous {
		t.Errorf("trust level = %q (score %d), want Dangerous", result.TrustLevel, result.Score)
	}
	if result.Score < ThresholdDangerous {
		t.Errorf("score = %d, want >= %d", result.Score, ThresholdDangerous)
	}
	if result.Confidence != ConfidenceMultiFlag {
		t.Errorf("confidence = %v, want %v (>= 3 flags)", result.Confidence, ConfidenceMultiFlag)
	}
}

func TestAssessNeutralURLUnknown(t *testing.T) {
	engine := testEngine()

	result := engine.Assess("https://randomshop.example/catalog", nil, nil)

	if result.Score != 0 {
		t.Fatalf("score = %d, want 0 (reasons %v)", result.Score, result.Reasons)
	}
	if result.TrustLevel != models.TrustUnknown {
		t.Errorf("trust level = %q, want Unknown", result.TrustLevel)
	}
	if result.Confidence != ConfidenceDefault {
		t.Errorf("confidence = %v, want %v", result.Confidence, ConfidenceDefault)
	}
}

func TestAssessParseFailure(t *testing.T) {
	engine := testEngine()

	for _, raw := range []string{"", "not-a-url", "://missing"} {
		result := engine.Assess(raw, nil, nil)
		if result.TrustLevel != models.TrustError {
			t.Errorf("Assess(%q) trust level = %q, want Error", raw, result.TrustLevel)
		}
		if result.Score != 0 || result.Confidence != ConfidenceParseError {
			t.Errorf("Assess(%q) score=%d confidence=%v, want 0 and %v",
				raw, result.Score, result.Confidence, ConfidenceParseError)
		}
		if result.Error == "" {
			t.Errorf("Assess(%q) missing diagnostic reason", raw)
		}
	}
}

func TestClassificationBoundaries(t *testing.T) {
	engine := testEngine()

	t.Run("score exactly 7 is Dangerous", func(t *testing.T) {
		// Agency pattern (3) + AI dangerous (4) = 7.
		result := engine.Assess("https://lhdnrefund.com", nil,
			&models.AIVerdict{Risk: "Dangerous"})
		if result.Score != 7 {
			t.Fatalf("score = %d, want exactly 7 (reasons %v)", result.Score, result.Reasons)
		}
		if result.TrustLevel != models.TrustDangerous {
			t.Errorf("trust level = %q, want Dangerous", result.TrustLevel)
		}
	})

	t.Run("score exactly 3 is Suspicious", func(t *testing.T) {
		result := engine.Assess("https://mygovportal.com", nil, nil)
		if result.Score != 3 {
			t.Fatalf("score = %d, want exactly 3 (reasons %v)", result.Score, result.Reasons)
		}
		if result.TrustLevel != models.TrustSuspicious {
			t.Errorf("trust level = %q, want Suspicious", result.TrustLevel)
		}
	})

	t.Run("score exactly -3 is Safe", func(t *testing.T) {
		result := engine.Assess("https://online.maybank2u.com.my", nil, nil)
		if result.Score != -3 {
			t.Fatalf("score = %d, want exactly -3 (reasons %v)", result.Score, result.Reasons)
		}
		if result.TrustLevel != models.TrustSafe {
			t.Errorf("trust level = %q, want Safe", result.TrustLevel)
		}
	})

	t.Run("score 0 with no signals is Unknown", func(t *testing.T) {
		result := engine.Assess("https://plainsite.example", nil, nil)
		if result.Score != 0 || result.TrustLevel != models.TrustUnknown {
			t.Errorf("score=%d level=%q, want 0/Unknown", result.Score, result.TrustLevel)
		}
	})
}

func TestAIVerdictIntegration(t *testing.T) {
	engine := testEngine()
	clean := "https://cleansite.example"

	tests := []struct {
		name          string
		verdict       *models.AIVerdict
		expectedScore int
	}{
		{"dangerous", &models.AIVerdict{Risk: "Dangerous"}, 4},
		{"suspicious", &models.AIVerdict{Risk: "suspicious"}, 2},
		{"safe", &models.AIVerdict{Risk: "Safe"}, -1},
		{"inconclusive label", &models.AIVerdict{Risk: "maybe?"}, 0},
		{"nil verdict", nil, 0},
		{"dangerous with named brand", &models.AIVerdict{Risk: "Dangerous", ImpersonatedBrand: "Maybank"}, 6},
		{"inconclusive but named brand still counts", &models.AIVerdict{Risk: "unknown", ImpersonatedBrand: "PayPal"}, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := engine.Assess(clean, nil, tt.verdict)
			if result.Layers.AIAnalysis.Score != tt.expectedScore {
				t.Errorf("AI layer score = %d, want %d", result.Layers.AIAnalysis.Score, tt.expectedScore)
			}
		})
	}
}

func TestAIConfidencePropagates(t *testing.T) {
	engine := testEngine()

	// No verified brand: the AI verdict's own confidence wins over both
	// the default and the multi-flag raise.
	result := engine.Assess("https://cleansite.example", nil,
		&models.AIVerdict{Risk: "Suspicious", Confidence: 0.88})
	if result.Confidence != 0.88 {
		t.Errorf("confidence = %v, want 0.88", result.Confidence)
	}

	// A verified brand outranks AI-supplied confidence.
	result = engine.Assess("https://maybank2u.com.my", nil,
		&models.AIVerdict{Risk: "Safe", Confidence: 0.5})
	if result.Confidence != ConfidenceVerifiedBrand {
		t.Errorf("confidence = %v, want %v", result.Confidence, ConfidenceVerifiedBrand)
	}
}

func TestRedirectLayerContributes(t *testing.T) {
	engine := testEngine()

	chain := []models.RedirectHop{
		{URL: "https://start.example.com", Status: 301},
		{URL: "http://end.example.com", Status: 200},
	}

	result := engine.Assess("https://cleansite.example", chain, nil)
	if result.Layers.Redirects.Score != 3 {
		t.Errorf("redirect layer score = %d, want 3 (downgrade)", result.Layers.Redirects.Score)
	}
	if result.TrustLevel != models.TrustSuspicious {
		t.Errorf("trust level = %q, want Suspicious at score 3", result.TrustLevel)
	}

	// An empty chain contributes nothing.
	result = engine.Assess("https://cleansite.example", nil, nil)
	if result.Layers.Redirects.Score != 0 {
		t.Errorf("empty chain contributed %d", result.Layers.Redirects.Score)
	}
}

func TestLayerBreakdownRetained(t *testing.T) {
	engine := testEngine()

	result := engine.Assess("http://mayb4nk-verify.tk/secure-login", nil,
		&models.AIVerdict{Risk: "Dangerous"})

	if result.Layers.Heuristics.Score == 0 || len(result.Layers.Heuristics.Flags) == 0 {
		t.Error("heuristic layer breakdown missing")
	}
	if result.Layers.AIAnalysis.Score != 4 {
		t.Errorf("AI layer score = %d, want 4", result.Layers.AIAnalysis.Score)
	}

	total := result.Layers.Heuristics.Score + result.Layers.BrandCheck.Score +
		result.Layers.Redirects.Score + result.Layers.AIAnalysis.Score
	if total != result.Score {
		t.Errorf("layer scores sum to %d but total is %d", total, result.Score)
	}
}
