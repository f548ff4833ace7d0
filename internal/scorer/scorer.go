package scorer

import (
	"fmt"
	"net/url"
	"strings"

	"linkvetter/internal/brand"
	"linkvetter/internal/heuristics"
	"linkvetter/internal/models"
	"linkvetter/internal/redirects"
	"linkvetter/internal/similarity"
)

// Layer 2 brand-check scores. Verified matches pull the total down;
// scam matches push it up. Known mimics outrank impersonation guesses,
// which outrank every single heuristic rule.
const (
	ScoreVerifiedExact     = -5
	ScoreVerifiedSubdomain = -3
	ScoreKnownScam         = 6
	ScoreImpersonation     = 5

	// Layer 4 contributions from an external AI verdict.
	ScoreAIDangerous  = 4
	ScoreAISuspicious = 2
	ScoreAISafe       = -1
	ScoreAIBrandSpoof = 2

	// Final classification boundaries.
	ThresholdDangerous  = 7
	ThresholdSuspicious = 3
	ThresholdSafe       = -3

	// Confidence ladder. Exactly one raise applies per assessment:
	// a verified brand beats AI-supplied confidence, which beats the
	// multi-flag heuristic.
	ConfidenceDefault       = 0.7
	ConfidenceVerifiedBrand = 0.95
	ConfidenceMultiFlag     = 0.85
	ConfidenceParseError    = 0.1

	// Similarity band treated as impersonation: close enough to a verified
	// domain to suggest mimicry, but not the domain itself.
	impersonationFloor = 0.7

	multiFlagThreshold = 3
)

// Engine scores URLs against an immutable brand index built once at
// construction. The index is never mutated afterwards, so a single Engine
// is safe for concurrent use across goroutines.
type Engine struct {
	index *brand.Index
}

// New builds an Engine from a raw brand dataset.
func New(dataset brand.Dataset) *Engine {
	return &Engine{index: brand.BuildIndex(dataset)}
}

// Default builds an Engine over the built-in ASEAN brand registry.
func Default() *Engine {
	return New(brand.DefaultDataset())
}

// Index exposes the underlying brand index for registry queries.
func (e *Engine) Index() *brand.Index {
	return e.index
}

// Assess runs the four evaluation layers over one URL and derives the
// final trust classification. The redirect chain and AI verdict are
// optional precomputed inputs; nil or empty values contribute nothing.
// The only fatal path is a URL that fails to parse, reported as a
// terminal Error verdict — every layer absorbs its own faults.
func (e *Engine) Assess(rawURL string, chain []models.RedirectHop, verdict *models.AIVerdict) models.RiskAssessment {
	result := models.RiskAssessment{
		URL:        rawURL,
		TrustLevel: models.TrustUnknown,
		Confidence: ConfidenceDefault,
		Reasons:    []string{},
	}

	parsed, err := url.Parse(strings.TrimSpace(rawURL))
	if err != nil || parsed.Hostname() == "" {
		reason := "URL parsing failed: no hostname"
		if err != nil {
			reason = fmt.Sprintf("URL parsing failed: %v", err)
		}
		result.TrustLevel = models.TrustError
		result.Confidence = ConfidenceParseError
		result.Reasons = []string{reason}
		result.Error = reason
		return result
	}

	domain := brand.Normalize(parsed.Hostname())
	result.Domain = domain

	// Layer 1: heuristic rules over the raw URL.
	heuristic := heuristics.Evaluate(rawURL)
	heuristicFlags := make([]string, 0, len(heuristic.Flags))
	for _, f := range heuristic.Flags {
		heuristicFlags = append(heuristicFlags, f.Description)
	}
	result.Layers.Heuristics = models.LayerScore{Score: heuristic.Score, Flags: heuristicFlags}

	// Layer 2: brand verification against the registry.
	brandMatch := e.MatchBrand(domain)
	result.Layers.BrandCheck = models.LayerScore{Score: brandMatch.Score, Flags: brandMatch.Flags}
	result.Brand = brandMatch.Brand

	// Layer 3: redirect chain shape.
	chainResult := redirects.Analyze(chain)
	result.Layers.Redirects = models.LayerScore{Score: chainResult.Score, Flags: chainResult.SuspiciousPatterns}

	// Layer 4: external AI verdict integration.
	aiScore, aiFlags := scoreVerdict(verdict)
	result.Layers.AIAnalysis = models.LayerScore{Score: aiScore, Flags: aiFlags}

	score := heuristic.Score + brandMatch.Score + chainResult.Score + aiScore
	result.Score = score

	for _, flags := range [][]string{heuristicFlags, brandMatch.Flags, chainResult.SuspiciousPatterns, aiFlags} {
		for _, flag := range flags {
			if flag != "" {
				result.Reasons = append(result.Reasons, flag)
			}
		}
	}

	verified := brandMatch.MatchType == models.MatchExact || brandMatch.MatchType == models.MatchSubdomain
	switch {
	case verified:
		result.Confidence = ConfidenceVerifiedBrand
	case verdict != nil && verdict.Confidence > 0:
		result.Confidence = verdict.Confidence
	case len(result.Reasons) >= multiFlagThreshold:
		result.Confidence = ConfidenceMultiFlag
	}

	switch {
	case verified && score <= 0:
		result.TrustLevel = models.TrustSafe
	case score >= ThresholdDangerous:
		result.TrustLevel = models.TrustDangerous
	case score >= ThresholdSuspicious:
		result.TrustLevel = models.TrustSuspicious
	case score <= ThresholdSafe:
		result.TrustLevel = models.TrustSafe
	default:
		result.TrustLevel = models.TrustUnknown
	}

	return result
}

// MatchBrand resolves a hostname against the registry in strict priority
// order: exact verified match, subdomain of a verified domain, known scam
// mimic, impersonation by similarity or character substitution. Only the
// first matching rule applies.
func (e *Engine) MatchBrand(domain string) models.BrandMatchResult {
	result := models.BrandMatchResult{Flags: []string{}, MatchType: models.MatchNone}

	if record, ok := e.index.LookupExact(domain); ok {
		result.Score = ScoreVerifiedExact
		result.Brand = record
		result.MatchType = models.MatchExact
		result.Flags = append(result.Flags,
			fmt.Sprintf("Verified %s financial institution: %s", record.Region, record.Name))
		return result
	}

	if record, ok := e.index.LookupSubdomainOf(domain); ok {
		result.Score = ScoreVerifiedSubdomain
		result.Brand = record
		result.MatchType = models.MatchSubdomain
		result.Flags = append(result.Flags,
			fmt.Sprintf("Subdomain of verified brand: %s", record.Name))
		return result
	}

	if mimic, ok := e.index.LookupScamMimic(domain); ok {
		result.Score = ScoreKnownScam
		result.MatchType = models.MatchKnownScam
		result.Flags = append(result.Flags,
			fmt.Sprintf("Known scam domain mimicking %s", mimic.TargetBrand))
		return result
	}

	if hit := e.detectImpersonation(domain); hit != nil {
		result.Score = ScoreImpersonation
		result.MatchType = models.MatchImpersonation
		result.Confidence = hit.confidence
		result.Flags = append(result.Flags,
			fmt.Sprintf("Possible brand impersonation: %s", hit.target))
		return result
	}

	return result
}

type impersonationHit struct {
	target     string
	confidence float64
}

// detectImpersonation scans verified domains in index insertion order and
// reports the first one the candidate mimics, either by sitting in the
// (0.7, 1.0) similarity band or by matching after look-alike character
// folding. Exact matches are excluded by construction: they resolve
// earlier in MatchBrand.
func (e *Engine) detectImpersonation(domain string) *impersonationHit {
	var hit *impersonationHit

	e.index.VerifiedDomains(func(verified string, record *models.BrandRecord) bool {
		sim := similarity.Score(domain, verified)
		if sim > impersonationFloor && sim < 1.0 {
			confidence := sim + 0.1
			if confidence > 0.9 {
				confidence = 0.9
			}
			hit = &impersonationHit{target: record.Name, confidence: confidence}
			return false
		}

		if similarity.HasCharacterSubstitution(domain, verified) {
			hit = &impersonationHit{target: record.Name, confidence: 0.8}
			return false
		}

		return true
	})

	return hit
}

// scoreVerdict maps an external AI verdict onto a score contribution.
// A nil verdict or an unrecognized risk label contributes zero — absence
// of the collaborator is never an error.
func scoreVerdict(verdict *models.AIVerdict) (int, []string) {
	if verdict == nil || verdict.Risk == "" {
		return 0, []string{}
	}

	score := 0
	flags := []string{}

	switch strings.ToLower(verdict.Risk) {
	case "dangerous":
		score = ScoreAIDangerous
		flags = append(flags, "AI flagged as dangerous: "+reasonOr(verdict, "High risk detected"))
	case "suspicious":
		score = ScoreAISuspicious
		flags = append(flags, "AI suggests caution: "+reasonOr(verdict, "Potential risk"))
	case "safe":
		score = ScoreAISafe
		flags = append(flags, "AI assessment: Safe")
	default:
		flags = append(flags, "AI analysis: Inconclusive")
	}

	if verdict.ImpersonatedBrand != "" {
		score += ScoreAIBrandSpoof
		flags = append(flags, "AI detected brand impersonation: "+verdict.ImpersonatedBrand)
	}

	return score, flags
}

func reasonOr(verdict *models.AIVerdict, fallback string) string {
	if verdict.Reason != "" {
		return verdict.Reason
	}
	return fallback
}
