package models

type TrustLevel string
type MatchType string
type ChainRisk string

const (
	TrustSafe       TrustLevel = "Safe"
	TrustSuspicious TrustLevel = "Suspicious"
	TrustDangerous  TrustLevel = "Dangerous"
	TrustUnknown    TrustLevel = "Unknown"
	TrustError      TrustLevel = "Error"

	MatchExact         MatchType = "exact"
	MatchSubdomain     MatchType = "subdomain"
	MatchKnownScam     MatchType = "known_scam"
	MatchImpersonation MatchType = "impersonation"
	MatchNone          MatchType = "none"

	ChainSafe       ChainRisk = "safe"
	ChainSuspicious ChainRisk = "suspicious"
	ChainDangerous  ChainRisk = "dangerous"
)

// Flag is a single triggered heuristic with its contribution to the score.
type Flag struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Weight      int    `json:"weight"`
}

// AnalysisResult is the output of the heuristic rule layer.
type AnalysisResult struct {
	Score int    `json:"score"`
	Flags []Flag `json:"flags"`
}

// BrandRecord is one verified financial institution or payment service.
// Logo, services and established year are display metadata only — the
// scorer never reads them.
type BrandRecord struct {
	Name        string   `json:"name"`
	Region      string   `json:"region"`
	Domains     []string `json:"domains"`
	ScamMimics  []string `json:"common_scam_mimics,omitempty"`
	CountryCode string   `json:"country_code,omitempty"`
	LogoURL     string   `json:"logo_url,omitempty"`
	Services    []string `json:"services,omitempty"`
	Established int      `json:"established,omitempty"`
}

// ScamMimicRecord maps a known fraudulent domain back to the brand it mimics.
type ScamMimicRecord struct {
	TargetBrand       string   `json:"target_brand"`
	Region            string   `json:"region"`
	LegitimateDomains []string `json:"legitimate_domains"`
}

// BrandMatchResult is the output of the brand verification layer.
// Score is negative for verified matches and positive for scam matches.
// Confidence is populated for impersonation matches only.
type BrandMatchResult struct {
	Score      int          `json:"score"`
	Brand      *BrandRecord `json:"brand,omitempty"`
	Flags      []string     `json:"flags"`
	MatchType  MatchType    `json:"match_type"`
	Confidence float64      `json:"confidence,omitempty"`
}

// RedirectHop is one resolved step in a redirect chain, produced by an
// external HTTP-following collaborator. The analyzer never fetches.
type RedirectHop struct {
	URL    string `json:"url"`
	Status int    `json:"status,omitempty"`
}

// RedirectAnalysisResult is the output of the redirect chain layer.
type RedirectAnalysisResult struct {
	Score              int       `json:"score"`
	SuspiciousPatterns []string  `json:"suspicious_patterns"`
	ShortenerHits      []string  `json:"shortener_hits"`
	DomainChangeCount  int       `json:"domain_change_count"`
	ProtocolDowngrade  bool      `json:"protocol_downgrade"`
	RiskLevel          ChainRisk `json:"risk_level"`
}

// AIVerdict is a precomputed classification from an external LLM
// collaborator. Any Risk value outside Safe/Suspicious/Dangerous is
// treated as inconclusive.
type AIVerdict struct {
	Risk              string  `json:"risk"`
	Reason            string  `json:"reason,omitempty"`
	ImpersonatedBrand string  `json:"impersonated_brand,omitempty"`
	Confidence        float64 `json:"confidence,omitempty"`
}

// LayerScore retains one layer's own score and flags in the final breakdown.
type LayerScore struct {
	Score int      `json:"score"`
	Flags []string `json:"flags"`
}

// LayerBreakdown keeps each evaluation layer's contribution visible in the
// final assessment so a UI can render itemized evidence.
type LayerBreakdown struct {
	Heuristics LayerScore `json:"heuristics"`
	BrandCheck LayerScore `json:"brand_check"`
	Redirects  LayerScore `json:"redirects"`
	AIAnalysis LayerScore `json:"ai_analysis"`
}

// RiskAssessment is the final verdict for one scanned URL.
type RiskAssessment struct {
	URL        string         `json:"url"`
	Domain     string         `json:"domain,omitempty"`
	TrustLevel TrustLevel     `json:"trust_level"`
	Score      int            `json:"score"`
	Confidence float64        `json:"confidence"`
	Brand      *BrandRecord   `json:"brand,omitempty"`
	Reasons    []string       `json:"reasons"`
	Layers     LayerBreakdown `json:"layers"`
	Duration   string         `json:"duration,omitempty"`
	Error      string         `json:"error,omitempty"`
}
