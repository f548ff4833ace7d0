package redirects

import (
	"fmt"
	"net/url"
	"strings"

	"linkvetter/internal/models"
)

// Shortener domains commonly used to mask scam destinations.
var shortenerDomains = []string{
	"bit.ly", "tinyurl.com", "t.co", "goo.gl", "ow.ly", "is.gd",
	"short.link", "rebrand.ly", "buff.ly", "cutt.ly", "tiny.cc",
}

// TLDs that show up disproportionately in scam chains.
var highRiskTLDs = map[string]struct{}{
	"tk": {}, "ml": {}, "ga": {}, "cf": {}, "pw": {}, "top": {},
}

// Multi-label public suffixes common across ASEAN registries, so that
// registrable-domain comparison treats foo.com.my and bar.com.my as
// different domains rather than siblings under "com.my".
var multiLabelSuffixes = map[string]struct{}{
	"com.my": {}, "net.my": {}, "org.my": {}, "gov.my": {}, "edu.my": {},
	"com.sg": {}, "gov.sg": {}, "edu.sg": {},
	"co.id": {}, "go.id": {}, "or.id": {},
	"co.th": {}, "go.th": {}, "in.th": {},
	"com.ph": {}, "gov.ph": {},
	"co.uk": {}, "com.au": {}, "com.br": {},
}

const (
	weightMultipleRedirects = 2
	weightShortener         = 2
	weightDomainChurn       = 2
	weightProtocolDowngrade = 3
	weightLongChain         = 1
)

// Analyze assesses risk contributed by the shape of an already-resolved
// redirect chain. It never fetches anything: the hops come from an external
// HTTP-following collaborator. An empty chain is valid and safe; a
// malformed hop URL is flagged and skipped, never fatal.
func Analyze(chain []models.RedirectHop) models.RedirectAnalysisResult {
	result := models.RedirectAnalysisResult{
		SuspiciousPatterns: []string{},
		ShortenerHits:      []string{},
		RiskLevel:          models.ChainSafe,
	}

	if len(chain) == 0 {
		return result
	}

	var sawHTTPS, sawHTTP bool
	previousRegistrable := ""

	for _, hop := range chain {
		parsed, err := url.Parse(hop.URL)
		if err != nil || parsed.Hostname() == "" {
			result.SuspiciousPatterns = append(result.SuspiciousPatterns,
				fmt.Sprintf("Invalid URL in chain: %s", hop.URL))
			continue
		}

		host := strings.ToLower(parsed.Hostname())

		for _, shortener := range shortenerDomains {
			if host == shortener || strings.HasSuffix(host, "."+shortener) {
				result.ShortenerHits = append(result.ShortenerHits, host)
				break
			}
		}

		registrable := RegistrableDomain(host)
		if previousRegistrable != "" && registrable != previousRegistrable {
			result.DomainChangeCount++
		}
		previousRegistrable = registrable

		switch parsed.Scheme {
		case "https":
			sawHTTPS = true
		case "http":
			sawHTTP = true
		}

		if tld := host[strings.LastIndex(host, ".")+1:]; tld != host {
			if _, risky := highRiskTLDs[tld]; risky {
				result.SuspiciousPatterns = append(result.SuspiciousPatterns,
					fmt.Sprintf("High-risk TLD in chain: %s", host))
			}
		}
	}

	score := 0

	if len(chain) > 2 {
		score += weightMultipleRedirects
		result.SuspiciousPatterns = append(result.SuspiciousPatterns,
			fmt.Sprintf("Multiple redirects detected (%d hops)", len(chain)))
	}

	if len(result.ShortenerHits) > 0 {
		score += weightShortener
		result.SuspiciousPatterns = append(result.SuspiciousPatterns,
			fmt.Sprintf("URL shortener in chain: %s", strings.Join(result.ShortenerHits, ", ")))
	}

	if result.DomainChangeCount > 2 {
		score += weightDomainChurn
	}

	if sawHTTPS && sawHTTP {
		result.ProtocolDowngrade = true
		score += weightProtocolDowngrade
		result.SuspiciousPatterns = append(result.SuspiciousPatterns,
			"Protocol downgrade detected (HTTPS to HTTP)")
	}

	if len(chain) > 5 {
		score += weightLongChain
	}

	for _, pattern := range result.SuspiciousPatterns {
		if strings.HasPrefix(pattern, "Invalid URL") || strings.HasPrefix(pattern, "High-risk TLD") {
			score++
		}
	}

	result.Score = score

	switch {
	case score >= 5:
		result.RiskLevel = models.ChainDangerous
	case score >= 3:
		result.RiskLevel = models.ChainSuspicious
	}

	return result
}

// RegistrableDomain reduces a hostname to its registrable portion:
// the label directly under the public suffix. Hostnames that are bare
// suffixes or IP literals come back unchanged.
func RegistrableDomain(host string) string {
	labels := strings.Split(host, ".")
	if len(labels) < 3 {
		return host
	}

	lastTwo := strings.Join(labels[len(labels)-2:], ".")
	if _, ok := multiLabelSuffixes[lastTwo]; ok {
		return strings.Join(labels[len(labels)-3:], ".")
	}
	return lastTwo
}
