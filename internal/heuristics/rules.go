package heuristics

import (
	"fmt"
	"net/url"
	"regexp"
	"strings"

	"linkvetter/internal/models"
)

// Rule is a single weighted test over a raw URL string. The full rule list
// is the unit of versioning for heuristic behavior: rules are defined at
// package init and never change at runtime.
type Rule struct {
	Name        string
	Description string
	Weight      int
	test        func(raw string) bool
}

func regexRule(name, description string, weight int, pattern string) Rule {
	re := regexp.MustCompile(pattern)
	return Rule{
		Name:        name,
		Description: description,
		Weight:      weight,
		test:        func(raw string) bool { return re.MatchString(raw) },
	}
}

func keywordRule(keyword string, weight int, kind string) Rule {
	return Rule{
		Name:        fmt.Sprintf("%s keyword: %s", kind, keyword),
		Description: fmt.Sprintf("Contains %s keyword %q", strings.ToLower(kind), keyword),
		Weight:      weight,
		test:        func(raw string) bool { return strings.Contains(raw, keyword) },
	}
}

func hostRule(name, description string, weight int, test func(host string) bool) Rule {
	return Rule{
		Name:        name,
		Description: description,
		Weight:      weight,
		test: func(raw string) bool {
			host := extractHost(raw)
			return host != "" && test(host)
		},
	}
}

var rules = buildRules()

func buildRules() []Rule {
	list := []Rule{
		regexRule("Suspicious TLD",
			"Uses a high-risk top-level domain",
			3, `(?i)\.(tk|ml|ga|cf|pw|top|click|download|bid|win)([/:?#]|$)`),

		// Variants that require at least one substituted character, so the
		// legitimate spellings never trip this rule.
		regexRule("Bank Typosquatting",
			"Mimics a bank or wallet name with character substitution",
			4, `(?i)(mayb[4@]nk|m[4@]ybank|c[1!]mb|publ[1!]c|rhb[4@]nk|h[0]ngle[0]ng|[4@]mb[4@]nk|u[0]b\.|payp[4@]l|g[0]cash|t[0]uchng[0])`),

		regexRule("Malaysian Agency Pattern",
			"References a Malaysian government agency often impersonated in scams",
			3, `(?i)(banknegara|lhdn|kwsp|pdrm|jpj|mygov)`),

		regexRule("IP Address Host",
			"Uses a literal IP address instead of a domain name",
			4, `https?://\d{1,3}\.\d{1,3}\.\d{1,3}\.\d{1,3}`),

		regexRule("URL Shortener",
			"Routes through a URL shortening service",
			2, `(?i)(bit\.ly|tinyurl|t\.co/|goo\.gl|ow\.ly|is\.gd|buff\.ly|cutt\.ly|rebrand\.ly|tiny\.cc|short\.link)`),

		regexRule("Suspicious Subdomain",
			"Uses a credential-bait subdomain prefix",
			2, `(?i)(secure-|login-|verify-|update-|payment-|bank-|account-)`),

		regexRule("Homograph Characters",
			"Contains non-Latin characters that imitate Latin letters",
			4, `[\x{0400}-\x{04FF}\x{0370}-\x{03FF}]`),

		hostRule("Excessive Hyphens",
			"Domain contains an unusual number of hyphens",
			2, func(host string) bool { return strings.Count(host, "-") > 3 }),

		hostRule("Excessive Subdomain Depth",
			"Domain nests more subdomain levels than legitimate sites use",
			2, func(host string) bool { return strings.Count(host, ".") >= 4 }),

		hostRule("Non-Standard Port",
			"Serves from a port other than 80 or 443",
			2, func(host string) bool {
				_, port, ok := strings.Cut(host, ":")
				return ok && port != "80" && port != "443"
			}),

		Rule{
			Name:        "Extremely Long URL",
			Description: "URL length exceeds what payment pages normally use",
			Weight:      1,
			test:        func(raw string) bool { return len(raw) > 100 },
		},
	}

	for _, keyword := range dedupedKeywords(urgencyKeywords) {
		list = append(list, keywordRule(keyword, 2, "Urgency"))
	}
	for _, keyword := range dedupedKeywords(paymentKeywords) {
		list = append(list, keywordRule(keyword, 1, "Payment"))
	}

	return list
}

// Evaluate scores a raw URL against every rule. Matching is additive and
// order-independent: each triggered rule appends one flag and adds its
// weight. A URL that trips nothing returns a zero result; malformed input
// degrades to zero rather than failing.
func Evaluate(rawURL string) models.AnalysisResult {
	return evaluateRules(rawURL, rules)
}

func evaluateRules(rawURL string, list []Rule) models.AnalysisResult {
	result := models.AnalysisResult{Flags: []models.Flag{}}
	if strings.TrimSpace(rawURL) == "" {
		return result
	}

	lowered := strings.ToLower(rawURL)
	for _, rule := range list {
		if rule.test(lowered) {
			result.Score += rule.Weight
			result.Flags = append(result.Flags, models.Flag{
				Name:        rule.Name,
				Description: rule.Description,
				Weight:      rule.Weight,
			})
		}
	}

	return result
}

// RuleCount reports how many rules the current version of the list carries.
func RuleCount() int {
	return len(rules)
}

// extractHost pulls the authority portion out of a raw URL, tolerating
// strings the stdlib parser rejects. Returns "" when no host is present.
func extractHost(raw string) string {
	if u, err := url.Parse(raw); err == nil && u.Host != "" {
		return strings.ToLower(u.Host)
	}

	rest, ok := strings.CutPrefix(raw, "http://")
	if !ok {
		rest, ok = strings.CutPrefix(raw, "https://")
	}
	if !ok {
		return ""
	}
	if i := strings.IndexAny(rest, "/?#"); i >= 0 {
		rest = rest[:i]
	}
	return strings.ToLower(rest)
}
