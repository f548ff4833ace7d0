package heuristics

import "sort"

// Scam keyword tables per language. Bahasa Malaysia and Indonesian share
// several words; the builders below dedupe before turning them into rules.
var urgencyKeywords = map[string][]string{
	"en": {"urgent", "verify", "suspend", "expire", "claim", "winner", "prize", "blocked", "immediately"},
	"bm": {"segera", "sahkan", "tuntutan", "hadiah", "disekat", "tamat"},
	"id": {"segera", "verifikasi", "hadiah", "diblokir", "menang"},
}

var paymentKeywords = map[string][]string{
	"en": {"payment", "transfer", "wallet", "topup", "reload"},
	"bm": {"bayaran", "pindahan", "dompet"},
	"id": {"pembayaran", "transfer", "dompet"},
}

func dedupedKeywords(table map[string][]string) []string {
	seen := make(map[string]struct{})
	for _, words := range table {
		for _, w := range words {
			seen[w] = struct{}{}
		}
	}

	out := make([]string, 0, len(seen))
	for w := range seen {
		out = append(out, w)
	}
	sort.Strings(out)
	return out
}
