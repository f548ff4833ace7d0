package brand

import (
	"log"
	"sort"
	"strings"

	"linkvetter/internal/models"
)

// Definition is one brand entry as it appears in the raw dataset. Only
// Domains, ScamMimics, CountryCode and the region key feed the scorer;
// the rest is display metadata carried through untouched.
type Definition struct {
	Domains     []string `json:"domains"`
	ScamMimics  []string `json:"commonScamMimics,omitempty"`
	CountryCode string   `json:"countryCode,omitempty"`
	LogoURL     string   `json:"logoUrl,omitempty"`
	Services    []string `json:"services,omitempty"`
	Established int      `json:"established,omitempty"`
}

// Dataset is the nested region → brand name → definition input shape.
// The top-level key "metadata" is reserved and skipped during indexing.
type Dataset map[string]map[string]Definition

// MetadataKey is the reserved dataset section that carries no brands.
const MetadataKey = "metadata"

type verifiedEntry struct {
	domain string
	brand  *models.BrandRecord
}

// Index is the immutable lookup structure built once from a Dataset.
// It is never mutated after construction and is safe to share across
// concurrent scoring calls.
type Index struct {
	exact    map[string]*models.BrandRecord
	mimics   map[string]models.ScamMimicRecord
	byRegion map[string][]*models.BrandRecord
	regions  []string

	// Verified domains in insertion order: regions sorted, brand names
	// sorted within each region, domains in declaration order. Subdomain
	// and impersonation scans walk this slice, so "first match wins" is
	// stable across runs.
	ordered []verifiedEntry
}

// Normalize lowercases a domain and strips a leading "www." prefix.
func Normalize(domain string) string {
	return strings.TrimPrefix(strings.ToLower(strings.TrimSpace(domain)), "www.")
}

// BuildIndex constructs the lookup maps and the per-region listing from a
// raw dataset. Duplicate verified-domain registrations are a data-quality
// bug: they are logged and resolved last-write-wins.
func BuildIndex(dataset Dataset) *Index {
	idx := &Index{
		exact:    make(map[string]*models.BrandRecord),
		mimics:   make(map[string]models.ScamMimicRecord),
		byRegion: make(map[string][]*models.BrandRecord),
	}

	regions := make([]string, 0, len(dataset))
	for region := range dataset {
		if region == MetadataKey {
			continue
		}
		regions = append(regions, region)
	}
	sort.Strings(regions)
	idx.regions = regions

	for _, region := range regions {
		brands := dataset[region]

		names := make([]string, 0, len(brands))
		for name := range brands {
			names = append(names, name)
		}
		sort.Strings(names)

		for _, name := range names {
			def := brands[name]
			record := &models.BrandRecord{
				Name:        name,
				Region:      region,
				Domains:     def.Domains,
				ScamMimics:  def.ScamMimics,
				CountryCode: def.CountryCode,
				LogoURL:     def.LogoURL,
				Services:    def.Services,
				Established: def.Established,
			}

			idx.byRegion[region] = append(idx.byRegion[region], record)

			for _, domain := range def.Domains {
				clean := Normalize(domain)
				if clean == "" {
					continue
				}
				if prev, dup := idx.exact[clean]; dup {
					log.Printf("[WARN] duplicate verified domain %q: %s overrides %s", clean, name, prev.Name)
				}
				idx.exact[clean] = record
				idx.ordered = append(idx.ordered, verifiedEntry{domain: clean, brand: record})
			}

			for _, scam := range def.ScamMimics {
				clean := Normalize(scam)
				if clean == "" {
					continue
				}
				idx.mimics[clean] = models.ScamMimicRecord{
					TargetBrand:       name,
					Region:            region,
					LegitimateDomains: def.Domains,
				}
			}
		}
	}

	return idx
}

// LookupExact returns the brand whose verified-domain list contains domain.
func (idx *Index) LookupExact(domain string) (*models.BrandRecord, bool) {
	record, ok := idx.exact[Normalize(domain)]
	return record, ok
}

// LookupSubdomainOf returns the first brand (in index insertion order) that
// domain is a strict subdomain of, e.g. secure.maybank2u.com.my against
// maybank2u.com.my.
func (idx *Index) LookupSubdomainOf(domain string) (*models.BrandRecord, bool) {
	clean := Normalize(domain)
	for _, entry := range idx.ordered {
		if strings.HasSuffix(clean, "."+entry.domain) {
			return entry.brand, true
		}
	}
	return nil, false
}

// LookupScamMimic returns the scam-mimic record for domain, if listed.
func (idx *Index) LookupScamMimic(domain string) (models.ScamMimicRecord, bool) {
	record, ok := idx.mimics[Normalize(domain)]
	return record, ok
}

// VerifiedDomains calls fn for every verified domain in insertion order,
// stopping early if fn returns false. Impersonation scans use this so the
// first similar domain found is stable across runs.
func (idx *Index) VerifiedDomains(fn func(domain string, brand *models.BrandRecord) bool) {
	for _, entry := range idx.ordered {
		if !fn(entry.domain, entry.brand) {
			return
		}
	}
}

// BrandsByRegion returns the brands registered under region.
func (idx *Index) BrandsByRegion(region string) []*models.BrandRecord {
	return idx.byRegion[region]
}

// Regions returns all region keys in sorted order.
func (idx *Index) Regions() []string {
	return idx.regions
}

// Stats summarizes the index for the /info endpoint.
type Stats struct {
	VerifiedDomains int            `json:"verified_domains"`
	ScamMimics      int            `json:"scam_mimics"`
	Regions         int            `json:"regions"`
	BrandsPerRegion map[string]int `json:"brands_per_region"`
}

func (idx *Index) Statistics() Stats {
	perRegion := make(map[string]int, len(idx.byRegion))
	for region, brands := range idx.byRegion {
		perRegion[region] = len(brands)
	}
	return Stats{
		VerifiedDomains: len(idx.exact),
		ScamMimics:      len(idx.mimics),
		Regions:         len(idx.regions),
		BrandsPerRegion: perRegion,
	}
}
