package brand

// DefaultDataset is the built-in registry of verified financial
// institutions and payment services for Malaysian and ASEAN users, plus the
// international brands most commonly impersonated in the region. Loaded
// once at startup; never mutated by scoring.
func DefaultDataset() Dataset {
	return Dataset{
		"malaysia": {
			"Maybank": {
				Domains:     []string{"maybank2u.com.my", "maybank.com.my", "maybank.com"},
				ScamMimics:  []string{"maybank2u-secure.com", "maybank2u.co", "mayb4nk.com"},
				CountryCode: "MY",
				Services:    []string{"banking", "maybank2u"},
				Established: 1960,
			},
			"CIMB": {
				Domains:     []string{"cimbclicks.com.my", "cimb.com.my", "cimb.com"},
				ScamMimics:  []string{"cimbclicks-my.com", "c1mbclicks.com"},
				CountryCode: "MY",
				Services:    []string{"banking", "cimb clicks"},
			},
			"Public Bank": {
				Domains:     []string{"pbebank.com", "publicbank.com.my"},
				ScamMimics:  []string{"pbebank-my.com"},
				CountryCode: "MY",
				Services:    []string{"banking"},
			},
			"RHB": {
				Domains:     []string{"rhbbank.com.my", "rhbnow.com.my", "rhbgroup.com"},
				CountryCode: "MY",
				Services:    []string{"banking"},
			},
			"Hong Leong Bank": {
				Domains:     []string{"hlb.com.my", "hongleongconnect.my"},
				CountryCode: "MY",
				Services:    []string{"banking"},
			},
			"AmBank": {
				Domains:     []string{"ambank.com.my", "ambankgroup.com"},
				CountryCode: "MY",
				Services:    []string{"banking"},
			},
			"Bank Islam": {
				Domains:     []string{"bankislam.com", "bankislam.biz"},
				CountryCode: "MY",
				Services:    []string{"banking"},
			},
			"Touch 'n Go": {
				Domains:     []string{"touchngo.com.my", "tngdigital.com.my"},
				ScamMimics:  []string{"tng-ewallet-my.com"},
				CountryCode: "MY",
				Services:    []string{"ewallet"},
			},
			"Grab": {
				Domains:     []string{"grab.com", "grabpay.com"},
				CountryCode: "MY",
				Services:    []string{"ewallet", "ride-hailing"},
			},
			"Boost": {
				Domains:     []string{"myboost.com.my", "boostbank.com"},
				CountryCode: "MY",
				Services:    []string{"ewallet"},
			},
			"BigPay": {
				Domains:     []string{"bigpay.my"},
				CountryCode: "MY",
				Services:    []string{"ewallet"},
			},
			"Shopee": {
				Domains:     []string{"shopee.com.my", "shopeepay.com.my"},
				CountryCode: "MY",
				Services:    []string{"marketplace", "ewallet"},
			},
		},
		"singapore": {
			"DBS": {
				Domains:     []string{"dbs.com.sg", "dbs.com"},
				ScamMimics:  []string{"dbs-secure-sg.com"},
				CountryCode: "SG",
				Services:    []string{"banking"},
			},
			"OCBC": {
				Domains:     []string{"ocbc.com"},
				CountryCode: "SG",
				Services:    []string{"banking"},
			},
			"UOB": {
				Domains:     []string{"uob.com.sg", "uobgroup.com", "uob.com.my"},
				CountryCode: "SG",
				Services:    []string{"banking"},
			},
		},
		"indonesia": {
			"BCA": {
				Domains:     []string{"bca.co.id", "klikbca.com"},
				ScamMimics:  []string{"klik-bca.com"},
				CountryCode: "ID",
				Services:    []string{"banking"},
			},
			"Bank Mandiri": {
				Domains:     []string{"bankmandiri.co.id"},
				CountryCode: "ID",
				Services:    []string{"banking"},
			},
			"DANA": {
				Domains:     []string{"dana.id"},
				CountryCode: "ID",
				Services:    []string{"ewallet"},
			},
		},
		"thailand": {
			"Kasikornbank": {
				Domains:     []string{"kasikornbank.com"},
				CountryCode: "TH",
				Services:    []string{"banking"},
			},
			"Siam Commercial Bank": {
				Domains:     []string{"scb.co.th"},
				CountryCode: "TH",
				Services:    []string{"banking"},
			},
		},
		"philippines": {
			"BDO": {
				Domains:     []string{"bdo.com.ph"},
				CountryCode: "PH",
				Services:    []string{"banking"},
			},
			"BPI": {
				Domains:     []string{"bpi.com.ph"},
				CountryCode: "PH",
				Services:    []string{"banking"},
			},
			"GCash": {
				Domains:     []string{"gcash.com"},
				ScamMimics:  []string{"gcash-ph-verify.com"},
				CountryCode: "PH",
				Services:    []string{"ewallet"},
			},
		},
		"international": {
			"PayPal": {
				Domains:     []string{"paypal.com", "paypal.me"},
				ScamMimics:  []string{"paypa1.com", "paypal-secure-login.com"},
				CountryCode: "US",
				Services:    []string{"payments"},
			},
			"Stripe": {
				Domains:     []string{"stripe.com"},
				CountryCode: "US",
				Services:    []string{"payments"},
			},
			"Wise": {
				Domains:     []string{"wise.com"},
				CountryCode: "GB",
				Services:    []string{"remittance"},
			},
		},
		MetadataKey: {
			// Reserved section: indexing skips it entirely.
			"dataset": {Services: []string{"version 2.1", "updated 2025-06"}},
		},
	}
}
