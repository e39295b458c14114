package assemble

// Area is the static descriptor for one of the eight fixed risk areas. The
// positional order of Areas is a template compatibility contract: the
// letter-keyed highlight slots a_rating…h_rating bind to it, so any
// reordering breaks existing templates.
type Area struct {
	// Key is the suffix of the riskAreas_<key> summary slot.
	Key     string
	Label   string
	Rating  func(*Record) string
	Summary func(*Record) []string
}

// Areas lists the eight risk areas in the fixed template order.
var Areas = [8]Area{
	{
		Key:     "sanctions",
		Label:   "Sanctions",
		Rating:  func(r *Record) string { return r.SanctionsRating },
		Summary: func(r *Record) []string { return r.SanctionsSummary },
	},
	{
		Key:     "antiBriberyAndAntiCorruption",
		Label:   "Anti-Bribery and Anti-Corruption",
		Rating:  func(r *Record) string { return r.AntiRating },
		Summary: func(r *Record) []string { return r.AntiSummary },
	},
	{
		Key:     "governmentOwnershipAndPoliticalAffiliations",
		Label:   "Government Ownership and Political Affiliations",
		Rating:  func(r *Record) string { return r.GovRating },
		Summary: func(r *Record) []string { return r.GovSummary },
	},
	{
		Key:     "financialIndicators",
		Label:   "Financial Indicators",
		Rating:  func(r *Record) string { return r.FinancialRating },
		Summary: func(r *Record) []string { return r.FinancialSummary },
	},
	{
		Key:     "otherAdverseMedia",
		Label:   "Other Adverse Media",
		Rating:  func(r *Record) string { return r.AdverseMediaRating },
		Summary: func(r *Record) []string { return r.AdverseMediaSummary },
	},
	{
		Key:     "cyberSecurity",
		Label:   "Cyber Security",
		Rating:  func(r *Record) string { return r.CyberRating },
		Summary: func(r *Record) []string { return r.CyberSummary },
	},
	{
		Key:     "esg",
		Label:   "ESG",
		Rating:  func(r *Record) string { return r.ESGRating },
		Summary: func(r *Record) []string { return r.ESGSummary },
	},
	{
		Key:     "regulatoryAndLegal",
		Label:   "Regulatory & Legal",
		Rating:  func(r *Record) string { return r.RegulatoryLegalRating },
		Summary: func(r *Record) []string { return r.RegulatoryLegalSummary },
	},
}

// LetterSlot returns the highlight slot name for area index i: "a_rating"
// for 0 through "h_rating" for 7.
func LetterSlot(i int) string {
	return string(rune('a'+i)) + "_rating"
}
