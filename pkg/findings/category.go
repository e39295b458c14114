package findings

// RenderStyle selects how a category's findings are laid out.
type RenderStyle int

const (
	// Flat renders each finding row as its own label/value table.
	Flat RenderStyle = iota
	// Nested embeds an indicator sub-table inside an outer header/body
	// table. Only cyber security and ESG use this form.
	Nested
)

// CategoryKey identifies one findings category.
type CategoryKey string

const (
	Sanctions           CategoryKey = "sanctions"
	PEP                 CategoryKey = "pep"
	AntiBribery         CategoryKey = "antiBribery"
	AntiCorruption      CategoryKey = "antiCorruption"
	GovernmentOwnership CategoryKey = "governmentOwnership"
	Financial           CategoryKey = "financial"
	Bankruptcy          CategoryKey = "bankruptcy"
	AdverseMedia        CategoryKey = "adverseMedia"
	Regulatory          CategoryKey = "regulatory"
	Legal               CategoryKey = "legal"
	CyberSecurity       CategoryKey = "cyberSecurity"
	ESG                 CategoryKey = "esg"
)

// Category is the static descriptor for one findings category: its template
// slot, its no-hits label, and its render style. The table is the single
// source of truth for the per-category findings slots the template declares.
type Category struct {
	Key        CategoryKey
	Slot       string
	Label      string
	Style      RenderStyle
	InnerTitle string // heading of the indicator sub-table (Nested only)
}

// Categories lists every findings category in template order.
var Categories = []Category{
	{Key: Sanctions, Slot: "sanctions_findings", Label: "SANCTIONS", Style: Flat},
	{Key: PEP, Slot: "pep_findings", Label: "PEP", Style: Flat},
	{Key: AntiBribery, Slot: "antiBribery_findings", Label: "ANTI BRIBERY", Style: Flat},
	{Key: AntiCorruption, Slot: "antiCorruption_findings", Label: "ANTI CORRUPTION", Style: Flat},
	{Key: GovernmentOwnership, Slot: "government_ownership_and_political_affiliations_findings", Label: "GOVERNMENT OWNERSHIP AND POLITICAL AFFILIATIONS", Style: Flat},
	{Key: Financial, Slot: "financial_indicators_findings", Label: "FINANCIALS", Style: Flat},
	{Key: Bankruptcy, Slot: "bankruptcy_findings", Label: "BANKRUPTCY", Style: Flat},
	{Key: AdverseMedia, Slot: "other_adverse_media_findings", Label: "OTHER ADVERSE MEDIA", Style: Flat},
	{Key: Regulatory, Slot: "regularity_findings", Label: "REGULATORY", Style: Flat},
	{Key: Legal, Slot: "legal_findings", Label: "LEGAL", Style: Flat},
	{Key: CyberSecurity, Slot: "cyberSecurity_findings", Label: "CYBER SECURITY", Style: Nested, InnerTitle: "Cyber Security Indicators"},
	{Key: ESG, Slot: "esg_findings", Label: "ESG", Style: Nested, InnerTitle: "ESG Indicators"},
}
