package assemble

import "github.com/riddhiksingh8/coe-ens-orbis-engine/pkg/findings"

// Record is the flat risk-assessment input for one report generation. It is
// supplied by the upstream screening workflow and treated as immutable for
// the duration of the run. Absent string fields render as empty text, never
// as omitted slots.
type Record struct {
	EnsID     string `json:"ens_id"`
	SessionID string `json:"session_id"`

	// Identity / profile fields.
	Name              string `json:"name"`
	Location          string `json:"location"`
	Address           string `json:"address"`
	Website           string `json:"website"`
	ActiveStatus      string `json:"active_status"`
	OperationType     string `json:"operation_type"`
	LegalStatus       string `json:"legal_status"`
	NationalID        string `json:"national_id"`
	Alias             string `json:"alias"`
	IncorporationDate string `json:"incorporation_date"`
	Subsidiaries      string `json:"subsidiaries"`
	CorporateGroup    string `json:"corporate_group"`
	Shareholders      string `json:"shareholders"`
	KeyExecutives     string `json:"key_exec"`
	Revenue           string `json:"revenue"`
	EmployeeCount     string `json:"employee_count"`

	// Overall assessment.
	RiskLevel         string `json:"risk_level"`
	SummaryOfFindings string `json:"summary_of_findings"`

	// Eight fixed risk-area ratings.
	SanctionsRating       string `json:"sanctions_rating"`
	AntiRating            string `json:"anti_rating"`
	GovRating             string `json:"gov_rating"`
	FinancialRating       string `json:"financial_rating"`
	AdverseMediaRating    string `json:"adv_rating"`
	CyberRating           string `json:"cyber_rating"`
	ESGRating             string `json:"esg_rating"`
	RegulatoryLegalRating string `json:"regulatory_and_legal_rating"`

	// Eight narrative risk-area summaries, one bullet per element.
	SanctionsSummary       []string `json:"sanctions_summary"`
	AntiSummary            []string `json:"anti_summary"`
	GovSummary             []string `json:"gov_summary"`
	FinancialSummary       []string `json:"financial_summary"`
	AdverseMediaSummary    []string `json:"adv_summary"`
	CyberSummary           []string `json:"cyber_summary"`
	ESGSummary             []string `json:"esg_summary"`
	RegulatoryLegalSummary []string `json:"ral_summary"`

	// Per-category findings flags and data sets. A false flag selects the
	// no-hits fallback regardless of the data set contents.
	SanctionsFindings      bool              `json:"sanctions_findings"`
	SanctionsData          []findings.KpiRow `json:"sape_data"`
	PEPFindings            bool              `json:"pep_findings"`
	PEPData                []findings.KpiRow `json:"pep_data"`
	BriberyFindings        bool              `json:"bribery_findings"`
	BriberyData            []findings.KpiRow `json:"bribery_data"`
	CorruptionFindings     bool              `json:"corruption_findings"`
	CorruptionData         []findings.KpiRow `json:"corruption_data"`
	StateOwnershipFindings bool              `json:"sown_findings"`
	StateOwnershipData     []findings.KpiRow `json:"sown_data"`
	FinancialFindings      bool              `json:"financial_findings"`
	FinancialData          []findings.KpiRow `json:"financial_data"`
	BankruptcyFindings     bool              `json:"bankruptcy_findings"`
	BankruptcyData         []findings.KpiRow `json:"bankruptcy_data"`
	AdverseMediaFindings   bool              `json:"adv_findings"`
	AdverseMediaData       []findings.KpiRow `json:"adv_data"`
	RegulatoryFindings     bool              `json:"reg_findings"`
	RegulatoryData         []findings.KpiRow `json:"reg_data"`
	LegalFindings          bool              `json:"legal_findings"`
	LegalData              []findings.KpiRow `json:"leg_data"`
	CyberFindings          bool              `json:"cyb_findings"`
	CyberData              []findings.KpiRow `json:"cyb_data"`
	ESGFindings            bool              `json:"esg_findings"`
	ESGData                []findings.KpiRow `json:"esg_data"`
}
