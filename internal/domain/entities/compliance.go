package entities

// ComplianceInput is the six-point checklist evaluated before site work may
// start. Stateless: nothing here is persisted.

type ComplianceInput struct {
	MedicalOk   bool `json:"medical_ok"`
	DopingOk    bool `json:"doping_ok"`
	DC3Ok       bool `json:"dc3_ok"`
	EppOk       bool `json:"epp_ok"`
	InductionOk bool `json:"induction_ok"`
	ISODocsOk   bool `json:"iso_docs_ok"`
}

// ComplianceAction pairs a missing requirement with its remediation.

type ComplianceAction struct {
	Item   string `json:"item"`
	Action string `json:"action"`
}

// ComplianceResult is the start/no-start verdict. StartAllowed is true only
// when every checklist item passed; the check is advisory and blocks nothing
// by itself.

type ComplianceResult struct {
	StartAllowed bool               `json:"start_allowed"`
	MissingItems []string           `json:"missing_items"`
	Actions      []ComplianceAction `json:"actions"`
}
