package request

import "micsa_os/internal/domain/entities"

// ComplianceCheckRequest carries the six checklist booleans. Absent fields
// default to false, i.e. not compliant.

type ComplianceCheckRequest struct {
	MedicalOk   bool `json:"medical_ok"`
	DopingOk    bool `json:"doping_ok"`
	DC3Ok       bool `json:"dc3_ok"`
	EppOk       bool `json:"epp_ok"`
	InductionOk bool `json:"induction_ok"`
	ISODocsOk   bool `json:"iso_docs_ok"`
}

func (r ComplianceCheckRequest) ToEntity() entities.ComplianceInput {
	return entities.ComplianceInput{
		MedicalOk:   r.MedicalOk,
		DopingOk:    r.DopingOk,
		DC3Ok:       r.DC3Ok,
		EppOk:       r.EppOk,
		InductionOk: r.InductionOk,
		ISODocsOk:   r.ISODocsOk,
	}
}
