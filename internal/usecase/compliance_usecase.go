package usecase

import "micsa_os/internal/domain/entities"

// IComplianceUseCase evaluates the pre-start compliance checklist. The check
// is stateless and advisory: nothing is persisted and no other operation is
// gated by it.

type IComplianceUseCase interface {
	StartCheck(in entities.ComplianceInput) entities.ComplianceResult
}

type ComplianceUseCase struct{}

var _ IComplianceUseCase = (*ComplianceUseCase)(nil)

func NewComplianceUseCase() *ComplianceUseCase {
	return &ComplianceUseCase{}
}

type checklistItem struct {
	name   string
	action string
	passed func(entities.ComplianceInput) bool
}

var startChecklist = []checklistItem{
	{
		name:   "Medical exams",
		action: "Schedule entry medical exams for every worker",
		passed: func(in entities.ComplianceInput) bool { return in.MedicalOk },
	},
	{
		name:   "Doping tests",
		action: "Run doping tests and file the results",
		passed: func(in entities.ComplianceInput) bool { return in.DopingOk },
	},
	{
		name:   "DC3 per position",
		action: "Issue DC3 certificates for every position on site",
		passed: func(in entities.ComplianceInput) bool { return in.DC3Ok },
	},
	{
		name:   "EPP delivered",
		action: "Deliver EPP and record the issue sheet per worker",
		passed: func(in entities.ComplianceInput) bool { return in.EppOk },
	},
	{
		name:   "Safety induction",
		action: "Run the site safety induction session",
		passed: func(in entities.ComplianceInput) bool { return in.InductionOk },
	},
	{
		name:   "ISO documentation",
		action: "Upload the ISO documentation package to the expediente",
		passed: func(in entities.ComplianceInput) bool { return in.ISODocsOk },
	},
}

// StartCheck returns startAllowed = true only when every checklist item
// passed, plus a remediation action for each missing item otherwise.
func (u *ComplianceUseCase) StartCheck(in entities.ComplianceInput) entities.ComplianceResult {
	result := entities.ComplianceResult{
		MissingItems: []string{},
		Actions:      []entities.ComplianceAction{},
	}
	for _, item := range startChecklist {
		if item.passed(in) {
			continue
		}
		result.MissingItems = append(result.MissingItems, item.name)
		result.Actions = append(result.Actions, entities.ComplianceAction{Item: item.name, Action: item.action})
	}
	result.StartAllowed = len(result.MissingItems) == 0
	return result
}
