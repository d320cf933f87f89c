package response

import "micsa_os/internal/domain/entities"

type ComplianceActionResponse struct {
	Item   string `json:"item"`
	Action string `json:"action"`
}

type ComplianceCheckResponse struct {
	StartAllowed bool                       `json:"start_allowed"`
	MissingItems []string                   `json:"missing_items"`
	Actions      []ComplianceActionResponse `json:"actions"`
}

func FromComplianceResult(r entities.ComplianceResult) ComplianceCheckResponse {
	actions := make([]ComplianceActionResponse, 0, len(r.Actions))
	for _, a := range r.Actions {
		actions = append(actions, ComplianceActionResponse{Item: a.Item, Action: a.Action})
	}
	return ComplianceCheckResponse{
		StartAllowed: r.StartAllowed,
		MissingItems: r.MissingItems,
		Actions:      actions,
	}
}
