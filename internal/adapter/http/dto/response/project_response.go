package response

import (
	"time"

	"micsa_os/internal/domain/entities"
)

type ProjectResponse struct {
	ProjectID         string     `json:"project_id"`
	ID                string     `json:"id"`
	CreatedAt         time.Time  `json:"created_at"`
	QuoteID           string     `json:"quote_id"`
	Name              string     `json:"name"`
	ClientName        string     `json:"client_name"`
	Location          string     `json:"location,omitempty"`
	Status            string     `json:"status"`
	ClosedAt          *time.Time `json:"closed_at,omitempty"`
	PendingSignatures int        `json:"pending_signatures"`
}

func FromProject(p entities.Project) ProjectResponse {
	return ProjectResponse{
		ProjectID:         p.ID,
		ID:                p.ID,
		CreatedAt:         p.CreatedAt,
		QuoteID:           p.QuoteID,
		Name:              p.Name,
		ClientName:        p.ClientName,
		Location:          p.Location,
		Status:            string(p.Status),
		ClosedAt:          p.ClosedAt,
		PendingSignatures: p.PendingSignatures,
	}
}

func FromProjects(projects []entities.Project) []ProjectResponse {
	out := make([]ProjectResponse, 0, len(projects))
	for _, p := range projects {
		out = append(out, FromProject(p))
	}
	return out
}
