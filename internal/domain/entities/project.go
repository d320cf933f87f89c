package entities

import "time"

// ProjectStatus represents the lifecycle of a promoted project.

type ProjectStatus string

const (
	ProjectStatusActive ProjectStatus = "ACTIVE"
	ProjectStatusClosed ProjectStatus = "CLOSED"
)

// Project is a quote promoted to execution.
//
// Storage model (DynamoDB):
//   - PK: id
//
// QuoteID is many-to-one on purpose: a quote may back several phased
// projects, so no uniqueness is enforced on it.
//
// PendingSignatures mirrors the count of PENDING signature requests for the
// project. It is maintained transactionally by the signature repository so
// that closing can be a single conditional update (status = ACTIVE AND
// pending_signatures = 0) and never races a signature write.

type Project struct {
	ID                string        `json:"id"`
	CreatedAt         time.Time     `json:"created_at"`
	QuoteID           string        `json:"quote_id"`
	Name              string        `json:"name"`
	ClientName        string        `json:"client_name"`
	Location          string        `json:"location"`
	Status            ProjectStatus `json:"status"`
	ClosedAt          *time.Time    `json:"closed_at,omitempty"`
	PendingSignatures int           `json:"pending_signatures"`
}
