package entities

import "time"

// SignatureStatus represents the state of a signature request.

type SignatureStatus string

const (
	SignatureStatusPending SignatureStatus = "PENDING"
	SignatureStatusSigned  SignatureStatus = "SIGNED"
)

// SignatureRequest is a single-use authorization tied to a project.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI: project_id-index (PK: project_id)
//
// Token handling:
//   - The raw bearer token is returned exactly once at creation time and is
//     never persisted or logged; only its SHA-256 hex digest (TokenHash) is
//     stored. Signing requires presenting a token whose hash matches.
//   - PENDING -> SIGNED happens exactly once; a second sign attempt with a
//     valid token must fail (non-repudiation).

type SignatureRequest struct {
	ID              string          `json:"id"`
	CreatedAt       time.Time       `json:"created_at"`
	ProjectID       string          `json:"project_id"`
	SignerName      string          `json:"signer_name"`
	SignerRole      string          `json:"signer_role"`
	Status          SignatureStatus `json:"status"`
	SignedAt        *time.Time      `json:"signed_at,omitempty"`
	SignatureBase64 string          `json:"signature_base64,omitempty"`
	TokenHash       string          `json:"-"`
}
