package response

import (
	"time"

	"micsa_os/internal/domain/entities"
)

// SignatureCreatedResponse is the only place the plaintext token ever
// appears: it is handed to the caller once and cannot be retrieved again.

type SignatureCreatedResponse struct {
	SignatureRequestID string    `json:"signature_request_id"`
	ProjectID          string    `json:"project_id"`
	SignerName         string    `json:"signer_name"`
	SignerRole         string    `json:"signer_role"`
	Status             string    `json:"status"`
	CreatedAt          time.Time `json:"created_at"`
	Token              string    `json:"token"`
}

// SignatureResponse never carries the token hash.

type SignatureResponse struct {
	ID         string     `json:"id"`
	SignerName string     `json:"signer_name"`
	SignerRole string     `json:"signer_role"`
	Status     string     `json:"status"`
	SignedAt   *time.Time `json:"signed_at,omitempty"`
}

type SignedResponse struct {
	ID       string     `json:"id"`
	Status   string     `json:"status"`
	SignedAt *time.Time `json:"signed_at"`
}

func FromSignatureCreated(s entities.SignatureRequest, token string) SignatureCreatedResponse {
	return SignatureCreatedResponse{
		SignatureRequestID: s.ID,
		ProjectID:          s.ProjectID,
		SignerName:         s.SignerName,
		SignerRole:         s.SignerRole,
		Status:             string(s.Status),
		CreatedAt:          s.CreatedAt,
		Token:              token,
	}
}

func FromSignature(s entities.SignatureRequest) SignatureResponse {
	return SignatureResponse{
		ID:         s.ID,
		SignerName: s.SignerName,
		SignerRole: s.SignerRole,
		Status:     string(s.Status),
		SignedAt:   s.SignedAt,
	}
}

func FromSignatures(items []entities.SignatureRequest) []SignatureResponse {
	out := make([]SignatureResponse, 0, len(items))
	for _, s := range items {
		out = append(out, FromSignature(s))
	}
	return out
}

func FromSigned(s entities.SignatureRequest) SignedResponse {
	return SignedResponse{
		ID:       s.ID,
		Status:   string(s.Status),
		SignedAt: s.SignedAt,
	}
}
