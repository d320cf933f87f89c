package interfaces

import (
	"context"
	"time"

	"micsa_os/internal/domain/entities"
)

// ISignatureRepository abstracts persistence for signature requests.
//
// CreatePending and MarkSigned are transactional with the owning project's
// pending-signatures counter so a racing closeProject either observes the
// pending request or serializes strictly after the signature write:
//   - CreatePending inserts the request and increments the counter, asserting
//     the project exists and is still ACTIVE; a zero-value result with nil
//     error means the project assertion failed.
//   - MarkSigned flips PENDING -> SIGNED (condition: still PENDING) and
//     decrements the counter; a zero-value result with nil error means the
//     request was already signed.

type ISignatureRepository interface {
	CreatePending(ctx context.Context, s entities.SignatureRequest) (entities.SignatureRequest, error)
	GetByID(ctx context.Context, id string) (entities.SignatureRequest, error)
	ListByProjectID(ctx context.Context, projectID string) ([]entities.SignatureRequest, error)
	MarkSigned(ctx context.Context, s entities.SignatureRequest, signedAt time.Time, signatureBase64 string) (entities.SignatureRequest, error)
}
