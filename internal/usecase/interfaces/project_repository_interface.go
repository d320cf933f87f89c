package interfaces

import (
	"context"
	"time"

	"micsa_os/internal/domain/entities"
)

// IProjectRepository abstracts persistence for promoted projects.
//
// Close must be atomic: the ACTIVE -> CLOSED transition commits only when
// the stored row still has status ACTIVE and zero pending signatures, in a
// single conditional write. A refused close returns a zero-value entity and
// a nil error; the caller re-reads the row to tell NotFound, already-closed
// and blocked-by-signatures apart.

type IProjectRepository interface {
	Create(ctx context.Context, p entities.Project) (entities.Project, error)
	GetByID(ctx context.Context, id string) (entities.Project, error)
	List(ctx context.Context) ([]entities.Project, error)
	Close(ctx context.Context, id string, closedAt time.Time) (entities.Project, error)
}
