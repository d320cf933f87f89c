package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"

	"micsa_os/internal/domain/entities"
	"micsa_os/internal/usecase/interfaces"
)

var (
	ErrProjectNotFound      = errors.New("project not found")
	ErrInvalidProjectID     = errors.New("invalid project id")
	ErrProjectAlreadyClosed = errors.New("project already closed")
)

// ClosureBlockedError refuses a close while signature requests are still
// pending. Business-rule refusal, not a fault: the caller remediates by
// collecting the outstanding signatures.

type ClosureBlockedError struct {
	PendingSignatures int
}

func (e *ClosureBlockedError) Error() string {
	return fmt.Sprintf("closure blocked: %d pending signature(s)", e.PendingSignatures)
}

// IProjectUseCase exposes the project lifecycle: promote a quote to an
// ACTIVE project, list/get, and close once no signatures are outstanding.

type IProjectUseCase interface {
	Promote(ctx context.Context, quoteID, nameOverride string) (entities.Project, error)
	List(ctx context.Context) ([]entities.Project, error)
	GetByID(ctx context.Context, id string) (entities.Project, error)
	Close(ctx context.Context, id string) (entities.Project, error)
}

type ProjectUseCase struct {
	repo      interfaces.IProjectRepository
	quoteRepo interfaces.IQuoteRepository
}

var _ IProjectUseCase = (*ProjectUseCase)(nil)

func NewProjectUseCase(repo interfaces.IProjectRepository, quoteRepo interfaces.IQuoteRepository) *ProjectUseCase {
	return &ProjectUseCase{repo: repo, quoteRepo: quoteRepo}
}

// Promote creates an ACTIVE project from an existing quote, copying the
// client/project identity fields. Several projects may reference the same
// quote (phased rollout); no uniqueness is enforced on quoteID.
func (u *ProjectUseCase) Promote(ctx context.Context, quoteID, nameOverride string) (entities.Project, error) {
	quoteID = strings.TrimSpace(quoteID)
	if quoteID == "" {
		return entities.Project{}, ErrInvalidQuoteID
	}

	q, err := u.quoteRepo.GetByID(ctx, quoteID)
	if err != nil {
		return entities.Project{}, err
	}
	if q.ID == "" {
		return entities.Project{}, ErrQuoteNotFound
	}

	name := strings.TrimSpace(nameOverride)
	if name == "" {
		name = q.Request.ProjectName
	}

	p := entities.Project{
		ID:         uuid.NewString(),
		CreatedAt:  time.Now().UTC(),
		QuoteID:    q.ID,
		Name:       name,
		ClientName: q.Request.ClientName,
		Location:   q.Request.Location,
		Status:     entities.ProjectStatusActive,
	}
	created, err := u.repo.Create(ctx, p)
	if err != nil {
		return entities.Project{}, err
	}
	log.Printf("[project][usecase] project created id=%s quote_id=%s", created.ID, q.ID)
	return created, nil
}

func (u *ProjectUseCase) List(ctx context.Context) ([]entities.Project, error) {
	return u.repo.List(ctx)
}

func (u *ProjectUseCase) GetByID(ctx context.Context, id string) (entities.Project, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Project{}, ErrInvalidProjectID
	}

	p, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Project{}, err
	}
	if p.ID == "" {
		return entities.Project{}, ErrProjectNotFound
	}
	return p, nil
}

// Close transitions ACTIVE -> CLOSED. The repository write is a single
// conditional update (still ACTIVE, zero pending signatures), so a racing
// signature request either lands before the check and blocks the close or
// commits strictly after it. On refusal the row is re-read to report why.
func (u *ProjectUseCase) Close(ctx context.Context, id string) (entities.Project, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Project{}, ErrInvalidProjectID
	}

	closed, err := u.repo.Close(ctx, id, time.Now().UTC())
	if err != nil {
		return entities.Project{}, err
	}
	if closed.ID != "" {
		log.Printf("[project][usecase] project closed id=%s", closed.ID)
		return closed, nil
	}

	p, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Project{}, err
	}
	switch {
	case p.ID == "":
		return entities.Project{}, ErrProjectNotFound
	case p.Status == entities.ProjectStatusClosed:
		return entities.Project{}, ErrProjectAlreadyClosed
	default:
		return entities.Project{}, &ClosureBlockedError{PendingSignatures: p.PendingSignatures}
	}
}
