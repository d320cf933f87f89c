package usecase

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"errors"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"

	"micsa_os/internal/domain/entities"
	"micsa_os/internal/usecase/interfaces"
)

var (
	ErrSignatureNotFound      = errors.New("signature request not found")
	ErrInvalidSignatureID     = errors.New("invalid signature request id")
	ErrInvalidSignerName      = errors.New("invalid signer name")
	ErrInvalidSignerRole      = errors.New("invalid signer role")
	ErrInvalidToken           = errors.New("invalid signature token")
	ErrSignatureAlreadySigned = errors.New("signature request already signed")
	ErrProjectNotActive       = errors.New("project is not active")
)

// ISignatureUseCase exposes the signature sub-flow: create a token-backed
// request, sign it exactly once, list per project.
//
// The plaintext token is a bearer credential handed to the external signer.
// It is returned exactly once from Request and never stored or logged; only
// its SHA-256 hash persists.

type ISignatureUseCase interface {
	Request(ctx context.Context, projectID, signerName, signerRole string) (entities.SignatureRequest, string, error)
	Sign(ctx context.Context, requestID, token, signatureBase64 string) (entities.SignatureRequest, error)
	ListByProject(ctx context.Context, projectID string) ([]entities.SignatureRequest, error)
}

type SignatureUseCase struct {
	repo        interfaces.ISignatureRepository
	projectRepo interfaces.IProjectRepository
}

var _ ISignatureUseCase = (*SignatureUseCase)(nil)

func NewSignatureUseCase(repo interfaces.ISignatureRepository, projectRepo interfaces.IProjectRepository) *SignatureUseCase {
	return &SignatureUseCase{repo: repo, projectRepo: projectRepo}
}

func (u *SignatureUseCase) Request(ctx context.Context, projectID, signerName, signerRole string) (entities.SignatureRequest, string, error) {
	projectID = strings.TrimSpace(projectID)
	if projectID == "" {
		return entities.SignatureRequest{}, "", ErrInvalidProjectID
	}
	signerName = strings.TrimSpace(signerName)
	if signerName == "" {
		return entities.SignatureRequest{}, "", ErrInvalidSignerName
	}
	signerRole = strings.TrimSpace(signerRole)
	if signerRole == "" {
		return entities.SignatureRequest{}, "", ErrInvalidSignerRole
	}

	p, err := u.projectRepo.GetByID(ctx, projectID)
	if err != nil {
		return entities.SignatureRequest{}, "", err
	}
	if p.ID == "" {
		return entities.SignatureRequest{}, "", ErrProjectNotFound
	}
	if p.Status != entities.ProjectStatusActive {
		return entities.SignatureRequest{}, "", ErrProjectNotActive
	}

	token, err := newToken()
	if err != nil {
		return entities.SignatureRequest{}, "", err
	}

	s := entities.SignatureRequest{
		ID:         uuid.NewString(),
		CreatedAt:  time.Now().UTC(),
		ProjectID:  projectID,
		SignerName: signerName,
		SignerRole: signerRole,
		Status:     entities.SignatureStatusPending,
		TokenHash:  hashToken(token),
	}
	created, err := u.repo.CreatePending(ctx, s)
	if err != nil {
		return entities.SignatureRequest{}, "", err
	}
	if created.ID == "" {
		// Project was closed between the read above and the transact write.
		return entities.SignatureRequest{}, "", ErrProjectNotActive
	}
	log.Printf("[signature][usecase] request created id=%s project_id=%s signer=%q", created.ID, projectID, signerName)
	return created, token, nil
}

func (u *SignatureUseCase) Sign(ctx context.Context, requestID, token, signatureBase64 string) (entities.SignatureRequest, error) {
	requestID = strings.TrimSpace(requestID)
	if requestID == "" {
		return entities.SignatureRequest{}, ErrInvalidSignatureID
	}
	token = strings.TrimSpace(token)
	if token == "" {
		return entities.SignatureRequest{}, ErrInvalidToken
	}

	s, err := u.repo.GetByID(ctx, requestID)
	if err != nil {
		return entities.SignatureRequest{}, err
	}
	if s.ID == "" {
		return entities.SignatureRequest{}, ErrSignatureNotFound
	}
	if s.Status == entities.SignatureStatusSigned {
		return entities.SignatureRequest{}, ErrSignatureAlreadySigned
	}
	if subtle.ConstantTimeCompare([]byte(hashToken(token)), []byte(s.TokenHash)) != 1 {
		return entities.SignatureRequest{}, ErrInvalidToken
	}

	signed, err := u.repo.MarkSigned(ctx, s, time.Now().UTC(), signatureBase64)
	if err != nil {
		return entities.SignatureRequest{}, err
	}
	if signed.ID == "" {
		// Lost the race against a concurrent sign with the same token.
		return entities.SignatureRequest{}, ErrSignatureAlreadySigned
	}
	log.Printf("[signature][usecase] request signed id=%s project_id=%s", signed.ID, signed.ProjectID)
	return signed, nil
}

func (u *SignatureUseCase) ListByProject(ctx context.Context, projectID string) ([]entities.SignatureRequest, error) {
	projectID = strings.TrimSpace(projectID)
	if projectID == "" {
		return nil, ErrInvalidProjectID
	}
	return u.repo.ListByProjectID(ctx, projectID)
}

func newToken() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}

func hashToken(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}
