// Package storage contains a storage interface.
package storage

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/venturelink/core/internal/entities"
)

//go:generate mockgen -destination=./mock/storage.go -package=mock -source=storage.go

// ErrNotFound ...
var ErrNotFound = errors.New("not found")

// ErrConflict is returned when a write violates a uniqueness constraint.
var ErrConflict = errors.New("conflict")

// Storage provides methods for interacting with database.
type Storage interface {
	InTx(ctx context.Context, f func(s Storage) error) error

	CreateProfile(ctx context.Context, p *entities.Profile) error
	GetProfile(ctx context.Context, id uuid.UUID) (*entities.Profile, error)
	SetProfileVerified(ctx context.Context, id uuid.UUID, verified bool) error

	CreatePost(ctx context.Context, p *entities.Post) error
	GetPost(ctx context.Context, id uuid.UUID) (*entities.Post, error)

	// AddInteraction inserts the interaction if the (kind, actor, target) tuple
	// is absent and reports whether a row was written.
	AddInteraction(ctx context.Context, i *entities.Interaction) (bool, error)
	// RemoveInteraction deletes the interaction if present and reports whether
	// a row was removed.
	RemoveInteraction(ctx context.Context, kind entities.InteractionKind, actor uuid.UUID, target entities.TargetID) (bool, error)
	ListInteractionsByTarget(ctx context.Context, target entities.TargetID, kind entities.InteractionKind) ([]*entities.Interaction, error)
	ListInteractionsByActor(ctx context.Context, actor uuid.UUID, kind entities.InteractionKind) ([]*entities.Interaction, error)

	GetCounters(ctx context.Context, target entities.TargetID) (*entities.CounterBag, error)
	// AdjustCounter applies an atomic relative adjustment to the target's
	// counter, floored at zero, and returns the new value.
	AdjustCounter(ctx context.Context, target entities.TargetID, c CounterType, delta int) (uint32, error)

	CreateComment(ctx context.Context, c *entities.Comment) error
	GetComment(ctx context.Context, id uuid.UUID) (*entities.Comment, error)
	DeleteComment(ctx context.Context, id uuid.UUID) error
	// DeleteReplies removes all replies of the given comment and returns the
	// number of removed rows.
	DeleteReplies(ctx context.Context, parentID uuid.UUID) (int, error)
	ListComments(ctx context.Context, target entities.TargetID, limit uint16, skip uint32) ([]*entities.Comment, error)
	ListReplies(ctx context.Context, parentID uuid.UUID) ([]*entities.Comment, error)

	CreateVerificationRequest(ctx context.Context, r *entities.VerificationRequest) error
	GetVerificationRequest(ctx context.Context, id uuid.UUID) (*entities.VerificationRequest, error)
	ListVerificationRequests(ctx context.Context, userID uuid.UUID) ([]*entities.VerificationRequest, error)
	// StartReview moves the request to in_review if it is still in requested
	// state and reports whether the transition happened.
	StartReview(ctx context.Context, id, adminID uuid.UUID) (bool, error)
	// DecideVerification applies a terminal decision guarded by the request
	// being non-terminal and reports whether a row was updated.
	DecideVerification(ctx context.Context, p *DecideVerificationParams) (bool, error)

	CreateVerificationDocument(ctx context.Context, d *entities.VerificationDocument) error
	ListVerificationDocuments(ctx context.Context, userID uuid.UUID) ([]*entities.VerificationDocument, error)
	// UpdatePendingDocuments bulk-transitions all of the user's pending
	// documents alongside their request's decision.
	UpdatePendingDocuments(ctx context.Context, p *UpdateDocumentsParams) error

	CreateAuditEntry(ctx context.Context, e *entities.AuditEntry) error
	ListAuditEntries(ctx context.Context, p *ListAuditEntriesParams) ([]*entities.AuditEntry, error)
}

// CounterType ...
type CounterType string

const (
	// LikesCounter ...
	LikesCounter CounterType = "likes"
	// CommentsCounter ...
	CommentsCounter CounterType = "comments"
	// CrownsCounter ...
	CrownsCounter CounterType = "crowns"
	// SharesCounter ...
	SharesCounter CounterType = "shares"
)

// DecideVerificationParams ...
type DecideVerificationParams struct {
	ID      uuid.UUID
	AdminID uuid.UUID
	Status  entities.VerificationStatus
	// Meta is merged into the request's metadata without discarding prior keys.
	Meta      map[string]string
	DecidedAt time.Time
}

// UpdateDocumentsParams ...
type UpdateDocumentsParams struct {
	UserID     uuid.UUID
	Status     entities.DocumentStatus
	Notes      string
	ReviewedBy uuid.UUID
	ReviewedAt time.Time
}

// ListAuditEntriesParams ...
type ListAuditEntriesParams struct {
	Action     *string
	TargetType *string
	Limit      uint16
	Skip       uint32
}
