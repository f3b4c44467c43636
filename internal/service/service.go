// Package service contains interface for service business-logic.
package service

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/venturelink/core/internal/entities"
	"github.com/venturelink/core/internal/storage"
)

//go:generate mockgen -destination=./mock/service.go -package=mock -source=service.go

// ErrNotFound returned when a target, request or document is absent.
var ErrNotFound = errors.New("not found")

// ErrForbidden returned when a role or capability check failed.
var ErrForbidden = errors.New("forbidden")

// ErrConflict returned on duplicate submissions and already-terminal transitions.
var ErrConflict = errors.New("conflict")

// ErrInvalidArgument returned when a required field is missing or malformed.
var ErrInvalidArgument = errors.New("invalid argument")

// ToggleIntent ...
type ToggleIntent string

const (
	// ToggleOn ...
	ToggleOn ToggleIntent = "on"
	// ToggleOff ...
	ToggleOff ToggleIntent = "off"
)

// ToggleResult reports whether the toggle changed state and the resulting counter.
type ToggleResult struct {
	Applied  bool
	NewCount uint32
}

// CommentThread is a top-level comment with its replies, oldest reply first.
type CommentThread struct {
	Comment *entities.Comment
	Replies []*entities.Comment
}

// Service ...
type Service interface {
	Toggle(ctx context.Context, actor entities.Actor, target entities.TargetID, kind entities.InteractionKind, intent ToggleIntent) (*ToggleResult, error)
	GetEngagement(ctx context.Context, target entities.TargetID) (*entities.CounterBag, error)
	ListInteractionsByTarget(ctx context.Context, target entities.TargetID, kind entities.InteractionKind) ([]*entities.Interaction, error)
	ListInteractionsByActor(ctx context.Context, actor uuid.UUID, kind entities.InteractionKind) ([]*entities.Interaction, error)

	CreateProfile(ctx context.Context, actor entities.Actor, kind entities.ProfileKind, displayName string) (*entities.Profile, error)
	GetProfile(ctx context.Context, id uuid.UUID) (*entities.Profile, error)
	CreatePost(ctx context.Context, actor entities.Actor, title, text string) (*entities.Post, error)
	GetPost(ctx context.Context, id uuid.UUID) (*entities.Post, error)

	CreateComment(ctx context.Context, actor entities.Actor, target entities.TargetID, text string, parentID *uuid.UUID) (*entities.Comment, error)
	DeleteComment(ctx context.Context, actor entities.Actor, id uuid.UUID) error
	ListComments(ctx context.Context, target entities.TargetID, limit uint16, skip uint32) ([]*CommentThread, error)

	SubmitVerification(ctx context.Context, actor entities.Actor, role entities.Role) (*entities.VerificationRequest, error)
	GetVerificationStatus(ctx context.Context, actor entities.Actor) ([]*entities.VerificationRequest, error)
	AttachDocument(ctx context.Context, actor entities.Actor, docType, url string) (*entities.VerificationDocument, error)
	StartReview(ctx context.Context, admin entities.Actor, requestID uuid.UUID) error
	Approve(ctx context.Context, admin entities.Actor, requestID uuid.UUID, notes string) error
	Reject(ctx context.Context, admin entities.Actor, requestID uuid.UUID, reason string) error

	ListAuditEntries(ctx context.Context, admin entities.Actor, p *storage.ListAuditEntriesParams) ([]*entities.AuditEntry, error)
}
