// Package impl is implementation of service interface.
package impl

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/venturelink/core/internal/entities"
	"github.com/venturelink/core/internal/service"
	"github.com/venturelink/core/internal/storage"
)

const (
	actionStartReview   = "start_review"
	actionApprove       = "approve"
	actionReject        = "reject"
	actionDeleteComment = "delete_comment"
)

var counterByKind = map[entities.InteractionKind]storage.CounterType{
	entities.LikeInteraction:  storage.LikesCounter,
	entities.CrownInteraction: storage.CrownsCounter,
	entities.ShareInteraction: storage.SharesCounter,
}

// Options ...
type Options struct {
	// CascadeDeleteReplies removes replies together with their parent comment.
	// Off by default: replies are orphaned but remain queryable, which is what
	// the mobile client historically relied on.
	CascadeDeleteReplies bool
}

type srv struct {
	s    storage.Storage
	opts Options
}

// New creates new instance of service.
func New(s storage.Storage, opts Options) service.Service {
	return srv{
		s:    s,
		opts: opts,
	}
}

func (s srv) Toggle(ctx context.Context, actor entities.Actor, target entities.TargetID, kind entities.InteractionKind,
	intent service.ToggleIntent) (*service.ToggleResult, error) {
	if intent != service.ToggleOn && intent != service.ToggleOff {
		return nil, fmt.Errorf("%w: unknown intent %q", service.ErrInvalidArgument, intent)
	}

	if err := validateTargetKind(target.Type, kind); err != nil {
		return nil, err
	}

	if kind == entities.CrownInteraction {
		if err := s.checkInvestorCapable(ctx, actor); err != nil {
			return nil, err
		}
	}

	var out service.ToggleResult

	if err := s.s.InTx(ctx, func(tx storage.Storage) error {
		counters, err := tx.GetCounters(ctx, target)
		if err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				return service.ErrNotFound
			}
			return fmt.Errorf("failed to get counters: %w", err)
		}

		if kind == entities.CrownInteraction && target.Type == entities.ProfileTarget {
			p, err := tx.GetProfile(ctx, target.ID)
			if err != nil {
				return fmt.Errorf("failed to get profile: %w", err)
			}
			if p.Kind != entities.StartupProfile {
				return fmt.Errorf("%w: only startup profiles can be crowned", service.ErrInvalidArgument)
			}
		}

		if intent == service.ToggleOn {
			inserted, err := tx.AddInteraction(ctx, &entities.Interaction{
				Kind:      kind,
				Actor:     actor.ID,
				Target:    target,
				CreatedAt: time.Now(),
			})
			if err != nil {
				return fmt.Errorf("failed to add interaction: %w", err)
			}

			if !inserted {
				out = service.ToggleResult{Applied: false, NewCount: counters.Get(kind)}
				return nil
			}
		} else {
			removed, err := tx.RemoveInteraction(ctx, kind, actor.ID, target)
			if err != nil {
				return fmt.Errorf("failed to remove interaction: %w", err)
			}

			if !removed {
				out = service.ToggleResult{Applied: false, NewCount: counters.Get(kind)}
				return nil
			}
		}

		delta := 1
		if intent == service.ToggleOff {
			delta = -1
		}

		n, err := tx.AdjustCounter(ctx, target, counterByKind[kind], delta)
		if err != nil {
			return fmt.Errorf("failed to adjust counter: %w", err)
		}

		out = service.ToggleResult{Applied: true, NewCount: n}
		return nil
	}); err != nil {
		return nil, err
	}

	return &out, nil
}

func (s srv) GetEngagement(ctx context.Context, target entities.TargetID) (*entities.CounterBag, error) {
	c, err := s.s.GetCounters(ctx, target)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, service.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get counters: %w", err)
	}

	return c, nil
}

func (s srv) ListInteractionsByTarget(ctx context.Context, target entities.TargetID, kind entities.InteractionKind) ([]*entities.Interaction, error) {
	ii, err := s.s.ListInteractionsByTarget(ctx, target, kind)
	if err != nil {
		return nil, fmt.Errorf("failed to list interactions: %w", err)
	}

	return ii, nil
}

func (s srv) ListInteractionsByActor(ctx context.Context, actor uuid.UUID, kind entities.InteractionKind) ([]*entities.Interaction, error) {
	ii, err := s.s.ListInteractionsByActor(ctx, actor, kind)
	if err != nil {
		return nil, fmt.Errorf("failed to list interactions: %w", err)
	}

	return ii, nil
}

func (s srv) CreateProfile(ctx context.Context, actor entities.Actor, kind entities.ProfileKind, displayName string) (*entities.Profile, error) {
	switch kind {
	case entities.PersonalProfile, entities.StartupProfile, entities.InvestorProfile:
	default:
		return nil, fmt.Errorf("%w: unknown profile kind %q", service.ErrInvalidArgument, kind)
	}

	if strings.TrimSpace(displayName) == "" {
		return nil, fmt.Errorf("%w: display name is required", service.ErrInvalidArgument)
	}

	p := &entities.Profile{
		ID:          actor.ID,
		Kind:        kind,
		DisplayName: displayName,
		CreatedAt:   time.Now(),
	}

	if err := s.s.CreateProfile(ctx, p); err != nil {
		if errors.Is(err, storage.ErrConflict) {
			return nil, service.ErrConflict
		}
		return nil, fmt.Errorf("failed to create profile: %w", err)
	}

	return p, nil
}

func (s srv) GetProfile(ctx context.Context, id uuid.UUID) (*entities.Profile, error) {
	p, err := s.s.GetProfile(ctx, id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, service.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get profile: %w", err)
	}

	return p, nil
}

func (s srv) CreatePost(ctx context.Context, actor entities.Actor, title, text string) (*entities.Post, error) {
	if strings.TrimSpace(title) == "" {
		return nil, fmt.Errorf("%w: title is required", service.ErrInvalidArgument)
	}

	p := &entities.Post{
		ID:        uuid.New(),
		Owner:     actor.ID,
		Title:     title,
		Text:      text,
		CreatedAt: time.Now(),
	}

	if err := s.s.CreatePost(ctx, p); err != nil {
		return nil, fmt.Errorf("failed to create post: %w", err)
	}

	return p, nil
}

func (s srv) GetPost(ctx context.Context, id uuid.UUID) (*entities.Post, error) {
	p, err := s.s.GetPost(ctx, id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, service.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get post: %w", err)
	}

	return p, nil
}

func (s srv) CreateComment(ctx context.Context, actor entities.Actor, target entities.TargetID, text string, parentID *uuid.UUID) (*entities.Comment, error) {
	if strings.TrimSpace(text) == "" {
		return nil, fmt.Errorf("%w: text is required", service.ErrInvalidArgument)
	}

	if target.Type == entities.CommentTarget {
		return nil, fmt.Errorf("%w: reply to a comment via parentId", service.ErrInvalidArgument)
	}

	out := &entities.Comment{
		ID:        uuid.New(),
		Target:    target,
		Author:    actor.ID,
		Text:      text,
		ParentID:  parentID,
		CreatedAt: time.Now(),
	}

	if err := s.s.InTx(ctx, func(tx storage.Storage) error {
		if _, err := tx.GetCounters(ctx, target); err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				return service.ErrNotFound
			}
			return fmt.Errorf("failed to get counters: %w", err)
		}

		if parentID != nil {
			parent, err := tx.GetComment(ctx, *parentID)
			if err != nil {
				if errors.Is(err, storage.ErrNotFound) {
					return fmt.Errorf("%w: parent comment not found", service.ErrInvalidArgument)
				}
				return fmt.Errorf("failed to get parent comment: %w", err)
			}

			// the tree is two levels deep, replies to replies are not allowed
			if parent.ParentID != nil || parent.Target != target {
				return fmt.Errorf("%w: parent must be a top-level comment on the same target", service.ErrInvalidArgument)
			}
		}

		if err := tx.CreateComment(ctx, out); err != nil {
			return fmt.Errorf("failed to create comment: %w", err)
		}

		if _, err := tx.AdjustCounter(ctx, target, storage.CommentsCounter, 1); err != nil {
			return fmt.Errorf("failed to adjust counter: %w", err)
		}

		return nil
	}); err != nil {
		return nil, err
	}

	return out, nil
}

func (s srv) DeleteComment(ctx context.Context, actor entities.Actor, id uuid.UUID) error {
	return s.s.InTx(ctx, func(tx storage.Storage) error {
		c, err := tx.GetComment(ctx, id)
		if err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				return service.ErrNotFound
			}
			return fmt.Errorf("failed to get comment: %w", err)
		}

		moderated := c.Author != actor.ID
		if moderated && !actor.HasRole(entities.AdminRole) {
			return service.ErrForbidden
		}

		removed := 1
		if c.ParentID == nil && s.opts.CascadeDeleteReplies {
			n, err := tx.DeleteReplies(ctx, id)
			if err != nil {
				return fmt.Errorf("failed to delete replies: %w", err)
			}
			removed += n
		}

		if err := tx.DeleteComment(ctx, id); err != nil {
			return fmt.Errorf("failed to delete comment: %w", err)
		}

		if _, err := tx.AdjustCounter(ctx, c.Target, storage.CommentsCounter, -removed); err != nil {
			return fmt.Errorf("failed to adjust counter: %w", err)
		}

		if moderated {
			if err := tx.CreateAuditEntry(ctx, &entities.AuditEntry{
				ID:         uuid.New(),
				Actor:      actor.ID,
				Action:     actionDeleteComment,
				TargetType: "comment",
				TargetID:   id.String(),
				Data:       map[string]string{"author": c.Author.String()},
				CreatedAt:  time.Now(),
			}); err != nil {
				return fmt.Errorf("failed to create audit entry: %w", err)
			}
		}

		return nil
	})
}

func (s srv) ListComments(ctx context.Context, target entities.TargetID, limit uint16, skip uint32) ([]*service.CommentThread, error) {
	cc, err := s.s.ListComments(ctx, target, limit, skip)
	if err != nil {
		return nil, fmt.Errorf("failed to list comments: %w", err)
	}

	out := make([]*service.CommentThread, len(cc))
	for i, c := range cc {
		replies, err := s.s.ListReplies(ctx, c.ID)
		if err != nil {
			return nil, fmt.Errorf("failed to list replies: %w", err)
		}

		out[i] = &service.CommentThread{Comment: c, Replies: replies}
	}

	return out, nil
}

func (s srv) SubmitVerification(ctx context.Context, actor entities.Actor, role entities.Role) (*entities.VerificationRequest, error) {
	switch role {
	case entities.InvestorRole, entities.StartupRole, entities.PersonalRole:
	default:
		return nil, fmt.Errorf("%w: role %q can not be verified", service.ErrInvalidArgument, role)
	}

	r := &entities.VerificationRequest{
		ID:          uuid.New(),
		UserID:      actor.ID,
		Role:        role,
		Status:      entities.VerificationRequested,
		RequestedAt: time.Now(),
	}

	if err := s.s.CreateVerificationRequest(ctx, r); err != nil {
		if errors.Is(err, storage.ErrConflict) {
			return nil, service.ErrConflict
		}
		return nil, fmt.Errorf("failed to create verification request: %w", err)
	}

	return r, nil
}

func (s srv) GetVerificationStatus(ctx context.Context, actor entities.Actor) ([]*entities.VerificationRequest, error) {
	rr, err := s.s.ListVerificationRequests(ctx, actor.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to list verification requests: %w", err)
	}

	return rr, nil
}

func (s srv) AttachDocument(ctx context.Context, actor entities.Actor, docType, url string) (*entities.VerificationDocument, error) {
	if strings.TrimSpace(docType) == "" || strings.TrimSpace(url) == "" {
		return nil, fmt.Errorf("%w: docType and url are required", service.ErrInvalidArgument)
	}

	d := &entities.VerificationDocument{
		ID:        uuid.New(),
		UserID:    actor.ID,
		DocType:   docType,
		URL:       url,
		Status:    entities.DocumentPending,
		CreatedAt: time.Now(),
	}

	if err := s.s.CreateVerificationDocument(ctx, d); err != nil {
		return nil, fmt.Errorf("failed to create verification document: %w", err)
	}

	return d, nil
}

func (s srv) StartReview(ctx context.Context, admin entities.Actor, requestID uuid.UUID) error {
	if !admin.HasRole(entities.AdminRole) {
		return service.ErrForbidden
	}

	return s.s.InTx(ctx, func(tx storage.Storage) error {
		ok, err := tx.StartReview(ctx, requestID, admin.ID)
		if err != nil {
			return fmt.Errorf("failed to start review: %w", err)
		}

		if !ok {
			return s.requestConflict(ctx, tx, requestID)
		}

		if err := tx.CreateAuditEntry(ctx, &entities.AuditEntry{
			ID:         uuid.New(),
			Actor:      admin.ID,
			Action:     actionStartReview,
			TargetType: "verification_request",
			TargetID:   requestID.String(),
			CreatedAt:  time.Now(),
		}); err != nil {
			return fmt.Errorf("failed to create audit entry: %w", err)
		}

		return nil
	})
}

func (s srv) Approve(ctx context.Context, admin entities.Actor, requestID uuid.UUID, notes string) error {
	if !admin.HasRole(entities.AdminRole) {
		return service.ErrForbidden
	}

	now := time.Now()

	meta := map[string]string{}
	if notes != "" {
		meta["notes"] = notes
	}

	return s.s.InTx(ctx, func(tx storage.Storage) error {
		ok, err := tx.DecideVerification(ctx, &storage.DecideVerificationParams{
			ID:        requestID,
			AdminID:   admin.ID,
			Status:    entities.VerificationApproved,
			Meta:      meta,
			DecidedAt: now,
		})
		if err != nil {
			return fmt.Errorf("failed to decide verification: %w", err)
		}

		if !ok {
			return s.requestConflict(ctx, tx, requestID)
		}

		r, err := tx.GetVerificationRequest(ctx, requestID)
		if err != nil {
			return fmt.Errorf("failed to get verification request: %w", err)
		}

		if err := tx.SetProfileVerified(ctx, r.UserID, true); err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				return fmt.Errorf("%w: user has no profile", service.ErrNotFound)
			}
			return fmt.Errorf("failed to set verified flag: %w", err)
		}

		if err := tx.UpdatePendingDocuments(ctx, &storage.UpdateDocumentsParams{
			UserID:     r.UserID,
			Status:     entities.DocumentApproved,
			Notes:      notes,
			ReviewedBy: admin.ID,
			ReviewedAt: now,
		}); err != nil {
			return fmt.Errorf("failed to update documents: %w", err)
		}

		if err := tx.CreateAuditEntry(ctx, &entities.AuditEntry{
			ID:         uuid.New(),
			Actor:      admin.ID,
			Action:     actionApprove,
			TargetType: "verification_request",
			TargetID:   requestID.String(),
			Data:       map[string]string{"user": r.UserID.String(), "role": string(r.Role)},
			CreatedAt:  now,
		}); err != nil {
			return fmt.Errorf("failed to create audit entry: %w", err)
		}

		return nil
	})
}

func (s srv) Reject(ctx context.Context, admin entities.Actor, requestID uuid.UUID, reason string) error {
	if strings.TrimSpace(reason) == "" {
		return fmt.Errorf("%w: reason is required", service.ErrInvalidArgument)
	}

	if !admin.HasRole(entities.AdminRole) {
		return service.ErrForbidden
	}

	now := time.Now()

	return s.s.InTx(ctx, func(tx storage.Storage) error {
		ok, err := tx.DecideVerification(ctx, &storage.DecideVerificationParams{
			ID:        requestID,
			AdminID:   admin.ID,
			Status:    entities.VerificationRejected,
			Meta:      map[string]string{"rejectionReason": reason},
			DecidedAt: now,
		})
		if err != nil {
			return fmt.Errorf("failed to decide verification: %w", err)
		}

		if !ok {
			return s.requestConflict(ctx, tx, requestID)
		}

		r, err := tx.GetVerificationRequest(ctx, requestID)
		if err != nil {
			return fmt.Errorf("failed to get verification request: %w", err)
		}

		if err := tx.UpdatePendingDocuments(ctx, &storage.UpdateDocumentsParams{
			UserID:     r.UserID,
			Status:     entities.DocumentRejected,
			Notes:      reason,
			ReviewedBy: admin.ID,
			ReviewedAt: now,
		}); err != nil {
			return fmt.Errorf("failed to update documents: %w", err)
		}

		if err := tx.CreateAuditEntry(ctx, &entities.AuditEntry{
			ID:         uuid.New(),
			Actor:      admin.ID,
			Action:     actionReject,
			TargetType: "verification_request",
			TargetID:   requestID.String(),
			Data:       map[string]string{"user": r.UserID.String(), "reason": reason},
			CreatedAt:  now,
		}); err != nil {
			return fmt.Errorf("failed to create audit entry: %w", err)
		}

		return nil
	})
}

func (s srv) ListAuditEntries(ctx context.Context, admin entities.Actor, p *storage.ListAuditEntriesParams) ([]*entities.AuditEntry, error) {
	if !admin.HasRole(entities.AdminRole) {
		return nil, service.ErrForbidden
	}

	ee, err := s.s.ListAuditEntries(ctx, p)
	if err != nil {
		return nil, fmt.Errorf("failed to list audit entries: %w", err)
	}

	return ee, nil
}

// requestConflict distinguishes a missing request from a terminal one after
// a conditional update matched no rows.
func (s srv) requestConflict(ctx context.Context, tx storage.Storage, id uuid.UUID) error {
	if _, err := tx.GetVerificationRequest(ctx, id); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return service.ErrNotFound
		}
		return fmt.Errorf("failed to get verification request: %w", err)
	}

	return service.ErrConflict
}

func (s srv) checkInvestorCapable(ctx context.Context, actor entities.Actor) error {
	if actor.HasRole(entities.InvestorRole) || actor.HasRole(entities.AdminRole) {
		return nil
	}

	p, err := s.s.GetProfile(ctx, actor.ID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return service.ErrForbidden
		}
		return fmt.Errorf("failed to get profile: %w", err)
	}

	if p.Kind != entities.InvestorProfile {
		return service.ErrForbidden
	}

	return nil
}

func validateTargetKind(t entities.TargetType, kind entities.InteractionKind) error {
	switch kind {
	case entities.LikeInteraction:
		return nil
	case entities.CrownInteraction, entities.ShareInteraction:
		if t == entities.CommentTarget {
			return fmt.Errorf("%w: %s is not allowed on comments", service.ErrInvalidArgument, kind)
		}
		return nil
	}

	return fmt.Errorf("%w: unknown interaction kind %q", service.ErrInvalidArgument, kind)
}
