package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/sirupsen/logrus"

	"github.com/venturelink/core/internal/entities"
	"github.com/venturelink/core/internal/service"
)

const maxLimit = 100
const defaultLimit = 20

// Error ...
// swagger:model
type Error struct {
	Error string `json:"error"`
}

// ToggleResponse ...
// swagger:model
type ToggleResponse struct {
	Applied bool   `json:"applied"`
	Count   uint32 `json:"count"`
}

// Counters ...
type Counters struct {
	Likes    uint32 `json:"likes"`
	Comments uint32 `json:"comments"`
	Crowns   uint32 `json:"crowns"`
	Shares   uint32 `json:"shares"`
}

// EngagementResponse ...
// swagger:model
type EngagementResponse struct {
	Counters Counters `json:"counters"`
	// Meta duplicates the counters in the nested map shape the legacy mobile
	// clients read. Derived, never stored.
	Meta map[string]uint32 `json:"meta"`
}

// Interaction ...
type Interaction struct {
	Kind       string `json:"kind"`
	Actor      string `json:"actor"`
	TargetType string `json:"targetType"`
	TargetID   string `json:"targetId"`
	CreatedAt  uint64 `json:"createdAt"`
}

// Profile ...
type Profile struct {
	ID          string   `json:"id"`
	Kind        string   `json:"kind"`
	DisplayName string   `json:"displayName"`
	Verified    bool     `json:"verified"`
	Counters    Counters `json:"counters"`
	CreatedAt   uint64   `json:"createdAt"`
}

// Post ...
type Post struct {
	ID        string   `json:"id"`
	Owner     string   `json:"owner"`
	Title     string   `json:"title"`
	Text      string   `json:"text"`
	Counters  Counters `json:"counters"`
	CreatedAt uint64   `json:"createdAt"`
}

// Comment ...
type Comment struct {
	ID         string  `json:"id"`
	TargetType string  `json:"targetType"`
	TargetID   string  `json:"targetId"`
	Author     string  `json:"author"`
	Text       string  `json:"text"`
	ParentID   *string `json:"parentId,omitempty"`
	Likes      uint32  `json:"likes"`
	CreatedAt  uint64  `json:"createdAt"`
}

// CommentThread ...
type CommentThread struct {
	Comment
	Replies []Comment `json:"replies"`
}

// VerificationRequest ...
// swagger:model
type VerificationRequest struct {
	ID          string            `json:"id"`
	UserID      string            `json:"userId"`
	Role        string            `json:"role"`
	Status      string            `json:"status"`
	Meta        map[string]string `json:"meta,omitempty"`
	RequestedAt uint64            `json:"requestedAt"`
	DecidedAt   *uint64           `json:"decidedAt,omitempty"`
	AdminID     *string           `json:"adminId,omitempty"`
}

// VerificationDocument ...
type VerificationDocument struct {
	ID         string  `json:"id"`
	UserID     string  `json:"userId"`
	DocType    string  `json:"docType"`
	URL        string  `json:"url"`
	Status     string  `json:"status"`
	Notes      string  `json:"notes,omitempty"`
	ReviewedBy *string `json:"reviewedBy,omitempty"`
	ReviewedAt *uint64 `json:"reviewedAt,omitempty"`
	CreatedAt  uint64  `json:"createdAt"`
}

// AuditEntry ...
type AuditEntry struct {
	ID         string            `json:"id"`
	Actor      string            `json:"actor"`
	Action     string            `json:"action"`
	TargetType string            `json:"targetType"`
	TargetID   string            `json:"targetId"`
	Data       map[string]string `json:"data,omitempty"`
	CreatedAt  uint64            `json:"createdAt"`
}

// CreateProfileRequest ...
type CreateProfileRequest struct {
	Kind        string `json:"kind"`
	DisplayName string `json:"displayName"`
}

// CreatePostRequest ...
type CreatePostRequest struct {
	Title string `json:"title"`
	Text  string `json:"text"`
}

// CreateCommentRequest ...
type CreateCommentRequest struct {
	Text     string  `json:"text"`
	ParentID *string `json:"parentId,omitempty"`
}

// SubmitVerificationRequest ...
type SubmitVerificationRequest struct {
	Role string `json:"role"`
}

// AttachDocumentRequest ...
type AttachDocumentRequest struct {
	DocType string `json:"docType"`
	URL     string `json:"url"`
}

// ApproveRequest ...
type ApproveRequest struct {
	Notes string `json:"notes"`
}

// RejectRequest ...
type RejectRequest struct {
	Reason string `json:"reason"`
}

func writeOK(w http.ResponseWriter, status int, v interface{}) {
	data, _ := json.Marshal(v)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write(data) // nolint:errcheck
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeOK(w, status, Error{Error: message})
}

func writeInternalError(ctx context.Context, w http.ResponseWriter, message string) {
	logrus.WithField("request_id", middleware.GetReqID(ctx)).Error(message)
	writeError(w, http.StatusInternalServerError, "internal error")
}

// writeServiceError maps the service error taxonomy onto http statuses.
func writeServiceError(ctx context.Context, w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, service.ErrNotFound):
		writeError(w, http.StatusNotFound, "not found")
	case errors.Is(err, service.ErrForbidden):
		writeError(w, http.StatusForbidden, "forbidden")
	case errors.Is(err, service.ErrConflict):
		writeError(w, http.StatusConflict, "conflict")
	case errors.Is(err, service.ErrInvalidArgument):
		writeError(w, http.StatusBadRequest, err.Error())
	default:
		writeInternalError(ctx, w, err.Error())
	}
}

func toAPICounters(c entities.CounterBag) Counters {
	return Counters{
		Likes:    c.Likes,
		Comments: c.Comments,
		Crowns:   c.Crowns,
		Shares:   c.Shares,
	}
}

func toLegacyMeta(c entities.CounterBag) map[string]uint32 {
	return map[string]uint32{
		"likes":    c.Likes,
		"comments": c.Comments,
		"crowns":   c.Crowns,
		"shares":   c.Shares,
	}
}

func toAPIInteraction(i *entities.Interaction) Interaction {
	return Interaction{
		Kind:       string(i.Kind),
		Actor:      i.Actor.String(),
		TargetType: string(i.Target.Type),
		TargetID:   i.Target.ID.String(),
		CreatedAt:  uint64(i.CreatedAt.Unix()),
	}
}

func toAPIProfile(p *entities.Profile) Profile {
	return Profile{
		ID:          p.ID.String(),
		Kind:        string(p.Kind),
		DisplayName: p.DisplayName,
		Verified:    p.Verified,
		Counters:    toAPICounters(p.Counters),
		CreatedAt:   uint64(p.CreatedAt.Unix()),
	}
}

func toAPIPost(p *entities.Post) Post {
	return Post{
		ID:        p.ID.String(),
		Owner:     p.Owner.String(),
		Title:     p.Title,
		Text:      p.Text,
		Counters:  toAPICounters(p.Counters),
		CreatedAt: uint64(p.CreatedAt.Unix()),
	}
}

func toAPIComment(c *entities.Comment) Comment {
	out := Comment{
		ID:         c.ID.String(),
		TargetType: string(c.Target.Type),
		TargetID:   c.Target.ID.String(),
		Author:     c.Author.String(),
		Text:       c.Text,
		Likes:      c.Likes,
		CreatedAt:  uint64(c.CreatedAt.Unix()),
	}

	if c.ParentID != nil {
		s := c.ParentID.String()
		out.ParentID = &s
	}

	return out
}

func toAPIVerificationRequest(r *entities.VerificationRequest) VerificationRequest {
	out := VerificationRequest{
		ID:          r.ID.String(),
		UserID:      r.UserID.String(),
		Role:        string(r.Role),
		Status:      string(r.Status),
		Meta:        r.Meta,
		RequestedAt: uint64(r.RequestedAt.Unix()),
	}

	if r.DecidedAt != nil {
		t := uint64(r.DecidedAt.Unix())
		out.DecidedAt = &t
	}

	if r.AdminID != nil {
		s := r.AdminID.String()
		out.AdminID = &s
	}

	return out
}

func toAPIVerificationDocument(d *entities.VerificationDocument) VerificationDocument {
	out := VerificationDocument{
		ID:        d.ID.String(),
		UserID:    d.UserID.String(),
		DocType:   d.DocType,
		URL:       d.URL,
		Status:    string(d.Status),
		Notes:     d.Notes,
		CreatedAt: uint64(d.CreatedAt.Unix()),
	}

	if d.ReviewedBy != nil {
		s := d.ReviewedBy.String()
		out.ReviewedBy = &s
	}

	if d.ReviewedAt != nil {
		t := uint64(d.ReviewedAt.Unix())
		out.ReviewedAt = &t
	}

	return out
}

func toAPIAuditEntry(e *entities.AuditEntry) AuditEntry {
	return AuditEntry{
		ID:         e.ID.String(),
		Actor:      e.Actor.String(),
		Action:     e.Action,
		TargetType: e.TargetType,
		TargetID:   e.TargetID,
		Data:       e.Data,
		CreatedAt:  uint64(e.CreatedAt.Unix()),
	}
}
