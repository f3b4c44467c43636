package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/go-chi/chi"
	"github.com/google/uuid"

	"github.com/venturelink/core/internal/entities"
	mm "github.com/venturelink/core/internal/middleware"
	"github.com/venturelink/core/internal/service"
	"github.com/venturelink/core/internal/storage"
)

var errInvalidRequest = errors.New("invalid request")

func (s server) toggle(kind entities.InteractionKind, intent service.ToggleIntent) http.HandlerFunc {
	// swagger:operation POST /{kind}s/{targetType}/{targetID} Engagement Toggle
	//
	// Toggles an interaction on or off. Safe to call repeatedly: a second
	// toggle-on (or toggle-off) is a no-op with applied=false.
	//
	// ---
	// produces:
	// - application/json
	// responses:
	//   '200':
	//     description: Toggle result
	//     schema:
	//       "$ref": "#/definitions/ToggleResponse"
	//   '403':
	//     description: crown by a non investor-capable actor
	//   '404':
	//     description: target not found

	return func(w http.ResponseWriter, r *http.Request) {
		actor := actorFromRequest(r)

		target, err := extractTarget(r)
		if err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}

		res, err := s.s.Toggle(r.Context(), actor, target, kind, intent)
		if err != nil {
			writeServiceError(r.Context(), w, err)
			return
		}

		writeOK(w, http.StatusOK, ToggleResponse{Applied: res.Applied, Count: res.NewCount})
	}
}

func (s server) listInteractions(kind entities.InteractionKind) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		target, err := extractTarget(r)
		if err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}

		ii, err := s.s.ListInteractionsByTarget(r.Context(), target, kind)
		if err != nil {
			writeServiceError(r.Context(), w, err)
			return
		}

		out := make([]Interaction, len(ii))
		for i, v := range ii {
			out[i] = toAPIInteraction(v)
		}

		writeOK(w, http.StatusOK, out)
	}
}

func (s server) getEngagement(w http.ResponseWriter, r *http.Request) {
	// swagger:operation GET /{targetType}/{targetID}/engagement Engagement GetEngagement
	//
	// Returns the target's counter bag. The meta map mirrors the counters in
	// the shape legacy clients expect.
	//
	// ---
	// produces:
	// - application/json
	// responses:
	//   '200':
	//     description: Counters
	//     schema:
	//       "$ref": "#/definitions/EngagementResponse"
	//   '404':
	//     description: target not found

	target, err := extractTarget(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	c, err := s.s.GetEngagement(r.Context(), target)
	if err != nil {
		writeServiceError(r.Context(), w, err)
		return
	}

	writeOK(w, http.StatusOK, EngagementResponse{
		Counters: toAPICounters(*c),
		Meta:     toLegacyMeta(*c),
	})
}

func (s server) listActorInteractions(w http.ResponseWriter, r *http.Request) {
	actorID, err := uuid.Parse(chi.URLParam(r, "actorID"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid actor id")
		return
	}

	kind := entities.InteractionKind(r.URL.Query().Get("kind"))
	switch kind {
	case entities.LikeInteraction, entities.CrownInteraction, entities.ShareInteraction:
	default:
		writeError(w, http.StatusBadRequest, "invalid kind")
		return
	}

	ii, err := s.s.ListInteractionsByActor(r.Context(), actorID, kind)
	if err != nil {
		writeServiceError(r.Context(), w, err)
		return
	}

	out := make([]Interaction, len(ii))
	for i, v := range ii {
		out[i] = toAPIInteraction(v)
	}

	writeOK(w, http.StatusOK, out)
}

func (s server) createProfile(w http.ResponseWriter, r *http.Request) {
	var req CreateProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	p, err := s.s.CreateProfile(r.Context(), actorFromRequest(r), entities.ProfileKind(req.Kind), req.DisplayName)
	if err != nil {
		writeServiceError(r.Context(), w, err)
		return
	}

	writeOK(w, http.StatusCreated, toAPIProfile(p))
}

func (s server) getProfile(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "profileID"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid profile id")
		return
	}

	p, err := s.s.GetProfile(r.Context(), id)
	if err != nil {
		writeServiceError(r.Context(), w, err)
		return
	}

	writeOK(w, http.StatusOK, toAPIProfile(p))
}

func (s server) createPost(w http.ResponseWriter, r *http.Request) {
	var req CreatePostRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	p, err := s.s.CreatePost(r.Context(), actorFromRequest(r), req.Title, req.Text)
	if err != nil {
		writeServiceError(r.Context(), w, err)
		return
	}

	writeOK(w, http.StatusCreated, toAPIPost(p))
}

func (s server) getPost(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "postID"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid post id")
		return
	}

	p, err := s.s.GetPost(r.Context(), id)
	if err != nil {
		writeServiceError(r.Context(), w, err)
		return
	}

	writeOK(w, http.StatusOK, toAPIPost(p))
}

func (s server) createComment(w http.ResponseWriter, r *http.Request) {
	target, err := extractTarget(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	var req CreateCommentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	var parentID *uuid.UUID
	if req.ParentID != nil {
		id, err := uuid.Parse(*req.ParentID)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid parent id")
			return
		}
		parentID = &id
	}

	c, err := s.s.CreateComment(r.Context(), actorFromRequest(r), target, req.Text, parentID)
	if err != nil {
		writeServiceError(r.Context(), w, err)
		return
	}

	writeOK(w, http.StatusCreated, toAPIComment(c))
}

func (s server) deleteComment(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "commentID"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid comment id")
		return
	}

	if err := s.s.DeleteComment(r.Context(), actorFromRequest(r), id); err != nil {
		writeServiceError(r.Context(), w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (s server) listComments(w http.ResponseWriter, r *http.Request) {
	target, err := extractTarget(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	limit, skip, err := extractLimitSkip(r.URL.Query())
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	tt, err := s.s.ListComments(r.Context(), target, limit, skip)
	if err != nil {
		writeServiceError(r.Context(), w, err)
		return
	}

	out := make([]CommentThread, len(tt))
	for i, t := range tt {
		out[i] = CommentThread{Comment: toAPIComment(t.Comment)}
		out[i].Replies = make([]Comment, len(t.Replies))
		for j, v := range t.Replies {
			out[i].Replies[j] = toAPIComment(v)
		}
	}

	writeOK(w, http.StatusOK, out)
}

func (s server) submitVerification(w http.ResponseWriter, r *http.Request) {
	// swagger:operation POST /verification Verification SubmitVerification
	//
	// Submits an identity-verification request for the calling actor. Only one
	// non-terminal request per role is allowed at a time.
	//
	// ---
	// produces:
	// - application/json
	// responses:
	//   '201':
	//     description: Created request
	//     schema:
	//       "$ref": "#/definitions/VerificationRequest"
	//   '409':
	//     description: a live request already exists

	var req SubmitVerificationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	v, err := s.s.SubmitVerification(r.Context(), actorFromRequest(r), entities.Role(req.Role))
	if err != nil {
		writeServiceError(r.Context(), w, err)
		return
	}

	writeOK(w, http.StatusCreated, toAPIVerificationRequest(v))
}

func (s server) getVerificationStatus(w http.ResponseWriter, r *http.Request) {
	rr, err := s.s.GetVerificationStatus(r.Context(), actorFromRequest(r))
	if err != nil {
		writeServiceError(r.Context(), w, err)
		return
	}

	out := make([]VerificationRequest, len(rr))
	for i, v := range rr {
		out[i] = toAPIVerificationRequest(v)
	}

	writeOK(w, http.StatusOK, out)
}

func (s server) attachDocument(w http.ResponseWriter, r *http.Request) {
	var req AttachDocumentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	d, err := s.s.AttachDocument(r.Context(), actorFromRequest(r), req.DocType, req.URL)
	if err != nil {
		writeServiceError(r.Context(), w, err)
		return
	}

	writeOK(w, http.StatusCreated, toAPIVerificationDocument(d))
}

func (s server) startReview(w http.ResponseWriter, r *http.Request) {
	id, err := extractRequestID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := s.s.StartReview(r.Context(), actorFromRequest(r), id); err != nil {
		writeServiceError(r.Context(), w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (s server) approve(w http.ResponseWriter, r *http.Request) {
	// swagger:operation PUT /admin/verification/{requestID}/approve Verification Approve
	//
	// Approves the verification request: marks the user verified, approves all
	// pending documents and records an audit entry. A terminal request yields 409.
	//
	// ---
	// produces:
	// - application/json
	// responses:
	//   '204':
	//     description: approved
	//   '404':
	//     description: request not found
	//   '409':
	//     description: request already decided

	id, err := extractRequestID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	var req ApproveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := s.s.Approve(r.Context(), actorFromRequest(r), id, req.Notes); err != nil {
		writeServiceError(r.Context(), w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (s server) reject(w http.ResponseWriter, r *http.Request) {
	id, err := extractRequestID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	var req RejectRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := s.s.Reject(r.Context(), actorFromRequest(r), id, req.Reason); err != nil {
		writeServiceError(r.Context(), w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (s server) listAuditLogs(w http.ResponseWriter, r *http.Request) {
	// swagger:operation GET /admin/audit-logs Admin ListAuditLogs
	//
	// Returns audit entries, newest first, optionally filtered by action and
	// target type.
	//
	// ---
	// produces:
	// - application/json
	// parameters:
	// - name: action
	//   in: query
	//   required: false
	// - name: targetType
	//   in: query
	//   required: false
	// - name: limit
	//   in: query
	//   required: false
	//   default: 20
	//   maximum: 100
	// - name: skip
	//   in: query
	//   required: false
	// responses:
	//   '200':
	//     description: Audit entries
	//     schema:
	//       type: array
	//       items:
	//         "$ref": "#/definitions/AuditEntry"

	limit, skip, err := extractLimitSkip(r.URL.Query())
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	params := storage.ListAuditEntriesParams{
		Limit: limit,
		Skip:  skip,
	}

	if v := r.URL.Query().Get("action"); v != "" {
		params.Action = &v
	}

	if v := r.URL.Query().Get("targetType"); v != "" {
		params.TargetType = &v
	}

	ee, err := s.s.ListAuditEntries(r.Context(), actorFromRequest(r), &params)
	if err != nil {
		writeServiceError(r.Context(), w, err)
		return
	}

	out := make([]AuditEntry, len(ee))
	for i, v := range ee {
		out[i] = toAPIAuditEntry(v)
	}

	writeOK(w, http.StatusOK, out)
}

func actorFromRequest(r *http.Request) entities.Actor {
	actor, _ := mm.GetActor(r.Context())
	return actor
}

func extractTarget(r *http.Request) (entities.TargetID, error) {
	t := entities.TargetType(chi.URLParam(r, "targetType"))

	switch t {
	case entities.PostTarget, entities.ProfileTarget, entities.CommentTarget:
	default:
		return entities.TargetID{}, fmt.Errorf("%w: invalid target type", errInvalidRequest)
	}

	id, err := uuid.Parse(chi.URLParam(r, "targetID"))
	if err != nil {
		return entities.TargetID{}, fmt.Errorf("%w: invalid target id", errInvalidRequest)
	}

	return entities.TargetID{Type: t, ID: id}, nil
}

func extractRequestID(r *http.Request) (uuid.UUID, error) {
	id, err := uuid.Parse(chi.URLParam(r, "requestID"))
	if err != nil {
		return uuid.UUID{}, fmt.Errorf("%w: invalid request id", errInvalidRequest)
	}

	return id, nil
}

func extractLimitSkip(q url.Values) (uint16, uint32, error) {
	limit := uint16(defaultLimit)
	var skip uint32

	if s := q.Get("limit"); s != "" {
		v, err := strconv.ParseUint(s, 10, 64)
		if err != nil {
			return 0, 0, fmt.Errorf("%w: failed to parse limit", errInvalidRequest)
		}

		if v > maxLimit {
			return 0, 0, fmt.Errorf("%w: limit is too big", errInvalidRequest)
		}

		limit = uint16(v)
	}

	if s := q.Get("skip"); s != "" {
		v, err := strconv.ParseUint(s, 10, 32)
		if err != nil {
			return 0, 0, fmt.Errorf("%w: failed to parse skip", errInvalidRequest)
		}

		skip = uint32(v)
	}

	return limit, skip, nil
}
