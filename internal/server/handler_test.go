package server

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/venturelink/core/internal/entities"
	"github.com/venturelink/core/internal/service"
	"github.com/venturelink/core/internal/service/mock"
	"github.com/venturelink/core/internal/storage"
)

func newTestRouter(t *testing.T) (chi.Router, *mock.MockService) {
	ctrl := gomock.NewController(t)
	s := mock.NewMockService(ctrl)

	router := chi.NewMux()
	SetupRouter(s, router, time.Second)

	return router, s
}

func doRequest(t *testing.T, router chi.Router, method, target, body string, actor uuid.UUID, roles string) *httptest.ResponseRecorder {
	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("{}")
	} else {
		reader = strings.NewReader(body)
	}

	r, err := http.NewRequest(method, target, reader)
	require.NoError(t, err)

	if actor != uuid.Nil {
		r.Header.Set("X-Actor-ID", actor.String())
	}
	if roles != "" {
		r.Header.Set("X-Actor-Roles", roles)
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, r)

	return w
}

func Test_toggle(t *testing.T) {
	router, s := newTestRouter(t)

	actor := uuid.New()
	target := uuid.New()

	s.EXPECT().Toggle(
		gomock.Any(),
		entities.Actor{ID: actor},
		entities.TargetID{Type: entities.PostTarget, ID: target},
		entities.LikeInteraction,
		service.ToggleOn,
	).Return(&service.ToggleResult{Applied: true, NewCount: 6}, nil)

	w := doRequest(t, router, http.MethodPost, fmt.Sprintf("/api/likes/post/%s", target), "", actor, "")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"applied": true, "count": 6}`, w.Body.String())
}

func Test_toggle_off(t *testing.T) {
	router, s := newTestRouter(t)

	actor := uuid.New()
	target := uuid.New()

	s.EXPECT().Toggle(
		gomock.Any(),
		gomock.Any(),
		entities.TargetID{Type: entities.ProfileTarget, ID: target},
		entities.CrownInteraction,
		service.ToggleOff,
	).Return(&service.ToggleResult{Applied: false, NewCount: 3}, nil)

	w := doRequest(t, router, http.MethodDelete, fmt.Sprintf("/api/crowns/profile/%s", target), "", actor, "investor")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"applied": false, "count": 3}`, w.Body.String())
}

func Test_toggle_errors(t *testing.T) {
	router, s := newTestRouter(t)

	actor := uuid.New()
	target := uuid.New()

	w := doRequest(t, router, http.MethodPost, fmt.Sprintf("/api/likes/channel/%s", target), "", actor, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doRequest(t, router, http.MethodPost, "/api/likes/post/not-a-uuid", "", actor, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)

	s.EXPECT().Toggle(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, service.ErrNotFound)
	w = doRequest(t, router, http.MethodPost, fmt.Sprintf("/api/likes/post/%s", target), "", actor, "")
	assert.Equal(t, http.StatusNotFound, w.Code)

	s.EXPECT().Toggle(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, service.ErrForbidden)
	w = doRequest(t, router, http.MethodPost, fmt.Sprintf("/api/crowns/post/%s", target), "", actor, "")
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func Test_toggle_unauthenticated(t *testing.T) {
	router, _ := newTestRouter(t)

	w := doRequest(t, router, http.MethodPost, fmt.Sprintf("/api/likes/post/%s", uuid.New()), "", uuid.Nil, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func Test_getEngagement(t *testing.T) {
	router, s := newTestRouter(t)

	actor := uuid.New()
	target := uuid.New()

	s.EXPECT().GetEngagement(gomock.Any(), entities.TargetID{Type: entities.PostTarget, ID: target}).
		Return(&entities.CounterBag{Likes: 1, Comments: 2, Crowns: 3, Shares: 4}, nil)

	w := doRequest(t, router, http.MethodGet, fmt.Sprintf("/api/post/%s/engagement", target), "", actor, "")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `
{
	"counters": {"likes": 1, "comments": 2, "crowns": 3, "shares": 4},
	"meta": {"likes": 1, "comments": 2, "crowns": 3, "shares": 4}
}`, w.Body.String())
}

func Test_createComment(t *testing.T) {
	router, s := newTestRouter(t)

	timestamp := time.Unix(100, 0)

	actor := uuid.New()
	target := uuid.New()
	commentID := uuid.New()

	s.EXPECT().CreateComment(
		gomock.Any(),
		gomock.Any(),
		entities.TargetID{Type: entities.PostTarget, ID: target},
		"hello",
		nil,
	).Return(&entities.Comment{
		ID:        commentID,
		Target:    entities.TargetID{Type: entities.PostTarget, ID: target},
		Author:    actor,
		Text:      "hello",
		CreatedAt: timestamp,
	}, nil)

	w := doRequest(t, router, http.MethodPost, fmt.Sprintf("/api/post/%s/comments", target), `{"text": "hello"}`, actor, "")

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.JSONEq(t, fmt.Sprintf(`
{
	"id": "%s",
	"targetType": "post",
	"targetId": "%s",
	"author": "%s",
	"text": "hello",
	"likes": 0,
	"createdAt": 100
}`, commentID, target, actor), w.Body.String())
}

func Test_createComment_invalidParent(t *testing.T) {
	router, _ := newTestRouter(t)

	w := doRequest(t, router, http.MethodPost,
		fmt.Sprintf("/api/post/%s/comments", uuid.New()),
		`{"text": "hi", "parentId": "nope"}`, uuid.New(), "")

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func Test_listComments(t *testing.T) {
	router, s := newTestRouter(t)

	timestamp := time.Unix(200, 0)

	actor := uuid.New()
	target := uuid.New()
	topID := uuid.New()
	replyID := uuid.New()

	s.EXPECT().ListComments(gomock.Any(), entities.TargetID{Type: entities.PostTarget, ID: target}, uint16(50), uint32(10)).
		Return([]*service.CommentThread{
			{
				Comment: &entities.Comment{
					ID:        topID,
					Target:    entities.TargetID{Type: entities.PostTarget, ID: target},
					Author:    actor,
					Text:      "top",
					Likes:     2,
					CreatedAt: timestamp,
				},
				Replies: []*entities.Comment{
					{
						ID:        replyID,
						Target:    entities.TargetID{Type: entities.PostTarget, ID: target},
						Author:    actor,
						Text:      "reply",
						ParentID:  &topID,
						CreatedAt: timestamp,
					},
				},
			},
		}, nil)

	w := doRequest(t, router, http.MethodGet, fmt.Sprintf("/api/post/%s/comments?limit=50&skip=10", target), "", actor, "")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, fmt.Sprintf(`
[
	{
		"id": "%s",
		"targetType": "post",
		"targetId": "%s",
		"author": "%s",
		"text": "top",
		"likes": 2,
		"createdAt": 200,
		"replies": [
			{
				"id": "%s",
				"targetType": "post",
				"targetId": "%s",
				"author": "%s",
				"text": "reply",
				"parentId": "%s",
				"likes": 0,
				"createdAt": 200
			}
		]
	}
]`, topID, target, actor, replyID, target, actor, topID), w.Body.String())
}

func Test_listComments_limitTooBig(t *testing.T) {
	router, _ := newTestRouter(t)

	w := doRequest(t, router, http.MethodGet,
		fmt.Sprintf("/api/post/%s/comments?limit=1000", uuid.New()), "", uuid.New(), "")

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func Test_submitVerification(t *testing.T) {
	router, s := newTestRouter(t)

	timestamp := time.Unix(300, 0)

	actor := uuid.New()
	requestID := uuid.New()

	s.EXPECT().SubmitVerification(gomock.Any(), gomock.Any(), entities.InvestorRole).
		Return(&entities.VerificationRequest{
			ID:          requestID,
			UserID:      actor,
			Role:        entities.InvestorRole,
			Status:      entities.VerificationRequested,
			RequestedAt: timestamp,
		}, nil)

	w := doRequest(t, router, http.MethodPost, "/api/verification", `{"role": "investor"}`, actor, "")

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.JSONEq(t, fmt.Sprintf(`
{
	"id": "%s",
	"userId": "%s",
	"role": "investor",
	"status": "requested",
	"requestedAt": 300
}`, requestID, actor), w.Body.String())
}

func Test_submitVerification_conflict(t *testing.T) {
	router, s := newTestRouter(t)

	s.EXPECT().SubmitVerification(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, service.ErrConflict)

	w := doRequest(t, router, http.MethodPost, "/api/verification", `{"role": "investor"}`, uuid.New(), "")
	assert.Equal(t, http.StatusConflict, w.Code)
}

func Test_approve(t *testing.T) {
	router, s := newTestRouter(t)

	admin := uuid.New()
	requestID := uuid.New()

	s.EXPECT().Approve(gomock.Any(), entities.Actor{ID: admin, Roles: []entities.Role{entities.AdminRole}}, requestID, "all good").Return(nil)

	w := doRequest(t, router, http.MethodPut,
		fmt.Sprintf("/api/admin/verification/%s/approve", requestID),
		`{"notes": "all good"}`, admin, "admin")

	assert.Equal(t, http.StatusNoContent, w.Code)
}

func Test_approve_nonAdmin(t *testing.T) {
	router, _ := newTestRouter(t)

	w := doRequest(t, router, http.MethodPut,
		fmt.Sprintf("/api/admin/verification/%s/approve", uuid.New()),
		`{"notes": ""}`, uuid.New(), "investor")

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func Test_reject(t *testing.T) {
	router, s := newTestRouter(t)

	admin := uuid.New()
	requestID := uuid.New()

	s.EXPECT().Reject(gomock.Any(), gomock.Any(), requestID, "bad docs").Return(service.ErrConflict)

	w := doRequest(t, router, http.MethodPut,
		fmt.Sprintf("/api/admin/verification/%s/reject", requestID),
		`{"reason": "bad docs"}`, admin, "admin")

	assert.Equal(t, http.StatusConflict, w.Code)
}

func Test_listAuditLogs(t *testing.T) {
	router, s := newTestRouter(t)

	timestamp := time.Unix(400, 0)

	admin := uuid.New()
	entryID := uuid.New()
	targetID := uuid.New()

	s.EXPECT().ListAuditEntries(gomock.Any(), gomock.Any(), gomock.Any()).
		Do(func(_ context.Context, _ entities.Actor, p *storage.ListAuditEntriesParams) {
			assert.Equal(t, "approve", *p.Action)
			assert.Equal(t, "verification_request", *p.TargetType)
			assert.EqualValues(t, 10, p.Limit)
			assert.EqualValues(t, 5, p.Skip)
		}).
		Return([]*entities.AuditEntry{
			{
				ID:         entryID,
				Actor:      admin,
				Action:     "approve",
				TargetType: "verification_request",
				TargetID:   targetID.String(),
				Data:       map[string]string{"user": "u"},
				CreatedAt:  timestamp,
			},
		}, nil)

	w := doRequest(t, router, http.MethodGet,
		"/api/admin/audit-logs?action=approve&targetType=verification_request&limit=10&skip=5",
		"", admin, "admin")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, fmt.Sprintf(`
[
	{
		"id": "%s",
		"actor": "%s",
		"action": "approve",
		"targetType": "verification_request",
		"targetId": "%s",
		"data": {"user": "u"},
		"createdAt": 400
	}
]`, entryID, admin, targetID), w.Body.String())
}

func Test_getProfile(t *testing.T) {
	router, s := newTestRouter(t)

	timestamp := time.Unix(500, 0)

	actor := uuid.New()
	profileID := uuid.New()

	s.EXPECT().GetProfile(gomock.Any(), profileID).Return(&entities.Profile{
		ID:          profileID,
		Kind:        entities.StartupProfile,
		DisplayName: "Acme",
		Verified:    true,
		Counters:    entities.CounterBag{Crowns: 7},
		CreatedAt:   timestamp,
	}, nil)

	w := doRequest(t, router, http.MethodGet, fmt.Sprintf("/api/profiles/%s", profileID), "", actor, "")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, fmt.Sprintf(`
{
	"id": "%s",
	"kind": "startup",
	"displayName": "Acme",
	"verified": true,
	"counters": {"likes": 0, "comments": 0, "crowns": 7, "shares": 0},
	"createdAt": 500
}`, profileID), w.Body.String())
}
