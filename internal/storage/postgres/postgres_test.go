//+build integration

package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	m "github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/venturelink/core/internal/entities"
	"github.com/venturelink/core/internal/service"
	"github.com/venturelink/core/internal/service/impl"
	"github.com/venturelink/core/internal/storage"
)

var (
	db  *sql.DB
	ctx = context.Background()
	s   storage.Storage
)

func TestMain(m *testing.M) {
	shutdown := setup()

	s = New(db)

	code := m.Run()
	shutdown()
	os.Exit(code)
}

func setup() func() {
	req := testcontainers.ContainerRequest{
		Image:        "postgres:12",
		Env:          map[string]string{"POSTGRES_PASSWORD": "root"},
		ExposedPorts: []string{"5432/tcp"},
		WaitingFor:   wait.ForListeningPort("5432/tcp"),
	}
	c, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
	})
	if err != nil {
		logrus.WithError(err).Fatalf("failed to create container")
	}

	if err := c.Start(ctx); err != nil {
		logrus.WithError(err).Fatal("failed to start container")
	}

	host, err := c.Host(ctx)
	if err != nil {
		logrus.WithError(err).Fatal("failed to get host")
	}

	port, err := c.MappedPort(ctx, "5432")
	if err != nil {
		logrus.WithError(err).Fatal("failed to map port")
	}

	dsn := fmt.Sprintf("host=%s port=%d user=postgres password=root sslmode=disable", host, port.Int())

	db, err = sql.Open("postgres", dsn)
	if err != nil {
		logrus.WithError(err).Fatal("failed to open connection")
	}

	if err := db.Ping(); err != nil {
		logrus.WithError(err).Fatal("failed to ping postgres")
	}

	shutdownFn := func() {
		if c != nil {
			c.Terminate(ctx)
		}
	}

	migrate("postgres", "root", host, "postgres", port.Int())

	return shutdownFn
}

func migrate(username, password, hostname, dbname string, port int) {
	_, currFile, _, ok := runtime.Caller(0)
	if !ok {
		logrus.Fatal("failed to get current file location")
	}

	migrations := filepath.Join(currFile, "../../../../scripts/migrations/postgres/")

	migrator, err := m.New(
		fmt.Sprintf("file://%s", migrations),
		fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
			username, password, hostname, port, dbname),
	)
	if err != nil {
		logrus.WithError(err).Fatal("failed to create migrator")
	}
	defer migrator.Close()

	if err := migrator.Up(); err != nil {
		logrus.WithError(err).Fatal("failed to migrate")
	}
}

func cleanup(t *testing.T) {
	_, err := db.ExecContext(ctx, `DELETE FROM audit_log`)
	require.NoError(t, err)
	_, err = db.ExecContext(ctx, `DELETE FROM verification_document`)
	require.NoError(t, err)
	_, err = db.ExecContext(ctx, `DELETE FROM verification_request`)
	require.NoError(t, err)
	_, err = db.ExecContext(ctx, `DELETE FROM interaction`)
	require.NoError(t, err)
	_, err = db.ExecContext(ctx, `DELETE FROM comment`)
	require.NoError(t, err)
	_, err = db.ExecContext(ctx, `DELETE FROM post`)
	require.NoError(t, err)
	_, err = db.ExecContext(ctx, `DELETE FROM profile`)
	require.NoError(t, err)
}

func createTestProfile(t *testing.T, kind entities.ProfileKind) *entities.Profile {
	p := &entities.Profile{
		ID:          uuid.New(),
		Kind:        kind,
		DisplayName: "name",
		CreatedAt:   time.Now().UTC().Truncate(time.Millisecond),
	}
	require.NoError(t, s.CreateProfile(ctx, p))
	return p
}

func createTestPost(t *testing.T, owner uuid.UUID) *entities.Post {
	p := &entities.Post{
		ID:        uuid.New(),
		Owner:     owner,
		Title:     "title",
		Text:      "text",
		CreatedAt: time.Now().UTC().Truncate(time.Millisecond),
	}
	require.NoError(t, s.CreatePost(ctx, p))
	return p
}

func TestPg_InTx(t *testing.T) {
	defer cleanup(t)

	require.NoError(t, s.InTx(ctx, func(tx storage.Storage) error {
		require.Equal(t, errBeginCalledWithinTx, tx.InTx(ctx, func(_ storage.Storage) error { return nil }))
		return nil
	}))

	// a failed callback rolls the write back
	id := uuid.New()
	err := s.InTx(ctx, func(tx storage.Storage) error {
		require.NoError(t, tx.CreateProfile(ctx, &entities.Profile{
			ID: id, Kind: entities.PersonalProfile, DisplayName: "n", CreatedAt: time.Now(),
		}))
		return errors.New("boom")
	})
	require.Error(t, err)

	_, err = s.GetProfile(ctx, id)
	require.True(t, errors.Is(err, storage.ErrNotFound))
}

func TestPg_CreateProfile(t *testing.T) {
	defer cleanup(t)

	p := createTestProfile(t, entities.StartupProfile)

	got, err := s.GetProfile(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, p.ID, got.ID)
	assert.Equal(t, entities.StartupProfile, got.Kind)
	assert.False(t, got.Verified)
	assert.Zero(t, got.Counters)

	require.True(t, errors.Is(s.CreateProfile(ctx, p), storage.ErrConflict))

	_, err = s.GetProfile(ctx, uuid.New())
	require.True(t, errors.Is(err, storage.ErrNotFound))
}

func TestPg_SetProfileVerified(t *testing.T) {
	defer cleanup(t)

	p := createTestProfile(t, entities.PersonalProfile)

	require.NoError(t, s.SetProfileVerified(ctx, p.ID, true))

	got, err := s.GetProfile(ctx, p.ID)
	require.NoError(t, err)
	assert.True(t, got.Verified)

	require.True(t, errors.Is(s.SetProfileVerified(ctx, uuid.New(), true), storage.ErrNotFound))
}

func TestPg_AddInteraction(t *testing.T) {
	defer cleanup(t)

	owner := createTestProfile(t, entities.PersonalProfile)
	post := createTestPost(t, owner.ID)

	target := entities.TargetID{Type: entities.PostTarget, ID: post.ID}
	i := &entities.Interaction{
		Kind:      entities.LikeInteraction,
		Actor:     owner.ID,
		Target:    target,
		CreatedAt: time.Now(),
	}

	inserted, err := s.AddInteraction(ctx, i)
	require.NoError(t, err)
	assert.True(t, inserted)

	// same tuple again is a silent no-op
	inserted, err = s.AddInteraction(ctx, i)
	require.NoError(t, err)
	assert.False(t, inserted)

	// same actor and target, different kind, is a distinct row
	i.Kind = entities.ShareInteraction
	inserted, err = s.AddInteraction(ctx, i)
	require.NoError(t, err)
	assert.True(t, inserted)

	removed, err := s.RemoveInteraction(ctx, entities.LikeInteraction, owner.ID, target)
	require.NoError(t, err)
	assert.True(t, removed)

	removed, err = s.RemoveInteraction(ctx, entities.LikeInteraction, owner.ID, target)
	require.NoError(t, err)
	assert.False(t, removed)
}

func TestPg_ToggleConcurrency(t *testing.T) {
	defer cleanup(t)

	owner := createTestProfile(t, entities.PersonalProfile)
	post := createTestPost(t, owner.ID)
	target := entities.TargetID{Type: entities.PostTarget, ID: post.ID}

	svc := impl.New(s, impl.Options{})
	actor := entities.Actor{ID: owner.ID}

	const workers = 8

	var applied int32
	errs := make(chan error, workers)

	var wg sync.WaitGroup
	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()

			res, err := svc.Toggle(ctx, actor, target, entities.LikeInteraction, service.ToggleOn)
			if err != nil {
				errs <- err
				return
			}

			if res.Applied {
				atomic.AddInt32(&applied, 1)
			}
		}()
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		require.NoError(t, err)
	}

	// exactly one of the racers wins: one ledger row, one increment
	assert.EqualValues(t, 1, applied)

	ii, err := s.ListInteractionsByTarget(ctx, target, entities.LikeInteraction)
	require.NoError(t, err)
	assert.Len(t, ii, 1)

	c, err := s.GetCounters(ctx, target)
	require.NoError(t, err)
	assert.EqualValues(t, 1, c.Likes)
}

func TestPg_ListInteractions(t *testing.T) {
	defer cleanup(t)

	owner := createTestProfile(t, entities.PersonalProfile)
	post := createTestPost(t, owner.ID)
	target := entities.TargetID{Type: entities.PostTarget, ID: post.ID}

	first := uuid.New()
	second := uuid.New()

	for i, actor := range []uuid.UUID{first, second} {
		_, err := s.AddInteraction(ctx, &entities.Interaction{
			Kind:      entities.LikeInteraction,
			Actor:     actor,
			Target:    target,
			CreatedAt: time.Now().Add(time.Duration(i) * time.Second),
		})
		require.NoError(t, err)
	}

	// newest first for a target
	ii, err := s.ListInteractionsByTarget(ctx, target, entities.LikeInteraction)
	require.NoError(t, err)
	require.Len(t, ii, 2)
	assert.Equal(t, second, ii[0].Actor)
	assert.Equal(t, first, ii[1].Actor)

	// oldest first for an actor
	ii, err = s.ListInteractionsByActor(ctx, first, entities.LikeInteraction)
	require.NoError(t, err)
	require.Len(t, ii, 1)
	assert.Equal(t, target, ii[0].Target)
}

func TestPg_AdjustCounter(t *testing.T) {
	defer cleanup(t)

	owner := createTestProfile(t, entities.PersonalProfile)
	post := createTestPost(t, owner.ID)
	target := entities.TargetID{Type: entities.PostTarget, ID: post.ID}

	n, err := s.AdjustCounter(ctx, target, storage.LikesCounter, 1)
	require.NoError(t, err)
	assert.EqualValues(t, 1, n)

	n, err = s.AdjustCounter(ctx, target, storage.LikesCounter, -1)
	require.NoError(t, err)
	assert.EqualValues(t, 0, n)

	// the floor holds even when the ledger and the counter have drifted
	n, err = s.AdjustCounter(ctx, target, storage.LikesCounter, -1)
	require.NoError(t, err)
	assert.EqualValues(t, 0, n)

	_, err = s.AdjustCounter(ctx, entities.TargetID{Type: entities.PostTarget, ID: uuid.New()}, storage.LikesCounter, 1)
	require.True(t, errors.Is(err, storage.ErrNotFound))

	_, err = s.AdjustCounter(ctx, entities.TargetID{Type: entities.CommentTarget, ID: uuid.New()}, storage.CrownsCounter, 1)
	require.Error(t, err)
}

func TestPg_GetCounters(t *testing.T) {
	defer cleanup(t)

	owner := createTestProfile(t, entities.PersonalProfile)
	post := createTestPost(t, owner.ID)
	target := entities.TargetID{Type: entities.PostTarget, ID: post.ID}

	_, err := s.AdjustCounter(ctx, target, storage.CrownsCounter, 2)
	require.NoError(t, err)

	c, err := s.GetCounters(ctx, target)
	require.NoError(t, err)
	assert.EqualValues(t, 2, c.Crowns)
	assert.Zero(t, c.Likes)

	_, err = s.GetCounters(ctx, entities.TargetID{Type: entities.ProfileTarget, ID: uuid.New()})
	require.True(t, errors.Is(err, storage.ErrNotFound))
}

func TestPg_Comments(t *testing.T) {
	defer cleanup(t)

	owner := createTestProfile(t, entities.PersonalProfile)
	post := createTestPost(t, owner.ID)
	target := entities.TargetID{Type: entities.PostTarget, ID: post.ID}

	top := &entities.Comment{
		ID:        uuid.New(),
		Target:    target,
		Author:    owner.ID,
		Text:      "top",
		CreatedAt: time.Now(),
	}
	require.NoError(t, s.CreateComment(ctx, top))

	reply := &entities.Comment{
		ID:        uuid.New(),
		Target:    target,
		Author:    owner.ID,
		Text:      "reply",
		ParentID:  &top.ID,
		CreatedAt: time.Now().Add(time.Second),
	}
	require.NoError(t, s.CreateComment(ctx, reply))

	got, err := s.GetComment(ctx, reply.ID)
	require.NoError(t, err)
	require.NotNil(t, got.ParentID)
	assert.Equal(t, top.ID, *got.ParentID)

	// only top-level comments are listed
	cc, err := s.ListComments(ctx, target, 10, 0)
	require.NoError(t, err)
	require.Len(t, cc, 1)
	assert.Equal(t, top.ID, cc[0].ID)

	rr, err := s.ListReplies(ctx, top.ID)
	require.NoError(t, err)
	require.Len(t, rr, 1)
	assert.Equal(t, reply.ID, rr[0].ID)

	n, err := s.DeleteReplies(ctx, top.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	require.NoError(t, s.DeleteComment(ctx, top.ID))
	require.True(t, errors.Is(s.DeleteComment(ctx, top.ID), storage.ErrNotFound))
}

func TestPg_CreateVerificationRequest(t *testing.T) {
	defer cleanup(t)

	user := createTestProfile(t, entities.PersonalProfile)

	r := &entities.VerificationRequest{
		ID:          uuid.New(),
		UserID:      user.ID,
		Role:        entities.InvestorRole,
		Status:      entities.VerificationRequested,
		RequestedAt: time.Now(),
	}
	require.NoError(t, s.CreateVerificationRequest(ctx, r))

	// the partial index forbids a second live request for the same (user, role)
	dup := *r
	dup.ID = uuid.New()
	require.True(t, errors.Is(s.CreateVerificationRequest(ctx, &dup), storage.ErrConflict))

	// but a different role is fine
	other := *r
	other.ID = uuid.New()
	other.Role = entities.StartupRole
	require.NoError(t, s.CreateVerificationRequest(ctx, &other))

	rr, err := s.ListVerificationRequests(ctx, user.ID)
	require.NoError(t, err)
	assert.Len(t, rr, 2)
}

func TestPg_StartReview(t *testing.T) {
	defer cleanup(t)

	user := createTestProfile(t, entities.PersonalProfile)
	admin := uuid.New()

	r := &entities.VerificationRequest{
		ID:          uuid.New(),
		UserID:      user.ID,
		Role:        entities.InvestorRole,
		Status:      entities.VerificationRequested,
		RequestedAt: time.Now(),
	}
	require.NoError(t, s.CreateVerificationRequest(ctx, r))

	ok, err := s.StartReview(ctx, r.ID, admin)
	require.NoError(t, err)
	assert.True(t, ok)

	got, err := s.GetVerificationRequest(ctx, r.ID)
	require.NoError(t, err)
	assert.Equal(t, entities.VerificationInReview, got.Status)
	require.NotNil(t, got.AdminID)
	assert.Equal(t, admin, *got.AdminID)

	// already in review
	ok, err = s.StartReview(ctx, r.ID, admin)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestPg_DecideVerification(t *testing.T) {
	defer cleanup(t)

	user := createTestProfile(t, entities.PersonalProfile)
	admin := uuid.New()
	now := time.Now().UTC().Truncate(time.Millisecond)

	r := &entities.VerificationRequest{
		ID:          uuid.New(),
		UserID:      user.ID,
		Role:        entities.InvestorRole,
		Status:      entities.VerificationRequested,
		Meta:        map[string]string{"source": "mobile"},
		RequestedAt: now,
	}
	require.NoError(t, s.CreateVerificationRequest(ctx, r))

	ok, err := s.DecideVerification(ctx, &storage.DecideVerificationParams{
		ID:        r.ID,
		AdminID:   admin,
		Status:    entities.VerificationApproved,
		Meta:      map[string]string{"notes": "fine"},
		DecidedAt: now,
	})
	require.NoError(t, err)
	assert.True(t, ok)

	got, err := s.GetVerificationRequest(ctx, r.ID)
	require.NoError(t, err)
	assert.Equal(t, entities.VerificationApproved, got.Status)
	require.NotNil(t, got.DecidedAt)
	// prior metadata keys survive the merge
	assert.Equal(t, "mobile", got.Meta["source"])
	assert.Equal(t, "fine", got.Meta["notes"])

	// the guard rejects a second decision
	ok, err = s.DecideVerification(ctx, &storage.DecideVerificationParams{
		ID:        r.ID,
		AdminID:   admin,
		Status:    entities.VerificationRejected,
		DecidedAt: now,
	})
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestPg_VerificationDocuments(t *testing.T) {
	defer cleanup(t)

	user := createTestProfile(t, entities.PersonalProfile)
	admin := uuid.New()
	now := time.Now().UTC().Truncate(time.Millisecond)

	d := &entities.VerificationDocument{
		ID:        uuid.New(),
		UserID:    user.ID,
		DocType:   "passport",
		URL:       "https://cdn.example.com/1",
		Status:    entities.DocumentPending,
		CreatedAt: now,
	}
	require.NoError(t, s.CreateVerificationDocument(ctx, d))

	reviewed := *d
	reviewed.ID = uuid.New()
	reviewed.Status = entities.DocumentApproved
	require.NoError(t, s.CreateVerificationDocument(ctx, &reviewed))

	require.NoError(t, s.UpdatePendingDocuments(ctx, &storage.UpdateDocumentsParams{
		UserID:     user.ID,
		Status:     entities.DocumentRejected,
		Notes:      "expired",
		ReviewedBy: admin,
		ReviewedAt: now,
	}))

	dd, err := s.ListVerificationDocuments(ctx, user.ID)
	require.NoError(t, err)
	require.Len(t, dd, 2)

	for _, v := range dd {
		switch v.ID {
		case d.ID:
			// only pending documents are transitioned
			assert.Equal(t, entities.DocumentRejected, v.Status)
			assert.Equal(t, "expired", v.Notes)
			require.NotNil(t, v.ReviewedBy)
			assert.Equal(t, admin, *v.ReviewedBy)
		case reviewed.ID:
			assert.Equal(t, entities.DocumentApproved, v.Status)
			assert.Nil(t, v.ReviewedBy)
		default:
			t.Fatalf("unexpected document %s", v.ID)
		}
	}
}

func TestPg_AuditLog(t *testing.T) {
	defer cleanup(t)

	admin := uuid.New()
	now := time.Now().UTC().Truncate(time.Millisecond)

	for i, action := range []string{"approve", "reject", "approve"} {
		require.NoError(t, s.CreateAuditEntry(ctx, &entities.AuditEntry{
			ID:         uuid.New(),
			Actor:      admin,
			Action:     action,
			TargetType: "verification_request",
			TargetID:   uuid.New().String(),
			Data:       map[string]string{"n": fmt.Sprint(i)},
			CreatedAt:  now.Add(time.Duration(i) * time.Second),
		}))
	}

	action := "approve"
	ee, err := s.ListAuditEntries(ctx, &storage.ListAuditEntriesParams{
		Action: &action,
		Limit:  10,
	})
	require.NoError(t, err)
	require.Len(t, ee, 2)
	// newest first
	assert.Equal(t, "2", ee[0].Data["n"])
	assert.Equal(t, "0", ee[1].Data["n"])

	targetType := "comment"
	ee, err = s.ListAuditEntries(ctx, &storage.ListAuditEntriesParams{
		TargetType: &targetType,
		Limit:      10,
	})
	require.NoError(t, err)
	assert.Empty(t, ee)

	ee, err = s.ListAuditEntries(ctx, &storage.ListAuditEntriesParams{Limit: 2, Skip: 1})
	require.NoError(t, err)
	require.Len(t, ee, 2)
	assert.Equal(t, "reject", ee[0].Action)
}
