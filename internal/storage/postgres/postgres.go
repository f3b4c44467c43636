// Package postgres is implementation of storage interface.
package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/jmoiron/sqlx/types"
	"github.com/lib/pq"
	"github.com/sirupsen/logrus"

	"github.com/venturelink/core/internal/entities"
	"github.com/venturelink/core/internal/storage"
)

var log = logrus.WithField("layer", "storage").WithField("package", "postgres")
var errBeginCalledWithinTx = errors.New("can not run InTx in tx")

const (
	foreignKeyViolation = "23503"
	uniqueViolation     = "23505"
)

type pg struct {
	ext sqlx.ExtContext
}

// New creates new instance of pg.
func New(db *sql.DB) storage.Storage {
	return pg{
		ext: sqlx.NewDb(db, "postgres"),
	}
}

var counterTable = map[entities.TargetType]string{
	entities.PostTarget:    "post",
	entities.ProfileTarget: "profile",
	entities.CommentTarget: "comment",
}

var counterColumn = map[storage.CounterType]string{
	storage.LikesCounter:    "likes_count",
	storage.CommentsCounter: "comments_count",
	storage.CrownsCounter:   "crowns_count",
	storage.SharesCounter:   "shares_count",
}

type profileDTO struct {
	ID            string    `db:"id"`
	Kind          string    `db:"kind"`
	DisplayName   string    `db:"display_name"`
	Verified      bool      `db:"verified"`
	LikesCount    uint32    `db:"likes_count"`
	CommentsCount uint32    `db:"comments_count"`
	CrownsCount   uint32    `db:"crowns_count"`
	SharesCount   uint32    `db:"shares_count"`
	CreatedAt     time.Time `db:"created_at"`
}

type postDTO struct {
	ID            string    `db:"id"`
	Owner         string    `db:"owner"`
	Title         string    `db:"title"`
	Text          string    `db:"text"`
	LikesCount    uint32    `db:"likes_count"`
	CommentsCount uint32    `db:"comments_count"`
	CrownsCount   uint32    `db:"crowns_count"`
	SharesCount   uint32    `db:"shares_count"`
	CreatedAt     time.Time `db:"created_at"`
}

type interactionDTO struct {
	Kind       string    `db:"kind"`
	Actor      string    `db:"actor"`
	TargetType string    `db:"target_type"`
	TargetID   string    `db:"target_id"`
	CreatedAt  time.Time `db:"created_at"`
}

type countersDTO struct {
	Likes    uint32 `db:"likes_count"`
	Comments uint32 `db:"comments_count"`
	Crowns   uint32 `db:"crowns_count"`
	Shares   uint32 `db:"shares_count"`
}

type commentDTO struct {
	ID         string         `db:"id"`
	TargetType string         `db:"target_type"`
	TargetID   string         `db:"target_id"`
	Author     string         `db:"author"`
	Text       string         `db:"text"`
	ParentID   sql.NullString `db:"parent_id"`
	LikesCount uint32         `db:"likes_count"`
	CreatedAt  time.Time      `db:"created_at"`
}

type verificationRequestDTO struct {
	ID          string         `db:"id"`
	UserID      string         `db:"user_id"`
	Role        string         `db:"role"`
	Status      string         `db:"status"`
	Meta        types.JSONText `db:"meta"`
	RequestedAt time.Time      `db:"requested_at"`
	DecidedAt   sql.NullTime   `db:"decided_at"`
	AdminID     sql.NullString `db:"admin_id"`
}

type verificationDocumentDTO struct {
	ID         string         `db:"id"`
	UserID     string         `db:"user_id"`
	DocType    string         `db:"doc_type"`
	URL        string         `db:"url"`
	Status     string         `db:"status"`
	Notes      string         `db:"notes"`
	ReviewedBy sql.NullString `db:"reviewed_by"`
	ReviewedAt sql.NullTime   `db:"reviewed_at"`
	CreatedAt  time.Time      `db:"created_at"`
}

type auditEntryDTO struct {
	ID         string         `db:"id"`
	Actor      string         `db:"actor"`
	Action     string         `db:"action"`
	TargetType string         `db:"target_type"`
	TargetID   string         `db:"target_id"`
	Data       types.JSONText `db:"data"`
	CreatedAt  time.Time      `db:"created_at"`
}

func (s pg) InTx(ctx context.Context, f func(s storage.Storage) error) error {
	db, ok := s.ext.(*sqlx.DB)
	if !ok {
		return errBeginCalledWithinTx
	}

	tx, err := db.BeginTxx(ctx, &sql.TxOptions{Isolation: sql.LevelReadCommitted})
	if err != nil {
		return fmt.Errorf("failed to create tx: %w", err)
	}

	if err := f(pg{ext: tx}); err != nil {
		if err := tx.Rollback(); err != nil {
			log.WithError(err).Error("failed to rollback tx")
		}
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit tx: %w", err)
	}

	return nil
}

func (s pg) CreateProfile(ctx context.Context, p *entities.Profile) error {
	if _, err := s.ext.ExecContext(ctx,
		`
			INSERT INTO profile(id, kind, display_name, verified, created_at)
			VALUES($1, $2, $3, $4, $5)
		`, p.ID.String(), string(p.Kind), p.DisplayName, p.Verified, p.CreatedAt.UTC(),
	); err != nil {
		if err, ok := err.(*pq.Error); ok && err.Code == uniqueViolation {
			return storage.ErrConflict
		}

		return fmt.Errorf("failed to exec: %w", err)
	}

	return nil
}

func (s pg) GetProfile(ctx context.Context, id uuid.UUID) (*entities.Profile, error) {
	var p profileDTO

	if err := sqlx.GetContext(ctx, s.ext, &p, `
			SELECT id, kind, display_name, verified, likes_count, comments_count, crowns_count, shares_count, created_at
			FROM profile
			WHERE id = $1
		`, id.String(),
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrNotFound
		}

		return nil, fmt.Errorf("failed to query: %w", err)
	}

	return toProfile(&p), nil
}

func (s pg) SetProfileVerified(ctx context.Context, id uuid.UUID, verified bool) error {
	res, err := s.ext.ExecContext(ctx,
		`UPDATE profile SET verified=$2 WHERE id=$1`,
		id.String(), verified,
	)
	if err != nil {
		return fmt.Errorf("failed to exec: %w", err)
	}

	if c, _ := res.RowsAffected(); c == 0 {
		return storage.ErrNotFound
	}

	return nil
}

func (s pg) CreatePost(ctx context.Context, p *entities.Post) error {
	if _, err := s.ext.ExecContext(ctx,
		`
			INSERT INTO post(id, owner, title, text, created_at)
			VALUES($1, $2, $3, $4, $5)
		`, p.ID.String(), p.Owner.String(), p.Title, p.Text, p.CreatedAt.UTC(),
	); err != nil {
		if err, ok := err.(*pq.Error); ok && err.Code == uniqueViolation {
			return storage.ErrConflict
		}

		return fmt.Errorf("failed to exec: %w", err)
	}

	return nil
}

func (s pg) GetPost(ctx context.Context, id uuid.UUID) (*entities.Post, error) {
	var p postDTO

	if err := sqlx.GetContext(ctx, s.ext, &p, `
			SELECT id, owner, title, text, likes_count, comments_count, crowns_count, shares_count, created_at
			FROM post
			WHERE id = $1
		`, id.String(),
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrNotFound
		}

		return nil, fmt.Errorf("failed to query: %w", err)
	}

	return toPost(&p), nil
}

func (s pg) AddInteraction(ctx context.Context, i *entities.Interaction) (bool, error) {
	res, err := s.ext.ExecContext(ctx, `
			INSERT INTO interaction(kind, actor, target_type, target_id, created_at)
				VALUES($1, $2, $3, $4, $5)
			ON CONFLICT DO NOTHING`,
		string(i.Kind), i.Actor.String(), string(i.Target.Type), i.Target.ID.String(), i.CreatedAt.UTC(),
	)
	if err != nil {
		if err, ok := err.(*pq.Error); ok && err.Code == foreignKeyViolation {
			return false, storage.ErrNotFound
		}

		return false, fmt.Errorf("failed to exec: %w", err)
	}

	c, _ := res.RowsAffected()
	return c > 0, nil
}

func (s pg) RemoveInteraction(ctx context.Context, kind entities.InteractionKind, actor uuid.UUID, target entities.TargetID) (bool, error) {
	res, err := s.ext.ExecContext(ctx,
		`DELETE FROM interaction WHERE kind=$1 AND actor=$2 AND target_type=$3 AND target_id=$4`,
		string(kind), actor.String(), string(target.Type), target.ID.String(),
	)
	if err != nil {
		return false, fmt.Errorf("failed to exec: %w", err)
	}

	c, _ := res.RowsAffected()
	return c > 0, nil
}

func (s pg) ListInteractionsByTarget(ctx context.Context, target entities.TargetID, kind entities.InteractionKind) ([]*entities.Interaction, error) {
	var ii []*interactionDTO

	if err := sqlx.SelectContext(ctx, s.ext, &ii, `
			SELECT kind, actor, target_type, target_id, created_at FROM interaction
			WHERE kind=$1 AND target_type=$2 AND target_id=$3
			ORDER BY created_at DESC
		`, string(kind), string(target.Type), target.ID.String(),
	); err != nil {
		return nil, fmt.Errorf("failed to query: %w", err)
	}

	return toInteractions(ii)
}

func (s pg) ListInteractionsByActor(ctx context.Context, actor uuid.UUID, kind entities.InteractionKind) ([]*entities.Interaction, error) {
	var ii []*interactionDTO

	if err := sqlx.SelectContext(ctx, s.ext, &ii, `
			SELECT kind, actor, target_type, target_id, created_at FROM interaction
			WHERE kind=$1 AND actor=$2
			ORDER BY created_at ASC
		`, string(kind), actor.String(),
	); err != nil {
		return nil, fmt.Errorf("failed to query: %w", err)
	}

	return toInteractions(ii)
}

func (s pg) GetCounters(ctx context.Context, target entities.TargetID) (*entities.CounterBag, error) {
	table, ok := counterTable[target.Type]
	if !ok {
		return nil, fmt.Errorf("unknown target type %q", target.Type)
	}

	query := fmt.Sprintf(`SELECT likes_count, comments_count, crowns_count, shares_count FROM %s WHERE id = $1`, table)
	if target.Type == entities.CommentTarget {
		query = `SELECT likes_count, 0 AS comments_count, 0 AS crowns_count, 0 AS shares_count FROM comment WHERE id = $1`
	}

	var c countersDTO
	if err := sqlx.GetContext(ctx, s.ext, &c, query, target.ID.String()); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrNotFound
		}

		return nil, fmt.Errorf("failed to query: %w", err)
	}

	return &entities.CounterBag{
		Likes:    c.Likes,
		Comments: c.Comments,
		Crowns:   c.Crowns,
		Shares:   c.Shares,
	}, nil
}

func (s pg) AdjustCounter(ctx context.Context, target entities.TargetID, c storage.CounterType, delta int) (uint32, error) {
	table, ok := counterTable[target.Type]
	if !ok {
		return 0, fmt.Errorf("unknown target type %q", target.Type)
	}

	column, ok := counterColumn[c]
	if !ok {
		return 0, fmt.Errorf("unknown counter %q", c)
	}

	if target.Type == entities.CommentTarget && c != storage.LikesCounter {
		return 0, fmt.Errorf("counter %q is not supported for comments", c)
	}

	var v uint32
	// GREATEST keeps the counter at zero even if the ledger and the counter have drifted.
	query := fmt.Sprintf(`UPDATE %s SET %s = GREATEST(%s + $2, 0) WHERE id = $1 RETURNING %s`, table, column, column, column)

	if err := sqlx.GetContext(ctx, s.ext, &v, query, target.ID.String(), delta); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, storage.ErrNotFound
		}

		return 0, fmt.Errorf("failed to exec: %w", err)
	}

	return v, nil
}

func (s pg) CreateComment(ctx context.Context, c *entities.Comment) error {
	parent := sql.NullString{}
	if c.ParentID != nil {
		parent = sql.NullString{String: c.ParentID.String(), Valid: true}
	}

	if _, err := s.ext.ExecContext(ctx, `
			INSERT INTO comment(id, target_type, target_id, author, text, parent_id, created_at)
			VALUES($1, $2, $3, $4, $5, $6, $7)
		`, c.ID.String(), string(c.Target.Type), c.Target.ID.String(), c.Author.String(), c.Text, parent, c.CreatedAt.UTC(),
	); err != nil {
		if err, ok := err.(*pq.Error); ok && err.Code == uniqueViolation {
			return storage.ErrConflict
		}

		return fmt.Errorf("failed to exec: %w", err)
	}

	return nil
}

func (s pg) GetComment(ctx context.Context, id uuid.UUID) (*entities.Comment, error) {
	var c commentDTO

	if err := sqlx.GetContext(ctx, s.ext, &c, `
			SELECT id, target_type, target_id, author, text, parent_id, likes_count, created_at
			FROM comment
			WHERE id = $1
		`, id.String(),
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrNotFound
		}

		return nil, fmt.Errorf("failed to query: %w", err)
	}

	return toComment(&c)
}

func (s pg) DeleteComment(ctx context.Context, id uuid.UUID) error {
	res, err := s.ext.ExecContext(ctx, `DELETE FROM comment WHERE id=$1`, id.String())
	if err != nil {
		return fmt.Errorf("failed to exec: %w", err)
	}

	if c, _ := res.RowsAffected(); c == 0 {
		return storage.ErrNotFound
	}

	return nil
}

func (s pg) DeleteReplies(ctx context.Context, parentID uuid.UUID) (int, error) {
	res, err := s.ext.ExecContext(ctx, `DELETE FROM comment WHERE parent_id=$1`, parentID.String())
	if err != nil {
		return 0, fmt.Errorf("failed to exec: %w", err)
	}

	c, _ := res.RowsAffected()
	return int(c), nil
}

func (s pg) ListComments(ctx context.Context, target entities.TargetID, limit uint16, skip uint32) ([]*entities.Comment, error) {
	var cc []*commentDTO

	if err := sqlx.SelectContext(ctx, s.ext, &cc, `
			SELECT id, target_type, target_id, author, text, parent_id, likes_count, created_at
			FROM comment
			WHERE target_type=$1 AND target_id=$2 AND parent_id IS NULL
			ORDER BY created_at DESC
			LIMIT $3 OFFSET $4
		`, string(target.Type), target.ID.String(), limit, skip,
	); err != nil {
		return nil, fmt.Errorf("failed to query: %w", err)
	}

	return toComments(cc)
}

func (s pg) ListReplies(ctx context.Context, parentID uuid.UUID) ([]*entities.Comment, error) {
	var cc []*commentDTO

	if err := sqlx.SelectContext(ctx, s.ext, &cc, `
			SELECT id, target_type, target_id, author, text, parent_id, likes_count, created_at
			FROM comment
			WHERE parent_id=$1
			ORDER BY created_at ASC
		`, parentID.String(),
	); err != nil {
		return nil, fmt.Errorf("failed to query: %w", err)
	}

	return toComments(cc)
}

func (s pg) CreateVerificationRequest(ctx context.Context, r *entities.VerificationRequest) error {
	if _, err := s.ext.ExecContext(ctx, `
			INSERT INTO verification_request(id, user_id, role, status, meta, requested_at)
			VALUES($1, $2, $3, $4, $5, $6)
		`, r.ID.String(), r.UserID.String(), string(r.Role), string(r.Status), mustJSON(r.Meta), r.RequestedAt.UTC(),
	); err != nil {
		if err, ok := err.(*pq.Error); ok && err.Code == uniqueViolation {
			return storage.ErrConflict
		}

		return fmt.Errorf("failed to exec: %w", err)
	}

	return nil
}

func (s pg) GetVerificationRequest(ctx context.Context, id uuid.UUID) (*entities.VerificationRequest, error) {
	var r verificationRequestDTO

	if err := sqlx.GetContext(ctx, s.ext, &r, `
			SELECT id, user_id, role, status, meta, requested_at, decided_at, admin_id
			FROM verification_request
			WHERE id = $1
		`, id.String(),
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrNotFound
		}

		return nil, fmt.Errorf("failed to query: %w", err)
	}

	return toVerificationRequest(&r)
}

func (s pg) ListVerificationRequests(ctx context.Context, userID uuid.UUID) ([]*entities.VerificationRequest, error) {
	var rr []*verificationRequestDTO

	if err := sqlx.SelectContext(ctx, s.ext, &rr, `
			SELECT id, user_id, role, status, meta, requested_at, decided_at, admin_id
			FROM verification_request
			WHERE user_id = $1
			ORDER BY requested_at DESC
		`, userID.String(),
	); err != nil {
		return nil, fmt.Errorf("failed to query: %w", err)
	}

	out := make([]*entities.VerificationRequest, len(rr))
	for i, v := range rr {
		r, err := toVerificationRequest(v)
		if err != nil {
			return nil, err
		}
		out[i] = r
	}

	return out, nil
}

func (s pg) StartReview(ctx context.Context, id, adminID uuid.UUID) (bool, error) {
	res, err := s.ext.ExecContext(ctx,
		`UPDATE verification_request SET status=$2, admin_id=$3 WHERE id=$1 AND status=$4`,
		id.String(), string(entities.VerificationInReview), adminID.String(), string(entities.VerificationRequested),
	)
	if err != nil {
		return false, fmt.Errorf("failed to exec: %w", err)
	}

	c, _ := res.RowsAffected()
	return c > 0, nil
}

func (s pg) DecideVerification(ctx context.Context, p *storage.DecideVerificationParams) (bool, error) {
	res, err := s.ext.ExecContext(ctx, `
			UPDATE verification_request
			SET status=$2, decided_at=$3, admin_id=$4, meta = meta || $5
			WHERE id=$1 AND status IN ($6, $7)
		`, p.ID.String(), string(p.Status), p.DecidedAt.UTC(), p.AdminID.String(), mustJSON(p.Meta),
		string(entities.VerificationRequested), string(entities.VerificationInReview),
	)
	if err != nil {
		return false, fmt.Errorf("failed to exec: %w", err)
	}

	c, _ := res.RowsAffected()
	return c > 0, nil
}

func (s pg) CreateVerificationDocument(ctx context.Context, d *entities.VerificationDocument) error {
	if _, err := s.ext.ExecContext(ctx, `
			INSERT INTO verification_document(id, user_id, doc_type, url, status, notes, created_at)
			VALUES($1, $2, $3, $4, $5, $6, $7)
		`, d.ID.String(), d.UserID.String(), d.DocType, d.URL, string(d.Status), d.Notes, d.CreatedAt.UTC(),
	); err != nil {
		if err, ok := err.(*pq.Error); ok && err.Code == uniqueViolation {
			return storage.ErrConflict
		}

		return fmt.Errorf("failed to exec: %w", err)
	}

	return nil
}

func (s pg) ListVerificationDocuments(ctx context.Context, userID uuid.UUID) ([]*entities.VerificationDocument, error) {
	var dd []*verificationDocumentDTO

	if err := sqlx.SelectContext(ctx, s.ext, &dd, `
			SELECT id, user_id, doc_type, url, status, notes, reviewed_by, reviewed_at, created_at
			FROM verification_document
			WHERE user_id = $1
			ORDER BY created_at ASC
		`, userID.String(),
	); err != nil {
		return nil, fmt.Errorf("failed to query: %w", err)
	}

	out := make([]*entities.VerificationDocument, len(dd))
	for i, v := range dd {
		d, err := toVerificationDocument(v)
		if err != nil {
			return nil, err
		}
		out[i] = d
	}

	return out, nil
}

func (s pg) UpdatePendingDocuments(ctx context.Context, p *storage.UpdateDocumentsParams) error {
	if _, err := s.ext.ExecContext(ctx, `
			UPDATE verification_document
			SET status=$2, notes=$3, reviewed_by=$4, reviewed_at=$5
			WHERE user_id=$1 AND status=$6
		`, p.UserID.String(), string(p.Status), p.Notes, p.ReviewedBy.String(), p.ReviewedAt.UTC(),
		string(entities.DocumentPending),
	); err != nil {
		return fmt.Errorf("failed to exec: %w", err)
	}

	return nil
}

func (s pg) CreateAuditEntry(ctx context.Context, e *entities.AuditEntry) error {
	if _, err := s.ext.ExecContext(ctx, `
			INSERT INTO audit_log(id, actor, action, target_type, target_id, data, created_at)
			VALUES($1, $2, $3, $4, $5, $6, $7)
		`, e.ID.String(), e.Actor.String(), e.Action, e.TargetType, e.TargetID, mustJSON(e.Data), e.CreatedAt.UTC(),
	); err != nil {
		return fmt.Errorf("failed to exec: %w", err)
	}

	return nil
}

func (s pg) ListAuditEntries(ctx context.Context, p *storage.ListAuditEntriesParams) ([]*entities.AuditEntry, error) {
	b := sq.Select("id", "actor", "action", "target_type", "target_id", "data", "created_at").
		From("audit_log").
		OrderBy("created_at DESC").
		Limit(uint64(p.Limit)).
		Offset(uint64(p.Skip)).
		PlaceholderFormat(sq.Dollar)

	if p.Action != nil {
		b = b.Where(sq.Eq{"action": *p.Action})
	}

	if p.TargetType != nil {
		b = b.Where(sq.Eq{"target_type": *p.TargetType})
	}

	query, args, err := b.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to construct query: %w", err)
	}

	var ee []*auditEntryDTO
	if err := sqlx.SelectContext(ctx, s.ext, &ee, query, args...); err != nil {
		return nil, fmt.Errorf("failed to query: %w", err)
	}

	out := make([]*entities.AuditEntry, len(ee))
	for i, v := range ee {
		e, err := toAuditEntry(v)
		if err != nil {
			return nil, err
		}
		out[i] = e
	}

	return out, nil
}

func toProfile(p *profileDTO) *entities.Profile {
	return &entities.Profile{
		ID:          uuid.MustParse(p.ID),
		Kind:        entities.ProfileKind(p.Kind),
		DisplayName: p.DisplayName,
		Verified:    p.Verified,
		Counters: entities.CounterBag{
			Likes:    p.LikesCount,
			Comments: p.CommentsCount,
			Crowns:   p.CrownsCount,
			Shares:   p.SharesCount,
		},
		CreatedAt: p.CreatedAt,
	}
}

func toPost(p *postDTO) *entities.Post {
	return &entities.Post{
		ID:    uuid.MustParse(p.ID),
		Owner: uuid.MustParse(p.Owner),
		Title: p.Title,
		Text:  p.Text,
		Counters: entities.CounterBag{
			Likes:    p.LikesCount,
			Comments: p.CommentsCount,
			Crowns:   p.CrownsCount,
			Shares:   p.SharesCount,
		},
		CreatedAt: p.CreatedAt,
	}
}

func toInteractions(ii []*interactionDTO) ([]*entities.Interaction, error) {
	out := make([]*entities.Interaction, len(ii))
	for i, v := range ii {
		out[i] = &entities.Interaction{
			Kind:  entities.InteractionKind(v.Kind),
			Actor: uuid.MustParse(v.Actor),
			Target: entities.TargetID{
				Type: entities.TargetType(v.TargetType),
				ID:   uuid.MustParse(v.TargetID),
			},
			CreatedAt: v.CreatedAt,
		}
	}

	return out, nil
}

func toComment(c *commentDTO) (*entities.Comment, error) {
	out := &entities.Comment{
		ID: uuid.MustParse(c.ID),
		Target: entities.TargetID{
			Type: entities.TargetType(c.TargetType),
			ID:   uuid.MustParse(c.TargetID),
		},
		Author:    uuid.MustParse(c.Author),
		Text:      c.Text,
		Likes:     c.LikesCount,
		CreatedAt: c.CreatedAt,
	}

	if c.ParentID.Valid {
		id, err := uuid.Parse(c.ParentID.String)
		if err != nil {
			return nil, fmt.Errorf("failed to parse parent id: %w", err)
		}
		out.ParentID = &id
	}

	return out, nil
}

func toComments(cc []*commentDTO) ([]*entities.Comment, error) {
	out := make([]*entities.Comment, len(cc))
	for i, v := range cc {
		c, err := toComment(v)
		if err != nil {
			return nil, err
		}
		out[i] = c
	}

	return out, nil
}

func toVerificationRequest(r *verificationRequestDTO) (*entities.VerificationRequest, error) {
	out := &entities.VerificationRequest{
		ID:          uuid.MustParse(r.ID),
		UserID:      uuid.MustParse(r.UserID),
		Role:        entities.Role(r.Role),
		Status:      entities.VerificationStatus(r.Status),
		RequestedAt: r.RequestedAt,
	}

	if len(r.Meta) > 0 {
		if err := json.Unmarshal(r.Meta, &out.Meta); err != nil {
			return nil, fmt.Errorf("failed to unmarshal meta: %w", err)
		}
	}

	if r.DecidedAt.Valid {
		t := r.DecidedAt.Time
		out.DecidedAt = &t
	}

	if r.AdminID.Valid {
		id, err := uuid.Parse(r.AdminID.String)
		if err != nil {
			return nil, fmt.Errorf("failed to parse admin id: %w", err)
		}
		out.AdminID = &id
	}

	return out, nil
}

func toVerificationDocument(d *verificationDocumentDTO) (*entities.VerificationDocument, error) {
	out := &entities.VerificationDocument{
		ID:        uuid.MustParse(d.ID),
		UserID:    uuid.MustParse(d.UserID),
		DocType:   d.DocType,
		URL:       d.URL,
		Status:    entities.DocumentStatus(d.Status),
		Notes:     d.Notes,
		CreatedAt: d.CreatedAt,
	}

	if d.ReviewedBy.Valid {
		id, err := uuid.Parse(d.ReviewedBy.String)
		if err != nil {
			return nil, fmt.Errorf("failed to parse reviewer id: %w", err)
		}
		out.ReviewedBy = &id
	}

	if d.ReviewedAt.Valid {
		t := d.ReviewedAt.Time
		out.ReviewedAt = &t
	}

	return out, nil
}

func toAuditEntry(e *auditEntryDTO) (*entities.AuditEntry, error) {
	out := &entities.AuditEntry{
		ID:         uuid.MustParse(e.ID),
		Actor:      uuid.MustParse(e.Actor),
		Action:     e.Action,
		TargetType: e.TargetType,
		TargetID:   e.TargetID,
		CreatedAt:  e.CreatedAt,
	}

	if len(e.Data) > 0 {
		if err := json.Unmarshal(e.Data, &out.Data); err != nil {
			return nil, fmt.Errorf("failed to unmarshal data: %w", err)
		}
	}

	return out, nil
}

func mustJSON(m map[string]string) types.JSONText {
	if m == nil {
		m = map[string]string{}
	}

	b, _ := json.Marshal(m)
	return types.JSONText(b)
}
