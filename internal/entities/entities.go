// Package entities contains main entities of service.
package entities

import (
	"time"

	"github.com/google/uuid"
)

// InteractionKind ...
type InteractionKind string

const (
	// LikeInteraction ...
	LikeInteraction InteractionKind = "like"
	// CrownInteraction is a premium endorsement, restricted to investor-capable actors.
	CrownInteraction InteractionKind = "crown"
	// ShareInteraction ...
	ShareInteraction InteractionKind = "share"
)

// TargetType ...
type TargetType string

const (
	// PostTarget ...
	PostTarget TargetType = "post"
	// ProfileTarget ...
	ProfileTarget TargetType = "profile"
	// CommentTarget ...
	CommentTarget TargetType = "comment"
)

// Role is an actor's role tag.
type Role string

const (
	// AdminRole ...
	AdminRole Role = "admin"
	// InvestorRole ...
	InvestorRole Role = "investor"
	// StartupRole ...
	StartupRole Role = "startup"
	// PersonalRole ...
	PersonalRole Role = "personal"
)

// Actor is a resolved request identity. Read-only input for the core.
type Actor struct {
	ID    uuid.UUID
	Roles []Role
}

// HasRole ...
func (a Actor) HasRole(r Role) bool {
	for _, v := range a.Roles {
		if v == r {
			return true
		}
	}

	return false
}

// TargetID identifies any engageable entity.
type TargetID struct {
	Type TargetType
	ID   uuid.UUID
}

// CounterBag is the denormalized engagement counters of a target.
type CounterBag struct {
	Likes    uint32
	Comments uint32
	Crowns   uint32
	Shares   uint32
}

// Get returns the counter for the given interaction kind.
func (b CounterBag) Get(kind InteractionKind) uint32 {
	switch kind {
	case LikeInteraction:
		return b.Likes
	case CrownInteraction:
		return b.Crowns
	case ShareInteraction:
		return b.Shares
	}

	return 0
}

// Interaction is a ledger record. At most one live interaction exists
// per (kind, actor, target) tuple.
type Interaction struct {
	Kind      InteractionKind
	Actor     uuid.UUID
	Target    TargetID
	CreatedAt time.Time
}

// Comment belongs to a target and forms a two-level tree via ParentID.
type Comment struct {
	ID        uuid.UUID
	Target    TargetID
	Author    uuid.UUID
	Text      string
	ParentID  *uuid.UUID
	Likes     uint32
	CreatedAt time.Time
}

// ProfileKind ...
type ProfileKind string

const (
	// PersonalProfile ...
	PersonalProfile ProfileKind = "personal"
	// StartupProfile ...
	StartupProfile ProfileKind = "startup"
	// InvestorProfile ...
	InvestorProfile ProfileKind = "investor"
)

// Profile ...
type Profile struct {
	ID          uuid.UUID
	Kind        ProfileKind
	DisplayName string
	Verified    bool
	Counters    CounterBag
	CreatedAt   time.Time
}

// Post ...
type Post struct {
	ID        uuid.UUID
	Owner     uuid.UUID
	Title     string
	Text      string
	Counters  CounterBag
	CreatedAt time.Time
}

// VerificationStatus ...
type VerificationStatus string

const (
	// VerificationRequested ...
	VerificationRequested VerificationStatus = "requested"
	// VerificationInReview ...
	VerificationInReview VerificationStatus = "in_review"
	// VerificationApproved is terminal.
	VerificationApproved VerificationStatus = "approved"
	// VerificationRejected is terminal.
	VerificationRejected VerificationStatus = "rejected"
)

// IsTerminal ...
func (s VerificationStatus) IsTerminal() bool {
	return s == VerificationApproved || s == VerificationRejected
}

// VerificationRequest is one instance of the identity-verification lifecycle.
// Never deleted; a rejected user submits a fresh instance.
type VerificationRequest struct {
	ID          uuid.UUID
	UserID      uuid.UUID
	Role        Role
	Status      VerificationStatus
	Meta        map[string]string
	RequestedAt time.Time
	DecidedAt   *time.Time
	AdminID     *uuid.UUID
}

// DocumentStatus ...
type DocumentStatus string

const (
	// DocumentPending ...
	DocumentPending DocumentStatus = "pending"
	// DocumentApproved ...
	DocumentApproved DocumentStatus = "approved"
	// DocumentRejected ...
	DocumentRejected DocumentStatus = "rejected"
)

// VerificationDocument is bulk-transitioned alongside its owner's request decision.
type VerificationDocument struct {
	ID         uuid.UUID
	UserID     uuid.UUID
	DocType    string
	URL        string
	Status     DocumentStatus
	Notes      string
	ReviewedBy *uuid.UUID
	ReviewedAt *time.Time
	CreatedAt  time.Time
}

// AuditEntry is append-only and immutable once written.
type AuditEntry struct {
	ID         uuid.UUID
	Actor      uuid.UUID
	Action     string
	TargetType string
	TargetID   string
	Data       map[string]string
	CreatedAt  time.Time
}
