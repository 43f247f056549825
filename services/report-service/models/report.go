package models

import "time"

// IssueStatus is the lifecycle state of a hazard report. The transition
// graph is deliberately permissive: the escalation sweeper and the authority
// token path both need to force arbitrary statuses.
type IssueStatus string

const (
	StatusReported     IssueStatus = "REPORTED"
	StatusEmailed      IssueStatus = "EMAILED"
	StatusAcknowledged IssueStatus = "ACKNOWLEDGED"
	StatusInProgress   IssueStatus = "IN_PROGRESS"
	StatusResolved     IssueStatus = "RESOLVED"
	StatusRejected     IssueStatus = "REJECTED"
	StatusEscalated    IssueStatus = "ESCALATED"
)

var validStatuses = map[IssueStatus]bool{
	StatusReported:     true,
	StatusEmailed:      true,
	StatusAcknowledged: true,
	StatusInProgress:   true,
	StatusResolved:     true,
	StatusRejected:     true,
	StatusEscalated:    true,
}

func (s IssueStatus) Valid() bool {
	return validStatuses[s]
}

// Terminal reports whether the sweeper must leave this status alone.
func (s IssueStatus) Terminal() bool {
	return s == StatusResolved || s == StatusRejected
}

// Actor identifies who caused the last status transition. Used for
// provenance in the UI, not for authorization.
type Actor string

const (
	ActorUser      Actor = "USER"
	ActorAuthority Actor = "AUTHORITY"
	ActorSystem    Actor = "SYSTEM"
)

type IssueCategory string

const (
	CategoryPothole       IssueCategory = "POTHOLE"
	CategoryCrack         IssueCategory = "CRACK"
	CategoryWaterlogging  IssueCategory = "WATERLOGGING"
	CategoryAccident      IssueCategory = "ACCIDENT"
	CategoryVehicleDamage IssueCategory = "VEHICLE_DAMAGE"
	CategoryFallenObject  IssueCategory = "FALLEN_OBJECT"
	CategoryOther         IssueCategory = "OTHER"
)

// AnonymousReporter is the sentinel stored in ReportedBy when a citizen
// submits without attribution. Trust-score deltas are never applied to it.
const AnonymousReporter = "Anonymous"

type Location struct {
	Lat     float64 `bson:"lat" json:"lat"`
	Lng     float64 `bson:"lng" json:"lng"`
	Address string  `bson:"address,omitempty" json:"address,omitempty"`
}

// AIAnalysis is the classification verdict returned by the AI collaborator
// at submission time. A report whose analysis marks it invalid is rejected
// before it ever reaches the store.
type AIAnalysis struct {
	Category            IssueCategory `bson:"category" json:"category"`
	Severity            string        `bson:"severity" json:"severity"` // LOW, MEDIUM, HIGH, CRITICAL
	Description         string        `bson:"description" json:"description"`
	EstimatedRepairCost string        `bson:"estimated_repair_cost" json:"estimated_repair_cost"`
	PublicSafetyImpact  string        `bson:"public_safety_impact" json:"public_safety_impact"`
	SafetyInsight       string        `bson:"safety_insight" json:"safety_insight"`
	ConfidenceScore     int           `bson:"confidence_score" json:"confidence_score"`
	IsValidIssue        bool          `bson:"is_valid_issue" json:"is_valid_issue"`
	RejectionReason     string        `bson:"rejection_reason,omitempty" json:"rejection_reason,omitempty"`
}

// VerificationVotes holds community verdicts on whether a hazard is fixed.
// A voter id appears in at most one of the two sets, ever.
type VerificationVotes struct {
	Yes []string `bson:"yes" json:"yes"`
	No  []string `bson:"no" json:"no"`
}

func (v VerificationVotes) HasVoted(userID string) bool {
	for _, id := range v.Yes {
		if id == userID {
			return true
		}
	}
	for _, id := range v.No {
		if id == userID {
			return true
		}
	}
	return false
}

type Report struct {
	ID          string      `bson:"_id" json:"id"`
	CreatedAt   time.Time   `bson:"created_at" json:"created_at"`
	Image       string      `bson:"image_url,omitempty" json:"image_url,omitempty"`
	MediaType   string      `bson:"media_type,omitempty" json:"media_type,omitempty"`
	City        string      `bson:"city,omitempty" json:"city,omitempty"`
	Location    Location    `bson:"location" json:"location"`
	Description string      `bson:"description,omitempty" json:"description,omitempty"`
	Analysis    *AIAnalysis `bson:"analysis,omitempty" json:"analysis,omitempty"`
	Status      IssueStatus `bson:"status" json:"status"`
	ReportedBy  string      `bson:"reported_by" json:"reported_by"`
	// ReporterEnc stores the real reporter user id encrypted (AES-GCM) for
	// anonymous reports. It is never returned in any API response.
	ReporterEnc string `bson:"reporter_enc,omitempty" json:"-"`

	EmailSent   bool       `bson:"email_sent" json:"email_sent"`
	EmailStatus string     `bson:"email_status,omitempty" json:"email_status,omitempty"` // SENT or FAILED
	EmailedTo   string     `bson:"emailed_to,omitempty" json:"emailed_to,omitempty"`
	EmailedAt   *time.Time `bson:"emailed_at,omitempty" json:"emailed_at,omitempty"`

	AcknowledgedAt *time.Time `bson:"acknowledged_at,omitempty" json:"acknowledged_at,omitempty"`
	StartedAt      *time.Time `bson:"started_at,omitempty" json:"started_at,omitempty"`
	ResolvedAt     *time.Time `bson:"resolved_at,omitempty" json:"resolved_at,omitempty"`
	EscalatedAt    *time.Time `bson:"escalated_at,omitempty" json:"escalated_at,omitempty"`
	EscalatedTo    string     `bson:"escalated_to,omitempty" json:"escalated_to,omitempty"`
	IsOverdue      bool       `bson:"is_overdue" json:"is_overdue"`

	// AuthorityToken authorizes status updates from an emailed link without a
	// session. Assigned once at insert, never regenerated, never serialized
	// to clients.
	AuthorityToken string `bson:"authority_token,omitempty" json:"-"`

	UpdatedBy Actor             `bson:"updated_by,omitempty" json:"updated_by,omitempty"`
	Votes     VerificationVotes `bson:"verification_votes" json:"verification_votes"`

	ReInspectionImage    string `bson:"reinspection_image,omitempty" json:"reinspection_image,omitempty"`
	AiVerifiedResolution bool   `bson:"ai_verified_resolution" json:"ai_verified_resolution"`
}

// ReportEvent is the payload published to the reports exchange on creation
// and on every status transition.
type ReportEvent struct {
	Type      string        `json:"type"` // new_report or status_update
	ReportID  string        `json:"report_id"`
	Category  IssueCategory `json:"category,omitempty"`
	Status    IssueStatus   `json:"status"`
	OwnerID   string        `json:"owner_id,omitempty"`
	Message   string        `json:"message,omitempty"`
	CreatedAt time.Time     `json:"created_at"`
}

// EmailLog is the append-only audit record of a dispatch attempt.
type EmailLog struct {
	ID            string    `bson:"_id" json:"id"`
	ReportID      string    `bson:"report_id" json:"report_id"`
	Timestamp     time.Time `bson:"timestamp" json:"timestamp"`
	Recipients    []string  `bson:"recipients" json:"recipients"`
	Subject       string    `bson:"subject" json:"subject"`
	Content       string    `bson:"content" json:"content"`
	Status        string    `bson:"status" json:"status"` // SENT or FAILED
	AuthorityName string    `bson:"authority_name" json:"authority_name"`
}

// AuthorityDirectoryEntry is read-only routing reference data. Category may
// be a concrete IssueCategory or the literal "ALL".
type AuthorityDirectoryEntry struct {
	ID            string   `bson:"_id" json:"id"`
	Region        string   `bson:"region" json:"region"`
	Category      string   `bson:"category" json:"category"`
	AuthorityName string   `bson:"authority_name" json:"authority_name"`
	Emails        []string `bson:"emails" json:"emails"`
}

type DashboardStats struct {
	TotalReports         int            `json:"total_reports"`
	ResolvedCount        int            `json:"resolved_count"`
	PendingCount         int            `json:"pending_count"`
	EscalatedCount       int            `json:"escalated_count"`
	CategoryDistribution map[string]int `json:"category_distribution"`
}
