// Package gemini talks to the external AI service that classifies hazard
// photos, compares before/after shots, and drafts the formal authority
// email. The service's wire format is kept local to this package; callers
// map the results onto their own types.
package gemini

import "context"

// Classification is the verdict on a submitted hazard photo. IsValidIssue
// false means the report must not be persisted as a hazard.
type Classification struct {
	IsValidIssue        bool   `json:"isValidIssue"`
	Category            string `json:"category"`
	Severity            string `json:"severity"`
	Description         string `json:"description"`
	EstimatedRepairCost string `json:"estimatedRepairCost"`
	PublicSafetyImpact  string `json:"publicSafetyImpact"`
	SafetyInsight       string `json:"safetyInsight"`
	ConfidenceScore     int    `json:"confidenceScore"`
	RejectionReason     string `json:"rejectionReason,omitempty"`
}

// ReInspection is the before/after comparison verdict. The wire field is
// named isResolved; the report record stores it as AiVerifiedResolution.
type ReInspection struct {
	IsResolved bool   `json:"isResolved"`
	Confidence int    `json:"confidence"`
	Summary    string `json:"summary"`
}

// EmailRequest carries everything the composer needs to draft a formal
// maintenance request, including the one-click action links.
type EmailRequest struct {
	ReportID            string  `json:"report_id"`
	Category            string  `json:"category"`
	Severity            string  `json:"severity"`
	ConfidenceScore     int     `json:"confidence_score"`
	Description         string  `json:"description"`
	EstimatedRepairCost string  `json:"estimated_repair_cost"`
	PublicSafetyImpact  string  `json:"public_safety_impact"`
	Lat                 float64 `json:"lat"`
	Lng                 float64 `json:"lng"`
	InProgressURL       string  `json:"in_progress_url"`
	ResolvedURL         string  `json:"resolved_url"`
	RejectedURL         string  `json:"rejected_url"`
}

// Adapter is the boundary to the AI collaborator. Failures propagate to the
// caller; the caller must not mutate any record on error.
type Adapter interface {
	ClassifyHazard(ctx context.Context, imageB64 string) (Classification, error)
	ReInspectHazard(ctx context.Context, beforeB64, afterB64 string) (ReInspection, error)
	ComposeAuthorityEmail(ctx context.Context, req EmailRequest) (string, error)
}
