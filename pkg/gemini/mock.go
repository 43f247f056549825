package gemini

import (
	"context"
	"fmt"
	"hash/fnv"
)

// MockAdapter produces deterministic verdicts from the image payload so the
// platform runs end to end without the AI gateway.
type MockAdapter struct{}

func hashString(s string) uint64 {
	h := fnv.New64a()
	h.Write([]byte(s))
	return h.Sum64()
}

func (MockAdapter) ClassifyHazard(ctx context.Context, imageB64 string) (Classification, error) {
	h := hashString(imageB64)

	categories := []string{"POTHOLE", "CRACK", "WATERLOGGING", "FALLEN_OBJECT", "OTHER"}
	severities := []string{"LOW", "MEDIUM", "HIGH", "CRITICAL"}

	// One in eight submissions is rejected to exercise the short-circuit path.
	if h%8 == 0 {
		return Classification{
			IsValidIssue:    false,
			ConfidenceScore: 40,
			RejectionReason: "Image does not show a verifiable road hazard",
		}, nil
	}

	return Classification{
		IsValidIssue:        true,
		Category:            categories[int(h)%len(categories)],
		Severity:            severities[int(h/7)%len(severities)],
		Description:         "Surface damage consistent with structural wear",
		EstimatedRepairCost: "$200 - $800",
		PublicSafetyImpact:  "Risk to two-wheelers and night traffic",
		SafetyInsight:       "Mark the area and avoid the outer lane until repaired",
		ConfidenceScore:     70 + int(h%30),
	}, nil
}

func (MockAdapter) ReInspectHazard(ctx context.Context, beforeB64, afterB64 string) (ReInspection, error) {
	h := hashString(beforeB64 + afterB64)
	if h%3 == 0 {
		return ReInspection{IsResolved: false, Confidence: 55, Summary: "Hazard still visible in follow-up image"}, nil
	}
	return ReInspection{IsResolved: true, Confidence: 85, Summary: "Repair visible; hazard no longer present"}, nil
}

func (MockAdapter) ComposeAuthorityEmail(ctx context.Context, req EmailRequest) (string, error) {
	return fmt.Sprintf(
		"URGENT MAINTENANCE REQUEST\n\n"+
			"Hazard: %s (severity %s, AI confidence %d%%)\n"+
			"Location: %.5f, %.5f\n"+
			"Assessment: %s\n"+
			"Estimated repair cost: %s\n"+
			"Public safety impact: %s\n\n"+
			"One-click status updates:\n"+
			"  Work started: %s\n"+
			"  Resolved: %s\n"+
			"  Rejected: %s\n",
		req.Category, req.Severity, req.ConfidenceScore,
		req.Lat, req.Lng,
		req.Description,
		req.EstimatedRepairCost,
		req.PublicSafetyImpact,
		req.InProgressURL, req.ResolvedURL, req.RejectedURL,
	), nil
}
