// Package directory resolves which maintenance authority receives a
// hazard report. Entries are reference data loaded from MongoDB; lookup
// walks from most to least specific and always lands on the global
// fallback so dispatch never fails for lack of a recipient.
package directory

import (
	"context"
	"strings"

	"civicwatch-system/services/report-service/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

const (
	// CategoryAll matches any hazard category within a region.
	CategoryAll = "ALL"
	// RegionAll matches any region.
	RegionAll = "ALL"

	// FallbackAuthority is the catch-all recipient used when no directory
	// entry matches a report.
	FallbackAuthority = "Emergency Global Dispatch"
)

var fallbackEmails = []string{"emergency-dispatch@civicwatch.example"}

// NormalizeRegion maps a report's city onto a directory region key.
func NormalizeRegion(city string) string {
	region := strings.ToUpper(strings.TrimSpace(city))
	if region == "" {
		return "UNKNOWN"
	}
	return region
}

// Load fetches the full authority directory. An empty collection is not an
// error; Resolve falls back to the global dispatch entry.
func Load(ctx context.Context, db *mongo.Database) ([]models.AuthorityDirectoryEntry, error) {
	cursor, err := db.Collection("authority_directory").Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var entries []models.AuthorityDirectoryEntry
	if err := cursor.All(ctx, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

// Resolve picks the recipient for a report. Precedence:
// exact region and category, then region with category ALL, then the
// ALL region, then the built-in emergency fallback.
func Resolve(entries []models.AuthorityDirectoryEntry, region string, category models.IssueCategory) models.AuthorityDirectoryEntry {
	if match, ok := find(entries, region, string(category)); ok {
		return match
	}
	if match, ok := find(entries, region, CategoryAll); ok {
		return match
	}
	if match, ok := find(entries, RegionAll, CategoryAll); ok {
		return match
	}
	return models.AuthorityDirectoryEntry{
		Region:        RegionAll,
		Category:      CategoryAll,
		AuthorityName: FallbackAuthority,
		Emails:        fallbackEmails,
	}
}

func find(entries []models.AuthorityDirectoryEntry, region, category string) (models.AuthorityDirectoryEntry, bool) {
	for _, e := range entries {
		if strings.EqualFold(e.Region, region) && strings.EqualFold(e.Category, category) {
			return e, true
		}
	}
	return models.AuthorityDirectoryEntry{}, false
}
