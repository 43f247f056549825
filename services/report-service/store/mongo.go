package store

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"civicwatch-system/pkg/security"
	"civicwatch-system/services/report-service/models"
)

const reportsCollection = "reports"

// MongoStore persists reports one document per record. Mutations go through
// ReplaceOne keyed by id, never a whole-collection write, so concurrent
// writers to different reports cannot clobber each other.
type MongoStore struct {
	db *mongo.Database
}

func NewMongoStore(db *mongo.Database) *MongoStore {
	return &MongoStore{db: db}
}

func (s *MongoStore) Insert(ctx context.Context, report *models.Report) error {
	coll := s.db.Collection(reportsCollection)

	var existing models.Report
	err := coll.FindOne(ctx, bson.M{"_id": report.ID}).Decode(&existing)
	if err == nil {
		report.AuthorityToken = existing.AuthorityToken
		_, err = coll.ReplaceOne(ctx, bson.M{"_id": report.ID}, report)
		if err != nil {
			return fmt.Errorf("failed to overwrite report: %w", err)
		}
		return nil
	}
	if !errors.Is(err, mongo.ErrNoDocuments) {
		return fmt.Errorf("failed to look up report: %w", err)
	}

	if report.AuthorityToken == "" {
		token, tErr := security.NewAuthorityToken()
		if tErr != nil {
			return tErr
		}
		report.AuthorityToken = token
	}
	if report.Votes.Yes == nil {
		report.Votes.Yes = []string{}
	}
	if report.Votes.No == nil {
		report.Votes.No = []string{}
	}

	if _, err := coll.InsertOne(ctx, report); err != nil {
		return fmt.Errorf("failed to save report: %w", err)
	}
	return nil
}

func (s *MongoStore) GetAll(ctx context.Context) ([]models.Report, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := s.db.Collection(reportsCollection).Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch reports: %w", err)
	}
	defer cursor.Close(ctx)

	reports := []models.Report{}
	if err := cursor.All(ctx, &reports); err != nil {
		return nil, fmt.Errorf("failed to decode reports: %w", err)
	}
	return reports, nil
}

func (s *MongoStore) GetByID(ctx context.Context, id string) (*models.Report, error) {
	var report models.Report
	err := s.db.Collection(reportsCollection).FindOne(ctx, bson.M{"_id": id}).Decode(&report)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to fetch report: %w", err)
	}
	return &report, nil
}

func (s *MongoStore) Update(ctx context.Context, report *models.Report) error {
	result, err := s.db.Collection(reportsCollection).ReplaceOne(ctx, bson.M{"_id": report.ID}, report)
	if err != nil {
		return fmt.Errorf("failed to update report: %w", err)
	}
	if result.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}
