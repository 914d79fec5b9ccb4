package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/peoplecore/hris-api/internal/core/domain"
	"github.com/peoplecore/hris-api/internal/core/ports"
)

const collectionChangeRequests = "change_requests"

type ChangeRequestRepository struct {
	col *mongo.Collection
}

func NewChangeRequestRepository(db *mongo.Database) *ChangeRequestRepository {
	return &ChangeRequestRepository{col: db.Collection(collectionChangeRequests)}
}

// Create inserts a new change request document.
func (r *ChangeRequestRepository) Create(ctx context.Context, cr *domain.ChangeRequest) (*domain.ChangeRequest, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cr.ID = primitive.NewObjectID().Hex()
	if _, err := r.col.InsertOne(ctx, cr); err != nil {
		return nil, fmt.Errorf("insert change request: %w", err)
	}
	return cr, nil
}

// FindByID retrieves one change request.
func (r *ChangeRequestRepository) FindByID(ctx context.Context, id string) (*domain.ChangeRequest, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var cr domain.ChangeRequest
	if err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&cr); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrRequestNotFound
		}
		return nil, fmt.Errorf("find change request: %w", err)
	}
	return &cr, nil
}

// List returns a page of change requests matching filter, most recent
// first, and the total count.
func (r *ChangeRequestRepository) List(ctx context.Context, filter ports.ListChangeRequestsFilter) ([]*domain.ChangeRequest, int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	query := bson.M{}
	if filter.RequesterID != "" {
		query["requester_id"] = filter.RequesterID
	}
	if filter.EmployeeID != "" {
		query["employee_id"] = filter.EmployeeID
	}
	if filter.Status != "" {
		query["status"] = filter.Status
	}

	total, err := r.col.CountDocuments(ctx, query)
	if err != nil {
		return nil, 0, fmt.Errorf("count change requests: %w", err)
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetSkip(int64(filter.Offset)).
		SetLimit(int64(filter.Limit))

	cur, err := r.col.Find(ctx, query, opts)
	if err != nil {
		return nil, 0, fmt.Errorf("list change requests: %w", err)
	}
	defer cur.Close(ctx)

	var items []*domain.ChangeRequest
	if err := cur.All(ctx, &items); err != nil {
		return nil, 0, fmt.Errorf("decode change requests: %w", err)
	}
	return items, total, nil
}

// CountPending returns the number of requests awaiting review.
func (r *ChangeRequestRepository) CountPending(ctx context.Context) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	n, err := r.col.CountDocuments(ctx, bson.M{"status": domain.ChangePending})
	if err != nil {
		return 0, fmt.Errorf("count pending change requests: %w", err)
	}
	return n, nil
}

// MarkReviewed flips a pending request to a terminal status. The filter
// includes status=pending so the transition is a single conditional
// update: a request that was already reviewed (or does not exist) yields
// domain.ErrRequestNotPending and nothing is written.
func (r *ChangeRequestRepository) MarkReviewed(
	ctx context.Context,
	id string,
	status domain.ChangeRequestStatus,
	reviewedBy, notes string,
	reviewedAt time.Time,
) (*domain.ChangeRequest, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	filter := bson.M{"_id": id, "status": domain.ChangePending}
	update := bson.M{"$set": bson.M{
		"status":       status,
		"reviewed_by":  reviewedBy,
		"reviewed_at":  reviewedAt.UTC(),
		"review_notes": notes,
		"updated_at":   reviewedAt.UTC(),
	}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var cr domain.ChangeRequest
	if err := r.col.FindOneAndUpdate(ctx, filter, update, opts).Decode(&cr); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrRequestNotPending
		}
		return nil, fmt.Errorf("mark change request reviewed: %w", err)
	}
	return &cr, nil
}

// EnsureIndexes creates necessary indexes on the change_requests
// collection.
func (r *ChangeRequestRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "requester_id", Value: 1}}},
		{Keys: bson.D{{Key: "employee_id", Value: 1}}},
		{Keys: bson.D{{Key: "status", Value: 1}, {Key: "created_at", Value: -1}}},
	}

	_, err := r.col.Indexes().CreateMany(ctx, indexes)
	return err
}
