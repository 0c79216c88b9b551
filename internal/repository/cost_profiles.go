package repository

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/guttosm/inventory-optimizer/internal/optimizer"
)

// CostProfile is a stored set of default cost coefficients and grid policy.
// Exactly one profile is active at a time; older ones are kept as history.
type CostProfile struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	OrderFee       float64            `bson:"order_fee" json:"order_fee"`
	StorageCost    float64            `bson:"storage_cost" json:"storage_cost"`
	ShortageCost   float64            `bson:"shortage_cost" json:"shortage_cost"`
	Step           int                `bson:"step,omitempty" json:"step,omitempty"`
	CapacityFactor int                `bson:"capacity_factor,omitempty" json:"capacity_factor,omitempty"`
	Active         bool               `bson:"active" json:"active"`
	Version        int                `bson:"version" json:"version"`
	CreatedAt      time.Time          `bson:"created_at" json:"created_at"`
	CreatedBy      string             `bson:"created_by,omitempty" json:"created_by,omitempty"`
}

// Params returns the profile's cost coefficients.
func (p CostProfile) Params() optimizer.CostParams {
	return optimizer.CostParams{
		OrderFee:     p.OrderFee,
		StorageCost:  p.StorageCost,
		ShortageCost: p.ShortageCost,
	}
}

// CostProfilesRepository stores cost profiles in MongoDB.
type CostProfilesRepository struct {
	collection *mongo.Collection
}

// NewCostProfilesRepository creates a new cost profiles repository.
func NewCostProfilesRepository(db *MongoDB) *CostProfilesRepository {
	return &CostProfilesRepository{
		collection: db.CostProfiles,
	}
}

// GetActive returns the active profile, or nil when none has been stored.
func (r *CostProfilesRepository) GetActive(ctx context.Context) (*CostProfile, error) {
	var profile CostProfile
	err := r.collection.FindOne(ctx, bson.M{"active": true}).Decode(&profile)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &profile, nil
}

// Create stores draft as the new active profile. The previous active profile
// is deactivated and the version continues from the highest stored one.
func (r *CostProfilesRepository) Create(ctx context.Context, draft CostProfile) (*CostProfile, error) {
	var latest CostProfile
	err := r.collection.FindOne(ctx, bson.M{}, options.FindOne().SetSort(bson.D{{Key: "version", Value: -1}})).Decode(&latest)
	if err != nil && !errors.Is(err, mongo.ErrNoDocuments) {
		return nil, err
	}

	_, err = r.collection.UpdateMany(
		ctx,
		bson.M{"active": true},
		bson.M{"$set": bson.M{"active": false}},
	)
	if err != nil {
		return nil, err
	}

	profile := draft
	profile.ID = primitive.NewObjectID()
	profile.Active = true
	profile.Version = latest.Version + 1
	profile.CreatedAt = time.Now().UTC()

	if _, err := r.collection.InsertOne(ctx, profile); err != nil {
		return nil, err
	}
	return &profile, nil
}

// List returns profiles newest first. A non-positive limit returns all.
func (r *CostProfilesRepository) List(ctx context.Context, limit int) ([]CostProfile, error) {
	opts := options.Find().SetSort(bson.D{{Key: "version", Value: -1}})
	if limit > 0 {
		opts.SetLimit(int64(limit))
	}

	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = cursor.Close(ctx)
	}()

	var profiles []CostProfile
	if err := cursor.All(ctx, &profiles); err != nil {
		return nil, err
	}
	return profiles, nil
}
