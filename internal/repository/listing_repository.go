package repository

import (
	"context"
	"errors"

	"cablib/internal/domain/listing"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const listingFetchLimit = 100

// ListingFilter is the store-level filter set. Zero values disable the
// corresponding criterion.
type ListingFilter struct {
	City          string // case-insensitive substring
	StructureType string
	MinSize       int
	MaxRent       int
	Profession    string // case-insensitive substring in profiles_searched
}

type ListingRepository interface {
	Create(ctx context.Context, l listing.Listing) error
	GetByID(ctx context.Context, id string) (listing.Listing, error)
	Update(ctx context.Context, l listing.Listing) error
	Delete(ctx context.Context, id string) error

	// List returns newest-first listings matching the filter, bounded.
	List(ctx context.Context, f ListingFilter) ([]listing.Listing, error)
	// ListAll returns listings in creation order, bounded. Used by the
	// matcher and the radius search, which do their own ordering.
	ListAll(ctx context.Context) ([]listing.Listing, error)
}

type MongoListingRepository struct {
	coll *mongo.Collection
}

func NewMongoListingRepository(coll *mongo.Collection) *MongoListingRepository {
	return &MongoListingRepository{coll: coll}
}

func (r *MongoListingRepository) Create(ctx context.Context, l listing.Listing) error {
	_, err := r.coll.InsertOne(ctx, l)
	return err
}

func (r *MongoListingRepository) GetByID(ctx context.Context, id string) (listing.Listing, error) {
	var l listing.Listing
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&l); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return listing.Listing{}, listing.ErrNotFound
		}
		return listing.Listing{}, err
	}
	return l, nil
}

func (r *MongoListingRepository) Update(ctx context.Context, l listing.Listing) error {
	res, err := r.coll.UpdateOne(ctx, bson.M{"id": l.ID}, bson.M{"$set": bson.M{
		"title":                 l.Title,
		"city":                  l.City,
		"address":               l.Address,
		"structure_type":        l.StructureType,
		"size":                  l.Size,
		"monthly_rent":          l.MonthlyRent,
		"description":           l.Description,
		"photos":                l.Photos,
		"professionals_present": l.ProfessionalsPresent,
		"profiles_searched":     l.ProfilesSearched,
		"is_featured":           l.IsFeatured,
	}})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return listing.ErrNotFound
	}
	return nil
}

func (r *MongoListingRepository) Delete(ctx context.Context, id string) error {
	res, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return listing.ErrNotFound
	}
	return nil
}

func (r *MongoListingRepository) List(ctx context.Context, f ListingFilter) ([]listing.Listing, error) {
	query := bson.M{}
	if f.City != "" {
		query["city"] = primitive.Regex{Pattern: f.City, Options: "i"}
	}
	if f.StructureType != "" {
		query["structure_type"] = f.StructureType
	}
	if f.MinSize > 0 {
		query["size"] = bson.M{"$gte": f.MinSize}
	}
	if f.MaxRent > 0 {
		query["monthly_rent"] = bson.M{"$lte": f.MaxRent}
	}
	if f.Profession != "" {
		query["profiles_searched"] = primitive.Regex{Pattern: f.Profession, Options: "i"}
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetLimit(listingFetchLimit)
	return r.find(ctx, query, opts)
}

func (r *MongoListingRepository) ListAll(ctx context.Context) ([]listing.Listing, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: 1}}).
		SetLimit(listingFetchLimit)
	return r.find(ctx, bson.M{}, opts)
}

func (r *MongoListingRepository) find(ctx context.Context, query bson.M, opts *options.FindOptions) ([]listing.Listing, error) {
	cur, err := r.coll.Find(ctx, query, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	out := make([]listing.Listing, 0)
	for cur.Next(ctx) {
		var l listing.Listing
		if err := cur.Decode(&l); err != nil {
			return nil, err
		}
		out = append(out, l)
	}
	return out, cur.Err()
}
