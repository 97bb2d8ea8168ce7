package mongo

import (
	"context"
	"errors"
	"time"

	"IT_Hub/internal/model"
	"IT_Hub/internal/repository"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type PollRepository struct {
	col *mongo.Collection
}

func (r *PollRepository) Create(ctx context.Context, p *model.Poll) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	_, err := r.col.InsertOne(ctx, p)
	return err
}

func (r *PollRepository) FindByID(ctx context.Context, id string) (*model.Poll, error) {
	var p model.Poll
	err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&p)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *PollRepository) Save(ctx context.Context, p *model.Poll) error {
	res, err := r.col.ReplaceOne(ctx, bson.M{"_id": p.ID}, p)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *PollRepository) Find(ctx context.Context, f model.PollFilter) ([]model.Poll, error) {
	filter := bson.M{}
	if f.Phase != "" {
		filter["phase"] = f.Phase
	}
	if f.ExpiresBefore != nil {
		filter["expires_at"] = bson.M{"$lt": *f.ExpiresBefore}
	}
	if f.Completed != nil {
		filter["is_completed"] = *f.Completed
	}
	cur, err := r.col.Find(ctx, filter,
		options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}, {Key: "_id", Value: 1}}))
	if err != nil {
		return nil, err
	}
	return decodeAll[model.Poll](ctx, cur)
}

func (r *PollRepository) MarkCompleted(ctx context.Context, now time.Time) (int64, error) {
	res, err := r.col.UpdateMany(ctx,
		bson.M{"phase": model.PhaseFinal, "expires_at": bson.M{"$lt": now}, "is_completed": false},
		bson.M{"$set": bson.M{"is_completed": true, "updated_at": now}},
	)
	if err != nil {
		return 0, err
	}
	return res.ModifiedCount, nil
}
