package mongo

import (
	"context"
	"errors"

	"IT_Hub/internal/model"
	"IT_Hub/internal/repository"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type UserRepository struct {
	col *mongo.Collection
}

func (r *UserRepository) AdjustContribution(ctx context.Context, id string, delta int) error {
	res, err := r.col.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$inc": bson.M{"contribution": delta}})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return repository.ErrNotFound
	}
	return nil
}

type QuestionRepository struct {
	col   *mongo.Collection
	users *mongo.Collection
}

func (r *QuestionRepository) FindByID(ctx context.Context, id string) (*model.Question, error) {
	var q model.Question
	err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&q)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	if q.Questioner, err = findAuthor(ctx, r.users, q.QuestionerID); err != nil {
		return nil, err
	}
	return &q, nil
}

func (r *QuestionRepository) DeleteByID(ctx context.Context, id string) error {
	return deleteOne(ctx, r.col, id)
}

type CommentRepository struct {
	col   *mongo.Collection
	users *mongo.Collection
}

func (r *CommentRepository) FindByID(ctx context.Context, id string) (*model.Comment, error) {
	var c model.Comment
	err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&c)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	if c.Commenter, err = findAuthor(ctx, r.users, c.CommenterID); err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *CommentRepository) DeleteByID(ctx context.Context, id string) error {
	return deleteOne(ctx, r.col, id)
}

func (r *CommentRepository) DeleteByQuestion(ctx context.Context, questionID string) (int64, error) {
	res, err := r.col.DeleteMany(ctx, bson.M{"question_id": questionID})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}

type ReportRepository struct {
	col *mongo.Collection
}

func (r *ReportRepository) ListByCountDesc(ctx context.Context) ([]model.Report, error) {
	cur, err := r.col.Find(ctx, bson.M{},
		options.Find().SetSort(bson.D{{Key: "count", Value: -1}, {Key: "_id", Value: 1}}))
	if err != nil {
		return nil, err
	}
	return decodeAll[model.Report](ctx, cur)
}

func (r *ReportRepository) DeleteByTarget(ctx context.Context, postID string) (int64, error) {
	res, err := r.col.DeleteMany(ctx, bson.M{"reported_on": postID})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}
