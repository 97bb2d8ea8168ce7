package mongo

import (
	"context"
	"errors"
	"time"

	"IT_Hub/internal/model"
	"IT_Hub/internal/repository"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type Store struct {
	Client *mongo.Client
	DB     *mongo.Database

	users     *mongo.Collection
	questions *mongo.Collection
	comments  *mongo.Collection
	reports   *mongo.Collection
	polls     *mongo.Collection
}

func NewStore(ctx context.Context, uri, dbname string) (*Store, error) {
	cli, err := mongo.Connect(ctx, options.Client().
		ApplyURI(uri).
		SetRetryWrites(true).
		SetMaxPoolSize(50),
	)
	if err != nil {
		return nil, err
	}
	if err := cli.Ping(ctx, nil); err != nil {
		return nil, err
	}
	db := cli.Database(dbname)
	return &Store{
		Client:    cli,
		DB:        db,
		users:     db.Collection("users"),
		questions: db.Collection("questions"),
		comments:  db.Collection("comments"),
		reports:   db.Collection("reports"),
		polls:     db.Collection("polls"),
	}, nil
}

func (s *Store) Ping(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	return s.Client.Ping(ctx, nil)
}

func (s *Store) Close(ctx context.Context) error { return s.Client.Disconnect(ctx) }

func (s *Store) EnsureIndexes(ctx context.Context) error {
	if _, err := s.comments.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "question_id", Value: 1}},
		Options: options.Index().SetName("question_id"),
	}); err != nil {
		return err
	}
	if _, err := s.reports.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "reported_on", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("uniq_reported_on"),
		},
		{
			Keys:    bson.D{{Key: "count", Value: -1}},
			Options: options.Index().SetName("count_desc"),
		},
	}); err != nil {
		return err
	}
	_, err := s.polls.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "phase", Value: 1}, {Key: "expires_at", Value: 1}},
			Options: options.Index().SetName("phase_expires"),
		},
		{
			Keys:    bson.D{{Key: "created_at", Value: 1}, {Key: "_id", Value: 1}},
			Options: options.Index().SetName("created_asc"),
		},
	})
	return err
}

func (s *Store) Users() *UserRepository         { return &UserRepository{col: s.users} }
func (s *Store) Questions() *QuestionRepository { return &QuestionRepository{col: s.questions, users: s.users} }
func (s *Store) Comments() *CommentRepository   { return &CommentRepository{col: s.comments, users: s.users} }
func (s *Store) Reports() *ReportRepository     { return &ReportRepository{col: s.reports} }
func (s *Store) Polls() *PollRepository         { return &PollRepository{col: s.polls} }

// findAuthor 只取通知需要的姓名和邮箱
func findAuthor(ctx context.Context, users *mongo.Collection, id string) (*model.User, error) {
	var u model.User
	err := users.FindOne(ctx, bson.M{"_id": id},
		options.FindOne().SetProjection(bson.M{"name": 1, "email": 1})).Decode(&u)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func deleteOne(ctx context.Context, col *mongo.Collection, id string) error {
	res, err := col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func decodeAll[T any](ctx context.Context, cur *mongo.Cursor) ([]T, error) {
	defer cur.Close(ctx)
	out := make([]T, 0)
	for cur.Next(ctx) {
		var v T
		if err := cur.Decode(&v); err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, cur.Err()
}
