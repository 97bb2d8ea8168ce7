package service

import (
	"context"
	"testing"

	"IT_Hub/internal/model"
	"IT_Hub/internal/pkg"
	"IT_Hub/internal/repository/memory"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedPosts(t *testing.T) (*memory.Store, model.User, model.Question, model.Comment) {
	t.Helper()
	s := memory.NewStore()
	u := s.PutUser(model.User{Name: "bob", Email: "bob@example.com", Contribution: 20})
	q := s.PutQuestion(model.Question{QuestionerID: u.ID, Body: "how do pointers work", IsReported: true})
	c := s.PutComment(model.Comment{QuestionID: q.ID, CommenterID: u.ID, Body: "spam spam", IsReported: true})
	return s, u, q, c
}

func TestLocateComment(t *testing.T) {
	s, u, _, c := seedPosts(t)
	l := NewContentLocator(s.Comments(), s.Questions())

	post, err := l.Locate(context.Background(), c.ID)
	require.NoError(t, err)
	assert.Equal(t, PostComment, post.Kind)
	assert.Equal(t, c.ID, post.ID())
	assert.Equal(t, "spam spam", post.Body())
	require.NotNil(t, post.Author())
	assert.Equal(t, u.Email, post.Author().Email)
}

func TestLocateQuestion(t *testing.T) {
	s, u, q, _ := seedPosts(t)
	l := NewContentLocator(s.Comments(), s.Questions())

	post, err := l.Locate(context.Background(), q.ID)
	require.NoError(t, err)
	assert.Equal(t, PostQuestion, post.Kind)
	assert.Equal(t, u.Name, post.Author().Name)
}

func TestLocateNotReportedIsNotFound(t *testing.T) {
	s := memory.NewStore()
	u := s.PutUser(model.User{Name: "c"})
	q := s.PutQuestion(model.Question{QuestionerID: u.ID, Body: "fine"})
	l := NewContentLocator(s.Comments(), s.Questions())

	_, err := l.Locate(context.Background(), q.ID)
	require.Error(t, err)
	assert.True(t, pkg.IsKind(err, pkg.KindNotFound))

	_, missing := l.Locate(context.Background(), "missing")
	assert.True(t, pkg.IsKind(missing, pkg.KindNotFound))
	assert.Contains(t, pkg.PublicMessage(err), "has been reported")
	assert.Contains(t, pkg.PublicMessage(missing), "has been reported")
}

func TestLocateRepositoryFailureIsInternal(t *testing.T) {
	s := memory.NewStore()
	l := NewContentLocator(brokenComments{}, s.Questions())

	_, err := l.Locate(context.Background(), "x")
	assert.True(t, pkg.IsKind(err, pkg.KindInternal))
	assert.ErrorIs(t, err, errBoom)
}

func TestLocatePrefersCommentOnSharedID(t *testing.T) {
	s := memory.NewStore()
	u := s.PutUser(model.User{Name: "f", Email: "f@example.com"})
	s.PutQuestion(model.Question{ID: "dup", QuestionerID: u.ID, Body: "question text", IsReported: true})
	s.PutComment(model.Comment{ID: "dup", QuestionID: "elsewhere", CommenterID: u.ID, Body: "comment text", IsReported: true})
	l := NewContentLocator(s.Comments(), s.Questions())

	post, err := l.Locate(context.Background(), "dup")
	require.NoError(t, err)
	assert.Equal(t, PostComment, post.Kind)
	assert.Equal(t, "comment text", post.Body())
}
