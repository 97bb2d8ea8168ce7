package service

import (
	"encoding/json"

	"IT_Hub/internal/model"
)

type PostKind string

const (
	PostComment  PostKind = "Comment"
	PostQuestion PostKind = "Question"
)

// Post 被举报内容，Comment 与 Question 二选一
type Post struct {
	Kind     PostKind
	Comment  *model.Comment
	Question *model.Question
}

func commentPost(c *model.Comment) *Post  { return &Post{Kind: PostComment, Comment: c} }
func questionPost(q *model.Question) *Post { return &Post{Kind: PostQuestion, Question: q} }

func (p *Post) ID() string {
	if p.Kind == PostComment {
		return p.Comment.ID
	}
	return p.Question.ID
}

func (p *Post) Body() string {
	if p.Kind == PostComment {
		return p.Comment.Body
	}
	return p.Question.Body
}

func (p *Post) AuthorID() string {
	if p.Kind == PostComment {
		return p.Comment.CommenterID
	}
	return p.Question.QuestionerID
}

// Author 可能为空（作者账号已不存在）
func (p *Post) Author() *model.User {
	if p.Kind == PostComment {
		return p.Comment.Commenter
	}
	return p.Question.Questioner
}

func (p *Post) IsReported() bool {
	if p.Kind == PostComment {
		return p.Comment.IsReported
	}
	return p.Question.IsReported
}

// MarshalJSON 直接输出底层记录，与单独查询评论或问题时的结构一致
func (p *Post) MarshalJSON() ([]byte, error) {
	if p.Kind == PostComment {
		return json.Marshal(p.Comment)
	}
	return json.Marshal(p.Question)
}
