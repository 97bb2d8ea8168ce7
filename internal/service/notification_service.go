package service

import (
	"context"
	"errors"
	"fmt"
	"html"
)

var ErrNoRecipient = errors.New("notification recipient missing")

type NotificationService struct {
	mailer Mailer
	from   string
}

// NewNotificationService from 为发件人地址，由配置注入
func NewNotificationService(mailer Mailer, from string) *NotificationService {
	return &NotificationService{mailer: mailer, from: from}
}

func (s *NotificationService) Notify(ctx context.Context, to, subject, body string) error {
	if to == "" {
		return ErrNoRecipient
	}
	return s.mailer.Send(ctx, s.from, to, subject, body)
}

// RemovalSubject 按内容类型生成删除通知标题
func RemovalSubject(p *Post) string {
	return fmt.Sprintf("%s Removed By Admin", p.Kind)
}

// RemovalMessage 删除通知正文
func RemovalMessage(p *Post) string {
	name := ""
	if a := p.Author(); a != nil {
		name = a.Name
	}
	return fmt.Sprintf(`
    <h2>Hello %s,</h2>
    <p>Reports on your post were reviewed by the admin and found to be valid.</p>
    <p>So your post has been removed by the admin.</p>
    <p>Please don't post unnecessary content or else your account will be deleted then you can't take part in events organized by the club and you as well receive more punishment from the college as well.</p>
    <p>Be more careful</p>
    <p>Reported Content:</p>
    <p>%s</p>
    <p>Regards...</p>
    <p>IT-Hub</p>
  `, html.EscapeString(name), html.EscapeString(p.Body()))
}
