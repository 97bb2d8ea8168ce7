package pkg

import (
	"context"
	"crypto/tls"
	"errors"

	"gopkg.in/gomail.v2"
)

var ErrEmptyRecipient = errors.New("empty recipient")

type SMTPConfig struct {
	Host     string
	Port     int
	Username string // 发件人邮箱
	Password string // 授权码/密码
	From     string // 显示的发件人，可与 Username 相同
}

// SendEmail from 为空时使用配置中的发件人
func SendEmail(cfg SMTPConfig, from, to, subject, htmlBody string) error {
	if from == "" {
		from = cfg.From
	}
	m := gomail.NewMessage()
	m.SetHeader("From", from)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", htmlBody)

	d := gomail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password)
	d.TLSConfig = &tls.Config{ServerName: cfg.Host}
	return d.DialAndSend(m)
}

// SMTPMailer 发件配置在构造时注入
type SMTPMailer struct {
	cfg SMTPConfig
}

func NewSMTPMailer(cfg SMTPConfig) *SMTPMailer {
	return &SMTPMailer{cfg: cfg}
}

func (m *SMTPMailer) Send(ctx context.Context, from, to, subject, htmlBody string) error {
	if to == "" {
		return ErrEmptyRecipient
	}
	// gomail 不支持 context，发送前检查一次是否已取消
	if err := ctx.Err(); err != nil {
		return err
	}
	return SendEmail(m.cfg, from, to, subject, htmlBody)
}
