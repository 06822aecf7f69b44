package mailer

import (
	"crypto/tls"
	"fmt"

	mail "github.com/go-mail/mail/v2"
	"go.uber.org/zap"

	"eventura/config"
)

// Mailer SMTP 邮件发送器
// 未配置 SMTP 时发送调用为空操作（开发环境降级）
type Mailer struct {
	cfg    *config.MailConfig
	logger *zap.Logger
}

// NewMailer 创建邮件发送器
func NewMailer(cfg *config.MailConfig, logger *zap.Logger) *Mailer {
	return &Mailer{cfg: cfg, logger: logger}
}

// Enabled SMTP 是否已配置
func (m *Mailer) Enabled() bool {
	return m.cfg.SMTPHost != "" && m.cfg.From != ""
}

// Send 发送 HTML 邮件
// 强制 STARTTLS（适配 Gmail/Office365 的 587 端口）
func (m *Mailer) Send(to []string, subject, html string) error {
	if len(to) == 0 {
		return nil
	}
	if !m.Enabled() {
		m.logger.Debug("SMTP 未配置，跳过邮件发送", zap.Strings("to", to))
		return nil
	}

	msg := mail.NewMessage()
	msg.SetHeader("From", m.cfg.From)
	msg.SetHeader("To", to...)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/html", html)

	d := mail.NewDialer(m.cfg.SMTPHost, m.cfg.SMTPPort, m.cfg.Username, m.cfg.Password)
	d.StartTLSPolicy = mail.MandatoryStartTLS
	d.TLSConfig = &tls.Config{ServerName: m.cfg.SMTPHost}

	if err := d.DialAndSend(msg); err != nil {
		return fmt.Errorf("发送邮件失败: %w", err)
	}
	return nil
}
