// Package mail delivers transactional email over SMTP. Delivery is best
// effort: an unconfigured mailer logs and drops the message so account
// flows behave the same with or without an SMTP server.
package mail

import (
	"crypto/tls"
	"fmt"
	"log"
	"mime"
	"net"
	"net/smtp"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
	FromName string
}

type Mailer struct {
	config Config
	logger *log.Logger
}

func NewMailer(config Config, logger *log.Logger) *Mailer {
	if logger == nil {
		logger = log.Default()
	}
	if config.FromName == "" {
		config.FromName = "LifeSync"
	}
	if config.Port == 0 {
		config.Port = 587
	}
	return &Mailer{config: config, logger: logger}
}

func (mailer *Mailer) Configured() bool {
	return mailer.config.Host != "" && mailer.config.From != ""
}

// SendPasswordReset emails the reset token to the account holder. The
// token is returned to nobody else; an unconfigured mailer only logs
// that a message was skipped.
func (mailer *Mailer) SendPasswordReset(to string, token string) error {
	body := strings.Join([]string{
		"A password reset was requested for your account.",
		"",
		"Reset token: " + token,
		"",
		"The token expires in 30 minutes. If you did not request this, ignore this email.",
	}, "\r\n")
	return mailer.send(to, "Reset your password", body)
}

func (mailer *Mailer) send(to string, subject string, body string) error {
	if !mailer.Configured() {
		mailer.logger.Printf("smtp not configured, dropping mail to %s", to)
		return nil
	}

	fromHeader := fmt.Sprintf("%s <%s>", mime.QEncoding.Encode("utf-8", mailer.config.FromName), mailer.config.From)
	var message strings.Builder
	message.WriteString("From: " + fromHeader + "\r\n")
	message.WriteString("To: " + to + "\r\n")
	message.WriteString("Subject: " + mime.QEncoding.Encode("utf-8", subject) + "\r\n")
	message.WriteString("MIME-Version: 1.0\r\n")
	message.WriteString("Content-Type: text/plain; charset=UTF-8\r\n")
	message.WriteString("\r\n")
	message.WriteString(body)

	addr := net.JoinHostPort(mailer.config.Host, strconv.Itoa(mailer.config.Port))
	dialer := net.Dialer{Timeout: 5 * time.Second}
	conn, err := dialer.Dial("tcp", addr)
	if err != nil {
		return fmt.Errorf("dial smtp: %w", err)
	}
	_ = conn.SetDeadline(time.Now().Add(15 * time.Second))

	client, err := smtp.NewClient(conn, mailer.config.Host)
	if err != nil {
		_ = conn.Close()
		return fmt.Errorf("smtp handshake: %w", err)
	}
	defer client.Close()

	if ok, _ := client.Extension("STARTTLS"); ok {
		if err := client.StartTLS(&tls.Config{ServerName: mailer.config.Host}); err != nil {
			return fmt.Errorf("starttls: %w", err)
		}
	}
	if mailer.config.Username != "" {
		auth := smtp.PlainAuth("", mailer.config.Username, mailer.config.Password, mailer.config.Host)
		if err := client.Auth(auth); err != nil {
			return fmt.Errorf("smtp auth: %w", err)
		}
	}

	if err := client.Mail(mailer.config.From); err != nil {
		return fmt.Errorf("smtp mail from: %w", err)
	}
	if err := client.Rcpt(to); err != nil {
		return fmt.Errorf("smtp rcpt to: %w", err)
	}
	writer, err := client.Data()
	if err != nil {
		return fmt.Errorf("smtp data: %w", err)
	}
	if _, err := writer.Write([]byte(message.String())); err != nil {
		_ = writer.Close()
		return fmt.Errorf("smtp write: %w", err)
	}
	if err := writer.Close(); err != nil {
		return fmt.Errorf("smtp close: %w", err)
	}
	return client.Quit()
}
