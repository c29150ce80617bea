package service

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"swift_elearning_backend/internal/config"
)

const mailjetSendURL = "https://api.mailjet.com/v3.1/send"

// MailService mengirim email transaksional lewat API Mailjet v3.1.
// Pemanggil memperlakukannya fire-and-forget: kegagalan dicatat oleh
// pemanggil, tidak pernah di-retry di sini.
type MailService struct {
	Cfg    *config.MailConfig
	Client *http.Client
}

func NewMailService(cfg *config.MailConfig) *MailService {
	return &MailService{
		Cfg: cfg,
		Client: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

type mailjetMessage struct {
	From             map[string]string      `json:"From"`
	To               []map[string]string    `json:"To"`
	TemplateID       int                    `json:"TemplateID,omitempty"`
	TemplateLanguage bool                   `json:"TemplateLanguage,omitempty"`
	Subject          string                 `json:"Subject"`
	TextPart         string                 `json:"TextPart,omitempty"`
	Variables        map[string]interface{} `json:"Variables,omitempty"`
}

func (s *MailService) send(msg mailjetMessage) error {
	body, err := json.Marshal(map[string]interface{}{
		"Messages": []mailjetMessage{msg},
	})
	if err != nil {
		return err
	}

	req, err := http.NewRequest(http.MethodPost, mailjetSendURL, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.SetBasicAuth(s.Cfg.APIKeyPublic, s.Cfg.APIKeyPrivate)

	resp, err := s.Client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		return fmt.Errorf("mailjet returned status %d", resp.StatusCode)
	}
	return nil
}

func (s *MailService) sender() map[string]string {
	return map[string]string{
		"Email": s.Cfg.SenderEmail,
		"Name":  s.Cfg.SenderName,
	}
}

func (s *MailService) SendActivationEmail(email, name, code string) error {
	return s.send(mailjetMessage{
		From:             s.sender(),
		To:               []map[string]string{{"Email": email, "Name": name}},
		TemplateID:       s.Cfg.TemplateID,
		TemplateLanguage: true,
		Subject:          "Konfirmasi Email Swift E-Learning",
		Variables: map[string]interface{}{
			"name": name,
			"otp":  code,
		},
	})
}

func (s *MailService) SendPasswordResetEmail(email, name, newPassword string) error {
	return s.send(mailjetMessage{
		From:    s.sender(),
		To:      []map[string]string{{"Email": email, "Name": name}},
		Subject: "Password Baru Swift E-Learning",
		TextPart: fmt.Sprintf(
			"Halo %s,\n\nPassword sementara anda: %s\nSegera login dan ganti password anda.\n",
			name, newPassword,
		),
	})
}
