// Package notify delivers best-effort claim emails through a transactional
// email HTTP API. Delivery failures are logged and dropped; nothing here may
// affect the claim that triggered the notification.
package notify

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/discvault/api/internal/claims"
	"github.com/discvault/api/internal/config"
)

type emailPayload struct {
	From    string   `json:"from"`
	To      []string `json:"to"`
	Subject string   `json:"subject"`
	HTML    string   `json:"html"`
}

// ClaimMailer implements claims.Notifier over an HTTP email API.
type ClaimMailer struct {
	cfg      *config.Config
	contacts claims.ContactSource
	client   *http.Client
}

func NewClaimMailer(cfg *config.Config, contacts claims.ContactSource) *ClaimMailer {
	return &ClaimMailer{
		cfg:      cfg,
		contacts: contacts,
		client:   &http.Client{Timeout: 10 * time.Second},
	}
}

// ClaimSubmitted emails the finder that someone claimed their found disc.
func (m *ClaimMailer) ClaimSubmitted(n claims.Notification) error {
	if m.cfg.MailAPIKey == "" {
		slog.Debug("mail API key not configured, skipping claim email", "claim_id", n.ClaimID)
		return nil
	}

	finder, err := m.contacts.Contact(n.FinderID)
	if err != nil {
		return fmt.Errorf("resolve finder contact: %w", err)
	}
	if finder.Email == "" {
		slog.Debug("finder has no email on file, skipping claim email", "claim_id", n.ClaimID)
		return nil
	}

	body := fmt.Sprintf(
		"<p>Someone claimed the <strong>%s</strong> you reported found.</p>"+
			"<p>Review the claim on your claims page. If you approve it, the "+
			"claimer will see your contact information so you can arrange the return.</p>",
		n.DiscName)
	if n.Message != "" {
		body += fmt.Sprintf("<p>Their message: <em>%s</em></p>", n.Message)
	}

	payload := emailPayload{
		From:    m.cfg.MailFrom,
		To:      []string{finder.Email},
		Subject: "Someone claimed your found disc",
		HTML:    body,
	}

	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal email payload: %w", err)
	}

	req, err := http.NewRequest(http.MethodPost, m.cfg.MailAPIURL, bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("build email request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+m.cfg.MailAPIKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := m.client.Do(req)
	if err != nil {
		return fmt.Errorf("send claim email: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return fmt.Errorf("email API returned status %d", resp.StatusCode)
	}

	slog.Info("claim email sent", "claim_id", n.ClaimID)
	return nil
}
