package notifier

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"go.uber.org/zap"

	"github.com/GlebRadaev/bookingledger/internal/domain"
	"github.com/GlebRadaev/bookingledger/pkg/clients"
)

type Poster interface {
	Post(url string, headers http.Header, body []byte) (statusCode int, respBody []byte, err error)
}

type emailRequest struct {
	UserID    string `json:"user_id"`
	Template  string `json:"template"`
	Subject   string `json:"subject"`
	Body      string `json:"body"`
	BookingID string `json:"booking_id,omitempty"`
}

// EmailSender hands notifications to the transactional email API.
type EmailSender struct {
	url    string
	client Poster
}

func NewEmailSender(address string, client Poster) *EmailSender {
	return &EmailSender{
		url:    address + "/api/emails",
		client: client,
	}
}

func (s *EmailSender) Send(ctx context.Context, n *domain.Notification) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	body, err := json.Marshal(emailRequest{
		UserID:    n.UserID,
		Template:  string(n.Kind),
		Subject:   n.Title,
		Body:      n.Message,
		BookingID: n.BookingID,
	})
	if err != nil {
		return err
	}

	headers := http.Header{}
	headers.Set("Content-Type", "application/json")
	headers.Set("Idempotency-Key", n.ID)

	statusCode, respBody, err := s.client.Post(s.url, headers, body)
	if err != nil {
		return fmt.Errorf("send email %s: %w", n.ID, err)
	}
	if statusCode < http.StatusOK || statusCode >= http.StatusMultipleChoices {
		return fmt.Errorf("send email %s: unexpected status %d: %s", n.ID, statusCode, respBody)
	}
	zap.L().Debug("email sent", zap.String("notification_id", n.ID), zap.String("user_id", n.UserID))
	return nil
}

var _ Poster = (*clients.HTTPClient)(nil)
