package email

import (
	"context"
	"errors"
)

// Sender define la interfaz para notificar reseñas nuevas por correo.
type Sender interface {
	SendReviewNotification(ctx context.Context, toEmail, dogName, reviewerName string, rating int) error
}

type disabledSender struct {
	reason string
}

func NewDisabledSender(reason string) Sender {
	return &disabledSender{reason: reason}
}

func (s *disabledSender) SendReviewNotification(_ context.Context, _, _, _ string, _ int) error {
	if s.reason == "" {
		return errors.New("email sender disabled")
	}
	return errors.New(s.reason)
}
