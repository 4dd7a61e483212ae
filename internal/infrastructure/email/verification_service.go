package email

import (
	"context"
	"crypto/sha1"
	"encoding/hex"
	"fmt"
	"strconv"

	"github.com/sirupsen/logrus"

	"github.com/sharely/sharely/internal/application"
	repo "github.com/sharely/sharely/internal/domain/repository"
	"github.com/sharely/sharely/pkg/helpers"
	"github.com/sharely/sharely/pkg/mailer"
)

// VerificationHash returns the hash embedded in verification links for the
// given email address. The verify endpoint recomputes it and compares in
// constant time.
func VerificationHash(email string) string {
	sum := sha1.Sum([]byte(email))
	return hex.EncodeToString(sum[:])
}

// VerificationService enqueues verification emails onto the outbound email
// queue. Send failures are the caller's to ignore: dispatch is best-effort.
type VerificationService struct {
	Repo    repo.UserRepository
	Pub     *helpers.RabbitPublisher
	BaseURL string
	Enabled bool
	Logger  *logrus.Logger
}

func NewVerificationService(r repo.UserRepository, pub *helpers.RabbitPublisher, baseURL string, enabled bool, logger *logrus.Logger) *VerificationService {
	return &VerificationService{Repo: r, Pub: pub, BaseURL: baseURL, Enabled: enabled, Logger: logger}
}

// SendVerificationEmail dispatches one verification message for the user.
// No-op when the user is absent or already verified.
func (s *VerificationService) SendVerificationEmail(ctx context.Context, userID int64) error {
	u, err := s.Repo.FindByID(ctx, userID)
	if err != nil {
		return err
	}
	if u.HasVerifiedEmail() {
		return nil
	}
	if !s.Enabled || s.Pub == nil {
		if s.Logger != nil {
			s.Logger.WithField("user_id", userID).Debug("email sending disabled; skipping verification dispatch")
		}
		return nil
	}

	link := fmt.Sprintf("%s/api/email/verify/%s/%s",
		s.BaseURL, strconv.FormatInt(u.ID, 10), VerificationHash(u.Email))

	job := mailer.EmailJob{
		To:       u.Email,
		Template: mailer.TemplateVerifyEmail,
		Data: map[string]any{
			"Name":      u.Name,
			"Email":     u.Email,
			"VerifyURL": link,
		},
	}
	return s.Pub.PublishJSON(ctx, job)
}

var _ application.EmailVerificationService = (*VerificationService)(nil)
