package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"

	"stayease-backend/dto"
	"stayease-backend/metrics"
	"stayease-backend/models"
	"stayease-backend/repositories"
	"stayease-backend/utils"
)

type WaitlistService struct {
	entries repositories.WaitlistRepository
	mailer  utils.Mailer
	log     *logrus.Logger
}

func NewWaitlistService(store *repositories.Store, mailer utils.Mailer, log *logrus.Logger) *WaitlistService {
	return &WaitlistService{entries: store.Waitlist, mailer: mailer, log: log}
}

// Join signs an email up once; the welcome mail is best effort.
func (s *WaitlistService) Join(ctx context.Context, req dto.WaitlistRequest) (*models.WaitlistEntry, error) {
	email := normalizeEmail(req.Email)

	if _, err := s.entries.GetByEmail(ctx, email); err == nil {
		return nil, alreadyOnWaitlist()
	} else if !errors.Is(err, ErrNotFound) {
		return nil, fmt.Errorf("lookup waitlist email: %w", err)
	}

	entry := &models.WaitlistEntry{Email: email, Name: strings.TrimSpace(req.Name)}
	if err := s.entries.Create(ctx, entry); err != nil {
		if errors.Is(err, ErrDuplicate) {
			return nil, alreadyOnWaitlist()
		}
		return nil, fmt.Errorf("create waitlist entry: %w", err)
	}

	metrics.IncWaitlistSignup()
	if s.mailer != nil {
		if err := s.mailer.SendWaitlistWelcome(entry.Email, entry.Name); err != nil {
			s.log.WithError(err).WithField("to", utils.MaskEmail(entry.Email)).Warn("waitlist welcome not sent")
		}
	}
	return entry, nil
}

func alreadyOnWaitlist() error {
	return invalidField("email", "unique", "this email is already on the waitlist")
}
