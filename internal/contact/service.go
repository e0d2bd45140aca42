package contact

import (
	"context"
	"log/slog"
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"

	"portfolio-backend/internal/blob"
	"portfolio-backend/internal/notifications"
	"portfolio-backend/internal/records"
)

// Notifier delivers a copy of each message to the site owner.
type Notifier interface {
	SendContactNotification(ctx context.Context, ownerEmail string, notice notifications.ContactNotice) (string, error)
}

type Service struct {
	col        *records.Collection[Message]
	notifier   Notifier
	ownerEmail string
	log        *slog.Logger
	newID      func() string
	now        func() time.Time
}

// NewService stores messages in their own collection. notifier may be nil,
// in which case messages are only stored.
func NewService(store blob.Store, notifier Notifier, ownerEmail string, log *slog.Logger) *Service {
	return &Service{
		col:        records.NewCollection[Message](store, CollectionKey).MissingAsEmpty(),
		notifier:   notifier,
		ownerEmail: ownerEmail,
		log:        log,
		newID:      uuid.NewString,
		now:        time.Now,
	}
}

func (s *Service) Create(ctx context.Context, req CreateRequest) (Message, error) {
	msg := Message{
		ID:        s.newID(),
		Name:      strings.TrimSpace(req.Name),
		Email:     strings.TrimSpace(req.Email),
		Phone:     strings.TrimSpace(req.Phone),
		Subject:   strings.TrimSpace(req.Subject),
		Message:   strings.TrimSpace(req.Message),
		CreatedAt: s.now().UTC(),
	}

	err := s.col.Mutate(ctx, func(items []Message) ([]Message, bool, error) {
		return append(items, msg), true, nil
	})
	if err != nil {
		return Message{}, err
	}

	s.notify(ctx, msg)
	return msg, nil
}

func (s *Service) notify(ctx context.Context, msg Message) {
	if s.notifier == nil || s.ownerEmail == "" {
		return
	}
	id, err := s.notifier.SendContactNotification(ctx, s.ownerEmail, notifications.ContactNotice{
		ID:      msg.ID,
		Name:    msg.Name,
		Email:   msg.Email,
		Phone:   msg.Phone,
		Subject: msg.Subject,
		Message: msg.Message,
	})
	if err != nil {
		s.log.Warn("contact notify: send failed", slog.String("contact_id", msg.ID), slog.String("error", err.Error()))
		return
	}
	s.log.Info("contact notify: sent", slog.String("contact_id", msg.ID), slog.String("message_id", id))
}

// List returns stored messages newest first.
func (s *Service) List(ctx context.Context, limit, offset int) ([]Message, int, error) {
	items, err := s.col.Load(ctx)
	if err != nil {
		return nil, 0, err
	}
	slices.SortStableFunc(items, func(a, b Message) int {
		return b.CreatedAt.Compare(a.CreatedAt)
	})

	total := len(items)
	if offset >= total {
		return []Message{}, total, nil
	}
	end := min(offset+limit, total)
	return items[offset:end], total, nil
}
