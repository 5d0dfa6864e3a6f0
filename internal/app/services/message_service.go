package services

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/rs/zerolog"
	appauth "github.com/yigit/injurydesk/internal/app/auth"
	"github.com/yigit/injurydesk/internal/app/models"
	"github.com/yigit/injurydesk/internal/app/models/dto"
	"github.com/yigit/injurydesk/internal/app/repositories"
	"github.com/yigit/injurydesk/internal/pkg/apperrors"
)

// MessageService handles direct messages between users
type MessageService struct {
	gw        *repositories.Gateway
	publisher EventPublisher
	logger    zerolog.Logger
}

// NewMessageService creates a new MessageService
func NewMessageService(gw *repositories.Gateway, publisher EventPublisher, logger zerolog.Logger) *MessageService {
	return &MessageService{
		gw:        gw,
		publisher: publisherOrNoop(publisher),
		logger:    logger,
	}
}

func (s *MessageService) involving(ctx context.Context, column, userID string) ([]models.Message, error) {
	return s.gw.Messages.Filter(ctx, repositories.Query{
		Where:   []repositories.Cond{repositories.Eq(column, userID)},
		OrderBy: "created_at",
	})
}

// Conversation returns the messages between the session and withID, oldest
// first. An empty withID returns every message the session sent or received.
func (s *MessageService) Conversation(ctx context.Context, session appauth.Session, withID string) ([]models.Message, error) {
	sent, err := s.involving(ctx, "sender_id", session.UserID)
	if err != nil {
		return nil, fmt.Errorf("error loading sent messages: %w", err)
	}
	received, err := s.involving(ctx, "receiver_id", session.UserID)
	if err != nil {
		return nil, fmt.Errorf("error loading received messages: %w", err)
	}

	out := make([]models.Message, 0, len(sent)+len(received))
	seen := make(map[string]bool, cap(out))
	for _, batch := range [][]models.Message{sent, received} {
		for _, m := range batch {
			if seen[m.ID] {
				continue
			}
			if withID != "" && m.SenderID != withID && m.ReceiverID != withID {
				continue
			}
			seen[m.ID] = true
			out = append(out, m)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})
	return out, nil
}

// Send stores a message. Against postgres the insert trigger drives the
// realtime push; other backends publish here.
func (s *MessageService) Send(ctx context.Context, session appauth.Session, req *dto.SendMessageRequest) (*models.Message, error) {
	content := strings.TrimSpace(req.Content)
	if content == "" {
		return nil, apperrors.NewValidationError("content cannot be empty")
	}
	if req.ReceiverID == session.UserID {
		return nil, apperrors.NewValidationError("you cannot message yourself")
	}
	if _, err := s.gw.Users.Get(ctx, req.ReceiverID); err != nil {
		return nil, notFound(err, apperrors.ErrUserNotFound, "receiver not found")
	}

	created, err := s.gw.Messages.Create(ctx, models.Message{
		SenderID:   session.UserID,
		ReceiverID: req.ReceiverID,
		Content:    content,
	})
	if err != nil {
		s.logger.Error().Err(err).Str("senderID", session.UserID).Msg("Error sending message")
		return nil, fmt.Errorf("error sending message: %w", err)
	}

	if s.gw.Mode() != repositories.ModePostgres {
		s.publisher.Publish([]string{created.SenderID, created.ReceiverID}, EventMessageCreated, created)
	}
	return &created, nil
}

// MarkRead marks a received message as read
func (s *MessageService) MarkRead(ctx context.Context, session appauth.Session, id string) (*models.Message, error) {
	message, err := s.gw.Messages.Get(ctx, id)
	if err != nil {
		return nil, notFound(err, apperrors.ErrMessageNotFound, "message not found")
	}
	if message.ReceiverID != session.UserID {
		return nil, apperrors.NewForbiddenError("only the receiver can mark a message as read")
	}
	if message.Read {
		return &message, nil
	}

	updated, err := s.gw.Messages.Update(ctx, id, repositories.Changes{"read": true})
	if err != nil {
		return nil, fmt.Errorf("error marking message read: %w", err)
	}
	return &updated, nil
}

// UnreadCount counts the messages waiting for userID
func (s *MessageService) UnreadCount(ctx context.Context, userID string) (int, error) {
	rows, err := s.gw.Messages.Filter(ctx, repositories.Query{
		Where: []repositories.Cond{
			repositories.Eq("receiver_id", userID),
			repositories.Eq("read", false),
		},
	})
	if err != nil {
		return 0, fmt.Errorf("error counting unread messages: %w", err)
	}
	return len(rows), nil
}
