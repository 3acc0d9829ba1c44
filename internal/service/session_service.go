package service

import (
	"context"
	"errors"
	"time"

	"github.com/MikhailRaia/tavus-session-proxy/internal/metrics"
	"github.com/MikhailRaia/tavus-session-proxy/internal/model"
	"github.com/MikhailRaia/tavus-session-proxy/internal/tavus"
)

// ConversationCreator is the upstream call the service depends on.
type ConversationCreator interface {
	CreateConversation(ctx context.Context, req model.ConversationRequest) (*model.Conversation, error)
}

// SessionService creates Tavus conversation sessions for a fixed replica and persona.
type SessionService struct {
	client    ConversationCreator
	replicaID string
	personaID string
}

// NewSessionService constructs a SessionService.
func NewSessionService(client ConversationCreator, replicaID, personaID string) *SessionService {
	return &SessionService{
		client:    client,
		replicaID: replicaID,
		personaID: personaID,
	}
}

// CreateSession asks Tavus for a new conversation and returns its URL.
func (s *SessionService) CreateSession(ctx context.Context) (string, error) {
	start := time.Now()

	conversation, err := s.client.CreateConversation(ctx, model.ConversationRequest{
		ReplicaID: s.replicaID,
		PersonaID: s.personaID,
	})

	metrics.ObserveTavusDuration(time.Since(start).Seconds())
	metrics.RecordSession(outcome(conversation, err))

	if err != nil {
		return "", err
	}

	if conversation == nil || conversation.ConversationURL == "" {
		return "", tavus.ErrEmptyConversationURL
	}

	return conversation.ConversationURL, nil
}

func outcome(conversation *model.Conversation, err error) string {
	var decodeErr *tavus.DecodeError

	switch {
	case err == nil && (conversation == nil || conversation.ConversationURL == ""):
		return metrics.OutcomeEmptySession
	case err == nil:
		return metrics.OutcomeSuccess
	case errors.Is(err, tavus.ErrEmptyConversationURL):
		return metrics.OutcomeEmptySession
	case errors.Is(err, tavus.ErrUnexpectedStatus):
		return metrics.OutcomeStatus
	case errors.As(err, &decodeErr):
		return metrics.OutcomeDecode
	default:
		return metrics.OutcomeTransport
	}
}
