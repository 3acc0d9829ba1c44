// Package tavus is a minimal client for the Tavus conversations API.
package tavus

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/MikhailRaia/tavus-session-proxy/internal/model"
)

const conversationsPath = "/v2/conversations"

// maxBodyExcerpt bounds how much of an upstream error body ends up in logs.
const maxBodyExcerpt = 512

var (
	// ErrUnexpectedStatus is returned when Tavus answers with a non-2xx status.
	ErrUnexpectedStatus = errors.New("unexpected status from tavus")
	// ErrEmptyConversationURL is returned when the response has no conversation_url.
	ErrEmptyConversationURL = errors.New("tavus response has no conversation_url")
)

// Client issues conversation requests against the Tavus API.
type Client struct {
	http   *resty.Client
	apiKey string
}

// NewClient creates a Client for the given base URL and API key.
// The key is sent verbatim, an empty key still yields a Bearer header.
func NewClient(baseURL, apiKey string) *Client {
	return &Client{
		http:   resty.New().SetBaseURL(baseURL),
		apiKey: apiKey,
	}
}

// CreateConversation posts one conversation request and decodes the reply.
func (c *Client) CreateConversation(ctx context.Context, req model.ConversationRequest) (*model.Conversation, error) {
	requestID := chimiddleware.GetReqID(ctx)
	if requestID == "" {
		requestID = uuid.NewString()
	}

	log.Debug().
		Str("request_id", requestID).
		Str("replica_id", req.ReplicaID).
		Str("persona_id", req.PersonaID).
		Msg("Creating Tavus conversation")

	resp, err := c.http.R().
		SetContext(ctx).
		SetHeader("Authorization", "Bearer "+c.apiKey).
		SetHeader("Content-Type", "application/json").
		SetHeader("X-Request-ID", requestID).
		SetBody(req).
		Post(conversationsPath)
	if err != nil {
		return nil, fmt.Errorf("post %s: %w", conversationsPath, err)
	}

	if !resp.IsSuccess() {
		return nil, fmt.Errorf("%w: %d: %s", ErrUnexpectedStatus, resp.StatusCode(), excerpt(resp.Body()))
	}

	var conversation model.Conversation
	if err := json.Unmarshal(resp.Body(), &conversation); err != nil {
		return nil, &DecodeError{Err: err, Body: excerpt(resp.Body())}
	}

	if conversation.ConversationURL == "" {
		return nil, ErrEmptyConversationURL
	}

	log.Debug().
		Str("request_id", requestID).
		Str("conversation_id", conversation.ConversationID).
		Msg("Tavus conversation created")

	return &conversation, nil
}

// DecodeError wraps a failure to parse the Tavus response body.
type DecodeError struct {
	Err  error
	Body string
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decode tavus response: %v: %s", e.Err, e.Body)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

func excerpt(body []byte) string {
	if len(body) > maxBodyExcerpt {
		return string(body[:maxBodyExcerpt]) + "..."
	}
	return string(body)
}
