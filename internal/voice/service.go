// Package voice wraps the outbound voice-call service (Vapi-compatible API).
package voice

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"realestate_api_backend/platform/config"
	"realestate_api_backend/platform/logger"
)

const defaultGreeting = "Hello from the Real Estate API"

// CallResponse acknowledges an initiated call.
type CallResponse struct {
	CallID      string `json:"callId"`
	Status      string `json:"status"`
	PhoneNumber string `json:"phoneNumber"`
	Message     string `json:"message"`
}

// CallStatus is the state of a previously initiated call.
type CallStatus struct {
	CallID string `json:"callId"`
	Status string `json:"status"`
}

type initiateRequest struct {
	PhoneNumber string `json:"phone_number"`
	AssistantID string `json:"assistant_id"`
	Message     string `json:"message"`
}

type callPayload struct {
	CallID string `json:"call_id"`
	Status string `json:"status"`
}

type Service struct {
	client *http.Client
	cfg    config.VoiceConfig
	log    *logger.Logger
}

func NewService(cfg config.VoiceConfig, log *logger.Logger) *Service {
	return &Service{
		client: &http.Client{Timeout: 15 * time.Second},
		cfg:    cfg,
		log:    log,
	}
}

// InitiateCall starts an outbound call to the given E.164 phone number.
// An empty message falls back to the default greeting.
func (s *Service) InitiateCall(ctx context.Context, phoneNumber, message string) (*CallResponse, error) {
	if message == "" {
		message = defaultGreeting
	}

	payload, err := s.post(ctx, "/call", initiateRequest{
		PhoneNumber: phoneNumber,
		AssistantID: s.cfg.GetVapiAssistantID(),
		Message:     message,
	})
	if err != nil {
		return nil, err
	}

	s.log.WithContext(ctx).Info("voice call initiated", "call_id", payload.CallID)

	return &CallResponse{
		CallID:      payload.CallID,
		Status:      payload.Status,
		PhoneNumber: phoneNumber,
		Message:     message,
	}, nil
}

// CheckCallStatus fetches the current state of a call.
func (s *Service) CheckCallStatus(ctx context.Context, callID string) (*CallStatus, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.cfg.GetVapiBaseURL()+"/call/"+callID, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+s.cfg.GetVapiAPIKey())

	resp, err := s.client.Do(req)
	if err != nil {
		s.log.Error("voice status request failed", "call_id", callID, "error", err)
		return nil, err
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("upstream api error: %d", resp.StatusCode)
	}

	var payload callPayload
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, err
	}

	return &CallStatus{CallID: payload.CallID, Status: payload.Status}, nil
}

func (s *Service) post(ctx context.Context, path string, body initiateRequest) (*callPayload, error) {
	encoded, err := json.Marshal(body)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.cfg.GetVapiBaseURL()+path, bytes.NewReader(encoded))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+s.cfg.GetVapiAPIKey())
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		s.log.Error("voice call request failed", "error", err)
		return nil, err
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		return nil, fmt.Errorf("upstream api error: %d", resp.StatusCode)
	}

	var payload callPayload
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, err
	}
	return &payload, nil
}
