package events

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/segmentio/kafka-go"

	"github.com/samandr77/materials/internal/entity"
)

type Service interface {
	SendAccountMail(ctx context.Context, event entity.AccountCreated) error
}

type EventHandler struct {
	s Service
}

func NewEventHandler(s Service) *EventHandler {
	return &EventHandler{s: s}
}

func (h *EventHandler) OnAccountCreated(ctx context.Context, msg kafka.Message) error {
	var event entity.AccountCreated

	err := json.Unmarshal(msg.Value, &event)
	if err != nil {
		return fmt.Errorf("unmarshal event: %w", err)
	}

	if event.Email == "" {
		return fmt.Errorf("account event for user %d has no email", event.UserID)
	}

	err = h.s.SendAccountMail(ctx, event)
	if err != nil {
		return fmt.Errorf("send account mail: %w", err)
	}

	return nil
}
