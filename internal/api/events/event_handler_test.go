package events_test

import (
	"context"
	"testing"

	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/require"

	"github.com/samandr77/materials/internal/api/events"
	"github.com/samandr77/materials/internal/entity"
)

type serviceStub struct {
	got []entity.AccountCreated
}

func (s *serviceStub) SendAccountMail(_ context.Context, event entity.AccountCreated) error {
	s.got = append(s.got, event)
	return nil
}

func TestEventHandler_OnAccountCreated(t *testing.T) {
	t.Parallel()

	s := &serviceStub{}
	h := events.NewEventHandler(s)

	err := h.OnAccountCreated(context.Background(), kafka.Message{
		Value: []byte(`{"user_id":10,"name":"Jane","email":"jane@example.com","issue_password":true}`),
	})
	require.NoError(t, err)
	require.Equal(t, []entity.AccountCreated{{UserID: 10, Name: "Jane", Email: "jane@example.com", IssuePassword: true}}, s.got)

	require.Error(t, h.OnAccountCreated(context.Background(), kafka.Message{Value: []byte(`{`)}))
	require.Error(t, h.OnAccountCreated(context.Background(), kafka.Message{Value: []byte(`{"user_id":11}`)}))
	require.Len(t, s.got, 1)
}
