package inbound

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bolbol-az/bolbol/internal/notification/usecase"
	"github.com/bolbol-az/bolbol/internal/pkg/instrument"
	"github.com/bolbol-az/bolbol/internal/pkg/messaging"
)

type stubUsecase struct {
	consumed []usecase.ConsumeOTPRequestedInput
	err      error
}

func (s *stubUsecase) ConsumeOTPRequested(_ context.Context, in usecase.ConsumeOTPRequestedInput) error {
	s.consumed = append(s.consumed, in)
	return s.err
}

type stubUUID struct{}

func (stubUUID) Generate() string { return "generated-cid" }

type stubMessage struct {
	body    []byte
	headers []messaging.Header
}

func (m *stubMessage) Body() []byte                  { return m.body }
func (m *stubMessage) Key() []byte                   { return nil }
func (m *stubMessage) Headers() []messaging.Header   { return m.headers }
func (m *stubMessage) Attributes() map[string]string { return nil }
func (m *stubMessage) ID() string                    { return "msg-1" }
func (m *stubMessage) Topic() string                 { return "auth.otp_requested" }
func (m *stubMessage) Subject() string               { return "auth.otp_requested" }
func (m *stubMessage) Timestamp() time.Time          { return time.Time{} }
func (m *stubMessage) Ack(context.Context) error     { return nil }

func newTestHandler(uc uc) *MQHandler {
	return &MQHandler{uc: uc, uuid: stubUUID{}, ins: instrument.NewNoop()}
}

func TestOTPRequestedNotification(t *testing.T) {
	uc := &stubUsecase{}
	h := newTestHandler(uc)

	err := h.OTPRequestedNotification(context.Background(), &stubMessage{
		body: []byte(`{"phone":"994501234567","code":"123456"}`),
	})
	require.NoError(t, err)

	require.Len(t, uc.consumed, 1)
	assert.Equal(t, "994501234567", uc.consumed[0].Phone)
	assert.Equal(t, "123456", uc.consumed[0].Code)
}

func TestOTPRequestedNotificationBadPayload(t *testing.T) {
	uc := &stubUsecase{}
	h := newTestHandler(uc)

	// A body that cannot be parsed is dropped instead of being requeued.
	err := h.OTPRequestedNotification(context.Background(), &stubMessage{body: []byte("{")})
	require.NoError(t, err)
	assert.Empty(t, uc.consumed)
}

func TestEnsureCorrelationID(t *testing.T) {
	h := newTestHandler(&stubUsecase{})

	ctx := h.ensureCorrelationID(context.Background(), []messaging.Header{
		{Key: "cID", Value: []byte("incoming-cid")},
	})
	assert.Equal(t, "incoming-cid", instrument.GetCorrelationID(ctx))

	ctx = h.ensureCorrelationID(context.Background(), nil)
	assert.Equal(t, "generated-cid", instrument.GetCorrelationID(ctx))
}
