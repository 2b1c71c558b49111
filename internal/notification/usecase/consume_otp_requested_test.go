package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bolbol-az/bolbol/internal/notification/entity"
	"github.com/bolbol-az/bolbol/internal/pkg/clock"
	"github.com/bolbol-az/bolbol/internal/pkg/config"
	"github.com/bolbol-az/bolbol/internal/pkg/instrument"
	"github.com/bolbol-az/bolbol/internal/pkg/sms"
	"github.com/bolbol-az/bolbol/internal/pkg/validator"
)

type stubRepoDB struct {
	created   []entity.CreateDeliveryLog
	updated   []entity.UpdateDeliveryLog
	createErr error
	updateErr error
}

func (s *stubRepoDB) CreateDeliveryLog(_ context.Context, in entity.CreateDeliveryLog) error {
	s.created = append(s.created, in)
	return s.createErr
}

func (s *stubRepoDB) UpdateDeliveryLogStatus(_ context.Context, in entity.UpdateDeliveryLog) error {
	s.updated = append(s.updated, in)
	return s.updateErr
}

type stubRepoSMS struct {
	sent []sms.Message
	err  error
}

func (s *stubRepoSMS) Send(_ context.Context, msg sms.Message) error {
	s.sent = append(s.sent, msg)
	return s.err
}

type staticUID struct{ id int64 }

func (s staticUID) Generate() int64 { return s.id }

func newTestUsecase(t *testing.T, repo *stubRepoDB, sender *stubRepoSMS) *Usecase {
	t.Helper()

	cfg, err := config.NewViperFromBytes("yaml", []byte("modules:\n  notification:\n    enabled: true\n"))
	require.NoError(t, err)

	v10, err := validator.NewV10Validator()
	require.NoError(t, err)

	return New(Dependency{
		RepoDB:     repo,
		RepoSMS:    sender,
		Config:     cfg,
		UID:        staticUID{id: 101},
		Clock:      clock.New(),
		Validator:  v10,
		Instrument: instrument.NewNoop(),
	})
}

func TestConsumeOTPRequested(t *testing.T) {
	repo := &stubRepoDB{}
	sender := &stubRepoSMS{}
	uc := newTestUsecase(t, repo, sender)

	err := uc.ConsumeOTPRequested(context.Background(), ConsumeOTPRequestedInput{
		Phone: "994501234567",
		Code:  "123456",
	})
	require.NoError(t, err)

	require.Len(t, repo.created, 1)
	assert.Equal(t, int64(101), repo.created[0].ID)
	assert.Equal(t, "994501234567", repo.created[0].Phone)
	assert.Equal(t, "Your OTP code is 123456", repo.created[0].Message)

	require.Len(t, sender.sent, 1)
	assert.Equal(t, "994501234567", sender.sent[0].To)
	assert.Equal(t, "Your OTP code is 123456", sender.sent[0].Text)

	require.Len(t, repo.updated, 1)
	assert.Equal(t, int64(101), repo.updated[0].ID)
	assert.Equal(t, entity.DeliveryStatusSent, repo.updated[0].Status)
	assert.Empty(t, repo.updated[0].Error)
}

func TestConsumeOTPRequestedInvalidPayload(t *testing.T) {
	repo := &stubRepoDB{}
	sender := &stubRepoSMS{}
	uc := newTestUsecase(t, repo, sender)

	tests := []ConsumeOTPRequestedInput{
		{},
		{Phone: "994501234567"},
		{Code: "123456"},
		{Phone: "12345", Code: "123456"},
		{Phone: "994501234567", Code: "abcdef"},
	}

	// Malformed events are dropped, not requeued.
	for _, in := range tests {
		err := uc.ConsumeOTPRequested(context.Background(), in)
		require.NoError(t, err, "input=%+v", in)
	}

	assert.Empty(t, repo.created)
	assert.Empty(t, sender.sent)
}

func TestConsumeOTPRequestedSendFailure(t *testing.T) {
	repo := &stubRepoDB{}
	sender := &stubRepoSMS{err: errors.New("gateway timeout")}
	uc := newTestUsecase(t, repo, sender)

	err := uc.ConsumeOTPRequested(context.Background(), ConsumeOTPRequestedInput{
		Phone: "994501234567",
		Code:  "123456",
	})
	require.Error(t, err)

	require.Len(t, repo.updated, 1)
	assert.Equal(t, entity.DeliveryStatusFailed, repo.updated[0].Status)
	assert.Equal(t, "gateway timeout", repo.updated[0].Error)
}

func TestConsumeOTPRequestedCreateLogFailure(t *testing.T) {
	repo := &stubRepoDB{createErr: errors.New("insert failed")}
	sender := &stubRepoSMS{}
	uc := newTestUsecase(t, repo, sender)

	err := uc.ConsumeOTPRequested(context.Background(), ConsumeOTPRequestedInput{
		Phone: "994501234567",
		Code:  "123456",
	})
	require.Error(t, err)

	// Nothing goes out without a delivery record.
	assert.Empty(t, sender.sent)
}
