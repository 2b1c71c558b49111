package sms

import (
	"context"
	"crypto/md5"
	"encoding/hex"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestGateway(t *testing.T, srvURL string) *Gateway {
	t.Helper()

	g, err := NewGateway(GatewayConfig{
		URL:      srvURL,
		Login:    "login",
		Password: "password",
		Sender:   "BOLBOL",
	})
	require.NoError(t, err)
	return g
}

func gatewayKey(password, login, text, msisdn, sender string) string {
	inner := md5.Sum([]byte(password))
	outer := md5.Sum([]byte(hex.EncodeToString(inner[:]) + login + text + msisdn + sender))
	return hex.EncodeToString(outer[:])
}

func TestNewGatewayValidation(t *testing.T) {
	_, err := NewGateway(GatewayConfig{Login: "l", Password: "p"})
	assert.ErrorIs(t, err, ErrGatewayURLRequired)

	_, err = NewGateway(GatewayConfig{URL: "http://sms.test"})
	assert.ErrorIs(t, err, ErrGatewayCredentialsRequired)
}

func TestGatewaySend(t *testing.T) {
	var got url.Values
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.URL.Query()
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	g := newTestGateway(t, srv.URL)

	err := g.Send(context.Background(), Message{To: "994501234567", Text: "Your OTP code is 123456"})
	require.NoError(t, err)

	assert.Equal(t, "login", got.Get("login"))
	assert.Equal(t, "994501234567", got.Get("msisdn"))
	assert.Equal(t, "Your OTP code is 123456", got.Get("text"))
	assert.Equal(t, "BOLBOL", got.Get("sender"))
	assert.Equal(t, "false", got.Get("unicode"))
	assert.Equal(t,
		gatewayKey("password", "login", "Your OTP code is 123456", "994501234567", "BOLBOL"),
		got.Get("key"))
}

func TestGatewaySendExplicitSender(t *testing.T) {
	var got url.Values
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.URL.Query()
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	g := newTestGateway(t, srv.URL)

	err := g.Send(context.Background(), Message{To: "994501234567", Text: "hi", Sender: "OTHER"})
	require.NoError(t, err)
	assert.Equal(t, "OTHER", got.Get("sender"))
}

func TestGatewaySendNoRecipient(t *testing.T) {
	g := newTestGateway(t, "http://sms.test")

	err := g.Send(context.Background(), Message{Text: "hi"})
	assert.ErrorIs(t, err, ErrNoRecipient)
}

func TestGatewaySendRetriesServerErrors(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		if calls.Add(1) == 1 {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	g := newTestGateway(t, srv.URL)

	err := g.Send(context.Background(), Message{To: "994501234567", Text: "hi"})
	require.NoError(t, err)
	assert.Equal(t, int32(2), calls.Load())
}

func TestGatewaySendDoesNotRetryClientErrors(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusBadRequest)
	}))
	defer srv.Close()

	g := newTestGateway(t, srv.URL)

	err := g.Send(context.Background(), Message{To: "994501234567", Text: "hi"})
	require.Error(t, err)
	assert.Equal(t, int32(1), calls.Load())
}
