package sms

import (
	"context"
	"crypto/md5"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/sethvargo/go-retry"
)

var (
	// ErrGatewayURLRequired is returned when the gateway base URL is missing.
	ErrGatewayURLRequired = errors.New("sms gateway url is required")
	// ErrGatewayCredentialsRequired is returned when login or password is missing.
	ErrGatewayCredentialsRequired = errors.New("sms gateway login and password are required")
	// ErrNoRecipient is returned when Message.To is empty.
	ErrNoRecipient = errors.New("no recipient provided")
)

const (
	gatewayTimeout    = 10 * time.Second
	gatewayMaxRetries = 3
	gatewayRetryPause = 500 * time.Millisecond
)

// Gateway is an SMS implementation backed by an HTTP provider API.
//
// Each request carries a security key derived from the account credentials
// and the message content, as required by the provider.
type Gateway struct {
	baseURL       string
	login         string
	passwordHash  string
	defaultSender string
	unicode       bool
	client        *http.Client
}

// GatewayConfig configures the HTTP gateway implementation.
type GatewayConfig struct {
	// URL is the gateway endpoint without query parameters.
	URL string
	// Login is the provider account login.
	Login string
	// Password is the provider account password.
	Password string
	// Sender is the default sender name when Message.Sender is empty.
	Sender string
	// Unicode requests unicode message encoding from the provider.
	Unicode bool
	// Client overrides the HTTP client; a 10s-timeout client is used when nil.
	Client *http.Client
}

// NewGateway constructs an HTTP gateway SMS sender.
func NewGateway(cfg GatewayConfig) (*Gateway, error) {
	if cfg.URL == "" {
		return nil, ErrGatewayURLRequired
	}
	if cfg.Login == "" || cfg.Password == "" {
		return nil, ErrGatewayCredentialsRequired
	}

	client := cfg.Client
	if client == nil {
		client = &http.Client{Timeout: gatewayTimeout}
	}

	sum := md5.Sum([]byte(cfg.Password))

	return &Gateway{
		baseURL:       cfg.URL,
		login:         cfg.Login,
		passwordHash:  hex.EncodeToString(sum[:]),
		defaultSender: cfg.Sender,
		unicode:       cfg.Unicode,
		client:        client,
	}, nil
}

// Send delivers a message through the gateway, retrying transient failures.
func (g *Gateway) Send(ctx context.Context, msg Message) error {
	if msg.To == "" {
		return ErrNoRecipient
	}

	sender := msg.Sender
	if sender == "" {
		sender = g.defaultSender
	}

	requestURL := g.buildURL(msg.To, msg.Text, sender)

	backoff := retry.WithMaxRetries(gatewayMaxRetries, retry.NewExponential(gatewayRetryPause))

	return retry.Do(ctx, backoff, func(ctx context.Context) error {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
		if err != nil {
			return err
		}

		resp, err := g.client.Do(req)
		if err != nil {
			return retry.RetryableError(err)
		}
		defer resp.Body.Close()

		// drain so the connection can be reused
		_, _ = io.Copy(io.Discard, resp.Body)

		if resp.StatusCode >= http.StatusInternalServerError {
			return retry.RetryableError(fmt.Errorf("sms gateway returned status %d", resp.StatusCode))
		}
		if resp.StatusCode != http.StatusOK {
			return fmt.Errorf("sms gateway returned status %d", resp.StatusCode)
		}

		return nil
	})
}

// Close implements io.Closer for interface compatibility.
func (g *Gateway) Close() error {
	g.client.CloseIdleConnections()
	return nil
}

// buildURL assembles the provider request URL including the security key,
// which is md5(md5(password) + login + text + msisdn + sender).
func (g *Gateway) buildURL(msisdn, text, sender string) string {
	sum := md5.Sum([]byte(g.passwordHash + g.login + text + msisdn + sender))

	params := url.Values{}
	params.Set("login", g.login)
	params.Set("msisdn", msisdn)
	params.Set("text", text)
	params.Set("sender", sender)
	params.Set("key", hex.EncodeToString(sum[:]))
	params.Set("unicode", strconv.FormatBool(g.unicode))

	return g.baseURL + "?" + params.Encode()
}
