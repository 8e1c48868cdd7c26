package payment

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"net/http"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
)

const khaltiVerifyPath = "/api/v2/payment/verify/"

type khaltiGateway struct {
	baseURL    string
	secret     string
	httpClient *http.Client
	log        *logrus.Logger
}

type KhaltiOption func(*khaltiGateway)

// WithHTTPClient replaces the transport client. A nil client is ignored.
func WithHTTPClient(c *http.Client) KhaltiOption {
	return func(g *khaltiGateway) {
		if c != nil {
			g.httpClient = c
		}
	}
}

// WithTimeout bounds each verify call. It works on a copy so a client passed
// through WithHTTPClient is never modified.
func WithTimeout(d time.Duration) KhaltiOption {
	return func(g *khaltiGateway) {
		if d > 0 {
			cp := *g.httpClient
			cp.Timeout = d
			g.httpClient = &cp
		}
	}
}

func WithLogger(l *logrus.Logger) KhaltiOption {
	return func(g *khaltiGateway) {
		if l != nil {
			g.log = l
		}
	}
}

func NewKhaltiGateway(baseURL, secret string, opts ...KhaltiOption) Gateway {
	g := &khaltiGateway{
		baseURL:    strings.TrimRight(baseURL, "/"),
		secret:     secret,
		httpClient: &http.Client{Timeout: 15 * time.Second},
		log:        logrus.StandardLogger(),
	}
	for _, o := range opts {
		o(g)
	}
	if g.secret == "" {
		g.log.Warn("khalti secret key is empty")
	}
	return g
}

type khaltiVerifyRequest struct {
	Token  string `json:"token"`
	Amount int64  `json:"amount"`
}

type khaltiVerifyResponse struct {
	Idx string `json:"idx"`
}

// ToPaisa converts rupees to the provider's minor unit.
func ToPaisa(amount float64) int64 {
	return int64(math.Round(amount * 100))
}

func (g *khaltiGateway) Verify(ctx context.Context, token string, amount float64) (string, error) {
	if token == "" || amount <= 0 {
		return "", ErrDeclined
	}
	log := g.log.WithField("amount", amount)

	body, err := json.Marshal(khaltiVerifyRequest{Token: token, Amount: ToPaisa(amount)})
	if err != nil {
		return "", err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.baseURL+khaltiVerifyPath, bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Authorization", "Key "+g.secret)
	req.Header.Set("Content-Type", "application/json")

	resp, err := g.httpClient.Do(req)
	if err != nil {
		log.WithError(err).Error("khalti request failed")
		return "", fmt.Errorf("%w: %w", ErrUnavailable, err)
	}
	defer func() { _ = resp.Body.Close() }()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return "", fmt.Errorf("%w: read response: %w", ErrUnavailable, err)
	}

	switch {
	case resp.StatusCode >= 500:
		log.WithField("status", resp.StatusCode).Error("khalti server error")
		return "", fmt.Errorf("%w: status %d", ErrUnavailable, resp.StatusCode)
	case resp.StatusCode >= 300:
		log.WithField("status", resp.StatusCode).WithField("response", string(raw)).Warn("khalti rejected payment")
		return "", fmt.Errorf("%w: status %d", ErrDeclined, resp.StatusCode)
	}

	var res khaltiVerifyResponse
	if err := json.Unmarshal(raw, &res); err != nil {
		return "", fmt.Errorf("%w: decode response: %w", ErrUnavailable, err)
	}
	if res.Idx == "" {
		return "", ErrDeclined
	}
	log.WithField("idx", res.Idx).Info("khalti payment verified")
	return res.Idx, nil
}
