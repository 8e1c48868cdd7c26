package payment

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type roundTripFunc func(req *http.Request) (*http.Response, error)

func (f roundTripFunc) RoundTrip(req *http.Request) (*http.Response, error) { return f(req) }

func quietLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

func jsonResponse(status int, body string) *http.Response {
	return &http.Response{
		StatusCode: status,
		Body:       io.NopCloser(bytes.NewBufferString(body)),
		Header:     make(http.Header),
	}
}

func newGateway(rt roundTripFunc) Gateway {
	return NewKhaltiGateway("https://khalti.test/", "sk_test", WithHTTPClient(&http.Client{Transport: rt}), WithLogger(quietLogger()))
}

func TestKhaltiGateway_Verify(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		gw := newGateway(func(req *http.Request) (*http.Response, error) {
			assert.Equal(t, http.MethodPost, req.Method)
			assert.Equal(t, "https://khalti.test/api/v2/payment/verify/", req.URL.String())
			assert.Equal(t, "Key sk_test", req.Header.Get("Authorization"))

			var got khaltiVerifyRequest
			require.NoError(t, json.NewDecoder(req.Body).Decode(&got))
			assert.Equal(t, "tok_1", got.Token)
			assert.Equal(t, int64(150050), got.Amount)
			return jsonResponse(http.StatusOK, `{"idx":"8xmeJnNXfoVjCvGcZiiGe7","amount":150050}`), nil
		})

		idx, err := gw.Verify(context.Background(), "tok_1", 1500.50)

		require.NoError(t, err)
		assert.Equal(t, "8xmeJnNXfoVjCvGcZiiGe7", idx)
	})

	t.Run("Rejected", func(t *testing.T) {
		gw := newGateway(func(*http.Request) (*http.Response, error) {
			return jsonResponse(http.StatusBadRequest, `{"detail":"Invalid token."}`), nil
		})
		_, err := gw.Verify(context.Background(), "bad", 10)
		assert.ErrorIs(t, err, ErrDeclined)
	})

	t.Run("MissingIdx", func(t *testing.T) {
		gw := newGateway(func(*http.Request) (*http.Response, error) {
			return jsonResponse(http.StatusOK, `{}`), nil
		})
		_, err := gw.Verify(context.Background(), "tok", 10)
		assert.ErrorIs(t, err, ErrDeclined)
	})

	t.Run("ServerError", func(t *testing.T) {
		gw := newGateway(func(*http.Request) (*http.Response, error) {
			return jsonResponse(http.StatusBadGateway, `oops`), nil
		})
		_, err := gw.Verify(context.Background(), "tok", 10)
		assert.ErrorIs(t, err, ErrUnavailable)
	})

	t.Run("NetworkError", func(t *testing.T) {
		gw := newGateway(func(*http.Request) (*http.Response, error) {
			return nil, errors.New("connection refused")
		})
		_, err := gw.Verify(context.Background(), "tok", 10)
		assert.ErrorIs(t, err, ErrUnavailable)
		assert.Contains(t, err.Error(), "connection refused")
	})

	t.Run("EmptyToken", func(t *testing.T) {
		called := false
		gw := newGateway(func(*http.Request) (*http.Response, error) {
			called = true
			return jsonResponse(http.StatusOK, `{"idx":"x"}`), nil
		})
		_, err := gw.Verify(context.Background(), "", 10)
		assert.ErrorIs(t, err, ErrDeclined)
		assert.False(t, called)
	})
}

func TestNew_TestMode(t *testing.T) {
	gw := New("test", "", "")
	id, err := gw.Verify(context.Background(), "anything", 99)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(id, "test-"))

	_, err = gw.Verify(context.Background(), "", 99)
	assert.ErrorIs(t, err, ErrDeclined)
}

func TestToPaisa(t *testing.T) {
	assert.Equal(t, int64(1999), ToPaisa(19.99))
	assert.Equal(t, int64(100), ToPaisa(1))
}

func TestKhaltiOptions_ClientHandling(t *testing.T) {
	t.Run("timeout leaves caller client untouched", func(t *testing.T) {
		shared := &http.Client{Timeout: time.Minute}
		g := NewKhaltiGateway("https://khalti.test", "sk", WithHTTPClient(shared), WithTimeout(3*time.Second), WithLogger(quietLogger())).(*khaltiGateway)

		assert.Equal(t, time.Minute, shared.Timeout)
		assert.Equal(t, 3*time.Second, g.httpClient.Timeout)
		assert.NotSame(t, shared, g.httpClient)
	})

	t.Run("nil client keeps the default", func(t *testing.T) {
		var g *khaltiGateway
		require.NotPanics(t, func() {
			g = NewKhaltiGateway("https://khalti.test", "sk", WithHTTPClient(nil), WithTimeout(time.Second), WithLogger(quietLogger())).(*khaltiGateway)
		})
		require.NotNil(t, g.httpClient)
		assert.Equal(t, time.Second, g.httpClient.Timeout)
	})
}
