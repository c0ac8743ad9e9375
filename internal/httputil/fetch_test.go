// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package httputil

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGet_Success(t *testing.T) {
	var gotUA, gotAccept string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUA = r.Header.Get("User-Agent")
		gotAccept = r.Header.Get("Accept")
		fmt.Fprint(w, `{"ok":true}`)
	}))
	defer ts.Close()

	body, err := Get(context.Background(), ts.Client(), ts.URL, "test/0.1")
	require.NoError(t, err)

	assert.JSONEq(t, `{"ok":true}`, string(body))
	assert.Equal(t, "test/0.1", gotUA)
	assert.Equal(t, "application/json", gotAccept)
}

func TestGet_NonSuccessStatus(t *testing.T) {
	tests := []struct {
		name string
		code int
	}{
		{"not found", http.StatusNotFound},
		{"server error", http.StatusInternalServerError},
		{"rate limited", http.StatusTooManyRequests},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(tt.code)
				fmt.Fprint(w, `{"message":"nope"}`)
			}))
			defer ts.Close()

			_, err := Get(context.Background(), ts.Client(), ts.URL, "")
			require.Error(t, err)
			assert.True(t, IsStatus(err, tt.code))

			var se *StatusError
			require.ErrorAs(t, err, &se)
			assert.Equal(t, ts.URL, se.URL)
		})
	}
}

func TestGet_NoRetryOnFailure(t *testing.T) {
	var calls int32
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer ts.Close()

	_, err := Get(context.Background(), ts.Client(), ts.URL, "")
	require.Error(t, err)
	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
}

func TestGet_ContextCancelled(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(2 * time.Second):
		}
	}))
	defer ts.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	_, err := Get(ctx, ts.Client(), ts.URL, "")
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestGet_BodyLimit(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		fmt.Fprint(w, "0123456789")
	}))
	defer ts.Close()

	old := MaxBodyBytes
	MaxBodyBytes = 4
	defer func() { MaxBodyBytes = old }()

	body, err := Get(context.Background(), ts.Client(), ts.URL, "")
	require.NoError(t, err)
	assert.Equal(t, "0123", string(body))
}

func TestIsStatus_OtherErrors(t *testing.T) {
	assert.False(t, IsStatus(fmt.Errorf("plain"), http.StatusNotFound))
	wrapped := fmt.Errorf("wrapped: %w", &StatusError{URL: "u", StatusCode: 502})
	assert.True(t, IsStatus(wrapped, 502))
	assert.False(t, IsStatus(wrapped, 500))
}
