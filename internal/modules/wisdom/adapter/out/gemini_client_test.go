package out

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	json "github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gentlemind/internal/testutil"
)

func TestGeminiClient_Generate(t *testing.T) {
	var gotPath, gotKey string
	var gotReq geminiRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotKey = r.Header.Get("x-goog-api-key")
		raw, _ := io.ReadAll(r.Body)
		_ = json.Unmarshal(raw, &gotReq)
		_, _ = io.WriteString(w, `{"candidates":[{"content":{"role":"model","parts":[{"text":"Be "},{"text":"kind."}]}}]}`)
	}))
	defer srv.Close()

	c := NewGeminiClient("secret", WithBaseURL(srv.URL+"/"), WithModel("test-model"))
	require.True(t, c.Configured())
	text, err := c.Generate(context.Background(), "hello")
	require.NoError(t, err)
	assert.Equal(t, "Be kind.", text)
	assert.Equal(t, "/models/test-model:generateContent", gotPath)
	assert.Equal(t, "secret", gotKey)
	require.Len(t, gotReq.Contents, 1)
	assert.Equal(t, "hello", gotReq.Contents[0].Parts[0].Text)
}

func TestGeminiClient_RetriesServerErrors(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) < 3 {
			w.WriteHeader(http.StatusServiceUnavailable)
			_, _ = io.WriteString(w, `{"error":{"code":503,"message":"overloaded","status":"UNAVAILABLE"}}`)
			return
		}
		_, _ = io.WriteString(w, `{"candidates":[{"content":{"parts":[{"text":"ok"}]}}]}`)
	}))
	defer srv.Close()

	c := NewGeminiClient("k", WithBaseURL(srv.URL), WithRetries(3, time.Millisecond))
	text, err := c.Generate(context.Background(), "p")
	require.NoError(t, err)
	assert.Equal(t, "ok", text)
	assert.Equal(t, int32(3), calls.Load())
}

func TestGeminiClient_ClientErrorIsNotRetried(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusBadRequest)
		_, _ = io.WriteString(w, `{"error":{"code":400,"message":"API key not valid","status":"INVALID_ARGUMENT"}}`)
	}))
	defer srv.Close()

	c := NewGeminiClient("k", WithBaseURL(srv.URL), WithRetries(3, time.Millisecond))
	_, err := c.Generate(context.Background(), "p")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "API key not valid")
	assert.Equal(t, int32(1), calls.Load())
}

func TestGeminiClient_NoCandidatesIsEmpty(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, `{"candidates":[]}`)
	}))
	defer srv.Close()

	text, err := NewGeminiClient("k", WithBaseURL(srv.URL)).Generate(context.Background(), "p")
	require.NoError(t, err)
	assert.Empty(t, text)
}

func TestGeminiClient_Unconfigured(t *testing.T) {
	c := NewGeminiClient("  ")
	assert.False(t, c.Configured())
	_, err := c.Generate(context.Background(), "p")
	assert.Error(t, err)
}

func TestGeminiClient_HonoursContext(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.Copy(io.Discard, r.Body)
		<-r.Context().Done()
	}))
	defer srv.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	_, err := NewGeminiClient("k", WithBaseURL(srv.URL)).Generate(ctx, "p")
	require.Error(t, err)
	assert.True(t, strings.Contains(err.Error(), "deadline") || ctx.Err() != nil)
}

func TestCache(t *testing.T) {
	c := NewCache(true, 1, time.Minute, &testutil.MockLogger{})
	_, ok := c.Get("k")
	assert.False(t, ok)
	c.Set("k", "v")
	v, ok := c.Get("k")
	assert.True(t, ok)
	assert.Equal(t, "v", v)

	disabled := NewCache(false, 1, time.Minute, &testutil.MockLogger{})
	disabled.Set("k", "v")
	_, ok = disabled.Get("k")
	assert.False(t, ok)
}
