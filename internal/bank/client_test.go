package bank

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewClient_InvalidBaseURL(t *testing.T) {
	_, err := NewClient("not a url", nil)
	require.Error(t, err)

	var fetchErr *FetchError
	assert.ErrorAs(t, err, &fetchErr)
}

func TestClient_FetchSkillBank_Success(t *testing.T) {
	userID := uuid.New()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, fmt.Sprintf("/users/%s/skill-bank", userID), r.URL.Path)
		assert.Equal(t, http.MethodGet, r.Method)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(testSnapshot))
	}))
	defer srv.Close()

	client, err := NewClient(srv.URL, nil)
	require.NoError(t, err)

	bank, err := client.FetchSkillBank(context.Background(), userID)
	require.NoError(t, err)

	require.Len(t, bank.WorkExperiences, 1)
	assert.True(t, bank.WorkExperiences[0].HasVariations)
}

func TestClient_FetchSkillBank_NotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	client, err := NewClient(srv.URL, nil)
	require.NoError(t, err)

	_, err = client.FetchSkillBank(context.Background(), uuid.New())
	require.Error(t, err)

	var fetchErr *FetchError
	require.ErrorAs(t, err, &fetchErr)
	assert.Contains(t, fetchErr.Message, "404")
}

func TestClient_FetchSkillBank_InvalidPayload(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("<html>nope</html>"))
	}))
	defer srv.Close()

	client, err := NewClient(srv.URL, nil)
	require.NoError(t, err)

	_, err = client.FetchSkillBank(context.Background(), uuid.New())
	assert.Error(t, err)
}

func TestClient_FetchSkillBank_SendsHeaders(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "SkillBankDerive/1.0", r.Header.Get("User-Agent"))
		assert.Equal(t, "Bearer token-123", r.Header.Get("Authorization"))
		_, _ = w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	opts := DefaultClientOptions()
	opts.Headers = map[string]string{"Authorization": "Bearer token-123"}
	client, err := NewClient(srv.URL, opts)
	require.NoError(t, err)

	_, err = client.FetchSkillBank(context.Background(), uuid.New())
	require.NoError(t, err)
}

func TestClient_ConcurrentFetches_Deduplicated(t *testing.T) {
	var calls atomic.Int64
	release := make(chan struct{})

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		calls.Add(1)
		<-release
		_, _ = w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	client, err := NewClient(srv.URL, nil)
	require.NoError(t, err)

	userID := uuid.New()
	var wg sync.WaitGroup
	for i := 0; i < 4; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, fetchErr := client.FetchSkillBank(context.Background(), userID)
			assert.NoError(t, fetchErr)
		}()
	}

	// Give every caller time to join the in-flight fetch before it completes
	time.Sleep(100 * time.Millisecond)
	close(release)
	wg.Wait()

	assert.Equal(t, int64(1), calls.Load())
}
