package transfer_test

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/carry/internal/adapters/state"
	"go.trai.ch/carry/internal/adapters/transfer"
	"go.trai.ch/carry/internal/core/domain"
	"go.trai.ch/carry/internal/core/ports/mocks"
	"go.trai.ch/zerr"
	"go.uber.org/mock/gomock"
)

type fixture struct {
	client *transfer.Client
	store  *state.Store
	logger *mocks.MockLogger
}

func setup(t *testing.T, srv *httptest.Server) fixture {
	t.Helper()
	ctrl := gomock.NewController(t)
	store, err := state.NewStore(t.TempDir())
	require.NoError(t, err)
	logger := mocks.NewMockLogger(ctrl)
	return fixture{
		client: transfer.NewClientWithHTTP(store, logger, srv.Client()),
		store:  store,
		logger: logger,
	}
}

func TestFetchFirstAvailable_FallsThroughCandidates(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/branch/cache.tgz":
			w.WriteHeader(http.StatusNotFound)
		case "/main/cache.tzst":
			_, _ = io.WriteString(w, "archive-bytes")
		default:
			t.Errorf("unexpected request %s", r.URL.Path)
		}
	}))
	defer srv.Close()
	f := setup(t, srv)

	gomock.InOrder(
		f.logger.EXPECT().Info("fetching branch/cache.tgz"),
		f.logger.EXPECT().Warn("could not fetch branch/cache.tgz: server responded with status 404"),
		f.logger.EXPECT().Info("fetching main/cache.tzst"),
	)

	got, err := f.client.FetchFirstAvailable(context.Background(), []string{
		srv.URL + "/branch/cache.tgz?sig=abc",
		srv.URL + "/main/cache.tzst",
	})

	require.NoError(t, err)
	assert.Equal(t, f.store.FetchArchivePath(domain.CompressionZstd), got)
	content, err := os.ReadFile(got)
	require.NoError(t, err)
	assert.Equal(t, "archive-bytes", string(content))
	assert.NoFileExists(t, f.store.FetchArchivePath(domain.CompressionGzip))

	fetched, ok := f.store.FetchedArchive()
	require.True(t, ok)
	assert.Equal(t, got, fetched)
}

func TestFetchFirstAvailable_RetriesTransientFailures(t *testing.T) {
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		switch hits.Add(1) {
		case 1:
			w.WriteHeader(http.StatusServiceUnavailable)
		case 2:
			w.WriteHeader(http.StatusTooManyRequests)
		default:
			_, _ = io.WriteString(w, "ok")
		}
	}))
	defer srv.Close()
	f := setup(t, srv)
	f.logger.EXPECT().Info(gomock.Any())

	got, err := f.client.FetchFirstAvailable(context.Background(), []string{srv.URL + "/cache.tbz"})

	require.NoError(t, err)
	assert.Equal(t, int32(3), hits.Load())
	assert.Equal(t, f.store.FetchArchivePath(domain.CompressionBzip2), got)
}

func TestFetchFirstAvailable_GivesUpAfterRetries(t *testing.T) {
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		hits.Add(1)
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()
	f := setup(t, srv)
	f.logger.EXPECT().Info(gomock.Any())
	f.logger.EXPECT().Warn("could not fetch cache.tgz: server responded with status 502")

	_, err := f.client.FetchFirstAvailable(context.Background(), []string{srv.URL + "/cache.tgz"})

	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrNotFound))
	assert.Equal(t, int32(4), hits.Load())
	_, ok := f.store.FetchedArchive()
	assert.False(t, ok)
}

func TestFetchFirstAvailable_DoesNotRetryClientErrors(t *testing.T) {
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		hits.Add(1)
		w.WriteHeader(http.StatusForbidden)
	}))
	defer srv.Close()
	f := setup(t, srv)
	f.logger.EXPECT().Info(gomock.Any())
	f.logger.EXPECT().Warn("could not fetch cache.tgz: server responded with status 403")

	_, err := f.client.FetchFirstAvailable(context.Background(), []string{srv.URL + "/cache.tgz"})

	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrNotFound))
	assert.Equal(t, int32(1), hits.Load())
}

func TestFetchFirstAvailable_RemovesStaleArchives(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()
	f := setup(t, srv)
	f.logger.EXPECT().Info(gomock.Any())
	f.logger.EXPECT().Warn(gomock.Any())

	stale := f.store.FetchArchivePath(domain.CompressionBzip2)
	require.NoError(t, os.WriteFile(stale, []byte("old"), 0o600))

	_, err := f.client.FetchFirstAvailable(context.Background(), []string{srv.URL + "/cache.tgz"})

	require.Error(t, err)
	assert.NoFileExists(t, stale)
}

func TestFetchFirstAvailable_WarningKeepsCredentialsOut(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	unreachable := srv.URL + "/main/cache.tgz?X-Amz-Signature=secret"
	srv.Close()
	f := setup(t, srv)

	var warning string
	f.logger.EXPECT().Info("fetching main/cache.tgz")
	f.logger.EXPECT().Warn(gomock.Any()).Do(func(msg string) { warning = msg })

	_, err := f.client.FetchFirstAvailable(context.Background(), []string{unreachable})

	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrNotFound))
	assert.True(t, strings.HasPrefix(warning, "could not fetch main/cache.tgz: "), warning)
	assert.NotContains(t, warning, "secret")
	assert.NotContains(t, err.Error(), "secret")
}

func TestFetchFirstAvailable_Cancelled(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {}))
	defer srv.Close()
	f := setup(t, srv)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := f.client.FetchFirstAvailable(ctx, []string{srv.URL + "/cache.tgz"})

	require.ErrorIs(t, err, context.Canceled)
}

func TestUpload(t *testing.T) {
	var gotBody []byte
	var gotType, gotMethod string
	var gotLength int64
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotType = r.Header.Get("Content-Type")
		gotLength = r.ContentLength
		gotBody, _ = io.ReadAll(r.Body)
		w.WriteHeader(http.StatusCreated)
	}))
	defer srv.Close()
	f := setup(t, srv)

	local := filepath.Join(t.TempDir(), "push.tgz")
	require.NoError(t, os.WriteFile(local, []byte("payload"), 0o600))

	require.NoError(t, f.client.Upload(context.Background(), local, srv.URL+"/main/cache.tgz"))

	assert.Equal(t, http.MethodPut, gotMethod)
	assert.Equal(t, "application/octet-stream", gotType)
	assert.Equal(t, int64(7), gotLength)
	assert.Equal(t, "payload", string(gotBody))
}

func TestUpload_RejectedByServer(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		_, _ = io.WriteString(w, "<Error>SignatureDoesNotMatch</Error>\n")
	}))
	defer srv.Close()
	f := setup(t, srv)

	local := filepath.Join(t.TempDir(), "push.tgz")
	require.NoError(t, os.WriteFile(local, []byte("payload"), 0o600))

	err := f.client.Upload(context.Background(), local, srv.URL+"/main/cache.tgz?token=secret")

	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrTransferFailed))
	var zErr *zerr.Error
	require.ErrorAs(t, err, &zErr)
	assert.Equal(t, http.StatusForbidden, zErr.Metadata()["status_code"])
	assert.Equal(t, "<Error>SignatureDoesNotMatch</Error>", zErr.Metadata()["body"])
	assert.Equal(t, "main/cache.tgz", zErr.Metadata()["url"])
}

func TestUpload_MissingArchive(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		t.Error("no request expected")
	}))
	defer srv.Close()
	f := setup(t, srv)

	err := f.client.Upload(context.Background(), filepath.Join(t.TempDir(), "absent.tgz"), srv.URL+"/x.tgz")

	require.Error(t, err)
	assert.ErrorContains(t, err, domain.ErrTransferFailed.Error())
}
