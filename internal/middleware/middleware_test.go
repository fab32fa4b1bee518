package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"connectrpc.com/connect"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/protobuf/types/known/emptypb"

	"github.com/mmynk/splitter/internal/auth"
	"github.com/mmynk/splitter/internal/metrics"
	"github.com/mmynk/splitter/internal/models"
)

const (
	testSecret    = "0123456789abcdef0123456789abcdef"
	whoProcedure  = "/test.v1.TestService/Who"
	failProcedure = "/test.v1.TestService/Fail"
)

// newTestServer serves two procedures: Who echoes the caller's user ID in a
// response header and Fail always returns NotFound.
func newTestServer(t *testing.T, interceptors ...connect.Interceptor) *httptest.Server {
	t.Helper()
	opts := connect.WithInterceptors(interceptors...)

	mux := http.NewServeMux()
	mux.Handle(whoProcedure, connect.NewUnaryHandler(whoProcedure,
		func(ctx context.Context, _ *connect.Request[emptypb.Empty]) (*connect.Response[emptypb.Empty], error) {
			resp := connect.NewResponse(&emptypb.Empty{})
			resp.Header().Set("X-User-Id", GetUserID(ctx))
			return resp, nil
		}, opts))
	mux.Handle(failProcedure, connect.NewUnaryHandler(failProcedure,
		func(context.Context, *connect.Request[emptypb.Empty]) (*connect.Response[emptypb.Empty], error) {
			return nil, connect.NewError(connect.CodeNotFound, errors.New("missing"))
		}, opts))

	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)
	return server
}

func call(t *testing.T, server *httptest.Server, procedure, token string) (*connect.Response[emptypb.Empty], error) {
	t.Helper()
	client := connect.NewClient[emptypb.Empty, emptypb.Empty](http.DefaultClient, server.URL+procedure)
	req := connect.NewRequest(&emptypb.Empty{})
	if token != "" {
		req.Header().Set("Authorization", "Bearer "+token)
	}
	return client.CallUnary(context.Background(), req)
}

func validToken(t *testing.T, m *auth.JWTManager) (string, *models.User) {
	t.Helper()
	user := models.NewUser("alice@example.com", "Alice", "")
	token, err := m.Generate(user)
	require.NoError(t, err)
	return token, user
}

func TestRequireAuth(t *testing.T) {
	jwtManager := auth.NewJWTManager(testSecret, time.Hour)
	server := newTestServer(t, RequireAuth(jwtManager))

	t.Run("missing token", func(t *testing.T) {
		_, err := call(t, server, whoProcedure, "")
		assert.Equal(t, connect.CodeUnauthenticated, connect.CodeOf(err))
	})

	t.Run("invalid token", func(t *testing.T) {
		_, err := call(t, server, whoProcedure, "garbage")
		assert.Equal(t, connect.CodeUnauthenticated, connect.CodeOf(err))
	})

	t.Run("valid token", func(t *testing.T) {
		token, user := validToken(t, jwtManager)
		resp, err := call(t, server, whoProcedure, token)
		require.NoError(t, err)
		assert.Equal(t, user.ID, resp.Header().Get("X-User-Id"))
	})
}

func TestOptionalAuth(t *testing.T) {
	jwtManager := auth.NewJWTManager(testSecret, time.Hour)
	server := newTestServer(t, OptionalAuth(jwtManager))

	resp, err := call(t, server, whoProcedure, "")
	require.NoError(t, err)
	assert.Empty(t, resp.Header().Get("X-User-Id"))

	resp, err = call(t, server, whoProcedure, "garbage")
	require.NoError(t, err)
	assert.Empty(t, resp.Header().Get("X-User-Id"))

	token, user := validToken(t, jwtManager)
	resp, err = call(t, server, whoProcedure, token)
	require.NoError(t, err)
	assert.Equal(t, user.ID, resp.Header().Get("X-User-Id"))
}

func TestMetricsInterceptor(t *testing.T) {
	m := metrics.NewNop()
	server := newTestServer(t, LoggingInterceptor(), MetricsInterceptor(m))

	_, err := call(t, server, whoProcedure, "")
	require.NoError(t, err)
	_, err = call(t, server, failProcedure, "")
	require.Error(t, err)
	_, err = call(t, server, failProcedure, "")
	require.Error(t, err)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.RPCRequests.WithLabelValues(whoProcedure, "ok")))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.RPCRequests.WithLabelValues(failProcedure, "not_found")))
}

func TestRateLimit(t *testing.T) {
	handler := RateLimit(0.001, 2)(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))

	codes := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
		codes = append(codes, rec.Code)
		if rec.Code == http.StatusTooManyRequests {
			assert.NotEmpty(t, rec.Header().Get("Retry-After"))
		}
	}
	assert.Equal(t, []int{http.StatusNoContent, http.StatusNoContent, http.StatusTooManyRequests}, codes)
}

func TestCORS(t *testing.T) {
	reached := false
	handler := CORS(http.HandlerFunc(func(http.ResponseWriter, *http.Request) { reached = true }))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodOptions, "/", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
	assert.Contains(t, rec.Header().Get("Access-Control-Allow-Headers"), "Authorization")
	assert.Contains(t, rec.Header().Get("Access-Control-Allow-Headers"), "X-Grpc-Web")
	assert.Contains(t, rec.Header().Get("Access-Control-Expose-Headers"), "Grpc-Status")
	assert.False(t, reached)

	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/", nil))
	assert.True(t, reached)
}
