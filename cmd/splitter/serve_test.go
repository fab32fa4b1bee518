package main

import (
	"bytes"
	"context"
	"crypto/tls"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"connectrpc.com/connect"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/http2"
	"google.golang.org/protobuf/proto"

	"github.com/mmynk/splitter/internal/config"
	"github.com/mmynk/splitter/internal/service"
	"github.com/mmynk/splitter/internal/storage/sqlite"
	pb "github.com/mmynk/splitter/pkg/proto"
	"github.com/mmynk/splitter/pkg/proto/protoconnect"
)

func startTestServer(t *testing.T) *httptest.Server {
	t.Helper()

	store, err := sqlite.New(filepath.Join(t.TempDir(), "splitter.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })

	cfg := &config.Config{
		JWTSecret:     "serve-test-secret-that-is-long-enough",
		TokenDuration: time.Hour,
		RateLimit:     config.RateLimit{RPS: 1000, Burst: 1000},
		CacheTTL:      time.Minute,
		PublicBaseURL: "http://splitter.test",
	}
	server := httptest.NewServer(newHandler(cfg, store, prometheus.NewRegistry()))
	t.Cleanup(server.Close)
	return server
}

// h2cClient speaks HTTP/2 over cleartext, which gRPC needs.
func h2cClient() *http.Client {
	return &http.Client{Transport: &http2.Transport{
		AllowHTTP: true,
		DialTLSContext: func(ctx context.Context, network, addr string, _ *tls.Config) (net.Conn, error) {
			var d net.Dialer
			return d.DialContext(ctx, network, addr)
		},
	}}
}

func registerUser(t *testing.T, client protoconnect.AuthServiceClient, email string) string {
	t.Helper()
	resp, err := client.Register(context.Background(), connect.NewRequest(&pb.RegisterRequest{
		Email:       email,
		DisplayName: "Test User",
		Password:    "correct-horse",
	}))
	require.NoError(t, err)
	return resp.Msg.Token
}

func dinnerPreview() *pb.PreviewAllocationRequest {
	return &pb.PreviewAllocationRequest{
		Items: []*pb.ItemRecord{{Id: "pizza", Subtotal: 20}, {Id: "salad", Subtotal: 10}},
		Assignments: []*pb.AssignmentRecord{
			{ItemId: "pizza", ParticipantId: "alice", ShareType: "equal"},
			{ItemId: "pizza", ParticipantId: "bob", ShareType: "equal"},
			{ItemId: "salad", ParticipantId: "bob", ShareType: "amount", Amount: proto.Float64(10)},
		},
		Adjustments: []*pb.AdjustmentRecord{{Key: "tax", Amount: 3}},
	}
}

func TestServe_Protocols(t *testing.T) {
	server := startTestServer(t)

	tests := []struct {
		name string
		opts []connect.ClientOption
	}{
		{"connect binary", nil},
		{"connect json", []connect.ClientOption{connect.WithProtoJSON()}},
		{"grpc", []connect.ClientOption{connect.WithGRPC()}},
		{"grpc-web", []connect.ClientOption{connect.WithGRPCWeb()}},
	}

	for i, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			authClient := protoconnect.NewAuthServiceClient(h2cClient(), server.URL, tt.opts...)
			receipts := protoconnect.NewReceiptServiceClient(h2cClient(), server.URL, tt.opts...)
			token := registerUser(t, authClient, fmt.Sprintf("user%d@example.com", i))

			req := connect.NewRequest(dinnerPreview())
			req.Header().Set("Authorization", "Bearer "+token)
			resp, err := receipts.PreviewAllocation(context.Background(), req)
			require.NoError(t, err)

			totals := resp.Msg.Allocation.Totals
			assert.InDelta(t, 11.0, totals["alice"], 1e-9)
			assert.InDelta(t, 22.0, totals["bob"], 1e-9)
			assert.True(t, resp.Msg.Allocation.AdjustmentsApplied)
		})
	}
}

func TestServe_RawProtobufRequest(t *testing.T) {
	server := startTestServer(t)
	token := registerUser(t, protoconnect.NewAuthServiceClient(server.Client(), server.URL), "raw@example.com")

	body, err := proto.Marshal(dinnerPreview())
	require.NoError(t, err)

	req, err := http.NewRequest(http.MethodPost,
		server.URL+protoconnect.ReceiptServicePreviewAllocationProcedure, bytes.NewReader(body))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/proto")
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := server.Client().Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/proto", resp.Header.Get("Content-Type"))

	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var out pb.PreviewAllocationResponse
	require.NoError(t, proto.Unmarshal(data, &out))
	assert.InDelta(t, 11.0, out.GetAllocation().GetTotals()["alice"], 1e-9)
	assert.InDelta(t, 30.0, out.GetAllocation().GetItemTotal(), 1e-9)
}

func TestServe_Routes(t *testing.T) {
	server := startTestServer(t)
	client := server.Client()
	ctx := context.Background()

	token := registerUser(t, protoconnect.NewAuthServiceClient(client, server.URL), "share@example.com")
	receipts := protoconnect.NewReceiptServiceClient(client, server.URL)

	created, err := receipts.CreateReceipt(ctx, withToken(token, &pb.CreateReceiptRequest{Title: "Lunch"}))
	require.NoError(t, err)
	link, err := receipts.SetShareLink(ctx, withToken(token, &pb.SetShareLinkRequest{
		ReceiptId: created.Msg.Receipt.Id,
		Enabled:   true,
	}))
	require.NoError(t, err)
	assert.Equal(t, "http://splitter.test/share/"+link.Msg.Token, link.Msg.Url)

	get := func(path string) (int, []byte) {
		t.Helper()
		resp, err := client.Get(server.URL + path)
		require.NoError(t, err)
		defer resp.Body.Close()
		body, err := io.ReadAll(resp.Body)
		require.NoError(t, err)
		return resp.StatusCode, body
	}

	status, body := get("/share/" + link.Msg.Token)
	require.Equal(t, http.StatusOK, status)
	var shared service.SharedReceipt
	require.NoError(t, json.Unmarshal(body, &shared))
	assert.Equal(t, "Lunch", shared.Title)

	status, _ = get("/share/")
	assert.Equal(t, http.StatusNotFound, status)
	status, _ = get("/share/" + link.Msg.Token + "/extra")
	assert.Equal(t, http.StatusNotFound, status)

	status, body = get("/healthz")
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "ok\n", string(body))

	status, body = get("/metrics")
	assert.Equal(t, http.StatusOK, status)
	assert.Contains(t, string(body), "splitter_rpc_requests_total")
}

func withToken[T any](token string, msg *T) *connect.Request[T] {
	req := connect.NewRequest(msg)
	req.Header().Set("Authorization", "Bearer "+token)
	return req
}
