package service_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"connectrpc.com/connect"
	"github.com/go-chi/chi/v5"
	jsoniter "github.com/json-iterator/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"google.golang.org/protobuf/types/known/emptypb"

	"github.com/mmynk/splitter/internal/auth"
	"github.com/mmynk/splitter/internal/metrics"
	"github.com/mmynk/splitter/internal/middleware"
	"github.com/mmynk/splitter/internal/realtime"
	"github.com/mmynk/splitter/internal/service"
	"github.com/mmynk/splitter/internal/storage/sqlite"
	pb "github.com/mmynk/splitter/pkg/proto"
	"github.com/mmynk/splitter/pkg/proto/protoconnect"
)

const testBaseURL = "https://splitter.test"

type testEnv struct {
	url      string
	auth     protoconnect.AuthServiceClient
	receipts protoconnect.ReceiptServiceClient
	metrics  *metrics.Metrics
}

// setupTestServer serves both services over a temp sqlite database, routed
// with chi the way the server binary mounts them.
func setupTestServer(t *testing.T) *testEnv {
	t.Helper()

	store, err := sqlite.New(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })

	jwtManager := auth.NewJWTManager("test-secret-that-is-long-enough-123456", time.Hour)
	authenticator := auth.NewPasswordAuthenticator(store).WithCost(bcrypt.MinCost)
	m := metrics.NewNop()
	allocator := service.NewAllocator(store, time.Minute, m)
	hub := realtime.NewHub(nil)

	authSvc := service.NewAuthService(authenticator, jwtManager, store, nil)
	receiptSvc := service.NewReceiptService(store, allocator, hub, testBaseURL)

	r := chi.NewRouter()
	authPath, authHandler := protoconnect.NewAuthServiceHandler(authSvc,
		connect.WithInterceptors(middleware.OptionalAuth(jwtManager)))
	receiptPath, receiptHandler := protoconnect.NewReceiptServiceHandler(receiptSvc,
		connect.WithInterceptors(middleware.RequireAuth(jwtManager)))
	r.Handle(authPath+"*", authHandler)
	r.Handle(receiptPath+"*", receiptHandler)
	r.Get("/share/{token}", receiptSvc.ServeShare)

	server := httptest.NewServer(r)
	t.Cleanup(server.Close)

	return &testEnv{
		url:      server.URL,
		auth:     protoconnect.NewAuthServiceClient(server.Client(), server.URL),
		receipts: protoconnect.NewReceiptServiceClient(server.Client(), server.URL),
		metrics:  m,
	}
}

func (e *testEnv) register(t *testing.T, email string) string {
	t.Helper()
	resp, err := e.auth.Register(context.Background(), connect.NewRequest(&pb.RegisterRequest{
		Email:       email,
		DisplayName: "Test User",
		Password:    "correct-horse",
	}))
	require.NoError(t, err)
	require.NotEmpty(t, resp.Msg.Token)
	return resp.Msg.Token
}

// authed wraps msg in a request carrying a bearer token.
func authed[T any](token string, msg *T) *connect.Request[T] {
	req := connect.NewRequest(msg)
	req.Header().Set("Authorization", "Bearer "+token)
	return req
}

func fp(v float64) *float64 { return &v }

// dinner seeds a receipt: a 20.00 pizza shared equally by alice and bob, a
// 10.00 salad that bob pays outright, and 3.00 tax.
type dinner struct {
	receiptID string
	pizza     string
	salad     string
	alice     string
	bob       string
}

func seedDinner(t *testing.T, e *testEnv, token string) dinner {
	t.Helper()
	ctx := context.Background()

	created, err := e.receipts.CreateReceipt(ctx, authed(token, &pb.CreateReceiptRequest{
		Title:    "Dinner",
		Currency: "USD",
	}))
	require.NoError(t, err)
	d := dinner{receiptID: created.Msg.Receipt.Id}

	items, err := e.receipts.AddItems(ctx, authed(token, &pb.AddItemsRequest{
		ReceiptId: d.receiptID,
		Lines: []*pb.ExtractedLine{
			{LineIndex: 1, Description: "Pizza", Quantity: 2, UnitPrice: 10},
			{LineIndex: 2, Description: "Salad", UnitPrice: 10},
		},
	}))
	require.NoError(t, err)
	require.Len(t, items.Msg.Items, 2)
	d.pizza, d.salad = items.Msg.Items[0].Id, items.Msg.Items[1].Id

	for _, name := range []string{"Alice", "Bob"} {
		p, err := e.receipts.AddParticipant(ctx, authed(token, &pb.AddParticipantRequest{
			ReceiptId: d.receiptID,
			Name:      name,
		}))
		require.NoError(t, err)
		if name == "Alice" {
			d.alice = p.Msg.Participant.Id
		} else {
			d.bob = p.Msg.Participant.Id
		}
	}

	_, err = e.receipts.AddAssignments(ctx, authed(token, &pb.AddAssignmentsRequest{
		ReceiptId: d.receiptID,
		Assignments: []*pb.AssignmentOp{
			{ItemId: d.pizza, ParticipantId: d.alice, ShareType: "equal"},
			{ItemId: d.pizza, ParticipantId: d.bob, ShareType: "equal"},
			{ItemId: d.salad, ParticipantId: d.bob, ShareType: "amount", Amount: fp(10)},
		},
	}))
	require.NoError(t, err)

	_, err = e.receipts.SetAdjustment(ctx, authed(token, &pb.SetAdjustmentRequest{
		ReceiptId: d.receiptID,
		Key:       "tax",
		Amount:    3,
	}))
	require.NoError(t, err)
	return d
}

func TestAuthService(t *testing.T) {
	e := setupTestServer(t)
	ctx := context.Background()

	token := e.register(t, "alice@example.com")

	_, err := e.auth.Register(ctx, connect.NewRequest(&pb.RegisterRequest{
		Email:       "ALICE@example.com",
		DisplayName: "Again",
		Password:    "correct-horse",
	}))
	assert.Equal(t, connect.CodeAlreadyExists, connect.CodeOf(err))

	_, err = e.auth.Register(ctx, connect.NewRequest(&pb.RegisterRequest{
		Email:       "carol@example.com",
		DisplayName: "Carol",
		Password:    "short",
	}))
	assert.Equal(t, connect.CodeInvalidArgument, connect.CodeOf(err))

	_, err = e.auth.Register(ctx, connect.NewRequest(&pb.RegisterRequest{
		Email:       "not-an-email",
		DisplayName: "Nobody",
		Password:    "correct-horse",
	}))
	assert.Equal(t, connect.CodeInvalidArgument, connect.CodeOf(err))

	login, err := e.auth.Login(ctx, connect.NewRequest(&pb.LoginRequest{
		Email:    "alice@example.com",
		Password: "correct-horse",
	}))
	require.NoError(t, err)
	assert.NotEmpty(t, login.Msg.Token)
	assert.Equal(t, "alice@example.com", login.Msg.User.Email)

	_, err = e.auth.Login(ctx, connect.NewRequest(&pb.LoginRequest{
		Email:    "alice@example.com",
		Password: "wrong-password",
	}))
	assert.Equal(t, connect.CodeUnauthenticated, connect.CodeOf(err))

	me, err := e.auth.GetCurrentUser(ctx, authed(token, &emptypb.Empty{}))
	require.NoError(t, err)
	assert.Equal(t, "Test User", me.Msg.User.DisplayName)
	assert.NotZero(t, me.Msg.User.CreatedAt)

	_, err = e.auth.GetCurrentUser(ctx, connect.NewRequest(&emptypb.Empty{}))
	assert.Equal(t, connect.CodeUnauthenticated, connect.CodeOf(err))

	_, err = e.auth.Logout(ctx, authed(token, &emptypb.Empty{}))
	assert.NoError(t, err)
}

func TestReceiptService_Flow(t *testing.T) {
	e := setupTestServer(t)
	ctx := context.Background()
	token := e.register(t, "alice@example.com")
	d := seedDinner(t, e, token)

	got, err := e.receipts.GetReceipt(ctx, authed(token, &pb.GetReceiptRequest{ReceiptId: d.receiptID}))
	require.NoError(t, err)
	assert.Equal(t, "Dinner", got.Msg.Receipt.Title)
	assert.Len(t, got.Msg.Items, 2)
	assert.Len(t, got.Msg.Participants, 2)
	assert.Len(t, got.Msg.Assignments, 3)
	require.Len(t, got.Msg.Adjustments, 1)
	assert.InDelta(t, 20.0, got.Msg.Items[0].Subtotal, 1e-9)
	assert.InDelta(t, 10.0, got.Msg.Items[1].Subtotal, 1e-9)
	assert.InDelta(t, 1.0, got.Msg.Items[1].Quantity, 1e-9)

	calc, err := e.receipts.CalculateAllocation(ctx, authed(token, &pb.CalculateAllocationRequest{ReceiptId: d.receiptID}))
	require.NoError(t, err)
	alloc := calc.Msg.Allocation
	assert.InDelta(t, 30.0, alloc.ItemTotal, 1e-9)
	assert.InDelta(t, 3.0, alloc.AdjustmentTotal, 1e-9)
	assert.True(t, alloc.AdjustmentsApplied)
	assert.InDelta(t, 11.0, alloc.Totals[d.alice], 1e-9)
	assert.InDelta(t, 22.0, alloc.Totals[d.bob], 1e-9)
	require.Len(t, alloc.People, 2)
	assert.Equal(t, d.alice, alloc.People[0].ParticipantId)

	list, err := e.receipts.ListReceipts(ctx, authed(token, &emptypb.Empty{}))
	require.NoError(t, err)
	require.Len(t, list.Msg.Receipts, 1)
	assert.InDelta(t, 30.0, list.Msg.Receipts[0].ItemsTotal, 1e-9)
	assert.Equal(t, int32(2), list.Msg.Receipts[0].ParticipantCount)

	// Editing an item changes the next allocation.
	_, err = e.receipts.UpdateItem(ctx, authed(token, &pb.UpdateItemRequest{
		ItemId:   d.pizza,
		Quantity: fp(4),
	}))
	require.NoError(t, err)
	calc, err = e.receipts.CalculateAllocation(ctx, authed(token, &pb.CalculateAllocationRequest{ReceiptId: d.receiptID}))
	require.NoError(t, err)
	// Pizza is now 40.00: alice 20 of 50 item spend, so 1.20 of the tax.
	assert.InDelta(t, 21.2, calc.Msg.Allocation.Totals[d.alice], 1e-9)

	// Removing bob drops his assignments and leaves the salad unclaimed.
	_, err = e.receipts.RemoveParticipant(ctx, authed(token, &pb.RemoveParticipantRequest{ParticipantId: d.bob}))
	require.NoError(t, err)
	calc, err = e.receipts.CalculateAllocation(ctx, authed(token, &pb.CalculateAllocationRequest{ReceiptId: d.receiptID}))
	require.NoError(t, err)
	assert.Len(t, calc.Msg.Allocation.Totals, 1)
	assert.InDelta(t, 43.0, calc.Msg.Allocation.Totals[d.alice], 1e-9)

	title := "Dinner at Luigi's"
	updated, err := e.receipts.UpdateReceipt(ctx, authed(token, &pb.UpdateReceiptRequest{
		ReceiptId: d.receiptID,
		Title:     &title,
	}))
	require.NoError(t, err)
	assert.Equal(t, title, updated.Msg.Receipt.Title)
	assert.Equal(t, "USD", updated.Msg.Receipt.Currency)

	_, err = e.receipts.DeleteAdjustment(ctx, authed(token, &pb.DeleteAdjustmentRequest{ReceiptId: d.receiptID, Key: "tax"}))
	require.NoError(t, err)
	_, err = e.receipts.DeleteAdjustment(ctx, authed(token, &pb.DeleteAdjustmentRequest{ReceiptId: d.receiptID, Key: "tax"}))
	assert.Equal(t, connect.CodeNotFound, connect.CodeOf(err))

	_, err = e.receipts.DeleteItem(ctx, authed(token, &pb.DeleteItemRequest{ItemId: d.salad}))
	require.NoError(t, err)

	_, err = e.receipts.DeleteReceipt(ctx, authed(token, &pb.DeleteReceiptRequest{ReceiptId: d.receiptID}))
	require.NoError(t, err)
	_, err = e.receipts.GetReceipt(ctx, authed(token, &pb.GetReceiptRequest{ReceiptId: d.receiptID}))
	assert.Equal(t, connect.CodeNotFound, connect.CodeOf(err))
}

func TestReceiptService_Access(t *testing.T) {
	e := setupTestServer(t)
	ctx := context.Background()
	owner := e.register(t, "alice@example.com")
	other := e.register(t, "mallory@example.com")
	d := seedDinner(t, e, owner)

	_, err := e.receipts.GetReceipt(ctx, authed(other, &pb.GetReceiptRequest{ReceiptId: d.receiptID}))
	assert.Equal(t, connect.CodePermissionDenied, connect.CodeOf(err))

	_, err = e.receipts.DeleteItem(ctx, authed(other, &pb.DeleteItemRequest{ItemId: d.pizza}))
	assert.Equal(t, connect.CodePermissionDenied, connect.CodeOf(err))

	_, err = e.receipts.CalculateAllocation(ctx, connect.NewRequest(&pb.CalculateAllocationRequest{ReceiptId: d.receiptID}))
	assert.Equal(t, connect.CodeUnauthenticated, connect.CodeOf(err))

	_, err = e.receipts.GetReceipt(ctx, authed("not-a-token", &pb.GetReceiptRequest{ReceiptId: d.receiptID}))
	assert.Equal(t, connect.CodeUnauthenticated, connect.CodeOf(err))

	_, err = e.receipts.GetReceipt(ctx, authed(owner, &pb.GetReceiptRequest{ReceiptId: "missing"}))
	assert.Equal(t, connect.CodeNotFound, connect.CodeOf(err))

	list, err := e.receipts.ListReceipts(ctx, authed(other, &emptypb.Empty{}))
	require.NoError(t, err)
	assert.Empty(t, list.Msg.Receipts)
}

func TestReceiptService_AddAssignmentsValidation(t *testing.T) {
	e := setupTestServer(t)
	ctx := context.Background()
	token := e.register(t, "alice@example.com")
	d := seedDinner(t, e, token)

	tests := []struct {
		name string
		op   *pb.AssignmentOp
	}{
		{"unknown share type", &pb.AssignmentOp{ItemId: d.pizza, ParticipantId: d.alice, ShareType: "half"}},
		{"portion on equal", &pb.AssignmentOp{ItemId: d.pizza, ParticipantId: d.alice, ShareType: "equal", Portion: fp(1)}},
		{"amount on equal", &pb.AssignmentOp{ItemId: d.pizza, ParticipantId: d.alice, ShareType: "equal", Amount: fp(1)}},
		{"missing portion", &pb.AssignmentOp{ItemId: d.pizza, ParticipantId: d.alice, ShareType: "portion"}},
		{"zero portion", &pb.AssignmentOp{ItemId: d.pizza, ParticipantId: d.alice, ShareType: "portion", Portion: fp(0)}},
		{"negative portion", &pb.AssignmentOp{ItemId: d.pizza, ParticipantId: d.alice, ShareType: "portion", Portion: fp(-1)}},
		{"missing amount", &pb.AssignmentOp{ItemId: d.pizza, ParticipantId: d.alice, ShareType: "amount"}},
		{"unknown item", &pb.AssignmentOp{ItemId: "nope", ParticipantId: d.alice, ShareType: "equal"}},
		{"unknown participant", &pb.AssignmentOp{ItemId: d.pizza, ParticipantId: "nope", ShareType: "equal"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := e.receipts.AddAssignments(ctx, authed(token, &pb.AddAssignmentsRequest{
				ReceiptId:   d.receiptID,
				Assignments: []*pb.AssignmentOp{tt.op},
			}))
			assert.Equal(t, connect.CodeInvalidArgument, connect.CodeOf(err))
		})
	}

	// Nothing from the rejected batches was stored.
	got, err := e.receipts.GetReceipt(ctx, authed(token, &pb.GetReceiptRequest{ReceiptId: d.receiptID}))
	require.NoError(t, err)
	assert.Len(t, got.Msg.Assignments, 3)

	// Items on another receipt of the same owner are rejected too.
	otherReceipt, err := e.receipts.CreateReceipt(ctx, authed(token, &pb.CreateReceiptRequest{}))
	require.NoError(t, err)
	assert.Equal(t, "New receipt", otherReceipt.Msg.Receipt.Title)
	_, err = e.receipts.AddAssignments(ctx, authed(token, &pb.AddAssignmentsRequest{
		ReceiptId:   otherReceipt.Msg.Receipt.Id,
		Assignments: []*pb.AssignmentOp{{ItemId: d.pizza, ParticipantId: d.alice, ShareType: "equal"}},
	}))
	assert.Equal(t, connect.CodeInvalidArgument, connect.CodeOf(err))
}

func TestReceiptService_ItemValidation(t *testing.T) {
	e := setupTestServer(t)
	ctx := context.Background()
	token := e.register(t, "alice@example.com")
	d := seedDinner(t, e, token)

	lines := []struct {
		name string
		line *pb.ExtractedLine
	}{
		{"negative unit price", &pb.ExtractedLine{Description: "Coupon", Quantity: 1, UnitPrice: -5}},
		{"negative quantity", &pb.ExtractedLine{Description: "Soda", Quantity: -1, UnitPrice: 2}},
	}
	for _, tt := range lines {
		t.Run(tt.name, func(t *testing.T) {
			_, err := e.receipts.AddItems(ctx, authed(token, &pb.AddItemsRequest{
				ReceiptId: d.receiptID,
				Lines:     []*pb.ExtractedLine{{Description: "Bread", UnitPrice: 3}, tt.line},
			}))
			assert.Equal(t, connect.CodeInvalidArgument, connect.CodeOf(err))
		})
	}

	_, err := e.receipts.UpdateItem(ctx, authed(token, &pb.UpdateItemRequest{
		ItemId:    d.pizza,
		UnitPrice: fp(-10),
	}))
	assert.Equal(t, connect.CodeInvalidArgument, connect.CodeOf(err))

	// A free line is fine.
	added, err := e.receipts.AddItems(ctx, authed(token, &pb.AddItemsRequest{
		ReceiptId: d.receiptID,
		Lines:     []*pb.ExtractedLine{{Description: "Water", UnitPrice: 0}},
	}))
	require.NoError(t, err)
	require.Len(t, added.Msg.Items, 1)
	assert.Zero(t, added.Msg.Items[0].Subtotal)

	// Rejected batches stored nothing and the pizza kept its price.
	got, err := e.receipts.GetReceipt(ctx, authed(token, &pb.GetReceiptRequest{ReceiptId: d.receiptID}))
	require.NoError(t, err)
	assert.Len(t, got.Msg.Items, 3)
	assert.InDelta(t, 10.0, got.Msg.Items[0].UnitPrice, 1e-9)
}

func TestReceiptService_DuplicateAssignmentsCount(t *testing.T) {
	e := setupTestServer(t)
	ctx := context.Background()
	token := e.register(t, "alice@example.com")
	d := seedDinner(t, e, token)

	_, err := e.receipts.AddAssignments(ctx, authed(token, &pb.AddAssignmentsRequest{
		ReceiptId:   d.receiptID,
		Assignments: []*pb.AssignmentOp{{ItemId: d.pizza, ParticipantId: d.alice, ShareType: "equal"}},
	}))
	require.NoError(t, err)

	calc, err := e.receipts.CalculateAllocation(ctx, authed(token, &pb.CalculateAllocationRequest{ReceiptId: d.receiptID}))
	require.NoError(t, err)
	// Alice now holds two of three equal slots on the pizza.
	totals := calc.Msg.Allocation.Totals
	assert.InDelta(t, 33.0, totals[d.alice]+totals[d.bob], 1e-9)
	assert.InDelta(t, 40.0/3*1.1, totals[d.alice], 1e-9)
}

func TestReceiptService_PreviewAllocation(t *testing.T) {
	e := setupTestServer(t)
	token := e.register(t, "alice@example.com")

	resp, err := e.receipts.PreviewAllocation(context.Background(), authed(token, &pb.PreviewAllocationRequest{
		Items: []*pb.ItemRecord{{Id: "i1", Subtotal: 9}, {Id: "i2", Subtotal: 4}},
		Assignments: []*pb.AssignmentRecord{
			{ItemId: "i1", ParticipantId: "a", ShareType: "equal"},
			{ItemId: "i1", ParticipantId: "b", ShareType: "equal"},
			{ItemId: "i1", ParticipantId: "c", ShareType: "equal"},
			{ItemId: "i2", ParticipantId: "a", ShareType: "portion", Portion: fp(3)},
			{ItemId: "i2", ParticipantId: "b", ShareType: "portion", Portion: fp(1)},
			{ItemId: "i2", ParticipantId: "c", ShareType: "bogus"},
		},
	}))
	require.NoError(t, err)

	totals := resp.Msg.Allocation.Totals
	assert.InDelta(t, 6.0, totals["a"], 1e-9)
	assert.InDelta(t, 4.0, totals["b"], 1e-9)
	assert.InDelta(t, 3.0, totals["c"], 1e-9)
	assert.False(t, resp.Msg.Allocation.AdjustmentsApplied)
}

func TestReceiptService_WatchAllocation(t *testing.T) {
	e := setupTestServer(t)
	token := e.register(t, "alice@example.com")
	d := seedDinner(t, e, token)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	stream, err := e.receipts.WatchAllocation(ctx, authed(token, &pb.WatchAllocationRequest{ReceiptId: d.receiptID}))
	require.NoError(t, err)
	defer stream.Close()

	require.True(t, stream.Receive(), "initial update: %v", stream.Err())
	first := stream.Msg()
	assert.Equal(t, service.TriggerInitial, first.Trigger)
	assert.InDelta(t, 11.0, first.Allocation.Totals[d.alice], 1e-9)

	_, err = e.receipts.SetAdjustment(ctx, authed(token, &pb.SetAdjustmentRequest{
		ReceiptId: d.receiptID,
		Key:       "tax",
		Amount:    6,
	}))
	require.NoError(t, err)

	require.True(t, stream.Receive(), "change update: %v", stream.Err())
	next := stream.Msg()
	assert.Equal(t, realtime.TableAdjustments, next.Trigger)
	assert.InDelta(t, 12.0, next.Allocation.Totals[d.alice], 1e-9)
	assert.InDelta(t, 24.0, next.Allocation.Totals[d.bob], 1e-9)
}

func TestReceiptService_WatchRequiresOwner(t *testing.T) {
	e := setupTestServer(t)
	owner := e.register(t, "alice@example.com")
	other := e.register(t, "mallory@example.com")
	d := seedDinner(t, e, owner)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	stream, err := e.receipts.WatchAllocation(ctx, authed(other, &pb.WatchAllocationRequest{ReceiptId: d.receiptID}))
	require.NoError(t, err)
	defer stream.Close()

	assert.False(t, stream.Receive())
	assert.Equal(t, connect.CodePermissionDenied, connect.CodeOf(stream.Err()))
}

func getShare(t *testing.T, url string) (int, service.SharedReceipt) {
	t.Helper()
	resp, err := http.Get(url)
	require.NoError(t, err)
	defer resp.Body.Close()

	var out service.SharedReceipt
	if resp.StatusCode == http.StatusOK {
		require.NoError(t, jsoniter.NewDecoder(resp.Body).Decode(&out))
	}
	return resp.StatusCode, out
}

func TestReceiptService_ShareLink(t *testing.T) {
	e := setupTestServer(t)
	ctx := context.Background()
	token := e.register(t, "alice@example.com")
	d := seedDinner(t, e, token)

	_, err := e.receipts.AddParticipant(ctx, authed(token, &pb.AddParticipantRequest{
		ReceiptId: d.receiptID,
		Name:      "Carol",
	}))
	require.NoError(t, err)

	link, err := e.receipts.SetShareLink(ctx, authed(token, &pb.SetShareLinkRequest{ReceiptId: d.receiptID, Enabled: true}))
	require.NoError(t, err)
	require.NotEmpty(t, link.Msg.Token)
	assert.Equal(t, testBaseURL+"/share/"+link.Msg.Token, link.Msg.Url)

	status, shared := getShare(t, e.url+"/share/"+link.Msg.Token)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "Dinner", shared.Title)
	assert.Equal(t, "USD", shared.Currency)
	assert.InDelta(t, 30.0, shared.ItemTotal, 1e-9)
	require.Len(t, shared.Participants, 3)
	byName := make(map[string]float64)
	for _, p := range shared.Participants {
		byName[p.Name] = p.Total
	}
	assert.InDelta(t, 11.0, byName["Alice"], 1e-9)
	assert.InDelta(t, 22.0, byName["Bob"], 1e-9)
	assert.Contains(t, byName, "Carol")
	assert.Zero(t, byName["Carol"])

	// Disabling keeps the token but hides the receipt.
	off, err := e.receipts.SetShareLink(ctx, authed(token, &pb.SetShareLinkRequest{ReceiptId: d.receiptID}))
	require.NoError(t, err)
	assert.Equal(t, link.Msg.Token, off.Msg.Token)
	assert.False(t, off.Msg.Enabled)

	status, _ = getShare(t, e.url+"/share/"+link.Msg.Token)
	assert.Equal(t, http.StatusNotFound, status)

	status, _ = getShare(t, e.url+"/share/unknown-token")
	assert.Equal(t, http.StatusNotFound, status)

	status, _ = getShare(t, e.url+"/share/"+link.Msg.Token+"/extra")
	assert.Equal(t, http.StatusNotFound, status)

	on, err := e.receipts.SetShareLink(ctx, authed(token, &pb.SetShareLinkRequest{ReceiptId: d.receiptID, Enabled: true}))
	require.NoError(t, err)
	assert.Equal(t, link.Msg.Token, on.Msg.Token)
}
