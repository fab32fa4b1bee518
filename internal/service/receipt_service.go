package service

import (
	"context"
	"errors"
	"log/slog"

	"connectrpc.com/connect"
	"google.golang.org/protobuf/types/known/emptypb"

	"github.com/mmynk/splitter/internal/auth"
	"github.com/mmynk/splitter/internal/middleware"
	"github.com/mmynk/splitter/internal/models"
	"github.com/mmynk/splitter/internal/realtime"
	"github.com/mmynk/splitter/internal/storage"
	pb "github.com/mmynk/splitter/pkg/proto"
	"github.com/mmynk/splitter/pkg/proto/protoconnect"
)

var errNotOwner = errors.New("receipt belongs to another user")

// ReceiptService implements the Connect ReceiptService. Every RPC except
// PreviewAllocation acts on a receipt owned by the caller.
type ReceiptService struct {
	protoconnect.UnimplementedReceiptServiceHandler
	store         storage.Store
	allocator     *Allocator
	hub           *realtime.Hub
	publicBaseURL string
}

// NewReceiptService creates a ReceiptService. publicBaseURL prefixes the
// share links it hands out.
func NewReceiptService(store storage.Store, allocator *Allocator, hub *realtime.Hub, publicBaseURL string) *ReceiptService {
	return &ReceiptService{
		store:         store,
		allocator:     allocator,
		hub:           hub,
		publicBaseURL: publicBaseURL,
	}
}

// ownedReceipt loads a receipt and checks that the caller owns it.
func (s *ReceiptService) ownedReceipt(ctx context.Context, receiptID string) (*models.Receipt, error) {
	userID := middleware.GetUserID(ctx)
	if userID == "" {
		return nil, connect.NewError(connect.CodeUnauthenticated, auth.ErrMissingToken)
	}
	if receiptID == "" {
		return nil, invalidArgument("receipt_id is required")
	}
	receipt, err := s.store.GetReceipt(ctx, receiptID)
	if err != nil {
		return nil, toConnectError("GetReceipt", err)
	}
	if receipt.OwnerID != userID {
		slog.Warn("Receipt access denied", "receipt_id", receiptID, "user_id", userID)
		return nil, connect.NewError(connect.CodePermissionDenied, errNotOwner)
	}
	return receipt, nil
}

// changed drops the cached allocation and notifies watchers.
func (s *ReceiptService) changed(receiptID, table string) {
	s.allocator.Invalidate(receiptID)
	s.hub.Publish(realtime.Change{ReceiptID: receiptID, Table: table})
}

// CreateReceipt creates an empty receipt owned by the caller.
func (s *ReceiptService) CreateReceipt(ctx context.Context, req *connect.Request[pb.CreateReceiptRequest]) (*connect.Response[pb.CreateReceiptResponse], error) {
	userID := middleware.GetUserID(ctx)
	if userID == "" {
		return nil, connect.NewError(connect.CodeUnauthenticated, auth.ErrMissingToken)
	}

	receipt := &models.Receipt{
		OwnerID:     userID,
		Title:       req.Msg.Title,
		Vendor:      req.Msg.Vendor,
		PurchasedAt: req.Msg.PurchasedAt,
		Currency:    req.Msg.Currency,
		ImagePath:   req.Msg.ImagePath,
		Total:       req.Msg.Total,
	}
	if err := s.store.CreateReceipt(ctx, receipt); err != nil {
		return nil, toConnectError("CreateReceipt", err)
	}

	slog.Info("Receipt created", "receipt_id", receipt.ID, "user_id", userID)
	return connect.NewResponse(&pb.CreateReceiptResponse{Receipt: receiptToProto(receipt)}), nil
}

// GetReceipt returns a receipt with all of its rows.
func (s *ReceiptService) GetReceipt(ctx context.Context, req *connect.Request[pb.GetReceiptRequest]) (*connect.Response[pb.GetReceiptResponse], error) {
	if _, err := s.ownedReceipt(ctx, req.Msg.ReceiptId); err != nil {
		return nil, err
	}
	detail, err := s.store.GetReceiptDetail(ctx, req.Msg.ReceiptId)
	if err != nil {
		return nil, toConnectError("GetReceiptDetail", err)
	}
	return connect.NewResponse(detailToProto(detail)), nil
}

// ListReceipts returns the caller's receipts, newest first.
func (s *ReceiptService) ListReceipts(ctx context.Context, _ *connect.Request[emptypb.Empty]) (*connect.Response[pb.ListReceiptsResponse], error) {
	userID := middleware.GetUserID(ctx)
	if userID == "" {
		return nil, connect.NewError(connect.CodeUnauthenticated, auth.ErrMissingToken)
	}

	summaries, err := s.store.ListReceiptsByOwner(ctx, userID)
	if err != nil {
		return nil, toConnectError("ListReceipts", err)
	}

	out := make([]*pb.ReceiptSummary, len(summaries))
	for i, sum := range summaries {
		out[i] = &pb.ReceiptSummary{
			Id:               sum.ID,
			Title:            sum.Title,
			ImagePath:        sum.ImagePath,
			CreatedAt:        sum.CreatedAt,
			ItemsTotal:       sum.ItemsTotal,
			ParticipantCount: int32(sum.ParticipantCount),
		}
	}
	slog.Debug("ListReceipts", "user_id", userID, "count", len(out))
	return connect.NewResponse(&pb.ListReceiptsResponse{Receipts: out}), nil
}

// UpdateReceipt changes the header fields that are set on the request.
func (s *ReceiptService) UpdateReceipt(ctx context.Context, req *connect.Request[pb.UpdateReceiptRequest]) (*connect.Response[pb.UpdateReceiptResponse], error) {
	receipt, err := s.ownedReceipt(ctx, req.Msg.ReceiptId)
	if err != nil {
		return nil, err
	}

	if req.Msg.Title != nil {
		receipt.Title = *req.Msg.Title
	}
	if req.Msg.Vendor != nil {
		receipt.Vendor = *req.Msg.Vendor
	}
	if req.Msg.PurchasedAt != nil {
		receipt.PurchasedAt = *req.Msg.PurchasedAt
	}
	if req.Msg.Currency != nil {
		receipt.Currency = *req.Msg.Currency
	}
	if req.Msg.Total != nil {
		receipt.Total = req.Msg.Total
	}

	if err := s.store.UpdateReceipt(ctx, receipt); err != nil {
		return nil, toConnectError("UpdateReceipt", err)
	}
	s.hub.Publish(realtime.Change{ReceiptID: receipt.ID, Table: realtime.TableReceipt})

	slog.Info("Receipt updated", "receipt_id", receipt.ID)
	return connect.NewResponse(&pb.UpdateReceiptResponse{Receipt: receiptToProto(receipt)}), nil
}

// DeleteReceipt removes a receipt and everything attached to it.
func (s *ReceiptService) DeleteReceipt(ctx context.Context, req *connect.Request[pb.DeleteReceiptRequest]) (*connect.Response[emptypb.Empty], error) {
	if _, err := s.ownedReceipt(ctx, req.Msg.ReceiptId); err != nil {
		return nil, err
	}
	if err := s.store.DeleteReceipt(ctx, req.Msg.ReceiptId); err != nil {
		return nil, toConnectError("DeleteReceipt", err)
	}
	s.changed(req.Msg.ReceiptId, realtime.TableReceipt)

	slog.Info("Receipt deleted", "receipt_id", req.Msg.ReceiptId)
	return connect.NewResponse(&emptypb.Empty{}), nil
}
