package service

import (
	"context"
	"log/slog"
	"strings"

	"connectrpc.com/connect"
	"google.golang.org/protobuf/types/known/emptypb"

	"github.com/mmynk/splitter/internal/models"
	"github.com/mmynk/splitter/internal/realtime"
	pb "github.com/mmynk/splitter/pkg/proto"
)

// SetAdjustment stores a bill-level amount under key, replacing any amount
// already stored there. Negative amounts are discounts.
func (s *ReceiptService) SetAdjustment(ctx context.Context, req *connect.Request[pb.SetAdjustmentRequest]) (*connect.Response[pb.SetAdjustmentResponse], error) {
	if _, err := s.ownedReceipt(ctx, req.Msg.ReceiptId); err != nil {
		return nil, err
	}
	key := strings.TrimSpace(req.Msg.Key)
	if key == "" {
		return nil, invalidArgument("key is required")
	}
	if !finite(req.Msg.Amount) {
		return nil, invalidArgument("amount must be a number")
	}

	adj := &models.Adjustment{ReceiptID: req.Msg.ReceiptId, Key: key, Amount: req.Msg.Amount}
	if err := s.store.SetAdjustment(ctx, adj); err != nil {
		return nil, toConnectError("SetAdjustment", err)
	}
	s.changed(req.Msg.ReceiptId, realtime.TableAdjustments)

	slog.Info("Adjustment set", "receipt_id", req.Msg.ReceiptId, "key", key, "amount", adj.Amount)
	return connect.NewResponse(&pb.SetAdjustmentResponse{Adjustment: adjustmentToProto(adj)}), nil
}

func (s *ReceiptService) DeleteAdjustment(ctx context.Context, req *connect.Request[pb.DeleteAdjustmentRequest]) (*connect.Response[emptypb.Empty], error) {
	if _, err := s.ownedReceipt(ctx, req.Msg.ReceiptId); err != nil {
		return nil, err
	}
	key := strings.TrimSpace(req.Msg.Key)
	if err := s.store.DeleteAdjustment(ctx, req.Msg.ReceiptId, key); err != nil {
		return nil, toConnectError("DeleteAdjustment", err)
	}
	s.changed(req.Msg.ReceiptId, realtime.TableAdjustments)

	return connect.NewResponse(&emptypb.Empty{}), nil
}
