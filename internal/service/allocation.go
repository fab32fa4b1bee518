package service

import (
	"context"
	"log/slog"

	"connectrpc.com/connect"

	"github.com/mmynk/splitter/internal/allocation"
	pb "github.com/mmynk/splitter/pkg/proto"
)

// TriggerInitial marks the first update sent on a watch stream. Later updates
// carry the name of the table whose change caused them.
const TriggerInitial = "initial"

// CalculateAllocation returns what each participant owes on a stored receipt.
func (s *ReceiptService) CalculateAllocation(ctx context.Context, req *connect.Request[pb.CalculateAllocationRequest]) (*connect.Response[pb.CalculateAllocationResponse], error) {
	if _, err := s.ownedReceipt(ctx, req.Msg.ReceiptId); err != nil {
		return nil, err
	}

	b, err := s.allocator.Allocate(ctx, req.Msg.ReceiptId)
	if err != nil {
		return nil, toConnectError("CalculateAllocation", err)
	}

	slog.Debug("Allocation calculated",
		"receipt_id", req.Msg.ReceiptId,
		"participants", len(b.People),
		"item_total", b.ItemTotal,
	)
	return connect.NewResponse(&pb.CalculateAllocationResponse{Allocation: breakdownToProto(b)}), nil
}

// PreviewAllocation runs the engine on records supplied by the caller.
// Nothing is read or stored.
func (s *ReceiptService) PreviewAllocation(ctx context.Context, req *connect.Request[pb.PreviewAllocationRequest]) (*connect.Response[pb.PreviewAllocationResponse], error) {
	slog.Info("PreviewAllocation request received",
		"items_count", len(req.Msg.Items),
		"assignments_count", len(req.Msg.Assignments),
		"adjustments_count", len(req.Msg.Adjustments),
	)

	b := allocation.Compute(recordsFromProto(req.Msg).Snapshot())
	return connect.NewResponse(&pb.PreviewAllocationResponse{Allocation: breakdownToProto(b)}), nil
}

// WatchAllocation streams the allocation of a receipt, first as it is now
// and then again after every change. Changes that arrive while an update is
// being computed collapse into one recomputation.
func (s *ReceiptService) WatchAllocation(ctx context.Context, req *connect.Request[pb.WatchAllocationRequest], stream *connect.ServerStream[pb.AllocationUpdate]) error {
	receiptID := req.Msg.ReceiptId
	if _, err := s.ownedReceipt(ctx, receiptID); err != nil {
		return err
	}

	// Subscribe before the first read so no change falls between the two.
	changes, cancel := s.hub.Subscribe(receiptID)
	defer cancel()

	gauge := s.allocator.metrics.WatchStreams
	gauge.Inc()
	defer gauge.Dec()

	slog.Info("Watch started", "receipt_id", receiptID)
	defer slog.Info("Watch ended", "receipt_id", receiptID)

	b, err := s.allocator.Allocate(ctx, receiptID)
	if err != nil {
		return toConnectError("WatchAllocation", err)
	}
	if err := stream.Send(&pb.AllocationUpdate{
		ReceiptId:  receiptID,
		Trigger:    TriggerInitial,
		Allocation: breakdownToProto(b),
	}); err != nil {
		return err
	}

	for {
		select {
		case <-ctx.Done():
			return nil
		case change, ok := <-changes:
			if !ok {
				return nil
			}
			b, err := s.allocator.Recompute(ctx, receiptID)
			if err != nil {
				if ctx.Err() != nil {
					return nil
				}
				return toConnectError("WatchAllocation", err)
			}
			if err := stream.Send(&pb.AllocationUpdate{
				ReceiptId:  receiptID,
				Trigger:    change.Table,
				Allocation: breakdownToProto(b),
			}); err != nil {
				return err
			}
		}
	}
}
