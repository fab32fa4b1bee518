package service

import (
	"context"
	"log/slog"
	"math"

	"connectrpc.com/connect"
	"google.golang.org/protobuf/types/known/emptypb"

	"github.com/mmynk/splitter/internal/allocation"
	"github.com/mmynk/splitter/internal/models"
	"github.com/mmynk/splitter/internal/realtime"
	pb "github.com/mmynk/splitter/pkg/proto"
)

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// validateAssignment checks an op against the receipt's rows. The engine
// accepts anything; malformed input is stopped here.
func validateAssignment(i int, op *pb.AssignmentOp, items, participants map[string]bool) error {
	if op == nil {
		return invalidArgument("assignment %d is empty", i+1)
	}
	if !items[op.ItemId] {
		return invalidArgument("assignment %d: item %q is not on this receipt", i+1, op.ItemId)
	}
	if !participants[op.ParticipantId] {
		return invalidArgument("assignment %d: participant %q is not on this receipt", i+1, op.ParticipantId)
	}

	t, ok := allocation.ParseShareType(op.ShareType)
	if !ok {
		return invalidArgument("assignment %d: unknown share_type %q", i+1, op.ShareType)
	}
	switch t {
	case allocation.ShareEqual:
		if op.Portion != nil || op.Amount != nil {
			return invalidArgument("assignment %d: equal shares take no portion or amount", i+1)
		}
	case allocation.SharePortion:
		if op.Amount != nil {
			return invalidArgument("assignment %d: portion shares take no amount", i+1)
		}
		if op.Portion == nil || !finite(*op.Portion) || *op.Portion <= 0 {
			return invalidArgument("assignment %d: portion must be positive", i+1)
		}
	case allocation.ShareAmount:
		if op.Portion != nil {
			return invalidArgument("assignment %d: amount shares take no portion", i+1)
		}
		if op.Amount == nil || !finite(*op.Amount) {
			return invalidArgument("assignment %d: amount is required", i+1)
		}
	}
	return nil
}

// AddAssignments links items to participants. Every op is validated before
// any is stored.
func (s *ReceiptService) AddAssignments(ctx context.Context, req *connect.Request[pb.AddAssignmentsRequest]) (*connect.Response[pb.AddAssignmentsResponse], error) {
	if _, err := s.ownedReceipt(ctx, req.Msg.ReceiptId); err != nil {
		return nil, err
	}
	if len(req.Msg.Assignments) == 0 {
		return nil, invalidArgument("at least one assignment is required")
	}

	detail, err := s.store.GetReceiptDetail(ctx, req.Msg.ReceiptId)
	if err != nil {
		return nil, toConnectError("GetReceiptDetail", err)
	}
	items := make(map[string]bool, len(detail.Items))
	for _, it := range detail.Items {
		items[it.ID] = true
	}
	participants := make(map[string]bool, len(detail.Participants))
	for _, p := range detail.Participants {
		participants[p.ID] = true
	}

	assignments := make([]models.Assignment, len(req.Msg.Assignments))
	for i, op := range req.Msg.Assignments {
		if err := validateAssignment(i, op, items, participants); err != nil {
			return nil, err
		}
		assignments[i] = models.Assignment{
			ItemID:        op.ItemId,
			ParticipantID: op.ParticipantId,
			ShareType:     op.ShareType,
			Portion:       op.Portion,
			Amount:        op.Amount,
		}
	}

	added, err := s.store.AddAssignments(ctx, assignments)
	if err != nil {
		return nil, toConnectError("AddAssignments", err)
	}
	s.changed(req.Msg.ReceiptId, realtime.TableAssignments)

	out := make([]*pb.Assignment, len(added))
	for i := range added {
		out[i] = assignmentToProto(&added[i])
	}
	slog.Info("Assignments added", "receipt_id", req.Msg.ReceiptId, "count", len(out))
	return connect.NewResponse(&pb.AddAssignmentsResponse{Assignments: out}), nil
}

// RemoveAssignment deletes a single assignment.
func (s *ReceiptService) RemoveAssignment(ctx context.Context, req *connect.Request[pb.RemoveAssignmentRequest]) (*connect.Response[emptypb.Empty], error) {
	if req.Msg.AssignmentId == "" {
		return nil, invalidArgument("assignment_id is required")
	}
	assignment, err := s.store.GetAssignment(ctx, req.Msg.AssignmentId)
	if err != nil {
		return nil, toConnectError("GetAssignment", err)
	}
	item, err := s.ownedItem(ctx, assignment.ItemID)
	if err != nil {
		return nil, err
	}

	if err := s.store.RemoveAssignment(ctx, assignment.ID); err != nil {
		return nil, toConnectError("RemoveAssignment", err)
	}
	s.changed(item.ReceiptID, realtime.TableAssignments)

	return connect.NewResponse(&emptypb.Empty{}), nil
}
