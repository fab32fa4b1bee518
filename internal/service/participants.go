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

// AddParticipant adds a named person to a receipt.
func (s *ReceiptService) AddParticipant(ctx context.Context, req *connect.Request[pb.AddParticipantRequest]) (*connect.Response[pb.AddParticipantResponse], error) {
	slog.Info("AddParticipant request received", "receipt_id", req.Msg.ReceiptId)

	if _, err := s.ownedReceipt(ctx, req.Msg.ReceiptId); err != nil {
		return nil, err
	}
	name := strings.TrimSpace(req.Msg.Name)
	if name == "" {
		return nil, invalidArgument("name is required")
	}

	participant := &models.Participant{ReceiptID: req.Msg.ReceiptId, Name: name}
	if err := s.store.AddParticipant(ctx, participant); err != nil {
		return nil, toConnectError("AddParticipant", err)
	}
	s.changed(req.Msg.ReceiptId, realtime.TableParticipants)

	slog.Info("Participant added", "receipt_id", req.Msg.ReceiptId, "participant_id", participant.ID)
	return connect.NewResponse(&pb.AddParticipantResponse{Participant: participantToProto(participant)}), nil
}

// RemoveParticipant removes a participant together with their assignments.
func (s *ReceiptService) RemoveParticipant(ctx context.Context, req *connect.Request[pb.RemoveParticipantRequest]) (*connect.Response[emptypb.Empty], error) {
	if req.Msg.ParticipantId == "" {
		return nil, invalidArgument("participant_id is required")
	}
	participant, err := s.store.GetParticipant(ctx, req.Msg.ParticipantId)
	if err != nil {
		return nil, toConnectError("GetParticipant", err)
	}
	if _, err := s.ownedReceipt(ctx, participant.ReceiptID); err != nil {
		return nil, err
	}

	if err := s.store.RemoveParticipant(ctx, participant.ID); err != nil {
		return nil, toConnectError("RemoveParticipant", err)
	}
	s.changed(participant.ReceiptID, realtime.TableParticipants)

	slog.Info("Participant removed", "receipt_id", participant.ReceiptID, "participant_id", participant.ID)
	return connect.NewResponse(&emptypb.Empty{}), nil
}
