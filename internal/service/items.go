package service

import (
	"context"
	"log/slog"
	"math"
	"strings"

	"connectrpc.com/connect"
	"google.golang.org/protobuf/types/known/emptypb"

	"github.com/mmynk/splitter/internal/models"
	"github.com/mmynk/splitter/internal/realtime"
	pb "github.com/mmynk/splitter/pkg/proto"
)

// validateLine checks a line before it is stored. Discounts and refunds are
// adjustments, never negative lines.
func validateLine(quantity, unitPrice float64) error {
	if math.IsNaN(quantity) || math.IsInf(quantity, 0) || quantity <= 0 {
		return invalidArgument("quantity must be a positive number")
	}
	if math.IsNaN(unitPrice) || math.IsInf(unitPrice, 0) || unitPrice < 0 {
		return invalidArgument("unit_price must be a non-negative number")
	}
	return nil
}

// AddItems stores extracted receipt lines. A zero quantity means one unit.
func (s *ReceiptService) AddItems(ctx context.Context, req *connect.Request[pb.AddItemsRequest]) (*connect.Response[pb.AddItemsResponse], error) {
	if _, err := s.ownedReceipt(ctx, req.Msg.ReceiptId); err != nil {
		return nil, err
	}
	if len(req.Msg.Lines) == 0 {
		return nil, invalidArgument("at least one line is required")
	}

	items := make([]models.ReceiptItem, 0, len(req.Msg.Lines))
	for i, line := range req.Msg.Lines {
		if line == nil {
			return nil, invalidArgument("line %d is empty", i+1)
		}
		quantity := line.Quantity
		if quantity == 0 {
			quantity = 1
		}
		if err := validateLine(quantity, line.UnitPrice); err != nil {
			return nil, err
		}
		items = append(items, models.ReceiptItem{
			LineIndex:   int(line.LineIndex),
			Description: strings.TrimSpace(line.Description),
			Quantity:    quantity,
			UnitPrice:   line.UnitPrice,
		})
	}

	added, err := s.store.AddItems(ctx, req.Msg.ReceiptId, items)
	if err != nil {
		return nil, toConnectError("AddItems", err)
	}
	s.changed(req.Msg.ReceiptId, realtime.TableItems)

	out := make([]*pb.Item, len(added))
	for i := range added {
		out[i] = itemToProto(&added[i])
	}
	slog.Info("Items added", "receipt_id", req.Msg.ReceiptId, "count", len(out))
	return connect.NewResponse(&pb.AddItemsResponse{Items: out}), nil
}

// ownedItem loads an item and checks the caller owns its receipt.
func (s *ReceiptService) ownedItem(ctx context.Context, itemID string) (*models.ReceiptItem, error) {
	if itemID == "" {
		return nil, invalidArgument("item_id is required")
	}
	item, err := s.store.GetItem(ctx, itemID)
	if err != nil {
		return nil, toConnectError("GetItem", err)
	}
	if _, err := s.ownedReceipt(ctx, item.ReceiptID); err != nil {
		return nil, err
	}
	return item, nil
}

// UpdateItem edits an item. The subtotal is always recomputed.
func (s *ReceiptService) UpdateItem(ctx context.Context, req *connect.Request[pb.UpdateItemRequest]) (*connect.Response[pb.UpdateItemResponse], error) {
	item, err := s.ownedItem(ctx, req.Msg.ItemId)
	if err != nil {
		return nil, err
	}

	if req.Msg.LineIndex != nil {
		item.LineIndex = int(*req.Msg.LineIndex)
	}
	if req.Msg.Description != nil {
		item.Description = strings.TrimSpace(*req.Msg.Description)
	}
	if req.Msg.Quantity != nil {
		item.Quantity = *req.Msg.Quantity
	}
	if req.Msg.UnitPrice != nil {
		item.UnitPrice = *req.Msg.UnitPrice
	}
	if err := validateLine(item.Quantity, item.UnitPrice); err != nil {
		return nil, err
	}

	if err := s.store.UpdateItem(ctx, item); err != nil {
		return nil, toConnectError("UpdateItem", err)
	}
	s.changed(item.ReceiptID, realtime.TableItems)

	return connect.NewResponse(&pb.UpdateItemResponse{Item: itemToProto(item)}), nil
}

// DeleteItem removes an item and its assignments.
func (s *ReceiptService) DeleteItem(ctx context.Context, req *connect.Request[pb.DeleteItemRequest]) (*connect.Response[emptypb.Empty], error) {
	item, err := s.ownedItem(ctx, req.Msg.ItemId)
	if err != nil {
		return nil, err
	}
	if err := s.store.DeleteItem(ctx, item.ID); err != nil {
		return nil, toConnectError("DeleteItem", err)
	}
	s.changed(item.ReceiptID, realtime.TableItems)

	slog.Info("Item deleted", "receipt_id", item.ReceiptID, "item_id", item.ID)
	return connect.NewResponse(&emptypb.Empty{}), nil
}
