package service

import (
	"github.com/mmynk/splitter/internal/allocation"
	"github.com/mmynk/splitter/internal/models"
	pb "github.com/mmynk/splitter/pkg/proto"
)

func receiptToProto(r *models.Receipt) *pb.Receipt {
	return &pb.Receipt{
		Id:           r.ID,
		Title:        r.Title,
		Vendor:       r.Vendor,
		PurchasedAt:  r.PurchasedAt,
		Currency:     r.Currency,
		ImagePath:    r.ImagePath,
		Total:        r.Total,
		ShareEnabled: r.ShareEnabled,
		CreatedAt:    r.CreatedAt,
		UpdatedAt:    r.UpdatedAt,
	}
}

func itemToProto(it *models.ReceiptItem) *pb.Item {
	return &pb.Item{
		Id:          it.ID,
		LineIndex:   int32(it.LineIndex),
		Description: it.Description,
		Quantity:    it.Quantity,
		UnitPrice:   it.UnitPrice,
		Subtotal:    it.Subtotal,
	}
}

func participantToProto(p *models.Participant) *pb.Participant {
	return &pb.Participant{Id: p.ID, Name: p.Name}
}

func assignmentToProto(a *models.Assignment) *pb.Assignment {
	return &pb.Assignment{
		Id:            a.ID,
		ItemId:        a.ItemID,
		ParticipantId: a.ParticipantID,
		ShareType:     a.ShareType,
		Portion:       a.Portion,
		Amount:        a.Amount,
	}
}

func adjustmentToProto(a *models.Adjustment) *pb.Adjustment {
	return &pb.Adjustment{Id: a.ID, Key: a.Key, Amount: a.Amount}
}

func userToProto(u *models.User) *pb.User {
	return &pb.User{
		Id:          u.ID,
		Email:       u.Email,
		DisplayName: u.DisplayName,
		CreatedAt:   u.CreatedAt,
	}
}

func detailToProto(d *models.ReceiptDetail) *pb.GetReceiptResponse {
	resp := &pb.GetReceiptResponse{
		Receipt:      receiptToProto(d.Receipt),
		Items:        make([]*pb.Item, len(d.Items)),
		Participants: make([]*pb.Participant, len(d.Participants)),
		Assignments:  make([]*pb.Assignment, len(d.Assignments)),
		Adjustments:  make([]*pb.Adjustment, len(d.Adjustments)),
	}
	for i := range d.Items {
		resp.Items[i] = itemToProto(&d.Items[i])
	}
	for i := range d.Participants {
		resp.Participants[i] = participantToProto(&d.Participants[i])
	}
	for i := range d.Assignments {
		resp.Assignments[i] = assignmentToProto(&d.Assignments[i])
	}
	for i := range d.Adjustments {
		resp.Adjustments[i] = adjustmentToProto(&d.Adjustments[i])
	}
	return resp
}

// breakdownToProto copies b; the breakdown may be shared through the cache.
func breakdownToProto(b *allocation.Breakdown) *pb.Allocation {
	out := &pb.Allocation{
		Totals:             make(map[string]float64, len(b.People)),
		People:             make([]*pb.PersonShare, len(b.People)),
		ItemTotal:          b.ItemTotal,
		AdjustmentTotal:    b.AdjustmentTotal,
		AdjustmentsApplied: b.AdjustmentsApplied,
	}
	for i, p := range b.People {
		items := make([]*pb.ItemShare, len(p.Items))
		for j, it := range p.Items {
			items[j] = &pb.ItemShare{ItemId: it.ItemID, Amount: it.Amount}
		}
		out.People[i] = &pb.PersonShare{
			ParticipantId: p.ParticipantID,
			Subtotal:      p.Subtotal,
			Adjustment:    p.Adjustment,
			Total:         p.Total,
			Items:         items,
		}
		out.Totals[p.ParticipantID] = p.Total
	}
	return out
}

// recordsFromProto converts a preview request into engine records.
func recordsFromProto(req *pb.PreviewAllocationRequest) allocation.Records {
	r := allocation.Records{
		Items:       make([]allocation.ItemRecord, 0, len(req.Items)),
		Assignments: make([]allocation.AssignmentRecord, 0, len(req.Assignments)),
		Adjustments: make([]allocation.AdjustmentRecord, 0, len(req.Adjustments)),
	}
	for _, it := range req.Items {
		if it == nil {
			continue
		}
		r.Items = append(r.Items, allocation.ItemRecord{ID: it.Id, Subtotal: it.Subtotal})
	}
	for _, a := range req.Assignments {
		if a == nil {
			continue
		}
		r.Assignments = append(r.Assignments, allocation.AssignmentRecord{
			ItemID:        a.ItemId,
			ParticipantID: a.ParticipantId,
			ShareType:     a.ShareType,
			Portion:       a.Portion,
			Amount:        a.Amount,
		})
	}
	for _, adj := range req.Adjustments {
		if adj == nil {
			continue
		}
		r.Adjustments = append(r.Adjustments, allocation.AdjustmentRecord{Key: adj.Key, Amount: adj.Amount})
	}
	return r
}
