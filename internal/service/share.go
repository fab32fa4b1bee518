package service

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"connectrpc.com/connect"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	jsoniter "github.com/json-iterator/go"

	"github.com/mmynk/splitter/internal/money"
	"github.com/mmynk/splitter/internal/realtime"
	"github.com/mmynk/splitter/internal/storage"
	pb "github.com/mmynk/splitter/pkg/proto"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// SetShareLink turns the public view of a receipt on or off. The token is
// issued once and kept when sharing is disabled, so re-enabling restores the
// same link.
func (s *ReceiptService) SetShareLink(ctx context.Context, req *connect.Request[pb.SetShareLinkRequest]) (*connect.Response[pb.SetShareLinkResponse], error) {
	receipt, err := s.ownedReceipt(ctx, req.Msg.ReceiptId)
	if err != nil {
		return nil, err
	}

	if receipt.ShareToken == "" {
		receipt.ShareToken = uuid.New().String()
	}
	receipt.ShareEnabled = req.Msg.Enabled
	if err := s.store.UpdateReceipt(ctx, receipt); err != nil {
		return nil, toConnectError("SetShareLink", err)
	}
	s.hub.Publish(realtime.Change{ReceiptID: receipt.ID, Table: realtime.TableReceipt})

	slog.Info("Share link updated", "receipt_id", receipt.ID, "enabled", receipt.ShareEnabled)
	return connect.NewResponse(&pb.SetShareLinkResponse{
		Token:   receipt.ShareToken,
		Url:     s.shareURL(receipt.ShareToken),
		Enabled: receipt.ShareEnabled,
	}), nil
}

func (s *ReceiptService) shareURL(token string) string {
	return strings.TrimRight(s.publicBaseURL, "/") + "/share/" + token
}

// SharedParticipant is one row of the public summary.
type SharedParticipant struct {
	Name  string  `json:"name"`
	Total float64 `json:"total"`
}

// SharedReceipt is the public, read-only summary of a shared receipt.
type SharedReceipt struct {
	Title        string              `json:"title"`
	Currency     string              `json:"currency,omitempty"`
	ItemTotal    float64             `json:"itemTotal"` // every line, assigned or not
	Participants []SharedParticipant `json:"participants"`
}

// ServeShare answers GET /share/{token}; mount it on a chi router so the
// token URL param is set. Unknown tokens and receipts with sharing turned
// off both answer 404.
func (s *ReceiptService) ServeShare(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	token := chi.URLParam(r, "token")

	receipt, err := s.store.GetReceiptByShareToken(ctx, token)
	if errors.Is(err, storage.ErrNotFound) || (err == nil && !receipt.ShareEnabled) {
		http.NotFound(w, r)
		return
	}
	if err != nil {
		slog.Error("Share lookup failed", "error", err)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	detail, err := s.store.GetReceiptDetail(ctx, receipt.ID)
	if err != nil {
		slog.Error("Share detail failed", "receipt_id", receipt.ID, "error", err)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}
	b, err := s.allocator.Allocate(ctx, receipt.ID)
	if err != nil {
		slog.Error("Share allocation failed", "receipt_id", receipt.ID, "error", err)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	subtotals := make([]float64, len(detail.Items))
	for i, it := range detail.Items {
		subtotals[i] = it.Subtotal
	}

	totals := b.Totals()
	out := SharedReceipt{
		Title:        receipt.Title,
		Currency:     receipt.Currency,
		ItemTotal:    money.Sum(subtotals...),
		Participants: make([]SharedParticipant, len(detail.Participants)),
	}
	for i, p := range detail.Participants {
		// Missing from totals means nothing was assigned: owes 0.
		out.Participants[i] = SharedParticipant{Name: p.Name, Total: totals[p.ID]}
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(out); err != nil {
		slog.Warn("Share response write failed", "error", err)
	}
}
