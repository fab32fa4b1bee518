package models

// Receipt is a bill to be split. Items, participants, assignments and
// adjustments hang off it by ReceiptID.
type Receipt struct {
	// ID is the unique identifier for the receipt (UUID format).
	ID string

	// OwnerID is the user who created the receipt. Only the owner may read or
	// change it through the API.
	OwnerID string

	// Title is the human-readable name. Defaults to "New receipt".
	Title string

	// Vendor is the merchant name as read from the receipt, if known.
	Vendor string

	// PurchasedAt is the Unix timestamp of the purchase, or 0 if unknown.
	PurchasedAt int64

	// Currency is an ISO 4217 code. The service never converts between
	// currencies; it is carried for display.
	Currency string

	// ImagePath is the storage path of the uploaded receipt image.
	ImagePath string

	// Total is the printed grand total, if extracted. It is informational
	// and takes no part in the allocation.
	Total *float64

	// ShareToken is the public view token. Empty until a share link is
	// first created.
	ShareToken string

	// ShareEnabled toggles public access through ShareToken.
	ShareEnabled bool

	CreatedAt int64
	UpdatedAt int64
}

// ReceiptItem is one priced line on a receipt.
type ReceiptItem struct {
	ID        string
	ReceiptID string

	// LineIndex is the 1-based position of the line on the printed receipt.
	LineIndex int

	Description string
	Quantity    float64
	UnitPrice   float64

	// Subtotal is Quantity × UnitPrice. It is computed by the store on every
	// write and never set by callers.
	Subtotal float64
}

// Participant is a person splitting a receipt. Participants are scoped to a
// receipt and do not need a user account.
type Participant struct {
	ID        string
	ReceiptID string
	Name      string
}

// Assignment links an item to a participant.
//
// ShareType is one of "equal", "portion" or "amount". Portion is set only for
// portion shares and Amount only for amount shares. Duplicate assignments are
// allowed and each one counts.
type Assignment struct {
	ID            string
	ItemID        string
	ParticipantID string
	ShareType     string
	Portion       *float64
	Amount        *float64
}

// Adjustment is a bill-level amount not tied to any item: tax, tip, service
// fee, or a discount (negative). Keys are unique per receipt.
type Adjustment struct {
	ID        string
	ReceiptID string
	Key       string
	Amount    float64
}

// ReceiptDetail is a receipt with all of its rows.
type ReceiptDetail struct {
	Receipt      *Receipt
	Items        []ReceiptItem
	Participants []Participant
	Assignments  []Assignment
	Adjustments  []Adjustment
}

// ReceiptSummary is the listing view of a receipt.
type ReceiptSummary struct {
	ID               string
	Title            string
	ImagePath        string
	CreatedAt        int64
	ItemsTotal       float64
	ParticipantCount int
}
