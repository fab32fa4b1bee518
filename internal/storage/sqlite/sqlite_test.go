package sqlite

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmynk/splitter/internal/allocation"
	"github.com/mmynk/splitter/internal/models"
	"github.com/mmynk/splitter/internal/storage"
)

func newTestStore(t *testing.T) *SQLiteStore {
	t.Helper()
	store, err := New(filepath.Join(t.TempDir(), "nested", "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func newOwner(t *testing.T, store *SQLiteStore, email string) *models.User {
	t.Helper()
	user := models.NewUser(email, "Owner", "hash")
	require.NoError(t, store.CreateUser(context.Background(), user))
	return user
}

func fp(v float64) *float64 { return &v }

func TestSQLiteStore_Receipts(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	owner := newOwner(t, store, "owner@example.com")

	t.Run("CreateReceipt fills defaults", func(t *testing.T) {
		r := &models.Receipt{OwnerID: owner.ID}
		require.NoError(t, store.CreateReceipt(ctx, r))

		assert.NotEmpty(t, r.ID)
		assert.Equal(t, "New receipt", r.Title)
		assert.NotZero(t, r.CreatedAt)
		assert.Equal(t, r.CreatedAt, r.UpdatedAt)
	})

	t.Run("GetReceipt round-trips nullable columns", func(t *testing.T) {
		r := &models.Receipt{
			OwnerID:     owner.ID,
			Title:       "Dinner",
			Vendor:      "Trattoria",
			Currency:    "EUR",
			PurchasedAt: 1700000000,
			ImagePath:   "owner/receipt.jpg",
			Total:       fp(42.5),
		}
		require.NoError(t, store.CreateReceipt(ctx, r))

		got, err := store.GetReceipt(ctx, r.ID)
		require.NoError(t, err)
		assert.Equal(t, "Dinner", got.Title)
		assert.Equal(t, "Trattoria", got.Vendor)
		assert.Equal(t, "EUR", got.Currency)
		assert.Equal(t, int64(1700000000), got.PurchasedAt)
		assert.Equal(t, "owner/receipt.jpg", got.ImagePath)
		require.NotNil(t, got.Total)
		assert.Equal(t, 42.5, *got.Total)
		assert.False(t, got.ShareEnabled)
	})

	t.Run("GetReceipt returns ErrNotFound", func(t *testing.T) {
		_, err := store.GetReceipt(ctx, "nonexistent-id")
		assert.ErrorIs(t, err, storage.ErrNotFound)
	})

	t.Run("UpdateReceipt and share token lookup", func(t *testing.T) {
		r := &models.Receipt{OwnerID: owner.ID, Title: "Lunch"}
		require.NoError(t, store.CreateReceipt(ctx, r))

		r.Title = "Team lunch"
		r.ShareToken = "tok-123"
		r.ShareEnabled = true
		require.NoError(t, store.UpdateReceipt(ctx, r))

		got, err := store.GetReceiptByShareToken(ctx, "tok-123")
		require.NoError(t, err)
		assert.Equal(t, r.ID, got.ID)
		assert.Equal(t, "Team lunch", got.Title)
		assert.True(t, got.ShareEnabled)

		_, err = store.GetReceiptByShareToken(ctx, "")
		assert.ErrorIs(t, err, storage.ErrNotFound)
		_, err = store.GetReceiptByShareToken(ctx, "other")
		assert.ErrorIs(t, err, storage.ErrNotFound)
	})

	t.Run("UpdateReceipt on missing receipt", func(t *testing.T) {
		err := store.UpdateReceipt(ctx, &models.Receipt{ID: "missing"})
		assert.ErrorIs(t, err, storage.ErrNotFound)
	})

	t.Run("ListReceiptsByOwner summarizes", func(t *testing.T) {
		other := newOwner(t, store, "other@example.com")
		r := &models.Receipt{OwnerID: other.ID, Title: "Groceries", CreatedAt: 1}
		require.NoError(t, store.CreateReceipt(ctx, r))
		_, err := store.AddItems(ctx, r.ID, []models.ReceiptItem{
			{Description: "Milk", Quantity: 2, UnitPrice: 1.2},
			{Description: "Bread", Quantity: 1, UnitPrice: 3},
		})
		require.NoError(t, err)
		require.NoError(t, store.AddParticipant(ctx, &models.Participant{ReceiptID: r.ID, Name: "Ann"}))

		newer := &models.Receipt{OwnerID: other.ID, Title: "Later", CreatedAt: 2}
		require.NoError(t, store.CreateReceipt(ctx, newer))

		summaries, err := store.ListReceiptsByOwner(ctx, other.ID)
		require.NoError(t, err)
		require.Len(t, summaries, 2)
		assert.Equal(t, "Later", summaries[0].Title)
		assert.Equal(t, "Groceries", summaries[1].Title)
		assert.InDelta(t, 5.4, summaries[1].ItemsTotal, 1e-9)
		assert.Equal(t, 1, summaries[1].ParticipantCount)
	})

	t.Run("DeleteReceipt cascades", func(t *testing.T) {
		r := &models.Receipt{OwnerID: owner.ID}
		require.NoError(t, store.CreateReceipt(ctx, r))
		items, err := store.AddItems(ctx, r.ID, []models.ReceiptItem{{Description: "Soup", Quantity: 1, UnitPrice: 5}})
		require.NoError(t, err)

		require.NoError(t, store.DeleteReceipt(ctx, r.ID))
		_, err = store.GetItem(ctx, items[0].ID)
		assert.ErrorIs(t, err, storage.ErrNotFound)
		assert.ErrorIs(t, store.DeleteReceipt(ctx, r.ID), storage.ErrNotFound)
	})
}

func TestSQLiteStore_Rows(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	owner := newOwner(t, store, "rows@example.com")

	receipt := &models.Receipt{OwnerID: owner.ID, Title: "Bar tab"}
	require.NoError(t, store.CreateReceipt(ctx, receipt))

	items, err := store.AddItems(ctx, receipt.ID, []models.ReceiptItem{
		{Description: "Beer", Quantity: 3, UnitPrice: 0.1},
		{LineIndex: 5, Description: "Nachos", Quantity: 1, UnitPrice: 12},
		{Description: "Fries", Quantity: 2, UnitPrice: 4},
	})
	require.NoError(t, err)
	require.Len(t, items, 3)

	t.Run("AddItems computes subtotals and line indexes", func(t *testing.T) {
		assert.Equal(t, 1, items[0].LineIndex)
		assert.Equal(t, 0.3, items[0].Subtotal)
		assert.Equal(t, 5, items[1].LineIndex)
		assert.Equal(t, 6, items[2].LineIndex)
		assert.Equal(t, 8.0, items[2].Subtotal)
	})

	t.Run("AddItems on missing receipt", func(t *testing.T) {
		_, err := store.AddItems(ctx, "missing", []models.ReceiptItem{{Description: "x"}})
		assert.ErrorIs(t, err, storage.ErrNotFound)
	})

	t.Run("UpdateItem recomputes subtotal", func(t *testing.T) {
		item := items[1]
		item.Quantity = 2
		require.NoError(t, store.UpdateItem(ctx, &item))

		got, err := store.GetItem(ctx, item.ID)
		require.NoError(t, err)
		assert.Equal(t, 24.0, got.Subtotal)
	})

	alice := &models.Participant{ReceiptID: receipt.ID, Name: "Alice"}
	bob := &models.Participant{ReceiptID: receipt.ID, Name: "Bob"}
	require.NoError(t, store.AddParticipant(ctx, alice))
	require.NoError(t, store.AddParticipant(ctx, bob))

	t.Run("AddAssignments keeps duplicates and order", func(t *testing.T) {
		added, err := store.AddAssignments(ctx, []models.Assignment{
			{ItemID: items[0].ID, ParticipantID: alice.ID, ShareType: "equal"},
			{ItemID: items[0].ID, ParticipantID: alice.ID, ShareType: "equal"},
			{ItemID: items[1].ID, ParticipantID: bob.ID, ShareType: "portion", Portion: fp(2)},
			{ItemID: items[2].ID, ParticipantID: alice.ID, ShareType: "amount", Amount: fp(3)},
		})
		require.NoError(t, err)
		require.Len(t, added, 4)
		assert.NotEqual(t, added[0].ID, added[1].ID)

		got, err := store.GetAssignment(ctx, added[2].ID)
		require.NoError(t, err)
		require.NotNil(t, got.Portion)
		assert.Equal(t, 2.0, *got.Portion)
		assert.Nil(t, got.Amount)

		detail, err := store.GetReceiptDetail(ctx, receipt.ID)
		require.NoError(t, err)
		require.Len(t, detail.Assignments, 4)
		for i := range added {
			assert.Equal(t, added[i].ID, detail.Assignments[i].ID)
		}
	})

	t.Run("AddAssignments rejects unknown share types", func(t *testing.T) {
		_, err := store.AddAssignments(ctx, []models.Assignment{
			{ItemID: items[0].ID, ParticipantID: alice.ID, ShareType: "percent"},
		})
		assert.Error(t, err)
	})

	t.Run("SetAdjustment upserts by key", func(t *testing.T) {
		tax := &models.Adjustment{ReceiptID: receipt.ID, Key: "tax", Amount: 2}
		require.NoError(t, store.SetAdjustment(ctx, tax))
		firstID := tax.ID

		again := &models.Adjustment{ReceiptID: receipt.ID, Key: "tax", Amount: 3.2}
		require.NoError(t, store.SetAdjustment(ctx, again))
		assert.Equal(t, firstID, again.ID)

		require.NoError(t, store.SetAdjustment(ctx, &models.Adjustment{ReceiptID: receipt.ID, Key: "tip", Amount: 5}))

		detail, err := store.GetReceiptDetail(ctx, receipt.ID)
		require.NoError(t, err)
		require.Len(t, detail.Adjustments, 2)
		assert.Equal(t, "tax", detail.Adjustments[0].Key)
		assert.Equal(t, 3.2, detail.Adjustments[0].Amount)
	})

	t.Run("LoadSnapshot feeds the allocation engine", func(t *testing.T) {
		snapshot, err := store.LoadSnapshot(ctx, receipt.ID)
		require.NoError(t, err)
		assert.Len(t, snapshot.Items, 3)
		assert.Len(t, snapshot.Assignments, 4)
		assert.Len(t, snapshot.Adjustments, 2)

		got := allocation.Compute(*snapshot).Totals()
		// alice: beer 0.3 (two equal slots) + fries amount 3; bob: nachos 24
		// item total 27.3, adjustments 8.2
		assert.InDelta(t, 3.3+8.2*3.3/27.3, got[alice.ID], 1e-9)
		assert.InDelta(t, 24+8.2*24/27.3, got[bob.ID], 1e-9)

		_, err = store.LoadSnapshot(ctx, "missing")
		assert.ErrorIs(t, err, storage.ErrNotFound)
	})

	t.Run("DeleteAdjustment", func(t *testing.T) {
		require.NoError(t, store.DeleteAdjustment(ctx, receipt.ID, "tip"))
		assert.ErrorIs(t, store.DeleteAdjustment(ctx, receipt.ID, "tip"), storage.ErrNotFound)
	})

	t.Run("RemoveParticipant cascades to assignments", func(t *testing.T) {
		require.NoError(t, store.RemoveParticipant(ctx, bob.ID))

		detail, err := store.GetReceiptDetail(ctx, receipt.ID)
		require.NoError(t, err)
		assert.Len(t, detail.Participants, 1)
		for _, a := range detail.Assignments {
			assert.NotEqual(t, bob.ID, a.ParticipantID)
		}
		assert.ErrorIs(t, store.RemoveParticipant(ctx, bob.ID), storage.ErrNotFound)
	})

	t.Run("DeleteItem cascades to assignments", func(t *testing.T) {
		require.NoError(t, store.DeleteItem(ctx, items[0].ID))

		detail, err := store.GetReceiptDetail(ctx, receipt.ID)
		require.NoError(t, err)
		assert.Len(t, detail.Items, 2)
		assert.Len(t, detail.Assignments, 1)
	})

	t.Run("RemoveAssignment", func(t *testing.T) {
		detail, err := store.GetReceiptDetail(ctx, receipt.ID)
		require.NoError(t, err)
		require.Len(t, detail.Assignments, 1)

		id := detail.Assignments[0].ID
		require.NoError(t, store.RemoveAssignment(ctx, id))
		_, err = store.GetAssignment(ctx, id)
		assert.ErrorIs(t, err, storage.ErrNotFound)
	})
}

func TestSQLiteStore_Users(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	user := models.NewUser("  Alice@Example.com ", "Alice", "hash")
	require.NoError(t, store.CreateUser(ctx, user))
	assert.Equal(t, "alice@example.com", user.Email)

	got, err := store.GetUserByEmail(ctx, "ALICE@example.com")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, user.ID, got.ID)

	got, err = store.GetUserByID(ctx, user.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "Alice", got.DisplayName)

	got, err = store.GetUserByEmail(ctx, "nobody@example.com")
	require.NoError(t, err)
	assert.Nil(t, got)

	err = store.CreateUser(ctx, models.NewUser("alice@example.com", "Dup", "hash"))
	assert.Error(t, err, "email is unique")
}
