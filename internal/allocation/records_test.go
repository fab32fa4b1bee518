package allocation

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr(v float64) *float64 { return &v }

func TestAssignmentRecord_Assignment(t *testing.T) {
	tests := []struct {
		name   string
		record AssignmentRecord
		want   Share
		ok     bool
	}{
		{
			name:   "equal ignores stray magnitudes",
			record: AssignmentRecord{ShareType: "equal", Portion: ptr(3), Amount: ptr(4)},
			want:   Equal{},
			ok:     true,
		},
		{
			name:   "portion",
			record: AssignmentRecord{ShareType: "portion", Portion: ptr(2)},
			want:   Portion{Weight: 2},
			ok:     true,
		},
		{
			name:   "null portion is zero",
			record: AssignmentRecord{ShareType: "portion"},
			want:   Portion{Weight: 0},
			ok:     true,
		},
		{
			name:   "amount",
			record: AssignmentRecord{ShareType: "amount", Amount: ptr(7.5)},
			want:   Amount{Value: 7.5},
			ok:     true,
		},
		{
			name:   "null amount is zero",
			record: AssignmentRecord{ShareType: "amount", Portion: ptr(1)},
			want:   Amount{Value: 0},
			ok:     true,
		},
		{
			name:   "unknown share type",
			record: AssignmentRecord{ShareType: "percent"},
			ok:     false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.record.ItemID = "i1"
			tt.record.ParticipantID = "p1"
			got, ok := tt.record.Assignment()
			require.Equal(t, tt.ok, ok)
			if !ok {
				return
			}
			assert.Equal(t, "i1", got.ItemID)
			assert.Equal(t, "p1", got.ParticipantID)
			assert.Equal(t, tt.want, got.Share)
		})
	}
}

func TestRecords_Snapshot(t *testing.T) {
	raw := `{
		"items": [{"id": "i1", "subtotal": 30}],
		"assignments": [
			{"item_id": "i1", "participant_id": "amountP", "share_type": "amount", "amount": 10},
			{"item_id": "i1", "participant_id": "portionP", "share_type": "portion", "portion": 1},
			{"item_id": "i1", "participant_id": "equalP", "share_type": "equal", "portion": null},
			{"item_id": "i1", "participant_id": "oddP", "share_type": "bogus"}
		],
		"adjustments": [{"key": "tax", "amount": 6}]
	}`

	var records Records
	require.NoError(t, json.Unmarshal([]byte(raw), &records))

	s := records.Snapshot()
	assert.Len(t, s.Items, 1)
	assert.Len(t, s.Assignments, 3)
	assert.Len(t, s.Adjustments, 1)

	got := Compute(s).Totals()
	assert.InDelta(t, 12, got["amountP"], epsilon)
	assert.InDelta(t, 24, got["portionP"], epsilon)
	assert.InDelta(t, 0, got["equalP"], epsilon)
	assert.NotContains(t, got, "oddP")
}

func TestMagnitudes(t *testing.T) {
	p, a := Magnitudes(Portion{Weight: 2})
	require.NotNil(t, p)
	assert.Nil(t, a)
	assert.Equal(t, 2.0, *p)

	p, a = Magnitudes(Amount{Value: 4})
	assert.Nil(t, p)
	require.NotNil(t, a)
	assert.Equal(t, 4.0, *a)

	p, a = Magnitudes(Equal{})
	assert.Nil(t, p)
	assert.Nil(t, a)
}

func TestParseShareType(t *testing.T) {
	for _, s := range []string{"equal", "portion", "amount"} {
		got, ok := ParseShareType(s)
		assert.True(t, ok, s)
		assert.Equal(t, ShareType(s), got)
	}
	_, ok := ParseShareType("Equal")
	assert.False(t, ok)
}
