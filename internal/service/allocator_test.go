package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmynk/splitter/internal/allocation"
	"github.com/mmynk/splitter/internal/metrics"
	"github.com/mmynk/splitter/internal/service"
	mock_service "github.com/mmynk/splitter/internal/service/mocks"
	"github.com/mmynk/splitter/internal/storage"
)

var _ service.SnapshotSource = (*mock_service.MockSnapshotSource)(nil)

func dinnerSnapshot() *allocation.Snapshot {
	return &allocation.Snapshot{
		Items: []allocation.Item{{ID: "pizza", Subtotal: 20}, {ID: "salad", Subtotal: 10}},
		Assignments: []allocation.Assignment{
			{ItemID: "pizza", ParticipantID: "alice", Share: allocation.Equal{}},
			{ItemID: "salad", ParticipantID: "bob", Share: allocation.Equal{}},
		},
		Adjustments: []allocation.Adjustment{{Key: "tax", Amount: 3}},
	}
}

func TestAllocator_Allocate(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tests := []struct {
		name      string
		snapshot  *allocation.Snapshot
		loadErr   error
		want      allocation.Allocation
		wantErrIs error
	}{
		{
			name:     "computes from snapshot",
			snapshot: dinnerSnapshot(),
			want:     allocation.Allocation{"alice": 22, "bob": 11},
		},
		{
			name:     "empty receipt",
			snapshot: &allocation.Snapshot{},
			want:     allocation.Allocation{},
		},
		{
			name:      "missing receipt",
			loadErr:   storage.ErrNotFound,
			wantErrIs: storage.ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			source := mock_service.NewMockSnapshotSource(ctrl)
			source.EXPECT().LoadSnapshot(gomock.Any(), "r1").Return(tt.snapshot, tt.loadErr).Times(1)

			a := service.NewAllocator(source, time.Minute, nil)
			got, err := a.Allocate(context.Background(), "r1")
			if tt.wantErrIs != nil {
				assert.ErrorIs(t, err, tt.wantErrIs)
				return
			}
			require.NoError(t, err)
			totals := got.Totals()
			require.Len(t, totals, len(tt.want))
			for id, want := range tt.want {
				assert.InDelta(t, want, totals[id], 1e-9, id)
			}
		})
	}
}

func TestAllocator_CachesUntilInvalidated(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m := metrics.NewNop()
	source := mock_service.NewMockSnapshotSource(ctrl)
	a := service.NewAllocator(source, time.Minute, m)
	ctx := context.Background()

	first := dinnerSnapshot()
	second := dinnerSnapshot()
	second.Adjustments = nil

	gomock.InOrder(
		source.EXPECT().LoadSnapshot(gomock.Any(), "r1").Return(first, nil),
		source.EXPECT().LoadSnapshot(gomock.Any(), "r1").Return(second, nil),
	)

	b1, err := a.Allocate(ctx, "r1")
	require.NoError(t, err)
	b2, err := a.Allocate(ctx, "r1")
	require.NoError(t, err)
	assert.Same(t, b1, b2)

	a.Invalidate("r1")
	b3, err := a.Allocate(ctx, "r1")
	require.NoError(t, err)
	assert.InDelta(t, 20.0, b3.Totals()["alice"], 1e-9)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.Allocations.WithLabelValues(metrics.SourceCache)))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.Allocations.WithLabelValues(metrics.SourceComputed)))
}

func TestAllocator_InvalidateDuringLoadSkipsCache(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	source := mock_service.NewMockSnapshotSource(ctrl)
	a := service.NewAllocator(source, 0, nil)
	ctx := context.Background()

	source.EXPECT().LoadSnapshot(gomock.Any(), "r1").DoAndReturn(
		func(context.Context, string) (*allocation.Snapshot, error) {
			a.Invalidate("r1")
			return dinnerSnapshot(), nil
		})
	source.EXPECT().LoadSnapshot(gomock.Any(), "r1").Return(&allocation.Snapshot{}, nil)

	_, err := a.Allocate(ctx, "r1")
	require.NoError(t, err)

	b, err := a.Allocate(ctx, "r1")
	require.NoError(t, err)
	assert.Empty(t, b.People)
}

func TestAllocator_ErrorsAreNotCached(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	source := mock_service.NewMockSnapshotSource(ctrl)
	a := service.NewAllocator(source, time.Minute, nil)

	boom := errors.New("database is locked")
	gomock.InOrder(
		source.EXPECT().LoadSnapshot(gomock.Any(), "r1").Return(nil, boom),
		source.EXPECT().LoadSnapshot(gomock.Any(), "r1").Return(dinnerSnapshot(), nil),
	)

	_, err := a.Allocate(context.Background(), "r1")
	assert.ErrorIs(t, err, boom)

	b, err := a.Allocate(context.Background(), "r1")
	require.NoError(t, err)
	assert.Len(t, b.People, 2)
}
