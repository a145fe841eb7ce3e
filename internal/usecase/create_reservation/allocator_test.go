package create_reservation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/frizerio/salon-booking-service/internal/domain"
)

func workers(ids ...int64) []*domain.Worker {
	out := make([]*domain.Worker, 0, len(ids))
	for _, id := range ids {
		out = append(out, &domain.Worker{ID: id, Active: true})
	}
	return out
}

func TestAllocateWorker(t *testing.T) {
	tests := []struct {
		name     string
		workers  []*domain.Worker
		occupied []int64
		wantID   int64
		wantNil  bool
	}{
		{name: "first free worker", workers: workers(1, 2, 3), occupied: nil, wantID: 1},
		{name: "skip occupied", workers: workers(1, 2, 3), occupied: []int64{1}, wantID: 2},
		{name: "skip several occupied", workers: workers(1, 2, 3), occupied: []int64{1, 2}, wantID: 3},
		{name: "all occupied", workers: workers(1, 2, 3), occupied: []int64{1, 2, 3}, wantNil: true},
		{name: "no workers", workers: nil, occupied: nil, wantNil: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := allocateWorker(tt.workers, tt.occupied)
			if tt.wantNil {
				assert.Nil(t, got)
				return
			}
			require.NotNil(t, got)
			assert.Equal(t, tt.wantID, got.ID)
		})
	}
}

// Выбор не зависит от порядка, в котором репозиторий отдал работников
func TestAllocateWorker_Deterministic(t *testing.T) {
	unordered := workers(3, 1, 2)

	got := allocateWorker(unordered, nil)
	require.NotNil(t, got)
	assert.Equal(t, int64(1), got.ID)

	got = allocateWorker(unordered, []int64{1})
	require.NotNil(t, got)
	assert.Equal(t, int64(2), got.ID)
}

func TestAllocateWorker_DoesNotMutateInput(t *testing.T) {
	in := workers(3, 1, 2)
	allocateWorker(in, nil)

	assert.Equal(t, int64(3), in[0].ID)
	assert.Equal(t, int64(1), in[1].ID)
	assert.Equal(t, int64(2), in[2].ID)
}
