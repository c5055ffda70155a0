package reconcile

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"roster-etl/feature/roster/models"
)

func roster(ids ...int64) []models.RosterRecord {
	rs := make([]models.RosterRecord, 0, len(ids))
	for _, id := range ids {
		rs = append(rs, models.RosterRecord{PlayerID: id})
	}
	return rs
}

func TestCompute_CallUpsAndSendDowns(t *testing.T) {
	// Active {1,2,3}, Current {2,3,4}: 4 is a call-up, 1 a send-down.
	d := Compute(roster(2, 3, 4), roster(1, 2, 3))

	assert.Equal(t, []int64{4}, d.AdditionIDs())
	assert.Equal(t, []int64{1}, d.RemovalIDs())
	assert.False(t, d.Empty())
}

func TestCompute_NoChange(t *testing.T) {
	d := Compute(roster(1, 2, 3), roster(1, 2, 3))

	assert.Empty(t, d.Additions)
	assert.Empty(t, d.Removals)
	assert.True(t, d.Empty())
}

func TestCompute_IdentifierOnlyDiff(t *testing.T) {
	// Same IDs with different attributes must produce an empty delta.
	current := []models.RosterRecord{
		{PlayerID: 1, TeamAbbrev: "BOS", Position: "C", SweaterNumber: 9},
		{PlayerID: 2, TeamAbbrev: "NYR", Position: "D", SweaterNumber: 4},
	}
	active := []models.RosterRecord{
		{PlayerID: 1, TeamAbbrev: "MTL", Position: "RW", SweaterNumber: 91},
		{PlayerID: 2, TeamAbbrev: "NYR", Position: "D", SweaterNumber: 44},
	}

	d := Compute(current, active)
	assert.True(t, d.Empty())
}

func TestCompute_EmptySnapshots(t *testing.T) {
	t.Run("Both Empty", func(t *testing.T) {
		assert.True(t, Compute(nil, nil).Empty())
	})

	t.Run("Empty Active", func(t *testing.T) {
		d := Compute(roster(1, 2), nil)
		assert.Equal(t, []int64{1, 2}, d.AdditionIDs())
		assert.Empty(t, d.Removals)
	})

	t.Run("Empty Current", func(t *testing.T) {
		d := Compute(nil, roster(1, 2))
		assert.Empty(t, d.Additions)
		assert.Equal(t, []int64{1, 2}, d.RemovalIDs())
	})
}

func TestCompute_SetsAreDisjoint(t *testing.T) {
	d := Compute(roster(1, 2, 3, 4, 5), roster(4, 5, 6, 7))

	additions := make(map[int64]struct{})
	for _, id := range d.AdditionIDs() {
		additions[id] = struct{}{}
	}
	for _, id := range d.RemovalIDs() {
		_, overlap := additions[id]
		require.False(t, overlap, "player %d in both additions and removals", id)
	}

	// Additions never intersect the active set, removals never the current set.
	for _, id := range d.AdditionIDs() {
		assert.NotContains(t, []int64{4, 5, 6, 7}, id)
	}
	for _, id := range d.RemovalIDs() {
		assert.NotContains(t, []int64{1, 2, 3, 4, 5}, id)
	}
}

func TestCompute_DuplicateIDsCountOnce(t *testing.T) {
	// A player listed twice (e.g. feed glitch) is still a single call-up.
	d := Compute(roster(1, 1, 2), roster(2, 2))

	assert.Equal(t, []int64{1}, d.AdditionIDs())
	assert.Empty(t, d.Removals)
}
