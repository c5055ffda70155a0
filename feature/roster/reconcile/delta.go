package reconcile

import "roster-etl/feature/roster/models"

// Delta is the membership difference between the freshly fetched roster
// snapshot and the previously persisted active roster. Additions and
// Removals are disjoint by construction.
type Delta struct {
	// Additions are players present in the current snapshot but absent
	// from the active roster (call-ups).
	Additions []models.RosterRecord

	// Removals are players present in the active roster but absent from
	// the current snapshot (send-downs).
	Removals []models.RosterRecord
}

// Compute returns the identifier-set difference between the current and
// active snapshots. Only player IDs participate in the comparison;
// attribute changes (team, position, number) never produce a delta.
// Duplicate IDs within a snapshot count once.
func Compute(current, active []models.RosterRecord) Delta {
	currentIDs := make(map[int64]struct{}, len(current))
	for _, r := range current {
		currentIDs[r.PlayerID] = struct{}{}
	}
	activeIDs := make(map[int64]struct{}, len(active))
	for _, r := range active {
		activeIDs[r.PlayerID] = struct{}{}
	}

	var d Delta
	seen := make(map[int64]struct{})
	for _, r := range current {
		if _, ok := activeIDs[r.PlayerID]; ok {
			continue
		}
		if _, dup := seen[r.PlayerID]; dup {
			continue
		}
		seen[r.PlayerID] = struct{}{}
		d.Additions = append(d.Additions, r)
	}

	seen = make(map[int64]struct{})
	for _, r := range active {
		if _, ok := currentIDs[r.PlayerID]; ok {
			continue
		}
		if _, dup := seen[r.PlayerID]; dup {
			continue
		}
		seen[r.PlayerID] = struct{}{}
		d.Removals = append(d.Removals, r)
	}

	return d
}

// AdditionIDs returns the player ids of all call-ups, in snapshot order.
func (d Delta) AdditionIDs() []int64 {
	ids := make([]int64, 0, len(d.Additions))
	for _, r := range d.Additions {
		ids = append(ids, r.PlayerID)
	}
	return ids
}

// RemovalIDs returns the player ids of all send-downs.
func (d Delta) RemovalIDs() []int64 {
	ids := make([]int64, 0, len(d.Removals))
	for _, r := range d.Removals {
		ids = append(ids, r.PlayerID)
	}
	return ids
}

// Empty reports whether no membership change was detected.
func (d Delta) Empty() bool {
	return len(d.Additions) == 0 && len(d.Removals) == 0
}
