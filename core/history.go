package core

// Snapshot is one immutable history entry: a deep clone of the whole layer
// set plus the active layer and canvas dimensions. Entries are never
// aliased to the live buffers, so later edits cannot mutate the past.
type Snapshot struct {
	Layers        []*Layer
	ActiveLayerID string
	Width         int
	Height        int
}

// NewSnapshot deep-clones the current session state into an entry.
func NewSnapshot(layers []*Layer, activeLayerID string, width, height int) Snapshot {
	return Snapshot{
		Layers:        CloneLayers(layers),
		ActiveLayerID: activeLayerID,
		Width:         width,
		Height:        height,
	}
}

// HistoryLimitForSize is the size-adaptive retention policy. Every entry
// deep-clones the full layer set, so the retained count shrinks as the
// canvas grows, bounding worst-case history memory to roughly a constant
// multiple of one canvas regardless of its size.
func HistoryLimitForSize(width, height int) int {
	cells := width * height
	switch {
	case cells <= 100*100:
		return 200
	case cells <= 300*300:
		return 100
	case cells <= 1000*1000:
		return 50
	default:
		return 20
	}
}

// appendPast pushes an entry onto the past stack, dropping the oldest
// entries beyond limit. Entries lost to the cap are unrecoverable.
func appendPast(past []Snapshot, entry Snapshot, limit int) []Snapshot {
	past = append(past, entry)
	if limit > 0 && len(past) > limit {
		past = past[len(past)-limit:]
	}
	return past
}
