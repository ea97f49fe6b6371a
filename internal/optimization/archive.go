package optimization

import (
	"sync"
)

// ArchiveEntry is one completed run as stored for replay. Entries are deep
// copies, immutable once recorded and fully decoupled from the live run.
type ArchiveEntry struct {
	ID           int              `json:"id"`
	History      [][]Position     `json:"history"`
	Stats        []IterationStats `json:"stats"`
	Color        string           `json:"color"`
	FunctionName string           `json:"function"`
	Summary      Summary          `json:"summary"`
}

// Archive stores completed runs keyed by a sequential 1-based id. Ids are
// never reused. The zero value is not usable; call NewArchive.
type Archive struct {
	mu      sync.RWMutex
	nextID  int
	entries map[int]ArchiveEntry
}

// NewArchive returns an empty archive.
func NewArchive() *Archive {
	return &Archive{nextID: 1, entries: make(map[int]ArchiveEntry)}
}

// Record copies a finished run into the archive and returns the assigned id.
// Runs still Idle or Running are rejected.
func (a *Archive) Record(run *Run, color string) (int, error) {
	state := run.State()
	if state != StateCompleted && state != StateStopped {
		return 0, NewErrorf(KindInvalidState, "record run in state %q", state).WithOperation("Record")
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	id := a.nextID
	a.nextID++

	a.entries[id] = ArchiveEntry{
		ID:           id,
		History:      run.History(),
		Stats:        run.Stats(),
		Color:        color,
		FunctionName: run.Summary().FunctionName,
		Summary:      run.Summary(),
	}
	return id, nil
}

// Put inserts an already materialized entry, assigning it the next id. Used
// when rehydrating the archive from durable storage.
func (a *Archive) Put(entry ArchiveEntry) int {
	a.mu.Lock()
	defer a.mu.Unlock()

	id := a.nextID
	a.nextID++
	entry.ID = id
	a.entries[id] = entry
	return id
}

// Get returns the entry with the given id, or a not-found error.
func (a *Archive) Get(id int) (ArchiveEntry, error) {
	a.mu.RLock()
	defer a.mu.RUnlock()

	entry, ok := a.entries[id]
	if !ok {
		return ArchiveEntry{}, NewErrorf(KindNotFound, "no archived run with id %d", id).WithOperation("Get")
	}
	return copyEntry(entry), nil
}

// List returns every entry ordered by id.
func (a *Archive) List() []ArchiveEntry {
	a.mu.RLock()
	defer a.mu.RUnlock()

	out := make([]ArchiveEntry, 0, len(a.entries))
	for id := 1; id < a.nextID; id++ {
		if entry, ok := a.entries[id]; ok {
			out = append(out, copyEntry(entry))
		}
	}
	return out
}

// Len returns the number of archived runs.
func (a *Archive) Len() int {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return len(a.entries)
}

// Replay returns a cursor over the stored history of the given run. Playback
// is a pure read of archived positions; it never re-invokes the optimizer
// and never touches any live run's best.
func (a *Archive) Replay(id int) (*Replay, error) {
	entry, err := a.Get(id)
	if err != nil {
		return nil, err
	}
	return &Replay{entry: entry}, nil
}

// Replay walks an archived history one snapshot at a time.
type Replay struct {
	entry ArchiveEntry
	pos   int
}

// Next returns the next snapshot, paired with its iteration statistics, and
// false once the history is exhausted.
func (rp *Replay) Next() (StepSnapshot, bool) {
	if rp.pos >= len(rp.entry.History) {
		return StepSnapshot{}, false
	}
	positions := rp.entry.History[rp.pos]
	st := rp.entry.Stats[rp.pos]
	snap := StepSnapshot{
		Iteration:   st.Iteration,
		Positions:   positions,
		BestFitness: st.BestFitness,
	}
	rp.pos++
	return snap, true
}

// Rewind resets the cursor to iteration 0.
func (rp *Replay) Rewind() { rp.pos = 0 }

// Len returns the number of snapshots in the replay.
func (rp *Replay) Len() int { return len(rp.entry.History) }

func copyEntry(e ArchiveEntry) ArchiveEntry {
	history := make([][]Position, len(e.History))
	for i, snap := range e.History {
		history[i] = make([]Position, len(snap))
		copy(history[i], snap)
	}
	stats := make([]IterationStats, len(e.Stats))
	copy(stats, e.Stats)

	e.History = history
	e.Stats = stats
	return e
}
