package session

import (
	"slices"
	"time"

	"github.com/google/uuid"
	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/osse101/FruitReels_Go/internal/domain"
)

// rollHistory is a bounded, expiring record of recent rolls.
// Records are stored by value and replaced on update, never mutated in place.
type rollHistory struct {
	lru *expirable.LRU[uuid.UUID, domain.RollRecord]
}

func newRollHistory(size int, ttl time.Duration) *rollHistory {
	return &rollHistory{
		lru: expirable.NewLRU[uuid.UUID, domain.RollRecord](size, nil, ttl),
	}
}

func (h *rollHistory) Put(rec domain.RollRecord) {
	h.lru.Add(rec.Roll.Result.ID, rec)
}

func (h *rollHistory) Get(id uuid.UUID) (domain.RollRecord, bool) {
	return h.lru.Get(id)
}

// Update applies fn to a copy of the record and stores it back. Evicted records are left alone.
func (h *rollHistory) Update(id uuid.UUID, fn func(*domain.RollRecord)) {
	rec, ok := h.lru.Peek(id)
	if !ok {
		return
	}
	fn(&rec)
	h.lru.Add(id, rec)
}

// Recent returns unexpired records, most recently started first
func (h *rollHistory) Recent() []domain.RollRecord {
	values := h.lru.Values()
	slices.SortStableFunc(values, func(a, b domain.RollRecord) int {
		return b.Roll.StartedAt.Compare(a.Roll.StartedAt)
	})
	return values
}
