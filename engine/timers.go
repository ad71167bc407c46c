package engine

import (
	"sort"
	"time"
)

// TimerKind identifies the deferred work a timer triggers
type TimerKind uint8

const (
	// TimerSeedSpawn places one of the initial collectibles
	TimerSeedSpawn TimerKind = iota
)

// Timer is deferred work evaluated against tick timestamps
type Timer struct {
	ID   uint64
	At   time.Duration
	Kind TimerKind
}

// TimerQueue holds pending delayed work; fired cooperatively from Update
type TimerQueue struct {
	timers []Timer
	nextID uint64
}

// Schedule adds a timer firing at or after at
func (q *TimerQueue) Schedule(at time.Duration, kind TimerKind) uint64 {
	q.nextID++
	q.timers = append(q.timers, Timer{ID: q.nextID, At: at, Kind: kind})
	return q.nextID
}

// Cancel removes a pending timer; returns false for fired or unknown ids
func (q *TimerQueue) Cancel(id uint64) bool {
	for i := range q.timers {
		if q.timers[i].ID == id {
			q.timers = append(q.timers[:i], q.timers[i+1:]...)
			return true
		}
	}
	return false
}

// Due removes and returns timers with At <= now, earliest first
func (q *TimerQueue) Due(now time.Duration) []Timer {
	var due []Timer
	kept := q.timers[:0]
	for _, t := range q.timers {
		if t.At <= now {
			due = append(due, t)
		} else {
			kept = append(kept, t)
		}
	}
	q.timers = kept
	sort.Slice(due, func(i, j int) bool {
		if due[i].At == due[j].At {
			return due[i].ID < due[j].ID
		}
		return due[i].At < due[j].At
	})
	return due
}

// Clear drops all pending timers
func (q *TimerQueue) Clear() {
	q.timers = nil
}

// Len returns the number of pending timers
func (q *TimerQueue) Len() int {
	return len(q.timers)
}
