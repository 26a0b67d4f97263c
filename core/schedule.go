// Copyright (c) 2026, The Giui Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package core

import (
	"container/heap"
	"time"
)

// scheduledEvent is one pending timed delivery.
type scheduledEvent struct {
	at     time.Time
	seq    uint64
	target Id
	event  any
	index  int
}

// scheduleQueue orders pending deliveries by due time, with the
// registration order breaking ties.
type scheduleQueue []*scheduledEvent

func (q scheduleQueue) Len() int { return len(q) }

func (q scheduleQueue) Less(i, j int) bool {
	if !q[i].at.Equal(q[j].at) {
		return q[i].at.Before(q[j].at)
	}
	return q[i].seq < q[j].seq
}

func (q scheduleQueue) Swap(i, j int) {
	q[i], q[j] = q[j], q[i]
	q[i].index = i
	q[j].index = j
}

func (q *scheduleQueue) Push(x any) {
	e := x.(*scheduledEvent)
	e.index = len(*q)
	*q = append(*q, e)
}

func (q *scheduleQueue) Pop() any {
	old := *q
	n := len(old)
	e := old[n-1]
	old[n-1] = nil
	e.index = -1
	*q = old[:n-1]
	return e
}

// ScheduleEvent schedules event for delivery to the control at the
// given instant, as if by [Gui.SendEventTo]. It returns a handle for
// [Gui.CancelScheduledEvent].
func (g *Gui) ScheduleEvent(id Id, event any, at time.Time) uint64 {
	g.scheduleSeq++
	e := &scheduledEvent{at: at, seq: g.scheduleSeq, target: id, event: event}
	heap.Push(&g.schedule, e)
	g.scheduled[e.seq] = e
	return e.seq
}

// CancelScheduledEvent drops a pending scheduled delivery. Handles
// already delivered or cancelled are ignored.
func (g *Gui) CancelScheduledEvent(handle uint64) {
	e, ok := g.scheduled[handle]
	if !ok {
		return
	}
	delete(g.scheduled, handle)
	heap.Remove(&g.schedule, e.index)
}

// HandleScheduledEvents delivers every scheduled event now due, in
// due order, and reports when the next one comes due, if any. The
// embedder calls it from its timer loop.
func (g *Gui) HandleScheduledEvents() (time.Time, bool) {
	now := g.clock()
	for len(g.schedule) > 0 && !g.schedule[0].at.After(now) {
		e := heap.Pop(&g.schedule).(*scheduledEvent)
		delete(g.scheduled, e.seq)
		g.SendEventTo(e.target, e.event)
	}
	if len(g.schedule) == 0 {
		return time.Time{}, false
	}
	return g.schedule[0].at, true
}
