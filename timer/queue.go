package timer

import (
	"sort"
	"time"
)

// Loop schedules a callback to run once after a delay on the caller's control
// loop. The returned cancel func may be called any number of times.
type Loop interface {
	After(d time.Duration, fn func() error) (cancel func())
}

type task struct {
	due       time.Time
	seq       uint64
	fn        func() error
	cancelled bool
}

// TaskQueue is a Loop that never runs anything on its own: the host loop calls
// RunDue on every iteration and due callbacks run there, on the host's thread.
type TaskQueue struct {
	clock Clock
	tasks []*task
	seq   uint64
}

func NewTaskQueue(clock Clock) *TaskQueue {
	return &TaskQueue{clock: clock}
}

func (q *TaskQueue) After(d time.Duration, fn func() error) func() {
	q.seq++
	t := &task{
		due: q.clock.Now().Add(d),
		seq: q.seq,
		fn:  fn,
	}
	q.tasks = append(q.tasks, t)

	return func() {
		t.cancelled = true
	}
}

// RunDue runs every pending task whose deadline has passed, earliest first.
// Tasks scheduled by a running callback wait for the next call. The first
// callback error stops the pass and is returned; tasks not yet run stay queued.
func (q *TaskQueue) RunDue() error {
	now := q.clock.Now()

	var due, pending []*task
	for _, t := range q.tasks {
		switch {
		case t.cancelled:
		case !t.due.After(now):
			due = append(due, t)
		default:
			pending = append(pending, t)
		}
	}
	q.tasks = pending

	sort.Slice(due, func(i, j int) bool {
		if due[i].due.Equal(due[j].due) {
			return due[i].seq < due[j].seq
		}
		return due[i].due.Before(due[j].due)
	})

	for i, t := range due {
		if t.cancelled {
			continue
		}
		t.cancelled = true
		if err := t.fn(); err != nil {
			q.tasks = append(q.tasks, due[i+1:]...)
			return err
		}
	}

	return nil
}

// Len returns the number of tasks still waiting to run.
func (q *TaskQueue) Len() int {
	n := 0
	for _, t := range q.tasks {
		if !t.cancelled {
			n++
		}
	}
	return n
}
