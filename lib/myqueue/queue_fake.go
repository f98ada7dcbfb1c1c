package myqueue

import (
	"context"
	"os"
	"sync"
)

// FakeTaskQueue keeps tasks in memory instead of dispatching them.
type FakeTaskQueue struct {
	sync.Mutex
	tasks []Task
}

func init() {
	if os.Getenv("GOOGLE_CLOUD_PROJECT") == "" {
		New = func(c context.Context) (TaskQueuer, func(), error) {
			return NewFake(), func() {}, nil
		}
	}
}

func NewFake() *FakeTaskQueue {
	return &FakeTaskQueue{
		tasks: []Task{},
	}
}

func (q *FakeTaskQueue) Enqueue(c context.Context, task Task) error {
	q.Lock()
	defer q.Unlock()

	for _, t := range q.tasks {
		if t.UID == task.UID {
			return nil
		}
	}
	q.tasks = append(q.tasks, task)
	return nil
}

func (q *FakeTaskQueue) Tasks() []Task {
	q.Lock()
	defer q.Unlock()

	return append([]Task{}, q.tasks...)
}
