package myqueue

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFakeQueue(t *testing.T) {
	c := context.TODO()
	q := NewFake()

	err := q.Enqueue(c, Task{UID: "1", WebhookURLPath: "/pubsub/orders/1"})
	assert.NoError(t, err)

	// same uid is de-duplicated, like named cloud tasks
	err = q.Enqueue(c, Task{UID: "1", WebhookURLPath: "/pubsub/orders/1"})
	assert.NoError(t, err)

	err = q.Enqueue(c, Task{UID: "2", WebhookURLPath: "/pubsub/orders/2"})
	assert.NoError(t, err)

	tasks := q.Tasks()
	assert.Len(t, tasks, 2)
	assert.Equal(t, "/pubsub/orders/2", tasks[1].WebhookURLPath)
}
