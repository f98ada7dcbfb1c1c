package mypubsub

import (
	"context"
	"fmt"
	"os"
	"sync"
)

// FakePubSub remembers what was published per topic.
type FakePubSub struct {
	sync.Mutex
	topics    map[string][]string
	listeners map[string][]string
}

func init() {
	if os.Getenv("GOOGLE_CLOUD_PROJECT") == "" {
		New = func(c context.Context) (PubSub, func(), error) {
			return NewFake(), func() {}, nil
		}
	}
}

func NewFake() *FakePubSub {
	return &FakePubSub{
		topics:    map[string][]string{},
		listeners: map[string][]string{},
	}
}

func (ps *FakePubSub) Subscribe(c context.Context, topic string, urlToPostTo string) error {
	ps.Lock()
	defer ps.Unlock()

	if _, exists := ps.topics[topic]; !exists {
		return fmt.Errorf("topic %s does not exist", topic)
	}
	ps.listeners[topic] = append(ps.listeners[topic], urlToPostTo)
	return nil
}

func (ps *FakePubSub) CreateTopic(c context.Context, topic string) error {
	ps.Lock()
	defer ps.Unlock()

	if _, exists := ps.topics[topic]; !exists {
		ps.topics[topic] = []string{}
	}
	return nil
}

func (ps *FakePubSub) Publish(c context.Context, topic string, data string) error {
	ps.Lock()
	defer ps.Unlock()

	if _, exists := ps.topics[topic]; !exists {
		return fmt.Errorf("topic %s does not exist", topic)
	}
	ps.topics[topic] = append(ps.topics[topic], data)
	return nil
}

func (ps *FakePubSub) Published(topic string) []string {
	ps.Lock()
	defer ps.Unlock()

	return append([]string{}, ps.topics[topic]...)
}
