package websocket

import (
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
)

type fakeSink struct {
	events []Event
	fail   bool
}

func (f *fakeSink) WriteJSON(v interface{}) error {
	if f.fail {
		return errors.New("write fail")
	}
	f.events = append(f.events, v.(Event))
	return nil
}

func TestHub_SubscribeAndPublish(t *testing.T) {
	hub := NewHub()

	sinkA := &fakeSink{}
	sinkB := &fakeSink{}
	a := &Client{UserID: uuid.New(), Conn: sinkA}
	b := &Client{UserID: uuid.New(), Conn: sinkB}
	hub.Register(a)
	hub.Register(b)

	hub.Subscribe(a, TopicCourses)
	hub.Subscribe(b, TopicCourses)
	hub.Subscribe(a, TopicChat("room1"))

	hub.Publish(TopicCourses, []string{"go", "spanish"})

	if len(sinkA.events) != 1 || len(sinkB.events) != 1 {
		t.Fatalf("expected one event each, got %d and %d", len(sinkA.events), len(sinkB.events))
	}
	if sinkA.events[0].Topic != TopicCourses {
		t.Fatalf("wrong topic: %s", sinkA.events[0].Topic)
	}

	hub.Publish(TopicChat("room1"), "hello")
	if len(sinkA.events) != 2 {
		t.Fatalf("client A should receive chat snapshot, got %d events", len(sinkA.events))
	}
	if len(sinkB.events) != 1 {
		t.Fatal("client B received snapshot for a topic it never subscribed to")
	}
}

func TestHub_UnsubscribeStopsDelivery(t *testing.T) {
	hub := NewHub()
	sink := &fakeSink{}
	c := &Client{UserID: uuid.New(), Conn: sink}
	hub.Register(c)
	hub.Subscribe(c, TopicCourses)

	hub.Unsubscribe(c, TopicCourses)
	hub.Publish(TopicCourses, nil)

	if len(sink.events) != 0 {
		t.Fatal("unsubscribed client still received events")
	}
}

func TestHub_UnregisterReleasesAllTopics(t *testing.T) {
	hub := NewHub()
	sink := &fakeSink{}
	c := &Client{UserID: uuid.New(), Conn: sink}
	hub.Register(c)
	hub.Subscribe(c, TopicCourses)
	hub.Subscribe(c, TopicChat("room1"))

	hub.Unregister(c)

	if hub.SubscriberCount(TopicCourses) != 0 || hub.SubscriberCount(TopicChat("room1")) != 0 {
		t.Fatal("unregister left dangling subscriptions")
	}
}

func TestHub_BrokenClientDoesNotAffectOthers(t *testing.T) {
	hub := NewHub()
	broken := &fakeSink{fail: true}
	healthy := &fakeSink{}
	bc := &Client{UserID: uuid.New(), Conn: broken}
	hc := &Client{UserID: uuid.New(), Conn: healthy}
	hub.Register(bc)
	hub.Register(hc)
	hub.Subscribe(bc, TopicCourses)
	hub.Subscribe(hc, TopicCourses)

	hub.Publish(TopicCourses, "snapshot")

	if len(healthy.events) != 1 {
		t.Fatal("healthy client missed the snapshot")
	}
	if hub.SubscriberCount(TopicCourses) != 1 {
		t.Fatalf("broken client should be evicted, count = %d", hub.SubscriberCount(TopicCourses))
	}
}

// countingSink records whether WriteJSON ever ran twice at the same time.
// The underlying websocket connection forbids concurrent writers.
type countingSink struct {
	inFlight int32
	overlaps int32
}

func (s *countingSink) WriteJSON(v interface{}) error {
	if atomic.AddInt32(&s.inFlight, 1) > 1 {
		atomic.AddInt32(&s.overlaps, 1)
	}
	time.Sleep(time.Millisecond)
	atomic.AddInt32(&s.inFlight, -1)
	return nil
}

func TestHub_PublishSerializesWritesPerClient(t *testing.T) {
	hub := NewHub()
	sink := &countingSink{}
	c := &Client{UserID: uuid.New(), Conn: sink}
	hub.Register(c)
	hub.Subscribe(c, TopicCourses)
	hub.Subscribe(c, TopicChat("room1"))

	var wg sync.WaitGroup
	for i := 0; i < 40; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			hub.Publish(TopicCourses, "catalog")
		}()
		go func() {
			defer wg.Done()
			hub.Publish(TopicChat("room1"), "hello")
		}()
	}
	wg.Wait()

	if n := atomic.LoadInt32(&sink.overlaps); n != 0 {
		t.Fatalf("connection written concurrently %d times", n)
	}
}

func TestHub_SubscribeBeforeRegisterIsIgnored(t *testing.T) {
	hub := NewHub()
	c := &Client{UserID: uuid.New(), Conn: &fakeSink{}}

	hub.Subscribe(c, TopicCourses)

	if hub.SubscriberCount(TopicCourses) != 0 {
		t.Fatal("unregistered client was subscribed")
	}
}
