package handlers

import (
	"errors"
	"testing"

	ws "github.com/Sunilkumar09281/mutual-learn-space/websocket"
	"github.com/google/uuid"
)

type recordingSink struct {
	frames []interface{}
}

func (r *recordingSink) WriteJSON(v interface{}) error {
	r.frames = append(r.frames, v)
	return nil
}

func TestPublishEvent_SkipsFailedBuilds(t *testing.T) {
	topic := ws.TopicLearning(uuid.New())
	sink := &recordingSink{}
	client := &ws.Client{UserID: uuid.New(), Conn: sink}
	ws.Live.Register(client)
	defer ws.Live.Unregister(client)
	ws.Live.Subscribe(client, topic)

	publishEvent(topic, nil, errors.New("connection refused"))
	if len(sink.frames) != 0 {
		t.Fatalf("failed build reached subscribers: %d frames", len(sink.frames))
	}

	publishEvent(topic, []string{"snapshot"}, nil)
	if len(sink.frames) != 1 {
		t.Fatalf("healthy build should reach subscribers, got %d frames", len(sink.frames))
	}
}
