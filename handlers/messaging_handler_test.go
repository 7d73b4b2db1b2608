package handlers

import (
	"testing"

	"github.com/Sunilkumar09281/mutual-learn-space/models"
	ws "github.com/Sunilkumar09281/mutual-learn-space/websocket"
	"github.com/google/uuid"
)

func TestResolveTopic_PinsPerUserStreams(t *testing.T) {
	me := uuid.New()

	got, err := resolveTopic(me, "requests:received")
	if err != nil {
		t.Fatalf("resolveTopic failed: %v", err)
	}
	if got != ws.TopicRequestsReceived(me) {
		t.Fatalf("received topic = %q, want %q", got, ws.TopicRequestsReceived(me))
	}

	got, err = resolveTopic(me, "learning")
	if err != nil {
		t.Fatalf("resolveTopic failed: %v", err)
	}
	if got != ws.TopicLearning(me) {
		t.Fatalf("learning topic = %q, want %q", got, ws.TopicLearning(me))
	}
}

func TestResolveTopic_RejectsUnknown(t *testing.T) {
	if _, err := resolveTopic(uuid.New(), "admin:everything"); err == nil {
		t.Fatal("unknown topic should be rejected")
	}
}

func TestIsParticipant(t *testing.T) {
	a := uuid.New()
	b := uuid.New()
	stranger := uuid.New()
	room := &models.ChatRoom{
		ID:             "c1_" + a.String() + "_" + b.String(),
		ParticipantIDs: []string{a.String(), b.String()},
	}

	if !isParticipant(room, a) || !isParticipant(room, b) {
		t.Fatal("both participants should pass the membership check")
	}
	if isParticipant(room, stranger) {
		t.Fatal("non-participant passed the membership check")
	}
}
