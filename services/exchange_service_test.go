package services

import (
	"testing"

	"github.com/Sunilkumar09281/mutual-learn-space/models"
	"github.com/google/uuid"
)

func acceptFixture() (models.ExchangeRequest, models.Course) {
	courseID := uuid.New()
	sender := uuid.New()
	recipient := uuid.New()

	course := models.Course{
		ID:          courseID,
		Title:       "Intro to Go",
		Description: "Learn Go from scratch",
		Duration:    "6 weeks",
		Level:       models.LevelBeginner,
		Rating:      4.5,
		WantedSkill: "Spanish",
		Teacher:     "Alice",
		CreatedByID: recipient,
	}
	request := models.ExchangeRequest{
		ID:            uuid.New(),
		CourseID:      courseID,
		CourseTitle:   course.Title,
		SenderID:      sender,
		SenderName:    "Bob",
		RecipientID:   recipient,
		RecipientName: "Alice",
		Status:        models.RequestPending,
	}
	return request, course
}

func TestBuildAcceptFanout_TwoEnrollmentsOneRoom(t *testing.T) {
	request, course := acceptFixture()

	enrollments, room := BuildAcceptFanout(request, course)

	// Sender-first room key convention.
	wantRoom := course.ID.String() + "_" + request.SenderID.String() + "_" + request.RecipientID.String()
	if room.ID != wantRoom {
		t.Fatalf("room key = %q, want %q", room.ID, wantRoom)
	}

	recipientSide, senderSide := enrollments[0], enrollments[1]
	if recipientSide.UserID != request.RecipientID || senderSide.UserID != request.SenderID {
		t.Fatal("enrollments not assigned to the two participants")
	}
	if recipientSide.PartnerID != request.SenderID || recipientSide.PartnerName != "Bob" {
		t.Fatalf("recipient enrollment has wrong partner: %+v", recipientSide)
	}
	if senderSide.PartnerID != request.RecipientID || senderSide.PartnerName != "Alice" {
		t.Fatalf("sender enrollment has wrong partner: %+v", senderSide)
	}

	for _, e := range enrollments {
		if e.ChatRoomID != room.ID {
			t.Fatalf("enrollment %s points at room %q, want %q", e.ID, e.ChatRoomID, room.ID)
		}
		if e.Course.Title != course.Title || e.Course.Rating != course.Rating {
			t.Fatalf("enrollment %s carries a wrong course snapshot: %+v", e.ID, e.Course)
		}
	}

	if len(room.ParticipantIDs) != 2 {
		t.Fatalf("room should list both participants, got %v", room.ParticipantIDs)
	}
	if room.ParticipantNames[request.SenderID.String()] != "Bob" ||
		room.ParticipantNames[request.RecipientID.String()] != "Alice" {
		t.Fatalf("room name lookup wrong: %v", room.ParticipantNames)
	}
}

func TestBuildAcceptFanout_DeterministicKeys(t *testing.T) {
	request, course := acceptFixture()

	first, firstRoom := BuildAcceptFanout(request, course)
	second, secondRoom := BuildAcceptFanout(request, course)

	if firstRoom.ID != secondRoom.ID {
		t.Fatal("room key changed between runs")
	}
	for i := range first {
		if first[i].ID != second[i].ID {
			t.Fatal("enrollment keys changed between runs")
		}
	}
}

func TestBuildAcceptFanout_SnapshotIsFrozenCopy(t *testing.T) {
	request, course := acceptFixture()
	enrollments, _ := BuildAcceptFanout(request, course)

	// A later course edit must not show up in the snapshot.
	course.Title = "Renamed Course"
	if enrollments[0].Course.Title != "Intro to Go" {
		t.Fatal("enrollment snapshot tracks the live course")
	}
}
