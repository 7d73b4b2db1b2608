package services

import (
	"github.com/Sunilkumar09281/mutual-learn-space/models"
	"github.com/Sunilkumar09281/mutual-learn-space/utils"
)

// BuildAcceptFanout derives every record the accept flow writes: the two
// mirrored enrollments (one per participant, each pointing at the other) and
// the shared chat room. The caller persists them in a single transaction.
func BuildAcceptFanout(request models.ExchangeRequest, course models.Course) ([2]models.Enrollment, models.ChatRoom) {
	roomID := utils.ChatRoomKey(
		course.ID.String(),
		request.SenderID.String(),
		request.RecipientID.String(),
	)

	snapshot := models.CourseSnapshot{
		ID:          course.ID,
		Title:       course.Title,
		Description: course.Description,
		Duration:    course.Duration,
		Level:       course.Level,
		Rating:      course.Rating,
		WantedSkill: course.WantedSkill,
		Teacher:     course.Teacher,
	}

	enrollments := [2]models.Enrollment{
		{
			ID:          utils.EnrollmentKey(request.RecipientID.String(), course.ID.String()),
			UserID:      request.RecipientID,
			CourseID:    course.ID,
			Course:      snapshot,
			PartnerID:   request.SenderID,
			PartnerName: request.SenderName,
			ChatRoomID:  roomID,
		},
		{
			ID:          utils.EnrollmentKey(request.SenderID.String(), course.ID.String()),
			UserID:      request.SenderID,
			CourseID:    course.ID,
			Course:      snapshot,
			PartnerID:   request.RecipientID,
			PartnerName: request.RecipientName,
			ChatRoomID:  roomID,
		},
	}

	room := models.ChatRoom{
		ID:          roomID,
		CourseID:    course.ID,
		CourseTitle: course.Title,
		ParticipantIDs: []string{
			request.SenderID.String(),
			request.RecipientID.String(),
		},
		ParticipantNames: map[string]string{
			request.SenderID.String():    request.SenderName,
			request.RecipientID.String(): request.RecipientName,
		},
	}

	return enrollments, room
}
