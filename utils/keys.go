package utils

import "fmt"

// ChatRoomKey derives the shared room identifier for an accepted exchange.
// The order is fixed (course, sender, recipient) so both participants end up
// in the same room no matter who drives the accept.
func ChatRoomKey(courseID, senderID, recipientID string) string {
	return fmt.Sprintf("%s_%s_%s", courseID, senderID, recipientID)
}

// EnrollmentKey keys one user's learning record for a course. Writing the
// same pair twice lands on the same row instead of duplicating it.
func EnrollmentKey(userID, courseID string) string {
	return fmt.Sprintf("%s_%s", userID, courseID)
}
