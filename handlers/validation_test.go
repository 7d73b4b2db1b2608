package handlers

import "testing"

func TestUpdateProfileRequest_Validation(t *testing.T) {
	valid := UpdateProfileRequest{
		FullName: "Ada Lovelace",
		Email:    "ada@example.com",
	}
	if err := validate.Struct(valid); err != nil {
		t.Fatalf("valid profile draft rejected: %v", err)
	}

	noName := valid
	noName.FullName = ""
	if err := validate.Struct(noName); err == nil {
		t.Fatal("empty display name should fail validation")
	}

	badEmail := valid
	badEmail.Email = "not-an-email"
	if err := validate.Struct(badEmail); err == nil {
		t.Fatal("malformed email should fail validation")
	}
}

func TestCreateCourseRequest_Validation(t *testing.T) {
	valid := CreateCourseRequest{
		Title:       "Intro to Go",
		Description: "Learn Go from scratch",
		Level:       "Beginner",
		Rating:      4.5,
		WantedSkill: "Spanish",
	}
	if err := validate.Struct(valid); err != nil {
		t.Fatalf("valid course rejected: %v", err)
	}

	badLevel := valid
	badLevel.Level = "Expert"
	if err := validate.Struct(badLevel); err == nil {
		t.Fatal("level outside the enum should fail validation")
	}

	badRating := valid
	badRating.Rating = 6
	if err := validate.Struct(badRating); err == nil {
		t.Fatal("rating above 5 should fail validation")
	}

	// Unspecified level is allowed.
	noLevel := valid
	noLevel.Level = ""
	if err := validate.Struct(noLevel); err != nil {
		t.Fatalf("unspecified level should be accepted: %v", err)
	}
}

func TestCreateExchangeRequest_Validation(t *testing.T) {
	valid := CreateExchangeRequest{CourseID: "a6e9b2f0-53a1-4a3f-9a50-1a2b3c4d5e6f"}
	if err := validate.Struct(valid); err != nil {
		t.Fatalf("valid request rejected: %v", err)
	}

	if err := validate.Struct(CreateExchangeRequest{CourseID: "not-a-uuid"}); err == nil {
		t.Fatal("non-uuid course id should fail validation")
	}
}
