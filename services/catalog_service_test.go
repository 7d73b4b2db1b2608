package services

import (
	"math"
	"reflect"
	"testing"

	"github.com/Sunilkumar09281/mutual-learn-space/models"
)

func TestNormalizeCourse_Defaults(t *testing.T) {
	got := NormalizeCourse(models.Course{})
	if got.Title != PlaceholderTitle {
		t.Fatalf("missing title: got %q, want %q", got.Title, PlaceholderTitle)
	}
	if got.Teacher != PlaceholderTeacher {
		t.Fatalf("missing teacher: got %q, want %q", got.Teacher, PlaceholderTeacher)
	}
	if got.Rating != 0 {
		t.Fatalf("missing rating should default to 0, got %v", got.Rating)
	}
}

func TestNormalizeCourse_Rating(t *testing.T) {
	cases := []struct {
		in, want float64
	}{
		{math.NaN(), 0},
		{-1, 0},
		{7.5, 5},
		{4.5, 4.5},
	}
	for _, tc := range cases {
		got := NormalizeCourse(models.Course{Title: "t", Teacher: "a", Rating: tc.in})
		if got.Rating != tc.want {
			t.Fatalf("NormalizeCourse rating %v = %v, want %v", tc.in, got.Rating, tc.want)
		}
	}
}

func TestNormalizeCourse_KeepsValidFields(t *testing.T) {
	in := models.Course{Title: "Intro to Go", Teacher: "Alice", Rating: 4.2, WantedSkill: "Spanish"}
	got := NormalizeCourse(in)
	if got.Title != in.Title || got.Teacher != in.Teacher || got.Rating != in.Rating {
		t.Fatalf("valid fields changed: %+v", got)
	}
}

func courseFixture() []models.Course {
	return []models.Course{
		{Title: "Intro to Go", Teacher: "Alice", WantedSkill: "Spanish"},
		{Title: "Watercolor Basics", Teacher: "Bob", WantedSkill: "Go"},
		{Title: "Advanced Chess", Teacher: "Carol", WantedSkill: "French"},
	}
}

func TestFilterCourses_MatchesAllThreeFields(t *testing.T) {
	courses := courseFixture()

	byTitle := FilterCourses(courses, "chess")
	if len(byTitle) != 1 || byTitle[0].Title != "Advanced Chess" {
		t.Fatalf("title filter: %+v", byTitle)
	}

	byTeacher := FilterCourses(courses, "ALICE")
	if len(byTeacher) != 1 || byTeacher[0].Teacher != "Alice" {
		t.Fatalf("teacher filter (case-insensitive): %+v", byTeacher)
	}

	// "go" matches both the title "Intro to Go" and the wanted skill "Go".
	bydSkill := FilterCourses(courses, "go")
	if len(bydSkill) != 2 {
		t.Fatalf("wanted-skill filter: got %d courses, want 2", len(bydSkill))
	}
}

func TestFilterCourses_Idempotent(t *testing.T) {
	courses := courseFixture()
	once := FilterCourses(courses, "go")
	twice := FilterCourses(once, "go")
	if !reflect.DeepEqual(once, twice) {
		t.Fatalf("filtering twice changed the result: %+v vs %+v", once, twice)
	}
}

func TestFilterCourses_DoesNotMutateInput(t *testing.T) {
	courses := courseFixture()
	snapshot := make([]models.Course, len(courses))
	copy(snapshot, courses)

	FilterCourses(courses, "basics")

	if !reflect.DeepEqual(courses, snapshot) {
		t.Fatal("FilterCourses mutated the subscribed list")
	}
}

func TestFilterCourses_EmptyTermReturnsAll(t *testing.T) {
	courses := courseFixture()
	got := FilterCourses(courses, "")
	if len(got) != len(courses) {
		t.Fatalf("empty term should return full list, got %d", len(got))
	}
}

func TestFilterCourses_NoMatch(t *testing.T) {
	if got := FilterCourses(courseFixture(), "quantum"); len(got) != 0 {
		t.Fatalf("expected empty result, got %+v", got)
	}
}
