package services

import (
	"math"
	"strings"

	"github.com/Sunilkumar09281/mutual-learn-space/models"
)

// Defaults applied to malformed or legacy course records before they are
// shown anywhere.
const (
	PlaceholderTitle   = "Untitled Course"
	PlaceholderTeacher = "Anonymous"
)

// NormalizeCourse fills field defaults on a decoded course: a blank title or
// owner name gets a placeholder, and the rating collapses to the [0,5] range
// with anything non-numeric treated as 0.
func NormalizeCourse(c models.Course) models.Course {
	if strings.TrimSpace(c.Title) == "" {
		c.Title = PlaceholderTitle
	}
	if strings.TrimSpace(c.Teacher) == "" {
		c.Teacher = PlaceholderTeacher
	}
	if math.IsNaN(c.Rating) || c.Rating < 0 {
		c.Rating = 0
	}
	if c.Rating > 5 {
		c.Rating = 5
	}
	return c
}

func NormalizeCourses(courses []models.Course) []models.Course {
	out := make([]models.Course, len(courses))
	for i, c := range courses {
		out[i] = NormalizeCourse(c)
	}
	return out
}

// FilterCourses is a synchronous projection over the full live snapshot:
// case-insensitive substring match on title, owner display name and wanted
// skill. It never mutates its input and is idempotent for a fixed term.
func FilterCourses(courses []models.Course, term string) []models.Course {
	if term == "" {
		return courses
	}
	needle := strings.ToLower(term)
	out := make([]models.Course, 0, len(courses))
	for _, c := range courses {
		if strings.Contains(strings.ToLower(c.Title), needle) ||
			strings.Contains(strings.ToLower(c.Teacher), needle) ||
			strings.Contains(strings.ToLower(c.WantedSkill), needle) {
			out = append(out, c)
		}
	}
	return out
}
