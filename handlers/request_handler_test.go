package handlers

import (
	"errors"
	"testing"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func TestWorkflowErrorStatus(t *testing.T) {
	cases := []struct {
		err  error
		want int
	}{
		{errors.New("request not found"), fiber.StatusNotFound},
		{errors.New("course not found"), fiber.StatusNotFound},
		{errors.New("you are not the recipient of this request"), fiber.StatusForbidden},
		// A reject or accept that loses the lock to a concurrent transition
		// surfaces the pending guard as a conflict, never a success.
		{errors.New("request is no longer pending"), fiber.StatusConflict},
		{errors.New("request already pending"), fiber.StatusConflict},
		// The partial unique index on pending (sender, course) pairs reports
		// a racing duplicate create the same way.
		{gorm.ErrDuplicatedKey, fiber.StatusConflict},
		{errors.New("driver: bad connection"), fiber.StatusInternalServerError},
	}
	for _, tc := range cases {
		if got := workflowErrorStatus(tc.err); got != tc.want {
			t.Fatalf("status for %v = %d, want %d", tc.err, got, tc.want)
		}
	}
}
