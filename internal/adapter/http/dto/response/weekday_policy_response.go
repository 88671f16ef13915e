package response

import (
	"strings"
	"time"

	"villa_pricing/internal/domain/entities"
)

type WeekdayPolicyResponse struct {
	AutoDays     []string   `json:"auto_days"`
	ManualDays   []string   `json:"manual_days"`
	ReminderDays []string   `json:"reminder_days"`
	NextRevertAt *time.Time `json:"next_revert_at,omitempty"`
}

// FromWeekdayPolicy renders days in lower case, Monday first. A zero
// nextRevert (scheduler disabled) is omitted.
func FromWeekdayPolicy(p entities.WeekdayPolicy, nextRevert time.Time) WeekdayPolicyResponse {
	out := WeekdayPolicyResponse{
		AutoDays:     dayNames(p.AutoDays()),
		ManualDays:   dayNames(p.ManualDays()),
		ReminderDays: dayNames(p.ReminderDays()),
	}
	if !nextRevert.IsZero() {
		out.NextRevertAt = &nextRevert
	}
	return out
}

func dayNames(days []time.Weekday) []string {
	out := make([]string, 0, len(days))
	for _, d := range days {
		out = append(out, strings.ToLower(d.String()))
	}
	return out
}
