package calendar

import (
	"net/url"
	"time"

	"github.com/mklein/gateplan/internal/constants"
	"github.com/mklein/gateplan/internal/models"
	"github.com/mklein/gateplan/internal/utils"
)

const googleTimestampFormat = "20060102T150405Z"

// EventLink builds a Google Calendar template URL for a plan item on the
// given day. Items without a start time default to 09:00; the range spans
// the item's duration. Times are rendered in UTC.
func EventLink(item models.PlanItem, dateKey string, loc *time.Location) (string, error) {
	start := item.Start
	if start == "" {
		start = "09:00"
	}
	duration := item.DurationMin
	if duration <= 0 {
		duration = constants.DefaultItemDurationMin
	}

	startTime, err := utils.CombineDateAndTime(dateKey, start, loc)
	if err != nil {
		return "", err
	}
	endTime := startTime.Add(time.Duration(duration) * time.Minute)

	dates := startTime.UTC().Format(googleTimestampFormat) + "/" + endTime.UTC().Format(googleTimestampFormat)

	params := url.Values{}
	params.Set("action", "TEMPLATE")
	params.Set("text", item.Title)
	params.Set("dates", dates)
	params.Set("details", "Planned via GatePlan")

	return "https://calendar.google.com/calendar/render?" + params.Encode(), nil
}
