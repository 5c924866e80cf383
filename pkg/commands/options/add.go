package options

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

// ScheduleOptions holds the raw time flags of add and edit.
type ScheduleOptions struct {
	From string
	To   string
	By   string
}

func AddEventArgs(cmd *cobra.Command, o *ScheduleOptions) {
	cmd.Flags().StringVar(&o.From, "from", "",
		`Start of the event, example: --from="2020-02-28 13:00".`)
	cmd.Flags().StringVar(&o.To, "to", "",
		`End of the event, example: --to="2020-02-28 14:00".`)
}

func AddDeadlineArgs(cmd *cobra.Command, o *ScheduleOptions) {
	cmd.Flags().StringVar(&o.By, "by", "",
		`When the deadline is due, example: --by="2020-02-28 17:00" or --by=2/28.`)
}

// Event returns the parsed start and end. A bare end date means the end of
// that day.
func (o *ScheduleOptions) Event(now time.Time) (time.Time, time.Time, error) {
	if o.From == "" || o.To == "" {
		return time.Time{}, time.Time{}, errors.New("an event needs both --from and --to")
	}
	start, err := ParseTime(o.From, now, false)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("--from: %w", err)
	}
	end, err := ParseTime(o.To, now, true)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("--to: %w", err)
	}
	return start, end, nil
}

// Deadline returns the parsed due time. A bare date means the end of that
// day.
func (o *ScheduleOptions) Deadline(now time.Time) (time.Time, error) {
	if o.By == "" {
		return time.Time{}, errors.New("a deadline needs --by")
	}
	due, err := ParseTime(o.By, now, true)
	if err != nil {
		return time.Time{}, fmt.Errorf("--by: %w", err)
	}
	return due, nil
}

// Changed reports whether any time flag was given.
func (o *ScheduleOptions) Changed() bool {
	return o.From != "" || o.To != "" || o.By != ""
}
