package config

import (
	"strings"
	"time"

	dps "github.com/markusmobius/go-dateparser"
	"github.com/urfave/cli/v2"

	"github.com/ayoisaiah/pomo/internal/timeutil"
)

// defaultHistoryDays is how far back `pomo history` looks without --since.
const defaultHistoryDays = 7

// FilterConfig selects the recorded stages that ended between Since and
// Until.
type FilterConfig struct {
	Since time.Time
	Until time.Time
}

// Filter builds a FilterConfig from the --since and --until flags. Both
// accept absolute dates as well as relative expressions like "2 days ago".
func Filter(ctx *cli.Context) (*FilterConfig, error) {
	return newFilter(time.Now(), ctx.String("since"), ctx.String("until"))
}

func newFilter(now time.Time, since, until string) (*FilterConfig, error) {
	f := &FilterConfig{
		Since: timeutil.RoundToStart(now.AddDate(0, 0, 1-defaultHistoryDays)),
		Until: timeutil.RoundToEnd(now),
	}

	var err error

	if strings.TrimSpace(since) != "" {
		f.Since, err = parseTime(now, since)
		if err != nil {
			return nil, err
		}
	}

	if strings.TrimSpace(until) != "" {
		f.Until, err = parseTime(now, until)
		if err != nil {
			return nil, err
		}
	}

	if !f.Since.Before(f.Until) {
		return nil, errSinceAfterUntil.Fmt(
			f.Since.Format(time.RFC3339),
			f.Until.Format(time.RFC3339),
		)
	}

	return f, nil
}

func parseTime(now time.Time, s string) (time.Time, error) {
	cfg := &dps.Configuration{
		CurrentTime: now,
	}

	date, err := dps.Parse(cfg, strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, errInvalidSince.Fmt(s).Wrap(err)
	}

	if date.Time.IsZero() {
		return time.Time{}, errInvalidSince.Fmt(s)
	}

	return date.Time, nil
}
