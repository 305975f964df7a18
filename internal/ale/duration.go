package ale

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
)

var timecodePattern = regexp.MustCompile(`^\d{2}:\d{2}:\d{2}:\d{2}$`)

// ParseTimecode converts an HH:MM:SS:FF timecode to a frame count at fps.
// Anything else, including drop-frame separators, is rejected.
func ParseTimecode(tc string, fps int) (int, bool) {
	if !timecodePattern.MatchString(tc) {
		return 0, false
	}
	parts := strings.Split(tc, ":")
	var v [4]int
	for i, part := range parts {
		n, err := strconv.Atoi(part)
		if err != nil {
			return 0, false
		}
		v[i] = n
	}
	return (v[0]*3600+v[1]*60+v[2])*fps + v[3], true
}

// TotalFrames sums the durations of every non-wav record. Records with a
// malformed duration are skipped.
func TotalFrames(rows []Record, fps int) int {
	total := 0
	for _, row := range rows {
		if IsWav(row.SourceFile) {
			continue
		}
		if frames, ok := ParseTimecode(row.Duration, fps); ok {
			total += frames
		}
	}
	return total
}

// TotalSeconds is TotalFrames expressed in whole seconds; leftover frames are
// dropped.
func TotalSeconds(rows []Record, fps int) int {
	if fps <= 0 {
		fps = defaultFrameRate
	}
	return TotalFrames(rows, fps) / fps
}

// AdjustedSeconds scales a duration by the speed factor, truncating toward
// zero. A non-positive or non-finite factor leaves the duration unchanged.
func AdjustedSeconds(seconds int, speedFactor float64) int {
	if math.IsNaN(speedFactor) || math.IsInf(speedFactor, 0) || speedFactor <= 0 {
		return seconds
	}
	return int(float64(seconds) / speedFactor)
}

// FormatDuration renders seconds as "HH heures MM min SS secondes".
func FormatDuration(seconds int) string {
	h := seconds / 3600
	m := (seconds % 3600) / 60
	s := seconds % 60
	return fmt.Sprintf("%02d heures %02d min %02d secondes", h, m, s)
}

// Summary aggregates counts and durations for a Result.
type Summary struct {
	Records         int     `json:"records"`
	Failing         int     `json:"failing"`
	Clean           int     `json:"clean"`
	GlobalErrors    int     `json:"global_errors"`
	TotalSeconds    int     `json:"total_seconds"`
	AdjustedSeconds int     `json:"adjusted_seconds"`
	Total           string  `json:"total"`
	Adjusted        string  `json:"adjusted"`
	SpeedFactor     float64 `json:"speed_factor"`
}

// Summarize computes the Summary of res for the given convention and speed
// factor.
func Summarize(res Result, conv Convention, speedFactor float64) Summary {
	total := TotalSeconds(res.Rows, conv.FrameRate)
	adjusted := AdjustedSeconds(total, speedFactor)
	failing := res.FailingCount()
	return Summary{
		Records:         len(res.Rows),
		Failing:         failing,
		Clean:           len(res.Rows) - failing,
		GlobalErrors:    len(res.GlobalErrors),
		TotalSeconds:    total,
		AdjustedSeconds: adjusted,
		Total:           FormatDuration(total),
		Adjusted:        FormatDuration(adjusted),
		SpeedFactor:     speedFactor,
	}
}
