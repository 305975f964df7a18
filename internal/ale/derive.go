package ale

import (
	"fmt"
	"strconv"
	"strings"
)

// ExtractEpisodeNumber returns the four digits following the first episode tag
// in name.
func (c Convention) ExtractEpisodeNumber(name string) (string, bool) {
	m := c.pattern().FindStringSubmatch(name)
	if m == nil {
		return "", false
	}
	return m[1], true
}

// EpisodeGroup returns the 1-based media volume group for an episode number.
// With the default group size of ten, episodes 1-10 share group 1, 11-20 group
// 2, and so on.
func (c Convention) EpisodeGroup(epNum string) (int, error) {
	n, err := strconv.Atoi(epNum)
	if err != nil {
		return 0, fmt.Errorf("episode number %q: %w", epNum, err)
	}
	size := c.GroupSize
	if size <= 0 {
		size = defaultGroupSize
	}
	return floorDiv(n-1, size) + 1, nil
}

// StoragePath renders the native-rushes storage folder for an episode.
func (c Convention) StoragePath(epNum string) string {
	return strings.ReplaceAll(c.StorageTemplate, PlaceholderEpisode, epNum)
}

// MediaPath renders the media-server folder for an episode, embedding both the
// group and the episode number.
func (c Convention) MediaPath(epNum string) (string, error) {
	group, err := c.EpisodeGroup(epNum)
	if err != nil {
		return "", err
	}
	return strings.NewReplacer(
		PlaceholderGroup, strconv.Itoa(group),
		PlaceholderEpisode, epNum,
	).Replace(c.MediaTemplate), nil
}

// floorDiv matches floor division for negative dividends so episode 0000 lands
// in group 0 rather than group 1.
func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}
