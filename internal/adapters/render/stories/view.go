package stories

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/bnema/snooze-cli/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

const (
	favoriteMarker    = "★"
	notFavoriteMarker = "☆"
	mineMarker        = "[mine]"
)

// StoryListView is one screen of stories. Favorite markers are only drawn
// when ShowFavorites is set, i.e. when someone is logged in.
type StoryListView struct {
	Heading       string
	Rows          []StoryRow
	ShowFavorites bool
}

type StoryRow struct {
	Story    domain.Story
	Favorite bool
	Mine     bool
}

type RenderOptions struct {
	Now time.Time
}

func renderView(view StoryListView, opts RenderOptions, s styles) string {
	heading := strings.TrimSpace(view.Heading)
	if heading == "" {
		heading = "Hack or Snooze"
	}

	lines := []string{
		s.title.Render(heading),
		s.header.Render(storyCount(len(view.Rows))),
	}

	if len(view.Rows) == 0 {
		lines = append(lines, s.empty.Render("No stories yet."))
		return lipgloss.JoinVertical(lipgloss.Left, lines...)
	}

	for _, row := range view.Rows {
		lines = append(lines, s.section.Render(renderRow(row, view.ShowFavorites, opts, s)))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func renderRow(row StoryRow, showFavorites bool, opts RenderOptions, s styles) string {
	headline := []string{}
	if showFavorites {
		if row.Favorite {
			headline = append(headline, s.star.Render(favoriteMarker), " ")
		} else {
			headline = append(headline, s.starOff.Render(notFavoriteMarker), " ")
		}
	}

	headline = append(headline, s.story.Render(row.Story.Title))
	if host := row.Story.Hostname(); host != "" {
		headline = append(headline, " ", s.host.Render("("+host+")"))
	}
	if row.Mine {
		headline = append(headline, " ", s.mine.Render(mineMarker))
	}

	meta := []string{"by " + row.Story.Author}
	if row.Story.Username != "" {
		meta = append(meta, "posted by "+row.Story.Username)
	}
	if age := formatAge(row.Story.CreatedAt, opts.Now); age != "" {
		meta = append(meta, age)
	}

	ageStyle := lipgloss.NewStyle().Foreground(ageColor(row.Story.CreatedAt, opts.Now))

	return lipgloss.JoinVertical(
		lipgloss.Left,
		lipgloss.JoinHorizontal(lipgloss.Top, headline...),
		ageStyle.Render(strings.Join(meta, " · ")),
		s.id.Render("id: "+string(row.Story.ID)),
	)
}

func storyCount(n int) string {
	if n == 1 {
		return "1 story"
	}
	return fmt.Sprintf("%d stories", n)
}

func formatAge(createdAt, now time.Time) string {
	if createdAt.IsZero() {
		return ""
	}
	if now.IsZero() {
		return createdAt.Format("2006-01-02 15:04")
	}

	elapsed := now.Sub(createdAt)
	switch {
	case elapsed < time.Minute:
		return "just now"
	case elapsed < time.Hour:
		return plural(int(elapsed.Minutes()), "minute") + " ago"
	case elapsed < 24*time.Hour:
		return plural(int(elapsed.Hours()), "hour") + " ago"
	case elapsed < 30*24*time.Hour:
		return plural(int(math.Floor(elapsed.Hours()/24)), "day") + " ago"
	default:
		return createdAt.Format("02 Jan 2006")
	}
}

func plural(n int, unit string) string {
	if n == 1 {
		return "1 " + unit
	}
	return fmt.Sprintf("%d %ss", n, unit)
}

// ageColor fades metadata from bright to grey over a week.
func ageColor(createdAt, now time.Time) lipgloss.Color {
	if createdAt.IsZero() || now.IsZero() {
		return lipgloss.Color("252")
	}

	week := (7 * 24 * time.Hour).Seconds()
	freshness := week - now.Sub(createdAt).Seconds()
	return interpolateColor(freshness, 0, week)
}

func interpolateColor(value, min, max float64) lipgloss.Color {
	if max == min {
		return lipgloss.Color("255")
	}

	normalized := (value - min) / (max - min)
	if normalized < 0 {
		normalized = 0
	}
	if normalized > 1 {
		normalized = 1
	}

	// ANSI 256 greyscale ramp, 240 faded to 255 bright.
	code := int(240.0 + 15.0*normalized)
	return lipgloss.Color(fmt.Sprintf("%d", code))
}
