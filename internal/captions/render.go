package captions

import (
	"strings"

	"rostersrt/internal/joindate"
	"rostersrt/internal/pacing"
	"rostersrt/internal/roster"
)

// TeamPlaceholder is substituted with the roster's team in titles and labels.
const TeamPlaceholder = "{team}"

// Block is one indexed, timestamped caption cue.
type Block struct {
	Index int
	Start float64
	End   float64
	Lines []string
}

// Skip records a cue dropped because its end did not follow its start.
type Skip struct {
	Label string
	Start float64
	End   float64
}

// Track is a rendered caption track.
type Track struct {
	Blocks  []Block
	Skipped []Skip
	// RecordCues counts the emitted cues that belong to roster records.
	RecordCues int
}

// Labels are the field prefixes used in the info line.
type Labels struct {
	FullName string
	JoinDate string
	Roles    string
	Heros    string
}

// Template controls the text of every cue.
type Template struct {
	// Extended adds the league and hero lines and omits empty info parts.
	Extended       bool
	OpeningTitle   string
	ClosingCaption bool
	ClosingMessage string
	Unknown        string
	Labels         Labels
	// Dates formats join dates; its Unknown marker is replaced per template.
	Dates joindate.Formatter
}

// Render builds the caption track for records already in display order. Only
// the first plan.CardsToShow records are used.
func Render(records []roster.Record, plan pacing.Plan, tmpl Template, team string) Track {
	var track Track
	index := 1
	opening := plan.OpeningSeconds
	// lastEnd is where the closing cue starts: the end of the last emitted
	// block, or the opening boundary when nothing after it was emitted.
	lastEnd := max(opening, 0)
	emit := func(label string, start, end float64, lines []string) bool {
		if end <= start {
			track.Skipped = append(track.Skipped, Skip{Label: label, Start: start, End: end})
			return false
		}
		track.Blocks = append(track.Blocks, Block{Index: index, Start: start, End: end, Lines: lines})
		index++
		lastEnd = end
		return true
	}

	emit("opening title", 0, opening, []string{expandTeam(tmpl.OpeningTitle, team)})

	cards := min(plan.CardsToShow, len(records))
	for i, record := range records[:cards] {
		start := opening + float64(i)*plan.SecondsPerCard
		end := opening + float64(i+1)*plan.SecondsPerCard
		if emit(record.Name, start, end, tmpl.recordLines(record, team)) {
			track.RecordCues++
		}
	}

	if tmpl.ClosingCaption {
		emit("closing message", lastEnd, lastEnd+plan.EndingSeconds, []string{tmpl.ClosingMessage})
	}
	return track
}

func (tmpl Template) recordLines(record roster.Record, team string) []string {
	headline := record.Name
	if record.Nation != "" {
		headline += " (" + record.Nation + ")"
	}
	if tmpl.Extended {
		return tmpl.extendedLines(record, team, headline)
	}

	fullName := orDefault(record.FullName, tmpl.Unknown)
	roles := orDefault(strings.Join(record.Roles, ", "), tmpl.Unknown)
	info := []string{
		tmpl.Labels.FullName + ": " + fullName,
		expandTeam(tmpl.Labels.JoinDate, team) + ": " + tmpl.displayDate(record.Date, tmpl.Unknown),
		tmpl.Labels.Roles + ": [" + roles + "]",
	}
	return []string{headline, strings.Join(info, " | ")}
}

func (tmpl Template) extendedLines(record roster.Record, team, headline string) []string {
	lines := []string{headline}
	if record.Nation != "" && record.League != "" {
		lines = append(lines, "("+record.League+")")
	}
	var info []string
	if record.FullName != "" {
		info = append(info, tmpl.Labels.FullName+": "+record.FullName)
	}
	if joined := tmpl.displayDate(record.Date, ""); joined != "" {
		info = append(info, expandTeam(tmpl.Labels.JoinDate, team)+": "+joined)
	}
	if len(record.Roles) > 0 {
		info = append(info, tmpl.Labels.Roles+": ["+strings.Join(record.Roles, ", ")+"]")
	}
	if len(info) > 0 {
		lines = append(lines, strings.Join(info, " | "))
	}
	if len(record.Heros) > 0 {
		lines = append(lines, tmpl.Labels.Heros+": ["+strings.Join(record.Heros, ", ")+"]")
	}
	return lines
}

func (tmpl Template) displayDate(text, unknown string) string {
	dates := tmpl.Dates
	dates.Unknown = unknown
	return dates.Display(text)
}

func expandTeam(text, team string) string {
	return strings.ReplaceAll(text, TeamPlaceholder, team)
}

func orDefault(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}
