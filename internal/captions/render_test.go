package captions

import (
	"reflect"
	"strings"
	"testing"

	"rostersrt/internal/joindate"
	"rostersrt/internal/pacing"
	"rostersrt/internal/roster"
)

func classicTemplate() Template {
	return Template{
		OpeningTitle: "Riwayat Pemain {team} 2017-2025",
		Unknown:      "Tidak diketahui",
		Labels: Labels{
			FullName: "Nama",
			JoinDate: "Tanggal masuk {team}",
			Roles:    "Roles",
			Heros:    "Heros",
		},
		Dates: joindate.Formatter{Language: joindate.LanguageEnglish},
	}
}

func extendedTemplate() Template {
	return Template{
		Extended:       true,
		OpeningTitle:   "Riwayat Pemain {team} 2017-2025",
		ClosingCaption: true,
		ClosingMessage: "Terima kasih sudah menonton!",
		Unknown:        "Tidak diketahui",
		Labels: Labels{
			FullName: "Name",
			JoinDate: "Bergabung",
			Roles:    "Roles",
			Heros:    "Heros",
		},
		Dates: joindate.Formatter{Parser: joindate.Parser{NaturalLanguage: true}, Language: joindate.LanguageEnglish},
	}
}

func plan(cards int, perCard, opening, ending float64) pacing.Plan {
	p := pacing.Plan{CardsToShow: cards, SecondsPerCard: perCard, OpeningSeconds: opening, EndingSeconds: ending}
	p.TotalSeconds = p.Reconstruct()
	return p
}

func TestRenderEndToEndScenario(t *testing.T) {
	records := []roster.Record{
		{Name: "A", Date: "2019-06-01"},
		{Name: "B", Date: "2020-01-01"},
	}
	track := Render(records, plan(2, 10, 2, 0), classicTemplate(), "EVOS")
	if len(track.Blocks) != 3 {
		t.Fatalf("expected 3 blocks, got %d", len(track.Blocks))
	}
	want := "1\n00:00:00,000 --> 00:00:02,000\nRiwayat Pemain EVOS 2017-2025\n\n" +
		"2\n00:00:02,000 --> 00:00:12,000\nA\nNama: Tidak diketahui | Tanggal masuk EVOS: 01 June 2019 | Roles: [Tidak diketahui]\n\n" +
		"3\n00:00:12,000 --> 00:00:22,000\nB\nNama: Tidak diketahui | Tanggal masuk EVOS: 01 January 2020 | Roles: [Tidak diketahui]\n\n"
	if got := string(Marshal(track.Blocks)); got != want {
		t.Fatalf("unexpected track:\n%s\nwant:\n%s", got, want)
	}
}

func TestRenderClassicLines(t *testing.T) {
	record := roster.Record{
		Name:     "Lemon",
		FullName: "Muhammad Ikhsan",
		Nation:   "Indonesia",
		Date:     "awal 2017",
		Roles:    []string{"Mid Laner", "Captain"},
	}
	track := Render([]roster.Record{record}, plan(1, 8, 2, 5), classicTemplate(), "RRQ")
	want := []string{
		"Lemon (Indonesia)",
		"Nama: Muhammad Ikhsan | Tanggal masuk RRQ: awal 2017 | Roles: [Mid Laner, Captain]",
	}
	if got := track.Blocks[1].Lines; !reflect.DeepEqual(got, want) {
		t.Fatalf("lines = %q, want %q", got, want)
	}
	if len(track.Blocks) != 2 {
		t.Fatalf("expected no closing block for classic template, got %d blocks", len(track.Blocks))
	}
}

func TestRenderExtendedLinesOmitEmptyParts(t *testing.T) {
	records := []roster.Record{
		{
			Name:     "Alberttt",
			FullName: "Albert Neilsen Iskandar",
			Nation:   "Indonesia",
			League:   "MPL ID",
			Date:     "1 Juni 2019",
			Roles:    []string{"Jungler"},
			Heros:    []string{"Ling", "Fanny"},
		},
		{Name: "Rookie"},
	}
	track := Render(records, plan(2, 6, 2, 5), extendedTemplate(), "RRQ")

	first := []string{
		"Alberttt (Indonesia)",
		"(MPL ID)",
		"Name: Albert Neilsen Iskandar | Bergabung: 01 June 2019 | Roles: [Jungler]",
		"Heros: [Ling, Fanny]",
	}
	if got := track.Blocks[1].Lines; !reflect.DeepEqual(got, first) {
		t.Fatalf("first lines = %q, want %q", got, first)
	}
	if got := track.Blocks[2].Lines; !reflect.DeepEqual(got, []string{"Rookie"}) {
		t.Fatalf("second lines = %q, want only the name", got)
	}

	closing := track.Blocks[3]
	if closing.Start != 14 || closing.End != 19 || closing.Lines[0] != "Terima kasih sudah menonton!" {
		t.Fatalf("unexpected closing block: %+v", closing)
	}
}

func TestRenderTruncatesToCardsToShow(t *testing.T) {
	records := make([]roster.Record, 7)
	for i := range records {
		records[i] = roster.Record{Name: string(rune('A' + i))}
	}
	track := Render(records, plan(4, 5, 2, 5), classicTemplate(), "X")
	if track.RecordCues != 4 {
		t.Fatalf("expected 4 record cues, got %d", track.RecordCues)
	}
	if last := track.Blocks[len(track.Blocks)-1]; last.Lines[0] != "D" {
		t.Fatalf("expected last shown record D, got %q", last.Lines[0])
	}
}

func TestRenderBlocksAreContiguous(t *testing.T) {
	records := make([]roster.Record, 40)
	for i := range records {
		records[i] = roster.Record{Name: "player"}
	}
	track := Render(records, plan(40, 0.1, 1.0/3.0, 0.7), extendedTemplate(), "X")
	if track.RecordCues != 40 || len(track.Skipped) != 0 {
		t.Fatalf("unexpected cue counts: %d cues, %d skipped", track.RecordCues, len(track.Skipped))
	}
	for i := 1; i < len(track.Blocks); i++ {
		prev, cur := track.Blocks[i-1], track.Blocks[i]
		if cur.Start != prev.End {
			t.Fatalf("block %d starts at %v, previous ended at %v", cur.Index, cur.Start, prev.End)
		}
		if cur.Index != prev.Index+1 {
			t.Fatalf("block indices not contiguous: %d after %d", cur.Index, prev.Index)
		}
	}
}

func TestRenderSkipsDegenerateDurations(t *testing.T) {
	records := []roster.Record{{Name: "A"}, {Name: "B"}}
	track := Render(records, plan(2, 0, 2, 5), extendedTemplate(), "X")
	if track.RecordCues != 0 {
		t.Fatalf("expected zero-length record cues to be skipped, got %d", track.RecordCues)
	}
	if len(track.Skipped) != 2 {
		t.Fatalf("expected 2 skips, got %+v", track.Skipped)
	}
	if len(track.Blocks) != 2 {
		t.Fatalf("expected opening and closing blocks only, got %d", len(track.Blocks))
	}
	if track.Blocks[0].Index != 1 || track.Blocks[1].Index != 2 {
		t.Fatalf("skips must not consume indices: %+v", track.Blocks)
	}
	if issues := Validate(Marshal(track.Blocks)); len(issues) != 0 {
		t.Fatalf("expected rendered track to validate, got %v", issues)
	}
}

func TestRenderNegativeDurationSkipsWithoutOverlap(t *testing.T) {
	records := []roster.Record{{Name: "A"}, {Name: "B"}, {Name: "C"}}
	track := Render(records, plan(3, -4, 2, 5), classicTemplate(), "X")
	if track.RecordCues != 0 || len(track.Blocks) != 1 {
		t.Fatalf("expected only the opening title, got %+v", track.Blocks)
	}
	if !strings.Contains(track.Blocks[0].Lines[0], "X") {
		t.Fatalf("expected team in opening title, got %q", track.Blocks[0].Lines[0])
	}
}

func TestRenderClosingFollowsLastEmittedBlock(t *testing.T) {
	records := []roster.Record{{Name: "A"}, {Name: "B"}}
	track := Render(records, plan(2, -0.5, 2, 5), extendedTemplate(), "X")
	if track.RecordCues != 0 || len(track.Blocks) != 2 {
		t.Fatalf("expected opening and closing only, got %+v", track.Blocks)
	}
	closing := track.Blocks[1]
	if closing.Start != 2 || closing.End != 7 {
		t.Fatalf("expected closing over [2, 7), got [%v, %v)", closing.Start, closing.End)
	}
	if issues := Validate(Marshal(track.Blocks)); len(issues) != 0 {
		t.Fatalf("expected rendered track to validate, got %v", issues)
	}
}

func TestRenderExtendedLeagueRequiresNation(t *testing.T) {
	record := roster.Record{Name: "Solo", League: "MPL ID", Roles: []string{"Gold Laner"}}
	lines := Render([]roster.Record{record}, plan(1, 6, 2, 5), extendedTemplate(), "X").Blocks[1].Lines
	want := []string{"Solo", "Roles: [Gold Laner]"}
	if !reflect.DeepEqual(lines, want) {
		t.Fatalf("lines = %q, want %q", lines, want)
	}
}

func TestRenderIsDeterministic(t *testing.T) {
	records := []roster.Record{{Name: "A", Date: "2019-06-01", Roles: []string{"Roam"}}, {Name: "B"}}
	first := Marshal(Render(records, plan(2, 6, 2, 5), extendedTemplate(), "T").Blocks)
	second := Marshal(Render(records, plan(2, 6, 2, 5), extendedTemplate(), "T").Blocks)
	if string(first) != string(second) {
		t.Fatalf("render output differs between runs")
	}
}
