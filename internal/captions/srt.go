package captions

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"
)

// Marshal serializes blocks in SRT layout. Every block, including the last,
// is followed by a blank line.
func Marshal(blocks []Block) []byte {
	var buf bytes.Buffer
	for _, block := range blocks {
		buf.WriteString(strconv.Itoa(block.Index))
		buf.WriteByte('\n')
		buf.WriteString(FormatTimecode(block.Start))
		buf.WriteString(" --> ")
		buf.WriteString(FormatTimecode(block.End))
		buf.WriteByte('\n')
		for _, line := range block.Lines {
			buf.WriteString(line)
			buf.WriteByte('\n')
		}
		buf.WriteByte('\n')
	}
	return buf.Bytes()
}

// Cue is a block read back from serialized SRT.
type Cue struct {
	Index int
	Start float64
	End   float64
	Text  []string
}

// Parse reads SRT content into cues. Malformed blocks are reported as an
// error naming the block number.
func Parse(content []byte) ([]Cue, error) {
	normalized := strings.ReplaceAll(string(content), "\r\n", "\n")
	trimmed := strings.TrimSpace(normalized)
	if trimmed == "" {
		return nil, nil
	}
	blocks := strings.Split(trimmed, "\n\n")
	cues := make([]Cue, 0, len(blocks))
	for i, block := range blocks {
		lines := strings.Split(strings.TrimSpace(block), "\n")
		if len(lines) < 2 {
			return nil, fmt.Errorf("block %d: expected index and timing lines", i+1)
		}
		index, err := strconv.Atoi(strings.TrimSpace(lines[0]))
		if err != nil {
			return nil, fmt.Errorf("block %d: invalid index %q", i+1, lines[0])
		}
		parts := strings.Split(lines[1], "-->")
		if len(parts) != 2 {
			return nil, fmt.Errorf("block %d: invalid timing line %q", i+1, lines[1])
		}
		start, err := ParseTimecode(parts[0])
		if err != nil {
			return nil, fmt.Errorf("block %d: %w", i+1, err)
		}
		end, err := ParseTimecode(parts[1])
		if err != nil {
			return nil, fmt.Errorf("block %d: %w", i+1, err)
		}
		cues = append(cues, Cue{Index: index, Start: start, End: end, Text: lines[2:]})
	}
	return cues, nil
}

// Validate checks SRT content for format issues. An empty result means the
// track passed.
func Validate(content []byte) []string {
	var issues []string
	cues, err := Parse(content)
	if err != nil {
		return append(issues, fmt.Sprintf("parse_error: %v", err))
	}
	if len(cues) == 0 {
		return append(issues, "empty_subtitle_file")
	}
	if !bytes.HasSuffix(content, []byte("\n\n")) {
		issues = append(issues, "missing_trailing_blank_line")
	}
	for i, cue := range cues {
		if cue.End <= cue.Start {
			issues = append(issues, fmt.Sprintf("non_positive_duration: cue=%d", cue.Index))
		}
		if len(cue.Text) == 0 {
			issues = append(issues, fmt.Sprintf("empty_text: cue=%d", cue.Index))
		}
		if i == 0 {
			if cue.Index != 1 {
				issues = append(issues, fmt.Sprintf("first_index: got=%d", cue.Index))
			}
			continue
		}
		prev := cues[i-1]
		if cue.Index != prev.Index+1 {
			issues = append(issues, fmt.Sprintf("index_gap: after=%d got=%d", prev.Index, cue.Index))
		}
		if cue.Start < prev.End {
			issues = append(issues, fmt.Sprintf("overlap: cue=%d", cue.Index))
		}
	}
	return issues
}
