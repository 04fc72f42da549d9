package parsing

import (
	"regexp"
	"strings"

	"github.com/jonathan/resume-screener/internal/types"
)

// experienceSections lists the section kinds the experience extractor
// locates independently, with their heading aliases.
var experienceSections = []struct {
	kind    types.ExperienceKind
	aliases []string
}{
	{types.KindExperience, []string{"EXPERIENCE", "WORK EXPERIENCE", "PROFESSIONAL EXPERIENCE"}},
	{types.KindProject, []string{"PROJECTS", "PROJECT EXPERIENCE"}},
	{types.KindInternship, []string{"INTERNSHIPS", "INTERNSHIP EXPERIENCE"}},
}

var (
	// labelPairRe matches "label • description" entry lines.
	labelPairRe = regexp.MustCompile(`([^\n•#]+)(?:•|\*|-)([^\n•#]+)`)

	// positionAtRe splits "Software Engineer at Initech" style labels.
	positionAtRe = regexp.MustCompile(`(?i)([\w\s]+) at ([\w\s]+)`)

	// dateRangeRe matches "May 2021 - Aug 2021" and "May 2021 - Present".
	dateRangeRe = regexp.MustCompile(`(?i)(\w+ \d{4}\s*-\s*(?:\w+ \d{4}|Present))`)

	capitalStartRe = regexp.MustCompile(`^[A-Z]`)
)

// ExtractExperience extracts work experience, project, and internship
// entries. Each section kind is located independently; within a section the
// primary strategy scans for label/description pairs, and a line
// accumulator takes over when no pairs are found.
func (e *Extractor) ExtractExperience(text string) []types.ExperienceEntry {
	var entries []types.ExperienceEntry

	for _, section := range experienceSections {
		body := Section(text, section.aliases)
		if body == "" {
			continue
		}

		pairs := labelPairRe.FindAllStringSubmatch(body, -1)
		for _, pair := range pairs {
			entry := entryFromLabel(pair[1], section.kind)
			entry.Description = strings.TrimSpace(pair[2])
			entries = append(entries, entry)
		}

		if len(pairs) == 0 {
			entries = append(entries, experienceLineScan(body, section.kind)...)
		}
	}

	return entries
}

// entryFromLabel extracts company, position, and date from an entry label.
// When the "<position> at <company>" pattern fails, the whole label is the
// company and the position stays unset.
func entryFromLabel(label string, kind types.ExperienceKind) types.ExperienceEntry {
	entry := types.ExperienceEntry{Kind: kind}

	if m := positionAtRe.FindStringSubmatch(label); m != nil {
		entry.Position = strings.TrimSpace(m[1])
		entry.Company = strings.TrimSpace(m[2])
	} else {
		entry.Company = strings.TrimSpace(label)
	}

	if m := dateRangeRe.FindStringSubmatch(label); m != nil {
		entry.Date = m[1]
	}

	return entry
}

// experienceLineScan is the fallback strategy: a line starting with a
// capital letter begins a new entry (committing the previous one), the
// entry's first line is parsed as its label, and subsequent lines are
// joined into the description.
func experienceLineScan(body string, kind types.ExperienceKind) []types.ExperienceEntry {
	var entries []types.ExperienceEntry

	current := types.ExperienceEntry{Kind: kind}
	started := false

	for _, rawLine := range strings.Split(body, "\n") {
		line := strings.TrimSpace(rawLine)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		if started && capitalStartRe.MatchString(line) {
			entries = append(entries, current)
			current = types.ExperienceEntry{Kind: kind}
			started = false
		}

		if !started {
			labeled := entryFromLabel(line, kind)
			current.Company = labeled.Company
			current.Position = labeled.Position
			current.Date = labeled.Date
			started = true
			continue
		}

		if current.Description == "" {
			current.Description = line
		} else {
			current.Description += " " + line
		}
	}

	if started {
		entries = append(entries, current)
	}

	return entries
}
