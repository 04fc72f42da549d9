package parsing

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/jonathan/resume-screener/internal/types"
)

var (
	// educationEntrySplitRe separates raw education entries at blank lines
	// or leading bullet markers.
	educationEntrySplitRe = regexp.MustCompile(`\n\s*\n|\n•|\n\*|\n-`)

	// yearRangeRe matches study ranges like "2019-2023", "2017-21" or
	// "2019 – Present".
	yearRangeRe = regexp.MustCompile(`(?i)(\d{4})\s*[-–—]\s*(\d{4}|\d{2}|present|ongoing)`)

	bareYearRe = regexp.MustCompile(`\d{4}`)

	gpaRe         = regexp.MustCompile(`(?i)(?:GPA|CGPA|CPI)[^\d]*([\d.]+)`)
	fallbackGPARe = regexp.MustCompile(`(?i)(?:GPA|CGPA)[^\d]*([\d.]+)`)

	// degreeTitleRe extracts a degree title from an institution line.
	degreeTitleRe = regexp.MustCompile(`(?i)(?:Bachelor|Master|Diploma|B\.Tech|M\.Tech|Ph\.D|Senior Secondary|Secondary)[^,\n]*`)

	// institutionNameRe recognizes institution names in the line-accumulator
	// fallback.
	institutionNameRe = regexp.MustCompile(`(?i)(?:University|College|Institute|School)[^,\n]*`)
)

// ExtractEducation extracts classified education entries from the education
// section of cleaned resume text. The primary strategy splits the section
// into entries at blank lines and bullet markers; when that yields nothing,
// a line-accumulator pass re-scans the section. An absent section yields an
// empty result, not an error.
func (e *Extractor) ExtractEducation(text string) []types.EducationEntry {
	section := Section(text, EducationAliases)
	if section == "" {
		return nil
	}

	entries := e.educationFromEntries(section)
	if len(entries) == 0 {
		entries = e.educationLineScan(section)
	}
	return entries
}

func (e *Extractor) educationFromEntries(section string) []types.EducationEntry {
	var entries []types.EducationEntry

	for _, raw := range educationEntrySplitRe.Split(section, -1) {
		if strings.TrimSpace(raw) == "" {
			continue
		}

		var lines []string
		for _, line := range strings.Split(raw, "\n") {
			if trimmed := strings.TrimSpace(line); trimmed != "" {
				lines = append(lines, trimmed)
			}
		}
		if len(lines) == 0 {
			continue
		}

		entry := types.EducationEntry{}
		if gpa, ok := findGPA(gpaRe, raw); ok {
			entry.GPA = &gpa
		}

		// The institution line is the first line carrying an education-level
		// keyword, or the first non-bullet line when no line carries one.
		// Bullet-prefixed lines are entry details, never the institution.
		keywordAssigned := false
		for _, line := range lines {
			if isBulletDetail(line) {
				continue
			}
			hasKeyword := hasLevelKeyword(line)
			if entry.Institution != "" && (!hasKeyword || keywordAssigned) {
				continue
			}
			entry.Institution = line
			if title := degreeTitleRe.FindString(line); title != "" {
				entry.Degree = strings.TrimSpace(title)
			}
			if hasKeyword {
				keywordAssigned = true
			}
		}

		entry.Level = ClassifyEducationLevel(classificationSource(entry.Degree, entry.Institution))
		entry.SetYear(e.extractYear(raw))

		entries = append(entries, entry)
	}

	return entries
}

// educationLineScan is the fallback strategy: walk the section line by line,
// incrementally filling an accumulator and committing it on blank lines and
// at end of section. Classification and the year-field policy are applied
// at commit time, exactly as in the primary strategy.
func (e *Extractor) educationLineScan(section string) []types.EducationEntry {
	var entries []types.EducationEntry
	var acc educationAccumulator

	commit := func() {
		if !acc.hasData() {
			return
		}
		entries = append(entries, acc.entry())
		acc = educationAccumulator{}
	}

	for _, rawLine := range strings.Split(section, "\n") {
		line := strings.TrimSpace(rawLine)
		if line == "" {
			commit()
			continue
		}

		if acc.degree == "" {
			if title := degreeTitleRe.FindString(line); title != "" {
				acc.degree = strings.TrimSpace(title)
			}
		}
		if acc.institution == "" {
			if name := institutionNameRe.FindString(line); name != "" {
				acc.institution = strings.TrimSpace(name)
			} else {
				acc.institution = line
			}
		}
		if acc.year == "" {
			acc.year = bareYearRe.FindString(line)
		}
		if acc.gpa == nil {
			if gpa, ok := findGPA(fallbackGPARe, line); ok {
				acc.gpa = &gpa
			}
		}
	}
	commit()

	return entries
}

type educationAccumulator struct {
	institution string
	degree      string
	year        string
	gpa         *float64
}

func (a *educationAccumulator) hasData() bool {
	return a.institution != "" || a.degree != "" || a.year != "" || a.gpa != nil
}

func (a *educationAccumulator) entry() types.EducationEntry {
	entry := types.EducationEntry{
		Institution: a.institution,
		Degree:      a.degree,
		GPA:         a.gpa,
	}
	entry.Level = ClassifyEducationLevel(classificationSource(a.degree, a.institution))
	entry.SetYear(a.year)
	return entry
}

// extractYear finds the year an entry ended. A year range wins over a bare
// year; two-digit range ends are expanded with a "20" prefix, and open
// ranges (present/ongoing) resolve to the current calendar year. Returns ""
// when the entry names no year at all.
func (e *Extractor) extractYear(text string) string {
	if m := yearRangeRe.FindStringSubmatch(text); m != nil {
		end := m[2]
		switch {
		case len(end) == 2:
			return "20" + end
		case strings.EqualFold(end, "present") || strings.EqualFold(end, "ongoing"):
			return strconv.Itoa(e.now().Year())
		default:
			return end
		}
	}
	return bareYearRe.FindString(text)
}

// findGPA extracts and parses the first GPA-looking value matched by re.
// Values that fail numeric conversion are discarded, never stored raw.
func findGPA(re *regexp.Regexp, text string) (float64, bool) {
	m := re.FindStringSubmatch(text)
	if m == nil {
		return 0, false
	}
	gpa, err := strconv.ParseFloat(m[1], 64)
	if err != nil {
		return 0, false
	}
	return gpa, true
}

// classificationSource picks the text classification runs against: the
// degree title when one was extracted, else the institution line.
func classificationSource(degree, institution string) string {
	if degree != "" {
		return degree
	}
	return institution
}

func isBulletDetail(line string) bool {
	return strings.HasPrefix(line, "•") || strings.HasPrefix(line, "*") || strings.HasPrefix(line, "-")
}
