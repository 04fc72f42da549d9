package parsing

import (
	"time"

	"github.com/jonathan/resume-screener/internal/skills"
	"github.com/jonathan/resume-screener/internal/types"
)

// Extractor bundles the immutable resources rule-based extraction depends
// on: the compiled skill lexicon, the keyword tables, and a clock for
// resolving open-ended year ranges. Construct one and share it across
// calls; it holds no per-document state and is safe for concurrent use.
type Extractor struct {
	lexicon *skills.Lexicon
	now     func() time.Time
}

// NewExtractor creates an Extractor using the default curated lexicon.
func NewExtractor() *Extractor {
	return NewExtractorWithLexicon(skills.Default())
}

// NewExtractorWithLexicon creates an Extractor with a custom lexicon.
func NewExtractorWithLexicon(lex *skills.Lexicon) *Extractor {
	return &Extractor{
		lexicon: lex,
		now:     time.Now,
	}
}

// Lexicon returns the lexicon the extractor was built with.
func (e *Extractor) Lexicon() *skills.Lexicon { return e.lexicon }

// ExtractRecord runs the full rule-based pipeline over cleaned resume text
// and assembles an unresolved record. Malformed or sparse input degrades to
// smaller output, never to an error.
func (e *Extractor) ExtractRecord(text string) *types.ResumeRecord {
	return &types.ResumeRecord{
		Skills:     e.ExtractSkills(text),
		Education:  e.ExtractEducation(text),
		Experience: e.ExtractExperience(text),
	}
}

// ExtractSkills produces the deduplicated skill list: structured entries
// from the skills section first, then lexicon hits from the whole document.
func (e *Extractor) ExtractSkills(text string) []string {
	section := Section(text, SkillsAliases)
	return skills.Extract(text, section, e.lexicon)
}
