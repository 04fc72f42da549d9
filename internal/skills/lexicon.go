// Package skills provides the curated skill lexicon and skill extraction from resume text.
package skills

import (
	"regexp"
	"sync"
)

// lexiconNames is the curated list of recognized skill names. Order matters:
// it determines the display rank used when merging skill lists across
// records. Append new skills to the relevant group; never reorder.
var lexiconNames = []string{
	// Programming Languages
	"Python", "Java", "JavaScript", "TypeScript", "C++", "C#", "Ruby", "PHP", "Swift",
	"Kotlin", "Go", "Rust", "Scala", "R", "MATLAB", "Perl", "Shell", "Bash", "PowerShell",

	// Web Development
	"HTML", "CSS", "React", "Angular", "Vue.js", "Node.js", "Express", "Django", "Flask",
	"Spring", "ASP.NET", "Ruby on Rails", "Laravel", "Symfony", "jQuery", "Bootstrap",
	"Tailwind CSS", "Material UI", "Redux", "GraphQL", "REST API", "SOAP",

	// Databases
	"SQL", "MySQL", "PostgreSQL", "MongoDB", "SQLite", "Oracle", "Microsoft SQL Server",
	"Redis", "Cassandra", "Elasticsearch", "DynamoDB", "Firebase", "Neo4j", "MariaDB",

	// Cloud & DevOps
	"AWS", "Azure", "Google Cloud", "Docker", "Kubernetes", "Jenkins", "Git", "GitHub",
	"GitLab", "Bitbucket", "CI/CD", "Terraform", "Ansible", "Puppet", "Chef", "Prometheus",
	"Grafana", "ELK Stack", "Serverless", "Microservices", "Cloud Architecture",

	// Data Science & AI
	"Machine Learning", "Deep Learning", "Data Analysis", "Data Science", "TensorFlow",
	"PyTorch", "Keras", "Scikit-learn", "Pandas", "NumPy", "SciPy", "NLTK", "NLP",
	"Computer Vision", "Big Data", "Hadoop", "Spark", "Tableau", "Power BI", "Data Visualization",

	// Mobile Development
	"Android", "iOS", "React Native", "Flutter", "Xamarin", "Ionic", "SwiftUI", "Kotlin Multiplatform",

	// Project Management & Methodologies
	"Agile", "Scrum", "Kanban", "Waterfall", "JIRA", "Confluence", "Trello", "Asana",
	"Project Management", "Product Management", "Lean", "Six Sigma",

	// Soft Skills
	"Leadership", "Communication", "Teamwork", "Problem Solving", "Critical Thinking",
	"Time Management", "Creativity", "Adaptability", "Emotional Intelligence", "Negotiation",

	// Testing & QA
	"Unit Testing", "Integration Testing", "Selenium", "Jest", "Mocha", "Cypress", "JUnit",
	"TestNG", "PyTest", "Test Automation", "Manual Testing", "QA", "TDD", "BDD",

	// Design
	"UI/UX Design", "Figma", "Adobe XD", "Sketch", "Photoshop", "Illustrator", "InDesign",
	"Wireframing", "Prototyping", "User Research",

	// Security
	"Cybersecurity", "Network Security", "Penetration Testing", "Ethical Hacking",
	"Security Auditing", "OWASP", "Encryption", "Authentication", "Authorization",
}

// Lexicon holds the curated skill list together with precompiled whole-word
// match patterns. It is immutable after construction and safe for concurrent
// use; build it once and pass it into every extraction call.
type Lexicon struct {
	names    []string
	patterns []*regexp.Regexp
	rank     map[string]int
}

// NewLexicon compiles a lexicon from the given skill names.
func NewLexicon(names []string) *Lexicon {
	lex := &Lexicon{
		names:    make([]string, len(names)),
		patterns: make([]*regexp.Regexp, len(names)),
		rank:     make(map[string]int, len(names)),
	}
	copy(lex.names, names)
	for i, name := range names {
		lex.patterns[i] = regexp.MustCompile(`(?i)\b` + regexp.QuoteMeta(name) + `\b`)
		if _, ok := lex.rank[name]; !ok {
			lex.rank[name] = i
		}
	}
	return lex
}

var (
	defaultLexicon     *Lexicon
	defaultLexiconOnce sync.Once
)

// Default returns the lexicon built from the curated skill list.
// Compilation happens once; the returned value is shared.
func Default() *Lexicon {
	defaultLexiconOnce.Do(func() {
		defaultLexicon = NewLexicon(lexiconNames)
	})
	return defaultLexicon
}

// Names returns a copy of the lexicon's skill names in rank order.
func (l *Lexicon) Names() []string {
	out := make([]string, len(l.names))
	copy(out, l.names)
	return out
}

// Len returns the number of skills in the lexicon.
func (l *Lexicon) Len() int { return len(l.names) }

// Rank returns the display rank of an exact skill name and whether the name
// is part of the lexicon.
func (l *Lexicon) Rank(name string) (int, bool) {
	r, ok := l.rank[name]
	return r, ok
}

// Scan returns the lexicon skills that occur in text as whole words,
// matched case-insensitively, in lexicon order.
func (l *Lexicon) Scan(text string) []string {
	var found []string
	for i, pattern := range l.patterns {
		if pattern.MatchString(text) {
			found = append(found, l.names[i])
		}
	}
	return found
}
