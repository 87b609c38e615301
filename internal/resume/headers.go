package resume

// HeaderAlias maps a recognized section header token to its canonical name.
// Matching is case-insensitive; tokens with the same canonical name are folded
// together (e.g. WORK EXPERIENCE -> EXPERIENCE).
type HeaderAlias struct {
	Token     string
	Canonical string
}

// Vocabulary is the ordered set of recognized section headers. Longer tokens
// must come before their prefixes so that "WORK EXPERIENCE" wins over
// "EXPERIENCE" during alternation matching.
type Vocabulary []HeaderAlias

// DefaultVocabulary returns the built-in resume section header set. Extending
// the recognized headers is a data change here, not a parser change.
func DefaultVocabulary() Vocabulary {
	return Vocabulary{
		{Token: "WORK EXPERIENCE", Canonical: "EXPERIENCE"},
		{Token: "PROJECTS", Canonical: "PROJECTS"},
		{Token: "EXPERIENCE", Canonical: "EXPERIENCE"},
		{Token: "EDUCATION", Canonical: "EDUCATION"},
		{Token: "SKILLS", Canonical: "SKILLS"},
		{Token: "AWARDS", Canonical: "AWARDS"},
		{Token: "CERTIFICATIONS", Canonical: "CERTIFICATIONS"},
		{Token: "PUBLICATIONS", Canonical: "PUBLICATIONS"},
		{Token: "INTERNSHIPS", Canonical: "INTERNSHIPS"},
		{Token: "HACKATHONS", Canonical: "HACKATHONS"},
		{Token: "LEADERSHIP", Canonical: "LEADERSHIP"},
	}
}
