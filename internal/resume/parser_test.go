package resume_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pitchbot/internal/resume"
)

func TestParser_ParseText_EducationAndProjects(t *testing.T) {
	p := resume.NewParser(nil)

	data := p.ParseText("EDUCATION\nB.Tech AI\nCollege X\n2022-2026\n\nPROJECTS\nGame Solver\n")

	require.Equal(t, []string{"EDUCATION", "PROJECTS"}, data.SectionOrder)

	edu := data.Sections["EDUCATION"]
	require.Len(t, edu, 1)
	assert.Equal(t, "B.Tech AI - College X", edu[0].Title)
	assert.Equal(t, "2022-2026", edu[0].Date)

	projects := data.Sections["PROJECTS"]
	require.Len(t, projects, 1)
	assert.Equal(t, "Game Solver", projects[0].Title)
	assert.Empty(t, projects[0].Date)
}

func TestParser_ParseText_NoRecognizedHeaders(t *testing.T) {
	p := resume.NewParser(nil)

	data := p.ParseText("just some free text\nwith no sections at all")

	assert.True(t, data.Empty())
	assert.Zero(t, data.TotalItems())
}

func TestParser_ParseText_EmptyInput(t *testing.T) {
	p := resume.NewParser(nil)

	assert.True(t, p.ParseText("").Empty())
	assert.True(t, p.ParseText("   \n\n  ").Empty())
}

func TestParser_ParseText_WorkExperienceFoldsIntoExperience(t *testing.T) {
	p := resume.NewParser(nil)

	data := p.ParseText("WORK EXPERIENCE\nSoftware Engineer at Initech\nJan 2023\n")

	require.Contains(t, data.Sections, "EXPERIENCE")
	assert.NotContains(t, data.Sections, "WORK EXPERIENCE")

	exp := data.Sections["EXPERIENCE"]
	require.Len(t, exp, 1)
	assert.Equal(t, "Software Engineer at Initech", exp[0].Title)
	assert.Equal(t, "Jan 2023", exp[0].Date)
}

func TestParser_ParseText_CaseInsensitiveHeaders(t *testing.T) {
	p := resume.NewParser(nil)

	data := p.ParseText("education\nBSc Physics\nUni Y\n\nSkills\nGo, SQL\n")

	assert.Contains(t, data.Sections, "EDUCATION")
	assert.Contains(t, data.Sections, "SKILLS")
}

func TestParser_ParseText_MultipleBlocksPerSection(t *testing.T) {
	p := resume.NewParser(nil)

	data := p.ParseText("EXPERIENCE\nEngineer at A\n2020 - 2022\n\nIntern at B\nMay 2019\n")

	exp := data.Sections["EXPERIENCE"]
	require.Len(t, exp, 2)
	assert.Equal(t, "Engineer at A", exp[0].Title)
	assert.Equal(t, "2020 - 2022", exp[0].Date)
	assert.Equal(t, "Intern at B", exp[1].Title)
	assert.Equal(t, "May 2019", exp[1].Date)
}

func TestParser_ParseText_YearRangeWinsOverMonthYear(t *testing.T) {
	p := resume.NewParser(nil)

	data := p.ParseText("EXPERIENCE\nEngineer at A\nJan 2020, full range 2020-2023\n")

	exp := data.Sections["EXPERIENCE"]
	require.Len(t, exp, 1)
	assert.Equal(t, "2020-2023", exp[0].Date)
}

func TestParser_ParseText_PresentRange(t *testing.T) {
	p := resume.NewParser(nil)

	data := p.ParseText("EXPERIENCE\nEngineer at A\n2021 - Present\n")

	assert.Equal(t, "2021 - Present", data.Sections["EXPERIENCE"][0].Date)
}

func TestParser_ParseText_AdjacentHeadersGetFallbackItem(t *testing.T) {
	p := resume.NewParser(nil)

	data := p.ParseText("SKILLS\nEDUCATION\nB.Sc\nUni Z\n")

	skills := data.Sections["SKILLS"]
	require.Len(t, skills, 1)
	// Span between the two headers is empty; the section name stands in.
	assert.Equal(t, "SKILLS", skills[0].Title)

	edu := data.Sections["EDUCATION"]
	require.Len(t, edu, 1)
	assert.Equal(t, "B.Sc - Uni Z", edu[0].Title)
}

func TestParser_ParseText_EducationSingleLine(t *testing.T) {
	p := resume.NewParser(nil)

	data := p.ParseText("EDUCATION\nSelf-taught\n")

	edu := data.Sections["EDUCATION"]
	require.Len(t, edu, 1)
	assert.Equal(t, "Self-taught", edu[0].Title)
}

func TestParser_ParseText_Idempotent(t *testing.T) {
	p := resume.NewParser(nil)
	text := "EDUCATION\nB.Tech AI\nCollege X\n2022-2026\n\nPROJECTS\nGame Solver\n"

	first := p.ParseText(text)
	second := p.ParseText(text)

	assert.Equal(t, first, second)
}

func TestParser_Parse_ImplementsPort(t *testing.T) {
	p := resume.NewParser(nil)

	data, err := p.Parse(context.Background(), "PROJECTS\nChess Engine\n")

	require.NoError(t, err)
	assert.Equal(t, "Chess Engine", data.Sections["PROJECTS"][0].Title)
}

func TestParser_ParseText_HeaderMidLineIgnored(t *testing.T) {
	p := resume.NewParser(nil)

	// Headers only match at the start of a line.
	data := p.ParseText("I have lots of EXPERIENCE with parsers")

	assert.True(t, data.Empty())
}

func TestParser_ParseText_CustomVocabulary(t *testing.T) {
	p := resume.NewParser(resume.Vocabulary{
		{Token: "TALKS", Canonical: "TALKS"},
	})

	data := p.ParseText("TALKS\nGopherCon lightning talk\n\nEDUCATION\nignored\n")

	assert.Contains(t, data.Sections, "TALKS")
	assert.NotContains(t, data.Sections, "EDUCATION")
}
