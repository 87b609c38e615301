package export_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"pitchbot/internal/domain"
	"pitchbot/internal/enrichment"
	"pitchbot/internal/export"
)

func reportTestData() (domain.ParsedResumeData, map[string]string) {
	parsed := domain.NewParsedResumeData()
	parsed.Add("EDUCATION", []domain.ParsedItem{
		{Title: "B.Tech AI", Subtitle: "College X", Date: "2022-2026"},
	})
	parsed.Add("PROJECTS", []domain.ParsedItem{
		{Title: "Game Solver", Description: "Minimax engine"},
		{Title: "Chat App"},
	})
	enrichments := map[string]string{
		enrichment.Key("PROJECTS", 0): "Built solo over a weekend",
	}
	return parsed, enrichments
}

func TestWriteWorkbook_RowsAndEnrichments(t *testing.T) {
	parsed, enrichments := reportTestData()

	var buf bytes.Buffer
	err := export.WriteWorkbook(&buf, parsed, enrichments)
	require.NoError(t, err)

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	rows, err := f.GetRows("Knowledge Base")
	require.NoError(t, err)
	require.Len(t, rows, 4)

	assert.Equal(t, []string{"Section", "Item #", "Title", "Subtitle", "Date", "Description", "Additional User Context"}, rows[0])

	assert.Equal(t, "EDUCATION", rows[1][0])
	assert.Equal(t, "B.Tech AI", rows[1][2])
	assert.Equal(t, "College X", rows[1][3])
	assert.Equal(t, "2022-2026", rows[1][4])

	assert.Equal(t, "PROJECTS", rows[2][0])
	assert.Equal(t, "1", rows[2][1])
	assert.Equal(t, "Game Solver", rows[2][2])
	assert.Equal(t, "Built solo over a weekend", rows[2][6])

	assert.Equal(t, "Chat App", rows[3][2])
}

func TestWriteWorkbook_EmptyParse(t *testing.T) {
	var buf bytes.Buffer
	err := export.WriteWorkbook(&buf, domain.NewParsedResumeData(), nil)
	require.NoError(t, err)

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	rows, err := f.GetRows("Knowledge Base")
	require.NoError(t, err)
	require.Len(t, rows, 1)
}
