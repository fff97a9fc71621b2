package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pterm/pterm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const dataset = `work_year,experience_level,employment_type,job_title,salary_in_usd,company_location,company_size
2021,SE,FT,Data Scientist,100000,US,L
2022,MI,FT,Data Engineer,50000,GB,M
2022,EN,PT,Machine Learning Engineer,30000,IN,S
`

func TestMain(m *testing.M) {
	pterm.DisableColor()
	os.Exit(m.Run())
}

func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "ds.csv")
	require.NoError(t, os.WriteFile(path, []byte(dataset), 0o644))

	var out bytes.Buffer
	root := RootCmd()
	root.SetOut(&out)
	root.SetErr(&bytes.Buffer{})
	root.SetIn(strings.NewReader(stdin))
	root.SetArgs(append(args,
		"--config", filepath.Join(dir, "absent.yaml"),
		"--dataset", path,
		"--geo", "",
		"--log-level", "off",
		"--silence",
	))
	err := root.Execute()
	return out.String(), err
}

func TestExamples(t *testing.T) {
	out, err := execute(t, "", "examples")
	require.NoError(t, err)
	assert.Contains(t, out, "salarymap render --exp SE,EX --size L --min 150k")
}

func TestTitles(t *testing.T) {
	out, err := execute(t, "", "titles")
	require.NoError(t, err)
	assert.Equal(t, "Data Engineer\nData Scientist\nMachine Learning Engineer\n", out)

	out, err = execute(t, "", "titles", "engineer", "--limit", "1")
	require.NoError(t, err)
	assert.Equal(t, "Data Engineer\n", out)
}

func TestRender_WithFilterFlags(t *testing.T) {
	out, err := execute(t, "", "render", "--exp", "SE,MI", "--min", "60k")
	require.NoError(t, err)
	assert.Contains(t, out, "Data Scientist")
	assert.NotContains(t, out, "Data Engineer")
	assert.Contains(t, out, "Records:        1")
}

func TestRender_InvalidFilter(t *testing.T) {
	_, err := execute(t, "", "render", "--size", "XL")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown code "XL"`)
}

func TestExplore(t *testing.T) {
	out, err := execute(t, "", "explore")
	require.NoError(t, err)
	assert.Contains(t, out, "salarymap> ")

	out, err = execute(t, "click GB\nstate\nquit\n", "explore")
	require.NoError(t, err)
	assert.Contains(t, out, "Filters: country=GB")
}
