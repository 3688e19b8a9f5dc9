package cmd

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeTestConfig writes a config file into a temp dir and returns its path.
// History is pointed at the same temp dir so tests never touch the working
// directory.
func writeTestConfig(t *testing.T, historyEnabled bool) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := fmt.Sprintf(`
warn_threshold: 10000
log_level: error
history:
  enabled: %t
  db_path: %s
`, historyEnabled, filepath.Join(dir, "history.db"))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

// makeProjectTree creates the Project/README.md + src/main.x fixture.
func makeProjectTree(t *testing.T) string {
	t.Helper()
	root := filepath.Join(t.TempDir(), "Project")
	require.NoError(t, os.MkdirAll(filepath.Join(root, "src"), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(root, "README.md"), []byte("readme"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(root, "src", "main.x"), []byte("main"), 0644))
	return root
}

func executeCommand(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	root := NewRootCommand()

	var out, errOut bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetIn(new(bytes.Buffer))
	root.SetArgs(args)

	err := root.Execute()
	return out.String(), errOut.String(), err
}

func TestGenerateToStdout(t *testing.T) {
	root := makeProjectTree(t)
	cfgPath := writeTestConfig(t, false)

	out, _, err := executeCommand(t,
		"generate", "--quiet", "--no-metadata", "--config", cfgPath, root)
	require.NoError(t, err)

	expected := `<root name="Project" text="Root directory">
  <folder name="src">
    <file name="main.x" />
  </folder>
  <file name="README.md" />
</root>
`
	assert.Equal(t, expected, out)
}

func TestGenerateToOutputFile(t *testing.T) {
	root := makeProjectTree(t)
	cfgPath := writeTestConfig(t, false)
	outPath := filepath.Join(t.TempDir(), "structure.xml")

	stdout, _, err := executeCommand(t,
		"generate", "--quiet", "--no-metadata", "--config", cfgPath, "-o", outPath, root)
	require.NoError(t, err)

	assert.Empty(t, stdout, "document goes to the file, not stdout")

	data, err := os.ReadFile(outPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), `<file name="main.x" />`)
	assert.Contains(t, string(data), "</root>\n")
}

func TestGenerateWithMetadataAttributes(t *testing.T) {
	root := makeProjectTree(t)
	cfgPath := writeTestConfig(t, false)

	out, _, err := executeCommand(t, "generate", "--quiet", "--config", cfgPath, root)
	require.NoError(t, err)

	// Attribute order is fixed: name, size, modified
	assert.Regexp(t, `<file name="README\.md" size="6" modified="\d{1,2}/\d{1,2}/\d{4}" />`, out)
}

func TestGenerateMissingDirectory(t *testing.T) {
	cfgPath := writeTestConfig(t, false)

	_, _, err := executeCommand(t,
		"generate", "--quiet", "--config", cfgPath, filepath.Join(t.TempDir(), "gone"))
	assert.Error(t, err)
}

func TestGenerateRejectsFileArgument(t *testing.T) {
	cfgPath := writeTestConfig(t, false)
	file := filepath.Join(t.TempDir(), "plain.txt")
	require.NoError(t, os.WriteFile(file, []byte("x"), 0644))

	_, _, err := executeCommand(t, "generate", "--quiet", "--config", cfgPath, file)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not a directory")
}

func TestGenerateRecordsHistory(t *testing.T) {
	root := makeProjectTree(t)
	cfgPath := writeTestConfig(t, true)

	_, _, err := executeCommand(t, "generate", "--quiet", "--config", cfgPath, root)
	require.NoError(t, err)

	out, _, err := executeCommand(t, "history", "--config", cfgPath)
	require.NoError(t, err)

	assert.Contains(t, out, root)
	assert.Contains(t, out, "3 entries") // src, main.x, README.md
	assert.Contains(t, out, "stdout")
}

func TestGenerateMalformedConfig(t *testing.T) {
	root := makeProjectTree(t)
	cfgPath := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("warn_threshold: [oops\n"), 0644))

	_, _, err := executeCommand(t, "generate", "--quiet", "--config", cfgPath, root)
	assert.Error(t, err)
}

func TestConfirmPrompt(t *testing.T) {
	tests := []struct {
		input    string
		expected bool
	}{
		{"y\n", true},
		{"Y\n", true},
		{"yes\n", true},
		{"n\n", false},
		{"\n", false},
		{"", false},
		{"anything else\n", false},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("%q", tt.input), func(t *testing.T) {
			var prompt bytes.Buffer
			ok, err := confirmPrompt(bytes.NewBufferString(tt.input), &prompt)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, ok)
			assert.Contains(t, prompt.String(), "[y/N]")
		})
	}
}

func TestOutputDestination(t *testing.T) {
	assert.Equal(t, "stdout", outputDestination(""))
	assert.Equal(t, "out.xml", outputDestination("out.xml"))
}
