package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func resetFlags(c *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	c.PersistentFlags().VisitAll(reset)
	c.Flags().VisitAll(reset)
	for _, sub := range c.Commands() {
		resetFlags(sub)
	}
}

func run(t *testing.T, stdin string, args ...string) (stdout string, stderr string, err error) {
	t.Helper()
	resetFlags(rootCmd)

	var out, errOut bytes.Buffer
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)
	rootCmd.SetArgs(args)
	err = rootCmd.Execute()
	return out.String(), errOut.String(), err
}

func writeFile(t *testing.T, dir, name, content string) string {
	p := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(p), 0o755))
	require.NoError(t, os.WriteFile(p, []byte(content), 0o644))
	return p
}

func TestRoot(t *testing.T) {
	t.Run("stdin", func(t *testing.T) {
		out, _, err := run(t, "int x; // hi\n")
		require.NoError(t, err)
		assert.Equal(t, strings.Repeat(" ", 10)+"hi\n", out)
	})

	t.Run("dash is stdin", func(t *testing.T) {
		out, _, err := run(t, "/* abc */", "-")
		require.NoError(t, err)
		assert.Equal(t, "  abc   ", out)
	})

	t.Run("file with preserved strings", func(t *testing.T) {
		p := writeFile(t, t.TempDir(), "A.java", `s = "a"; // c`)
		out, _, err := run(t, "", "--preserve-strings", p)
		require.NoError(t, err)
		assert.Equal(t, `    "a"     c`, out)
	})

	t.Run("missing file", func(t *testing.T) {
		_, _, err := run(t, "", filepath.Join(t.TempDir(), "Missing.java"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "cannot open")
	})

	t.Run("invalid utf-8", func(t *testing.T) {
		_, _, err := run(t, "// \xff\n")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "not valid UTF-8")
	})

	t.Run("empty comment", func(t *testing.T) {
		out, stderr, err := run(t, "/**/ x")
		require.NoError(t, err)
		assert.Equal(t, "   / x", out)
		assert.Contains(t, stderr, "input ends inside BlockComment")

		out, _, err = run(t, "/**/ x", "--close-empty-comments")
		require.NoError(t, err)
		assert.Equal(t, "      ", out)
	})

	t.Run("unterminated comment is a warning", func(t *testing.T) {
		out, stderr, err := run(t, "/* open")
		require.NoError(t, err)
		assert.Equal(t, "  open", out)
		assert.Contains(t, stderr, "input ends inside BlockComment")
	})

	t.Run("too many arguments", func(t *testing.T) {
		_, _, err := run(t, "", "a.java", "b.java")
		assert.Error(t, err)
	})
}

func TestRoot_Config(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "javacomments.yaml", "preserve_strings: true\nkeep_comment_decoration: true\nclose_empty_comments: true\n")

	out, _, err := run(t, `"x"`, "-d", dir)
	require.NoError(t, err)
	assert.Equal(t, `"x"`, out)

	out, _, err = run(t, `"x"`, "-d", dir, "--preserve-strings=false")
	require.NoError(t, err)
	assert.Equal(t, "   ", out)

	out, _, err = run(t, "", "config", "-d", dir, "--align-escapes")
	require.NoError(t, err)
	var cfg Config
	require.NoError(t, yaml.Unmarshal([]byte(out), &cfg))
	assert.Equal(t, Config{PreserveStrings: true, KeepCommentDecoration: true, CloseEmptyComments: true, AlignEscapes: true}, cfg)

	writeFile(t, dir, "javacomments.yaml", "preserve_strings: [")
	_, _, err = run(t, `"x"`, "-d", dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse")
}

func TestRegionsCmd(t *testing.T) {
	out, _, err := run(t, "a // b", "regions")
	require.NoError(t, err)
	assert.Equal(t, "<stdin>:1:1-1:3 Code \"a \"\n<stdin>:1:3-1:7 LineComment \"// b\"\n", out)

	out, _, err = run(t, "a // b", "regions", "--comments")
	require.NoError(t, err)
	assert.Equal(t, "<stdin>:1:3-1:7 LineComment \"// b\"\n", out)

	out, _, err = run(t, "a // b", "regions", "--yaml")
	require.NoError(t, err)
	var regions []struct {
		State string `yaml:"state"`
		Text  string `yaml:"text"`
		Start struct {
			Line, Col, Offset int
		} `yaml:"start"`
	}
	require.NoError(t, yaml.Unmarshal([]byte(out), &regions))
	require.Len(t, regions, 2)
	assert.Equal(t, "LineComment", regions[1].State)
	assert.Equal(t, "// b", regions[1].Text)
	assert.Equal(t, 3, regions[1].Start.Col)

	out, _, err = run(t, "a // b", "regions", "--comments", "--go")
	require.NoError(t, err)
	assert.Contains(t, out, "Region{")
	assert.Contains(t, out, `"// b"`)
	assert.NotContains(t, out, `"a "`)

	_, _, err = run(t, "\xff", "regions")
	assert.Error(t, err)
}

func TestTagsCmd(t *testing.T) {
	out, _, err := run(t, "/** @param x y {@link Z} */\nvoid f(int x);", "tags")
	require.NoError(t, err)
	assert.Equal(t, "<stdin>:1:5 @param x y {@link Z}\n<stdin>:1:16 {@link Z}\n", out)
}

func TestTreeAndHashCmd(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "A.java", "class A {} // a\n")
	writeFile(t, dir, "sub/B.java", "/** b */ class B {}\n")
	writeFile(t, dir, ".hidden/C.java", "// c\n")
	outDir := filepath.Join(t.TempDir(), "out")

	_, _, err := run(t, "", "tree", "-d", dir)
	assert.Error(t, err, "output directory is required")

	_, stderr, err := run(t, "", "tree", "-d", dir, "-o", outDir)
	require.NoError(t, err)
	assert.Contains(t, stderr, "wrote 2 files")

	got, err := os.ReadFile(filepath.Join(outDir, "sub", "B.java"))
	require.NoError(t, err)
	assert.Equal(t, "   b   "+strings.Repeat(" ", 11)+"\n", string(got))
	_, err = os.Stat(filepath.Join(outDir, ".hidden"))
	assert.True(t, os.IsNotExist(err))

	hash, _, err := run(t, "", "hash", "-d", dir)
	require.NoError(t, err)
	assert.Regexp(t, regexp.MustCompile(`^[0-9a-f]{16}\n$`), hash)

	again, _, err := run(t, "", "hash", "-d", dir)
	require.NoError(t, err)
	assert.Equal(t, hash, again)

	single, _, err := run(t, "", "hash", filepath.Join(dir, "A.java"))
	require.NoError(t, err)
	assert.NotEqual(t, hash, single)

	// a file named on the command line is scanned even under a dot directory
	hiddenOut := filepath.Join(t.TempDir(), "hidden")
	_, stderr, err = run(t, "", "tree", "-o", hiddenOut, filepath.Join(dir, ".hidden", "C.java"))
	require.NoError(t, err)
	assert.Contains(t, stderr, "wrote 1 files")
	assert.NotContains(t, stderr, "No Java files found")

	hidden, _, err := run(t, "", "hash", filepath.Join(dir, ".hidden", "C.java"))
	require.NoError(t, err)
	assert.NotEqual(t, single, hidden)
}
