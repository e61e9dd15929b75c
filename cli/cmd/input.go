package cmd

import (
	"io"
	"io/fs"
	"os"
	"unicode/utf8"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/vippsas/javacomments"
	"github.com/vippsas/javacomments/go/mapfs"
)

const stdinName = "<stdin>"

// openInput opens the file named by the only argument, or stdin when there
// is none or it is "-"
func openInput(cmd *cobra.Command, args []string) (name string, r io.Reader, closer func(), err error) {
	if len(args) == 0 || args[0] == "-" {
		return stdinName, cmd.InOrStdin(), func() {}, nil
	}
	f, err := os.Open(args[0])
	if err != nil {
		return "", nil, nil, errors.Wrapf(err, "cannot open %s", args[0])
	}
	return args[0], f, func() { _ = f.Close() }, nil
}

// readInput is like openInput but reads everything, and fails for input
// that is not UTF-8 text
func readInput(cmd *cobra.Command, args []string) (name string, content string, err error) {
	name, r, closer, err := openInput(cmd, args)
	if err != nil {
		return "", "", err
	}
	defer closer()

	buf, err := io.ReadAll(r)
	if err != nil {
		return "", "", errors.Wrapf(err, "cannot read %s", name)
	}
	if !utf8.Valid(buf) {
		return "", "", errors.Errorf("%s: input is not valid UTF-8", name)
	}
	return name, string(buf), nil
}

// treeInput is the filesystem walked by tree and hash: the files given as
// arguments, or else the --directory
func treeInput(cmd *cobra.Command, args []string) (fs.FS, javacomments.Options, error) {
	cfg, err := LoadConfig()
	if err != nil {
		return nil, javacomments.Options{}, err
	}
	opts := extractOptions(cmd, cfg)
	opts.Logger = setupLogger(cmd)

	if len(args) == 0 {
		return os.DirFS(directory), opts, nil
	}
	m, err := mapfs.New(args...)
	if err != nil {
		return nil, javacomments.Options{}, err
	}
	// files named explicitly are scanned whatever their extension or path
	opts.Include = []string{"**"}
	opts.Exclude = nil
	opts.IncludeHidden = true
	return m, opts, nil
}
