package cmd

import (
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/vippsas/javacomments/javaparser"
)

var (
	rootCmd = &cobra.Command{
		Use:          "javacomments [file|-]",
		Short:        "javacomments",
		SilenceUsage: true,
		Args:         cobra.MaximumNArgs(1),
		Long: `Extracts comments from Java source. All code is replaced by spaces, so every
comment stays on the line and column it was found at. Reads standard input
when no file or "-" is given, and writes to standard output.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := setupLogger(cmd)
			cfg, err := LoadConfig()
			if err != nil {
				return err
			}
			opts := scanOptions(cmd, cfg)

			name, r, closer, err := openInput(cmd, args)
			if err != nil {
				return err
			}
			defer closer()

			logger.Debugf("reading %s", name)
			state, err := javaparser.ScanReader(javaparser.FileRef(name), r, cmd.OutOrStdout(), opts)
			if err != nil {
				return errors.Wrapf(err, "failed to extract comments from %s", name)
			}
			warnUnterminated(logger, name, state)
			return nil
		},
	}

	directory string
	verbose   bool

	preserveStrings       bool
	keepCommentDecoration bool
	closeEmptyStrings     bool
	closeEmptyComments    bool
	alignEscapes          bool
)

// Execute executes the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&directory, "directory", "d", ".", "directory holding javacomments.yaml, and the tree scanned by tree and hash")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "print debug messages to stderr")
	rootCmd.PersistentFlags().BoolVar(&preserveStrings, "preserve-strings", false, "keep string and text block contents instead of masking them")
	rootCmd.PersistentFlags().BoolVar(&keepCommentDecoration, "keep-comment-decoration", false, "do not strip the leading ' * ' of block comment lines")
	rootCmd.PersistentFlags().BoolVar(&closeEmptyStrings, "close-empty-strings", false, `treat "" as a closed empty string`)
	rootCmd.PersistentFlags().BoolVar(&closeEmptyComments, "close-empty-comments", false, "treat /**/ as a closed empty comment")
	rootCmd.PersistentFlags().BoolVar(&alignEscapes, "align-escapes", false, "emit two characters for escape sequences so columns stay aligned")
}

func setupLogger(cmd *cobra.Command) logrus.FieldLogger {
	logger := logrus.StandardLogger()
	logger.SetOutput(cmd.ErrOrStderr())
	if verbose {
		logger.SetLevel(logrus.DebugLevel)
	} else {
		logger.SetLevel(logrus.InfoLevel)
	}
	return logger
}

func warnUnterminated(logger logrus.FieldLogger, name string, state javaparser.State) {
	if state != javaparser.CodeState {
		logger.WithField("file", name).Warnf("input ends inside %s", state)
	}
}
