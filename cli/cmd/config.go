package cmd

import (
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/vippsas/javacomments"
	"github.com/vippsas/javacomments/javaparser"
	"gopkg.in/yaml.v3"
)

const configFilename = "javacomments.yaml"

type Config struct {
	PreserveStrings       bool     `yaml:"preserve_strings"`
	KeepCommentDecoration bool     `yaml:"keep_comment_decoration"`
	CloseEmptyStrings     bool     `yaml:"close_empty_strings"`
	CloseEmptyComments    bool     `yaml:"close_empty_comments"`
	AlignEscapes          bool     `yaml:"align_escapes"`
	Include               []string `yaml:"include,omitempty"`
	Exclude               []string `yaml:"exclude,omitempty"`
}

// LoadConfig reads javacomments.yaml from the --directory; the file is
// optional.
func LoadConfig() (Config, error) {
	var result Config

	filename := filepath.Join(directory, configFilename)
	yamlFile, err := os.ReadFile(filename)
	if os.IsNotExist(err) {
		return Config{}, nil
	}
	if err != nil {
		return Config{}, errors.Wrap(err, "failed to read config")
	}
	err = yaml.Unmarshal(yamlFile, &result)
	if err != nil {
		return Config{}, errors.Wrapf(err, "failed to parse %s", filename)
	}
	return result, nil
}

// scanOptions merges the config file with the flags; flags given on the
// command line win
func scanOptions(cmd *cobra.Command, cfg Config) javaparser.Options {
	pick := func(flag string, fromFlag, fromConfig bool) bool {
		if cmd.Flags().Changed(flag) {
			return fromFlag
		}
		return fromConfig
	}
	return javaparser.Options{
		PreserveStrings:       pick("preserve-strings", preserveStrings, cfg.PreserveStrings),
		KeepCommentDecoration: pick("keep-comment-decoration", keepCommentDecoration, cfg.KeepCommentDecoration),
		CloseEmptyStrings:     pick("close-empty-strings", closeEmptyStrings, cfg.CloseEmptyStrings),
		CloseEmptyComments:    pick("close-empty-comments", closeEmptyComments, cfg.CloseEmptyComments),
		AlignEscapes:          pick("align-escapes", alignEscapes, cfg.AlignEscapes),
	}
}

func extractOptions(cmd *cobra.Command, cfg Config) javacomments.Options {
	return javacomments.Options{
		Scan:    scanOptions(cmd, cfg),
		Include: cfg.Include,
		Exclude: cfg.Exclude,
	}
}

var (
	configCmd = &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration, after applying javacomments.yaml and flags",
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) != 0 {
				_ = cmd.Help()
				return errors.New("too many arguments")
			}
			cfg, err := LoadConfig()
			if err != nil {
				return err
			}
			opts := scanOptions(cmd, cfg)
			cfg.PreserveStrings = opts.PreserveStrings
			cfg.KeepCommentDecoration = opts.KeepCommentDecoration
			cfg.CloseEmptyStrings = opts.CloseEmptyStrings
			cfg.CloseEmptyComments = opts.CloseEmptyComments
			cfg.AlignEscapes = opts.AlignEscapes

			enc := yaml.NewEncoder(cmd.OutOrStdout())
			defer enc.Close()
			return enc.Encode(cfg)
		},
	}
)

func init() {
	rootCmd.AddCommand(configCmd)
}
