package cmd

import (
	"fmt"

	"github.com/alecthomas/repr"
	"github.com/spf13/cobra"
	"github.com/vippsas/javacomments/javaparser"
	"gopkg.in/yaml.v3"
)

var (
	regionsYAML         bool
	regionsGo           bool
	regionsCommentsOnly bool

	regionsCmd = &cobra.Command{
		Use:   "regions [file|-]",
		Short: "List the lexical regions (code, comments, literals) of a Java file with their positions",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := setupLogger(cmd)
			cfg, err := LoadConfig()
			if err != nil {
				return err
			}
			name, content, err := readInput(cmd, args)
			if err != nil {
				return err
			}

			opts := scanOptions(cmd, cfg)
			regions := javaparser.Regions(javaparser.FileRef(name), content, opts)
			if regionsCommentsOnly {
				regions = javaparser.Comments(javaparser.FileRef(name), content, opts)
			}
			logger.Debugf("%s: %d regions", name, len(regions))

			out := cmd.OutOrStdout()
			if regionsGo {
				_, err := fmt.Fprintln(out, repr.String(regions, repr.Indent("\t")))
				return err
			}
			if regionsYAML {
				enc := yaml.NewEncoder(out)
				defer enc.Close()
				return enc.Encode(regions)
			}
			for _, r := range regions {
				fmt.Fprintf(out, "%s:%d:%d-%d:%d %s %q\n",
					name, r.Start.Line, r.Start.Col, r.Stop.Line, r.Stop.Col, r.State, r.Text)
			}
			return nil
		},
	}
)

func init() {
	regionsCmd.Flags().BoolVar(&regionsYAML, "yaml", false, "print regions as YAML")
	regionsCmd.Flags().BoolVar(&regionsGo, "go", false, "print regions as Go literals, for pasting into tests")
	regionsCmd.Flags().BoolVar(&regionsCommentsOnly, "comments", false, "only list comment regions")
	rootCmd.AddCommand(regionsCmd)
}
