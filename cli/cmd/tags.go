package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/vippsas/javacomments/javaparser"
)

var (
	tagsCmd = &cobra.Command{
		Use:   "tags [file|-]",
		Short: "List the Javadoc tags (@param, {@link ...}, ...) of a Java file",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := LoadConfig()
			if err != nil {
				return err
			}
			name, content, err := readInput(cmd, args)
			if err != nil {
				return err
			}

			regions := javaparser.Comments(javaparser.FileRef(name), content, scanOptions(cmd, cfg))
			for _, tag := range javaparser.JavadocTags(regions) {
				format := "%s:%d:%d @%s %s\n"
				if tag.Inline {
					format = "%s:%d:%d {@%s %s}\n"
				}
				fmt.Fprintf(cmd.OutOrStdout(), format, name, tag.Pos.Line, tag.Pos.Col, tag.Name, tag.Text)
			}
			return nil
		},
	}
)

func init() {
	rootCmd.AddCommand(tagsCmd)
}
