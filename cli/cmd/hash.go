package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/vippsas/javacomments"
)

var (
	hashCmd = &cobra.Command{
		Use:   "hash [files...]",
		Short: "Compute a fingerprint of the comments under --directory (or of the given files)",
		RunE: func(cmd *cobra.Command, args []string) error {
			fsys, opts, err := treeInput(cmd, args)
			if err != nil {
				return err
			}
			doc, err := javacomments.Extract(opts, fsys)
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), doc.Fingerprint)
			return nil
		},
	}
)

func init() {
	rootCmd.AddCommand(hashCmd)
}
