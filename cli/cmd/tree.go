package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/vippsas/javacomments"
)

var (
	treeOutput string

	treeCmd = &cobra.Command{
		Use:   "tree [files...] -o outdir",
		Short: "Extract comments from every .java file under --directory (or the given files) into outdir",
		RunE: func(cmd *cobra.Command, args []string) error {
			if treeOutput == "" {
				_ = cmd.Help()
				return errors.New("need to specify an output directory with -o")
			}
			fsys, opts, err := treeInput(cmd, args)
			if err != nil {
				return err
			}

			doc, err := javacomments.Extract(opts, fsys)
			if err != nil {
				return err
			}
			if doc.Empty() {
				fmt.Fprintln(cmd.ErrOrStderr(), "No Java files found in given paths")
				return nil
			}
			if err := javacomments.WriteTree(doc, treeOutput); err != nil {
				return err
			}
			opts.Logger.WithField("fingerprint", doc.Fingerprint).Infof("wrote %d files to %s", len(doc.Files), treeOutput)
			return nil
		},
	}
)

func init() {
	treeCmd.Flags().StringVarP(&treeOutput, "output", "o", "", "directory to write the extracted files to")
	rootCmd.AddCommand(treeCmd)
}
