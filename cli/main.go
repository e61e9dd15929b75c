package main

import (
	"os"

	"github.com/vippsas/javacomments/cli/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
