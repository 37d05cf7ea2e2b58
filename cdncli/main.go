// Copyright 2026 Microsoft. All rights reserved.
// MIT License

package main

import (
	"github.com/Azure/azure-cdn-cli/cdncli/cmd"
	"github.com/spf13/cobra"
)

// version is populated by make during build.
var version string

func main() {
	rootCmd, closeLog, err := cmd.NewRootCmd(version)
	cobra.CheckErr(err)
	err = rootCmd.Execute()
	closeLog()
	cobra.CheckErr(err)
}
