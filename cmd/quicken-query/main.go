// Package main provides the entry point for the quicken-query CLI application.
package main

import (
	"fjacquet/quicken-query/cmd/export"
	"fjacquet/quicken-query/cmd/list"
	"fjacquet/quicken-query/cmd/report"
	"fjacquet/quicken-query/cmd/root"
)

func main() {
	root.Init()

	root.Cmd.AddCommand(list.Cmd)
	root.Cmd.AddCommand(report.Cmd)
	root.Cmd.AddCommand(export.Cmd)

	if err := root.Cmd.Execute(); err != nil {
		root.Log.Fatal(err)
	}
}
