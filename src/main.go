package main

import (
	"os"

	"github.com/wgpuctl/wgpuctl/src/commands"
	"github.com/wgpuctl/wgpuctl/src/pkg/infrastructure/print"
)

var (
	version = "master"
)

func main() {
	if err := commands.Run(os.Args, version); err != nil {
		print.Erro(err)
		os.Exit(1)
	}
}
