package main

import (
	"os"

	"github.com/CloudFitSoftware/clean-code-exercises/internal/cli"
)

func main() {
	code, _ := cli.Run(os.Args, nil)
	os.Exit(code)
}
