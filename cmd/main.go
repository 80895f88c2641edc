package main

import (
	"fmt"
	"os"

	"github.com/rony4d/issuance-audit/cmd/issuance-audit/launcher"
)

func main() {
	if err := launcher.Launch(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "fatal:", err)
		os.Exit(1)
	}
}
