// Package main provides the dualdiff CLI.
package main

import (
	"fmt"
	"os"

	"k8s.io/klog/v2"

	"github.com/born-ml/dualdiff/internal/cli"
)

func main() {
	err := cli.NewRootCommand().Execute()
	klog.Flush()
	if err != nil {
		fmt.Fprintf(os.Stderr, "dualdiff: %v\n", err)
		os.Exit(1)
	}
}
