// Command switchdemo renders and drives a switch from a style document.
//
//	switchdemo render --config style.yaml --out switch.png
//	switchdemo frames --config style.yaml --dir frames/ --fps 60
//	switchdemo tui --config style.yaml
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
