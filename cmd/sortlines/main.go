// Command sortlines sorts lines of text stably.
//
//	sortlines --by width --then natural names.txt
//	sortlines --reverse --dump < words.txt
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "sortlines:", err)
		os.Exit(1)
	}
}
