package main

import (
	"errors"
	"fmt"
	"io"
	"os"
)

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	err := newApp(args, stdin, stdout, stderr).Run(args)
	if err == nil {
		return 0
	}
	if !errors.Is(err, errUsage) {
		fmt.Fprintf(stderr, "error: %s\n", err)
	}
	return 1
}

func main() {
	os.Exit(run(os.Args, os.Stdin, os.Stdout, os.Stderr))
}
