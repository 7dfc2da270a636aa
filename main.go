package main

import (
	"os"

	"github.com/HukumaM/analyzer-frequency-of-occurrence/internal/cli"
)

// analyzer -ifstream=english.txt -ofstream=english.log
func main() {
	os.Exit(cli.Run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}
