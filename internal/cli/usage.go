package cli

import (
	"fmt"
	"io"
)

func printUsage(w io.Writer, program string) {
	fmt.Fprintf(w, "Usage: %s [ -cin ][ -ifstream=path ] [ -cout ][ -ofstream=path ]\n", program)
	fmt.Fprintf(w, "\n\tspecify a stream to read:\n")
	fmt.Fprintf(w, "\n\t-cin\t\t- standard input stream.\n")
	fmt.Fprintf(w, "\t-ifstream=path\t- where path is the path to the file from which to read.\n")
	fmt.Fprintf(w, "\n\tspecify a stream to write:\n")
	fmt.Fprintf(w, "\n\t-cout\t\t- standard output stream.\n")
	fmt.Fprintf(w, "\t-ofstream=path\t- where path is the path to the file to write to.\n\n")
	fmt.Fprintf(w, "Run %s --help for the full list of options.\n", program)
}

func printOpenFailure(w io.Writer, path string) {
	fmt.Fprintf(w, "Premature termination of the program.\n")
	fmt.Fprintf(w, "The file could not be opened at the specified path.\n")
	fmt.Fprintf(w, "\"%s\"\n", path)
}

// normalizeArgs rewrites single-dash long options such as -cin or
// -ifstream=path into the double-dash form understood by the parser.
func normalizeArgs(args []string) []string {
	out := make([]string, len(args))
	for i, arg := range args {
		out[i] = arg
		if len(arg) > 2 && arg[0] == '-' && isLetter(arg[1]) && isLetter(arg[2]) {
			out[i] = "-" + arg
		}
	}
	return out
}

func isLetter(c byte) bool {
	return ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z')
}
