// Command argq answers questions about an argument vector using getarg's
// rules, which makes it handy for shell scripts:
//
//	argq bool verbose -- "$@"
//	argq int port --default 8080 -- "$@"
//	argq dump --json -- "$@"
package main

import (
	"os"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}
