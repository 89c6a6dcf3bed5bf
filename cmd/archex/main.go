// Command archex extracts ARCH archives: it decodes hex dumps of the
// container format and reverses the per-payload transforms (zlib, LZMA,
// fernet) recorded in each entry. The process subcommand applies a single
// transform outside of any archive.
package main

import (
	"os"

	"github.com/archex/archex/cli"
)

func main() {
	os.Exit(cli.Run(os.Args[1:]))
}
