// main.go - fcopy: copy a file via mmap(2)
//
// (c) 2024 Sudhi Herle <sudhi@herle.net>
//
// Licensing Terms: GPLv2
//
// If you need a commercial license for this work, please contact
// the author.
//
// This software does not come with any express or implied
// warranty; it is provided "as is". No claim  is made to its
// suitability for any purpose.

package main

import (
	"fmt"
	"io"
	"os"
	"path"

	fcopy "github.com/opencoff/go-fcopy"
	"github.com/opencoff/go-logger"
	flag "github.com/opencoff/pflag"
)

var Z = path.Base(os.Args[0])

func main() {
	os.Exit(run(os.Args[1:], os.Stdout))
}

// run copies av[0] to av[1] and returns the process exit status:
// 0 on success and 1 on any failure.
func run(av []string, out io.Writer) int {
	var help, atomic, sync, xattr, verbose bool
	var logfile string

	fs := flag.NewFlagSet(Z, flag.ContinueOnError)

	fs.BoolVarP(&help, "help", "h", false, "Show help and exit [False]")
	fs.BoolVarP(&atomic, "atomic", "a", false, "Stage the copy in a temp file and rename on success [False]")
	fs.BoolVarP(&sync, "sync", "s", false, "Sync the destination to disk before closing [False]")
	fs.BoolVarP(&xattr, "xattr", "x", false, "Copy extended attributes [False]")
	fs.BoolVarP(&verbose, "verbose", "v", false, "Log at debug level [False]")
	fs.StringVarP(&logfile, "log", "l", "", "Log to file `F` (or STDOUT) [none]")

	fs.SetOutput(out)

	if err := fs.Parse(av); err != nil {
		return 1
	}

	if help {
		usage(fs, out)
		return 0
	}

	// never touch the filesystem without both names
	args := fs.Args()
	if len(args) != 2 {
		usage(fs, out)
		return 1
	}

	var opts []fcopy.Option
	if atomic {
		opts = append(opts, fcopy.WithAtomic())
	}
	if sync {
		opts = append(opts, fcopy.WithSync())
	}
	if xattr {
		opts = append(opts, fcopy.WithXattr())
	}

	var log logger.Logger
	if len(logfile) > 0 {
		prio := logger.LOG_INFO
		if verbose {
			prio = logger.LOG_DEBUG
		}

		var err error
		log, err = logger.NewLogger(logfile, prio, Z, logger.Ldate|logger.Ltime|logger.Lmicroseconds)
		if err != nil {
			fmt.Fprintf(out, "%s: logfile: %s\n", Z, err)
			return 1
		}
		defer log.Close()

		opts = append(opts, fcopy.WithLogger(log))
	}

	src, dst := args[0], args[1]
	if err := fcopy.CopyFile(dst, src, opts...); err != nil {
		if log != nil {
			log.Info("%s", err)
		}
		return 1
	}

	if log != nil {
		log.Info("copied %s to %s", src, dst)
	}
	return 0
}

func usage(fs *flag.FlagSet, out io.Writer) {
	fmt.Fprintf(out, usageStr, Z, Z)
	fs.PrintDefaults()
}

var usageStr = `%s - copy a file via a read-only memory map of the source.

The destination is created or truncated and gets the permission bits
of the source. Exit status is 0 on success and 1 on failure.

Usage: %s [options] SRC DST

Options:
`
