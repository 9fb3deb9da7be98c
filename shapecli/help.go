package shapecli

import (
	"fmt"
	"path/filepath"

	"oss.terrastruct.com/util-go/xmain"

	"oss.terrastruct.com/shapes/lib/version"
)

func help(ms *xmain.State) {
	fmt.Fprintf(ms.Stdout, `%[1]s %[2]s
Usage:
  %[1]s [--erase] [--debug] [out.txt]
  %[1]s version

%[1]s builds a line, a rectangle, a square, a parallelogram and a rhombus from the
points (0, 0) and (1, 1), then draws, moves and rotates them in a fixed order.
Every draw is written as a line of text to out.txt, or to stdout when no path
or - is given.

Flags:
%[3]s
`, filepath.Base(ms.Name), version.Version, ms.Opts.Defaults())
}
