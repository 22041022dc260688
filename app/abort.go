package app

import (
	"strings"

	"orbits/hal"
)

// abort reports an asset failure and halts. Nothing downstream may run with a
// missing texture, so this never returns.
func abort(l hal.Logger, err error) {
	if l != nil {
		l.WriteLineString("asset: Unable to load image. Make sure the path is correct.")
		for _, line := range strings.Split(err.Error(), "\n") {
			if line == "" {
				continue
			}
			l.WriteLineString("asset: " + line)
		}
	}
	panic(err)
}
