package utils

import (
	"io"

	"github.com/davecgh/go-spew/spew"
)

var dumpConfig = &spew.ConfigState{
	Indent:                  "  ",
	DisableCapacities:       true,
	DisablePointerAddresses: true,
	SortKeys:                true,
}

// Fdump writes a deep, address free dump of the values to w.
func Fdump(w io.Writer, a ...interface{}) {
	dumpConfig.Fdump(w, a...)
}

func Sdump(a ...interface{}) string {
	return dumpConfig.Sdump(a...)
}
