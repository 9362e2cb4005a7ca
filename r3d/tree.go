package r3d

import (
	"fmt"
	"io"
)

// DumpTree writes the hierarchy below o as a numbered tree:
//
//	1 boat
//	    ├── 2 hull
//	    └── 3 tiger
func (o *Object) DumpTree(w io.Writer) error {
	counter := 1
	return o.dumpTree(w, &counter, "", true)
}

func (o *Object) dumpTree(w io.Writer, counter *int, prefix string, isLast bool) error {
	connector := ""
	if prefix != "" {
		if isLast {
			connector = "└── "
		} else {
			connector = "├── "
		}
	}

	label := fmt.Sprint(*counter)
	if o.name != "" {
		label += " " + o.name
	}
	if !o.display {
		label += " (hidden)"
	}
	*counter++

	if _, err := fmt.Fprintf(w, "%s%s%s\n", prefix, connector, label); err != nil {
		return err
	}

	childPrefix := prefix + "    "
	if !isLast {
		childPrefix = prefix + "│   "
	}
	for i, c := range o.childs {
		if err := c.dumpTree(w, counter, childPrefix, i == len(o.childs)-1); err != nil {
			return err
		}
	}
	return nil
}
