/*
Package forest provides read-only walks over parse forests.

A parse forest, as returned by pwz.Parse, is a list of result trees. Every node
of a result tree holds a completed *pwz.Expr. Clients usually want to create an
AST from one of the trees, or compute a value directly. This is done by
walking a tree with a Cursor, applying a Listener:

    cursor := forest.NewCursor(trees[0])
    value := cursor.TopDown(myListener, forest.LtoR, forest.Continue)

If a forest holds more than one tree, the input was ambiguous. Selecting a tree
is up to the client; Signature helps to tell trees apart (and to check that
repeated parses produce the same forest).

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package forest

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'pwz.forest'.
func tracer() tracing.Trace {
	return tracing.Select("pwz.forest")
}
