/*
Package lcrs implements persistent left-child/right-sibling trees and a zipper
view onto them.

A Node has exactly two outgoing links: down to its first child and right to its
next sibling. Nodes are never mutated after construction; every edit allocates
fresh nodes and shares the untouched remainder of the tree. This makes it cheap
to keep thousands of slightly different views onto the same grammar tree alive
at the same time, which is what a derivative parser does.

A Zipper adds the two backward links: up to a reconstructed parent (with its
down link severed) and left to the reconstructed left sibling (with its right
and up links severed). Navigating with Right, Left, Down and Up never touches
the underlying tree.

Cycles

Trees built from recursive grammars are in fact graphs. Cycles are expressed with
an Arena of slots and loop markers pointing into slots:

    a := lcrs.NewArena()
    slot := a.Reserve()
    self := a.Ref(slot)                       // placeholder for the node under construction
    n := lcrs.NewNode("S", lcrs.NewNode("a"), self)
    a.Fill(slot, n)                           // tie the knot

Whenever navigation lands on a loop marker, the zipper substitutes the node stored
in the marker's slot, keeping the marker's own right sibling. Landing on a marker
whose slot has not been filled is a programming error and panics.

Identities

Every node carries three identities: a fresh id per allocation, the id of the
node it was originally copied from, and a "previous" id which survives value
rewrites and duplication. Clients use the latter as a stable key for the logical
position within the tree.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package lcrs

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'pwz.lcrs'.
func tracer() tracing.Trace {
	return tracing.Select("pwz.lcrs")
}
