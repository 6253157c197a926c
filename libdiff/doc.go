// Package libdiff computes structural differences between bencode trees.
//
// A diff is a list of changes, each addressed by a path from the root:
// $ is the root, .name or ["name"] selects a dictionary entry and [i]
// selects a list element. Lists are aligned by content, so an element
// inserted at the front of a list is reported as one insertion rather
// than a change to every element after it.
package libdiff
