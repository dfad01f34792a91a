/*
Package diag is a toolkit for checking program invariants during development, and for declaring which copy and move operations a type supports.

  - [github.com/saylorsolutions/diag/debug] provides condition checks, unreachable markers, and debug logging that are removed from builds with the nodebug tag.
  - [github.com/saylorsolutions/diag/capability] provides marker types that declare whether a struct may be copied or moved, and resolves what those declarations mean for a type.
  - [github.com/saylorsolutions/diag/capability/capcheck] is an analyzer that reports copies and moves that a type's declarators forbid.

The cmd/capcheck and cmd/diag commands expose the analyzer and capability resolution on the command line.
*/
package diag
