/*
Package cli structures the diag command line around a flat set of sub-commands.

User-visible output goes to STDERR through a [Printer], unless a command's result is meant to be piped.
Flags are parsed with [pflag], are not interspersed with arguments, and belong to the command that declares them.
Every command responds to '-h' and '--help' with its usage.

Invocation always follows this form:

	diag SUB-COMMAND [FLAGS...] [ARGS...]

[pflag]: https://github.com/spf13/pflag
*/
package cli
