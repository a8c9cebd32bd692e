/*
Package invariant provides checks for internal consistency constraints that should never fail outside of a bug in this module.

A failed check panics with the label and the location of the caller.
To remove checks entirely, build with the 'noinvariant' flag.
*/
package invariant
