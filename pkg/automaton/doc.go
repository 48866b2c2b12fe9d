/*
Package automaton implements the registry of a deterministic finite-state
automaton under construction.

The Registry owns the states, the alphabet, the initial and final states and
the transition table. Every insertion enforces its local invariants (no
duplicates, references must already be registered) and reports per-edge
facts (nondeterminism, disconnection) through its return values, so callers
never keep shadow bookkeeping of their own.

A registry is built in two passes: states and alphabet first, then Seal
sizes the transition table, then transitions are added.
*/
package automaton
