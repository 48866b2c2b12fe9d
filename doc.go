/*
Package fsacheck validates descriptions of deterministic finite-state
automata (FSA).

An automaton is declared in five ordered groups: states, alphabet, initial
state, final states and transitions. The validator ingests them in that
order into a registry that rejects duplicates and dangling references,
detects nondeterministic and disjoint transitions, then checks that every
state is reachable from the initial one and that the transition function is
complete.

# Report

A run ends with exactly one of:

  - a single fatal error, printed verbatim (e.g. "Error:\nE2: Some states are disjoint");
  - "FSA is complete" or "FSA is incomplete", optionally followed by
    "Warning:" and the warnings sorted by text.

# Usage

	package main

	import (
		"context"
		"log"

		"github.com/aretw0/fsacheck"
		"github.com/aretw0/fsacheck/pkg/adapters/file"
	)

	func main() {
		v := fsacheck.New()

		rep, err := v.Run(context.Background(),
			file.NewSource("fsa.txt"),
			file.NewSink("result.txt"),
		)
		if err != nil {
			log.Fatal(err)
		}
		log.Print(rep)
	}
*/
package fsacheck
