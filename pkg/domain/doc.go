/*
Package domain contains the core domain models of the fsacheck validator.

It defines the vocabulary shared by the registry, the validation engine and
the adapters: declaration groups, transitions, the error taxonomy and the
warnings a run may accumulate. This package is kept pure and free of I/O.

# Key Entities

  - Declarations: the five ordered declaration groups of one automaton.
  - Transition: a (from, symbol, to) triple parsed from a "f>a>t" token.
  - ValidationError: a fatal failure, carrying a Kind sentinel for errors.Is.
  - Warning: a non-fatal finding reported after the verdict.
*/
package domain
