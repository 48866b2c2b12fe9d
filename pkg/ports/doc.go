/*
Package ports defines the driven ports (interfaces) of the fsacheck engine.

These interfaces decouple the validation core from where declarations come
from and where reports go, so the same engine serves files, HTTP requests
and MCP tool calls.

# Key Interfaces

  - Source: produces the five declaration groups of one automaton.
  - Sink: accepts the final report of one run.
*/
package ports
