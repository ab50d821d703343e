/*
Package ports defines the driven ports (interfaces) of the markov engine.

These interfaces decouple the chain engine from the concrete state types it
walks over. The engine never inspects a payload directly: every state-specific
behavior passes through an Adapter supplied at Chain construction.

# Key Interfaces

  - Adapter: The five capabilities (clone, compare, print, release, is-terminal) over a payload type.
  - Hasher: Optional Adapter extension that lets the state database index payloads.
  - Source: The uniform integer generator consumed by the weighted selector.
*/
package ports
