/*
Package domain contains the core domain models shared by the markov engine and its hosts.

It defines the results of a random walk, the lifecycle events emitted while walking,
and the sentinel errors returned by the chain. This package is kept pure and free of
external dependencies like I/O or randomness.

# Key Entities

  - Walk: The recorded outcome of one generation (emitted states and why it stopped).
  - StopReason: Terminal state reached or length bound hit.
  - LifecycleHooks: Observability callbacks fired by the generation engine.
*/
package domain
