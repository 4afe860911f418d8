/*
Package ports defines the interfaces between the drive loop and its
collaborators: the step sequence being instrumented, the per-call observer,
and the clock.

Implementations live elsewhere (pkg/seq, pkg/adapters, pkg/observers,
internal/testutils); the core depends only on these contracts.
*/
package ports
