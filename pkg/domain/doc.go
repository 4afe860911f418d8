/*
Package domain contains the core types of the breakpoint instrumentation
layer: the Breakpoint event delivered to observers, the Yield pair emitted by
progress-aware step sequences, and the sentinel errors shared across the
module.

Types here are pure data. They carry no behavior beyond small accessors so
that adapters (observers, process runners, HTTP surfaces) can depend on them
without pulling in the drive loop.
*/
package domain
