/*
Package observers provides ready-made observer factories: structured logging
(slog), prometheus metrics, redis pub/sub publishing, plain writers, a
fan-out combinator, and a live-call tracker backing the HTTP status surface.

All of them follow the factory-per-call pattern: state belongs to one call's
observer instance, never to a shared handler.
*/
package observers
