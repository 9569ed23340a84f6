// Package primality orchestrates batched Miller-Rabin testing and prime
// searches on top of the bigint arithmetic, with bounded concurrency,
// structured logging and Prometheus instrumentation.
package primality
