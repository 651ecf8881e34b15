// Package store provides SQLite-backed storage for conformance run logs.
//
// Every `textwire test --db` invocation records one run per scenario:
//   - Runs: scenario name, start time, pass flag and failure messages
//   - Run events: one row per evaluated case, in trace order
//
// # Patterns
//
// Content-addressed run IDs:
//   - A run's ID is a name-based UUID over its scenario, start time and
//     canonical trace snapshot
//   - Recording the same run twice is a no-op (ON CONFLICT DO NOTHING)
//
// Logical ordering:
//   - Runs are ordered by their insertion seq, never by timestamp text
//   - Events are ordered by their trace seq
//
// Timestamps are stored as millisecond Unix timestamp strings in TEXT
// columns via unixtime.Millis, so they round-trip exactly.
//
// # Database Configuration
//
//   - WAL mode: Concurrent reads during writes
//   - synchronous=NORMAL: Balance durability/performance
//   - busy_timeout=5000: Wait for locks up to 5 seconds
//   - foreign_keys=ON: Enforce referential integrity
package store
