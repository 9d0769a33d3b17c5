// Package networth provides the types and operations to maintain a personal
// net-worth ledger: dated snapshots of balances recorded against named
// financial items, grouped into categories.
//
// The core functionalities include:
//   - Registries: categories (display name plus search keywords) and
//     financial items (name, category, liquidity, asset or liability type)
//     with stable identifiers that are never reused.
//   - Snapshot Store: a chronological collection of dated balance records,
//     supporting carry-forward entry, balance corrections and per-item
//     history queries.
//   - Reconciliation: edits that would leave dangling references are
//     rejected; items with history are soft-deleted rather than removed;
//     duplicate items can be merged without losing balances.
//   - Aggregation: per-date totals (assets, liabilities, net worth),
//     per-category subtotals, and restartable time series for charting.
//   - Data Persistence: encoding and decoding the whole book to a single
//     human-readable JSON document, with every integrity violation reported
//     on load.
//
// This package serves as the foundational logic for the `nwt` command-line
// tool; it performs no prompting, rendering or file management itself.
package networth
