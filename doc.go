// Package divitrek turns a raw, append-only ledger of brokerage transactions
// and dividend payouts into a consistent per-asset income picture.
//
// The core functionalities include:
//   - Ledger Normalization: classifying free-text broker activity rows into
//     typed actions (buy, sell, cash dividend, reinvested dividend) through an
//     ordered, extensible rule table.
//   - Position Tracking: folding the full ledger into per-asset share counts
//     and cost basis on every run, with no stored intermediate state to drift.
//   - Income Aggregation: trailing-twelve-month totals and a gap-free,
//     zero-filled monthly dividend history per asset.
//   - Cadence Inference: estimating each asset's payment frequency and next
//     expected payment date from its payment history, with declared schedule
//     data taking precedence whenever it is available.
//   - Forecasting: a 12-month forward income projection per asset, each cell
//     tagged with its provenance (declared or inferred).
//
// Every computation is a pure function of an immutable ledger snapshot, an
// optional price snapshot and an optional declared-dividend schedule, all
// threaded through an explicit as-of date. Persistence, price retrieval and
// presentation are collaborator concerns; this package serves as the
// foundational logic for the `dvt` command-line tool.
package divitrek
