// Package cli provides the interactive AstroProof command-line client.
//
// It wires configuration, local storage, the backend client and the
// application services into a REPL. Typical flow: resume or connect an
// identity, draft a reading, seal it under a passphrase and publish its
// fingerprints, then verify it later from the proof id.
//
// Commands:
//   - connect / disconnect
//   - read: draft a reading, optionally seal and publish it
//   - verify: open a sealed reading and check it against its proof
//   - proof: show the public part of a proof
//   - access / buy: show the current tier, buy a pass
//   - list: readings sealed from this machine
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
package cli
