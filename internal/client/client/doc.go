// Package client contains the client-side transport to the AstroProof backend.
//
// # Overview
//
// The package provides:
//  1. Narrow collaborator interfaces used by the client services:
//     LedgerReader, LedgerPublisher, ProofReader, PassMinter, BlobStore
//     and UsageCounter. Client bundles them with session management.
//  2. A concrete gRPC implementation (see GRPCClient) that manages a
//     connection, injects the access token via an interceptor, reconnects
//     the current identity when the token expires, and maps gRPC status
//     codes to sentinel errors.
//  3. Local persistence bootstrap (InitDatabase, RunMigrations) wiring an
//     SQLite database and applying embedded goose migrations.
//
// # Error Handling
//
// Status codes map back to the sentinels in internal/common: InvalidArgument
// to common.ErrValidation, NotFound to common.ErrorNotFound, Unauthenticated
// to ErrUnauthorized. Transport failures (Unavailable, DeadlineExceeded) and
// anything unexpected wrap common.ErrFetch.
//
// The client is safe for concurrent use.
package client
