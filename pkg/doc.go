// Package pkg provides the core libraries for refnet referral analytics.
//
// # Overview
//
// Refnet models who-referred-whom networks and the incentives that grow them.
// The pkg directory is organized into five areas:
//
//  1. [referral] - The referral graph: mutation rules, reach, and rankings
//  2. [growth] - Growth simulation and bonus optimization
//  3. [io] - JSON and CSV import of referral edge lists
//  4. [report] - The load → analyze → export pipeline
//  5. [errors] / [observability] - Shared error codes and instrumentation hooks
//
// # Architecture
//
// The typical data flow through refnet:
//
//	JSON/CSV referral file
//	         ↓
//	    [io] package (parse and validate edges)
//	         ↓
//	    [referral] package (graph queries and rankings)
//	         ↓
//	    [report] package (assemble and export results)
//
// The [growth] package stands alone: it models hypothetical future referrals
// rather than a recorded network.
//
// # Quick Start
//
// Load a network and rank its referrers:
//
//	import (
//	    "fmt"
//	    "github.com/referlab/refnet/pkg/io"
//	)
//
//	n, err := io.ImportFile("referrals.json")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for _, r := range n.TopReferrers(10) {
//	    fmt.Println(r.User, r.Score)
//	}
//
// [referral]: github.com/referlab/refnet/pkg/referral
// [growth]: github.com/referlab/refnet/pkg/growth
// [io]: github.com/referlab/refnet/pkg/io
// [report]: github.com/referlab/refnet/pkg/report
// [errors]: github.com/referlab/refnet/pkg/errors
// [observability]: github.com/referlab/refnet/pkg/observability
package pkg
