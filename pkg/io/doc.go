// Package io provides JSON and CSV import for referral networks.
//
// # JSON Format
//
// The input is a JSON object with a single required "referrals" array:
//
//	{
//	  "referrals": [
//	    {"referrer": "alice", "candidate": "bob"},
//	    {"referrer": "bob", "candidate": "charlie"}
//	  ]
//	}
//
// # CSV Format
//
// Two columns, referrer then candidate, one referral per row. A leading
// header row of exactly "referrer,candidate" is skipped:
//
//	referrer,candidate
//	alice,bob
//	bob,charlie
//
// # Import
//
// Use [ImportFile] to load either format by file extension, or [ReadJSON]
// and [ReadCSV] to read from any io.Reader. All three validate every
// referral through the network's own rules, so a file that self-refers,
// re-refers a candidate, or closes a cycle fails with the offending edge
// named in the error.
//
// The returned network is independent of the input and can be modified
// freely after import. None of the readers close their reader.
package io
