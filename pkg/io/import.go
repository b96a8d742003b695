package io

import (
	"encoding/csv"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/referlab/refnet/pkg/errors"
	"github.com/referlab/refnet/pkg/referral"
)

type edgeList struct {
	Referrals []edge `json:"referrals"`
}

type edge struct {
	Referrer  string `json:"referrer"`
	Candidate string `json:"candidate"`
}

// ReadJSON decodes a referral edge list from r into a fresh network.
//
// The input must be a JSON object with a "referrals" array; each entry needs
// "referrer" and "candidate" fields. Every referral is validated through
// [referral.Network.AddReferral], so malformed JSON fails with INVALID_FORMAT
// and a referral that violates network constraints fails with that edge named
// in the error.
//
// The returned network is independent of r and can be modified safely after
// ReadJSON returns. ReadJSON does not close r.
func ReadJSON(r io.Reader) (*referral.Network, error) {
	var data edgeList
	if err := json.NewDecoder(r).Decode(&data); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidFormat, err, "decode referral JSON")
	}

	n := referral.New()
	for _, e := range data.Referrals {
		if err := n.AddReferral(e.Referrer, e.Candidate); err != nil {
			return nil, errors.Wrap(errors.GetCode(err), err, "referral %s->%s", e.Referrer, e.Candidate)
		}
	}
	return n, nil
}

// ReadCSV decodes a two-column referral list from r into a fresh network.
// Each record is referrer then candidate; a leading "referrer,candidate"
// header row is skipped. Validation matches [ReadJSON].
func ReadCSV(r io.Reader) (*referral.Network, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = 2
	cr.TrimLeadingSpace = true

	n := referral.New()
	first := true
	for {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidFormat, err, "decode referral CSV")
		}
		if first {
			first = false
			if record[0] == "referrer" && record[1] == "candidate" {
				continue
			}
		}
		if err := n.AddReferral(record[0], record[1]); err != nil {
			return nil, errors.Wrap(errors.GetCode(err), err, "referral %s->%s", record[0], record[1])
		}
	}
	return n, nil
}

// ImportFile loads a referral network from path, choosing the decoder by
// file extension: .json for [ReadJSON], .csv for [ReadCSV]. Any other
// extension fails with UNSUPPORTED; a missing file fails with
// FILE_NOT_FOUND.
func ImportFile(path string) (*referral.Network, error) {
	var read func(io.Reader) (*referral.Network, error)
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		read = ReadJSON
	case ".csv":
		read = ReadCSV
	default:
		return nil, errors.New(errors.ErrCodeUnsupported, "unsupported file extension %q, want .json or .csv", filepath.Ext(path))
	}

	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "open %s", path)
		}
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "open %s", path)
	}
	defer f.Close()

	n, err := read(f)
	if err != nil {
		return nil, errors.Wrap(errors.GetCode(err), err, "import %s", path)
	}
	return n, nil
}
