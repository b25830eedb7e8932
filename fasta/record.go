package fasta

import "unicode/utf8"

// Record is one FASTA entry: an id, an optional description, and the
// concatenated sequence.
type Record struct {
	ID          string
	Description string
	Sequence    string
}

// Len returns the sequence length in Unicode code points, matching the
// column unit of seqmatrix.
func (r Record) Len() int { return utf8.RuneCountInString(r.Sequence) }

// String renders the record in FASTA form: ">id description\nsequence",
// with the description omitted when empty.
func (r Record) String() string {
	if r.Description != "" {
		return ">" + r.ID + " " + r.Description + "\n" + r.Sequence
	}

	return ">" + r.ID + "\n" + r.Sequence
}
