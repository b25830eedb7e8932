// Package fasta reads FASTA-formatted sequence data into plain records — the
// external collaborator feeding seqmatrix construction.
//
// Parsing rules:
//
//   - A line starting with ">" begins a new record: the first
//     whitespace-delimited token after ">" is the id, the remainder of the
//     line (if any) is the description.
//   - A line starting with ";" is a comment and belongs to no sequence.
//   - Every other line is trimmed and appended to the current record's
//     sequence.
//   - The in-progress record is flushed when a new ">" line starts or at end
//     of input; lines before the first header are ignored.
//
// Records carry no logic beyond their FASTA string form; Sequences projects
// the sequence strings in input order, ready for seqmatrix.New.
package fasta
