package linspace

import "strings"

// BlockString renders every block's extended form ("label=start:stop")
// joined by ";". An empty space renders as "".
func (s *BlockSpace) BlockString() string {
	parts := make([]string, len(s.blocks))
	for i, b := range s.blocks {
		parts[i] = b.ExtendedString()
	}

	return strings.Join(parts, ";")
}

// CompressedString renders every block's compressed form ("label=length")
// joined by ";". An empty space renders as "".
func (s *BlockSpace) CompressedString() string {
	parts := make([]string, len(s.blocks))
	for i, b := range s.blocks {
		parts[i] = b.CompressedString()
	}

	return strings.Join(parts, ";")
}

// ArrayString expands every block to its label-prefixed comma position list
// ("label=p1,p2,...") and joins the blocks with ";". An empty space renders
// as "".
func (s *BlockSpace) ArrayString() string {
	parts := make([]string, len(s.blocks))
	for i, b := range s.blocks {
		parts[i] = b.ArrayString()
	}

	return strings.Join(parts, ";")
}

// SimpleBlockString is BlockString restricted to spaces whose blocks all
// share one label; any second label fails with ErrMixedLabels.
func (s *BlockSpace) SimpleBlockString() (string, error) {
	if err := s.requireSingleLabel(); err != nil {
		return "", err
	}

	return s.BlockString(), nil
}

// SimpleArrayString is ArrayString restricted to spaces whose blocks all
// share one label; any second label fails with ErrMixedLabels.
func (s *BlockSpace) SimpleArrayString() (string, error) {
	if err := s.requireSingleLabel(); err != nil {
		return "", err
	}

	return s.ArrayString(), nil
}

func (s *BlockSpace) requireSingleLabel() error {
	for _, b := range s.blocks {
		if b.Label != s.blocks[0].Label {
			return ErrMixedLabels
		}
	}

	return nil
}

// String renders the extended block form.
func (s *BlockSpace) String() string { return s.BlockString() }
