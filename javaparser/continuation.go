package javaparser

// absorbContinuationMarker runs right after a newline inside a block comment,
// and right after a comment opener, and drops the conventional decoration of
// comment bodies:
//
//	/**
//	 * text      <- " * " is consumed, "text" passes through
//	 */         <- " */" is consumed and closes the comment
//
// Leading spaces and tabs are consumed, then one `*`, then either a `/`
// (which closes the comment; the return value is true) or a single space.
// Nothing is emitted for the consumed characters, so decorated lines do not
// keep their original columns.
func (s *Scanner) absorbContinuationMarker() (closed bool) {
	for s.peekIs(0, ' ') || s.peekIs(0, '\t') {
		s.skip(1)
	}
	if !s.peekIs(0, '*') {
		return false
	}
	s.skip(1)
	if s.peekIs(0, '/') {
		s.skip(1)
		return true
	}
	if s.peekIs(0, ' ') {
		s.skip(1)
	}
	return false
}
