package javaparser

// Regions splits input into maximal runs of characters classified under one
// State. Delimiters are part of the region they open or close, so a line
// comment region includes its `//` and the newline ending it.
//
// With continuation-marker absorption enabled (the default), the decoration
// consumed after a newline belongs to the block comment region as well.
func Regions(file FileRef, input string, opts Options) []Region {
	s := NewScanner(file, input, opts)

	var result []Region
	var cur Region
	started := false
	for {
		start := s.Pos()
		if !s.Step() {
			break
		}
		stop := s.Pos()
		if started && cur.State == s.unit {
			cur.Stop = stop
			continue
		}
		if started {
			result = append(result, cur)
		}
		cur = Region{State: s.unit, Start: start, Stop: stop}
		started = true
	}
	if started {
		result = append(result, cur)
	}

	for i := range result {
		result[i].Text = input[result[i].Start.Offset:result[i].Stop.Offset]
	}
	return result
}

// Comments returns only the comment regions of input.
func Comments(file FileRef, input string, opts Options) []Region {
	var result []Region
	for _, r := range Regions(file, input, opts) {
		if r.State.IsComment() {
			result = append(result, r)
		}
	}
	return result
}
