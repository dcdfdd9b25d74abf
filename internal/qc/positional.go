package qc

// posCounts is one read offset's worth of counters.
type posCounts struct {
	total   int64
	a, t    int64
	g, c    int64
	n       int64
	qualSum int64
}

// positional holds one slot per read offset seen so far. It only grows, and
// slot i is only touched by reads longer than i.
type positional []posCounts

func (p *positional) grow(n int) {
	if n <= len(*p) {
		return
	}
	if n <= cap(*p) {
		*p = (*p)[:n]
		return
	}
	next := make(positional, n, max(n, 2*cap(*p)))
	copy(next, *p)
	*p = next
}

func (p *positional) add(seq, qual []byte) {
	p.grow(len(seq))
	slots := *p
	for i, b := range seq {
		s := &slots[i]
		s.total++
		switch b &^ 0x20 { // ASCII upper-case
		case 'A':
			s.a++
		case 'T':
			s.t++
		case 'G':
			s.g++
		case 'C':
			s.c++
		case 'N':
			s.n++
		}
		if i < len(qual) {
			s.qualSum += int64(qual[i])
		}
	}
}
