package qc

// kmerTable counts read prefixes of a fixed length. When limit > 0 it stops
// admitting new prefixes once limit distinct ones are tracked; counts of
// admitted prefixes stay exact.
type kmerTable struct {
	k       int
	limit   int
	counts  map[string]int64
	dropped int64
}

func newKmerTable(k, limit int) *kmerTable {
	hint := 1 << 12
	if limit > 0 && limit < hint {
		hint = limit
	}
	return &kmerTable{k: k, limit: limit, counts: make(map[string]int64, hint)}
}

func (t *kmerTable) add(seq []byte) {
	if len(seq) < t.k {
		return
	}
	prefix := seq[:t.k]
	// map lookup with string(bytes) does not allocate
	if _, ok := t.counts[string(prefix)]; ok {
		t.counts[string(prefix)]++
		return
	}
	if t.limit > 0 && len(t.counts) >= t.limit {
		t.dropped++
		return
	}
	t.counts[string(prefix)] = 1
}
