package segtree

// Get returns the resolved value at leaf i.
func (t *LazyTree[T, S]) Get(i int) (T, error) {
	if err := checkIndex(i, t.n); err != nil {
		var zero T
		return zero, err
	}
	p := t.size + i
	t.pushPath(p)
	return t.agg[p], nil
}

// Set overwrites the value at leaf i, discarding every action applied to it
// so far.
func (t *LazyTree[T, S]) Set(i int, value T) error {
	if err := checkIndex(i, t.n); err != nil {
		return err
	}
	p := t.size + i
	t.pushPath(p)
	t.agg[p] = value
	for p >>= 1; p >= 1; p >>= 1 {
		t.pull(p)
	}
	return nil
}
