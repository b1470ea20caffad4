package worker

// InOrder drains results and calls emit in ascending Index order, holding
// back results that arrive early. Indices must be 0, 1, 2, ... with no
// gaps; anything still held when results closes (because a gap was never
// filled) is emitted in index order at the end. emit returning false
// stops delivery, but results is still drained.
func InOrder(results <-chan ProcessResult, emit func(ProcessResult) bool) {
	pending := make(map[int]ProcessResult)
	next := 0
	open := true

	for r := range results {
		if !open {
			continue
		}
		pending[r.Index] = r
		for {
			ready, ok := pending[next]
			if !ok {
				break
			}
			delete(pending, next)
			next++
			if !emit(ready) {
				open = false
				break
			}
		}
	}

	for open && len(pending) > 0 {
		if ready, ok := pending[next]; ok {
			delete(pending, next)
			open = emit(ready)
		}
		next++
	}
}
