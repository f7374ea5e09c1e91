package memstore

// heapItem is one iterator's current record, ordered so the merge in
// compact() sees the newest version of each key first.
type heapItem struct {
	it    *sstableIter
	key   string
	seq   int
	kind  kind
	value string
}

type iterHeap []*heapItem

func (h iterHeap) Len() int { return len(h) }

func (h iterHeap) Less(i, j int) bool {
	if h[i].key != h[j].key {
		return h[i].key < h[j].key
	}
	return h[i].seq > h[j].seq
}

func (h iterHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *iterHeap) Push(x any) {
	*h = append(*h, x.(*heapItem))
}

func (h *iterHeap) Pop() any {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]
	return item
}
