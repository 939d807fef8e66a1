package game

// punishmentCycle is the fixed cyclic sequence of punishment labels.
var punishmentCycle = [8]int{10, 10, 9, 9, 8, 8, 2, 2}

// PunishmentQueue is a deterministic cyclic ledger of punishment submissions.
// It is unrelated to card play outcomes; the engine never calls Submit
// itself, orchestration belongs to the hosting application.
type PunishmentQueue struct {
	cursor int
	queue  []int
}

// NewPunishmentQueue returns an empty queue with the cursor at the start of
// the cycle.
func NewPunishmentQueue() *PunishmentQueue {
	return &PunishmentQueue{}
}

// Submit appends the current cursor's label to the visible queue and advances
// the cursor. The cycle-closing "2" (the eighth label) clears the entire
// visible queue within the same call, after appending — the "return all
// previously submitted cards" reset. The first "2" stays in the queue; the
// cursor advances regardless.
func (q *PunishmentQueue) Submit() {
	label := punishmentCycle[q.cursor]
	q.queue = append(q.queue, label)
	q.cursor = (q.cursor + 1) % len(punishmentCycle)
	if label == 2 && q.cursor == 0 {
		q.queue = q.queue[:0]
	}
}

// Cards returns a copy of the visible queue in submission order.
func (q *PunishmentQueue) Cards() []int {
	out := make([]int, len(q.queue))
	copy(out, q.queue)
	return out
}

// Len returns the number of labels currently visible.
func (q *PunishmentQueue) Len() int {
	return len(q.queue)
}
