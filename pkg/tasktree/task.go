package tasktree

// task is one open, unresolved progress line.
// Mutable
type task struct {
	// rowOffset is the number of terminal rows between this task's line and
	// the bottom of the printed region. 0 means the task owns the last
	// printed line.
	rowOffset int
}

// taskStack holds the open tasks ordered root-first. Only the deepest task
// may be ended. Callers must hold the owning tree's mutex for every
// operation.
// Mutable
type taskStack struct {
	tasks []task
}

// push makes room for a new bottom line: every open task moves one row
// further from the bottom, then the new task is appended at offset 0.
func (s *taskStack) push() {
	for i := range s.tasks {
		s.tasks[i].rowOffset++
	}
	s.tasks = append(s.tasks, task{})
}

// pop removes and returns the deepest task. ok is false when no task is
// open; the caller falls back to a plain, non-positional print.
func (s *taskStack) pop() (t task, ok bool) {
	if len(s.tasks) == 0 {
		return task{}, false
	}
	t = s.tasks[len(s.tasks)-1]
	s.tasks = s.tasks[:len(s.tasks)-1]
	return t, true
}

func (s *taskStack) size() int {
	return len(s.tasks)
}

// offsets returns the rowOffset of every open task, root first.
func (s *taskStack) offsets() []int {
	out := make([]int, len(s.tasks))
	for i, t := range s.tasks {
		out[i] = t.rowOffset
	}
	return out
}
