package service

import (
	"github.com/google/uuid"

	"task-board-api/internal/domain"
)

// ClampPosition bounds a requested insertion position to the valid range
// for a column holding count tasks (0..count).
func ClampPosition(requested, count int) int {
	if requested < 0 {
		return 0
	}
	if requested > count {
		return count
	}
	return requested
}

// PlaceTask assigns the moved task its requested slot within the column and
// renumbers every sibling so positions stay dense (0..n-1, no gaps, no
// duplicates). The siblings slice is the column's current task list ordered
// by position; it may or may not already contain the moved task. Returns the
// siblings whose position changed, ready to be persisted alongside the task.
func PlaceTask(siblings []*domain.Task, moved *domain.Task, requested int) []*domain.Task {
	others := make([]*domain.Task, 0, len(siblings))
	for _, t := range siblings {
		if t.ID != moved.ID {
			others = append(others, t)
		}
	}

	moved.Position = ClampPosition(requested, len(others))

	changed := make([]*domain.Task, 0, len(others))
	pos := 0
	for _, t := range others {
		if pos == moved.Position {
			pos++
		}
		if t.Position != pos {
			t.Position = pos
			changed = append(changed, t)
		}
		pos++
	}
	return changed
}

// CompactPositions renumbers tasks sequentially after a removal so the
// remaining positions are again exactly {0..n-1}. Returns the tasks whose
// position changed.
func CompactPositions(siblings []*domain.Task, removedID uuid.UUID) []*domain.Task {
	changed := make([]*domain.Task, 0, len(siblings))
	pos := 0
	for _, t := range siblings {
		if t.ID == removedID {
			continue
		}
		if t.Position != pos {
			t.Position = pos
			changed = append(changed, t)
		}
		pos++
	}
	return changed
}
