package service

import (
	"testing"

	"github.com/google/uuid"

	"task-board-api/internal/domain"
)

func makeColumn(n int) []*domain.Task {
	tasks := make([]*domain.Task, n)
	for i := 0; i < n; i++ {
		tasks[i] = &domain.Task{
			BaseModel: domain.BaseModel{ID: uuid.New()},
			Position:  i,
		}
	}
	return tasks
}

func assertDense(t *testing.T, tasks []*domain.Task) {
	t.Helper()
	seen := make(map[int]bool, len(tasks))
	for _, task := range tasks {
		if task.Position < 0 || task.Position >= len(tasks) {
			t.Fatalf("Position %d out of range [0, %d)", task.Position, len(tasks))
		}
		if seen[task.Position] {
			t.Fatalf("Duplicate position %d", task.Position)
		}
		seen[task.Position] = true
	}
}

func TestClampPosition(t *testing.T) {
	tests := []struct {
		name      string
		requested int
		count     int
		want      int
	}{
		{"negative clamps to zero", -5, 3, 0},
		{"zero stays zero", 0, 3, 0},
		{"within range", 2, 3, 2},
		{"at count appends", 3, 3, 3},
		{"beyond count clamps", 99, 3, 3},
		{"empty column", 7, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ClampPosition(tt.requested, tt.count); got != tt.want {
				t.Errorf("ClampPosition(%d, %d) = %d, want %d", tt.requested, tt.count, got, tt.want)
			}
		})
	}
}

func TestPlaceTask_InsertAtFront(t *testing.T) {
	siblings := makeColumn(3)
	moved := &domain.Task{BaseModel: domain.BaseModel{ID: uuid.New()}}

	changed := PlaceTask(siblings, moved, 0)

	if moved.Position != 0 {
		t.Errorf("Expected moved task at position 0, got %d", moved.Position)
	}
	// Every sibling shifts down by one
	if len(changed) != 3 {
		t.Fatalf("Expected 3 repositioned siblings, got %d", len(changed))
	}
	for i, task := range siblings {
		if task.Position != i+1 {
			t.Errorf("Sibling %d expected position %d, got %d", i, i+1, task.Position)
		}
	}
	assertDense(t, append(siblings, moved))
}

func TestPlaceTask_AppendAtEnd(t *testing.T) {
	siblings := makeColumn(3)
	moved := &domain.Task{BaseModel: domain.BaseModel{ID: uuid.New()}}

	changed := PlaceTask(siblings, moved, 3)

	if moved.Position != 3 {
		t.Errorf("Expected moved task at position 3, got %d", moved.Position)
	}
	if len(changed) != 0 {
		t.Errorf("Expected no repositioned siblings, got %d", len(changed))
	}
	assertDense(t, append(siblings, moved))
}

func TestPlaceTask_ReorderWithinColumn(t *testing.T) {
	siblings := makeColumn(4)
	// Move the last task to the front: the siblings slice already contains it
	moved := siblings[3]

	PlaceTask(siblings, moved, 0)

	if moved.Position != 0 {
		t.Errorf("Expected moved task at position 0, got %d", moved.Position)
	}
	assertDense(t, siblings)
	for i := 0; i < 3; i++ {
		if siblings[i].Position != i+1 {
			t.Errorf("Sibling %d expected position %d, got %d", i, i+1, siblings[i].Position)
		}
	}
}

func TestPlaceTask_OversizedPositionAppends(t *testing.T) {
	siblings := makeColumn(2)
	moved := &domain.Task{BaseModel: domain.BaseModel{ID: uuid.New()}}

	PlaceTask(siblings, moved, 50)

	if moved.Position != 2 {
		t.Errorf("Expected oversized position to clamp to 2, got %d", moved.Position)
	}
	assertDense(t, append(siblings, moved))
}

func TestPlaceTask_EmptyColumn(t *testing.T) {
	moved := &domain.Task{BaseModel: domain.BaseModel{ID: uuid.New()}}

	changed := PlaceTask(nil, moved, 5)

	if moved.Position != 0 {
		t.Errorf("Expected position 0 in empty column, got %d", moved.Position)
	}
	if len(changed) != 0 {
		t.Errorf("Expected no repositioned siblings, got %d", len(changed))
	}
}

func TestCompactPositions_RemovesGap(t *testing.T) {
	siblings := makeColumn(5)
	removed := siblings[2]

	changed := CompactPositions(siblings, removed.ID)

	// Tasks after the removed one shift up
	if len(changed) != 2 {
		t.Fatalf("Expected 2 repositioned siblings, got %d", len(changed))
	}
	if siblings[3].Position != 2 || siblings[4].Position != 3 {
		t.Errorf("Expected positions 2 and 3 after compaction, got %d and %d",
			siblings[3].Position, siblings[4].Position)
	}
}

func TestCompactPositions_RemovedNotPresent(t *testing.T) {
	siblings := makeColumn(3)

	changed := CompactPositions(siblings, uuid.New())

	if len(changed) != 0 {
		t.Errorf("Expected no changes when removed task is absent, got %d", len(changed))
	}
}
