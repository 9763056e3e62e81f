package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
)

func getTestMetrics() *Metrics {
	return NewWithRegistry(prometheus.NewRegistry(), nil)
}

func TestIncrementBoardCreated(t *testing.T) {
	m := getTestMetrics()

	initialValue := getCounterValue(t, m.BoardCreatedTotal)
	m.IncrementBoardCreated()

	newValue := getCounterValue(t, m.BoardCreatedTotal)
	if newValue <= initialValue {
		t.Errorf("Expected counter to increment, got %f -> %f", initialValue, newValue)
	}
}

func TestIncrementTaskCreated(t *testing.T) {
	m := getTestMetrics()

	initialValue := getCounterValue(t, m.TaskCreatedTotal)
	m.IncrementTaskCreated()

	newValue := getCounterValue(t, m.TaskCreatedTotal)
	if newValue <= initialValue {
		t.Errorf("Expected counter to increment, got %f -> %f", initialValue, newValue)
	}
}

func TestIncrementTaskMoved(t *testing.T) {
	m := getTestMetrics()

	m.IncrementTaskMoved()
	m.IncrementTaskMoved()

	if got := getCounterValue(t, m.TaskMovedTotal); got != 2 {
		t.Errorf("Expected TaskMovedTotal to be 2, got %f", got)
	}
}

func TestIncrementWipLimitRejected(t *testing.T) {
	m := getTestMetrics()

	m.IncrementWipLimitRejected()

	if got := getCounterValue(t, m.WipLimitRejectedTotal); got != 1 {
		t.Errorf("Expected WipLimitRejectedTotal to be 1, got %f", got)
	}
}

func TestWorkflowCounters(t *testing.T) {
	m := getTestMetrics()

	m.IncrementWorkflowRuleExecuted()
	m.IncrementWorkflowRuleExecuted()
	m.IncrementWorkflowRuleFailed()
	m.IncrementWorkflowEventDropped()

	if got := getCounterValue(t, m.WorkflowRuleExecutedTotal); got != 2 {
		t.Errorf("Expected WorkflowRuleExecutedTotal to be 2, got %f", got)
	}
	if got := getCounterValue(t, m.WorkflowRuleFailedTotal); got != 1 {
		t.Errorf("Expected WorkflowRuleFailedTotal to be 1, got %f", got)
	}
	if got := getCounterValue(t, m.WorkflowEventDroppedTotal); got != 1 {
		t.Errorf("Expected WorkflowEventDroppedTotal to be 1, got %f", got)
	}
}

func TestSetWorkflowQueueDepth(t *testing.T) {
	m := getTestMetrics()

	tests := []struct {
		name  string
		depth int
	}{
		{"empty queue", 0},
		{"partial queue", 17},
		{"full queue", 256},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m.SetWorkflowQueueDepth(tt.depth)
			value := getGaugeValue(t, m.WorkflowQueueDepth)
			if value != float64(tt.depth) {
				t.Errorf("Expected gauge value %d, got %f", tt.depth, value)
			}
		})
	}
}

func TestSetBoardsTotal(t *testing.T) {
	m := getTestMetrics()

	tests := []struct {
		name  string
		count int64
	}{
		{"zero boards", 0},
		{"one board", 1},
		{"multiple boards", 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m.SetBoardsTotal(tt.count)
			value := getGaugeValue(t, m.BoardsTotal)
			if value != float64(tt.count) {
				t.Errorf("Expected gauge value %d, got %f", tt.count, value)
			}
		})
	}
}

func TestSetTasksTotal(t *testing.T) {
	m := getTestMetrics()

	m.SetTasksTotal(42)
	if got := getGaugeValue(t, m.TasksTotal); got != 42 {
		t.Errorf("Expected TasksTotal to be 42, got %f", got)
	}
}

// Helper function to get counter value
func getCounterValue(t *testing.T, counter prometheus.Counter) float64 {
	t.Helper()
	metric := &dto.Metric{}
	if err := counter.Write(metric); err != nil {
		t.Fatalf("Failed to write counter metric: %v", err)
	}
	return metric.Counter.GetValue()
}

// Helper function to get gauge value
func getGaugeValue(t *testing.T, gauge prometheus.Gauge) float64 {
	t.Helper()
	metric := &dto.Metric{}
	if err := gauge.Write(metric); err != nil {
		t.Fatalf("Failed to write gauge metric: %v", err)
	}
	return metric.Gauge.GetValue()
}
