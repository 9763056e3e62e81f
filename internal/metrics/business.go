package metrics

// IncrementBoardCreated increments board creation counter
func (m *Metrics) IncrementBoardCreated() {
	m.safeExecute("IncrementBoardCreated", func() {
		m.BoardCreatedTotal.Inc()
	})
}

// IncrementTaskCreated increments task creation counter
func (m *Metrics) IncrementTaskCreated() {
	m.safeExecute("IncrementTaskCreated", func() {
		m.TaskCreatedTotal.Inc()
	})
}

// IncrementTaskMoved increments completed task move counter
func (m *Metrics) IncrementTaskMoved() {
	m.safeExecute("IncrementTaskMoved", func() {
		m.TaskMovedTotal.Inc()
	})
}

// IncrementWipLimitRejected increments WIP limit rejection counter
func (m *Metrics) IncrementWipLimitRejected() {
	m.safeExecute("IncrementWipLimitRejected", func() {
		m.WipLimitRejectedTotal.Inc()
	})
}

// IncrementWorkflowRuleExecuted increments workflow rule execution counter
func (m *Metrics) IncrementWorkflowRuleExecuted() {
	m.safeExecute("IncrementWorkflowRuleExecuted", func() {
		m.WorkflowRuleExecutedTotal.Inc()
	})
}

// IncrementWorkflowRuleFailed increments workflow rule failure counter
func (m *Metrics) IncrementWorkflowRuleFailed() {
	m.safeExecute("IncrementWorkflowRuleFailed", func() {
		m.WorkflowRuleFailedTotal.Inc()
	})
}

// IncrementWorkflowEventDropped increments dropped workflow event counter
func (m *Metrics) IncrementWorkflowEventDropped() {
	m.safeExecute("IncrementWorkflowEventDropped", func() {
		m.WorkflowEventDroppedTotal.Inc()
	})
}

// SetWorkflowQueueDepth sets the workflow queue depth gauge
func (m *Metrics) SetWorkflowQueueDepth(depth int) {
	m.safeExecute("SetWorkflowQueueDepth", func() {
		m.WorkflowQueueDepth.Set(float64(depth))
	})
}

// SetBoardsTotal sets total boards gauge
func (m *Metrics) SetBoardsTotal(count int64) {
	m.safeExecute("SetBoardsTotal", func() {
		m.BoardsTotal.Set(float64(count))
	})
}

// SetTasksTotal sets total tasks gauge
func (m *Metrics) SetTasksTotal(count int64) {
	m.safeExecute("SetTasksTotal", func() {
		m.TasksTotal.Set(float64(count))
	})
}
