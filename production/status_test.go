package production_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/warp/production-engine/engine"
	"github.com/warp/production-engine/production"
)

func TestTransitionTo_TerminalRequiresDeliverable(t *testing.T) {
	// GIVEN: a task in progress with no deliverables
	// WHEN: it is moved to done
	// THEN: the gate rejects it; attaching a deliverable unblocks it

	task := &production.Task{ID: "task-100", Status: production.StatusInProgress}

	err := task.TransitionTo(production.StatusDone)
	assert.True(t, engine.IsInvalidTransition(err))
	assert.Equal(t, production.StatusInProgress, task.Status, "status unchanged")

	task.DeliverableCount = 1
	require.NoError(t, task.TransitionTo(production.StatusDone))
	assert.Equal(t, production.StatusDone, task.Status)
}

func TestTransitionTo_DeliverableLinksAlsoSatisfyGate(t *testing.T) {
	task := &production.Task{
		ID:                  "task-100",
		Status:              production.StatusInProgress,
		HasDeliverableLinks: true,
	}
	require.NoError(t, task.TransitionTo(production.StatusDelivered))
}

func TestTransitionTo_NonTerminalAlwaysPermitted(t *testing.T) {
	// The gate only guards entry into terminal statuses; moving between
	// working statuses needs nothing.
	task := &production.Task{ID: "task-100", Status: production.StatusReceived}

	for _, next := range []production.TaskStatus{
		production.StatusInProgress,
		production.StatusOnHold,
		production.StatusInProgress,
		production.StatusReceived,
	} {
		require.NoError(t, task.TransitionTo(next))
		assert.Equal(t, next, task.Status)
	}
}

func TestCanTransition_GateEvaluatedAtRequestTime(t *testing.T) {
	// The gate reads the task as it is now; an earlier rejection does
	// not stick once deliverables exist.
	task := &production.Task{ID: "task-100", Status: production.StatusInProgress}

	assert.Error(t, production.CanTransition(task, production.StatusDelivered))
	task.DeliverableCount = 2
	assert.NoError(t, production.CanTransition(task, production.StatusDelivered))
}

func TestTerminalStatuses_Extensible(t *testing.T) {
	// A host-specific lifecycle state can opt into the gate.
	production.TerminalStatuses["archived"] = true
	defer delete(production.TerminalStatuses, "archived")

	task := &production.Task{ID: "task-100", Status: production.StatusDone}
	err := task.TransitionTo("archived")
	assert.True(t, engine.IsInvalidTransition(err))
}
