package views

import (
	"testing"

	"github.com/Cyclone1070/ctxboard/internal/contextitem"
	"github.com/Cyclone1070/ctxboard/internal/ui/models"
	"github.com/stretchr/testify/assert"
)

func TestRenderStatus_Info(t *testing.T) {
	state := models.State{
		StatusPhase:   "info",
		StatusMessage: "Removed 2 items",
	}

	result := RenderStatus(state)

	assert.Contains(t, result, "Removed 2 items")
}

func TestRenderStatus_Error(t *testing.T) {
	state := models.State{
		StatusPhase:   "error",
		StatusMessage: "no context item with that identity",
	}

	result := RenderStatus(state)

	assert.Contains(t, result, "no context item with that identity")
}

func TestRenderStatus_DefaultReady(t *testing.T) {
	result := RenderStatus(models.State{})

	assert.Contains(t, result, "Ready")
}

func TestRenderStatus_MarkTally(t *testing.T) {
	state := models.State{MarkCount: 3}

	result := RenderStatus(state)

	assert.Contains(t, result, "3 marked")
}

func TestRenderConfirm(t *testing.T) {
	state := models.State{
		PendingDelete: &models.PendingDelete{
			ID:   contextitem.Identity{Kind: contextitem.KindFile, Key: "/a.txt"},
			Name: "a.txt",
		},
	}

	result := RenderConfirm(state)

	assert.Contains(t, result, "Delete context item?")
	assert.Contains(t, result, "a.txt")
	assert.Contains(t, result, "y: Delete")
}

func TestRenderConfirm_NothingPending(t *testing.T) {
	assert.Equal(t, "", RenderConfirm(models.State{}))
}

func TestRenderHelp(t *testing.T) {
	result := RenderHelp(models.State{ShowHelp: true})

	assert.Contains(t, result, "mark item for deletion")
	assert.Contains(t, result, "switch target")
	assert.Contains(t, result, "quit")
}

func TestRenderHelp_Hidden(t *testing.T) {
	assert.Equal(t, "", RenderHelp(models.State{}))
}

func TestRenderRoot_ShowsTarget(t *testing.T) {
	state := models.State{Target: "review"}

	result := RenderRoot(state)

	assert.Contains(t, result, "Context")
	assert.Contains(t, result, "review")
}
