package courses

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCourse_ValidateNew(t *testing.T) {
	t.Run("valid course produces no messages", func(t *testing.T) {
		c := Course{Title: "Go 101", Description: "An introduction"}
		assert.Empty(t, c.ValidateNew())
	})

	t.Run("both fields missing, in declaration order", func(t *testing.T) {
		msgs := Course{}.ValidateNew()
		assert.Equal(t, []string{"title is missing", "description is missing"}, msgs)
	})

	t.Run("only description missing", func(t *testing.T) {
		c := Course{Title: "Go 101"}
		assert.Equal(t, []string{"description is missing"}, c.ValidateNew())
	})

	t.Run("optional fields do not validate", func(t *testing.T) {
		c := Course{Title: "Go 101", Description: "An introduction", EstimatedTime: "", MaterialsNeeded: ""}
		assert.Empty(t, c.ValidateNew())
	})
}

func TestPatch_Empty(t *testing.T) {
	assert.True(t, Patch{}.Empty())

	title := "New title"
	assert.False(t, Patch{Title: &title}.Empty())

	empty := ""
	// A present-but-empty field still counts as an update.
	assert.False(t, Patch{MaterialsNeeded: &empty}.Empty())
}
