package courses

import "errors"

// ErrNotFound signals that no course matched the given id.
var ErrNotFound = errors.New("course not found")

// ErrNotOwner signals that the caller does not own the course.
var ErrNotOwner = errors.New("caller does not own course")

// ErrEmptyPatch signals an update request that changes nothing.
var ErrEmptyPatch = errors.New("update data is missing")

type Course struct {
	ID              string `json:"id"`
	UserID          string `json:"userId"`
	Title           string `json:"title"`
	Description     string `json:"description"`
	EstimatedTime   string `json:"estimatedTime,omitempty"`
	MaterialsNeeded string `json:"materialsNeeded,omitempty"`
}

// Patch carries a partial update. Nil fields are left unchanged.
type Patch struct {
	Title           *string
	Description     *string
	EstimatedTime   *string
	MaterialsNeeded *string
}

// Empty reports whether the patch changes nothing.
func (p Patch) Empty() bool {
	return p.Title == nil && p.Description == nil && p.EstimatedTime == nil && p.MaterialsNeeded == nil
}

var createRules = []struct {
	message string
	failed  func(c Course) bool
}{
	{"title is missing", func(c Course) bool { return c.Title == "" }},
	{"description is missing", func(c Course) bool { return c.Description == "" }},
}

// ValidateNew returns one message per violated rule, in rule declaration order.
func (c Course) ValidateNew() []string {
	var msgs []string
	for _, rule := range createRules {
		if rule.failed(c) {
			msgs = append(msgs, rule.message)
		}
	}
	return msgs
}
