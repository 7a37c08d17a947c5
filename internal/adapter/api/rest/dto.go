package rest

import (
	"go-courses-app/internal/core/domain/courses"
	"go-courses-app/internal/core/domain/users"
)

type createUserRequest struct {
	FirstName    string `json:"firstName"`
	LastName     string `json:"lastName"`
	EmailAddress string `json:"emailAddress"`
	Password     string `json:"password"`
}

func (r createUserRequest) toInput() users.NewUserInput {
	return users.NewUserInput{
		FirstName:    r.FirstName,
		LastName:     r.LastName,
		EmailAddress: r.EmailAddress,
		Password:     r.Password,
	}
}

// currentUserResponse whitelists the fields exposed for the caller's own
// record. Notably lastName and the password hash are excluded.
type currentUserResponse struct {
	ID           string `json:"id"`
	FirstName    string `json:"firstName"`
	EmailAddress string `json:"emailAddress"`
}

type createCourseRequest struct {
	Title           string `json:"title"`
	Description     string `json:"description"`
	UserID          string `json:"userId"`
	EstimatedTime   string `json:"estimatedTime"`
	MaterialsNeeded string `json:"materialsNeeded"`
}

// toCourse builds a course owned by the body's userId when set, otherwise by
// the authenticated caller. The body value is honored for compatibility with
// the existing API contract even though it lets a caller assign ownership
// elsewhere; see DESIGN.md.
func (r createCourseRequest) toCourse(caller AuthenticatedUser) courses.Course {
	ownerID := r.UserID
	if ownerID == "" {
		ownerID = caller.ID
	}
	return courses.Course{
		UserID:          ownerID,
		Title:           r.Title,
		Description:     r.Description,
		EstimatedTime:   r.EstimatedTime,
		MaterialsNeeded: r.MaterialsNeeded,
	}
}

type updateCourseRequest struct {
	Title           *string `json:"title"`
	Description     *string `json:"description"`
	EstimatedTime   *string `json:"estimatedTime"`
	MaterialsNeeded *string `json:"materialsNeeded"`
}

func (r updateCourseRequest) toPatch() courses.Patch {
	return courses.Patch{
		Title:           r.Title,
		Description:     r.Description,
		EstimatedTime:   r.EstimatedTime,
		MaterialsNeeded: r.MaterialsNeeded,
	}
}

type courseResponse struct {
	ID              string `json:"id"`
	UserID          string `json:"userId"`
	Title           string `json:"title"`
	Description     string `json:"description"`
	EstimatedTime   string `json:"estimatedTime"`
	MaterialsNeeded string `json:"materialsNeeded"`
}

func toCourseResponse(c courses.Course) courseResponse {
	return courseResponse{
		ID:              c.ID,
		UserID:          c.UserID,
		Title:           c.Title,
		Description:     c.Description,
		EstimatedTime:   c.EstimatedTime,
		MaterialsNeeded: c.MaterialsNeeded,
	}
}
