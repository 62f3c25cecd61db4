// Package dto porte les corps de requête de l'API et leur validation
// structurelle (go-playground/validator). La validation métier reste dans le
// wizard et les services.
package dto

import "github.com/go-playground/validator/v10"

var validate = validator.New()

// Validate runs the struct tags of a decoded request body.
func Validate(body any) error {
	return validate.Struct(body)
}

// SetFieldRequest patches one field of a wizard draft. Value keeps whatever
// JSON shape the field expects; the draft store coerces and rejects.
type SetFieldRequest struct {
	Field string `json:"field" validate:"required"`
	Value any    `json:"value"`
}

// JumpRequest targets a step from the review screen's edit links.
type JumpRequest struct {
	Step int `json:"step"`
}

// JoinRequest is a fan RSVP submission.
type JoinRequest struct {
	Name  string `json:"name" validate:"required,max=120"`
	Email string `json:"email" validate:"omitempty,email,max=254"`
}
