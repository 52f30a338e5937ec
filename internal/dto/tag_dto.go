package dto

import "github.com/google/uuid"

type TagDTO struct {
	Id   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

// TagName carries no "required" rule: an empty name is accepted the same way
// an empty note title is.
type AddTagRequest struct {
	NoteId  uuid.UUID
	TagName string `json:"tag_name" validate:"max=50"`
}

type AddTagResponse struct {
	Tag TagDTO `json:"tag"`
	// Linked is false when the tag was already on the note. Either way the
	// call succeeded.
	Linked bool `json:"linked"`
}

type RemoveTagResponse struct {
	// Removed is false when the tag existed but was not on the note; the web
	// layer surfaces that as an informational message, not an error.
	Removed bool `json:"removed"`
}
