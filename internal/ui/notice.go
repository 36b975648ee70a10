package ui

import (
	"errors"

	"github.com/idilsaglam/meetings/internal/model"
	"github.com/idilsaglam/meetings/internal/schedule"
)

type Level int

const (
	LevelError Level = iota
	LevelWarn
)

// Notice is a user-facing message for a failed action.
type Notice struct {
	Level Level
	Title string
	Msg   string
}

// AddNotice describes why adding a meeting failed.
func AddNotice(err error) Notice {
	var pe *model.ParseError
	switch {
	case errors.Is(err, model.ErrMissingField):
		return Notice{LevelError, "Missing Info", "Please fill in all fields."}
	case errors.As(err, &pe):
		return Notice{LevelError, "Invalid Format", "Check date/time format: " + pe.Err.Error()}
	}
	return Notice{LevelError, "Error", "Unexpected error: " + err.Error()}
}

// DeleteNotice describes why deleting a meeting failed.
func DeleteNotice(err error) Notice {
	if errors.Is(err, schedule.ErrNoSelection) {
		return Notice{LevelWarn, "No Selection", "Please select a meeting to delete."}
	}
	return Notice{LevelError, "Error", "Could not delete: " + err.Error()}
}
