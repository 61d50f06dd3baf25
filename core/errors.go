package core

import (
	"errors"
	"log"
)

var (
	ErrLayerLocked    = errors.New("layer is locked")
	ErrLayerNotFound  = errors.New("layer not found")
	ErrLastLayer      = errors.New("cannot remove the last layer")
	ErrDegenerateRect = errors.New("degenerate rectangle")
	ErrNoSelection    = errors.New("no selection")
	ErrEmptyClipboard = errors.New("clipboard is empty")
	ErrNothingToUndo  = errors.New("nothing to undo")
	ErrNothingToRedo  = errors.New("nothing to redo")
	ErrInvalidTool    = errors.New("invalid tool")
	ErrInvalidPath    = errors.New("invalid save path")
	ErrReadFile       = errors.New("failed to read file")
	ErrWriteFile      = errors.New("failed to write file")
	ErrClipboardWrite = errors.New("failed to write system clipboard")
)

type ErrorId int

const (
	ErrLayerLockedId ErrorId = iota
	ErrLayerNotFoundId
	ErrLastLayerId
	ErrDegenerateRectId
	ErrNoSelectionId
	ErrEmptyClipboardId
	ErrNothingToUndoId
	ErrNothingToRedoId
	ErrInvalidToolId
	ErrInvalidPathId
	ErrReadFileId
	ErrWriteFileId
	ErrClipboardWriteId
)

type Error struct {
	id  ErrorId
	err error
}

func (s *session) DispatchError(id ErrorId, err error) {
	select {
	case s.updateSignal <- ErrorSignal{id, err}:
	default:
		log.Println("Channel is full, unable to send error signal")
	}
}
