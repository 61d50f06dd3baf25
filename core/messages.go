package core

import "log"

var (
	FileSavedMessage      = "file saved"
	BlockCopiedMessage    = "block copied"
	BlockPastedMessage    = "block pasted"
	SelectionFillMessage  = "selection cleared"
	LayerAddedMessage     = "layer added"
	LayerRemovedMessage   = "layer removed"
	LayerMergedMessage    = "layer merged down"
	ReplacedMessage       = "replaced"
	NothingToUndoMessage  = "nothing to undo"
	NothingToRedoMessage  = "nothing to redo"
	LayerIsLockedMessage  = "layer is locked"
	FigureInsertedMessage = "figure inserted"
)

func (s *session) DispatchMessage(args ...string) {
	id := args[0]
	value := id
	if len(args) > 1 {
		value = args[1]
	}
	select {
	case s.updateSignal <- MessageSignal{id, value}:
	default:
		log.Println("Channel is full, unable to send message signal")
	}
}
