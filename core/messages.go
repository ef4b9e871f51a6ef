package core

import "log"

var (
	LineYankedMessage  = "line yanked"
	DebugEnabledMsg    = "debug narration enabled"
	DebugDisabledMsg   = "debug narration disabled"
	LinesPastedMessage = "lines pasted"
)

func (e *editor) DispatchMessage(args ...string) {
	id := args[0]
	value := id
	if len(args) > 1 {
		value = args[1]
	}
	select {
	case e.updateSignal <- MessageSignal{id, value}:
	default:
		log.Println("Channel is full, unable to send message signal")
	}
}
