package core

// Signal is anything the editor reports to its consumer through the update
// channel.
type Signal any

type MessageSignal struct {
	id    string
	value string
}

func (m MessageSignal) Value() (id, message string) { return m.id, m.value }

// SaveSignal carries the serialized document; the consumer writes it.
type SaveSignal struct{ content string }

func (s SaveSignal) Value() string { return s.content }

// YankSignal carries the text placed on the clipboard.
type YankSignal struct{ content string }

func (y YankSignal) Value() string { return y.content }

// PasteSignal reports how many lines a put inserted.
type PasteSignal struct{ totalLines int }

func (p PasteSignal) Value() int { return p.totalLines }

// ModeSignal reports the mode just entered.
type ModeSignal struct{ mode Mode }

func (m ModeSignal) Value() Mode { return m.mode }

type QuitSignal struct{}

type ErrorSignal Error

func (e ErrorSignal) Value() (id ErrorId, err error) { return e.id, e.err }

// DispatchSignal drops the signal when nobody is draining the channel.
func (e *editor) DispatchSignal(signal Signal) {
	select {
	case e.updateSignal <- signal:
	default:
	}
}
