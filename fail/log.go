package fail

import "github.com/rs/zerolog"

// Both types are zerolog object marshalers, so Event.Err and Event.AnErr log
// them as {"message", "error", "causes"} objects instead of flat strings.
var (
	_ zerolog.LogObjectMarshaler = (*Fail)(nil)
	_ zerolog.LogObjectMarshaler = (*Handle)(nil)
)

func (f *Fail) MarshalZerologObject(e *zerolog.Event) {
	if f == nil {
		return
	}

	marshalChain(e, f.msg, f)
}

func (h *Handle) MarshalZerologObject(e *zerolog.Event) {
	if h == nil || h.held() == nil {
		return
	}

	marshalChain(e, h.Message(), h)
}

func marshalChain(e *zerolog.Event, msg string, err error) {
	e.Str("message", msg).Str("error", err.Error())

	lines := levels(err)
	if len(lines) < 2 {
		return
	}

	causes := zerolog.Arr()
	for _, line := range lines[1:] {
		causes.Str(line)
	}

	e.Array("causes", causes)
}
