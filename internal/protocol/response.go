package protocol

import "strings"

// Kind classifies a response line from the programmer.
type Kind int

const (
	KindOK Kind = iota
	KindWarn
	KindError
	KindData
	KindInfo
	KindTimeout
)

// String returns the tag name without the trailing colon.
func (k Kind) String() string {
	switch k {
	case KindOK:
		return "OK"
	case KindWarn:
		return "WARN"
	case KindError:
		return "ERROR"
	case KindData:
		return "DATA"
	case KindInfo:
		return "INFO"
	case KindTimeout:
		return "TIMEOUT"
	}
	return "UNKNOWN"
}

// Response is one tagged semantic event parsed from the serial stream.
type Response struct {
	Kind    Kind
	Message string
}

// tags in priority order: when a line carries more than one tag, the first
// match in this order wins.
var tags = []struct {
	prefix string
	kind   Kind
}{
	{"OK:", KindOK},
	{"WARN:", KindWarn},
	{"ERROR:", KindError},
	{"DATA:", KindData},
	{"INFO:", KindInfo},
}

// FilterPrintable drops every byte outside the printable ASCII range
// (32-126). The programmer's boot sequence and a freshly reset UART both
// emit garbage that would otherwise corrupt tag matching.
func FilterPrintable(raw []byte) string {
	var b strings.Builder
	b.Grow(len(raw))
	for _, c := range raw {
		if c >= 32 && c <= 126 {
			b.WriteByte(c)
		}
	}
	return b.String()
}

// ParseLine scans a raw line for a response tag. The LAST occurrence of the
// tag substring is used, so an echoed or garbled prefix ahead of the real
// tag is ignored. Returns ok=false when the line carries no recognized tag.
func ParseLine(raw []byte) (Response, bool) {
	line := FilterPrintable(raw)
	if line == "" {
		return Response{}, false
	}
	for _, t := range tags {
		idx := strings.LastIndex(line, t.prefix)
		if idx < 0 {
			continue
		}
		msg := strings.TrimSpace(line[idx+len(t.prefix):])
		return Response{Kind: t.kind, Message: msg}, true
	}
	return Response{}, false
}
