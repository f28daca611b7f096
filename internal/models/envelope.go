package models

// Request envelope kinds delivered by the assistant platform.
const (
	RequestTypeLaunch       = "LaunchRequest"
	RequestTypeIntent       = "IntentRequest"
	RequestTypeSessionEnded = "SessionEndedRequest"
)

// Output speech kinds.
const (
	SpeechTypePlainText = "PlainText"
	SpeechTypeSSML      = "SSML"
)

// ResponseVersion is the protocol version stamped on every outgoing envelope.
const ResponseVersion = "1.0"

// RequestEnvelope is the inbound platform envelope for one conversational
// turn.
type RequestEnvelope struct {
	Version string  `json:"version,omitempty"`
	Session Session `json:"session"`
	Request Request `json:"request"`
}

// Session carries per-conversation state round-tripped by the platform.
type Session struct {
	New        bool                   `json:"new,omitempty"`
	SessionID  string                 `json:"sessionId,omitempty"`
	Attributes map[string]interface{} `json:"attributes,omitempty"`
}

// Request is the discriminated request payload.
type Request struct {
	Type      string `json:"type"`
	RequestID string `json:"requestId,omitempty"`
	Locale    string `json:"locale,omitempty"`
	Intent    Intent `json:"intent,omitempty"`
}

type Intent struct {
	Name  string          `json:"name,omitempty"`
	Slots map[string]Slot `json:"slots,omitempty"`
}

type Slot struct {
	Name  string `json:"name,omitempty"`
	Value string `json:"value,omitempty"`
}

// SlotValue returns the value of a named slot, or "" when the slot is absent
// or empty.
func (e *RequestEnvelope) SlotValue(name string) string {
	slot, ok := e.Request.Intent.Slots[name]
	if !ok {
		return ""
	}
	return slot.Value
}

// SessionString returns a session attribute as a string, or "" when absent
// or of another type.
func (e *RequestEnvelope) SessionString(key string) string {
	if e.Session.Attributes == nil {
		return ""
	}
	if s, ok := e.Session.Attributes[key].(string); ok {
		return s
	}
	return ""
}

// ResponseEnvelope is the outbound platform envelope.
type ResponseEnvelope struct {
	Version           string                 `json:"version"`
	SessionAttributes map[string]interface{} `json:"sessionAttributes,omitempty"`
	Response          ResponseBody           `json:"response"`
}

type ResponseBody struct {
	OutputSpeech     *OutputSpeech `json:"outputSpeech,omitempty"`
	ShouldEndSession bool          `json:"shouldEndSession"`
}

type OutputSpeech struct {
	Type string `json:"type"`
	Text string `json:"text,omitempty"`
	SSML string `json:"ssml,omitempty"`
}
