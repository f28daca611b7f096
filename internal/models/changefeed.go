package models

// Change-feed event kinds emitted by the university table's stream.
const (
	EventInsert = "INSERT"
	EventModify = "MODIFY"
	EventRemove = "REMOVE"
)

// ChangeBatch is one stream invocation's worth of change-log records.
type ChangeBatch struct {
	Records []ChangeRecord `json:"Records"`
}

// ChangeRecord is a single table mutation event.
type ChangeRecord struct {
	EventName string       `json:"eventName"`
	Change    StreamChange `json:"dynamodb"`
}

// StreamChange carries the mutated item's key attributes.
type StreamChange struct {
	Keys map[string]StreamAttribute `json:"Keys"`
}

// StreamAttribute is a stream-typed attribute value. Only string keys occur
// in the university table.
type StreamAttribute struct {
	S string `json:"S"`
}

// KeyName returns the mutated university name, or "" when the record's key
// shape is unexpected.
func (r ChangeRecord) KeyName() string {
	return r.Change.Keys[KeyAttributeName].S
}
