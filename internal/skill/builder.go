package skill

import "admissions-skill/internal/models"

// responseBuilder accumulates one turn's outcome and renders the outbound
// envelope. It is threaded through handlers by value reference, never shared
// across turns.
type responseBuilder struct {
	attrs      map[string]interface{}
	speech     *models.OutputSpeech
	endSession bool
}

func newResponseBuilder() *responseBuilder {
	return &responseBuilder{
		attrs: make(map[string]interface{}),
	}
}

func (b *responseBuilder) setAttr(key string, value interface{}) {
	b.attrs[key] = value
}

func (b *responseBuilder) speakPlain(text string, endSession bool) {
	b.speech = &models.OutputSpeech{
		Type: models.SpeechTypePlainText,
		Text: text,
	}
	b.endSession = endSession
}

func (b *responseBuilder) speakSSML(ssml string, endSession bool) {
	b.speech = &models.OutputSpeech{
		Type: models.SpeechTypeSSML,
		SSML: ssml,
	}
	b.endSession = endSession
}

func (b *responseBuilder) build() *models.ResponseEnvelope {
	return &models.ResponseEnvelope{
		Version:           models.ResponseVersion,
		SessionAttributes: b.attrs,
		Response: models.ResponseBody{
			OutputSpeech:     b.speech,
			ShouldEndSession: b.endSession,
		},
	}
}
