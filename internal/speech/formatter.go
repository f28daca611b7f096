// Package speech turns lookup results into locale-appropriate spoken
// messages, with inline markup for numeric pronunciation.
package speech

import (
	"fmt"

	"admissions-skill/internal/locale"
	"admissions-skill/internal/models"
)

// Message is a rendered spoken response. SSML reports whether Text carries
// speech markup.
type Message struct {
	Text string
	SSML bool
}

// Formatter renders lookup outcomes against one locale's templates.
type Formatter struct {
	res locale.SkillResource
}

func NewFormatter(res locale.SkillResource) *Formatter {
	return &Formatter{res: res}
}

// Format selects the message for a lookup outcome, in priority order: record
// absent, record present with a blank attribute, record present with a
// value. Only the value-bearing case is marked up.
func (f *Formatter) Format(attr models.Attribute, rawName string, result *models.LookupResult) Message {
	if result == nil {
		return Message{Text: fmt.Sprintf(f.res.NoUniversityFound, rawName)}
	}

	if result.Value == "" {
		return Message{Text: fmt.Sprintf(f.noDataTemplate(attr), rawName)}
	}

	msg := fmt.Sprintf(f.valueTemplate(attr), result.UniversityName, result.Value)
	if attr == models.AttributeTuition {
		msg = InsertCurrencySymbol(msg)
	}
	return Message{Text: MarkupNumbers(msg), SSML: true}
}

func (f *Formatter) valueTemplate(attr models.Attribute) string {
	switch attr {
	case models.AttributeApplicationFee:
		return f.res.ApplicationFeeMessage
	case models.AttributeTuition:
		return f.res.TuitionMessage
	case models.AttributeFinancialAid:
		return f.res.FinancialAidMessage
	case models.AttributeAdmissionRate:
		return f.res.AdmissionRateMessage
	default:
		return f.res.NoUniversityFound
	}
}

func (f *Formatter) noDataTemplate(attr models.Attribute) string {
	switch attr {
	case models.AttributeApplicationFee:
		return f.res.NoApplicationFeeFound
	case models.AttributeTuition:
		return f.res.NoTuitionFound
	case models.AttributeFinancialAid:
		return f.res.NoFinancialAidFound
	case models.AttributeAdmissionRate:
		return f.res.NoAdmissionRateFound
	default:
		return f.res.NoUniversityFound
	}
}
