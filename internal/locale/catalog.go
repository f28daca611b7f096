// Package locale maps locale tags to the skill's message templates.
package locale

// Supported locale tags.
const (
	USLocale = "en-US"
	GBLocale = "en-GB"
)

// SkillResource is the message bundle for one locale. Message templates take
// positional arguments: the university name first, the attribute value
// second where present.
type SkillResource struct {
	Locale    string
	SkillName string

	WelcomeMessage   string
	ShutdownMessage  string
	HelpMessage      string
	StartOverMessage string

	SampleIntroMessage string
	SampleMessages     []string

	ApplicationFeeMessage string
	TuitionMessage        string
	FinancialAidMessage   string
	AdmissionRateMessage  string

	NoUniversityFound     string
	NoApplicationFeeFound string
	NoTuitionFound        string
	NoFinancialAidFound   string
	NoAdmissionRateFound  string
}

// Get retrieves the resource bundle for a locale. Unknown tags fall back to
// the English bundle while keeping the requested tag.
func Get(locale string) SkillResource {
	switch locale {
	case GBLocale, USLocale:
		return english(locale)
	default:
		return english(locale)
	}
}

func english(locale string) SkillResource {
	r := SkillResource{
		Locale:    locale,
		SkillName: "Admission info",
	}

	r.WelcomeMessage = "Welcome to " + r.SkillName + ". Learn about US colleges tuition, application fees, average financial aid packages and admission rates."
	r.ShutdownMessage = "Ok."
	r.HelpMessage = "I can help you find basic information about US college admission. For example, tuition cost, application fees, financial aid packages and admission rates."
	r.StartOverMessage = "Ok, starting over."

	r.SampleIntroMessage = "For example, you can say: "
	r.SampleMessages = []string{
		"what is the tuition cost in Harvard College.",
		"how much is the application fee for Reed College.",
		"what is the average financial aid package in Brown University.",
		"what is the admission rate in Stanford University.",
	}

	r.ApplicationFeeMessage = "Application fee for %s is %s."
	r.TuitionMessage = "Tuition cost for %s is %s."
	r.FinancialAidMessage = "Average financial aid package in %s is %s."
	r.AdmissionRateMessage = "Admission rate in %s is %s."

	r.NoUniversityFound = "Hmm. I couldn't find data for %s."
	r.NoApplicationFeeFound = "No information available for application fees in %s."
	r.NoTuitionFound = "No information available for tuition cost in %s."
	r.NoFinancialAidFound = "No information available for financial aid packages in %s."
	r.NoAdmissionRateFound = "No information available for admission rates in %s."

	return r
}
