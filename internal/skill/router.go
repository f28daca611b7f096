// Package skill routes conversational turns to intent handlers and manages
// the round-tripped session state.
package skill

import (
	"context"
	"math/rand"

	"admissions-skill/internal/common/logger"
	"admissions-skill/internal/common/metrics"
	"admissions-skill/internal/locale"
	"admissions-skill/internal/models"
	"admissions-skill/internal/speech"
)

// Built-in platform intents.
const (
	IntentNo        = "AMAZON.NoIntent"
	IntentStop      = "AMAZON.StopIntent"
	IntentCancel    = "AMAZON.CancelIntent"
	IntentHelp      = "AMAZON.HelpIntent"
	IntentStartOver = "AMAZON.StartOverIntent"
	IntentRepeat    = "AMAZON.RepeatIntent"
)

// Domain intents.
const (
	IntentSearchForApplicationFee = "SearchForApplicationFee"
	IntentSearchForTuition        = "SearchForTuition"
	IntentSearchForFinancialAid   = "SearchForFinancialAid"
	IntentSearchForAdmissionRate  = "SearchForAdmissionRate"
)

const slotUniversityName = "universityName"

// intentAttributes maps domain intent names to the table attribute they
// query. Repeat resolves its replay target through the same map.
var intentAttributes = map[string]models.Attribute{
	IntentSearchForApplicationFee: models.AttributeApplicationFee,
	IntentSearchForTuition:        models.AttributeTuition,
	IntentSearchForFinancialAid:   models.AttributeFinancialAid,
	IntentSearchForAdmissionRate:  models.AttributeAdmissionRate,
}

// LookupService resolves a spoken university name to an attribute value.
type LookupService interface {
	Lookup(ctx context.Context, rawName string, attr models.Attribute) (*models.LookupResult, error)
}

type intentHandler func(ctx context.Context, env *models.RequestEnvelope, res locale.SkillResource, b *responseBuilder) error

// Router dispatches request envelopes to intent handlers.
type Router struct {
	lookup        LookupService
	defaultLocale string
	logger        logger.Logger
	handlers      map[string]intentHandler
	sampleIndex   func(n int) int
}

func NewRouter(lookup LookupService, defaultLocale string, log logger.Logger) *Router {
	r := &Router{
		lookup:        lookup,
		defaultLocale: defaultLocale,
		logger:        log,
		sampleIndex:   rand.Intn,
	}
	r.handlers = map[string]intentHandler{
		IntentNo:        r.handleShutdown,
		IntentStop:      r.handleShutdown,
		IntentCancel:    r.handleShutdown,
		IntentHelp:      r.handleHelp,
		IntentStartOver: r.handleStartOver,
		IntentRepeat:    r.handleRepeat,

		IntentSearchForApplicationFee: r.handleSearch,
		IntentSearchForTuition:        r.handleSearch,
		IntentSearchForFinancialAid:   r.handleSearch,
		IntentSearchForAdmissionRate:  r.handleSearch,
	}
	return r
}

// HandleRequest processes one conversational turn. Any failure inside the
// turn is logged and yields a nil response; the platform treats that as a
// failed turn.
func (r *Router) HandleRequest(ctx context.Context, env *models.RequestEnvelope) (resp *models.ResponseEnvelope) {
	defer func() {
		if rec := recover(); rec != nil {
			r.logger.Error("turn panicked", map[string]interface{}{"panic": rec})
			metrics.TurnFailures.Inc()
			resp = nil
		}
	}()

	b := newResponseBuilder()

	loc := r.resolveLocale(env)
	b.setAttr(models.AttrLocale, loc)
	res := locale.Get(loc)

	mode := models.ParseMode(env.SessionString(models.AttrState))
	b.setAttr(models.AttrState, mode.String())

	intentName := env.Request.Intent.Name

	switch env.Request.Type {
	case models.RequestTypeLaunch:
		b.speakPlain(res.WelcomeMessage, false)
	case models.RequestTypeIntent:
		handler, ok := r.handlers[intentName]
		if !ok {
			// Unknown intents fall through with no output speech set.
			r.logger.Warn("unrecognized intent", map[string]interface{}{"intent": intentName})
			break
		}
		if err := handler(ctx, env, res, b); err != nil {
			r.logger.WithError(err).Error("turn failed", map[string]interface{}{
				"intent": intentName,
			})
			metrics.TurnFailures.Inc()
			return nil
		}
	case models.RequestTypeSessionEnded:
		b.speakPlain(res.ShutdownMessage, true)
	default:
		r.logger.Warn("unrecognized request type", map[string]interface{}{
			"requestType": env.Request.Type,
		})
	}

	metrics.TurnsProcessed.WithLabelValues(env.Request.Type, intentName).Inc()
	return b.build()
}

// resolveLocale picks the turn's locale: session attribute first, then the
// request's declared locale, then the configured default.
func (r *Router) resolveLocale(env *models.RequestEnvelope) string {
	if loc := env.SessionString(models.AttrLocale); loc != "" {
		return loc
	}
	if env.Request.Locale != "" {
		return env.Request.Locale
	}
	return r.defaultLocale
}

func (r *Router) handleShutdown(_ context.Context, _ *models.RequestEnvelope, res locale.SkillResource, b *responseBuilder) error {
	b.speakPlain(res.ShutdownMessage, true)
	return nil
}

func (r *Router) handleHelp(_ context.Context, _ *models.RequestEnvelope, res locale.SkillResource, b *responseBuilder) error {
	sample := res.SampleMessages[r.sampleIndex(len(res.SampleMessages))]
	b.speakPlain(res.HelpMessage+" "+res.SampleIntroMessage+sample, false)
	return nil
}

func (r *Router) handleStartOver(_ context.Context, _ *models.RequestEnvelope, res locale.SkillResource, b *responseBuilder) error {
	b.setAttr(models.AttrState, models.ModeSearch.String())
	b.speakPlain(res.StartOverMessage, false)
	return nil
}

// handleRepeat replays the last domain lookup from session state. Without a
// complete prior search it leaves the response untouched.
func (r *Router) handleRepeat(ctx context.Context, env *models.RequestEnvelope, res locale.SkillResource, b *responseBuilder) error {
	lastIntent := env.SessionString(models.AttrLastIntent)
	lastSearch := env.SessionString(models.AttrLastSearch)
	attr, ok := intentAttributes[lastIntent]
	if !ok || lastSearch == "" {
		return nil
	}
	return r.runSearch(ctx, lastIntent, lastSearch, attr, res, b)
}

func (r *Router) handleSearch(ctx context.Context, env *models.RequestEnvelope, res locale.SkillResource, b *responseBuilder) error {
	intentName := env.Request.Intent.Name
	attr, ok := intentAttributes[intentName]
	if !ok {
		return nil
	}
	return r.runSearch(ctx, intentName, env.SlotValue(slotUniversityName), attr, res, b)
}

// runSearch performs a domain lookup and speaks the outcome. Session repeat
// state is persisted before the lookup, so even a miss can be repeated.
func (r *Router) runSearch(ctx context.Context, intentName, universityName string, attr models.Attribute, res locale.SkillResource, b *responseBuilder) error {
	b.setAttr(models.AttrLastSearch, universityName)
	b.setAttr(models.AttrLastIntent, intentName)

	result, err := r.lookup.Lookup(ctx, universityName, attr)
	if err != nil {
		return err
	}

	msg := speech.NewFormatter(res).Format(attr, universityName, result)
	if msg.SSML {
		b.speakSSML(msg.Text, false)
		return nil
	}
	b.speakPlain(msg.Text, true)
	return nil
}
