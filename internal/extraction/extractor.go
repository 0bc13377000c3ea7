package extraction

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jonathan/skill-matcher/internal/llm"
	"github.com/jonathan/skill-matcher/internal/logging"
	"github.com/jonathan/skill-matcher/internal/prompts"
)

// Source says which path produced an extraction result.
type Source string

const (
	// SourceLLM means the model's answer was used as-is.
	SourceLLM Source = "llm"
	// SourceFallback means the local vocabulary scan produced the skills.
	SourceFallback Source = "fallback"
)

// DefaultTimeout bounds a single LLM extraction call.
const DefaultTimeout = 30 * time.Second

var errNotStringArray = errors.New("response is not a JSON array of strings")

// Result is an extraction outcome. Err holds the reason the LLM path was
// abandoned; it is informational and never needs handling.
type Result struct {
	Skills []string
	Source Source
	Err    error
}

// Extractor turns resume text into skill names.
type Extractor struct {
	client  llm.Client
	vocab   Vocabulary
	hints   []string
	tier    llm.ModelTier
	timeout time.Duration
	log     *logging.Logger
}

// Option configures an Extractor.
type Option func(*Extractor)

// WithClient sets the LLM. Without one every call uses the fallback scan.
func WithClient(c llm.Client) Option {
	return func(e *Extractor) { e.client = c }
}

// WithVocabulary replaces the fallback vocabulary.
func WithVocabulary(v Vocabulary) Option {
	return func(e *Extractor) { e.vocab = v }
}

// WithSpellingHints asks the LLM to prefer these spellings, usually the
// catalog's skill names, so extracted skills match without normalization.
func WithSpellingHints(names []string) Option {
	return func(e *Extractor) { e.hints = names }
}

// WithTier picks the model tier used for extraction.
func WithTier(t llm.ModelTier) Option {
	return func(e *Extractor) { e.tier = t }
}

// WithTimeout bounds each LLM call. Zero or negative disables the bound.
func WithTimeout(d time.Duration) Option {
	return func(e *Extractor) { e.timeout = d }
}

// WithLogger sets the logger used to report fallbacks.
func WithLogger(l *logging.Logger) Option {
	return func(e *Extractor) { e.log = l }
}

// New builds an Extractor with the default vocabulary and timeout.
func New(opts ...Option) *Extractor {
	e := &Extractor{
		vocab:   DefaultVocabulary(),
		tier:    llm.TierStandard,
		timeout: DefaultTimeout,
		log:     logging.Nop(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Extract returns the skills found in text. It never fails: any LLM error,
// timeout or malformed response falls back to the local vocabulary scan.
func (e *Extractor) Extract(ctx context.Context, text string) []string {
	return e.ExtractDetailed(ctx, text).Skills
}

// ExtractDetailed is Extract with the path taken and the fallback reason.
func (e *Extractor) ExtractDetailed(ctx context.Context, text string) Result {
	if LooksLikeHTML(text) {
		if plain, err := PlainText(text); err == nil {
			text = plain
		}
	}

	if e.client == nil || text == "" {
		return Result{Skills: Fallback(text, e.vocab), Source: SourceFallback}
	}

	skills, err := e.callLLM(ctx, text)
	if err != nil {
		e.log.Warn("skill extraction fell back to vocabulary scan",
			"error", err,
			"model", e.client.GetModel(e.tier),
		)
		return Result{Skills: Fallback(text, e.vocab), Source: SourceFallback, Err: err}
	}

	e.log.Debug("skills extracted by llm", "count", len(skills))
	return Result{Skills: skills, Source: SourceLLM}
}

func (e *Extractor) callLLM(ctx context.Context, text string) ([]string, error) {
	if e.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, e.timeout)
		defer cancel()
	}

	key := prompts.KeyExtractSkills
	data := map[string]string{"ResumeText": text}
	if len(e.hints) > 0 {
		key = prompts.KeyExtractWithVocabulary
		data["Vocabulary"] = strings.Join(e.hints, ", ")
	}
	prompt := prompts.Format(prompts.MustGet(prompts.ExtractionFile, key), data)

	raw, err := e.client.GenerateJSON(ctx, prompt, e.tier)
	if err != nil {
		return nil, fmt.Errorf("llm call failed: %w", err)
	}

	return ParseSkillList(raw)
}

// ParseSkillList strictly decodes an LLM response as a JSON array of strings,
// after stripping markdown fences. null and non-string elements are rejected.
func ParseSkillList(raw string) ([]string, error) {
	var skills []string
	if err := json.Unmarshal([]byte(llm.CleanJSONBlock(raw)), &skills); err != nil {
		return nil, fmt.Errorf("%w: %v", errNotStringArray, err)
	}
	if skills == nil {
		return nil, fmt.Errorf("%w: got null", errNotStringArray)
	}
	return skills, nil
}
