package llmjson

type Source string

const (
	SourceLive     Source = "live"
	SourceRepaired Source = "repaired"
	SourceFallback Source = "fallback"
)

// Outcome carries a value that is always safe to render together with how it
// was obtained. Reason is nil only for SourceLive.
type Outcome[T any] struct {
	Value  T
	Source Source
	Reason error
}

func Ok[T any](v T) Outcome[T] {
	return Outcome[T]{Value: v, Source: SourceLive}
}

// Repaired marks a live value that needed synthesized defaults.
func Repaired[T any](v T, reason error) Outcome[T] {
	if reason == nil {
		return Ok(v)
	}
	return Outcome[T]{Value: v, Source: SourceRepaired, Reason: reason}
}

func Fallback[T any](v T, reason error) Outcome[T] {
	return Outcome[T]{Value: v, Source: SourceFallback, Reason: reason}
}

func (o Outcome[T]) IsFallback() bool {
	return o.Source == SourceFallback
}

// ReasonText is the reason as a string, empty when there is none.
func (o Outcome[T]) ReasonText() string {
	if o.Reason == nil {
		return ""
	}
	return o.Reason.Error()
}
