package text

// Processor is an immutable text value. Each transform returns a new
// Processor, so a chain never affects the value it started from.
//
//	out := text.New(comment).SanitizeHTML().Truncate(20).Value()
type Processor struct {
	text string
}

func New(s string) Processor { return Processor{text: s} }

func (p Processor) Truncate(max int) Processor { return Processor{Truncate(p.text, max)} }
func (p Processor) SanitizeHTML() Processor    { return Processor{SanitizeHTML(p.text)} }
func (p Processor) CapitalizeWords() Processor { return Processor{CapitalizeWords(p.text)} }

func (p Processor) NormalizeWhitespace() Processor {
	return Processor{NormalizeWhitespace(p.text)}
}

// Apply runs a pipeline over the current value.
func (p Processor) Apply(pl Pipeline) Processor { return Processor{pl.Apply(p.text)} }

func (p Processor) WordCount() int   { return WordCount(p.text) }
func (p Processor) Value() string  { return p.text }
func (p Processor) String() string { return p.text }

// Transform maps one string to another.
type Transform func(string) string

// Pipeline is an ordered list of transforms applied in sequence.
type Pipeline []Transform

// Then returns a new pipeline with t appended.
func (pl Pipeline) Then(t Transform) Pipeline {
	out := make(Pipeline, len(pl), len(pl)+1)
	copy(out, pl)
	return append(out, t)
}

// TruncateTo adapts Truncate to a Transform.
func TruncateTo(max int) Transform {
	return func(s string) string { return Truncate(s, max) }
}

func (pl Pipeline) Apply(s string) string {
	for _, t := range pl {
		s = t(s)
	}
	return s
}
