package ale

import (
	"log/slog"
	"slices"
	"strings"

	"alecheck/internal/logging"
	"alecheck/internal/textutil"
)

// Processor turns one ALE document into a Result. It holds no state between
// calls but is not meant to be shared across goroutines mid-call.
type Processor struct {
	conv   Convention
	rules  []Rule
	logger *slog.Logger
}

// Option customizes a Processor.
type Option func(*Processor)

// WithLogger attaches a logger. The default discards output.
func WithLogger(logger *slog.Logger) Option {
	return func(p *Processor) {
		if logger != nil {
			p.logger = logger
		}
	}
}

// WithRules replaces the rule registry.
func WithRules(rules []Rule) Option {
	return func(p *Processor) {
		p.rules = rules
	}
}

// NewProcessor builds a processor for the given deployment convention.
func NewProcessor(conv Convention, opts ...Option) *Processor {
	p := &Processor{
		conv:   conv,
		rules:  Rules,
		logger: logging.NewNop(),
	}
	for _, opt := range opts {
		opt(p)
	}
	p.logger = logging.NewComponentLogger(p.logger, "ale")
	return p
}

// Convention returns the deployment convention in use.
func (p *Processor) Convention() Convention {
	return p.conv
}

// ProcessBytes decodes raw file content and processes it.
func (p *Processor) ProcessBytes(data []byte) Result {
	return p.Process(textutil.DecodeDocument(data))
}

// Process parses the document text. Structural failures are reported as
// GlobalErrors with no rows; otherwise every data line yields a Record, with
// failing records first.
func (p *Processor) Process(text string) Result {
	lines := SplitLines(text)
	res := Result{GlobalErrors: []GlobalError{}, Rows: []Record{}}

	sections, gerr := LocateSections(lines)
	if gerr != nil {
		return p.fail(res, gerr)
	}

	headers := SplitHeader(lines[sections.Header])
	optional := append([]string{ColIngestator, ColIngestManual, ColEsta}, DecoratedColumns...)
	cols, gerr := MapColumns(headers, RequiredColumns, optional)
	if gerr != nil {
		return p.fail(res, gerr)
	}

	for i := sections.DataStart; i < len(lines); i++ {
		cells := strings.Split(lines[i], "\t")
		res.Rows = append(res.Rows, p.buildRecord(cols, cells, i+1))
	}
	SortFailingFirst(res.Rows)

	p.logger.Debug("ale document processed",
		logging.Int("lines", len(lines)),
		logging.Int("records", len(res.Rows)),
		logging.Int("failing", res.FailingCount()),
	)
	return res
}

func (p *Processor) fail(res Result, gerr *GlobalError) Result {
	p.logger.Debug("ale document rejected", logging.String("reason", gerr.Message))
	res.GlobalErrors = append(res.GlobalErrors, *gerr)
	return res
}

func (p *Processor) buildRecord(cols ColumnMap, cells []string, line int) Record {
	rec := Record{
		Name:       cols.Value(cells, ColName),
		SourceFile: cols.Value(cells, ColSourceFile),
		SourcePath: cols.Value(cells, ColSourcePath),
		Session:    cols.Value(cells, ColSession),
		Duration:   cols.Value(cells, ColDuration),
		Line:       line,
	}
	rec.Fullpath = JoinSourcePath(rec.SourcePath, rec.SourceFile)

	overridden := false
	switch p.conv.DecorMode {
	case DecorFlag:
		rec.Esta = flag(cols.Value(cells, ColEsta))
	default:
		raw, _ := cols.First(cells, DecoratedColumns...)
		rec.DecoratedName = textutil.DecoratedToken(raw)
		overridden = rec.DecoratedName != ""
		rec.Esta = flagFalse
		if overridden {
			rec.Esta = flagTrue
		}
	}
	rec.IngestManual = flag(cols.Value(cells, ColIngestManual))
	rec.Ingestator = cols.Value(cells, ColIngestator)

	rec.Errors = Validate(rec, p.conv, ApplicableRules(p.rules, overridden))
	if rec.Errors == nil {
		rec.Errors = []string{}
	}
	rec.Error = strings.Join(rec.Errors, ErrorSeparator)
	return rec
}

// SortFailingFirst moves records with a non-empty Error ahead of clean ones,
// preserving relative order inside each group.
func SortFailingFirst(rows []Record) {
	slices.SortStableFunc(rows, func(a, b Record) int {
		switch {
		case !a.OK() && b.OK():
			return -1
		case a.OK() && !b.OK():
			return 1
		default:
			return 0
		}
	})
}

// JoinSourcePath joins the source path and file. The separator follows the
// path's own style so Windows paths keep backslashes.
func JoinSourcePath(dir, file string) string {
	if dir == "" {
		return file
	}
	if strings.HasSuffix(dir, "/") || strings.HasSuffix(dir, `\`) {
		return dir + file
	}
	sep := "/"
	if strings.Contains(dir, `\`) && !strings.Contains(dir, "/") {
		sep = `\`
	}
	return dir + sep + file
}
