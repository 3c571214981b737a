package linter

import (
	"context"
	"crypto/sha256"
	"errors"
	"runtime"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/platinummonkey/yamllint/pkg/observability"
	"github.com/platinummonkey/yamllint/pkg/scanner"
	"github.com/platinummonkey/yamllint/pkg/token"
)

// SyntaxRule is the rule ID reported for documents that cannot be scanned
const SyntaxRule = "syntax"

// LintEngine orchestrates the linting process
type LintEngine struct {
	config   *Config
	registry *RuleRegistry
	log      *logrus.Logger
	metrics  *observability.Metrics
	cache    *lru.Cache[[sha256.Size]byte, cachedResult]
	workers  int

	mu       sync.Mutex
	active   []*ActiveRule
	resolved int
}

// cachedResult is what the result cache keeps per document content
type cachedResult struct {
	problems []Problem
	tokens   int
}

// EngineOption configures a LintEngine
type EngineOption func(*LintEngine)

// WithLogger sets the engine logger
func WithLogger(log *logrus.Logger) EngineOption {
	return func(e *LintEngine) {
		e.log = log
	}
}

// WithMetrics records lint metrics into m
func WithMetrics(m *observability.Metrics) EngineOption {
	return func(e *LintEngine) {
		e.metrics = m
	}
}

// WithCache keeps the problems of up to size documents, keyed by content
func WithCache(size int) EngineOption {
	return func(e *LintEngine) {
		if size <= 0 {
			return
		}
		cache, err := lru.New[[sha256.Size]byte, cachedResult](size)
		if err == nil {
			e.cache = cache
		}
	}
}

// WithWorkers bounds how many documents LintFiles lints at once
func WithWorkers(n int) EngineOption {
	return func(e *LintEngine) {
		if n > 0 {
			e.workers = n
		}
	}
}

// NewLintEngine creates a new lint engine
func NewLintEngine(config *Config, opts ...EngineOption) *LintEngine {
	if config == nil {
		config = DefaultConfig()
	}

	e := &LintEngine{
		config:   config,
		registry: NewRuleRegistry(),
		workers:  runtime.GOMAXPROCS(0),
		resolved: -1,
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.log == nil {
		e.log = logrus.New()
	}

	return e
}

// Registry returns the rule registry
func (e *LintEngine) Registry() *RuleRegistry {
	return e.registry
}

// Config returns the engine configuration
func (e *LintEngine) Config() *Config {
	return e.config
}

// Prepare resolves the configuration against the registered rules. It is
// called implicitly by Lint; calling it up front surfaces configuration
// errors before any document is read.
func (e *LintEngine) Prepare() ([]*ActiveRule, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.resolved == e.registry.Version() && e.active != nil {
		return e.active, nil
	}

	active, err := e.registry.Resolve(e.config)
	if err != nil {
		return nil, err
	}

	e.active = active
	e.resolved = e.registry.Version()
	if e.cache != nil {
		e.cache.Purge()
	}

	ids := make([]string, len(active))
	for i, a := range active {
		ids[i] = a.ID()
	}
	e.log.WithField("rules", ids).Debug("resolved active rules")

	return active, nil
}

// Lint scans src and runs all enabled rules against it. A document that
// cannot be scanned returns a *ScanError and no problems.
func (e *LintEngine) Lint(filePath string, src []byte) (LintResult, error) {
	active, err := e.Prepare()
	if err != nil {
		return LintResult{FilePath: filePath}, err
	}

	start := time.Now()
	var key [sha256.Size]byte
	if e.cache != nil {
		key = sha256.Sum256(src)
		if cached, ok := e.cache.Get(key); ok {
			e.metrics.RecordCache(true)
			e.recordProblems(cached.problems)
			e.metrics.RecordDocument(documentStatus(cached.problems), cached.tokens, time.Since(start))
			return LintResult{
				FilePath: filePath,
				Problems: cloneProblems(cached.problems),
				Tokens:   cached.tokens,
				Cached:   true,
			}, nil
		}
		e.metrics.RecordCache(false)
	}

	tokens, err := scanner.Tokenize(src)
	if err != nil {
		e.metrics.RecordDocument(observability.StatusSyntaxError, 0, time.Since(start))
		e.log.WithField("file", filePath).WithError(err).Debug("scan failed")
		return LintResult{FilePath: filePath}, &ScanError{Path: filePath, Err: err}
	}

	result, err := e.run(filePath, active, token.NewSliceStream(tokens), start)
	if err == nil && e.cache != nil {
		e.cache.Add(key, cachedResult{problems: cloneProblems(result.Problems), tokens: result.Tokens})
	}
	return result, err
}

// LintTokens runs all enabled rules over an already scanned stream
func (e *LintEngine) LintTokens(filePath string, stream token.Stream) (LintResult, error) {
	active, err := e.Prepare()
	if err != nil {
		return LintResult{FilePath: filePath}, err
	}
	return e.run(filePath, active, stream, time.Now())
}

func (e *LintEngine) run(filePath string, active []*ActiveRule, stream token.Stream, start time.Time) (LintResult, error) {
	d := NewDispatcher(stream, active)
	problems, err := d.Run()

	result := LintResult{
		FilePath: filePath,
		Problems: problems,
		Tokens:   d.Steps(),
	}

	e.recordProblems(problems)
	status := documentStatus(problems)

	var defects *DefectError
	if errors.As(err, &defects) {
		defects.Path = filePath
		status = observability.StatusDefect
		for _, d := range defects.Defects {
			e.metrics.RecordDefect(d.Rule)
			e.log.WithFields(logrus.Fields{
				"file":  filePath,
				"rule":  d.Rule,
				"token": d.Token.String(),
			}).Warnf("rule panicked: %v", d.Value)
		}
	}

	e.metrics.RecordDocument(status, result.Tokens, time.Since(start))
	e.log.WithFields(logrus.Fields{
		"file":     filePath,
		"tokens":   result.Tokens,
		"problems": len(problems),
	}).Debug("linted document")

	return result, err
}

func (e *LintEngine) recordProblems(problems []Problem) {
	for _, p := range problems {
		e.metrics.RecordProblem(p.Rule, string(p.Severity))
	}
}

func documentStatus(problems []Problem) string {
	if len(problems) > 0 {
		return observability.StatusProblems
	}
	return observability.StatusClean
}

// LintFiles lints several documents concurrently, one dispatcher per
// document. Results come back in path order; per-document errors are
// joined and do not stop the other documents.
func (e *LintEngine) LintFiles(ctx context.Context, files map[string][]byte) ([]LintResult, error) {
	if _, err := e.Prepare(); err != nil {
		return nil, err
	}

	paths := make([]string, 0, len(files))
	for path := range files {
		paths = append(paths, path)
	}
	sort.Strings(paths)

	ctx = observability.WithRunID(observability.WithLogger(ctx, e.log), uuid.New().String())
	log := observability.FromContext(ctx).WithField("files", len(paths))
	log.Debug("lint run started")

	results := make([]LintResult, len(paths))
	errs := make([]error, len(paths))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(e.workers)
	for i, path := range paths {
		i, path := i, path
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			results[i], errs[i] = e.Lint(path, files[path])
			if errs[i] != nil {
				observability.FromContext(gctx).WithField("file", path).WithError(errs[i]).Debug("document failed")
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	err := errors.Join(errs...)
	log.WithField("failed", err != nil).Debug("lint run finished")
	return results, err
}

// GenerateSummary creates a summary of lint results
func (e *LintEngine) GenerateSummary(results []LintResult) Summary {
	summary := Summary{
		TotalFiles: len(results),
	}

	for _, result := range results {
		summary.TotalProblems += len(result.Problems)
		for _, p := range result.Problems {
			switch p.Severity {
			case SeverityError:
				summary.Errors++
			case SeverityWarning:
				summary.Warnings++
			case SeverityInfo:
				summary.Infos++
			}
		}
	}

	return summary
}

// SyntaxProblem converts a scan failure returned by Lint into a problem
// so it can be reported alongside rule findings
func SyntaxProblem(err error) (Problem, bool) {
	var scanErr *scanner.Error
	if !errors.As(err, &scanErr) {
		return Problem{}, false
	}
	return Problem{
		Position: At(scanErr.Pos.Line, scanErr.Pos.Column),
		Rule:     SyntaxRule,
		Message:  "syntax error: " + scanErr.Msg,
		Severity: SeverityError,
	}, true
}

func cloneProblems(problems []Problem) []Problem {
	if problems == nil {
		return nil
	}
	out := make([]Problem, len(problems))
	copy(out, problems)
	return out
}

// LintResult contains the result of linting a single file
type LintResult struct {
	FilePath string
	Problems []Problem
	Tokens   int
	Cached   bool
}

// Summary provides an overview of all lint results
type Summary struct {
	TotalFiles    int
	TotalProblems int
	Errors        int
	Warnings      int
	Infos         int
}
