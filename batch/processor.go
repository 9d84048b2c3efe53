package batch

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"runtime"
	"sync"

	"github.com/panjf2000/ants/v2"

	"github.com/poiesic/careguide/core"
)

// Assessor runs triage and retrieval for one symptom description.
type Assessor interface {
	Assess(symptoms string, includeCandidates bool, topK int) core.Assessment
}

// Outcome is the assessment of one batch input.
type Outcome struct {
	Index      int             `json:"index"`
	ID         core.ID         `json:"id"`
	Symptoms   string          `json:"symptoms"`
	Assessment core.Assessment `json:"assessment"`
}

// Processor assesses symptom descriptions concurrently.
type Processor struct {
	assessor          Assessor
	pool              *ants.Pool
	topK              int
	includeCandidates bool
	progress          io.Writer
	reportInterval    int
	logger            *slog.Logger
}

// Option configures a Processor.
type Option func(*Processor) error

// WithPoolSize sets the worker pool size.
// Default is runtime.NumCPU(), with a minimum of 1.
func WithPoolSize(size int) Option {
	return func(p *Processor) error {
		if size < 1 {
			size = 1
		}

		pool, err := ants.NewPool(size)
		if err != nil {
			return err
		}
		if p.pool != nil {
			p.pool.Release()
		}
		p.pool = pool
		return nil
	}
}

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(p *Processor) error {
		if logger == nil {
			logger = slog.Default()
		}
		p.logger = logger
		return nil
	}
}

// WithTopK sets the number of documents retrieved per input.
// Zero or less leaves the choice to the assessor.
func WithTopK(topK int) Option {
	return func(p *Processor) error {
		p.topK = topK
		return nil
	}
}

// WithCandidates includes the full candidate list in each assessment.
func WithCandidates(include bool) Option {
	return func(p *Processor) error {
		p.includeCandidates = include
		return nil
	}
}

// WithProgress reports progress to w every interval completed inputs.
func WithProgress(w io.Writer, interval int) Option {
	return func(p *Processor) error {
		p.progress = w
		p.reportInterval = interval
		return nil
	}
}

// NewProcessor creates a new batch processor.
func NewProcessor(assessor Assessor, opts ...Option) (*Processor, error) {
	if assessor == nil {
		return nil, ErrAssessorRequired
	}

	poolSize := max(runtime.NumCPU(), 1)
	pool, err := ants.NewPool(poolSize)
	if err != nil {
		return nil, err
	}

	p := &Processor{
		assessor:       assessor,
		pool:           pool,
		reportInterval: 10,
		logger:         slog.Default(),
	}

	for _, opt := range opts {
		if optErr := opt(p); optErr != nil {
			p.Release()
			return nil, optErr
		}
	}

	return p, nil
}

// Process assesses every input and returns the outcomes in input order.
// Cancelling ctx stops new work from starting; Process then waits for the
// running tasks and returns the context error.
func (p *Processor) Process(ctx context.Context, inputs []string) ([]Outcome, error) {
	outcomes := make([]Outcome, len(inputs))

	var tracker *ProgressTracker
	if p.progress != nil {
		tracker = NewProgressTracker(p.progress, len(inputs), p.reportInterval)
		tracker.Start()
	}

	var (
		wg        sync.WaitGroup
		submitErr error
	)
	for i, symptoms := range inputs {
		if ctx.Err() != nil {
			break
		}
		wg.Add(1)
		err := p.pool.Submit(func() {
			defer wg.Done()
			if ctx.Err() != nil {
				return
			}
			outcomes[i] = Outcome{
				Index:      i,
				ID:         core.IDFromContent(symptoms),
				Symptoms:   symptoms,
				Assessment: p.assessor.Assess(symptoms, p.includeCandidates, p.topK),
			}
			if tracker != nil {
				tracker.Increment(1)
			}
		})
		if err != nil {
			wg.Done()
			submitErr = fmt.Errorf("%w: %w", ErrSubmitFailed, err)
			break
		}
	}
	wg.Wait()

	if tracker != nil {
		tracker.Finish()
	}

	if submitErr != nil {
		p.logger.Error("batch aborted", "err", submitErr)
		return nil, submitErr
	}
	if err := ctx.Err(); err != nil {
		p.logger.Warn("batch cancelled", "inputs", len(inputs), "err", err)
		return nil, err
	}

	p.logger.Debug("batch complete", "inputs", len(inputs), "workers", p.pool.Cap())
	return outcomes, nil
}

// Release releases the worker pool.
// The processor should not be used after calling Release.
func (p *Processor) Release() {
	if p.pool != nil {
		p.pool.Release()
	}
}
