package gallery

import (
	"context"
	"io"

	"github.com/charmbracelet/log"
	"golang.org/x/sync/errgroup"
)

// Fetcher fetches the images of a single breed
type Fetcher interface {
	FetchImages(ctx context.Context, breed string) ([]string, error)
}

// Searcher runs searches against a Fetcher
type Searcher struct {
	fetcher     Fetcher
	logger      *log.Logger
	maxParallel int
}

// SearcherOption configures a Searcher
type SearcherOption func(*Searcher)

// WithLogger sets the logger used to report failed fetches
func WithLogger(logger *log.Logger) SearcherOption {
	return func(s *Searcher) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithMaxParallel bounds the number of concurrent fetches. Zero means no bound.
func WithMaxParallel(n int) SearcherOption {
	return func(s *Searcher) {
		s.maxParallel = n
	}
}

// NewSearcher creates a new Searcher
func NewSearcher(fetcher Fetcher, opts ...SearcherOption) *Searcher {
	s := &Searcher{
		fetcher: fetcher,
		logger:  log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Search fetches every breed of the request and aggregates the results.
// A failed breed never aborts the others; it contributes nothing.
func (s *Searcher) Search(ctx context.Context, req Request) Result {
	tokens := req.Tokens
	if req.Preset {
		tokens = PresetBreeds
	}

	var outcomes []Outcome
	switch len(tokens) {
	case 0:
		return Result{Generation: req.Generation}
	case 1:
		outcomes = []Outcome{s.fetch(ctx, tokens[0])}
	default:
		outcomes = s.fetchAll(ctx, tokens)
	}

	result := Aggregate(outcomes, req.Preset && len(tokens) > 1)
	result.Generation = req.Generation

	s.logger.Debug("Search completed", "breeds", len(tokens), "images", len(result.Images), "groups", len(result.Groups))
	return result
}

func (s *Searcher) fetch(ctx context.Context, breed string) Outcome {
	s.logger.Debug("Fetching images", "breed", breed)

	images, err := s.fetcher.FetchImages(ctx, breed)
	if err != nil {
		s.logger.Warn("Fetch failed", "breed", breed, "error", err)
		return Outcome{Breed: breed, Err: err}
	}
	return Outcome{Breed: breed, Images: images}
}

func (s *Searcher) fetchAll(ctx context.Context, tokens []string) []Outcome {
	outcomes := make([]Outcome, len(tokens))

	// Workers never return an error so one failed breed does not cancel the rest.
	var g errgroup.Group
	if s.maxParallel > 0 {
		g.SetLimit(s.maxParallel)
	}
	for i, breed := range tokens {
		i, breed := i, breed
		g.Go(func() error {
			outcomes[i] = s.fetch(ctx, breed)
			return nil
		})
	}
	_ = g.Wait()

	return outcomes
}

// Aggregate merges per-breed outcomes in order. With onePerBreed only the
// first image of each breed is kept and no groups are built; otherwise every
// list is concatenated and each breed gets its own group once there are at
// least two breeds. Failed breeds count as empty.
func Aggregate(outcomes []Outcome, onePerBreed bool) Result {
	result := Result{
		Images:   []string{},
		Outcomes: outcomes,
	}
	grouped := !onePerBreed && len(outcomes) > 1

	for _, o := range outcomes {
		images := o.Images
		if o.Err != nil {
			images = nil
		}
		if grouped {
			result.Groups = append(result.Groups, Group{
				Name:   o.Breed,
				Images: append([]string{}, images...),
			})
		}
		if onePerBreed {
			if len(images) > 0 {
				result.Images = append(result.Images, images[0])
			}
			continue
		}
		result.Images = append(result.Images, images...)
	}

	return result
}
