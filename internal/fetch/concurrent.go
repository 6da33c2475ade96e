package fetch

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// maxConcurrentFetches bounds the fan-out when extracting from several
// posting URLs at once.
const maxConcurrentFetches = 4

// PostingTexts fetches several posting pages concurrently and returns their
// main text in input order. The first failure cancels the remaining fetches.
func PostingTexts(ctx context.Context, urls []string, opts *Options) ([]string, error) {
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(maxConcurrentFetches)

	texts := make([]string, len(urls))
	for i, u := range urls {
		g.Go(func() error {
			text, err := PostingText(gctx, u, opts)
			if err != nil {
				return err
			}
			texts[i] = text
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return texts, nil
}
