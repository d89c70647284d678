package gallery

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/levizillow/lorempicsum/internal/picsum"
)

// ImageSource is the slice of the picsum client the fetcher needs.
type ImageSource interface {
	FetchImage(ctx context.Context, spec picsum.ImageSpec) (picsum.ImageRef, error)
	Info(ctx context.Context, id string) (picsum.ImageInfo, error)
}

// Fetcher assembles one gallery's worth of images for a filter.
type Fetcher struct {
	src  ImageSource
	size int
}

func NewFetcher(src ImageSource, size int) *Fetcher {
	if size <= 0 {
		size = 10
	}
	return &Fetcher{src: src, size: size}
}

// BatchSize returns the number of items per batch.
func (f *Fetcher) BatchSize() int { return f.size }

// FetchBatch requests size images concurrently under the given filter and
// joins the results in request-index order. The batch is all-or-nothing: if
// any request fails the whole batch fails and no items are returned.
//
// Each request carries a batch-unique random token so refreshing under an
// unchanged filter still yields fresh images instead of cached duplicates.
func (f *Fetcher) FetchBatch(ctx context.Context, flt Filter) ([]Item, error) {
	run := uuid.NewString()
	items := make([]Item, f.size)
	errs := make([]error, f.size)

	var wg sync.WaitGroup
	for i := 0; i < f.size; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			items[i], errs[i] = f.fetchOne(ctx, flt, fmt.Sprintf("%s-%d", run, i))
		}(i)
	}
	wg.Wait()

	for i, err := range errs {
		if err != nil {
			return nil, fmt.Errorf("fetch batch: request %d: %w", i, err)
		}
	}
	return items, nil
}

func (f *Fetcher) fetchOne(ctx context.Context, flt Filter, random string) (Item, error) {
	ref, err := f.src.FetchImage(ctx, picsum.ImageSpec{
		Width:  flt.Width,
		Height: flt.Height,
		Blur:   flt.Blur,
		Grey:   flt.Grey,
		Random: random,
	})
	if err != nil {
		return Item{}, err
	}
	info, err := f.src.Info(ctx, ref.ID)
	if err != nil {
		return Item{}, err
	}
	return Item{
		ID:           ref.ID,
		URI:          ref.URL,
		Photographer: info.Author,
		Width:        flt.Width,
		Height:       flt.Height,
	}, nil
}
