package output

import (
	"context"

	"github.com/deepmindru-afk/superuzyr/internal/domain/entity"
)

type BrowserPort interface {
	Navigate(ctx context.Context, url string) error
	Click(ctx context.Context, selector string) error
	Fill(ctx context.Context, selector, text string) error

	Text(ctx context.Context, selector string) (string, error)
	PageHTML(ctx context.Context) (string, error)
	Screenshot(ctx context.Context) (*entity.Screenshot, error)

	CurrentURL() string
	Close()
}

// BrowserFactory opens a fresh browser for a single run.
type BrowserFactory func(ctx context.Context) (BrowserPort, error)
