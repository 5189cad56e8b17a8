package labels

import (
	"bytes"
	"context"
	"fmt"

	"nexus-asset-manager/internal/domain"
	"nexus-asset-manager/internal/logger"
	"nexus-asset-manager/internal/storage"
)

// Opener acquires an output context for one print job.
type Opener interface {
	Open(ctx context.Context) (Output, error)
}

// Output receives a composed HTML document and reports where it ended up.
type Output interface {
	Write(ctx context.Context, document []byte) (location string, err error)
	Close() error
}

// Printer delivers composed labels to an Opener.
type Printer struct {
	opener Opener
}

func NewPrinter(opener Opener) *Printer {
	return &Printer{opener: opener}
}

// Print composes a sheet for the queue in its current order.
func (p *Printer) Print(ctx context.Context, queue *Queue) (string, error) {
	if queue == nil || !queue.CanPrint() {
		return "", domain.ErrEmptyQueue
	}
	document, err := ComposeSheet(queue.Items())
	if err != nil {
		return "", err
	}
	return p.deliver(ctx, document)
}

// PrintSingle composes a single large label.
func (p *Printer) PrintSingle(ctx context.Context, asset domain.Asset) (string, error) {
	document, err := ComposeSingle(asset)
	if err != nil {
		return "", err
	}
	return p.deliver(ctx, document)
}

// deliver opens the output only after composition succeeded, so a refused
// output leaves nothing behind.
func (p *Printer) deliver(ctx context.Context, document []byte) (string, error) {
	out, err := p.opener.Open(ctx)
	if err != nil {
		logger.WarnContext(ctx, "Print output unavailable", "error", err)
		return "", fmt.Errorf("%w: %v", domain.ErrOutputUnavailable, err)
	}
	defer out.Close()

	location, err := out.Write(ctx, document)
	if err != nil {
		return "", fmt.Errorf("failed to write print output: %w", err)
	}
	logger.InfoContext(ctx, "Labels printed", "location", location, "bytes", len(document))
	return location, nil
}

// FileOpener stores each job as an HTML file in storage.
type FileOpener struct {
	store  storage.StorageInterface
	prefix string
}

func NewFileOpener(store storage.StorageInterface, prefix string) *FileOpener {
	return &FileOpener{store: store, prefix: prefix}
}

func (o *FileOpener) Open(ctx context.Context) (Output, error) {
	if o.store == nil {
		return nil, fmt.Errorf("no storage configured")
	}
	return &fileOutput{store: o.store, key: storage.NewKey(o.prefix, ".html")}, nil
}

type fileOutput struct {
	store storage.StorageInterface
	key   string
}

func (f *fileOutput) Write(ctx context.Context, document []byte) (string, error) {
	if err := f.store.SaveFile(ctx, f.key, bytes.NewReader(document)); err != nil {
		return "", err
	}
	return f.store.DownloadURL(f.key), nil
}

func (f *fileOutput) Close() error { return nil }
