package labels

import (
	"bytes"
	"context"
	"fmt"
	"os"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"

	"nexus-asset-manager/internal/logger"
	"nexus-asset-manager/internal/storage"
)

// detectChromePath checks the configured path and CHROME_PATH, then common installation paths
func detectChromePath(configured string) string {
	candidates := []string{configured, os.Getenv("CHROME_PATH")}
	candidates = append(candidates,
		"/usr/bin/chromium",
		"/usr/bin/chromium-browser",
		"/usr/bin/google-chrome",
		"/usr/bin/google-chrome-stable",
		"/snap/bin/chromium",
	)
	for _, path := range candidates {
		if path == "" {
			continue
		}
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

// PDFRenderer prints composed HTML to PDF with headless Chrome and stores the result.
type PDFRenderer struct {
	store      storage.StorageInterface
	prefix     string
	chromePath string
}

func NewPDFRenderer(store storage.StorageInterface, prefix, chromePath string) *PDFRenderer {
	return &PDFRenderer{store: store, prefix: prefix, chromePath: chromePath}
}

// Open starts a browser. A missing Chrome binary or a failed launch means no
// output context is available.
func (r *PDFRenderer) Open(ctx context.Context) (Output, error) {
	path := detectChromePath(r.chromePath)
	if path == "" {
		return nil, fmt.Errorf("chrome executable not found")
	}

	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.ExecPath(path),
		chromedp.NoSandbox, // Required for running in Docker/containers
	)
	allocCtx, allocCancel := chromedp.NewExecAllocator(ctx, opts...)
	browserCtx, browserCancel := chromedp.NewContext(allocCtx)

	logger.ExternalServiceCall("chrome", "launch", "path", path)
	if err := chromedp.Run(browserCtx, chromedp.ActionFunc(func(ctx context.Context) error {
		return page.Enable().Do(ctx)
	})); err != nil {
		browserCancel()
		allocCancel()
		logger.ExternalServiceResult("chrome", "launch", err)
		return nil, fmt.Errorf("failed to start chrome: %w", err)
	}

	return &pdfOutput{
		renderer: r,
		ctx:      browserCtx,
		cancel: func() {
			browserCancel()
			allocCancel()
		},
	}, nil
}

type pdfOutput struct {
	renderer *PDFRenderer
	ctx      context.Context
	cancel   context.CancelFunc
}

func (o *pdfOutput) Write(ctx context.Context, document []byte) (string, error) {
	var pdfBuf []byte
	err := chromedp.Run(o.ctx,
		chromedp.Navigate("about:blank"),
		chromedp.ActionFunc(func(ctx context.Context) error {
			tree, err := page.GetFrameTree().Do(ctx)
			if err != nil {
				return err
			}
			return page.SetDocumentContent(tree.Frame.ID, string(document)).Do(ctx)
		}),
		chromedp.WaitReady("body"),
		chromedp.ActionFunc(func(ctx context.Context) error {
			var err error
			pdfBuf, _, err = page.PrintToPDF().
				WithPrintBackground(true).
				Do(ctx)
			return err
		}),
	)
	logger.ExternalServiceResult("chrome", "print_to_pdf", err, "bytes", len(pdfBuf))
	if err != nil {
		return "", fmt.Errorf("failed to generate PDF: %w", err)
	}

	key := storage.NewKey(o.renderer.prefix, ".pdf")
	if err := o.renderer.store.SaveFile(ctx, key, bytes.NewReader(pdfBuf)); err != nil {
		return "", err
	}
	return o.renderer.store.DownloadURL(key), nil
}

func (o *pdfOutput) Close() error {
	o.cancel()
	return nil
}
