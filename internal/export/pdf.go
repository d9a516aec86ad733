// Package export prints HTML reports to PDF in headless Chrome.
package export

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"
	"go.uber.org/zap"
)

// Options controls PDF output.
type Options struct {
	Timeout         time.Duration
	PaperWidth      float64 // inches
	PaperHeight     float64 // inches
	PrintBackground bool
	Landscape       bool
	// ExecPath overrides Chrome discovery, e.g. "/usr/bin/chromium".
	ExecPath string
	Logger   *zap.Logger
}

// DefaultOptions returns US Letter portrait output with backgrounds and a 30s timeout.
func DefaultOptions() Options {
	return Options{
		Timeout:         30 * time.Second,
		PaperWidth:      8.5,
		PaperHeight:     11,
		PrintBackground: true,
	}
}

// Error represents a failure to produce a PDF
type Error struct {
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("pdf export error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("pdf export error: %s", e.Message)
}

func (e *Error) Unwrap() error {
	return e.Cause
}

func (o Options) validate() error {
	if o.Timeout <= 0 {
		return &Error{Message: "timeout must be positive"}
	}
	if o.PaperWidth <= 0 || o.PaperHeight <= 0 {
		return &Error{Message: fmt.Sprintf("invalid paper size %.2fx%.2f", o.PaperWidth, o.PaperHeight)}
	}
	return nil
}

func (o Options) allocatorOptions() []chromedp.ExecAllocatorOption {
	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", true),
		chromedp.Flag("disable-gpu", true),
		chromedp.Flag("no-sandbox", true),
		chromedp.Flag("disable-dev-shm-usage", true),
	)
	if o.ExecPath != "" {
		opts = append(opts, chromedp.ExecPath(o.ExecPath))
	}
	return opts
}

// PrintPDF loads html into a blank page and prints it. Requires Chrome/Chromium to be
// installed on the system.
func PrintPDF(ctx context.Context, html string, opts Options) ([]byte, error) {
	if strings.TrimSpace(html) == "" {
		return nil, &Error{Message: "html is empty"}
	}
	if err := opts.validate(); err != nil {
		return nil, err
	}
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}

	allocCtx, cancel := chromedp.NewExecAllocator(ctx, opts.allocatorOptions()...)
	defer cancel()

	browserCtx, cancel := chromedp.NewContext(allocCtx)
	defer cancel()

	browserCtx, cancel = context.WithTimeout(browserCtx, opts.Timeout)
	defer cancel()

	log.Debug("Printing PDF", zap.Int("html_bytes", len(html)), zap.Duration("timeout", opts.Timeout))

	var pdf []byte
	err := chromedp.Run(browserCtx,
		chromedp.Navigate("about:blank"),
		chromedp.ActionFunc(func(ctx context.Context) error {
			tree, err := page.GetFrameTree().Do(ctx)
			if err != nil {
				return err
			}
			return page.SetDocumentContent(tree.Frame.ID, html).Do(ctx)
		}),
		chromedp.WaitReady("body"),
		chromedp.ActionFunc(func(ctx context.Context) error {
			buf, _, err := page.PrintToPDF().
				WithPrintBackground(opts.PrintBackground).
				WithLandscape(opts.Landscape).
				WithPaperWidth(opts.PaperWidth).
				WithPaperHeight(opts.PaperHeight).
				Do(ctx)
			pdf = buf
			return err
		}),
	)
	if err != nil {
		return nil, &Error{Message: "browser printing failed", Cause: err}
	}

	log.Debug("Printed PDF", zap.Int("pdf_bytes", len(pdf)))
	return pdf, nil
}
