package main

import (
	"context"
	"encoding/base64"
	"fmt"
	"os"
	"time"

	"github.com/chromedp/chromedp"
	"github.com/spf13/cobra"

	"github.com/accessplot/accessplot"
)

func newPreviewCmd() *cobra.Command {
	var (
		outputPath string
		timeout    time.Duration
	)

	cmd := &cobra.Command{
		Use:   "preview [input.html]",
		Short: "Render a saved HTML chart page to PNG",
		Long: `preview loads a saved HTML page in headless Chrome via a data URI
and screenshots its SVG element. Chrome must be installed locally.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPreview(args[0], outputPath, timeout)
		},
	}

	cmd.Flags().StringVarP(&outputPath, "output", "o", "preview.png", "Output PNG path")
	cmd.Flags().DurationVar(&timeout, "timeout", 30*time.Second, "Rendering timeout")
	return cmd
}

func runPreview(inputPath, outputPath string, timeout time.Duration) error {
	page, err := os.ReadFile(inputPath)
	if err != nil {
		return fmt.Errorf("reading %s: %w", inputPath, err)
	}

	shot, err := screenshotSVG(page, timeout)
	if err != nil {
		return err
	}

	if err := os.WriteFile(outputPath, shot, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", outputPath, err)
	}
	accessplot.Logger().Debug("preview saved", "path", outputPath, "bytes", len(shot))
	fmt.Fprintf(os.Stderr, "preview written to %s\n", outputPath)
	return nil
}

// screenshotSVG loads the page as a data URI in headless Chrome and
// screenshots the first SVG element.
func screenshotSVG(page []byte, timeout time.Duration) ([]byte, error) {
	dataURI := "data:text/html;base64," + base64.StdEncoding.EncodeToString(page)

	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Headless,
	)
	allocCtx, cancelAlloc := chromedp.NewExecAllocator(context.Background(), opts...)
	defer cancelAlloc()

	ctx, cancelCtx := chromedp.NewContext(allocCtx)
	defer cancelCtx()

	ctx, cancelTimeout := context.WithTimeout(ctx, timeout)
	defer cancelTimeout()

	var buf []byte
	tasks := chromedp.Tasks{
		chromedp.Navigate(dataURI),
		chromedp.WaitVisible(`svg`, chromedp.ByQuery),
		chromedp.Screenshot(`svg`, &buf, chromedp.ByQuery),
	}
	if err := chromedp.Run(ctx, tasks); err != nil {
		return nil, fmt.Errorf("rendering in headless chrome: %w", err)
	}
	if len(buf) == 0 {
		return nil, fmt.Errorf("rendering in headless chrome: empty screenshot")
	}
	return buf, nil
}
