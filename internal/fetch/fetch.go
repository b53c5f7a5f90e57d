// Package fetch downloads installer archives so container builds can run
// against a local cache instead of the upstream mirrors.
package fetch

import (
	"fmt"
	"io"
	"net/http"
	"os"
	"path"
	"path/filepath"
	"sync"
	"sync/atomic"
	"time"

	"github.com/schollz/progressbar/v3"

	"github.com/yarikoptic/neurodocker/internal/utils/logger"
)

// Fetch downloads the given URLs into destDir using a pool of workers.
// It shows a single progress bar tracking files completed vs total and
// returns an error if any download failed.
func Fetch(urls []string, destDir string, workers int) error {
	log := logger.Logger()

	if workers < 1 {
		workers = 1
	}
	total := len(urls)
	jobs := make(chan string, total)
	var wg sync.WaitGroup
	var failed int64

	bar := progressbar.NewOptions(total,
		progressbar.OptionFullWidth(),
		progressbar.OptionShowDescriptionAtLineEnd(),
		progressbar.OptionSetDescription("downloading"),
		progressbar.OptionSetWidth(40),
		progressbar.OptionShowCount(),
		progressbar.OptionThrottle(100*time.Millisecond),
	)

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for url := range jobs {
				name := path.Base(url)
				bar.Describe(fmt.Sprintf("downloading %s", name))

				if err := fetchOne(url, destDir); err != nil {
					log.Errorf("downloading %s failed: %v", url, err)
					atomic.AddInt64(&failed, 1)
				}
				bar.Add(1)
			}
		}()
	}

	for _, u := range urls {
		jobs <- u
	}
	close(jobs)

	wg.Wait()
	bar.Finish()

	if n := atomic.LoadInt64(&failed); n > 0 {
		return fmt.Errorf("%d of %d downloads failed", n, total)
	}
	return nil
}

func fetchOne(url, destDir string) error {
	resp, err := http.Get(url)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("bad status: %s", resp.Status)
	}

	if err := os.MkdirAll(destDir, 0755); err != nil {
		return err
	}

	destPath := filepath.Join(destDir, path.Base(url))
	out, err := os.Create(destPath)
	if err != nil {
		return err
	}
	defer out.Close()

	if _, err := io.Copy(out, resp.Body); err != nil {
		return err
	}
	return nil
}
