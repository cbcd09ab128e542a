// Package fetch is the concurrent corpus-ingestion pipeline: a fixed pool
// of workers drains a shared stack of work groups, listing package contents
// through an external collaborator and handing completed batches to a
// single consumer over a rendezvous channel.
package fetch

import (
	"fmt"
	"sync"

	"github.com/rs/zerolog"

	"manvet/pkg/ips"
	"manvet/pkg/logging"
)

// ContentLister is the external collaborator that produces the action list
// of one package. pkgrepo.Client satisfies it; tests inject fakes.
type ContentLister interface {
	Contents(repo string, pkg ips.Package) ([]ips.Action, error)
}

// WorkItem pairs a repository with one package to list.
type WorkItem struct {
	Repo string
	Pkg  ips.Package
}

// WorkGroup is a small ordered list of WorkItems dispatched and completed
// together; its results travel as a single batch.
type WorkGroup struct {
	Items []WorkItem
}

// Result is the content listing of one package.
type Result struct {
	Repo     string
	Pkg      ips.Package
	Contents []ips.Action
}

// Batch is the completed results of one WorkGroup, in group order.
type Batch []Result

// Fetcher holds the shared work stack. Populate it with Append, then call
// Run once. Workers pop groups until the stack is empty; the lock is held
// only for the duration of a single pop.
type Fetcher struct {
	lister ContentLister
	logger zerolog.Logger

	mu    sync.Mutex
	queue []WorkGroup

	errOnce sync.Once
	err     error
}

// New returns a Fetcher that lists contents through the given collaborator.
func New(lister ContentLister) *Fetcher {
	return &Fetcher{
		lister: lister,
		logger: logging.GetLogger("fetch"),
	}
}

// Append pushes one work group onto the shared stack.
func (f *Fetcher) Append(items ...WorkItem) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.queue = append(f.queue, WorkGroup{Items: items})
}

// Run spawns the worker pool and returns the result channel. The channel is
// unbuffered: each send blocks until the consumer receives, so at most one
// unconsumed batch exists regardless of worker count. The channel closes
// once every worker has exited; after that, Err reports whether the run
// completed cleanly. Any item failure stops the run — there is no partial
// corpus.
func (f *Fetcher) Run(workers int) <-chan Batch {
	ch := make(chan Batch)

	go func() {
		var wg sync.WaitGroup

		for n := 0; n < workers; n++ {
			wg.Add(1)
			name := fmt.Sprintf("w%02d", n+1)

			go func() {
				defer wg.Done()
				f.work(name, ch)
			}()
		}

		wg.Wait()
		close(ch)
	}()

	return ch
}

// Err reports the first failure observed by any worker. Only meaningful
// once the channel returned by Run has closed.
func (f *Fetcher) Err() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.err
}

func (f *Fetcher) work(name string, ch chan<- Batch) {
	logger := f.logger.With().Str("worker", name).Logger()

	for {
		g, ok := f.pop()
		if !ok {
			logger.Trace().Msg("queue empty, worker exiting")
			return
		}

		batch := make(Batch, 0, len(g.Items))
		failed := false
		for _, item := range g.Items {
			contents, err := f.lister.Contents(item.Repo, item.Pkg)
			if err != nil {
				f.fail(err)
				logger.Error().Err(err).Str("pkg", item.Pkg.Name).Msg("content listing failed")
				failed = true
				break
			}
			batch = append(batch, Result{
				Repo:     item.Repo,
				Pkg:      item.Pkg,
				Contents: contents,
			})
		}
		if failed {
			return
		}

		ch <- batch
	}
}

// pop takes one group off the stack. It reports no work both when the
// stack is empty and when the run has already failed, so a failure winds
// down every worker promptly.
func (f *Fetcher) pop() (WorkGroup, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.err != nil || len(f.queue) == 0 {
		return WorkGroup{}, false
	}

	g := f.queue[len(f.queue)-1]
	f.queue = f.queue[:len(f.queue)-1]
	return g, true
}

func (f *Fetcher) fail(err error) {
	f.errOnce.Do(func() {
		f.mu.Lock()
		defer f.mu.Unlock()
		f.err = err
	})
}
