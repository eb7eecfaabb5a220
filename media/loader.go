package media

import (
	"context"
	"errors"
	"io/fs"
	"log/slog"
	"sync"

	"github.com/lixenwraith/ringdial/logging"
)

const (
	// DefaultWorkers bounds concurrent decodes
	DefaultWorkers = 4
	queueSize      = 64
)

// ErrNotQueued marks a load the loader refused (closed or queue full)
var ErrNotQueued = errors.New("media: load not queued")

type job struct {
	name string
	done func(*Clip, error)
}

// Loader decodes media files on a fixed pool of worker goroutines
type Loader struct {
	fsys fs.FS
	jobs chan job

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup

	mu    sync.Mutex
	cache map[string]*Clip

	log *slog.Logger
}

// NewLoader starts workers reading from fsys
func NewLoader(fsys fs.FS, workers int) *Loader {
	if workers <= 0 {
		workers = DefaultWorkers
	}
	ctx, cancel := context.WithCancel(context.Background())
	l := &Loader{
		fsys:   fsys,
		jobs:   make(chan job, queueSize),
		ctx:    ctx,
		cancel: cancel,
		cache:  make(map[string]*Clip),
		log:    logging.For("media"),
	}
	for range workers {
		l.wg.Add(1)
		go l.worker()
	}
	return l
}

func (l *Loader) worker() {
	defer l.wg.Done()
	for {
		select {
		case <-l.ctx.Done():
			return
		case j := <-l.jobs:
			clip, err := l.decode(j.name)
			j.done(clip, err)
		}
	}
}

func (l *Loader) decode(name string) (*Clip, error) {
	l.mu.Lock()
	if c, ok := l.cache[name]; ok {
		l.mu.Unlock()
		return c, nil
	}
	l.mu.Unlock()

	c, err := Decode(l.fsys, name)
	if err != nil {
		l.log.Debug("media decode failed", "path", name, "err", err)
		return nil, err
	}

	l.mu.Lock()
	l.cache[name] = c
	l.mu.Unlock()
	return c, nil
}

// Load queues a decode without blocking. done runs on a worker goroutine.
// Returns false when the loader is closed or the queue is full; a dropped job never calls done
func (l *Loader) Load(name string, done func(*Clip, error)) bool {
	if l.ctx.Err() != nil {
		return false
	}
	select {
	case l.jobs <- job{name: name, done: done}:
		return true
	default:
		l.log.Debug("media queue full, dropped", "path", name)
		return false
	}
}

// Close stops the workers and waits for them
func (l *Loader) Close() {
	l.cancel()
	l.wg.Wait()
}
