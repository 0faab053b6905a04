// Package sync reconciles the in-memory document with the local cache
// and the authoritative per-user remote store. Every state change is
// written to the cache synchronously; remote writes are debounced so
// rapid interactive edits collapse into a single upsert of the latest
// state. Remote failures are captured as advisory state and never block
// or roll back local editing.
package sync

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/strata-app/strata/cache"
	"github.com/strata-app/strata/remote"
	"github.com/strata-app/strata/schema"
	"github.com/strata-app/strata/types"
)

const (
	// DefaultDebounce is the quiet period after the last edit before
	// the remote write fires.
	DefaultDebounce = time.Second

	// DefaultRequestTimeout bounds each remote call so a hung network
	// request cannot pin the sync indicator forever.
	DefaultRequestTimeout = 15 * time.Second
)

// ErrClosed is returned by operations on a closed engine.
var ErrClosed = errors.New("sync engine is closed")

// Options configures an Engine.
type Options struct {
	// Cache is the local store. Required.
	Cache *cache.Store

	// Remote is the per-user remote store. Optional: with no remote
	// the engine runs local-only and never leaves the unauthenticated
	// state.
	Remote remote.Store

	// Debounce is the quiet period before a scheduled remote write
	// fires. Defaults to DefaultDebounce.
	Debounce time.Duration

	// RequestTimeout bounds each remote call. Defaults to
	// DefaultRequestTimeout.
	RequestTimeout time.Duration

	// Logger receives structured sync events. Defaults to slog.Default().
	Logger *slog.Logger
}

// Engine owns one session's document state and its synchronization
// lifecycle. It is created per session and torn down with Close; there
// is no process-wide state.
//
// The engine starts unauthenticated. SetIdentity runs the once-per-
// identity load pass; after that every Set schedules a debounced remote
// write. ClearIdentity (sign-out) resets the load guard so a later
// sign-in loads fresh.
type Engine struct {
	cache    *cache.Store
	remote   remote.Store
	debounce time.Duration
	timeout  time.Duration
	logger   *slog.Logger

	mu      sync.Mutex
	doc     types.Document
	hasDoc  bool
	userID  string
	loaded  bool
	timer   *time.Timer
	syncing bool
	lastErr error
	closed  bool
}

// New creates an engine and primes it with the cached snapshot, if one
// exists. The cache is the first source of truth on cold start; no
// identity is required to begin editing.
func New(opts Options) (*Engine, error) {
	if opts.Cache == nil {
		return nil, errors.New("sync: cache store is required")
	}
	if opts.Debounce <= 0 {
		opts.Debounce = DefaultDebounce
	}
	if opts.RequestTimeout <= 0 {
		opts.RequestTimeout = DefaultRequestTimeout
	}
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}

	e := &Engine{
		cache:    opts.Cache,
		remote:   opts.Remote,
		debounce: opts.Debounce,
		timeout:  opts.RequestTimeout,
		logger:   opts.Logger,
	}

	doc, ok, err := e.cache.Read()
	if err != nil {
		// Local storage is assumed always available; a failure here is
		// fatal, not a sync condition.
		return nil, fmt.Errorf("local cache read: %w", err)
	}
	if ok {
		e.doc = schema.Normalize(doc)
		e.hasDoc = true
	}
	return e, nil
}

// SetIdentity establishes the user identity and, once per identity,
// performs the remote load pass:
//
//   - a remote document exists: it supersedes local state and is
//     adopted (normalized, cached, held as current);
//   - no remote document (new user): the local document, if any, is
//     pushed as the seed write;
//   - the read fails: the error is recorded as a LoadError and local
//     state is left untouched. There is no automatic retry.
//
// Repeated calls with the same identity are no-ops until ClearIdentity.
func (e *Engine) SetIdentity(ctx context.Context, userID string) error {
	e.mu.Lock()
	if e.closed {
		e.mu.Unlock()
		return ErrClosed
	}
	if userID == "" {
		e.mu.Unlock()
		return errors.New("sync: user ID is empty")
	}
	if e.loaded && e.userID == userID {
		e.mu.Unlock()
		return nil
	}
	e.userID = userID
	e.loaded = true
	if e.remote == nil {
		e.mu.Unlock()
		return nil
	}
	localDoc := e.doc
	hasLocal := e.hasDoc
	e.syncing = true
	e.mu.Unlock()

	loadCtx, cancel := context.WithTimeout(ctx, e.timeout)
	defer cancel()

	remoteDoc, err := e.remote.Load(loadCtx, userID)

	switch {
	case err == nil:
		norm := schema.Normalize(remoteDoc)
		if cacheErr := e.cache.Write(norm); cacheErr != nil {
			e.finishLoad(func() { e.lastErr = nil })
			return fmt.Errorf("local cache write: %w", cacheErr)
		}
		e.finishLoad(func() {
			e.doc = norm
			e.hasDoc = true
			e.lastErr = nil
		})
		e.logger.Debug("adopted remote document", "user", userID)

	case errors.Is(err, remote.ErrNotFound):
		if !hasLocal {
			e.finishLoad(nil)
			return nil
		}
		// Seed write: push local state up for the new user.
		seedErr := e.remote.Save(loadCtx, userID, localDoc)
		e.finishLoad(func() {
			if seedErr != nil {
				e.lastErr = &WriteError{Err: seedErr}
			} else {
				e.lastErr = nil
			}
		})
		if seedErr != nil {
			e.logger.Warn("seed write failed", "user", userID, "error", seedErr)
		} else {
			e.logger.Debug("seeded remote document", "user", userID)
		}

	default:
		e.finishLoad(func() { e.lastErr = &LoadError{Err: err} })
		e.logger.Warn("remote load failed", "user", userID, "error", err)
	}

	return nil
}

// finishLoad clears the syncing flag and applies fn under the lock.
func (e *Engine) finishLoad(fn func()) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.syncing = false
	if fn != nil {
		fn()
	}
}

// ClearIdentity signs the user out: the load guard resets so a later
// SetIdentity performs a fresh load pass, and any pending scheduled
// write is dropped. The local document stays as-is.
func (e *Engine) ClearIdentity() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.userID = ""
	e.loaded = false
	e.lastErr = nil
	e.stopTimerLocked()
}

// Set replaces the current document. The cache is written synchronously
// and unconditionally; if an identity is established, one debounced
// remote write is (re)scheduled, collapsing rapid edits into a single
// upsert of the latest state.
//
// A cache failure is returned as an error and is fatal to the edit; it
// is not recorded as sync state.
func (e *Engine) Set(doc types.Document) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.closed {
		return ErrClosed
	}

	e.doc = doc
	e.hasDoc = true

	if err := e.cache.Write(doc); err != nil {
		return fmt.Errorf("local cache write: %w", err)
	}

	if e.remote != nil && e.userID != "" {
		e.scheduleLocked()
	}
	return nil
}

// Document returns a snapshot of the current document. The second
// return value is false when no document has been established yet.
func (e *Engine) Document() (types.Document, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if !e.hasDoc {
		return types.Document{}, false
	}
	return e.doc.Clone(), true
}

// Status derives the display state: syncing while a remote call is in
// flight, error while the last remote operation's failure stands,
// synced otherwise.
func (e *Engine) Status() Status {
	e.mu.Lock()
	defer e.mu.Unlock()
	switch {
	case e.syncing:
		return StatusSyncing
	case e.lastErr != nil:
		return StatusError
	default:
		return StatusSynced
	}
}

// LastError returns the standing LoadError or WriteError, or nil. The
// error is advisory; it never blocks editing.
func (e *Engine) LastError() error {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.lastErr
}

// Flush cancels any pending debounce timer and pushes the current
// document to the remote store immediately. Callers that need teardown
// durability run Flush before Close; Close alone drops pending writes.
func (e *Engine) Flush(ctx context.Context) error {
	e.mu.Lock()
	if e.closed {
		e.mu.Unlock()
		return ErrClosed
	}
	if e.remote == nil || e.userID == "" || !e.hasDoc {
		e.mu.Unlock()
		return nil
	}
	e.stopTimerLocked()
	doc := e.doc.Clone()
	userID := e.userID
	e.syncing = true
	e.mu.Unlock()

	err := e.save(ctx, userID, doc)
	if err != nil {
		return err
	}
	return nil
}

// Close tears the session down. A pending debounce timer is cancelled
// without flushing: an edit made within the debounce window is kept in
// the cache but not pushed. Use Flush first when that matters.
func (e *Engine) Close() {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.closed {
		return
	}
	e.closed = true
	e.stopTimerLocked()
}

// scheduleLocked restarts the single debounce timer. Caller holds e.mu.
func (e *Engine) scheduleLocked() {
	e.stopTimerLocked()
	e.timer = time.AfterFunc(e.debounce, e.timerFired)
}

// stopTimerLocked cancels a pending timer, if any. Caller holds e.mu.
func (e *Engine) stopTimerLocked() {
	if e.timer != nil {
		e.timer.Stop()
		e.timer = nil
	}
}

// timerFired runs on the timer goroutine when the quiet period elapses.
// It captures the state at fire time by value and upserts it.
func (e *Engine) timerFired() {
	e.mu.Lock()
	if e.closed || e.remote == nil || e.userID == "" || !e.hasDoc {
		e.mu.Unlock()
		return
	}
	e.timer = nil
	doc := e.doc.Clone()
	userID := e.userID
	e.syncing = true
	e.mu.Unlock()

	ctx, cancel := context.WithTimeout(context.Background(), e.timeout)
	defer cancel()
	_ = e.save(ctx, userID, doc)
}

// save performs one remote upsert and records the outcome. On failure
// local state is untouched; the failed write is not retried — the next
// edit's debounce cycle attempts again with the then-current state.
func (e *Engine) save(ctx context.Context, userID string, doc types.Document) error {
	saveCtx, cancel := context.WithTimeout(ctx, e.timeout)
	defer cancel()

	err := e.remote.Save(saveCtx, userID, doc)

	e.mu.Lock()
	e.syncing = false
	if err != nil {
		e.lastErr = &WriteError{Err: err}
	} else {
		e.lastErr = nil
	}
	e.mu.Unlock()

	if err != nil {
		e.logger.Warn("remote write failed", "user", userID, "error", err)
		return &WriteError{Err: err}
	}
	e.logger.Debug("remote write ok", "user", userID)
	return nil
}
