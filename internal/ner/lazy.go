package ner

import (
	"sync"
	"sync/atomic"

	"weighbridge/internal/logger"
	"weighbridge/internal/port"
)

// Recognizer states reported by Status.
const (
	StatusPending     = "pending"
	StatusReady       = "ready"
	StatusUnavailable = "unavailable"
	StatusDisabled    = "disabled"
)

const (
	statePending int32 = iota
	stateReady
	stateUnavailable
)

// Lazy loads a Lexicon on first use and shares it across goroutines. If the
// load fails the error is logged once and Recognize returns no entities.
type Lazy struct {
	load  func() (*Lexicon, error)
	once  sync.Once
	lex   *Lexicon
	err   error
	state atomic.Int32
}

var _ port.EntityRecognizer = (*Lazy)(nil)

// NewLazy returns a recognizer that loads the lexicon at path ("" for the
// built-in one) when first needed.
func NewLazy(path string) *Lazy {
	return NewLazyFunc(func() (*Lexicon, error) { return LoadLexicon(path) })
}

// NewLazyFunc is NewLazy with a custom loader.
func NewLazyFunc(load func() (*Lexicon, error)) *Lazy {
	return &Lazy{load: load}
}

// Warm performs the load now. Later calls return the first result.
func (l *Lazy) Warm() error {
	l.once.Do(func() {
		l.lex, l.err = l.load()
		if l.err != nil {
			logger.WithError(l.err).Warn("organization lexicon unavailable; company extraction limited to labels and patterns")
			l.state.Store(stateUnavailable)
			return
		}
		orgs, suffixes := l.lex.Stats()
		logger.Logger.WithField("organizations", orgs).WithField("suffixes", suffixes).Info("organization lexicon loaded")
		l.state.Store(stateReady)
	})
	return l.err
}

// Recognize implements port.EntityRecognizer.
func (l *Lazy) Recognize(text string) []port.Entity {
	if l.Warm() != nil {
		return nil
	}
	return l.lex.Recognize(text)
}

// Lexicon returns the loaded lexicon, loading it if needed.
func (l *Lazy) Lexicon() (*Lexicon, error) {
	if err := l.Warm(); err != nil {
		return nil, err
	}
	return l.lex, nil
}

// Status reports the load state without triggering a load.
func (l *Lazy) Status() string {
	switch l.state.Load() {
	case stateReady:
		return StatusReady
	case stateUnavailable:
		return StatusUnavailable
	default:
		return StatusPending
	}
}
