// Package session ties an algorithm choice and an input array to a playback
// controller, the way every sortviz front end drives them.
package session

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/san-kum/sortviz/internal/algorithms"
	"github.com/san-kum/sortviz/internal/arraygen"
	"github.com/san-kum/sortviz/internal/playback"
	"github.com/san-kum/sortviz/internal/trace"
)

type Session struct {
	registry  *algorithms.Registry
	arrays    *arraygen.Generator
	player    *playback.Controller
	logger    *zap.Logger
	algorithm string
	array     trace.Array
}

func New(reg *algorithms.Registry, arrays *arraygen.Generator, player *playback.Controller, logger *zap.Logger) *Session {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Session{
		registry: reg,
		arrays:   arrays,
		player:   player,
		logger:   logger,
	}
}

// Start selects id and traces arr with it. A nil arr draws a new array.
func (s *Session) Start(id string, arr trace.Array) error {
	d, err := s.lookup(id)
	if err != nil {
		return err
	}
	if arr == nil {
		arr = s.arrays.Next()
	}
	if !arr.IsValid() {
		return fmt.Errorf("session: start %s: %w", id, trace.ErrInvalidArray)
	}
	s.algorithm = d.ID
	s.array = arr.Clone()
	s.load(d)
	return nil
}

// Select traces the current array with another algorithm. On failure the
// loaded trace and playback position are kept.
func (s *Session) Select(id string) error {
	d, err := s.lookup(id)
	if err != nil {
		return err
	}
	s.algorithm = d.ID
	s.load(d)
	return nil
}

// NextAlgorithm selects the algorithm after the current one.
func (s *Session) NextAlgorithm() error {
	return s.Select(s.registry.Next(s.algorithm))
}

// NewArray draws a fresh array and retraces it with the current algorithm.
func (s *Session) NewArray() error {
	return s.SetArray(s.arrays.Next())
}

func (s *Session) SetArray(arr trace.Array) error {
	if !arr.IsValid() {
		return fmt.Errorf("session: set array: %w", trace.ErrInvalidArray)
	}
	d, err := s.lookup(s.algorithm)
	if err != nil {
		return err
	}
	s.array = arr.Clone()
	s.load(d)
	return nil
}

// Compare summarises every algorithm on the current array.
func (s *Session) Compare(ctx context.Context) ([]algorithms.Comparison, error) {
	return s.registry.Compare(ctx, s.array)
}

func (s *Session) Algorithm() string            { return s.algorithm }
func (s *Session) Array() trace.Array           { return s.array.Clone() }
func (s *Session) Player() *playback.Controller { return s.player }
func (s *Session) Registry() *algorithms.Registry {
	return s.registry
}

// Descriptor returns the descriptor of the current algorithm.
func (s *Session) Descriptor() algorithms.Descriptor {
	d, _ := s.registry.Lookup(s.algorithm)
	return d
}

func (s *Session) lookup(id string) (algorithms.Descriptor, error) {
	d, err := s.registry.Lookup(id)
	if err != nil {
		s.logger.Warn("algorithm lookup failed", zap.String("algorithm", id), zap.Error(err))
		return algorithms.Descriptor{}, fmt.Errorf("session: select: %w", err)
	}
	return d, nil
}

func (s *Session) load(d algorithms.Descriptor) {
	steps := d.Generate(s.array)
	s.player.Load(steps)
	s.logger.Debug("trace generated",
		zap.String("algorithm", d.ID),
		zap.Int("size", len(s.array)),
		zap.Int("steps", len(steps)),
	)
}
