// SPDX-License-Identifier: MIT

package runstore_test

import (
	"context"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/stationary/internal/chainfile"
	"github.com/katalvlaran/stationary/internal/runstore"
)

func openStore(t *testing.T, opts ...runstore.Option) (*runstore.Store, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "runs.db")
	s, err := runstore.Open(context.Background(), path, opts...)
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })

	return s, path
}

func TestSaveAndRecent(t *testing.T) {
	ctx := context.Background()
	at := time.Date(2026, 10, 19, 12, 0, 0, 0, time.UTC)
	s, _ := openStore(t, runstore.WithNow(func() time.Time { return at }))

	first := chainfile.Report{Name: "a", States: 2, Kind: "stochastic", ClosedClasses: 1,
		Distribution: []float64{0.25, 0.75}, Residual: 1e-17}
	second := chainfile.Report{Name: "b", States: 2, Kind: "generator", ClosedClasses: 1,
		Distribution: []float64{0.8, 0.2}}

	id1, err := s.Save(ctx, first)
	require.NoError(t, err)
	id2, err := s.Save(ctx, second)
	require.NoError(t, err)
	assert.Greater(t, id2, id1)

	runs, err := s.Recent(ctx, 10)
	require.NoError(t, err)
	require.Len(t, runs, 2)
	assert.Equal(t, "b", runs[0].Name, "newest first")
	assert.Equal(t, first, runs[1].Report)
	assert.True(t, at.Equal(runs[1].SolvedAt))

	runs, err = s.Recent(ctx, 1)
	require.NoError(t, err)
	assert.Len(t, runs, 1)

	_, err = s.Recent(ctx, 0)
	assert.ErrorIs(t, err, runstore.ErrInvalidLimit)
}

func TestReopenKeepsHistory(t *testing.T) {
	ctx := context.Background()
	s, path := openStore(t)
	_, err := s.Save(ctx, chainfile.Report{Name: "kept", States: 1, Kind: "stochastic", Distribution: []float64{1}})
	require.NoError(t, err)
	require.NoError(t, s.Close())

	again, err := runstore.Open(ctx, path)
	require.NoError(t, err)
	defer again.Close()
	runs, err := again.Recent(ctx, 5)
	require.NoError(t, err)
	require.Len(t, runs, 1)
	assert.Equal(t, "kept", runs[0].Name)
}

func TestConcurrentSave(t *testing.T) {
	ctx := context.Background()
	s, _ := openStore(t)

	var wg sync.WaitGroup
	errs := make(chan error, 8)
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := s.Save(ctx, chainfile.Report{Name: "c", States: 1, Kind: "stochastic", Distribution: []float64{1}})
			errs <- err
		}()
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		assert.NoError(t, err)
	}
	runs, err := s.Recent(ctx, 100)
	require.NoError(t, err)
	assert.Len(t, runs, 8)
}
