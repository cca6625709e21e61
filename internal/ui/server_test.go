package ui

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/datavisbr/painel-salarios/internal/dataset"
	"github.com/datavisbr/painel-salarios/internal/store"
	"github.com/datavisbr/painel-salarios/internal/testutil"
	"github.com/datavisbr/painel-salarios/internal/translate"
)

const cabecalhoCSV = "work_year,experience_level,employment_type,job_title,salary,salary_currency,salary_in_usd,employee_residence,remote_ratio,company_location,company_size\n"

func setupServer(t *testing.T, csv string) (*Server, string) {
	t.Helper()

	path := filepath.Join(t.TempDir(), "salaries.csv")
	require.NoError(t, os.WriteFile(path, []byte(csv), 0600))

	logger := testutil.NewTestLogger(t)
	cache := dataset.NewCache(dataset.Source{File: path}, logger)

	st, err := store.Open(context.Background(), "", logger)
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })

	snap, err := cache.Load(context.Background())
	require.NoError(t, err)
	require.NoError(t, st.Load(context.Background(), translate.ApplyAll(snap.Records)))

	srv := NewServer(Config{
		Store:      st,
		Cache:      cache,
		DataFile:   path,
		TableLimit: 200,
		Logger:     logger,
	})
	return srv, path
}

func TestReload(t *testing.T) {
	srv, path := setupServer(t, cabecalhoCSV+"2025,SE,FT,Data Scientist,202730,USD,202730,US,0,US,M\n")

	snap, err := srv.store.Metrics(context.Background(), store.Filter{})
	require.NoError(t, err)
	require.Equal(t, 1, snap.TotalRegistros)

	extra := cabecalhoCSV +
		"2025,SE,FT,Data Scientist,202730,USD,202730,US,0,US,M\n" +
		"2024,MI,FT,Data Engineer,140000,USD,140000,CA,100,CA,L\n"
	require.NoError(t, os.WriteFile(path, []byte(extra), 0600))

	require.NoError(t, srv.Reload(context.Background()))

	snap, err = srv.store.Metrics(context.Background(), store.Filter{})
	require.NoError(t, err)
	assert.Equal(t, 2, snap.TotalRegistros)
}

func TestServeShutsDownOnCancel(t *testing.T) {
	srv, _ := setupServer(t, cabecalhoCSV+"2025,SE,FT,Data Scientist,202730,USD,202730,US,0,US,M\n")
	srv.port = 0 // random free port

	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan error, 1)
	go func() { done <- srv.Serve(ctx) }()

	time.Sleep(100 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("server did not shut down on context cancellation")
	}
}
