package commands

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/datavisbr/painel-salarios/internal/cli/config"
	"github.com/datavisbr/painel-salarios/internal/dataset"
	"github.com/datavisbr/painel-salarios/internal/store"
	"github.com/datavisbr/painel-salarios/internal/testutil"
)

const csvExemplo = `work_year,experience_level,employment_type,job_title,salary,salary_currency,salary_in_usd,employee_residence,remote_ratio,company_location,company_size
2025,SE,FT,Data Scientist,202730,USD,202730,US,0,US,M
2024,MI,FT,Data Engineer,140000,USD,140000,CA,100,CA,L
2023,EN,PT,Data Analyst,60000,EUR,65000,DE,50,DE,S
`

func TestVersionCommand(t *testing.T) {
	var buf bytes.Buffer
	cmd := NewVersionCommand("1.2.3")
	cmd.SetOut(&buf)

	require.NoError(t, cmd.Execute())

	assert.Contains(t, buf.String(), "painel v1.2.3")
	assert.Contains(t, buf.String(), "DuckDB")
}

func TestGetConfigFallback(t *testing.T) {
	config.ResetConfig()

	cfg := getConfig()

	assert.Equal(t, dataset.DefaultURL, cfg.Data.URL)
	assert.Equal(t, config.DefaultPort, cfg.UI.Port)
	assert.Equal(t, config.DefaultTableLimit, cfg.UI.TableLimit)
	assert.True(t, cfg.UI.AutoOpen)
}

func TestBuildStore(t *testing.T) {
	path := filepath.Join(t.TempDir(), "salaries.csv")
	require.NoError(t, os.WriteFile(path, []byte(csvExemplo), 0600))

	cfg := &config.Config{Data: config.DataConfig{File: path}}

	st, cache, err := buildStore(context.Background(), cfg, testutil.NewTestLogger(t))
	require.NoError(t, err)
	defer func() { _ = st.Close() }()
	require.NotNil(t, cache)

	snap, err := st.Metrics(context.Background(), store.Filter{})
	require.NoError(t, err)

	assert.Equal(t, 3, snap.TotalRegistros)
	// Translated titles land in the analytical table
	top, err := st.TopCargos(context.Background(), store.Filter{}, 3)
	require.NoError(t, err)
	require.Len(t, top, 3)
	assert.Equal(t, "Cientista de Dados", top[0].Cargo)
}
