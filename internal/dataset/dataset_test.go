package dataset

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const csvExemplo = `work_year,experience_level,employment_type,job_title,salary,salary_currency,salary_in_usd,employee_residence,remote_ratio,company_location,company_size
2025,SE,FT,Data Scientist,202730,USD,202730,US,0,US,M
2024,MI,FT,Data Engineer,140000,USD,140000,CA,100,CA,L
2023,EN,PT,Data Analyst,60000,EUR,65000,DE,50,DE,S
`

func TestClean(t *testing.T) {
	valid := Record{
		WorkYear:        2025,
		ExperienceLevel: "SE",
		EmploymentType:  "FT",
		JobTitle:        "Data Scientist",
		SalaryInUSD:     202730,
		CompanySize:     "M",
	}

	tests := []struct {
		name    string
		mutate  func(Record) Record
		wantLen int
	}{
		{"keeps complete rows", func(r Record) Record { return r }, 1},
		{"drops missing year", func(r Record) Record { r.WorkYear = 0; return r }, 0},
		{"drops missing USD salary", func(r Record) Record { r.SalaryInUSD = 0; return r }, 0},
		{"drops missing job title", func(r Record) Record { r.JobTitle = ""; return r }, 0},
		{"drops missing experience level", func(r Record) Record { r.ExperienceLevel = ""; return r }, 0},
		{"drops missing employment type", func(r Record) Record { r.EmploymentType = ""; return r }, 0},
		{"drops missing company size", func(r Record) Record { r.CompanySize = ""; return r }, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Clean([]Record{tt.mutate(valid)})
			assert.Len(t, got, tt.wantLen)
		})
	}
}

func TestFetchFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "salaries.csv")
	require.NoError(t, os.WriteFile(path, []byte(csvExemplo), 0600))

	records, err := Fetch(context.Background(), Source{File: path})
	require.NoError(t, err)

	require.Len(t, records, 3)
	assert.Equal(t, 2025, records[0].WorkYear)
	assert.Equal(t, "Data Scientist", records[0].JobTitle)
	assert.Equal(t, float64(65000), records[2].SalaryInUSD)
	assert.Equal(t, 50, records[2].RemoteRatio)
}

func TestFetchFilePrecedesURL(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(_ http.ResponseWriter, _ *http.Request) {
		t.Error("URL should not be fetched when a file is configured")
	}))
	defer srv.Close()

	path := filepath.Join(t.TempDir(), "salaries.csv")
	require.NoError(t, os.WriteFile(path, []byte(csvExemplo), 0600))

	records, err := Fetch(context.Background(), Source{URL: srv.URL, File: path})
	require.NoError(t, err)
	assert.Len(t, records, 3)
}

func TestFetchURLError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	_, err := Fetch(context.Background(), Source{URL: srv.URL})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unexpected status")
}

func TestCacheLoadMemoizes(t *testing.T) {
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		hits.Add(1)
		_, _ = w.Write([]byte(csvExemplo))
	}))
	defer srv.Close()

	cache := NewCache(Source{URL: srv.URL}, nil)

	first, err := cache.Load(context.Background())
	require.NoError(t, err)
	second, err := cache.Load(context.Background())
	require.NoError(t, err)

	assert.Equal(t, int32(1), hits.Load())
	assert.Equal(t, first.ID, second.ID)
	assert.Len(t, first.Records, 3)
}

func TestCacheInvalidate(t *testing.T) {
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		hits.Add(1)
		_, _ = w.Write([]byte(csvExemplo))
	}))
	defer srv.Close()

	cache := NewCache(Source{URL: srv.URL}, nil)

	first, err := cache.Load(context.Background())
	require.NoError(t, err)

	cache.Invalidate()

	second, err := cache.Load(context.Background())
	require.NoError(t, err)

	assert.Equal(t, int32(2), hits.Load())
	assert.NotEqual(t, first.ID, second.ID)
}
