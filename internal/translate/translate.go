// Package translate converts the source CSV schema and its coded categorical
// values to Brazilian Portuguese display values.
//
// Every lookup is total-domain-safe: a code that is absent from its map passes
// through unchanged, so unexpected values never fail the pipeline.
package translate

import (
	"strconv"

	"github.com/datavisbr/painel-salarios/internal/dataset"
)

// Registro is one translated salary observation. Field names follow the
// Portuguese column schema in Colunas.
type Registro struct {
	Ano            int     `json:"ano"`
	Senioridade    string  `json:"senioridade"`
	Contrato       string  `json:"contrato"`
	Cargo          string  `json:"cargo"`
	Salario        float64 `json:"salario"`
	Moeda          string  `json:"usd"`
	SalarioUSD     float64 `json:"salario_usd"`
	Residencia     string  `json:"residencia"`
	Remota         string  `json:"remota"`
	Empresa        string  `json:"empresa"`
	TamanhoEmpresa string  `json:"tamanho_empresa"`
}

// valor looks up code in m, falling back to the code itself.
func valor(m map[string]string, code string) string {
	if v, ok := m[code]; ok {
		return v
	}
	return code
}

// modalidade translates the remote ratio into a work-mode label. Unknown
// ratios pass through as their numeric string.
func modalidade(ratio int) string {
	if v, ok := Remota[ratio]; ok {
		return v
	}
	return strconv.Itoa(ratio)
}

// Cargo translates a job title when it is one of the curated common titles.
func Cargo(titulo string) string {
	return valor(Cargos, titulo)
}

// Apply translates a single raw record.
func Apply(r dataset.Record) Registro {
	return Registro{
		Ano:            r.WorkYear,
		Senioridade:    valor(Senioridade, r.ExperienceLevel),
		Contrato:       valor(Contrato, r.EmploymentType),
		Cargo:          Cargo(r.JobTitle),
		Salario:        r.Salary,
		Moeda:          r.SalaryCurrency,
		SalarioUSD:     r.SalaryInUSD,
		Residencia:     r.EmployeeResidence,
		Remota:         modalidade(r.RemoteRatio),
		Empresa:        r.CompanyLocation,
		TamanhoEmpresa: valor(TamanhoEmpresa, r.CompanySize),
	}
}

// ApplyAll translates a full table. The input is never mutated; this is the
// one-time translation pass between load and store.
func ApplyAll(records []dataset.Record) []Registro {
	out := make([]Registro, 0, len(records))
	for _, r := range records {
		out = append(out, Apply(r))
	}
	return out
}
