package dashboard

import (
	"html/template"
	"strconv"

	"github.com/datavisbr/painel-salarios/internal/store"
	"github.com/datavisbr/painel-salarios/internal/translate"
)

// Sinais is the browser-held filter state, round-tripped as datastar
// signals. Checkbox values arrive as strings, years included.
type Sinais struct {
	Anos         []string `json:"anos"`
	Senioridades []string `json:"senioridades"`
	Contratos    []string `json:"contratos"`
	Tamanhos     []string `json:"tamanhos"`
	Cargos       []string `json:"cargos"`
	Aba          string   `json:"aba"`
}

// sinaisIniciais selects every available option except job titles, which
// start empty (no title constraint) since the list runs long.
func sinaisIniciais(opcoes store.Options) Sinais {
	s := Sinais{
		Senioridades: opcoes.Senioridades,
		Contratos:    opcoes.Contratos,
		Tamanhos:     opcoes.TamanhosEmpresa,
		Cargos:       []string{},
		Aba:          "graficos",
	}
	for _, ano := range opcoes.Anos {
		s.Anos = append(s.Anos, strconv.Itoa(ano))
	}
	return s
}

// filtro converts the signal state into a store filter. Unparseable year
// values are dropped rather than failing the request.
func (s Sinais) filtro() store.Filter {
	f := store.Filter{
		Senioridades:    s.Senioridades,
		Contratos:       s.Contratos,
		TamanhosEmpresa: s.Tamanhos,
		Cargos:          s.Cargos,
	}
	for _, a := range s.Anos {
		if ano, err := strconv.Atoi(a); err == nil {
			f.Anos = append(f.Anos, ano)
		}
	}
	return f
}

// ViewData feeds the full page template.
type ViewData struct {
	Opcoes   store.Options
	Metricas store.Snapshot
	Insights []string
	Tabela   tabelaData
	Sinais   string
	Figuras  template.JS
}

// tabelaData feeds the detail table fragment, descriptive statistics
// included.
type tabelaData struct {
	Registros []translate.Registro
	Total     int
	Resumo    store.Snapshot
}
