package dashboard

import (
	"context"
	"encoding/json"
	"fmt"
	"html/template"
	"net/http"

	"github.com/starfederation/datastar-go/datastar"

	"github.com/datavisbr/painel-salarios/internal/charts"
	"github.com/datavisbr/painel-salarios/internal/insights"
	"github.com/datavisbr/painel-salarios/internal/store"
	"github.com/datavisbr/painel-salarios/internal/translate"
	"github.com/datavisbr/painel-salarios/internal/ui/notifier"
)

// Handlers provides HTTP handlers for the dashboard feature.
type Handlers struct {
	store      *store.Store
	notifier   *notifier.Notifier
	tableLimit int
}

// NewHandlers creates a new Handlers instance.
func NewHandlers(st *store.Store, notify *notifier.Notifier, tableLimit int) *Handlers {
	return &Handlers{
		store:      st,
		notifier:   notify,
		tableLimit: tableLimit,
	}
}

// HandleDashboardPage renders the full dashboard with every filter option
// selected, the state a fresh session starts from.
func (h *Handlers) HandleDashboardPage(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	opcoes, err := h.store.Options(ctx)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	sinais := sinaisIniciais(opcoes)
	view, err := h.buildView(ctx, sinais.filtro())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	sinaisJSON, err := json.Marshal(sinais)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	figurasJSON, err := json.Marshal(view.figuras)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	data := ViewData{
		Opcoes:   opcoes,
		Metricas: view.metricas,
		Insights: view.insights,
		Tabela:   tabelaData{Registros: view.registros, Total: view.metricas.TotalRegistros, Resumo: view.metricas},
		Sinais:   string(sinaisJSON),
		Figuras:  template.JS(figurasJSON),
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := templates.ExecuteTemplate(w, "layout", data); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

// HandleAtualizar recomputes the filtered view when the browser reports a
// filter change and patches the affected fragments over SSE.
func (h *Handlers) HandleAtualizar(w http.ResponseWriter, r *http.Request) {
	sse := datastar.NewSSE(w, r)

	var sinais Sinais
	if err := datastar.ReadSignals(r, &sinais); err != nil {
		_ = sse.ConsoleError(err)
		return
	}

	if err := h.patchView(r.Context(), sse, sinais); err != nil {
		_ = sse.ConsoleError(err)
	}
}

// HandleUpdates is the long-lived SSE endpoint for dataset reloads. On every
// reload it patches the filter sidebar from the fresh option set and a
// trigger element whose on-load action re-fetches the view, so the refresh
// runs with whatever signals the browser holds at that moment.
func (h *Handlers) HandleUpdates(w http.ResponseWriter, r *http.Request) {
	sse := datastar.NewSSE(w, r)

	updates := h.notifier.Subscribe()
	defer h.notifier.Unsubscribe(updates)

	ctx := r.Context()
	for recarga := 1; ; recarga++ {
		select {
		case <-ctx.Done():
			return
		case <-updates:
			if err := h.patchReload(ctx, sse, recarga); err != nil {
				_ = sse.ConsoleError(err)
				// Keep the subscription alive for the next reload
			}
		}
	}
}

// patchReload pushes the post-reload patches: the rebuilt filter sidebar and
// the reload trigger. The trigger carries a per-connection sequence number so
// each patch morphs a changed element and its on-load action fires again.
func (h *Handlers) patchReload(ctx context.Context, sse *datastar.ServerSentEventGenerator, recarga int) error {
	opcoes, err := h.store.Options(ctx)
	if err != nil {
		return err
	}
	html, err := renderFragment("filtros", opcoes)
	if err != nil {
		return err
	}
	if err := sse.PatchElements(html); err != nil {
		return err
	}
	trigger := fmt.Sprintf(`<div id="recarregar" hidden data-recarga="%d" data-on-load="@get('/atualizar')"></div>`, recarga)
	return sse.PatchElements(trigger)
}

// patchView recomputes the view for the given signals and patches the metric
// cards, insights, detail table and charts.
func (h *Handlers) patchView(ctx context.Context, sse *datastar.ServerSentEventGenerator, sinais Sinais) error {
	view, err := h.buildView(ctx, sinais.filtro())
	if err != nil {
		return err
	}

	fragments := []struct {
		name string
		data any
	}{
		{"metricas", view.metricas},
		{"insights", view.insights},
		{"tabela", tabelaData{Registros: view.registros, Total: view.metricas.TotalRegistros, Resumo: view.metricas}},
	}

	for _, frag := range fragments {
		html, err := renderFragment(frag.name, frag.data)
		if err != nil {
			return err
		}
		if err := sse.PatchElements(html); err != nil {
			return err
		}
	}

	figurasJSON, err := json.Marshal(view.figuras)
	if err != nil {
		return err
	}
	return sse.ExecuteScript(fmt.Sprintf("painelRenderizar(%s)", figurasJSON))
}

// dashboardView bundles everything a single filtered view needs.
type dashboardView struct {
	metricas  store.Snapshot
	insights  []string
	registros []translate.Registro
	figuras   map[string]charts.Figure
}

// buildView runs every aggregate query for the filter and assembles the
// metric snapshot, insight lines, detail rows and chart figures.
func (h *Handlers) buildView(ctx context.Context, f store.Filter) (dashboardView, error) {
	var view dashboardView

	metricas, err := h.store.Metrics(ctx, f)
	if err != nil {
		return view, err
	}

	modalidades, err := h.store.MediaPorModalidade(ctx, f)
	if err != nil {
		return view, err
	}
	senioridades, err := h.store.MediaPorSenioridade(ctx, f)
	if err != nil {
		return view, err
	}

	registros, err := h.store.Registros(ctx, f, h.tableLimit)
	if err != nil {
		return view, err
	}

	topCargos, err := h.store.TopCargos(ctx, f, 10)
	if err != nil {
		return view, err
	}
	salarios, err := h.store.Salarios(ctx, f)
	if err != nil {
		return view, err
	}
	contagens, err := h.store.ContagemPorModalidade(ctx, f)
	if err != nil {
		return view, err
	}
	paises, err := h.store.MediaPorPais(ctx, f)
	if err != nil {
		return view, err
	}
	observacoes, err := h.store.SalariosPorSenioridade(ctx, f)
	if err != nil {
		return view, err
	}
	tendencia, err := h.store.TendenciaAnual(ctx, f)
	if err != nil {
		return view, err
	}

	view.metricas = metricas
	view.insights = insights.Gerar(metricas, modalidades, senioridades)
	view.registros = registros
	view.figuras = map[string]charts.Figure{
		"grafico-cargos":        charts.TopCargos(topCargos),
		"grafico-distribuicao":  charts.DistribuicaoSalarios(salarios),
		"grafico-modalidades":   charts.TiposTrabalho(contagens),
		"grafico-paises":        charts.SalarioPorPais(paises),
		"grafico-tendencia":     charts.TendenciaTemporal(tendencia),
		"grafico-boxplot":       charts.BoxplotSenioridade(observacoes),
		"grafico-tipo-trabalho": charts.SalarioPorTipoTrabalho(modalidades),
	}
	return view, nil
}
