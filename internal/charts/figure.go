// Package charts builds Plotly figure specifications for the dashboard.
//
// Builders are pure functions of the filtered view's aggregates; the browser
// renders the JSON with Plotly.js. An empty input yields a figure with no
// traces, which Plotly shows as an empty plot instead of failing.
package charts

import "encoding/json"

// Figure is a Plotly figure: traces plus layout.
type Figure struct {
	Data   []Trace `json:"data"`
	Layout Layout  `json:"layout"`
}

// Trace covers the subset of Plotly trace attributes the dashboard uses.
type Trace struct {
	Type        string    `json:"type"`
	Name        string    `json:"name,omitempty"`
	X           []any     `json:"x,omitempty"`
	Y           []any     `json:"y,omitempty"`
	Orientation string    `json:"orientation,omitempty"`
	NBinsX      int       `json:"nbinsx,omitempty"`
	Labels      []string  `json:"labels,omitempty"`
	Values      []int     `json:"values,omitempty"`
	Hole        float64   `json:"hole,omitempty"`
	TextInfo    string    `json:"textinfo,omitempty"`
	Locations   []string  `json:"locations,omitempty"`
	Z           []float64 `json:"z,omitempty"`
	ColorScale  string    `json:"colorscale,omitempty"`
	Mode        string    `json:"mode,omitempty"`
	Marker      *Marker   `json:"marker,omitempty"`
}

// Marker holds per-trace styling.
type Marker struct {
	Color string `json:"color,omitempty"`
}

// Layout covers the subset of Plotly layout attributes the dashboard uses.
type Layout struct {
	Title      Title  `json:"title"`
	XAxis      *Axis  `json:"xaxis,omitempty"`
	YAxis      *Axis  `json:"yaxis,omitempty"`
	ShowLegend *bool  `json:"showlegend,omitempty"`
	Geo        *Geo   `json:"geo,omitempty"`
	Margin     Margin `json:"margin"`
}

// Title is a Plotly title object.
type Title struct {
	Text string  `json:"text"`
	X    float64 `json:"x,omitempty"`
}

// Axis configures one layout axis.
type Axis struct {
	Title         Title  `json:"title"`
	CategoryOrder string `json:"categoryorder,omitempty"`
}

// Geo configures the map projection of a choropleth.
type Geo struct {
	Scope string `json:"scope,omitempty"`
}

// Margin keeps the plots compact inside their cards.
type Margin struct {
	T int `json:"t"`
	B int `json:"b"`
	L int `json:"l"`
	R int `json:"r"`
}

var defaultMargin = Margin{T: 48, B: 40, L: 64, R: 24}

func ptr[T any](v T) *T { return &v }

// JSON serializes the figure for embedding in the page or an SSE script.
func (f Figure) JSON() (string, error) {
	b, err := json.Marshal(f)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// Empty reports whether the figure carries no traces.
func (f Figure) Empty() bool {
	return len(f.Data) == 0
}

func emptyFigure(titulo string) Figure {
	return Figure{
		Data:   []Trace{},
		Layout: Layout{Title: Title{Text: titulo, X: 0.1}, Margin: defaultMargin},
	}
}
