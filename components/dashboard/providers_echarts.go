package dashboard

import (
	"bytes"
	"fmt"
	"io"
	"time"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/go-echarts/go-echarts/v2/types"
)

const defaultChartHeight = "360px"

// DefaultChartCacheTTL bounds how long rendered chart HTML is reused.
const DefaultChartCacheTTL = 5 * time.Minute

// ChartRenderer renders ChartWidgets to server-side go-echarts HTML.
type ChartRenderer struct {
	cache      RenderCache
	assetsHost string
	height     string
}

// ChartRendererOption customizes renderer behavior.
type ChartRendererOption func(*ChartRenderer)

// WithChartCache injects a render cache. Passing nil disables caching.
func WithChartCache(cache RenderCache) ChartRendererOption {
	return func(r *ChartRenderer) {
		r.cache = cache
	}
}

// WithChartAssetsHost rewrites the assets host so ECharts JS loads from a CDN.
func WithChartAssetsHost(host string) ChartRendererOption {
	return func(r *ChartRenderer) {
		r.assetsHost = host
	}
}

// WithChartHeight overrides the default chart height.
func WithChartHeight(height string) ChartRendererOption {
	return func(r *ChartRenderer) {
		if height != "" {
			r.height = height
		}
	}
}

// NewChartRenderer builds a renderer with a private TTL cache.
func NewChartRenderer(opts ...ChartRendererOption) *ChartRenderer {
	r := &ChartRenderer{
		cache:  NewChartCache(DefaultChartCacheTTL),
		height: defaultChartHeight,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Render returns chart HTML for a widget using the given echarts theme.
// Output is cached by widget id, chart type, theme and content.
func (r *ChartRenderer) Render(widgetID string, chart ChartWidget, theme string) (string, error) {
	if len(chart.Data.Series) == 0 {
		return "", fmt.Errorf("chart %s has no series", widgetID)
	}
	if theme == "" {
		theme = types.ThemeWesteros
	}
	renderFn := func() (string, error) {
		return r.render(chart, theme)
	}
	if r.cache == nil {
		return renderFn()
	}
	key := fmt.Sprintf("%s:%s:%s:%s", widgetID, chart.Type, theme, contentHash(chart))
	return r.cache.GetOrRender(key, renderFn)
}

// Purge drops cached chart HTML.
func (r *ChartRenderer) Purge() {
	if r != nil && r.cache != nil {
		r.cache.Purge()
	}
}

func (r *ChartRenderer) render(chart ChartWidget, theme string) (string, error) {
	global := r.globalChartOptions(chart, theme)
	switch chart.Type {
	case ChartLine, ChartArea:
		line := charts.NewLine()
		line.SetGlobalOptions(global...)
		line.SetXAxis(chart.Data.Labels())
		for _, s := range chart.Data.Series {
			line.AddSeries(s.Name, toLineData(s.Points))
		}
		seriesOpts := []charts.SeriesOpts{charts.WithLineChartOpts(opts.LineChart{Smooth: opts.Bool(true)})}
		if chart.Type == ChartArea {
			seriesOpts = append(seriesOpts, charts.WithAreaStyleOpts(opts.AreaStyle{}))
		}
		line.SetSeriesOptions(seriesOpts...)
		return renderChart(line)
	case ChartBar:
		bar := charts.NewBar()
		bar.SetGlobalOptions(global...)
		bar.SetXAxis(chart.Data.Labels())
		for _, s := range chart.Data.Series {
			bar.AddSeries(s.Name, toBarData(s.Points))
		}
		return renderChart(bar)
	case ChartPie, ChartDonut:
		pie := charts.NewPie()
		pie.SetGlobalOptions(global...)
		for _, s := range chart.Data.Series {
			pie.AddSeries(s.Name, toPieData(s.Points))
		}
		if chart.Type == ChartDonut {
			pie.SetSeriesOptions(charts.WithPieChartOpts(opts.PieChart{Radius: []string{"40%", "75%"}}))
		}
		return renderChart(pie)
	case ChartFunnel:
		funnel := charts.NewFunnel()
		funnel.SetGlobalOptions(global...)
		for _, s := range chart.Data.Series {
			funnel.AddSeries(s.Name, toFunnelData(s.Points))
		}
		return renderChart(funnel)
	default:
		return "", fmt.Errorf("unsupported chart type: %s", chart.Type)
	}
}

func renderChart(renderable interface{ Render(io.Writer) error }) (string, error) {
	var buf bytes.Buffer
	if err := renderable.Render(&buf); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func (r *ChartRenderer) globalChartOptions(chart ChartWidget, theme string) []charts.GlobalOpts {
	initOpts := opts.Initialization{
		Theme:  theme,
		Width:  "100%",
		Height: r.height,
	}
	if r.assetsHost != "" {
		initOpts.AssetsHost = r.assetsHost
	}
	global := []charts.GlobalOpts{
		charts.WithTitleOpts(opts.Title{Title: chart.Title, Subtitle: chart.Subtitle}),
		charts.WithInitializationOpts(initOpts),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(true)}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithToolboxOpts(opts.Toolbox{Show: opts.Bool(true)}),
	}
	if len(chart.Data.Colors) > 0 {
		global = append(global, charts.WithColorsOpts(opts.Colors(chart.Data.Colors)))
	}
	return global
}

func toBarData(points []ChartPoint) []opts.BarData {
	data := make([]opts.BarData, len(points))
	for i, point := range points {
		data[i] = opts.BarData{Name: point.Label, Value: point.Value}
	}
	return data
}

func toLineData(points []ChartPoint) []opts.LineData {
	data := make([]opts.LineData, len(points))
	for i, point := range points {
		data[i] = opts.LineData{Name: point.Label, Value: point.Value}
	}
	return data
}

func toPieData(points []ChartPoint) []opts.PieData {
	data := make([]opts.PieData, len(points))
	for i, point := range points {
		name := point.Label
		if name == "" {
			name = fmt.Sprintf("Slice %d", i+1)
		}
		data[i] = opts.PieData{Name: name, Value: point.Value}
	}
	return data
}

func toFunnelData(points []ChartPoint) []opts.FunnelData {
	data := make([]opts.FunnelData, len(points))
	for i, point := range points {
		data[i] = opts.FunnelData{Name: point.Label, Value: point.Value}
	}
	return data
}
