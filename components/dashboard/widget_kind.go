package dashboard

// WidgetKind names a widget variant.
type WidgetKind string

const (
	KindStat         WidgetKind = "stat"
	KindStatGroup    WidgetKind = "stat_group"
	KindChart        WidgetKind = "chart"
	KindProducts     WidgetKind = "products"
	KindTransactions WidgetKind = "transactions"
	KindTable        WidgetKind = "table"
)

// ChartType selects how a ChartWidget is drawn.
type ChartType string

const (
	ChartLine   ChartType = "line"
	ChartArea   ChartType = "area"
	ChartBar    ChartType = "bar"
	ChartPie    ChartType = "pie"
	ChartDonut  ChartType = "donut"
	ChartFunnel ChartType = "funnel"
)

// Widget is the closed set of widget variants a page can hold. The unexported
// marker keeps implementations inside this package.
type Widget interface {
	Kind() WidgetKind
	widget()
}

// StatWidget renders one headline metric with an animated counter.
type StatWidget struct {
	Stat MetricStat
}

// StatGroupWidget renders a row of headline metrics.
type StatGroupWidget struct {
	Stats []MetricStat
}

// ChartWidget renders a chart through the chart renderer.
type ChartWidget struct {
	Title    string
	Subtitle string
	Type     ChartType
	Data     ChartData
	Span     int
	Export   DatasetID
}

// ProductsWidget lists top products with their share of revenue.
type ProductsWidget struct {
	Title    string
	Products []ProductSummary
}

// TransactionsWidget lists recent orders.
type TransactionsWidget struct {
	Title        string
	Transactions []Transaction
	Span         int
}

// TableWidget renders pre-formatted rows under a header.
type TableWidget struct {
	Title   string
	Columns []string
	Rows    [][]string
	Span    int
	Export  DatasetID
}

func (StatWidget) Kind() WidgetKind         { return KindStat }
func (StatGroupWidget) Kind() WidgetKind    { return KindStatGroup }
func (ChartWidget) Kind() WidgetKind        { return KindChart }
func (ProductsWidget) Kind() WidgetKind     { return KindProducts }
func (TransactionsWidget) Kind() WidgetKind { return KindTransactions }
func (TableWidget) Kind() WidgetKind        { return KindTable }

func (StatWidget) widget()         {}
func (StatGroupWidget) widget()    {}
func (ChartWidget) widget()        {}
func (ProductsWidget) widget()     {}
func (TransactionsWidget) widget() {}
func (TableWidget) widget()        {}

// WidgetData is an opaque payload passed to templates.
type WidgetData map[string]any
