package dashboard

// ChangeDirection reports whether a metric moved up or down over the period.
type ChangeDirection string

const (
	ChangeUp   ChangeDirection = "up"
	ChangeDown ChangeDirection = "down"
)

// MetricStat is a headline metric shown on a stat card.
type MetricStat struct {
	ID               string          `json:"id"`
	Title            string          `json:"title"`
	Value            float64         `json:"value"`
	Prefix           string          `json:"prefix,omitempty"`
	Suffix           string          `json:"suffix,omitempty"`
	ChangePercentage float64         `json:"change_percentage"`
	ChangeDirection  ChangeDirection `json:"change_direction"`
	Goal             float64         `json:"goal"`
	Achieved         float64         `json:"achieved"`
}

// ChartData is an ordered set of series plus an optional palette.
type ChartData struct {
	Series []ChartSeries `json:"series"`
	Colors []string      `json:"colors,omitempty"`
}

// ChartSeries represents a set of values plotted for a given legend entry.
type ChartSeries struct {
	Name   string       `json:"name"`
	Points []ChartPoint `json:"points"`
}

// ChartPoint represents an individual labeled value.
type ChartPoint struct {
	Label string  `json:"label"`
	Value float64 `json:"value"`
}

// Labels returns the labels of the longest series, used as the category axis.
func (c ChartData) Labels() []string {
	var longest []ChartPoint
	for _, s := range c.Series {
		if len(s.Points) > len(longest) {
			longest = s.Points
		}
	}
	labels := make([]string, len(longest))
	for i, p := range longest {
		labels[i] = p.Label
	}
	return labels
}

func (c ChartData) clone() ChartData {
	out := ChartData{Colors: append([]string(nil), c.Colors...)}
	if c.Series != nil {
		out.Series = make([]ChartSeries, len(c.Series))
		for i, s := range c.Series {
			out.Series[i] = ChartSeries{Name: s.Name, Points: append([]ChartPoint(nil), s.Points...)}
		}
	}
	return out
}

func singleSeries(name string, points []ChartPoint, colors ...string) ChartData {
	return ChartData{
		Series: []ChartSeries{{Name: name, Points: points}},
		Colors: colors,
	}
}

// DateRange is the human readable window the static data covers.
type DateRange struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// CustomerRef identifies the customer on a transaction or feedback entry.
type CustomerRef struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// ProductSummary is a top product entry on the overview page.
type ProductSummary struct {
	ID         int     `json:"id"`
	Name       string  `json:"name"`
	Revenue    float64 `json:"revenue"`
	Percentage float64 `json:"percentage"`
}

// Transaction is a recent order.
type Transaction struct {
	ID       string      `json:"id"`
	Customer CustomerRef `json:"customer"`
	Product  string      `json:"product"`
	Date     string      `json:"date"`
	Amount   float64     `json:"amount"`
	Status   string      `json:"status"`
}

// Customer is a top customer record.
type Customer struct {
	ID           int     `json:"id"`
	Name         string  `json:"name"`
	Email        string  `json:"email"`
	TotalSpent   float64 `json:"total_spent"`
	OrdersCount  int     `json:"orders_count"`
	LoyaltyLevel string  `json:"loyalty_level"`
	LastPurchase string  `json:"last_purchase"`
}

// Feedback is a customer review.
type Feedback struct {
	ID       string      `json:"id"`
	Customer CustomerRef `json:"customer"`
	Rating   float64     `json:"rating"`
	Comment  string      `json:"comment"`
	Date     string      `json:"date"`
	Status   string      `json:"status"`
}

// ProductSales aggregates units and revenue for a product.
type ProductSales struct {
	Units   int     `json:"units"`
	Revenue float64 `json:"revenue"`
}

// ProductPerformance is a product row on the products page. Top products carry
// a stock Status, underperforming products carry a Suggestion.
type ProductPerformance struct {
	ID         string       `json:"id"`
	Name       string       `json:"name"`
	Category   string       `json:"category"`
	Price      float64      `json:"price"`
	Stock      int          `json:"stock"`
	Sales      ProductSales `json:"sales"`
	Rating     float64      `json:"rating"`
	Status     string       `json:"status,omitempty"`
	Suggestion string       `json:"suggestion,omitempty"`
}

// InventoryLevel compares current stock against the optimal level per category.
type InventoryLevel struct {
	Name    string `json:"name"`
	Current int    `json:"current"`
	Optimal int    `json:"optimal"`
}

// ChannelPerformance aggregates traffic and spend per marketing channel.
type ChannelPerformance struct {
	Name        string  `json:"name"`
	Visits      int     `json:"visits"`
	Conversions int     `json:"conversions"`
	Spend       float64 `json:"spend"`
}

// Campaign is a marketing campaign record.
type Campaign struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Channel     string  `json:"channel"`
	Budget      float64 `json:"budget"`
	Spent       float64 `json:"spent"`
	Clicks      int     `json:"clicks"`
	Conversions int     `json:"conversions"`
	CTR         float64 `json:"ctr"`
	ROAS        float64 `json:"roas"`
	Status      string  `json:"status"`
}

// SocialPlatform summarizes a social network presence.
type SocialPlatform struct {
	Name       string  `json:"name"`
	Followers  int     `json:"followers"`
	Engagement float64 `json:"engagement"`
	Leads      int     `json:"leads"`
}

// GeoPerformance reports conversions per region.
type GeoPerformance struct {
	Name           string  `json:"name"`
	Visitors       int     `json:"visitors"`
	Conversions    int     `json:"conversions"`
	ConversionRate float64 `json:"conversion_rate"`
}

var monthLabels = []string{"Jan", "Feb", "Mar", "Apr", "May", "Jun", "Jul", "Aug", "Sep", "Oct", "Nov", "Dec"}

func pointsFrom(labels []string, values []float64) []ChartPoint {
	n := min(len(labels), len(values))
	points := make([]ChartPoint, n)
	for i := 0; i < n; i++ {
		points[i] = ChartPoint{Label: labels[i], Value: values[i]}
	}
	return points
}
