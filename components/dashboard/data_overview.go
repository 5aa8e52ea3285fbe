package dashboard

import "fmt"

// OverviewData backs the overview page.
type OverviewData struct {
	Stats              []MetricStat     `json:"stats"`
	Revenue            ChartData        `json:"revenue"`
	Categories         ChartData        `json:"categories"`
	Regions            ChartData        `json:"regions"`
	TopProducts        []ProductSummary `json:"top_products"`
	RecentTransactions []Transaction    `json:"recent_transactions"`
	DateRange          DateRange        `json:"date_range"`
	DailyTotals        []DailyTotal     `json:"daily_totals"`
}

// DailyTotal is one row of the overview report export.
type DailyTotal struct {
	Date      string  `json:"date"`
	Revenue   float64 `json:"revenue"`
	Orders    int     `json:"orders"`
	Customers int     `json:"customers"`
}

var defaultPalette = []string{"#3b82f6", "#8b5cf6", "#10b981", "#f59e0b", "#ef4444"}

var octoberRevenue = []float64{
	42180, 18940, 35210, 27650, 51320, 22480, 39870, 14560, 46730, 31290,
	25840, 57110, 19620, 44350, 36980, 28410, 53760, 16930, 41250, 33870,
	24590, 48620, 30140, 55980, 21370, 38760, 45290, 17820, 52410, 34650,
}

func overviewData() OverviewData {
	revenue := make([]ChartPoint, len(octoberRevenue))
	for i, v := range octoberRevenue {
		revenue[i] = ChartPoint{Label: fmt.Sprintf("Oct %d", i+1), Value: v}
	}

	return OverviewData{
		Stats: []MetricStat{
			{ID: "revenue", Title: "Total Revenue", Value: 879432, Prefix: "$", ChangePercentage: 21.3, ChangeDirection: ChangeUp, Goal: 1125000, Achieved: 78},
			{ID: "sales", Title: "Total Sales", Value: 12590, ChangePercentage: 13.2, ChangeDirection: ChangeUp, Goal: 14800, Achieved: 85},
			{ID: "customers", Title: "New Customers", Value: 2814, ChangePercentage: 8.4, ChangeDirection: ChangeUp, Goal: 4150, Achieved: 68},
			{ID: "aov", Title: "Avg. Order Value", Value: 69.85, Prefix: "$", ChangePercentage: 3.2, ChangeDirection: ChangeDown, Goal: 82.5, Achieved: 65},
		},
		Revenue: singleSeries("Revenue", revenue),
		Categories: singleSeries("Sales by Category", []ChartPoint{
			{Label: "Electronics", Value: 35},
			{Label: "Clothing", Value: 25},
			{Label: "Home & Garden", Value: 20},
			{Label: "Sports & Outdoors", Value: 15},
			{Label: "Accessories", Value: 5},
		}, defaultPalette...),
		Regions: singleSeries("Sales by Region", []ChartPoint{
			{Label: "North America", Value: 40},
			{Label: "Europe", Value: 30},
			{Label: "Asia Pacific", Value: 20},
			{Label: "Latin America", Value: 7},
			{Label: "Middle East & Africa", Value: 3},
		}, defaultPalette...),
		TopProducts: []ProductSummary{
			{ID: 1, Name: "Premium Headphones XR-500", Revenue: 34890, Percentage: 92},
			{ID: 2, Name: "Wireless Earbuds Pro", Revenue: 28460, Percentage: 78},
			{ID: 3, Name: "Smart Watch Series 7", Revenue: 24780, Percentage: 65},
			{ID: 4, Name: "Bluetooth Speaker XL", Revenue: 18340, Percentage: 53},
			{ID: 5, Name: "Ultra HD Action Camera", Revenue: 15670, Percentage: 42},
		},
		RecentTransactions: []Transaction{
			{ID: "#ORD-7895", Customer: CustomerRef{Name: "Emma Wilson", Email: "emma.w@example.com"}, Product: "Smart Watch Series 7", Date: "Oct 28, 2023", Amount: 299.99, Status: "Completed"},
			{ID: "#ORD-7894", Customer: CustomerRef{Name: "James Brown", Email: "james.b@example.com"}, Product: "Wireless Earbuds Pro", Date: "Oct 27, 2023", Amount: 159.99, Status: "Completed"},
			{ID: "#ORD-7893", Customer: CustomerRef{Name: "Alex Johnson", Email: "alex.j@example.com"}, Product: "Premium Headphones XR-500", Date: "Oct 26, 2023", Amount: 249.99, Status: "Processing"},
			{ID: "#ORD-7892", Customer: CustomerRef{Name: "Sarah Davis", Email: "sarah.d@example.com"}, Product: "Ultra HD Action Camera", Date: "Oct 25, 2023", Amount: 329.99, Status: "Cancelled"},
			{ID: "#ORD-7891", Customer: CustomerRef{Name: "Michael Lee", Email: "michael.l@example.com"}, Product: "Bluetooth Speaker XL", Date: "Oct 24, 2023", Amount: 129.99, Status: "Shipped"},
		},
		DateRange: DateRange{Start: "Oct 1, 2023", End: "Oct 30, 2023"},
		DailyTotals: []DailyTotal{
			{Date: "2023-01-01", Revenue: 12500, Orders: 142, Customers: 98},
			{Date: "2023-01-02", Revenue: 14200, Orders: 158, Customers: 112},
			{Date: "2023-01-03", Revenue: 13800, Orders: 145, Customers: 103},
			{Date: "2023-01-04", Revenue: 15600, Orders: 172, Customers: 125},
			{Date: "2023-01-05", Revenue: 16200, Orders: 183, Customers: 138},
		},
	}
}

func (d OverviewData) clone() OverviewData {
	return OverviewData{
		Stats:              append([]MetricStat(nil), d.Stats...),
		Revenue:            d.Revenue.clone(),
		Categories:         d.Categories.clone(),
		Regions:            d.Regions.clone(),
		TopProducts:        append([]ProductSummary(nil), d.TopProducts...),
		RecentTransactions: append([]Transaction(nil), d.RecentTransactions...),
		DateRange:          d.DateRange,
		DailyTotals:        append([]DailyTotal(nil), d.DailyTotals...),
	}
}
