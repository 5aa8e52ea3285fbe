package dashboard

// ProductData backs the products page.
type ProductData struct {
	Stats           []MetricStat         `json:"stats"`
	MonthlySales    ChartData            `json:"monthly_sales"`
	Categories      ChartData            `json:"categories"`
	Prices          ChartData            `json:"prices"`
	Inventory       []InventoryLevel     `json:"inventory"`
	TopProducts     []ProductPerformance `json:"top_products"`
	Underperforming []ProductPerformance `json:"underperforming"`
	Timeline        ChartData            `json:"timeline"`
	DateRange       DateRange            `json:"date_range"`
}

var (
	monthlyProductSales = []float64{
		96420, 88150, 112380, 104760, 121930, 93270,
		118640, 127510, 85930, 109870, 124380, 129260,
	}
	timelineElectronics = []float64{142, 118, 167, 155, 189, 134, 176, 198, 121, 163, 185, 193}
	timelineClothing    = []float64{78, 64, 92, 85, 103, 71, 97, 112, 58, 88, 107, 116}
	timelineHome        = []float64{56, 48, 71, 63, 82, 52, 75, 89, 44, 67, 84, 93}
	timelineSports      = []float64{34, 27, 41, 38, 52, 29, 46, 55, 23, 39, 48, 57}
)

func productData() ProductData {
	return ProductData{
		Stats: []MetricStat{
			{ID: "total_products", Title: "Total Products", Value: 1254, ChangePercentage: 5.3, ChangeDirection: ChangeUp, Goal: 1500, Achieved: 84},
			{ID: "top_performer", Title: "Top Performer", Value: 148.5, Prefix: "$K", ChangePercentage: 12.1, ChangeDirection: ChangeUp, Goal: 150, Achieved: 99},
			{ID: "low_stock", Title: "Low Stock Items", Value: 28, ChangePercentage: 3.2, ChangeDirection: ChangeDown, Goal: 0, Achieved: 72},
			{ID: "avg_profit", Title: "Avg. Profit Margin", Value: 32.7, Suffix: "%", ChangePercentage: 1.5, ChangeDirection: ChangeUp, Goal: 35, Achieved: 93},
		},
		MonthlySales: singleSeries("Sales", pointsFrom(monthLabels, monthlyProductSales)),
		Categories: singleSeries("Category", []ChartPoint{
			{Label: "Electronics", Value: 35},
			{Label: "Clothing", Value: 25},
			{Label: "Home & Kitchen", Value: 20},
			{Label: "Sports", Value: 12},
			{Label: "Beauty", Value: 8},
		}, defaultPalette...),
		Prices: singleSeries("Price Point", []ChartPoint{
			{Label: "$0-$50", Value: 40},
			{Label: "$51-$100", Value: 30},
			{Label: "$101-$200", Value: 20},
			{Label: "$201+", Value: 10},
		}, defaultPalette[:4]...),
		Inventory: []InventoryLevel{
			{Name: "Electronics", Current: 742, Optimal: 912},
			{Name: "Clothing", Current: 538, Optimal: 865},
			{Name: "Home", Current: 817, Optimal: 843},
			{Name: "Sports", Current: 629, Optimal: 976},
			{Name: "Beauty", Current: 951, Optimal: 884},
			{Name: "Other", Current: 574, Optimal: 807},
		},
		TopProducts: []ProductPerformance{
			{ID: "PRD-5678", Name: `Ultra HD Smart TV 55"`, Category: "Electronics", Price: 699.99, Stock: 124, Sales: ProductSales{Units: 89, Revenue: 62299.11}, Rating: 4.8, Status: "In Stock"},
			{ID: "PRD-9012", Name: "Wireless Noise Cancelling Headphones", Category: "Electronics", Price: 249.99, Stock: 78, Sales: ProductSales{Units: 187, Revenue: 46748.13}, Rating: 4.9, Status: "In Stock"},
			{ID: "PRD-3456", Name: "Premium Ergonomic Office Chair", Category: "Home & Kitchen", Price: 189.99, Stock: 45, Sales: ProductSales{Units: 201, Revenue: 38187.99}, Rating: 4.7, Status: "Low Stock"},
			{ID: "PRD-7890", Name: "Professional Blender 2000X", Category: "Home & Kitchen", Price: 129.99, Stock: 92, Sales: ProductSales{Units: 256, Revenue: 33277.44}, Rating: 4.6, Status: "In Stock"},
			{ID: "PRD-1234", Name: "Athletic Running Shoes", Category: "Sports", Price: 79.99, Stock: 156, Sales: ProductSales{Units: 378, Revenue: 30236.22}, Rating: 4.5, Status: "In Stock"},
		},
		Underperforming: []ProductPerformance{
			{ID: "PRD-2468", Name: "Basic Desk Lamp", Category: "Home & Kitchen", Price: 24.99, Stock: 342, Sales: ProductSales{Units: 12, Revenue: 299.88}, Rating: 3.2, Suggestion: "Discount"},
			{ID: "PRD-1357", Name: "Standard HDMI Cable 6ft", Category: "Electronics", Price: 9.99, Stock: 521, Sales: ProductSales{Units: 37, Revenue: 369.63}, Rating: 3.5, Suggestion: "Bundle"},
			{ID: "PRD-3690", Name: "Cotton T-Shirt Pack", Category: "Clothing", Price: 19.99, Stock: 267, Sales: ProductSales{Units: 19, Revenue: 379.81}, Rating: 2.8, Suggestion: "Discontinue"},
		},
		Timeline: ChartData{Series: []ChartSeries{
			{Name: "Electronics", Points: pointsFrom(monthLabels, timelineElectronics)},
			{Name: "Clothing", Points: pointsFrom(monthLabels, timelineClothing)},
			{Name: "Home", Points: pointsFrom(monthLabels, timelineHome)},
			{Name: "Sports", Points: pointsFrom(monthLabels, timelineSports)},
		}, Colors: defaultPalette[:4]},
		DateRange: DateRange{Start: "Jan 1, 2023", End: "Dec 31, 2023"},
	}
}

func (d ProductData) clone() ProductData {
	return ProductData{
		Stats:           append([]MetricStat(nil), d.Stats...),
		MonthlySales:    d.MonthlySales.clone(),
		Categories:      d.Categories.clone(),
		Prices:          d.Prices.clone(),
		Inventory:       append([]InventoryLevel(nil), d.Inventory...),
		TopProducts:     append([]ProductPerformance(nil), d.TopProducts...),
		Underperforming: append([]ProductPerformance(nil), d.Underperforming...),
		Timeline:        d.Timeline.clone(),
		DateRange:       d.DateRange,
	}
}
