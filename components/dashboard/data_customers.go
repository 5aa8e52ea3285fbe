package dashboard

import "fmt"

// CustomerData backs the customers page.
type CustomerData struct {
	Stats        []MetricStat `json:"stats"`
	Acquisition  ChartData    `json:"acquisition"`
	Retention    ChartData    `json:"retention"`
	AgeSegments  ChartData    `json:"age_segments"`
	Regions      ChartData    `json:"regions"`
	Engagement   ChartData    `json:"engagement"`
	TopCustomers []Customer   `json:"top_customers"`
	Feedback     []Feedback   `json:"feedback"`
	DateRange    DateRange    `json:"date_range"`
}

var (
	monthlyRetention = []float64{78, 82, 76, 85, 88, 81, 79, 86, 84, 89, 83, 87}
	dailyVisits      = []float64{
		912, 1045, 868, 1187, 1264, 953, 1102, 827, 1231, 1018,
		889, 1156, 974, 1293, 1067, 842, 1214, 935, 1129, 1008,
		1276, 861, 1093, 1185, 947, 1240, 1034, 876, 1162, 1121,
	}
	dailyPurchases = []float64{
		124, 163, 118, 187, 192, 131, 158, 109, 176, 149,
		121, 171, 137, 198, 154, 112, 183, 128, 166, 142,
		194, 117, 151, 179, 133, 188, 146, 115, 169, 161,
	}
)

func customerData() CustomerData {
	days := make([]string, len(dailyVisits))
	for i := range days {
		days[i] = fmt.Sprintf("Day %d", i+1)
	}

	return CustomerData{
		Stats: []MetricStat{
			{ID: "total_customers", Title: "Total Customers", Value: 24758, ChangePercentage: 12.8, ChangeDirection: ChangeUp, Goal: 30000, Achieved: 82},
			{ID: "active_customers", Title: "Active Customers", Value: 18346, ChangePercentage: 8.2, ChangeDirection: ChangeUp, Goal: 20000, Achieved: 92},
			{ID: "new_customers", Title: "New Customers (MTD)", Value: 1245, ChangePercentage: 4.5, ChangeDirection: ChangeDown, Goal: 1500, Achieved: 83},
			{ID: "clv", Title: "Avg. Lifetime Value", Value: 1284.53, Prefix: "$", ChangePercentage: 2.1, ChangeDirection: ChangeUp, Goal: 1350, Achieved: 95},
		},
		Acquisition: singleSeries("Acquisition", []ChartPoint{
			{Label: "Direct", Value: 30},
			{Label: "Organic Search", Value: 25},
			{Label: "Paid Search", Value: 20},
			{Label: "Social Media", Value: 15},
			{Label: "Referral", Value: 10},
		}, defaultPalette...),
		Retention: singleSeries("Retention", pointsFrom(monthLabels, monthlyRetention)),
		AgeSegments: singleSeries("Age Group", []ChartPoint{
			{Label: "18-24", Value: 15},
			{Label: "25-34", Value: 32},
			{Label: "35-44", Value: 28},
			{Label: "45-54", Value: 18},
			{Label: "55+", Value: 7},
		}, defaultPalette...),
		Regions: singleSeries("Region", []ChartPoint{
			{Label: "North America", Value: 45},
			{Label: "Europe", Value: 25},
			{Label: "Asia Pacific", Value: 20},
			{Label: "Latin America", Value: 7},
			{Label: "Other", Value: 3},
		}, defaultPalette...),
		Engagement: ChartData{Series: []ChartSeries{
			{Name: "Visits", Points: pointsFrom(days, dailyVisits)},
			{Name: "Purchases", Points: pointsFrom(days, dailyPurchases)},
		}},
		TopCustomers: []Customer{
			{ID: 1, Name: "Thomas Mitchell", Email: "thomas.m@example.com", TotalSpent: 12760.45, OrdersCount: 23, LoyaltyLevel: "Diamond", LastPurchase: "Oct 25, 2023"},
			{ID: 2, Name: "Sarah Williams", Email: "sarah.w@example.com", TotalSpent: 9845.20, OrdersCount: 18, LoyaltyLevel: "Platinum", LastPurchase: "Oct 28, 2023"},
			{ID: 3, Name: "Robert Johnson", Email: "robert.j@example.com", TotalSpent: 8350.75, OrdersCount: 15, LoyaltyLevel: "Gold", LastPurchase: "Oct 22, 2023"},
			{ID: 4, Name: "Jennifer Lopez", Email: "jennifer.l@example.com", TotalSpent: 7120.30, OrdersCount: 14, LoyaltyLevel: "Gold", LastPurchase: "Oct 26, 2023"},
			{ID: 5, Name: "Michael Brown", Email: "michael.b@example.com", TotalSpent: 6540.90, OrdersCount: 12, LoyaltyLevel: "Silver", LastPurchase: "Oct 20, 2023"},
		},
		Feedback: []Feedback{
			{ID: "#FB-1024", Customer: CustomerRef{Name: "Emma Thompson", Email: "emma.t@example.com"}, Rating: 5, Comment: "Exceptional service and product quality. Will definitely be a returning customer!", Date: "Oct 28, 2023", Status: "Positive"},
			{ID: "#FB-1023", Customer: CustomerRef{Name: "David Wilson", Email: "david.w@example.com"}, Rating: 2, Comment: "Delivery was much slower than expected. Product is fine but I expected faster shipping.", Date: "Oct 27, 2023", Status: "Negative"},
			{ID: "#FB-1022", Customer: CustomerRef{Name: "Sophia Martinez", Email: "sophia.m@example.com"}, Rating: 4, Comment: "Great products but the mobile app could use some improvements for a better shopping experience.", Date: "Oct 26, 2023", Status: "Positive"},
			{ID: "#FB-1021", Customer: CustomerRef{Name: "James Taylor", Email: "james.t@example.com"}, Rating: 3, Comment: "Average experience. Nothing exceptional, but everything worked as expected.", Date: "Oct 25, 2023", Status: "Neutral"},
			{ID: "#FB-1020", Customer: CustomerRef{Name: "Olivia Robinson", Email: "olivia.r@example.com"}, Rating: 1, Comment: "Very disappointed with customer service response time when I had an issue with my order.", Date: "Oct 24, 2023", Status: "Negative"},
		},
		DateRange: DateRange{Start: "Oct 1, 2023", End: "Oct 30, 2023"},
	}
}

func (d CustomerData) clone() CustomerData {
	return CustomerData{
		Stats:        append([]MetricStat(nil), d.Stats...),
		Acquisition:  d.Acquisition.clone(),
		Retention:    d.Retention.clone(),
		AgeSegments:  d.AgeSegments.clone(),
		Regions:      d.Regions.clone(),
		Engagement:   d.Engagement.clone(),
		TopCustomers: append([]Customer(nil), d.TopCustomers...),
		Feedback:     append([]Feedback(nil), d.Feedback...),
		DateRange:    d.DateRange,
	}
}
