package dashboard

import (
	"context"
	"strconv"
)

func overviewWidgets(ctx context.Context, meta PageContext) (PageWidgets, error) {
	data, err := meta.Source.Overview(ctx)
	if err != nil {
		return PageWidgets{}, err
	}
	widgets := map[string]Widget{
		"revenue-trend-card":  ChartWidget{Title: "Revenue Trend", Subtitle: "Daily revenue for the period", Type: ChartArea, Data: data.Revenue, Span: 2},
		"category-sales-card": ChartWidget{Title: "Sales by Category", Type: ChartDonut, Data: data.Categories},
		"top-products-card":   ProductsWidget{Title: "Top Products", Products: data.TopProducts},
		"region-sales-card":   ChartWidget{Title: "Sales by Region", Type: ChartBar, Data: data.Regions},
		"recent-sales-card":   TransactionsWidget{Title: "Recent Transactions", Transactions: data.RecentTransactions, Span: 2},
	}
	for _, stat := range data.Stats {
		widgets[stat.ID+"-card"] = StatWidget{Stat: stat}
	}
	return PageWidgets{Widgets: widgets, DateRange: data.DateRange}, nil
}

func customerWidgets(ctx context.Context, meta PageContext) (PageWidgets, error) {
	data, err := meta.Source.Customers(ctx)
	if err != nil {
		return PageWidgets{}, err
	}
	locale := meta.Viewer.Locale
	customers := make([][]string, len(data.TopCustomers))
	for i, c := range data.TopCustomers {
		customers[i] = []string{
			c.Name,
			c.Email,
			FormatCurrency(c.TotalSpent, locale),
			strconv.Itoa(c.OrdersCount),
			c.LoyaltyLevel,
			c.LastPurchase,
		}
	}
	feedback := make([][]string, len(data.Feedback))
	for i, f := range data.Feedback {
		feedback[i] = []string{f.Customer.Name, plainNumber(f.Rating) + "/5", TruncateText(f.Comment, 60), f.Date, f.Status}
	}
	return PageWidgets{
		Widgets: map[string]Widget{
			"stats":       StatGroupWidget{Stats: data.Stats},
			"acquisition": ChartWidget{Title: "Customer Acquisition", Subtitle: "Where new customers come from", Type: ChartDonut, Data: data.Acquisition},
			"retention":   ChartWidget{Title: "Customer Retention", Subtitle: "Monthly retention rate (%)", Type: ChartLine, Data: data.Retention},
			"engagement":  ChartWidget{Title: "Customer Engagement", Subtitle: "Daily visits and purchases", Type: ChartArea, Data: data.Engagement, Span: 2},
			"segments":    ChartWidget{Title: "Age Segmentation", Type: ChartPie, Data: data.AgeSegments, Export: DatasetCustomerSegmentation},
			"topCustomers": TableWidget{
				Title:   "Top Customers",
				Columns: []string{"Customer", "Email", "Total Spent", "Orders", "Loyalty", "Last Purchase"},
				Rows:    customers,
				Span:    2,
				Export:  DatasetTopCustomers,
			},
			"feedback": TableWidget{
				Title:   "Customer Feedback",
				Columns: []string{"Customer", "Rating", "Comment", "Date", "Status"},
				Rows:    feedback,
				Span:    2,
				Export:  DatasetCustomerFeedback,
			},
		},
		DateRange: data.DateRange,
	}, nil
}

func productWidgets(ctx context.Context, meta PageContext) (PageWidgets, error) {
	data, err := meta.Source.Products(ctx)
	if err != nil {
		return PageWidgets{}, err
	}
	locale := meta.Viewer.Locale
	inventory := ChartData{Series: []ChartSeries{{Name: "Current"}, {Name: "Optimal"}}, Colors: []string{"#3b82f6", "#10b981"}}
	for _, level := range data.Inventory {
		inventory.Series[0].Points = append(inventory.Series[0].Points, ChartPoint{Label: level.Name, Value: float64(level.Current)})
		inventory.Series[1].Points = append(inventory.Series[1].Points, ChartPoint{Label: level.Name, Value: float64(level.Optimal)})
	}
	productRows := func(products []ProductPerformance, last func(ProductPerformance) string) [][]string {
		rows := make([][]string, len(products))
		for i, p := range products {
			rows[i] = []string{
				p.Name,
				p.Category,
				FormatCurrency(p.Price, locale),
				FormatNumber(float64(p.Stock), 0, locale),
				FormatNumber(float64(p.Sales.Units), 0, locale),
				FormatCurrency(p.Sales.Revenue, locale),
				plainNumber(p.Rating),
				last(p),
			}
		}
		return rows
	}
	columns := func(last string) []string {
		return []string{"Product", "Category", "Price", "Stock", "Units Sold", "Revenue", "Rating", last}
	}
	return PageWidgets{
		Widgets: map[string]Widget{
			"stats":      StatGroupWidget{Stats: data.Stats},
			"sales":      ChartWidget{Title: "Monthly Sales", Subtitle: "Revenue per month", Type: ChartBar, Data: data.MonthlySales, Span: 2},
			"categories": ChartWidget{Title: "Category Distribution", Type: ChartDonut, Data: data.Categories},
			"inventory":  ChartWidget{Title: "Inventory Levels", Subtitle: "Current vs optimal stock", Type: ChartBar, Data: inventory, Export: DatasetInventory},
			"topProducts": TableWidget{
				Title:   "Top Selling Products",
				Columns: columns("Status"),
				Rows:    productRows(data.TopProducts, func(p ProductPerformance) string { return p.Status }),
				Span:    2,
				Export:  DatasetTopProducts,
			},
			"underperforming": TableWidget{
				Title:   "Underperforming Products",
				Columns: columns("Suggestion"),
				Rows:    productRows(data.Underperforming, func(p ProductPerformance) string { return p.Suggestion }),
				Span:    2,
				Export:  DatasetUnderperforming,
			},
			"performance": ChartWidget{Title: "Performance Timeline", Subtitle: "Units sold per category", Type: ChartLine, Data: data.Timeline, Span: 2},
		},
		DateRange: data.DateRange,
	}, nil
}

func marketingWidgets(ctx context.Context, meta PageContext) (PageWidgets, error) {
	data, err := meta.Source.Marketing(ctx)
	if err != nil {
		return PageWidgets{}, err
	}
	locale := meta.Viewer.Locale
	channels := make([][]string, len(data.Channels))
	for i, c := range data.Channels {
		rate, rateOK := ConversionRate(c.Conversions, c.Visits)
		cpa, cpaOK := CostPerAcquisition(c.Spend, c.Conversions)
		cpaText := NotAvailable
		if cpaOK {
			cpaText = FormatCurrency(cpa, locale)
		}
		channels[i] = []string{
			c.Name,
			FormatNumber(float64(c.Visits), 0, locale),
			FormatNumber(float64(c.Conversions), 0, locale),
			fixed(rate, rateOK, 2, "%"),
			FormatCurrency(c.Spend, locale),
			cpaText,
		}
	}
	campaigns := make([][]string, len(data.Campaigns))
	for i, c := range data.Campaigns {
		used, ok := BudgetUtilization(c.Spent, c.Budget)
		campaigns[i] = []string{
			c.Name,
			c.Channel,
			FormatCurrency(c.Budget, locale),
			fixed(used, ok, 1, "%"),
			FormatNumber(float64(c.Clicks), 0, locale),
			FormatNumber(float64(c.Conversions), 0, locale),
			plainNumber(c.CTR) + "%",
			plainNumber(c.ROAS) + "x",
			c.Status,
		}
	}
	social := make([][]string, len(data.Social))
	for i, s := range data.Social {
		social[i] = []string{s.Name, FormatNumber(float64(s.Followers), 0, locale), plainNumber(s.Engagement) + "%", FormatNumber(float64(s.Leads), 0, locale)}
	}
	geography := make([][]string, len(data.Geography))
	for i, g := range data.Geography {
		geography[i] = []string{g.Name, FormatNumber(float64(g.Visitors), 0, locale), FormatNumber(float64(g.Conversions), 0, locale), plainNumber(g.ConversionRate) + "%"}
	}
	return PageWidgets{
		Widgets: map[string]Widget{
			"stats": StatGroupWidget{Stats: data.Stats},
			"channels": TableWidget{
				Title:   "Channel Performance",
				Columns: []string{"Channel", "Visits", "Conversions", "Conv. Rate", "Spend", "CPA"},
				Rows:    channels,
				Span:    2,
				Export:  DatasetChannels,
			},
			"attribution": ChartWidget{Title: "Channel Attribution", Subtitle: "Share of conversions (%)", Type: ChartDonut, Data: data.Attribution},
			"campaigns": TableWidget{
				Title:   "Campaign Performance",
				Columns: []string{"Campaign", "Channel", "Budget", "Budget Used", "Clicks", "Conversions", "CTR", "ROAS", "Status"},
				Rows:    campaigns,
				Span:    2,
				Export:  DatasetCampaigns,
			},
			"social": TableWidget{
				Title:   "Social Media Performance",
				Columns: []string{"Platform", "Followers", "Engagement", "Leads"},
				Rows:    social,
				Export:  DatasetSocial,
			},
			"funnel": ChartWidget{Title: "Marketing Funnel", Type: ChartFunnel, Data: data.Funnel},
			"geography": TableWidget{
				Title:   "Geographic Performance",
				Columns: []string{"Region", "Visitors", "Conversions", "Conv. Rate"},
				Rows:    geography,
				Export:  DatasetGeography,
			},
		},
		DateRange: data.DateRange,
	}, nil
}
