package dashboard

// MarketingData backs the marketing page.
type MarketingData struct {
	Stats       []MetricStat         `json:"stats"`
	Channels    []ChannelPerformance `json:"channels"`
	Campaigns   []Campaign           `json:"campaigns"`
	Attribution ChartData            `json:"attribution"`
	Social      []SocialPlatform     `json:"social"`
	Funnel      ChartData            `json:"funnel"`
	Geography   []GeoPerformance     `json:"geography"`
	Trends      ChartData            `json:"trends"`
	DateRange   DateRange            `json:"date_range"`
}

var (
	trendVisits      = []float64{84210, 91560, 88730, 97840, 102360, 94120, 99870, 106540, 89650, 103280, 107910, 98450}
	trendLeads       = []float64{5320, 6140, 5870, 6710, 7280, 6020, 6890, 7650, 5540, 7030, 7820, 6460}
	trendConversions = []float64{1085, 1210, 1148, 1297, 1382, 1176, 1325, 1441, 1102, 1356, 1468, 1263}
)

func marketingData() MarketingData {
	return MarketingData{
		Stats: []MetricStat{
			{ID: "ad_spend", Title: "Ad Spend", Value: 58750, Prefix: "$", ChangePercentage: 8.7, ChangeDirection: ChangeUp, Goal: 60000, Achieved: 98},
			{ID: "roi", Title: "Marketing ROI", Value: 348, Suffix: "%", ChangePercentage: 12.4, ChangeDirection: ChangeUp, Goal: 300, Achieved: 100},
			{ID: "cac", Title: "Avg. Cost per Acquisition", Value: 32.75, Prefix: "$", ChangePercentage: 6.3, ChangeDirection: ChangeDown, Goal: 30, Achieved: 91},
			{ID: "campaigns", Title: "Active Campaigns", Value: 24, ChangePercentage: 4.2, ChangeDirection: ChangeUp, Goal: 25, Achieved: 96},
		},
		Channels: []ChannelPerformance{
			{Name: "Social Media", Visits: 32560, Conversions: 987, Spend: 12500},
			{Name: "Search Ads", Visits: 28750, Conversions: 1245, Spend: 18200},
			{Name: "Email", Visits: 21450, Conversions: 876, Spend: 4200},
			{Name: "Affiliates", Visits: 15670, Conversions: 532, Spend: 7800},
			{Name: "Display Ads", Visits: 12340, Conversions: 321, Spend: 9600},
			{Name: "Direct", Visits: 8760, Conversions: 254, Spend: 0},
		},
		Campaigns: []Campaign{
			{ID: "CAMP-001", Name: "Summer Sale Promotion", Channel: "Multiple", Budget: 15000, Spent: 14278, Clicks: 28450, Conversions: 742, CTR: 3.2, ROAS: 4.8, Status: "Active"},
			{ID: "CAMP-002", Name: "New Product Launch", Channel: "Social Media", Budget: 12000, Spent: 11876, Clicks: 32560, Conversions: 526, CTR: 2.8, ROAS: 3.6, Status: "Active"},
			{ID: "CAMP-003", Name: "Retargeting Campaign", Channel: "Display", Budget: 8000, Spent: 7245, Clicks: 15780, Conversions: 423, CTR: 4.1, ROAS: 5.2, Status: "Active"},
			{ID: "CAMP-004", Name: "Holiday Special Offers", Channel: "Email", Budget: 5000, Spent: 4876, Clicks: 12450, Conversions: 387, CTR: 3.5, ROAS: 6.7, Status: "Active"},
			{ID: "CAMP-005", Name: "Loyalty Program Promotion", Channel: "Multiple", Budget: 10000, Spent: 9875, Clicks: 18560, Conversions: 298, CTR: 2.1, ROAS: 3.2, Status: "Active"},
		},
		Attribution: singleSeries("Attribution", []ChartPoint{
			{Label: "Social Media", Value: 28},
			{Label: "Search Ads", Value: 32},
			{Label: "Email", Value: 18},
			{Label: "Affiliates", Value: 12},
			{Label: "Display Ads", Value: 8},
			{Label: "Direct", Value: 2},
		}, "#4c1d95", "#1d4ed8", "#0891b2", "#059669", "#b45309", "#be123c"),
		Social: []SocialPlatform{
			{Name: "Facebook", Followers: 58450, Engagement: 3.2, Leads: 876},
			{Name: "Instagram", Followers: 124650, Engagement: 4.8, Leads: 1245},
			{Name: "Twitter", Followers: 32580, Engagement: 2.1, Leads: 427},
			{Name: "LinkedIn", Followers: 18750, Engagement: 2.7, Leads: 654},
			{Name: "TikTok", Followers: 87650, Engagement: 5.6, Leads: 987},
		},
		Funnel: singleSeries("Funnel", []ChartPoint{
			{Label: "Impressions", Value: 524680},
			{Label: "Clicks", Value: 105730},
			{Label: "Leads", Value: 32650},
			{Label: "Opportunities", Value: 8765},
			{Label: "Customers", Value: 3254},
		}),
		Geography: []GeoPerformance{
			{Name: "North America", Visitors: 175650, Conversions: 2876, ConversionRate: 1.64},
			{Name: "Europe", Visitors: 124530, Conversions: 1875, ConversionRate: 1.51},
			{Name: "Asia", Visitors: 98760, Conversions: 1345, ConversionRate: 1.36},
			{Name: "South America", Visitors: 45670, Conversions: 587, ConversionRate: 1.29},
			{Name: "Australia", Visitors: 32450, Conversions: 465, ConversionRate: 1.43},
			{Name: "Africa", Visitors: 18760, Conversions: 234, ConversionRate: 1.25},
		},
		Trends: ChartData{Series: []ChartSeries{
			{Name: "Visits", Points: pointsFrom(monthLabels, trendVisits)},
			{Name: "Leads", Points: pointsFrom(monthLabels, trendLeads)},
			{Name: "Conversions", Points: pointsFrom(monthLabels, trendConversions)},
		}},
		DateRange: DateRange{Start: "Jan 1, 2023", End: "Dec 31, 2023"},
	}
}

func (d MarketingData) clone() MarketingData {
	return MarketingData{
		Stats:       append([]MetricStat(nil), d.Stats...),
		Channels:    append([]ChannelPerformance(nil), d.Channels...),
		Campaigns:   append([]Campaign(nil), d.Campaigns...),
		Attribution: d.Attribution.clone(),
		Social:      append([]SocialPlatform(nil), d.Social...),
		Funnel:      d.Funnel.clone(),
		Geography:   append([]GeoPerformance(nil), d.Geography...),
		Trends:      d.Trends.clone(),
		DateRange:   d.DateRange,
	}
}
