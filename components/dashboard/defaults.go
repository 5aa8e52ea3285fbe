package dashboard

var (
	overviewWidgetOrder = []string{
		"revenue-card",
		"sales-card",
		"customers-card",
		"aov-card",
		"revenue-trend-card",
		"category-sales-card",
		"top-products-card",
		"region-sales-card",
		"recent-sales-card",
	}
	customerWidgetOrder  = []string{"stats", "acquisition", "retention", "engagement", "segments", "topCustomers", "feedback"}
	productWidgetOrder   = []string{"stats", "sales", "categories", "inventory", "topProducts", "underperforming", "performance"}
	marketingWidgetOrder = []string{"stats", "channels", "attribution", "campaigns", "social", "funnel", "geography"}
)

var regionOptions = []string{"All Regions", "North America", "Europe", "Asia Pacific", "Latin America", "Middle East & Africa"}

var defaultPageDefinitions = []PageDefinition{
	{
		ID:             PageOverview,
		Title:          "Dashboard",
		TitleLocalized: map[string]string{"es": "Panel", "de": "Übersicht", "fr": "Tableau de bord"},
		Description:    "Sales performance at a glance",
		Path:           "/overview",
		Position:       0,
		DefaultOrder:   overviewWidgetOrder,
		DefaultFilters: map[string]string{
			FilterTimePeriod: "Last 30 Days",
			FilterProduct:    "All Products",
			FilterRegion:     "All Regions",
			FilterChannel:    "All Channels",
		},
		FilterGroups: []FilterGroup{
			{Name: FilterTimePeriod, Label: "Time Period", Options: optionsOf(TimePeriodOptions...)},
			{Name: FilterProduct, Label: "Product", Options: optionsOf("All Products", "Electronics", "Clothing", "Home & Garden", "Sports & Outdoors", "Accessories")},
			{Name: FilterRegion, Label: "Region", Options: optionsOf(regionOptions...)},
			{Name: FilterChannel, Label: "Channel", Options: optionsOf("All Channels", "Online", "Retail", "Wholesale")},
		},
		Exports: []DatasetID{DatasetDashboardReport},
		Widgets: overviewWidgetOrder,
		Notify:  true,
	},
	{
		ID:             PageCustomers,
		Title:          "Customer Analytics",
		TitleLocalized: map[string]string{"es": "Análisis de clientes", "de": "Kundenanalyse", "fr": "Analyse clients"},
		Description:    "Understand who buys and how they engage",
		Path:           "/customers",
		Position:       1,
		DefaultOrder:   customerWidgetOrder,
		DefaultFilters: map[string]string{
			FilterTimePeriod: "This Month",
			FilterRegion:     "All Regions",
			FilterSegment:    "All Segments",
			FilterChannel:    "All Channels",
		},
		FilterGroups: []FilterGroup{
			{Name: FilterTimePeriod, Label: "Time Period", Options: optionsOf(TimePeriodOptions...)},
			{Name: FilterRegion, Label: "Region", Options: optionsOf(regionOptions...)},
			{Name: FilterSegment, Label: "Segment", Options: optionsOf("All Segments", "New", "Returning", "VIP", "At Risk")},
			{Name: FilterChannel, Label: "Channel", Options: optionsOf("All Channels", "Direct", "Organic Search", "Paid Search", "Social Media", "Referral")},
		},
		Exports: []DatasetID{DatasetCustomerSegmentation, DatasetTopCustomers, DatasetCustomerFeedback},
		Widgets: customerWidgetOrder,
	},
	{
		ID:             PageProducts,
		Title:          "Product Performance",
		TitleLocalized: map[string]string{"es": "Rendimiento de productos", "de": "Produktleistung", "fr": "Performance produits"},
		Description:    "Sales, stock and ratings per product",
		Path:           "/products",
		Position:       2,
		DefaultOrder:   productWidgetOrder,
		DefaultFilters: map[string]string{
			FilterTimePeriod: "This Year",
			FilterCategory:   "All Categories",
			FilterPriceRange: "All Prices",
			FilterSortBy:     "Revenue",
		},
		FilterGroups: []FilterGroup{
			{Name: FilterTimePeriod, Label: "Time Period", Options: optionsOf(TimePeriodOptions...)},
			{Name: FilterCategory, Label: "Category", Options: optionsOf("All Categories", "Electronics", "Clothing", "Home & Kitchen", "Sports", "Beauty")},
			{Name: FilterPriceRange, Label: "Price Range", Options: optionsOf("All Prices", "$0-$50", "$51-$100", "$101-$200", "$201+")},
			{Name: FilterSortBy, Label: "Sort By", Options: optionsOf("Revenue", "Units Sold", "Rating", "Stock")},
		},
		Exports: []DatasetID{DatasetInventory, DatasetTopProducts, DatasetUnderperforming},
		Widgets: productWidgetOrder,
	},
	{
		ID:             PageMarketing,
		Title:          "Marketing Analytics",
		TitleLocalized: map[string]string{"es": "Análisis de marketing", "de": "Marketinganalyse", "fr": "Analyse marketing"},
		Description:    "Channel, campaign and funnel performance",
		Path:           "/marketing",
		Position:       3,
		DefaultOrder:   marketingWidgetOrder,
		DefaultFilters: map[string]string{
			FilterTimePeriod: "This Year",
			FilterChannel:    "All Channels",
			FilterCampaign:   "All Campaigns",
			FilterRegion:     "All Regions",
		},
		FilterGroups: []FilterGroup{
			{Name: FilterTimePeriod, Label: "Time Period", Options: optionsOf(TimePeriodOptions...)},
			{Name: FilterChannel, Label: "Channel", Options: optionsOf("All Channels", "Social Media", "Search Ads", "Email", "Affiliates", "Display Ads", "Direct")},
			{Name: FilterCampaign, Label: "Campaign", Options: optionsOf("All Campaigns", "Summer Sale Promotion", "New Product Launch", "Retargeting Campaign", "Holiday Special Offers", "Loyalty Program Promotion")},
			{Name: FilterRegion, Label: "Region", Options: optionsOf("All Regions", "North America", "Europe", "Asia", "South America", "Australia", "Africa")},
		},
		Exports: []DatasetID{DatasetChannels, DatasetCampaigns, DatasetSocial, DatasetGeography},
		Widgets: marketingWidgetOrder,
	},
}

var defaultProviders = map[PageID]Provider{
	PageOverview:  ProviderFunc(overviewWidgets),
	PageCustomers: ProviderFunc(customerWidgets),
	PageProducts:  ProviderFunc(productWidgets),
	PageMarketing: ProviderFunc(marketingWidgets),
}

// DefaultPageDefinitions returns copies of the built-in pages.
func DefaultPageDefinitions() []PageDefinition {
	out := make([]PageDefinition, len(defaultPageDefinitions))
	for i, def := range defaultPageDefinitions {
		out[i] = def.clone()
	}
	return out
}
