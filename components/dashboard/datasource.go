package dashboard

import "context"

// DataSource exposes the datasets behind each page. Callers receive copies and
// may not observe or cause mutations of the underlying data.
type DataSource interface {
	Overview(ctx context.Context) (OverviewData, error)
	Customers(ctx context.Context) (CustomerData, error)
	Products(ctx context.Context) (ProductData, error)
	Marketing(ctx context.Context) (MarketingData, error)
}

// StaticDataSource serves the bundled, constant demo datasets.
type StaticDataSource struct {
	overview  OverviewData
	customers CustomerData
	products  ProductData
	marketing MarketingData
}

// NewStaticDataSource builds the demo datasets once.
func NewStaticDataSource() *StaticDataSource {
	return &StaticDataSource{
		overview:  overviewData(),
		customers: customerData(),
		products:  productData(),
		marketing: marketingData(),
	}
}

func (s *StaticDataSource) Overview(ctx context.Context) (OverviewData, error) {
	if err := ctx.Err(); err != nil {
		return OverviewData{}, err
	}
	return s.overview.clone(), nil
}

func (s *StaticDataSource) Customers(ctx context.Context) (CustomerData, error) {
	if err := ctx.Err(); err != nil {
		return CustomerData{}, err
	}
	return s.customers.clone(), nil
}

func (s *StaticDataSource) Products(ctx context.Context) (ProductData, error) {
	if err := ctx.Err(); err != nil {
		return ProductData{}, err
	}
	return s.products.clone(), nil
}

func (s *StaticDataSource) Marketing(ctx context.Context) (MarketingData, error) {
	if err := ctx.Err(); err != nil {
		return MarketingData{}, err
	}
	return s.marketing.clone(), nil
}
