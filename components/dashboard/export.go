package dashboard

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/ettle/strcase"
)

// DatasetID names an exportable dataset. It doubles as the file stem.
type DatasetID string

const (
	DatasetDashboardReport      DatasetID = "dashboard-report"
	DatasetCustomerSegmentation DatasetID = "customer-segmentation"
	DatasetTopCustomers         DatasetID = "top-customers"
	DatasetCustomerFeedback     DatasetID = "customer-feedback"
	DatasetInventory            DatasetID = "inventory-status"
	DatasetTopProducts          DatasetID = "top-products"
	DatasetUnderperforming      DatasetID = "underperforming-products"
	DatasetChannels             DatasetID = "channel-performance"
	DatasetCampaigns            DatasetID = "campaign-performance"
	DatasetSocial               DatasetID = "social-media-performance"
	DatasetGeography            DatasetID = "geographic-performance"
)

// CSVContentType is served with every export.
const CSVContentType = "text/csv;charset=utf-8"

// ExportFile is a serialized dataset ready for download.
type ExportFile struct {
	Dataset     DatasetID `json:"dataset"`
	Filename    string    `json:"filename"`
	ContentType string    `json:"content_type"`
	Rows        int       `json:"rows"`
	Data        []byte    `json:"-"`
}

type datasetExporter struct {
	page   PageID
	header []string
	rows   func(ctx context.Context, source DataSource) ([][]string, error)
}

var exporters = map[DatasetID]datasetExporter{
	DatasetDashboardReport: {
		page:   PageOverview,
		header: []string{"Date", "Revenue", "Orders", "Customers"},
		rows: func(ctx context.Context, source DataSource) ([][]string, error) {
			data, err := source.Overview(ctx)
			if err != nil {
				return nil, err
			}
			rows := make([][]string, len(data.DailyTotals))
			for i, d := range data.DailyTotals {
				rows[i] = []string{d.Date, plainNumber(d.Revenue), strconv.Itoa(d.Orders), strconv.Itoa(d.Customers)}
			}
			return rows, nil
		},
	},
	DatasetCustomerSegmentation: {
		page:   PageCustomers,
		header: []string{"Age Group", "Percentage"},
		rows: func(ctx context.Context, source DataSource) ([][]string, error) {
			data, err := source.Customers(ctx)
			if err != nil {
				return nil, err
			}
			var rows [][]string
			for _, s := range data.AgeSegments.Series {
				for _, p := range s.Points {
					rows = append(rows, []string{p.Label, plainNumber(p.Value) + "%"})
				}
			}
			return rows, nil
		},
	},
	DatasetTopCustomers: {
		page:   PageCustomers,
		header: []string{"Name", "Email", "Total Spent", "Orders", "Loyalty Level", "Last Purchase"},
		rows: func(ctx context.Context, source DataSource) ([][]string, error) {
			data, err := source.Customers(ctx)
			if err != nil {
				return nil, err
			}
			rows := make([][]string, len(data.TopCustomers))
			for i, c := range data.TopCustomers {
				rows[i] = []string{c.Name, c.Email, plainNumber(c.TotalSpent), strconv.Itoa(c.OrdersCount), c.LoyaltyLevel, c.LastPurchase}
			}
			return rows, nil
		},
	},
	DatasetCustomerFeedback: {
		page:   PageCustomers,
		header: []string{"Customer", "Rating", "Comment", "Date", "Status"},
		rows: func(ctx context.Context, source DataSource) ([][]string, error) {
			data, err := source.Customers(ctx)
			if err != nil {
				return nil, err
			}
			rows := make([][]string, len(data.Feedback))
			for i, f := range data.Feedback {
				rows[i] = []string{f.Customer.Name, plainNumber(f.Rating), f.Comment, f.Date, f.Status}
			}
			return rows, nil
		},
	},
	DatasetInventory: {
		page:   PageProducts,
		header: []string{"Category", "Current Stock", "Optimal Stock", "Status"},
		rows: func(ctx context.Context, source DataSource) ([][]string, error) {
			data, err := source.Products(ctx)
			if err != nil {
				return nil, err
			}
			rows := make([][]string, len(data.Inventory))
			for i, l := range data.Inventory {
				rows[i] = []string{l.Name, strconv.Itoa(l.Current), strconv.Itoa(l.Optimal), InventoryStatus(l.Current, l.Optimal)}
			}
			return rows, nil
		},
	},
	DatasetTopProducts: {
		page:   PageProducts,
		header: []string{"ID", "Name", "Category", "Price", "Stock", "Units Sold", "Revenue", "Rating", "Status"},
		rows: func(ctx context.Context, source DataSource) ([][]string, error) {
			data, err := source.Products(ctx)
			if err != nil {
				return nil, err
			}
			return productExportRows(data.TopProducts, func(p ProductPerformance) string { return p.Status }), nil
		},
	},
	DatasetUnderperforming: {
		page:   PageProducts,
		header: []string{"ID", "Name", "Category", "Price", "Stock", "Units Sold", "Revenue", "Rating", "Suggestion"},
		rows: func(ctx context.Context, source DataSource) ([][]string, error) {
			data, err := source.Products(ctx)
			if err != nil {
				return nil, err
			}
			return productExportRows(data.Underperforming, func(p ProductPerformance) string { return p.Suggestion }), nil
		},
	},
	DatasetChannels: {
		page:   PageMarketing,
		header: []string{"Channel", "Visits", "Conversions", "Conversion Rate", "Spend", "CPA"},
		rows: func(ctx context.Context, source DataSource) ([][]string, error) {
			data, err := source.Marketing(ctx)
			if err != nil {
				return nil, err
			}
			rows := make([][]string, len(data.Channels))
			for i, c := range data.Channels {
				rate, rateOK := ConversionRate(c.Conversions, c.Visits)
				cpa, cpaOK := CostPerAcquisition(c.Spend, c.Conversions)
				rows[i] = []string{
					c.Name,
					strconv.Itoa(c.Visits),
					strconv.Itoa(c.Conversions),
					fixed(rate, rateOK, 2, "%"),
					plainNumber(c.Spend),
					fixed(cpa, cpaOK, 2, ""),
				}
			}
			return rows, nil
		},
	},
	DatasetCampaigns: {
		page:   PageMarketing,
		header: []string{"ID", "Name", "Channel", "Budget", "Spent", "Clicks", "Conversions", "CTR", "ROAS", "Status"},
		rows: func(ctx context.Context, source DataSource) ([][]string, error) {
			data, err := source.Marketing(ctx)
			if err != nil {
				return nil, err
			}
			rows := make([][]string, len(data.Campaigns))
			for i, c := range data.Campaigns {
				rows[i] = []string{
					c.ID,
					c.Name,
					c.Channel,
					plainNumber(c.Budget),
					plainNumber(c.Spent),
					strconv.Itoa(c.Clicks),
					strconv.Itoa(c.Conversions),
					plainNumber(c.CTR) + "%",
					plainNumber(c.ROAS) + "x",
					c.Status,
				}
			}
			return rows, nil
		},
	},
	DatasetSocial: {
		page:   PageMarketing,
		header: []string{"Platform", "Followers", "Engagement", "Leads Generated"},
		rows: func(ctx context.Context, source DataSource) ([][]string, error) {
			data, err := source.Marketing(ctx)
			if err != nil {
				return nil, err
			}
			rows := make([][]string, len(data.Social))
			for i, s := range data.Social {
				rows[i] = []string{s.Name, strconv.Itoa(s.Followers), plainNumber(s.Engagement) + "%", strconv.Itoa(s.Leads)}
			}
			return rows, nil
		},
	},
	DatasetGeography: {
		page:   PageMarketing,
		header: []string{"Region", "Visitors", "Conversions", "Conversion Rate"},
		rows: func(ctx context.Context, source DataSource) ([][]string, error) {
			data, err := source.Marketing(ctx)
			if err != nil {
				return nil, err
			}
			rows := make([][]string, len(data.Geography))
			for i, g := range data.Geography {
				rows[i] = []string{g.Name, strconv.Itoa(g.Visitors), strconv.Itoa(g.Conversions), plainNumber(g.ConversionRate) + "%"}
			}
			return rows, nil
		},
	},
}

// datasetAliases maps the short names used by page export buttons.
var datasetAliases = map[string]DatasetID{
	"report":          DatasetDashboardReport,
	"segmentation":    DatasetCustomerSegmentation,
	"customers":       DatasetTopCustomers,
	"feedback":        DatasetCustomerFeedback,
	"inventory":       DatasetInventory,
	"underperforming": DatasetUnderperforming,
	"channels":        DatasetChannels,
	"campaigns":       DatasetCampaigns,
	"social":          DatasetSocial,
	"geography":       DatasetGeography,
}

func productExportRows(products []ProductPerformance, last func(ProductPerformance) string) [][]string {
	rows := make([][]string, len(products))
	for i, p := range products {
		rows[i] = []string{
			p.ID,
			p.Name,
			p.Category,
			plainNumber(p.Price),
			strconv.Itoa(p.Stock),
			strconv.Itoa(p.Sales.Units),
			plainNumber(p.Sales.Revenue),
			plainNumber(p.Rating),
			last(p),
		}
	}
	return rows
}

// Datasets lists every exportable dataset in a stable order.
func Datasets() []DatasetID {
	out := make([]DatasetID, 0, len(exporters))
	for id := range exporters {
		out = append(out, id)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// ResolveDataset accepts a dataset id, its camelCase form (topCustomers) or
// a short alias (feedback) and returns the canonical id.
func ResolveDataset(name string) (DatasetID, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", fmt.Errorf("%w: empty name", ErrUnknownDataset)
	}
	candidate := DatasetID(strcase.ToKebab(name))
	if _, ok := exporters[candidate]; ok {
		return candidate, nil
	}
	if alias, ok := datasetAliases[strings.ToLower(name)]; ok {
		return alias, nil
	}
	return "", fmt.Errorf("%w: %s", ErrUnknownDataset, name)
}

// DatasetPage reports which page owns a dataset.
func DatasetPage(id DatasetID) (PageID, bool) {
	exp, ok := exporters[id]
	return exp.page, ok
}

// ExportFilename returns "<dataset>-<YYYY-MM-DD>.csv" for the given instant.
func ExportFilename(id DatasetID, at time.Time) string {
	return fmt.Sprintf("%s-%s.csv", id, at.UTC().Format("2006-01-02"))
}

// ExportDataset serializes a dataset from source as CSV.
func ExportDataset(ctx context.Context, source DataSource, id DatasetID, at time.Time) (ExportFile, error) {
	exp, ok := exporters[id]
	if !ok {
		return ExportFile{}, fmt.Errorf("%w: %s", ErrUnknownDataset, id)
	}
	rows, err := exp.rows(ctx, source)
	if err != nil {
		return ExportFile{}, err
	}
	var buf bytes.Buffer
	if err := WriteCSV(&buf, exp.header, rows); err != nil {
		return ExportFile{}, err
	}
	return ExportFile{
		Dataset:     id,
		Filename:    ExportFilename(id, at),
		ContentType: CSVContentType,
		Rows:        len(rows),
		Data:        buf.Bytes(),
	}, nil
}

// WriteCSV writes header and rows with RFC 4180 quoting; every record ends in "\n".
func WriteCSV(w io.Writer, header []string, rows [][]string) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(header); err != nil {
		return err
	}
	if err := cw.WriteAll(rows); err != nil {
		return err
	}
	return cw.Error()
}
