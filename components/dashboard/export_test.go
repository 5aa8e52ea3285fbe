package dashboard

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubDataSource struct {
	*StaticDataSource
	customers CustomerData
}

func (s stubDataSource) Customers(context.Context) (CustomerData, error) {
	return s.customers, nil
}

var exportDate = time.Date(2024, 3, 9, 15, 4, 5, 0, time.UTC)

func TestExportTopCustomersEscapesCommas(t *testing.T) {
	source := stubDataSource{
		StaticDataSource: NewStaticDataSource(),
		customers: CustomerData{TopCustomers: []Customer{{
			Name: "A, B", Email: "a@b.com", TotalSpent: 100, OrdersCount: 1, LoyaltyLevel: "Gold", LastPurchase: "Jan 1",
		}}},
	}
	file, err := ExportDataset(context.Background(), source, DatasetTopCustomers, exportDate)
	require.NoError(t, err)

	want := "Name,Email,Total Spent,Orders,Loyalty Level,Last Purchase\n" +
		`"A, B",a@b.com,100,1,Gold,Jan 1` + "\n"
	assert.Equal(t, want, string(file.Data))
	assert.Equal(t, "top-customers-2024-03-09.csv", file.Filename)
	assert.Equal(t, CSVContentType, file.ContentType)
	assert.Equal(t, 1, file.Rows)
}

func TestExportChannelsGuardsZeroSpend(t *testing.T) {
	file, err := ExportDataset(context.Background(), NewStaticDataSource(), DatasetChannels, exportDate)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSuffix(string(file.Data), "\n"), "\n")
	require.Len(t, lines, 7)
	assert.Equal(t, "Channel,Visits,Conversions,Conversion Rate,Spend,CPA", lines[0])
	assert.Equal(t, "Social Media,32560,987,3.03%,12500,12.66", lines[1])
	assert.Equal(t, "Direct,8760,254,2.90%,0,N/A", lines[6])
}

func TestExportEveryDatasetHasHeaderAndRows(t *testing.T) {
	source := NewStaticDataSource()
	for _, id := range Datasets() {
		file, err := ExportDataset(context.Background(), source, id, exportDate)
		require.NoError(t, err, id)
		assert.True(t, strings.HasSuffix(string(file.Data), "\n"), id)
		assert.Greater(t, file.Rows, 0, id)
		assert.Equal(t, string(id)+"-2024-03-09.csv", file.Filename)
		page, ok := DatasetPage(id)
		require.True(t, ok)
		def, known := NewRegistry().Page(page)
		require.True(t, known, id)
		assert.Contains(t, def.Exports, id)
	}
}

func TestExportDashboardReport(t *testing.T) {
	file, err := ExportDataset(context.Background(), NewStaticDataSource(), DatasetDashboardReport, exportDate)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSuffix(string(file.Data), "\n"), "\n")
	require.Len(t, lines, 6)
	assert.Equal(t, "Date,Revenue,Orders,Customers", lines[0])
	assert.Equal(t, "2023-01-01,12500,142,98", lines[1])
	assert.Equal(t, "2023-01-05,16200,183,138", lines[5])
	assert.Equal(t, "dashboard-report-2024-03-09.csv", file.Filename)

	page, ok := DatasetPage(DatasetDashboardReport)
	require.True(t, ok)
	assert.Equal(t, PageOverview, page)
}

func TestExportFeedbackQuotesComments(t *testing.T) {
	file, err := ExportDataset(context.Background(), NewStaticDataSource(), DatasetCustomerFeedback, exportDate)
	require.NoError(t, err)
	assert.Contains(t, string(file.Data), `"Average experience. Nothing exceptional, but everything worked as expected."`)
	assert.Contains(t, string(file.Data), `"Oct 25, 2023"`)
}

func TestExportInventoryDerivesStatus(t *testing.T) {
	file, err := ExportDataset(context.Background(), NewStaticDataSource(), DatasetInventory, exportDate)
	require.NoError(t, err)
	assert.Contains(t, string(file.Data), "Electronics,742,912,Good Stock\n")
}

func TestResolveDataset(t *testing.T) {
	cases := map[string]DatasetID{
		"top-customers":    DatasetTopCustomers,
		"topCustomers":     DatasetTopCustomers,
		"customers":        DatasetTopCustomers,
		"topProducts":      DatasetTopProducts,
		"feedback":         DatasetCustomerFeedback,
		"customerFeedback": DatasetCustomerFeedback,
		"geography":        DatasetGeography,
		"report":           DatasetDashboardReport,
		"dashboardReport":  DatasetDashboardReport,
	}
	for in, want := range cases {
		got, err := ResolveDataset(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
	_, err := ResolveDataset("payroll")
	assert.ErrorIs(t, err, ErrUnknownDataset)
	_, err = ResolveDataset("")
	assert.ErrorIs(t, err, ErrUnknownDataset)
}
