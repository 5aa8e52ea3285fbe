package dashboard

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatNumberUsesLocaleSeparators(t *testing.T) {
	assert.Equal(t, "1,284.53", FormatNumber(1284.53, 2, "en-US"))
	assert.Equal(t, "24,758", FormatNumber(24758, 0, ""))
	assert.Equal(t, "1.284,53", FormatNumber(1284.53, 2, "de"))
}

func TestFormatHelpers(t *testing.T) {
	assert.Equal(t, "$12,760.45", FormatCurrency(12760.45, "en"))
	assert.Equal(t, "-$5.00", FormatCurrency(-5, "en"))
	assert.Equal(t, "21.3%", FormatPercentage(21.3))
	assert.Equal(t, "$69.85", FormatMetric(MetricStat{Value: 69.85, Prefix: "$"}, "en"))
	assert.Equal(t, "32.70%", FormatMetric(MetricStat{Value: 32.7, Suffix: "%"}, "en"))
	assert.Equal(t, "Premium...", TruncateText("Premium Headphones", 8))
	assert.Equal(t, "short", TruncateText("short", 8))
	assert.Equal(t, "100", plainNumber(100))
	assert.Equal(t, "9845.2", plainNumber(9845.20))
}
