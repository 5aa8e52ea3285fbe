package dashboard

import (
	"os"
	"strings"
)

// EnvEChartsCDN overrides the host ECharts scripts and themes load from.
const EnvEChartsCDN = "SALESROOM_ECHARTS_CDN"

// DefaultEChartsAssetsHost is the public go-echarts asset bucket.
const DefaultEChartsAssetsHost = "https://go-echarts.github.io/go-echarts-assets/assets/"

// EChartsAssetsHost returns the configured assets host. An explicit value
// wins over SALESROOM_ECHARTS_CDN, which wins over the public bucket.
func EChartsAssetsHost(explicit string) string {
	if host := strings.TrimSpace(explicit); host != "" {
		return ensureTrailingSlash(host)
	}
	if host := strings.TrimSpace(os.Getenv(EnvEChartsCDN)); host != "" {
		return ensureTrailingSlash(host)
	}
	return DefaultEChartsAssetsHost
}

func ensureTrailingSlash(value string) string {
	if value == "" || strings.HasSuffix(value, "/") {
		return value
	}
	return value + "/"
}
