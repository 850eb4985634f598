package cli

import (
	"bytes"
	"fmt"
	"net/http"
	"testing"

	"github.com/jarcoal/httpmock"

	"github.com/custodia-labs/xdxfgen/internal/adapters/driven/config/memory"
	"github.com/custodia-labs/xdxfgen/internal/adapters/driven/xdxf"
	"github.com/custodia-labs/xdxfgen/internal/connectors/wikipedia"
	"github.com/custodia-labs/xdxfgen/internal/core/domain"
	"github.com/custodia-labs/xdxfgen/internal/core/ports/driving"
	"github.com/custodia-labs/xdxfgen/internal/core/services"
	"github.com/custodia-labs/xdxfgen/internal/logger"
	"github.com/custodia-labs/xdxfgen/internal/normalisers/html"
)

// setupTestServices installs a settings service backed by an in-memory
// store and resets flag state when the test ends.
func setupTestServices(t *testing.T) *memory.ConfigStore {
	t.Helper()

	store := memory.NewConfigStore()
	originalSettings := settingsService
	originalAirports := newAirportService
	settingsService = services.NewSettingsService(store, "test")

	t.Cleanup(func() {
		settingsService = originalSettings
		newAirportService = originalAirports
		verbose = false
		configDir = ""
		outputPath = ""
		airportLetters = ""
		airportURLTemplate = ""
		logger.SetVerbose(false)
		rootCmd.SetArgs(nil)
	})
	return store
}

// mockAirports routes airport page requests through httpmock.
func mockAirports(t *testing.T) {
	t.Helper()

	client := &http.Client{}
	httpmock.ActivateNonDefault(client)
	t.Cleanup(httpmock.DeactivateAndReset)

	newAirportService = func(settings *domain.AppSettings) driving.AirportService {
		wiki := settings.Wikipedia
		wiki.RequestsPerSecond = 1000
		return services.NewAirportService(wikipedia.NewWithClient(wiki, client), html.New(), xdxf.NewRenderer(), wiki)
	}
}

func registerAirportPage(url, letter string) {
	body := fmt.Sprintf(`<html><head><title>List of airports by IATA airport code: %s - Wikipedia</title></head>
<body><table><tbody>
<tr><th>IATA</th><th>ICAO</th><th>Airport name</th><th>Location served</th></tr>
<tr><td>%sAA</td><td>NTGA</td><td>Anaa Airport</td><td>Anaa</td></tr>
</tbody></table></body></html>`, letter, letter)
	httpmock.RegisterResponder(http.MethodGet, url, httpmock.NewStringResponder(http.StatusOK, body))
}

// execute runs the root command with args and returns its output.
func execute(args ...string) (string, error) {
	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return buf.String(), err
}
