package endpoints

import (
	"github.com/doctriage/doctriage/internal/api"
)

// All returns all endpoint instances.
func All() []api.Endpoint {
	return []api.Endpoint{
		// Health endpoint
		&HealthEndpoint{},

		// Analysis endpoints
		&AnalyzeEndpoint{},
		&UploadEndpoint{},
	}
}
