// SPDX-License-Identifier: MIT

package openapi_server

type RouteRequest struct {
	Source      string `json:"source"`
	Destination string `json:"destination"`
	// One of distance, cost, time. Defaults to distance.
	Metric string `json:"metric,omitempty"`
}

// AssertRouteRequestRequired checks if the required fields are not zero-ed
func AssertRouteRequestRequired(obj RouteRequest) error {
	elements := map[string]interface{}{
		"source":      obj.Source,
		"destination": obj.Destination,
	}
	for name, el := range elements {
		if isZero := IsZeroValue(el); isZero {
			return &RequiredError{Field: name}
		}
	}
	return nil
}
