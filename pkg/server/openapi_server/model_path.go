// SPDX-License-Identifier: MIT

package openapi_server

type Path struct {
	Cities    []string `json:"cities"`
	Waypoints []Point  `json:"waypoints"`
	Cost      float64  `json:"cost"`
	Duration  int32    `json:"duration"`
	Distance  float64  `json:"distance"`
}

// AssertPathRequired checks if the required fields are not zero-ed
func AssertPathRequired(obj Path) error {
	elements := map[string]interface{}{
		"cities":    obj.Cities,
		"waypoints": obj.Waypoints,
	}
	for name, el := range elements {
		if isZero := IsZeroValue(el); isZero {
			return &RequiredError{Field: name}
		}
	}

	for _, el := range obj.Waypoints {
		if err := AssertPointRequired(el); err != nil {
			return err
		}
	}
	return nil
}
