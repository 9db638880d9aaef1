package openapi_server

type Cities struct {
	Cities []string `json:"cities"`
}

// AssertCitiesRequired checks if the required fields are not zero-ed
func AssertCitiesRequired(obj Cities) error {
	elements := map[string]interface{}{
		"cities": obj.Cities,
	}
	for name, el := range elements {
		if isZero := IsZeroValue(el); isZero {
			return &RequiredError{Field: name}
		}
	}
	return nil
}
