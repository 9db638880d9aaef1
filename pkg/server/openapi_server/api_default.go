package openapi_server

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/gorilla/mux"
)

// DefaultApiController binds http requests to an api service and writes the service results to the http response
type DefaultApiController struct {
	service      DefaultApiServicer
	errorHandler ErrorHandler
}

// DefaultApiOption for how the controller is set up.
type DefaultApiOption func(*DefaultApiController)

// WithDefaultApiErrorHandler inject ErrorHandler into controller
func WithDefaultApiErrorHandler(h ErrorHandler) DefaultApiOption {
	return func(c *DefaultApiController) {
		c.errorHandler = h
	}
}

// NewDefaultApiController creates a default api controller
func NewDefaultApiController(s DefaultApiServicer, opts ...DefaultApiOption) Router {
	controller := &DefaultApiController{
		service:      s,
		errorHandler: DefaultErrorHandler,
	}

	for _, opt := range opts {
		opt(controller)
	}

	return controller
}

// Routes returns all of the api route for the DefaultApiController
func (c *DefaultApiController) Routes() Routes {
	return Routes{
		{
			"ComputeRoute",
			strings.ToUpper("Post"),
			"/routes",
			c.ComputeRoute,
		},
		{
			"ComputeRouteGeoJSON",
			strings.ToUpper("Post"),
			"/routes/geojson",
			c.ComputeRouteGeoJSON,
		},
		{
			"ComputeRouteOSM",
			strings.ToUpper("Post"),
			"/routes/osm",
			c.ComputeRouteOSM,
		},
		{
			"GetCapitals",
			strings.ToUpper("Get"),
			"/capitals",
			c.GetCapitals,
		},
		// must precede /capitals/{name}
		{
			"GetNearestCapital",
			strings.ToUpper("Get"),
			"/capitals/nearest",
			c.GetNearestCapital,
		},
		{
			"GetCapital",
			strings.ToUpper("Get"),
			"/capitals/{name}",
			c.GetCapital,
		},
		{
			"GetCities",
			strings.ToUpper("Get"),
			"/cities",
			c.GetCities,
		},
		{
			"GetDistance",
			strings.ToUpper("Get"),
			"/distance",
			c.GetDistance,
		},
	}
}

func (c *DefaultApiController) decodeRouteRequest(w http.ResponseWriter, r *http.Request) (RouteRequest, bool) {
	routeRequestParam := RouteRequest{}
	d := json.NewDecoder(r.Body)
	d.DisallowUnknownFields()
	if err := d.Decode(&routeRequestParam); err != nil {
		c.errorHandler(w, r, &ParsingError{Err: err}, nil)
		return routeRequestParam, false
	}
	if err := AssertRouteRequestRequired(routeRequestParam); err != nil {
		c.errorHandler(w, r, err, nil)
		return routeRequestParam, false
	}
	return routeRequestParam, true
}

// ComputeRoute - Compute a new route
func (c *DefaultApiController) ComputeRoute(w http.ResponseWriter, r *http.Request) {
	routeRequestParam, ok := c.decodeRouteRequest(w, r)
	if !ok {
		return
	}
	result, err := c.service.ComputeRoute(r.Context(), routeRequestParam)
	// If an error occurred, encode the error with the status code
	if err != nil {
		c.errorHandler(w, r, err, &result)
		return
	}
	// If no error, encode the body and the result code
	setCORSHeaders(w, "POST")
	EncodeJSONResponse(result.Body, &result.Code, w)
}

// ComputeRouteGeoJSON - Compute a new route as a GeoJSON feature collection
func (c *DefaultApiController) ComputeRouteGeoJSON(w http.ResponseWriter, r *http.Request) {
	routeRequestParam, ok := c.decodeRouteRequest(w, r)
	if !ok {
		return
	}
	result, err := c.service.ComputeRouteGeoJSON(r.Context(), routeRequestParam)
	if err != nil {
		c.errorHandler(w, r, err, &result)
		return
	}
	setCORSHeaders(w, "POST")
	EncodeJSONResponse(result.Body, &result.Code, w)
}

// ComputeRouteOSM - Compute a new route as an OSM XML document
func (c *DefaultApiController) ComputeRouteOSM(w http.ResponseWriter, r *http.Request) {
	routeRequestParam, ok := c.decodeRouteRequest(w, r)
	if !ok {
		return
	}
	result, err := c.service.ComputeRouteOSM(r.Context(), routeRequestParam)
	if err != nil {
		c.errorHandler(w, r, err, &result)
		return
	}
	setCORSHeaders(w, "POST")
	EncodeXMLResponse(result.Body, &result.Code, w)
}

func (c *DefaultApiController) GetCapitals(w http.ResponseWriter, r *http.Request) {
	result, err := c.service.GetCapitals(r.Context())
	// If an error occurred, encode the error with the status code
	if err != nil {
		c.errorHandler(w, r, err, &result)
		return
	}
	// If no error, encode the body and the result code
	setCORSHeaders(w, "GET")
	EncodeJSONResponse(result.Body, &result.Code, w)
}

func (c *DefaultApiController) GetCapital(w http.ResponseWriter, r *http.Request) {
	params := mux.Vars(r)
	nameParam := params["name"]
	result, err := c.service.GetCapital(r.Context(), nameParam)
	if err != nil {
		c.errorHandler(w, r, err, &result)
		return
	}
	setCORSHeaders(w, "GET")
	EncodeJSONResponse(result.Body, &result.Code, w)
}

func (c *DefaultApiController) GetNearestCapital(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	if query.Get("lat") == "" {
		c.errorHandler(w, r, &RequiredError{Field: "lat"}, nil)
		return
	}
	if query.Get("lon") == "" {
		c.errorHandler(w, r, &RequiredError{Field: "lon"}, nil)
		return
	}
	latParam, err := parseFloat64Parameter(query.Get("lat"), true)
	if err != nil {
		c.errorHandler(w, r, &ParsingError{Err: err}, nil)
		return
	}
	lonParam, err := parseFloat64Parameter(query.Get("lon"), true)
	if err != nil {
		c.errorHandler(w, r, &ParsingError{Err: err}, nil)
		return
	}
	result, err := c.service.GetNearestCapital(r.Context(), latParam, lonParam)
	if err != nil {
		c.errorHandler(w, r, err, &result)
		return
	}
	setCORSHeaders(w, "GET")
	EncodeJSONResponse(result.Body, &result.Code, w)
}

func (c *DefaultApiController) GetCities(w http.ResponseWriter, r *http.Request) {
	result, err := c.service.GetCities(r.Context())
	if err != nil {
		c.errorHandler(w, r, err, &result)
		return
	}
	setCORSHeaders(w, "GET")
	EncodeJSONResponse(result.Body, &result.Code, w)
}

func (c *DefaultApiController) GetDistance(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	fromParam := query.Get("from")
	if fromParam == "" {
		c.errorHandler(w, r, &RequiredError{Field: "from"}, nil)
		return
	}
	toParam := query.Get("to")
	if toParam == "" {
		c.errorHandler(w, r, &RequiredError{Field: "to"}, nil)
		return
	}
	result, err := c.service.GetDistance(r.Context(), fromParam, toParam)
	if err != nil {
		c.errorHandler(w, r, err, &result)
		return
	}
	setCORSHeaders(w, "GET")
	EncodeJSONResponse(result.Body, &result.Code, w)
}
