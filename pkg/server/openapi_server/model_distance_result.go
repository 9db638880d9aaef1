// SPDX-License-Identifier: MIT

package openapi_server

type DistanceResult struct {
	From string  `json:"from"`
	To   string  `json:"to"`
	Km   float64 `json:"km"`
}
