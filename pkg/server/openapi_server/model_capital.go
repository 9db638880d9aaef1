// SPDX-License-Identifier: MIT

package openapi_server

type Capital struct {
	Name     string `json:"name"`
	Position Point  `json:"position"`
	Geohash  string `json:"geohash"`
}
