// SPDX-License-Identifier: MIT

package openapi_server

type RouteResult struct {
	Id          string   `json:"id"`
	Source      string   `json:"source"`
	Destination string   `json:"destination"`
	Metric      string   `json:"metric"`
	Reachable   bool     `json:"reachable"`
	Path        *Path    `json:"path,omitempty"`
	Warnings    []string `json:"warnings,omitempty"`
}
