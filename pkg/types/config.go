// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines the data model shared by the go2ubl client and CLI.
package types

import "time"

// Default Go2UBL endpoints used when ClientConfig leaves a base URL empty.
const (
	DefaultCompanyAPI  = "https://secure.go2ubl.nl/api/request"
	DefaultDocumentAPI = "https://secure.go2ubl.nl/api/v1"
)

// HTTPConfig holds HTTP settings for the outbound client.
type HTTPConfig struct {
	// Timeout is the HTTP request timeout. Zero leaves the collaborator's default.
	Timeout time.Duration `json:"timeout" yaml:"timeout"`

	// UserAgent is sent with every request when non-empty.
	UserAgent string `json:"user_agent,omitempty" yaml:"user_agent,omitempty"`
}

// ClientConfig holds the base URLs and credentials for a Go2UBL client.
type ClientConfig struct {
	// CompanyAPI is the base URL for company and whitelist operations.
	CompanyAPI string `json:"company_api" yaml:"company_api"`

	// DocumentAPI is the base URL for document operations.
	DocumentAPI string `json:"document_api" yaml:"document_api"`

	// Identifier, Code and Token are sent as request headers of the same name.
	Identifier string `json:"identifier" yaml:"identifier"`
	Code       string `json:"code" yaml:"code"`
	Token      string `json:"token" yaml:"token"`
}

// HasCredentials reports whether all three credential fields are set.
func (c ClientConfig) HasCredentials() bool {
	return c.Identifier != "" && c.Code != "" && c.Token != ""
}
