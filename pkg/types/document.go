// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// DocumentUploadRequest describes a purchase document handed to Go2UBL for
// conversion to UBL.
type DocumentUploadRequest struct {
	// ExternalID is the caller's own reference for the document.
	ExternalID string `json:"external_id" yaml:"external_id"`

	// Filename defaults to ExternalID when empty.
	Filename string `json:"filename,omitempty" yaml:"filename,omitempty"`

	// ChamberOfCommerceID is the KvK number of the receiving company.
	ChamberOfCommerceID string `json:"chamber_of_commerce_id" yaml:"chamber_of_commerce_id"`

	// Document is the file content, typically base64 encoded.
	Document string `json:"document" yaml:"document"`
}

// FileName returns the name sent to Go2UBL for this upload.
func (r DocumentUploadRequest) FileName() string {
	if r.Filename != "" {
		return r.Filename
	}
	return r.ExternalID
}
