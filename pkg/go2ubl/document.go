// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package go2ubl

import (
	"context"
	"encoding/json"

	"github.com/pdiddy/go2ubl/pkg/types"
)

// Document API paths, relative to ClientConfig.DocumentAPI.
const (
	PathPutDocument        = "PurchaseStandard/PutDocument"
	PathGetDocument        = "GetDocument"
	PathDocumentsUpdated   = "GetDocumentsWithUpdatedStatus"
	PathDocumentsToProcess = "GetDocumentsToBeProcessed"
	PathDocumentsToDeliver = "GetDocumentsToBeDelivered"
	PathDocumentsProcessed = "GetArchivedDocumentsProcessed"
	PathDocumentsDeclined  = "GetArchivedDocumentsDeclined"
)

// The upload body spells KvkNumber with a lowercase k, unlike the company API.
type putDocumentRequest struct {
	KvkNumber  string `json:"KvkNumber"`
	ExternalID string `json:"ExternalId"`
	FileName   string `json:"FileName"`
	Content    string `json:"Content"`
}

type documentRequest struct {
	DocumentGUID string `json:"DocumentGuid"`
}

type emptyRequest struct{}

func (c *Client) documentPost(ctx context.Context, path string, body any) (json.RawMessage, error) {
	return c.post(ctx, documentAPI, path, body)
}

// UploadDocument uploads a document for conversion to UBL. FileName falls
// back to ExternalID. The request is sent as given; Go2UBL validates it.
func (c *Client) UploadDocument(ctx context.Context, req types.DocumentUploadRequest) (json.RawMessage, error) {
	return c.documentPost(ctx, PathPutDocument, putDocumentRequest{
		KvkNumber:  req.ChamberOfCommerceID,
		ExternalID: req.ExternalID,
		FileName:   req.FileName(),
		Content:    req.Document,
	})
}

// GetDocument returns the details of one document.
func (c *Client) GetDocument(ctx context.Context, documentID string) (json.RawMessage, error) {
	return c.documentPost(ctx, PathGetDocument, documentRequest{DocumentGUID: documentID})
}

// GetDocumentsWithChangedStatus lists documents whose status has changed.
func (c *Client) GetDocumentsWithChangedStatus(ctx context.Context) (json.RawMessage, error) {
	return c.documentPost(ctx, PathDocumentsUpdated, emptyRequest{})
}

// GetDocumentsStillToBeProcessed lists documents awaiting processing.
func (c *Client) GetDocumentsStillToBeProcessed(ctx context.Context) (json.RawMessage, error) {
	return c.documentPost(ctx, PathDocumentsToProcess, emptyRequest{})
}

// GetDocumentsStillToBeDelivered lists documents awaiting delivery.
func (c *Client) GetDocumentsStillToBeDelivered(ctx context.Context) (json.RawMessage, error) {
	return c.documentPost(ctx, PathDocumentsToDeliver, emptyRequest{})
}

// GetReadyDocuments lists archived documents that were processed.
func (c *Client) GetReadyDocuments(ctx context.Context) (json.RawMessage, error) {
	return c.documentPost(ctx, PathDocumentsProcessed, emptyRequest{})
}

// GetFailedDocuments lists archived documents that were declined.
func (c *Client) GetFailedDocuments(ctx context.Context) (json.RawMessage, error) {
	return c.documentPost(ctx, PathDocumentsDeclined, emptyRequest{})
}
