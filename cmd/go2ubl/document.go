package main

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/pdiddy/go2ubl/pkg/go2ubl"
	"github.com/pdiddy/go2ubl/pkg/types"
)

// documentLists maps --state values to the document listing they select.
var documentLists = map[string]func(*go2ubl.Client, context.Context) (json.RawMessage, error){
	"changed":    (*go2ubl.Client).GetDocumentsWithChangedStatus,
	"processing": (*go2ubl.Client).GetDocumentsStillToBeProcessed,
	"delivering": (*go2ubl.Client).GetDocumentsStillToBeDelivered,
	"ready":      (*go2ubl.Client).GetReadyDocuments,
	"failed":     (*go2ubl.Client).GetFailedDocuments,
}

func documentStates() []string {
	states := make([]string, 0, len(documentLists))
	for s := range documentLists {
		states = append(states, s)
	}
	sort.Strings(states)
	return states
}

var documentCmd = &cobra.Command{
	Use:   "document",
	Short: "Upload documents and query their processing state",
}

var documentUploadCmd = &cobra.Command{
	Use:   "upload <file>",
	Short: "Upload a document for conversion to UBL",
	Long: `Upload reads a file, base64-encodes it, and submits it for the company
given by --kvk. Without --external-id a random UUID is used; without
--filename the file's base name is used.`,
	Args: cobra.ExactArgs(1),
	RunE: runDocumentUpload,
}

func runDocumentUpload(cmd *cobra.Command, args []string) error {
	kvk, _ := cmd.Flags().GetString("kvk")
	externalID, _ := cmd.Flags().GetString("external-id")
	filename, _ := cmd.Flags().GetString("filename")

	req, err := buildUploadRequest(args[0], kvk, externalID, filename)
	if err != nil {
		return err
	}
	log.WithField("external_id", req.ExternalID).Debug("uploading document")

	return call(cmd, func(ctx context.Context, c *go2ubl.Client) (json.RawMessage, error) {
		return c.UploadDocument(ctx, req)
	})
}

// buildUploadRequest reads path and assembles the upload for it.
func buildUploadRequest(path, kvk, externalID, filename string) (types.DocumentUploadRequest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return types.DocumentUploadRequest{}, fmt.Errorf("reading document: %w", err)
	}
	if externalID == "" {
		externalID = uuid.NewString()
	}
	if filename == "" {
		filename = filepath.Base(path)
	}
	return types.DocumentUploadRequest{
		ExternalID:          externalID,
		Filename:            filename,
		ChamberOfCommerceID: kvk,
		Document:            base64.StdEncoding.EncodeToString(data),
	}, nil
}

var documentGetCmd = &cobra.Command{
	Use:   "get <guid>",
	Short: "Show a document",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := uuid.Parse(args[0])
		if err != nil {
			return fmt.Errorf("invalid document GUID %q: %w", args[0], err)
		}
		return call(cmd, func(ctx context.Context, c *go2ubl.Client) (json.RawMessage, error) {
			return c.GetDocument(ctx, id.String())
		})
	},
}

var documentListCmd = &cobra.Command{
	Use:   "list",
	Short: "List documents by processing state",
	RunE: func(cmd *cobra.Command, args []string) error {
		state, _ := cmd.Flags().GetString("state")
		list, ok := documentLists[state]
		if !ok {
			return fmt.Errorf("unknown state %q (want one of: %s)", state, strings.Join(documentStates(), ", "))
		}
		return call(cmd, func(ctx context.Context, c *go2ubl.Client) (json.RawMessage, error) {
			return list(c, ctx)
		})
	},
}

func init() {
	documentUploadCmd.Flags().String("kvk", "", "chamber of commerce number of the receiving company (required)")
	documentUploadCmd.Flags().String("external-id", "", "your reference for the document (default: random UUID)")
	documentUploadCmd.Flags().String("filename", "", "file name reported to Go2UBL (default: base name of <file>)")
	_ = documentUploadCmd.MarkFlagRequired("kvk")

	documentListCmd.Flags().String("state", "changed", "one of: "+strings.Join(documentStates(), ", "))

	documentCmd.AddCommand(documentUploadCmd, documentGetCmd, documentListCmd)
	rootCmd.AddCommand(documentCmd)
}
