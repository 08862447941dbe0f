// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package go2ubl

import (
	"context"
	"encoding/json"
)

// Company API paths, relative to ClientConfig.CompanyAPI.
const (
	PathGetCompany      = "GetCompanyByKvk"
	PathEnableCompany   = "EnableCompanyByKvk"
	PathAddCompany      = "AddCompanyByKvk"
	PathDisableCompany  = "DisableCompanyByKvk"
	PathDeleteWhitelist = "DeleteWhiteListByKvk"
	PathAddWhitelist    = "AddWhiteListByKvk"
	PathGetWhitelist    = "GetWhiteListByKvk"
)

// Company API request bodies. Field names are the service's and must not change.
type companyRequest struct {
	KvKNumber string `json:"KvKNumber"`
}

type addCompanyRequest struct {
	KvKNumber    string   `json:"KvKNumber"`
	ValidSenders []string `json:"ValidSenders"`
	ReplyAddress string   `json:"ReplyAddress"`
}

type whitelistRequest struct {
	KvKNumber string `json:"KvKNumber"`
	Email     string `json:"Email"`
}

func (c *Client) companyPost(ctx context.Context, path string, body any) (json.RawMessage, error) {
	return c.post(ctx, companyAPI, path, body)
}

func requireKvK(chamberOfCommerceID string) error {
	if chamberOfCommerceID == "" {
		return invalidInput("chamber of commerce identity is required")
	}
	return nil
}

// GetCompany returns the company registered under a chamber of commerce
// identity.
func (c *Client) GetCompany(ctx context.Context, chamberOfCommerceID string) (json.RawMessage, error) {
	if err := requireKvK(chamberOfCommerceID); err != nil {
		return nil, err
	}
	return c.companyPost(ctx, PathGetCompany, companyRequest{KvKNumber: chamberOfCommerceID})
}

// EnableCompany enables an existing company.
func (c *Client) EnableCompany(ctx context.Context, chamberOfCommerceID string) (json.RawMessage, error) {
	if err := requireKvK(chamberOfCommerceID); err != nil {
		return nil, err
	}
	return c.companyPost(ctx, PathEnableCompany, companyRequest{KvKNumber: chamberOfCommerceID})
}

// AddCompany registers a company with its initial sender whitelist and the
// address Go2UBL replies to. A nil whitelist is sent as an empty list.
func (c *Client) AddCompany(ctx context.Context, chamberOfCommerceID string, initialEmailWhitelist []string, replyEmailAddress string) (json.RawMessage, error) {
	if err := requireKvK(chamberOfCommerceID); err != nil {
		return nil, err
	}
	if replyEmailAddress == "" {
		return nil, invalidInput("reply email address is required")
	}
	if initialEmailWhitelist == nil {
		initialEmailWhitelist = []string{}
	}
	return c.companyPost(ctx, PathAddCompany, addCompanyRequest{
		KvKNumber:    chamberOfCommerceID,
		ValidSenders: initialEmailWhitelist,
		ReplyAddress: replyEmailAddress,
	})
}

// DisableCompany disables a company.
func (c *Client) DisableCompany(ctx context.Context, chamberOfCommerceID string) (json.RawMessage, error) {
	if err := requireKvK(chamberOfCommerceID); err != nil {
		return nil, err
	}
	return c.companyPost(ctx, PathDisableCompany, companyRequest{KvKNumber: chamberOfCommerceID})
}

// DeleteEmailFromCompanyWhitelist removes an address from a company's
// sender whitelist.
func (c *Client) DeleteEmailFromCompanyWhitelist(ctx context.Context, chamberOfCommerceID, emailAddressToDelete string) (json.RawMessage, error) {
	if err := requireKvK(chamberOfCommerceID); err != nil {
		return nil, err
	}
	if emailAddressToDelete == "" {
		return nil, invalidInput("email address is required")
	}
	return c.companyPost(ctx, PathDeleteWhitelist, whitelistRequest{KvKNumber: chamberOfCommerceID, Email: emailAddressToDelete})
}

// AddEmailToCompanyWhitelist adds an address to a company's sender
// whitelist.
func (c *Client) AddEmailToCompanyWhitelist(ctx context.Context, chamberOfCommerceID, emailAddressToAdd string) (json.RawMessage, error) {
	if err := requireKvK(chamberOfCommerceID); err != nil {
		return nil, err
	}
	if emailAddressToAdd == "" {
		return nil, invalidInput("email address is required")
	}
	return c.companyPost(ctx, PathAddWhitelist, whitelistRequest{KvKNumber: chamberOfCommerceID, Email: emailAddressToAdd})
}

// GetCompanyWhitelist returns the addresses currently whitelisted for a
// company.
func (c *Client) GetCompanyWhitelist(ctx context.Context, chamberOfCommerceID string) (json.RawMessage, error) {
	if err := requireKvK(chamberOfCommerceID); err != nil {
		return nil, err
	}
	return c.companyPost(ctx, PathGetWhitelist, companyRequest{KvKNumber: chamberOfCommerceID})
}
