// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package secrets loads Go2UBL credentials from a directory of plain-text
// files. The filename is the key and the trimmed contents the value.
//
// Recognized files: go2ubl-identifier, go2ubl-code, go2ubl-token.
package secrets

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Credential file names.
const (
	IdentifierFile = "go2ubl-identifier"
	CodeFile       = "go2ubl-code"
	TokenFile      = "go2ubl-token"
)

// Credentials are the three values Go2UBL expects as request headers.
type Credentials struct {
	Identifier string
	Code       string
	Token      string
}

// Empty reports whether no credential was found.
func (c Credentials) Empty() bool {
	return c.Identifier == "" && c.Code == "" && c.Token == ""
}

// Load reads the credential files in dir. A missing directory or missing
// files are not errors; the corresponding fields stay empty. Files other
// than the three recognized names are ignored.
func Load(dir string) (Credentials, error) {
	info, err := os.Stat(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return Credentials{}, nil
		}
		return Credentials{}, fmt.Errorf("reading secrets directory %s: %w", dir, err)
	}
	if !info.IsDir() {
		return Credentials{}, fmt.Errorf("secrets path %s is not a directory", dir)
	}

	var creds Credentials
	fields := map[string]*string{
		IdentifierFile: &creds.Identifier,
		CodeFile:       &creds.Code,
		TokenFile:      &creds.Token,
	}
	for name, dst := range fields {
		v, err := readSecret(filepath.Join(dir, name))
		if err != nil {
			return Credentials{}, err
		}
		*dst = v
	}
	return creds, nil
}

func readSecret(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", nil
		}
		return "", fmt.Errorf("reading secret %s: %w", filepath.Base(path), err)
	}
	return strings.TrimSpace(string(data)), nil
}
