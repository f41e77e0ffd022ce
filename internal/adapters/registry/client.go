// Package registry implements a client for the remote package registry's
// GraphQL API.
package registry

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/Masterminds/semver/v3"
	"go.trai.ch/wpm/internal/core/domain"
	"go.trai.ch/zerr"
)

// CredentialSource provides the registry endpoint and auth token. The config
// store implements this.
type CredentialSource interface {
	RegistryEndpoint() (url, token string, err error)
}

// Client queries the registry over HTTP.
type Client struct {
	creds CredentialSource
	http  *http.Client
}

// NewClient creates a registry client using the given credential source.
func NewClient(creds CredentialSource) *Client {
	return &Client{
		creds: creds,
		http:  &http.Client{Timeout: 30 * time.Second},
	}
}

const getCommandQuery = `query GetCommand($commandName: String!) {
  getCommand(name: $commandName) {
    command
    packageVersion {
      version
      package {
        displayName
      }
    }
  }
}`

type graphqlRequest struct {
	Query     string         `json:"query"`
	Variables map[string]any `json:"variables"`
}

type getCommandResponse struct {
	Data struct {
		GetCommand *struct {
			Command        string `json:"command"`
			PackageVersion struct {
				Version string `json:"version"`
				Package struct {
					DisplayName string `json:"displayName"`
				} `json:"package"`
			} `json:"packageVersion"`
		} `json:"getCommand"`
	} `json:"data"`
	Errors []struct {
		Message string `json:"message"`
	} `json:"errors"`
}

// LookupPackageByCommand asks the registry which package provides the given
// command. A null response means no package is known for it.
func (c *Client) LookupPackageByCommand(ctx context.Context, commandName string) (*domain.PackageInfo, error) {
	endpoint, token, err := c.creds.RegistryEndpoint()
	if err != nil {
		return nil, err
	}

	body, err := json.Marshal(graphqlRequest{
		Query:     getCommandQuery,
		Variables: map[string]any{"commandName": commandName},
	})
	if err != nil {
		return nil, zerr.Wrap(err, domain.ErrRegistryRequestFailed.Error())
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, zerr.Wrap(err, domain.ErrRegistryRequestFailed.Error())
	}
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, zerr.Wrap(err, domain.ErrRegistryRequestFailed.Error())
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, zerr.With(domain.ErrRegistryRequestFailed, "status", resp.Status)
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, zerr.Wrap(err, domain.ErrRegistryRequestFailed.Error())
	}

	var parsed getCommandResponse
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return nil, zerr.Wrap(err, domain.ErrRegistryRequestFailed.Error())
	}
	if len(parsed.Errors) > 0 {
		return nil, zerr.With(domain.ErrRegistryRequestFailed, "message", parsed.Errors[0].Message)
	}
	if parsed.Data.GetCommand == nil {
		return nil, zerr.Wrap(domain.ErrRegistryCommandUnknown, fmt.Sprintf("command %q was not found in the registry", commandName))
	}

	version := parsed.Data.GetCommand.PackageVersion.Version
	if _, err := semver.NewVersion(version); err != nil {
		return nil, zerr.With(zerr.With(domain.ErrRegistryRequestFailed, "command", commandName), "version", version)
	}

	return &domain.PackageInfo{
		Command:     parsed.Data.GetCommand.Command,
		Version:     parsed.Data.GetCommand.PackageVersion.Version,
		PackageName: parsed.Data.GetCommand.PackageVersion.Package.DisplayName,
	}, nil
}
