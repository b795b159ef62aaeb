package logstore

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"golang.org/x/oauth2"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"
)

// valueInputUserEntered makes the store coerce values as if typed by a user,
// so "60" lands as a number.
const valueInputUserEntered = "USER_ENTERED"

// SheetsBackend stores the log in the first sheet of a spreadsheet through
// the Sheets v4 values API.
type SheetsBackend struct {
	endpoint  string
	transport http.RoundTripper
}

// NewSheetsBackend builds the backend. An empty endpoint means the public
// Sheets API; a nil transport means a traced http.DefaultTransport.
func NewSheetsBackend(endpoint string, transport http.RoundTripper) *SheetsBackend {
	if transport == nil {
		transport = otelhttp.NewTransport(http.DefaultTransport)
	}
	return &SheetsBackend{
		endpoint:  endpoint,
		transport: transport,
	}
}

func (b *SheetsBackend) service(ctx context.Context, cred Credential) (*sheets.Service, error) {
	httpClient := &http.Client{
		Transport: &oauth2.Transport{
			Source: oauth2.StaticTokenSource(&oauth2.Token{
				AccessToken: string(cred),
				TokenType:   "Bearer",
			}),
			Base: b.transport,
		},
	}

	opts := []option.ClientOption{option.WithHTTPClient(httpClient)}
	if b.endpoint != "" {
		opts = append(opts, option.WithEndpoint(b.endpoint))
	}

	srv, err := sheets.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("%w: new sheets service: %s", ErrTransport, err)
	}
	return srv, nil
}

func (b *SheetsBackend) AppendRow(ctx context.Context, cred Credential, storeID string, row []string) error {
	srv, err := b.service(ctx, cred)
	if err != nil {
		return err
	}

	valueRange := &sheets.ValueRange{
		Values: [][]any{toCells(row)},
	}
	_, err = srv.Spreadsheets.Values.
		Append(storeID, appendRange, valueRange).
		ValueInputOption(valueInputUserEntered).
		Context(ctx).
		Do()
	if err != nil {
		return classifySheetsError(err)
	}
	return nil
}

func (b *SheetsBackend) ReadRows(ctx context.Context, cred Credential, storeID string) ([][]string, error) {
	srv, err := b.service(ctx, cred)
	if err != nil {
		return nil, err
	}

	resp, err := srv.Spreadsheets.Values.
		Get(storeID, readRange).
		Context(ctx).
		Do()
	if err != nil {
		return nil, classifySheetsError(err)
	}

	// absent values field == empty sheet
	return fromCells(resp.Values), nil
}

func classifySheetsError(err error) error {
	var apiErr *googleapi.Error
	if errors.As(err, &apiErr) {
		return statusError(apiErr.Code, apiErr.Message)
	}
	return fmt.Errorf("%w: %s", ErrTransport, err)
}
