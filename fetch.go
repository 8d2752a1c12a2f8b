package foamcut

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
)

// DefaultAirfoilURL serves Selig files by airfoil name.
const DefaultAirfoilURL = "http://airfoiltools.com/airfoil/seligdatfile"

// Fetcher downloads airfoils from an online database.
type Fetcher struct {
	// Client is used for requests. If nil, http.DefaultClient is used.
	Client *http.Client
	// BaseURL is queried with ?airfoil=<name>. If empty, DefaultAirfoilURL
	// is used.
	BaseURL string
	// Strict is passed on to the parser.
	Strict bool
}

// Fetch downloads and parses the airfoil called name. Every failure, from
// the transport to a response without any points, is reported as an
// [AirfoilNotFoundError].
func (f Fetcher) Fetch(ctx context.Context, name string) (AirfoilPoints, error) {
	notFound := func(err error) (AirfoilPoints, error) {
		return AirfoilPoints{}, &AirfoilNotFoundError{Name: name, Err: err}
	}

	base := f.BaseURL
	if base == "" {
		base = DefaultAirfoilURL
	}
	u, err := url.Parse(base)
	if err != nil {
		return notFound(err)
	}
	q := u.Query()
	q.Set("airfoil", name)
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return notFound(err)
	}
	client := f.Client
	if client == nil {
		client = http.DefaultClient
	}
	resp, err := client.Do(req)
	if err != nil {
		return notFound(err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return notFound(fmt.Errorf("unexpected status %s", resp.Status))
	}

	af, err := ParseAirfoil(resp.Body, ParseOptions{Path: u.String(), Strict: f.Strict})
	if err != nil {
		return notFound(err)
	}
	if af.Len() == 0 {
		return notFound(errors.New("response holds no points"))
	}
	return af, nil
}
