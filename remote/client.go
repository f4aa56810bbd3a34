package remote

import (
	"net/http"

	"github.com/duet-cli/duet/constant"
	"github.com/duet-cli/duet/log"
	"github.com/duet-cli/duet/network"
	"github.com/samber/mo"
)

// statusResource is the path of the VLC-style status document, relative to a participant's base URL.
const statusResource = "/requests/status.json"

// Console is the substitutable transport through which the controller reaches both participants.
// Send is fire-and-forget: a failed delivery is reported, never retried.
// Query yields mo.None when the participant is unreachable or its answer undecodable.
type Console interface {
	Send(p Participant, cmd Command) Outcome
	Query(p Participant) mo.Option[Status]
}

// Client implements Console over the players' HTTP remote-control interface.
type Client struct {
	http     *http.Client
	password string
}

// NewClient returns a Client authenticating with the shared basic-auth secret.
func NewClient(password string) *Client {
	return &Client{
		http:     network.Client,
		password: password,
	}
}

// Send issues one best-effort command to the participant. Any transport or
// protocol-level failure degrades to TransportFailed; the caller observes the
// effect, if any, only through a later status query.
func (c *Client) Send(p Participant, cmd Command) Outcome {
	req, err := c.request(p, cmd.Values().Encode())
	if err != nil {
		log.Warnf("%s: build %s request: %v", p.Role, cmd, err)
		return TransportFailed
	}

	resp, err := c.http.Do(req)
	if err != nil {
		log.Warnf("%s: %s: %v", p.Role, cmd, err)
		return TransportFailed
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		log.Warnf("%s: %s: status %d", p.Role, cmd, resp.StatusCode)
		return TransportFailed
	}

	return Sent
}

// Query fetches and parses the participant's status document.
func (c *Client) Query(p Participant) mo.Option[Status] {
	req, err := c.request(p, "")
	if err != nil {
		log.Warnf("%s: build status request: %v", p.Role, err)
		return mo.None[Status]()
	}

	resp, err := c.http.Do(req)
	if err != nil {
		log.Warnf("%s: query status: %v", p.Role, err)
		return mo.None[Status]()
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		log.Warnf("%s: query status: status %d", p.Role, resp.StatusCode)
		return mo.None[Status]()
	}

	status, err := parseStatus(resp.Body)
	if err != nil {
		log.Warnf("%s: %v", p.Role, err)
		return mo.None[Status]()
	}

	return mo.Some(status)
}

func (c *Client) request(p Participant, rawQuery string) (*http.Request, error) {
	req, err := http.NewRequest(http.MethodGet, p.BaseURL+statusResource, nil)
	if err != nil {
		return nil, err
	}
	if rawQuery != "" {
		req.URL.RawQuery = rawQuery
	}

	// The remote interface expects an empty username alongside the shared secret.
	req.SetBasicAuth("", c.password)
	req.Header.Set("User-Agent", constant.UserAgent)

	return req, nil
}
