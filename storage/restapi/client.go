package restapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	"github.com/aulahq/console/core"
	"github.com/aulahq/console/core/catalog"
)

// Client implements catalog.Gateway against the Aula backend's REST API.
// Every call attaches the session's bearer credential as-is; an empty
// credential is still sent, the backend decides.
type Client struct {
	base    string
	http    *http.Client
	session *core.Session
	log     core.Logger
}

var _ catalog.Gateway = (*Client)(nil)

func NewClient(conf *core.Config, session *core.Session, log core.Logger) *Client {
	return &Client{
		base:    conf.APIBaseURL,
		http:    &http.Client{Timeout: conf.RequestTimeout},
		session: session,
		log:     log,
	}
}

func (c *Client) ListTeachers(ctx context.Context) ([]catalog.Teacher, error) {
	var out []catalog.Teacher
	err := c.list(ctx, catalog.EntityTeachers, &out)
	return out, err
}

func (c *Client) ListCourses(ctx context.Context) ([]catalog.Course, error) {
	var out []catalog.Course
	err := c.list(ctx, catalog.EntityCourses, &out)
	return out, err
}

func (c *Client) ListGroups(ctx context.Context) ([]catalog.Group, error) {
	var out []catalog.Group
	err := c.list(ctx, catalog.EntityGroups, &out)
	return out, err
}

func (c *Client) ListTerms(ctx context.Context) ([]catalog.Term, error) {
	var out []catalog.Term
	err := c.list(ctx, catalog.EntityTerms, &out)
	return out, err
}

func (c *Client) ListAssignments(ctx context.Context) ([]catalog.Assignment, error) {
	var out []catalog.Assignment
	err := c.list(ctx, catalog.EntityAssignments, &out)
	return out, err
}

func (c *Client) Create(ctx context.Context, typ catalog.EntityType, payload interface{}) error {
	return c.send(ctx, http.MethodPost, c.url(typ), typ, payload)
}

func (c *Client) Update(ctx context.Context, typ catalog.EntityType, id string, payload interface{}) error {
	return c.send(ctx, http.MethodPut, c.url(typ)+"/"+id, typ, payload)
}

func (c *Client) Delete(ctx context.Context, typ catalog.EntityType, id string) error {
	return c.send(ctx, http.MethodDelete, c.url(typ)+"/"+id, typ, nil)
}

// list fetches a collection. A success response that does not deserialize to
// a sequence (the backend sometimes answers lists with a status object) is
// coerced to an empty sequence so downstream joins stay total.
func (c *Client) list(ctx context.Context, typ catalog.EntityType, out interface{}) error {
	op := "GET " + c.url(typ)

	req, err := c.newRequest(ctx, http.MethodGet, c.url(typ), nil)
	if err != nil {
		return core.NewTransportError(op, 0, err)
	}
	res, err := c.http.Do(req)
	if err != nil {
		return core.NewTransportError(op, 0, err)
	}
	defer res.Body.Close()

	if err := checkStatus(op, res.StatusCode); err != nil {
		return err
	}
	body, err := io.ReadAll(res.Body)
	if err != nil {
		return core.NewTransportError(op, 0, err)
	}
	if err := json.Unmarshal(body, out); err != nil {
		c.log.Debug("restapi: non-sequence list response coerced to empty", typ, err)
	}
	return nil
}

// send issues a mutation and treats the response as a status-only ack.
func (c *Client) send(ctx context.Context, method, url string, typ catalog.EntityType, payload interface{}) error {
	op := method + " " + url

	var body io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return errors.Wrapf(err, "%s: marshal %s payload", op, typ)
		}
		body = bytes.NewReader(data)
	}
	req, err := c.newRequest(ctx, method, url, body)
	if err != nil {
		return core.NewTransportError(op, 0, err)
	}
	res, err := c.http.Do(req)
	if err != nil {
		return core.NewTransportError(op, 0, err)
	}
	defer res.Body.Close()
	_, _ = io.Copy(io.Discard, res.Body)

	return checkStatus(op, res.StatusCode)
}

func (c *Client) url(typ catalog.EntityType) string {
	return c.base + "/api/" + typ.String()
}

func (c *Client) newRequest(ctx context.Context, method, url string, body io.Reader) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+c.session.Token)
	req.Header.Set("X-Request-ID", uuid.NewString())
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	return req, nil
}

func checkStatus(op string, status int) error {
	switch {
	case status >= 200 && status < 300:
		return nil
	case status == http.StatusUnauthorized || status == http.StatusForbidden:
		return core.NewAuthError(op, status)
	default:
		return core.NewTransportError(op, status, nil)
	}
}

type loginRequest struct {
	Username string `json:"usuario"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token   string       `json:"token"`
	Profile core.Profile `json:"usuario"`
}

// Login exchanges credentials for a session. The profile comes from the
// login response when present, otherwise from the token claims.
func (c *Client) Login(ctx context.Context, username, password string) (core.Session, error) {
	op := "POST " + c.base + "/api/login"

	data, err := json.Marshal(loginRequest{Username: username, Password: password})
	if err != nil {
		return core.Session{}, errors.Wrap(err, op)
	}
	req, err := c.newRequest(ctx, http.MethodPost, c.base+"/api/login", bytes.NewReader(data))
	if err != nil {
		return core.Session{}, core.NewTransportError(op, 0, err)
	}
	res, err := c.http.Do(req)
	if err != nil {
		return core.Session{}, core.NewTransportError(op, 0, err)
	}
	defer res.Body.Close()

	if err := checkStatus(op, res.StatusCode); err != nil {
		return core.Session{}, err
	}
	var lr loginResponse
	if err := json.NewDecoder(res.Body).Decode(&lr); err != nil {
		return core.Session{}, core.NewTransportError(op, 0, err)
	}
	if lr.Token == "" {
		return core.Session{}, core.NewTransportError(op, 0, fmt.Errorf("no token in response"))
	}

	sess := core.NewSession(lr.Token)
	if lr.Profile != (core.Profile{}) {
		sess.Profile = lr.Profile
	}
	return sess, nil
}
