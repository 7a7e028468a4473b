package clickup

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"golang.org/x/time/rate"

	"clickup-context/pkg/log"
	"clickup-context/pkg/secrets"
)

// Config holds the client settings.
type Config struct {
	// BaseURL overrides the API endpoint, used by tests. Defaults to
	// DefaultBaseURL.
	BaseURL string

	// RequestsPerMinute enables a client-side throttle when > 0. ClickUp
	// allows 100 requests/minute per token; the limiter waits, it never
	// retries.
	RequestsPerMinute int

	// Timeout is the per-request HTTP timeout. Defaults to DefaultTimeout.
	Timeout time.Duration
}

// Client is the ClickUp HTTP client. The access token is re-read from the
// secret store on every call so a token stored (or cleared) by another
// component is picked up immediately.
type Client struct {
	baseURL    string
	httpClient *http.Client
	store      secrets.Store
	limiter    *rate.Limiter
	l          log.Logger
}

var _ IClickUp = (*Client)(nil)

// NewClient creates a new ClickUp client backed by the given secret store.
func NewClient(store secrets.Store, l log.Logger, cfg Config) *Client {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = DefaultTimeout
	}

	var limiter *rate.Limiter
	if cfg.RequestsPerMinute > 0 {
		limiter = rate.NewLimiter(rate.Limit(float64(cfg.RequestsPerMinute)/60.0), cfg.RequestsPerMinute/10+1)
	}

	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: timeout},
		store:      store,
		limiter:    limiter,
		l:          l,
	}
}

// requireToken reads the stored token, failing without network I/O when
// none is stored.
func (c *Client) requireToken() (string, error) {
	token, ok, err := c.store.Get(SecretKey)
	if err != nil {
		return "", &AuthError{Message: err.Error()}
	}
	if !ok {
		return "", &AuthError{Message: "not authenticated with ClickUp, please sign in first"}
	}
	return token, nil
}

// get issues an authenticated GET and returns the raw response. The caller
// owns classification and must close the body.
func (c *Client) get(ctx context.Context, url string) (*http.Response, error) {
	token, err := c.requireToken()
	if err != nil {
		return nil, err
	}

	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return nil, &RequestError{Body: fmt.Sprintf("throttle wait aborted: %v", err)}
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, &RequestError{Body: fmt.Sprintf("failed to build request: %v", err)}
	}
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &RequestError{Body: err.Error()}
	}
	return resp, nil
}

// checkResponse applies the shared classification policy: 401 clears the
// stored token, 429 surfaces the reset timestamp, any other non-2xx becomes
// a RequestError. A low remaining-quota header only logs a warning.
func (c *Client) checkResponse(ctx context.Context, resp *http.Response) error {
	if remaining, err := strconv.Atoi(resp.Header.Get(headerRateLimitRemaining)); err == nil {
		if remaining < rateLimitWarnThreshold {
			c.l.Warnf(ctx, "clickup rate limit low: %d requests remaining", remaining)
		}
	}

	if resp.StatusCode == http.StatusUnauthorized {
		c.l.Warn(ctx, "clickup API returned 401, clearing stored token")
		_ = c.store.Delete(SecretKey)
		return &AuthError{Message: "clickup token is invalid or expired, please sign in again"}
	}

	if resp.StatusCode == http.StatusTooManyRequests {
		return &RateLimitedError{ResetAt: parseResetHeader(resp)}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(resp.Body)
		return &RequestError{Status: resp.StatusCode, Body: string(body)}
	}

	return nil
}

func parseResetHeader(resp *http.Response) *int64 {
	v, err := strconv.ParseInt(resp.Header.Get(headerRateLimitReset), 10, 64)
	if err != nil {
		return nil
	}
	return &v
}

// getJSON issues a classified GET and decodes the body into out.
func (c *Client) getJSON(ctx context.Context, url string, out any) error {
	resp, err := c.get(ctx, url)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if err := c.checkResponse(ctx, resp); err != nil {
		return err
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return &RequestError{Body: fmt.Sprintf("failed to parse response: %v", err)}
	}
	return nil
}

// GetAuthorizedUser fetches the authenticated user's profile.
func (c *Client) GetAuthorizedUser(ctx context.Context) (*AuthenticatedUser, error) {
	var data struct {
		User AuthenticatedUser `json:"user"`
	}
	if err := c.getJSON(ctx, c.baseURL+"/user", &data); err != nil {
		return nil, err
	}
	return &data.User, nil
}

// ListWorkspaces lists workspaces ("teams" in the API) the user can access.
func (c *Client) ListWorkspaces(ctx context.Context) ([]Workspace, error) {
	var data struct {
		Teams []Workspace `json:"teams"`
	}
	if err := c.getJSON(ctx, c.baseURL+"/team", &data); err != nil {
		return nil, err
	}
	return data.Teams, nil
}

// ListSpaces lists spaces in a workspace.
func (c *Client) ListSpaces(ctx context.Context, workspaceID string) ([]Space, error) {
	var data struct {
		Spaces []Space `json:"spaces"`
	}
	if err := c.getJSON(ctx, fmt.Sprintf("%s/team/%s/space", c.baseURL, workspaceID), &data); err != nil {
		return nil, err
	}
	return data.Spaces, nil
}

// ListFolders lists folders in a space, each folder carrying its lists.
func (c *Client) ListFolders(ctx context.Context, spaceID string) ([]Folder, error) {
	var data struct {
		Folders []Folder `json:"folders"`
	}
	if err := c.getJSON(ctx, fmt.Sprintf("%s/space/%s/folder", c.baseURL, spaceID), &data); err != nil {
		return nil, err
	}
	return data.Folders, nil
}

// ListFolderlessLists lists the lists that sit directly under a space.
func (c *Client) ListFolderlessLists(ctx context.Context, spaceID string) ([]List, error) {
	var data struct {
		Lists []List `json:"lists"`
	}
	if err := c.getJSON(ctx, fmt.Sprintf("%s/space/%s/list", c.baseURL, spaceID), &data); err != nil {
		return nil, err
	}
	return data.Lists, nil
}

// ListTasks lists tasks across a workspace via the filtered team tasks
// endpoint. Pagination is 0-indexed, ordered by most recently updated.
func (c *Client) ListTasks(ctx context.Context, workspaceID string, opts ListTasksOptions) (*TaskListResult, error) {
	params := url.Values{}
	params.Set("page", strconv.Itoa(opts.Page))
	if opts.IncludeClosed {
		params.Set("include_closed", "true")
	}
	for _, spaceID := range opts.SpaceIDs {
		params.Add("space_ids[]", spaceID)
	}
	for _, id := range opts.Assignees {
		params.Add("assignees[]", strconv.FormatInt(id, 10))
	}
	if opts.Subtasks {
		params.Set("subtasks", "true")
	}
	params.Set("order_by", "updated")
	params.Set("reverse", "true")

	var data TaskListResult
	u := fmt.Sprintf("%s/team/%s/task?%s", c.baseURL, workspaceID, params.Encode())
	if err := c.getJSON(ctx, u, &data); err != nil {
		return nil, err
	}
	return &data, nil
}

// ListTasksInList lists tasks in a specific list.
func (c *Client) ListTasksInList(ctx context.Context, listID string, opts ListTasksInListOptions) (*TaskListResult, error) {
	params := url.Values{}
	params.Set("page", strconv.Itoa(opts.Page))
	if opts.IncludeClosed {
		params.Set("include_closed", "true")
	}
	if opts.Subtasks {
		params.Set("subtasks", "true")
	}
	params.Set("order_by", "updated")
	params.Set("reverse", "true")

	var data TaskListResult
	u := fmt.Sprintf("%s/list/%s/task?%s", c.baseURL, listID, params.Encode())
	if err := c.getJSON(ctx, u, &data); err != nil {
		return nil, err
	}
	return &data, nil
}

// SearchTaskByID looks a task up by internal ID, then by custom ID scoped
// to the workspace. 401 and 429 short-circuit on either attempt; any other
// failure on an attempt means "inconclusive, try the next strategy". Both
// inconclusive resolves to found=false without error.
func (c *Client) SearchTaskByID(ctx context.Context, query, workspaceID string) (*Task, bool, error) {
	task, err := c.tryLookup(ctx, fmt.Sprintf("%s/task/%s", c.baseURL, url.PathEscape(query)))
	if err != nil {
		return nil, false, err
	}
	if task != nil {
		return task, true, nil
	}
	c.l.Debugf(ctx, "internal ID lookup failed for %q, trying custom ID", query)

	task, err = c.tryLookup(ctx, fmt.Sprintf("%s/task/%s?custom_task_ids=true&team_id=%s",
		c.baseURL, url.PathEscape(query), url.QueryEscape(workspaceID)))
	if err != nil {
		return nil, false, err
	}
	if task != nil {
		return task, true, nil
	}
	c.l.Debugf(ctx, "custom ID lookup also failed for %q", query)
	return nil, false, nil
}

// tryLookup performs one search attempt. A nil task with nil error means
// the attempt was inconclusive.
func (c *Client) tryLookup(ctx context.Context, u string) (*Task, error) {
	resp, err := c.get(ctx, u)
	if err != nil {
		if IsAuthError(err) {
			return nil, err
		}
		// Transport failures are inconclusive for this endpoint only.
		return nil, nil
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusUnauthorized:
		c.l.Warn(ctx, "clickup API returned 401, clearing stored token")
		_ = c.store.Delete(SecretKey)
		return nil, &AuthError{Message: "clickup token is invalid or expired, please sign in again"}
	case resp.StatusCode == http.StatusTooManyRequests:
		return nil, &RateLimitedError{ResetAt: parseResetHeader(resp)}
	case resp.StatusCode >= 200 && resp.StatusCode <= 299:
		var task Task
		if err := json.NewDecoder(resp.Body).Decode(&task); err != nil {
			c.l.Debugf(ctx, "failed to parse task from lookup: %v", err)
			return nil, nil
		}
		return &task, nil
	default:
		return nil, nil
	}
}

// GetTask fetches a single task's detail. The markdown-flavored description
// replaces the plain one when present and is then discarded so downstream
// code has a single source of truth.
func (c *Client) GetTask(ctx context.Context, taskID string) (*TaskDetail, error) {
	var data taskDetailResponse
	u := fmt.Sprintf("%s/task/%s?include_markdown_description=true", c.baseURL, url.PathEscape(taskID))
	if err := c.getJSON(ctx, u, &data); err != nil {
		return nil, err
	}

	task := data.TaskDetail
	if data.MarkdownDescription != "" {
		task.Description = data.MarkdownDescription
	}
	return &task, nil
}

// GetTaskComments fetches the first page of comments for a task.
func (c *Client) GetTaskComments(ctx context.Context, taskID string) ([]Comment, error) {
	var data struct {
		Comments []Comment `json:"comments"`
	}
	u := fmt.Sprintf("%s/task/%s/comment", c.baseURL, url.PathEscape(taskID))
	if err := c.getJSON(ctx, u, &data); err != nil {
		return nil, err
	}
	return data.Comments, nil
}
