package helpscout

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"helpscout-metrics/internal/models"
	"helpscout-metrics/internal/shared/loggers"
)

//go:generate mockgen -source=client.go -destination=./mocks/client_mock.go -package=mocks
type Client interface {
	// ListConversations fetches one page of the conversations listing for a
	// mailbox. Page numbers are 1-based; the response reports the total page
	// count so callers can walk the remaining pages.
	ListConversations(ctx context.Context, mailboxID int64, page int) (*models.ConversationPage, error)
}

type client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
}

// NewClient creates a Help Scout API client. The API key is sent as the
// basic-auth username with a fixed dummy password, per the v1 API contract.
func NewClient(baseURL string, apiKey string, timeout time.Duration) Client {
	return &client{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    strings.TrimRight(baseURL, "/"),
		apiKey:     apiKey,
	}
}

func (c *client) ListConversations(ctx context.Context, mailboxID int64, page int) (*models.ConversationPage, error) {
	url := fmt.Sprintf("%s/mailboxes/%d/conversations.json", c.baseURL, mailboxID)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, errRequestFailed(mailboxID, page, err)
	}
	req.SetBasicAuth(c.apiKey, "X")

	q := req.URL.Query()
	q.Set("page", strconv.Itoa(page))
	req.URL.RawQuery = q.Encode()

	loggers.Ctx(ctx).Debug().
		Int64(loggers.FieldMailboxID, mailboxID).
		Int(loggers.FieldPage, page).
		Msg("fetching conversations page")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errRequestFailed(mailboxID, page, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, errUnexpectedStatus(mailboxID, page, resp.StatusCode)
	}

	var convoPage models.ConversationPage
	if err := json.NewDecoder(resp.Body).Decode(&convoPage); err != nil {
		return nil, errMalformedResponse(mailboxID, page, err)
	}

	return &convoPage, nil
}
