// Package collectors assembles the combined conversation set for one
// reporting run: every configured mailbox, every page, fetched once.
package collectors

import (
	"context"
	"strconv"

	"golang.org/x/sync/errgroup"

	"helpscout-metrics/internal/helpscout"
	"helpscout-metrics/internal/models"
	"helpscout-metrics/internal/shared/loggers"
	"helpscout-metrics/internal/shared/metrics"
	"helpscout-metrics/internal/shared/svcerrors"
)

// pageConcurrency bounds in-flight page requests within one mailbox.
// Mailbox fan-out itself is unbounded; the mailbox list is configuration,
// not user input, and is small.
const pageConcurrency = 5

//go:generate mockgen -source=collector.go -destination=./mocks/collector_mock.go -package=mocks
type Collector interface {
	// Collect fetches every conversation from every configured mailbox and
	// concatenates them into one flat collection. Duplicates across
	// mailboxes are preserved. The first fetch error aborts the whole
	// collect: in-flight siblings are cancelled and no partial result is
	// returned.
	Collect(ctx context.Context) ([]models.Conversation, error)
}

type collector struct {
	client    helpscout.Client
	mailboxes []int64
}

func NewCollector(client helpscout.Client, mailboxes []int64) Collector {
	return &collector{client: client, mailboxes: mailboxes}
}

func (c *collector) Collect(ctx context.Context) ([]models.Conversation, error) {
	logger := loggers.Ctx(ctx)
	logger.Debug().
		Ints64(loggers.FieldMailboxes, c.mailboxes).
		Msg("querying helpscout mailboxes")

	// One slot per mailbox: each goroutine writes only its own slot, so the
	// only shared state is the slice header itself.
	perMailbox := make([][]models.Conversation, len(c.mailboxes))

	group, groupCtx := errgroup.WithContext(ctx)
	for i, mailboxID := range c.mailboxes {
		i, mailboxID := i, mailboxID
		group.Go(func() error {
			convos, err := c.fetchMailbox(groupCtx, mailboxID)
			if err != nil {
				return err
			}
			perMailbox[i] = convos
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		return nil, err
	}

	var combined []models.Conversation
	for _, convos := range perMailbox {
		combined = append(combined, convos...)
	}

	logger.Debug().
		Int("conversations", len(combined)).
		Msg("finished querying helpscout mailboxes")
	return combined, nil
}

// fetchMailbox walks the pagination of one mailbox. Page 1 is fetched
// first; it reports the total page count, and the remaining pages are
// fetched with bounded concurrency into disjoint slots. The result keeps
// page order, with page 1's items first.
func (c *collector) fetchMailbox(ctx context.Context, mailboxID int64) ([]models.Conversation, error) {
	first, err := c.listPage(ctx, mailboxID, 1)
	if err != nil {
		return nil, err
	}

	convos := append([]models.Conversation(nil), first.Items...)
	if first.Pages <= first.Page {
		return convos, nil
	}

	loggers.Ctx(ctx).Debug().
		Int64(loggers.FieldMailboxID, mailboxID).
		Int(loggers.FieldPages, first.Pages).
		Msg("fetching remaining conversation pages")

	rest := make([][]models.Conversation, first.Pages-first.Page)

	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(pageConcurrency)
	for page := first.Page + 1; page <= first.Pages; page++ {
		page := page
		slot := page - first.Page - 1
		group.Go(func() error {
			resp, err := c.listPage(groupCtx, mailboxID, page)
			if err != nil {
				return err
			}
			rest[slot] = resp.Items
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		return nil, err
	}

	for _, items := range rest {
		convos = append(convos, items...)
	}
	return convos, nil
}

func (c *collector) listPage(ctx context.Context, mailboxID int64, page int) (*models.ConversationPage, error) {
	resp, err := c.client.ListConversations(ctx, mailboxID, page)

	errorCode := metrics.ValueNoError
	if err != nil {
		errorCode = "SYS_9001"
		if svcErr, ok := svcerrors.AsServiceError(err); ok {
			errorCode = svcErr.Code
		}
	}
	metricPagesFetchedTotal.WithLabelValues(strconv.FormatInt(mailboxID, 10), errorCode).Inc()

	return resp, err
}
