package helpscout

import (
	"fmt"

	"helpscout-metrics/internal/shared/svcerrors"
)

// Client errors. All page-fetch failures are transport errors; the caller
// aborts the whole mailbox fetch on the first one.
const (
	codeTransportRequestFailed    = "HS_2000"
	codeTransportUnexpectedStatus = "HS_2001"
	codeTransportMalformedBody    = "HS_2002"
)

// errRequestFailed returns an error when the HTTP request itself fails.
func errRequestFailed(mailboxID int64, page int, cause error) *svcerrors.ServiceError {
	msg := fmt.Sprintf("conversations request failed (mailbox %d, page %d)", mailboxID, page)
	return svcerrors.NewTransportError(codeTransportRequestFailed, msg, cause)
}

// errUnexpectedStatus returns an error for a non-200 API response.
func errUnexpectedStatus(mailboxID int64, page int, status int) *svcerrors.ServiceError {
	msg := fmt.Sprintf("unexpected status %d (mailbox %d, page %d)", status, mailboxID, page)
	return svcerrors.NewTransportError(codeTransportUnexpectedStatus, msg, fmt.Errorf("http status %d", status))
}

// errMalformedResponse returns an error when the response body cannot be decoded.
func errMalformedResponse(mailboxID int64, page int, cause error) *svcerrors.ServiceError {
	msg := fmt.Sprintf("malformed conversations response (mailbox %d, page %d)", mailboxID, page)
	return svcerrors.NewTransportError(codeTransportMalformedBody, msg, cause)
}
