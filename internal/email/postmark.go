package email

import (
    "context"
    "errors"
    "fmt"

    "github.com/mrz1836/postmark"
)

var (
    ErrInvalidConfig = errors.New("invalid email config")
    ErrFailedToSend  = errors.New("failed to send email")
)

// Sender dispatches one transactional email. Implementations must not
// retry on their own.
type Sender interface {
    SendEmail(ctx context.Context, to, subject, htmlBody string) error
}

// PostmarkSender sends email through Postmark's transactional API.
type PostmarkSender struct {
    client  *postmark.Client
    from    string
    replyTo string
}

// NewPostmarkSender validates config up front so a misconfigured service
// fails at startup instead of at the first send.
func NewPostmarkSender(serverToken, accountToken, from, replyTo string) (*PostmarkSender, error) {
    if serverToken == "" {
        return nil, fmt.Errorf("%w: server token is required", ErrInvalidConfig)
    }
    if accountToken == "" {
        return nil, fmt.Errorf("%w: account token is required", ErrInvalidConfig)
    }
    if from == "" {
        return nil, fmt.Errorf("%w: sender email is required", ErrInvalidConfig)
    }
    if replyTo == "" {
        replyTo = from
    }

    return &PostmarkSender{
        client:  postmark.NewClient(serverToken, accountToken),
        from:    from,
        replyTo: replyTo,
    }, nil
}

// SendEmail submits one email. A non-zero Postmark error code is a
// delivery failure even when the HTTP call itself succeeded.
func (s *PostmarkSender) SendEmail(ctx context.Context, to, subject, htmlBody string) error {
    resp, err := s.client.SendEmail(ctx, postmark.Email{
        From:       s.from,
        ReplyTo:    s.replyTo,
        To:         to,
        Subject:    subject,
        HTMLBody:   htmlBody,
        TrackOpens: true,
        TrackLinks: "HtmlOnly",
    })
    if err != nil {
        return errors.Join(ErrFailedToSend, err)
    }
    if resp.ErrorCode > 0 {
        return errors.Join(ErrFailedToSend, fmt.Errorf("postmark error: %d - %s", resp.ErrorCode, resp.Message))
    }
    return nil
}

var _ Sender = (*PostmarkSender)(nil)
