// internal/service/confirmation_service.go
package service

import (
    "context"
    "fmt"
    "log"
    "strings"

    "github.com/openai/openai-go"

    "github.com/unclebandit/leadcapture-backend/internal/ai"
    "github.com/unclebandit/leadcapture-backend/internal/email"
    "github.com/unclebandit/leadcapture-backend/internal/model"
)

// FallbackBody is the static confirmation copy used whenever personalized
// content is unavailable. It must never depend on the AI service.
const FallbackBody = `Hi {name},

Thanks for reaching out! We received your details and one of our team will be in touch shortly to talk about how we help companies in {industry}.

Talk soon,
The Team`

const promptTemplate = `Write a short, friendly confirmation email body for {name}, who works in the {industry} industry and just requested a consultation through our website. Two short paragraphs. Do not include a subject line or any placeholders.`

// ConfirmationService generates and sends the confirmation email for a
// lead. It never sends more than one email per invocation, and AI
// failures never propagate to the caller.
type ConfirmationService struct {
    Completions ai.CompletionClient
    Sender      email.Sender
    Subject     string
}

// SendConfirmation builds the email body (personalized when the AI call
// yields usable content, fallback otherwise) and dispatches exactly one
// email to the lead's address. Only a delivery failure is returned.
func (s *ConfirmationService) SendConfirmation(ctx context.Context, lead *model.Lead) error {
    data := map[string]string{
        "name":     lead.Name,
        "industry": lead.Industry,
    }

    body := s.personalizedBody(ctx, data)
    if body == "" {
        body = RenderTemplate(FallbackBody, data)
    }

    html := fmt.Sprintf("<html><body><p>%s</p></body></html>", nl2br(body))

    if err := s.Sender.SendEmail(ctx, lead.Email, s.Subject, html); err != nil {
        return err
    }

    log.Println("✅ Confirmation email sent to:", lead.Email)
    return nil
}

// personalizedBody asks the completion API for copy. Any failure or
// unusable response yields "" so the caller substitutes the fallback.
func (s *ConfirmationService) personalizedBody(ctx context.Context, data map[string]string) string {
    prompt := RenderTemplate(promptTemplate, data)

    resp, err := s.Completions.CreateCompletion(ctx, prompt)
    if err != nil {
        log.Println("⚠️ completion request failed, using fallback copy:", err)
        return ""
    }
    return firstChoiceContent(resp)
}

// firstChoiceContent extracts the message content of the first completion
// choice. Choices past index 0 are never consulted. A nil response, empty
// choice list, or blank content all yield "".
func firstChoiceContent(resp *openai.ChatCompletion) string {
    if resp == nil || len(resp.Choices) == 0 {
        return ""
    }
    return strings.TrimSpace(resp.Choices[0].Message.Content)
}

// nl2br converts newlines to <br> tags for HTML embedding. Safe to call
// on "", which is what an absent body collapses to upstream.
func nl2br(s string) string {
    s = strings.ReplaceAll(s, "\r\n", "\n")
    return strings.ReplaceAll(s, "\n", "<br>")
}
