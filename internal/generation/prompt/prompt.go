// Package prompt builds the fixed instruction strings sent to the
// generation service. The three templates are the output contract the
// deliverable viewer renders against, so their text is part of the API and
// must not drift.
package prompt

import (
	"strings"

	"github.com/uxrlab/uxr-backend/internal/apperr"
	"github.com/uxrlab/uxr-backend/internal/projects/domain"
)

// Compose fills the template for the given deliverable type with the
// research text and, when non-empty after trimming, the user context block.
// Pure and deterministic: identical inputs yield byte-identical prompts.
func Compose(t domain.DeliverableType, research, userContext string) (string, error) {
	switch t {
	case domain.TypePersona:
		return render("user persona", personaBody, research, userContext), nil
	case domain.TypeJourney:
		return render("user journey map", journeyBody, research, userContext), nil
	case domain.TypeBlueprint:
		return render("service blueprint", blueprintBody, research, userContext), nil
	}
	return "", apperr.Newf(apperr.CodeUnknownDeliverableType, "Unknown deliverable type: %s", string(t))
}

func render(subject, body, research, userContext string) string {
	var sb strings.Builder
	sb.WriteString("You are a UX research expert. Based on the research data provided, create a comprehensive ")
	sb.WriteString(subject)
	sb.WriteString(".\n\nRESEARCH DATA:\n")
	sb.WriteString(research)
	sb.WriteString("\n\n")
	sb.WriteString(contextBlock(userContext))
	sb.WriteString("\n\n")
	sb.WriteString(body)
	return sb.String()
}

// contextBlock is omitted entirely when the user context is blank; no empty
// header is ever emitted.
func contextBlock(userContext string) string {
	if strings.TrimSpace(userContext) == "" {
		return ""
	}
	return "ADDITIONAL CONTEXT:\n" + userContext + "\n"
}
