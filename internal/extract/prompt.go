package extract

import "fmt"

// requirementPrompt builds the fixed-format instruction prompt for
// requirement extraction over one chunk.
func requirementPrompt(chunkText string) string {
	return fmt.Sprintf(`Extract every distinct requirement statement from the proposal request text below.

A requirement is any capability, deliverable, constraint, or obligation the issuing organization expects from a vendor.

Categories: technical, functional, security, compliance, operational
Priorities: critical, high, medium, low

Return ONLY a JSON array, one object per requirement:
[
  {
    "description": "<the requirement, as a single self-contained sentence>",
    "category": "<one of the categories above>",
    "priority": "<one of the priorities above>",
    "confidence": <0.0-1.0, how certain you are this is a real requirement>,
    "page": <source page number if stated in the text, otherwise omit>
  }
]

Return [] if the text contains no requirements.

Text:
%s`, chunkText)
}

// riskPrompt builds the fixed-format instruction prompt for risk-clause
// extraction over one chunk.
func riskPrompt(chunkText string) string {
	return fmt.Sprintf(`Extract every contractual risk clause from the proposal request text below.

A risk clause is language that shifts liability, imposes penalties, sets aggressive deadlines, or creates compliance exposure for the responding vendor.

Categories: legal, financial, timeline, technical, compliance
Severities: critical, high, medium, low

Return ONLY a JSON array, one object per risk:
[
  {
    "clause": "<the risky language, quoted or closely paraphrased>",
    "category": "<one of the categories above>",
    "severity": "<one of the severities above>",
    "confidence": <0.0-1.0, how certain you are this is a real risk>,
    "recommendation": "<one sentence of suggested alternative language or mitigation>",
    "page": <source page number if stated in the text, otherwise omit>
  }
]

Return [] if the text contains no risk clauses.

Text:
%s`, chunkText)
}
