package domain

// Sentinel responses. These are returned verbatim to users and never
// generated by the model.
const (
	// NoInformationMessage is returned when no document matched the query.
	NoInformationMessage = "I couldn't find any relevant information in the knowledge base for that question."

	// CouldNotGenerateMessage is returned when the model produced no text.
	CouldNotGenerateMessage = "Sorry, I could not generate a response."

	// GenericFailureMessage is shown by transports when answering failed.
	GenericFailureMessage = "Something went wrong while answering your question. Please try again later."
)

// AnswerSystemPrompt is the default system instruction for answer synthesis.
// %s is replaced with the answer language.
//
//nolint:lll // Prompt content is intentionally long and should not be wrapped.
const AnswerSystemPrompt = `You are an internal knowledge assistant. You answer questions using only the documents provided in the context.

Rules:
1. Always respond in %s.
2. Base your answer exclusively on the provided context. If the context does not contain enough information to answer, say that there is insufficient information. Never make up facts.
3. Keep the answer concise but complete.
4. Format the reply in Slack mrkdwn: *bold* for emphasis, "•" for bullet lists and ` + "`code`" + ` for identifiers.
5. End the reply with exactly one line citing every document you used, in this format:
Sources: <URL|Title>, <URL|Title>`
