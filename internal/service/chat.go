package service

//go:generate go run go.uber.org/mock/mockgen@latest -destination=mocks/mocks.go -package=mocks -mock_names=ChatService=MockChatService helpdesk-ai/internal/service Retriever,Classifier,Generator,ChatService

import (
	"context"
	"fmt"
	"math"
	"strings"

	"helpdesk-ai/internal/contextutil"
	"helpdesk-ai/internal/llm"
	"helpdesk-ai/internal/retrieval"
	"helpdesk-ai/internal/taxonomy"
)

// GreetingReply is returned verbatim for greeting inputs.
const GreetingReply = "Hello! How can I assist you with IT Helpdesk related queries?"

// RefusalReply is returned verbatim when retrieval finds nothing relevant.
const RefusalReply = "I can only help with IT Helpdesk related questions."

// greetings is the fixed set of inputs that short-circuit to GreetingReply.
// Matching happens after trimming whitespace and lowercasing.
var greetings = map[string]struct{}{
	"hi":           {},
	"hello":        {},
	"hey":          {},
	"good morning": {},
	"good evening": {},
}

// promptTemplate is the strict instruction template. The context slot gets
// the surviving chunks joined with blank lines; the question slot gets the
// user's original message.
const promptTemplate = `You are an internal IT helpdesk assistant. Answer ONLY using the provided context.
If the question is unrelated, respond: "I can only help with IT helpdesk related questions."
For greetings, respond politely. Do not guess or fabricate information.
Context: %s
User Question: %s
Answer: `

// systemPrompt fixes the assistant persona for every generation call.
const systemPrompt = "You are an internal chatbot for the company. Please answer questions in natural language."

// Retriever performs threshold-filtered retrieval for a query.
// Defined from the orchestrator's perspective (consumer-first).
type Retriever interface {
	Retrieve(ctx context.Context, query string) (retrieval.Result, error)
}

// Classifier maps retrieved chunk texts to categories and follow-ups.
type Classifier interface {
	Classify(chunks []string) taxonomy.Classification
}

// Generator produces an answer from chat messages.
type Generator interface {
	ChatWithMessages(ctx context.Context, messages []llm.Message, params llm.ChatParams) (string, error)
}

// ChatRequest represents a chat request in the domain layer.
type ChatRequest struct {
	Message string `validate:"required"`
}

// ChatResponse represents a chat response in the domain layer.
// Confidence is empty for the greeting and refusal short-circuits; when set,
// FollowUps, ConfidenceScore and Categories are populated too.
type ChatResponse struct {
	Reply           string
	FollowUps       []string
	Confidence      retrieval.ConfidenceLevel
	ConfidenceScore float64
	Categories      []string
}

// ChatService answers helpdesk chat requests.
type ChatService interface {
	// ProcessChat processes a chat request and returns a response.
	ProcessChat(ctx context.Context, req ChatRequest) (ChatResponse, error)
}

// chatService implements ChatService. It sequences greeting short-circuit,
// retrieval, refusal short-circuit, classification, confidence mapping,
// prompt construction and generation. All per-request state lives on the
// stack, so a single instance serves concurrent requests.
type chatService struct {
	retriever   Retriever
	classifier  Classifier
	generator   Generator
	confidence  retrieval.ConfidenceMapper
	temperature float32
}

// NewChatService creates a new ChatService.
func NewChatService(retriever Retriever, classifier Classifier, generator Generator, confidence retrieval.ConfidenceMapper, temperature float32) ChatService {
	return &chatService{
		retriever:   retriever,
		classifier:  classifier,
		generator:   generator,
		confidence:  confidence,
		temperature: temperature,
	}
}

// ProcessChat processes a chat request.
func (s *chatService) ProcessChat(ctx context.Context, req ChatRequest) (ChatResponse, error) {
	logger := contextutil.LoggerFromContext(ctx)

	if req.Message == "" {
		logger.WarnContext(ctx, "empty message in chat request")
		return ChatResponse{}, &ValidationError{
			Field:   "message",
			Message: "cannot be empty",
		}
	}

	// Greeting short-circuit: no retrieval, no LLM call.
	normalized := strings.ToLower(strings.TrimSpace(req.Message))
	if _, ok := greetings[normalized]; ok {
		logger.InfoContext(ctx, "greeting short-circuit", "input", normalized)
		return ChatResponse{Reply: GreetingReply}, nil
	}

	result, err := s.retriever.Retrieve(ctx, req.Message)
	if err != nil {
		logger.ErrorContext(ctx, "retrieval failed", "error", err)
		return ChatResponse{}, fmt.Errorf("%w: %s", ErrRetrieval, err)
	}

	// Nothing relevant: fixed refusal, no LLM call. A search whose hits all
	// fell at or below the threshold lands here too.
	if result.Empty() {
		logger.InfoContext(ctx, "no relevant content, refusing")
		return ChatResponse{Reply: RefusalReply}, nil
	}

	chunks := result.Texts()
	classification := s.classifier.Classify(chunks)
	level := s.confidence.FromMean(result.MeanScore)

	prompt := fmt.Sprintf(promptTemplate, strings.Join(chunks, "\n\n"), req.Message)

	messages := []llm.Message{
		{Role: "system", Content: systemPrompt},
		{Role: "user", Content: "User Query: " + prompt},
	}

	logger.InfoContext(ctx, "sending request to LLM",
		"chunks", len(chunks),
		"mean_score", result.MeanScore,
		"confidence", level,
		"categories", classification.Labels,
	)

	answer, err := s.generator.ChatWithMessages(ctx, messages, llm.ChatParams{
		Temperature: s.temperature,
	})
	if err != nil {
		logger.ErrorContext(ctx, "generation failed", "error", err)
		return ChatResponse{}, fmt.Errorf("%w: %s", ErrGeneration, err)
	}

	logger.InfoContext(ctx, "chat request processed", "answer_length", len(answer))

	return ChatResponse{
		Reply:           answer,
		FollowUps:       classification.FollowUps,
		Confidence:      level,
		ConfidenceScore: roundScore(result.MeanScore),
		Categories:      classification.Labels,
	}, nil
}

// roundScore rounds a mean score to three decimal places for the wire.
func roundScore(score float64) float64 {
	return math.Round(score*1000) / 1000
}
