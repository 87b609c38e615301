package domain

import "errors"

var (
	ErrNotFound           = errors.New("resource not found")
	ErrUnauthorized       = errors.New("unauthorized")
	ErrForbidden          = errors.New("forbidden")
	ErrUnsupportedFile    = errors.New("unsupported file type")
	ErrFileTooLarge       = errors.New("file exceeds maximum allowed size")
	ErrNoExtractableText  = errors.New("no extractable text in document")
	ErrParseFailure       = errors.New("could not find any standard sections")
	ErrBuildFailure       = errors.New("knowledge base build failed")
	ErrFinalizeFailure    = errors.New("collection finalize failed")
	ErrDecryptFailure     = errors.New("stored credential could not be decrypted")
	ErrCollectionNotFound = errors.New("collection not found")
	ErrChatbotNotFound    = errors.New("chatbot not found")
	ErrSessionNotFound    = errors.New("pipeline session not found")
	ErrUnknownProvider    = errors.New("unknown llm provider")
	ErrMissingAPIKey      = errors.New("missing provider api key")
	ErrInvalidTransition  = errors.New("invalid pipeline transition")
	ErrBuildInFlight      = errors.New("a build is already in flight for this session")
	ErrFileUnavailable    = errors.New("resume file is not available; re-upload required")
)
