package content

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/abhisek/minatbakat/internal/profile"
	"github.com/abhisek/minatbakat/internal/quiz"
)

// Payload names, used in errors and metrics labels.
const (
	WhatQuestions = "questions"
	WhatProfiles  = "profiles"
)

// User-facing load failure messages. No retry is offered.
const (
	QuestionsFailedMessage = "Gagal memuat pertanyaan. Silakan coba lagi nanti."
	ProfilesFailedMessage  = "Waduh, gagal memuat data rekomendasi nih. Coba lagi nanti ya."
)

// Source supplies the question bank and the profile table. Each call is a
// single full load; there is no partial or streamed result.
type Source interface {
	Questions(ctx context.Context) (*quiz.Bank, error)
	Profiles(ctx context.Context) (profile.Table, error)
}

// LoadError marks a failed question or profile load.
type LoadError struct {
	What string
	Err  error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("load %s: %v", e.What, e.Err)
}

func (e *LoadError) Unwrap() error { return e.Err }

// UserMessage returns the static text shown to the participant.
func (e *LoadError) UserMessage() string {
	if e.What == WhatProfiles {
		return ProfilesFailedMessage
	}
	return QuestionsFailedMessage
}

// Open picks a Source for location: "" or "embedded" for the bundled
// content, an http(s) URL for a remote base path, anything else is a
// local directory.
func Open(location string, client *http.Client) Source {
	switch {
	case location == "" || location == "embedded":
		return Embedded()
	case strings.HasPrefix(location, "http://"), strings.HasPrefix(location, "https://"):
		return NewHTTPSource(location, client)
	default:
		return &FileSource{Dir: location}
	}
}
