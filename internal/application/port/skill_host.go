package port

//go:generate mockgen -source=skill_host.go -destination=mocks/mock_skill_host.go -package=mocks

import "context"

// SpeakOptions carries the optional arguments of a spoken response.
type SpeakOptions struct {
	// ExpectResponse asks the host to listen for a reply after speaking.
	ExpectResponse bool
	// Wait blocks until the utterance has been spoken.
	Wait bool
	// Private marks the response as containing user-private data.
	Private bool
	// Speaker overrides the user's language and voice preferences.
	Speaker map[string]string
	// Meta describes what built the sentence.
	Meta map[string]any
}

// SkillHost is the runtime a skill speaks through. The configuration core
// never calls it; it exists for skills running on a host that lacks the
// device-specific extensions.
type SkillHost interface {
	Speak(ctx context.Context, utterance string, opts SpeakOptions) error
	SpeakDialog(ctx context.Context, key string, data map[string]string, opts SpeakOptions) error
}
