package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/spf13/cast"

	"github.com/bnema/devconf/internal/application/port"
	"github.com/bnema/devconf/internal/domain/document"
	"github.com/bnema/devconf/internal/logging"
)

// localUser is reported for requests that carry no user identity.
const localUser = "local"

// Message is the request a skill is handling.
type Message struct {
	Type    string
	Data    map[string]any
	Context map[string]any
}

// SkillContext identifies the skill a CompatSkill acts for. It is passed
// explicitly instead of living in process-wide state.
type SkillContext struct {
	// SkillID names the skill; it is also its signal prefix.
	SkillID string
	// Host is the runtime the skill speaks through.
	Host port.SkillHost
}

// CompatSkill gives skills written for devices with the full request
// extensions a working default on hosts without them: request inspection
// answers permissively, preferences come from the user document, and speech
// is forwarded to the host.
type CompatSkill struct {
	skill   SkillContext
	user    *ConfigStore
	signals port.SignalRegistry
}

// NewCompatSkill creates an adapter for sc. user and signals may be nil;
// the operations that need them then fail.
func NewCompatSkill(sc SkillContext, user *ConfigStore, signals port.SignalRegistry) *CompatSkill {
	return &CompatSkill{skill: sc, user: user, signals: signals}
}

// Skill returns the context the adapter acts for.
func (c *CompatSkill) Skill() SkillContext {
	return c.skill
}

// MustRespond reports whether the skill has to answer msg.
func (*CompatSkill) MustRespond(Message) bool { return true }

// InRequest reports whether msg addresses the assistant directly.
func (*CompatSkill) InRequest(Message) bool { return true }

// FromMobile reports whether msg came from the mobile client.
func (*CompatSkill) FromMobile(Message) bool { return true }

// UtteranceUser returns the user msg was spoken by.
func (*CompatSkill) UtteranceUser(msg Message) string {
	if msg.Context != nil {
		if user := cast.ToString(msg.Context["username"]); user != "" {
			return user
		}
	}
	return localUser
}

// Preferences returns the flattened preference profile of the user.
func (c *CompatSkill) Preferences(ctx context.Context) (map[string]any, error) {
	if c.user == nil {
		return nil, errors.New("no user document configured")
	}
	return UserProfile(ctx, c.user)
}

// PreferenceSection returns one section of the user document, e.g. "units".
// A missing section yields an empty map.
func (c *CompatSkill) PreferenceSection(ctx context.Context, section string) (map[string]any, error) {
	if c.user == nil {
		return nil, errors.New("no user document configured")
	}
	v, err := c.user.Get(ctx, document.KeyPath{section}, map[string]any{})
	if err != nil {
		return nil, err
	}
	return cast.ToStringMapE(v)
}

// Speak forwards utterance to the host. Without an explicit speaker, the
// user's language and voice preferences are filled in.
func (c *CompatSkill) Speak(ctx context.Context, utterance string, opts port.SpeakOptions) error {
	opts = c.withDefaults(ctx, opts)
	return c.skill.Host.Speak(ctx, utterance, opts)
}

// SpeakDialog forwards a dialog rendering request to the host.
func (c *CompatSkill) SpeakDialog(ctx context.Context, key string, data map[string]string, opts port.SpeakOptions) error {
	opts = c.withDefaults(ctx, opts)
	if data == nil {
		data = map[string]string{}
	}
	return c.skill.Host.SpeakDialog(ctx, key, data, opts)
}

// CreateSignal raises "<skill>_<name>".
func (c *CompatSkill) CreateSignal(ctx context.Context, name string) error {
	if c.signals == nil {
		return errors.New("no signal registry configured")
	}
	return c.signals.Create(ctx, c.skill.SkillID+"_"+name)
}

// CheckSignal checks "<skill>_<name>" with the given lifetime.
func (c *CompatSkill) CheckSignal(ctx context.Context, name string, ttl time.Duration) (bool, error) {
	if c.signals == nil {
		return false, errors.New("no signal registry configured")
	}
	return c.signals.Check(ctx, c.skill.SkillID+"_"+name, ttl)
}

// ClearSignals removes every signal raised for the skill.
func (c *CompatSkill) ClearSignals(ctx context.Context) (int, error) {
	if c.signals == nil {
		return 0, errors.New("no signal registry configured")
	}
	return c.signals.Clear(ctx, c.skill.SkillID)
}

func (c *CompatSkill) withDefaults(ctx context.Context, opts port.SpeakOptions) port.SpeakOptions {
	if opts.Meta == nil {
		opts.Meta = map[string]any{}
	}
	if _, ok := opts.Meta["skill"]; !ok {
		opts.Meta["skill"] = c.skill.SkillID
	}
	if opts.Speaker != nil || c.user == nil {
		return opts
	}

	speech, err := c.PreferenceSection(ctx, "speech")
	if err != nil {
		logging.FromContext(ctx).Warn().Err(err).Str("skill", c.skill.SkillID).Msg("speaker preferences unavailable")
		return opts
	}
	speaker := map[string]string{}
	for _, key := range []string{"tts_language", "tts_gender", "neon_voice"} {
		if v := cast.ToString(speech[key]); v != "" {
			speaker[key] = v
		}
	}
	if len(speaker) > 0 {
		opts.Speaker = speaker
	}
	return opts
}
