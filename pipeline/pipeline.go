package pipeline

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/hasbyte1/go-classic-ciphers/cipher"
)

// Option configures a [Pipeline] at construction time.
type Option func(*options)

type options struct {
	registry *Registry
	logger   *slog.Logger
}

// WithRegistry resolves stage names through r instead of
// [DefaultRegistry].
func WithRegistry(r *Registry) Option {
	return func(o *options) { o.registry = r }
}

// WithLogger makes the pipeline report construction and each applied stage
// at debug level, and hazardous stage combinations at warn level.  By
// default nothing is logged.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) { o.logger = l }
}

type step struct {
	name      Name
	key       string
	transform cipher.Transform
}

// Pipeline is an ordered, immutable chain of transforms.  It is safe for
// concurrent use.
type Pipeline struct {
	steps  []step
	logger *slog.Logger
}

// New builds a Pipeline from the enabled stages.  The order of stages does
// not matter: they are sorted into [EncryptOrder] before their keys are
// parsed, and the first invalid key in that order aborts construction.
//
// A pipeline without enabled stages returns text unchanged.
//
// Possible errors: [ErrUnknownTransform], [ErrDuplicateStage], and any error
// wrapping [cipher.ErrConfiguration].
func New(stages []Stage, opts ...Option) (*Pipeline, error) {
	o := options{registry: DefaultRegistry(), logger: slog.New(slog.NewTextHandler(io.Discard, nil))}
	for _, opt := range opts {
		opt(&o)
	}

	spec := Spec{Stages: stages}
	if err := spec.Validate(o.registry); err != nil {
		return nil, err
	}

	enabled := spec.Enabled()
	p := &Pipeline{steps: make([]step, 0, len(enabled)), logger: o.logger}
	for _, st := range enabled {
		t, err := o.registry.Build(st.Name, st.Key)
		if err != nil {
			return nil, fmt.Errorf("pipeline: stage %q: %w", st.Name, err)
		}
		p.steps = append(p.steps, step{name: st.Name, key: st.Key, transform: t})
	}

	p.warnCaseFolding()
	o.logger.Debug("pipeline built", "stages", p.Stages(), "fingerprint", p.Fingerprint())
	return p, nil
}

// Encrypt builds a pipeline from stages and encrypts text with it.
func Encrypt(text string, stages []Stage, opts ...Option) (string, error) {
	p, err := New(stages, opts...)
	if err != nil {
		return "", err
	}
	return p.Encrypt(text), nil
}

// Decrypt builds a pipeline from stages and decrypts text with it.
func Decrypt(text string, stages []Stage, opts ...Option) (string, error) {
	p, err := New(stages, opts...)
	if err != nil {
		return "", err
	}
	return p.Decrypt(text), nil
}

// Encrypt applies every stage in encryption order.
func (p *Pipeline) Encrypt(text string) string {
	for _, s := range p.steps {
		text = s.transform.Encrypt(text)
		p.logger.Debug("stage applied", "stage", s.name, "mode", cipher.Encrypt)
	}
	return text
}

// Decrypt applies the inverse of every stage in decryption order.
func (p *Pipeline) Decrypt(text string) string {
	for i := len(p.steps) - 1; i >= 0; i-- {
		s := p.steps[i]
		text = s.transform.Decrypt(text)
		p.logger.Debug("stage applied", "stage", s.name, "mode", cipher.Decrypt)
	}
	return text
}

// Apply runs the pipeline in the given direction.
func (p *Pipeline) Apply(mode cipher.Mode, text string) (string, error) {
	switch mode {
	case cipher.Encrypt:
		return p.Encrypt(text), nil
	case cipher.Decrypt:
		return p.Decrypt(text), nil
	default:
		return "", fmt.Errorf("%w: %s", cipher.ErrUnknownMode, mode)
	}
}

// Stages returns the names of the enabled stages in encryption order.
func (p *Pipeline) Stages() []Name {
	names := make([]Name, len(p.steps))
	for i, s := range p.steps {
		names[i] = s.name
	}
	return names
}

// Verify encrypts and decrypts text and reports [ErrNotReversible] when the
// result differs.  Case folding and the obfuscator's digit collisions are the
// usual causes.
func (p *Pipeline) Verify(text string) error {
	if got := p.Decrypt(p.Encrypt(text)); got != text {
		return fmt.Errorf("%w: %q came back as %q", ErrNotReversible, text, got)
	}
	return nil
}

// warnCaseFolding logs every case-folding stage that runs after the affine
// stage, which emits lowercase letters even for upper-case input.
func (p *Pipeline) warnCaseFolding() {
	mixed := false
	for _, s := range p.steps {
		if cf, ok := s.transform.(cipher.CaseFolder); ok && cf.FoldsCase() && mixed {
			p.logger.Warn("stage folds case of mixed-case input; decryption will not restore it",
				"stage", s.name)
		}
		if s.name == Affine {
			mixed = true
		}
	}
}
