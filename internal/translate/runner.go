package translate

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/joonwoolee/subweave/internal/logging"
)

// Profile is one translation attempt configuration. Profiles are tried
// in order; a later profile is the fallback for an earlier one.
type Profile struct {
	Provider Provider
	Model    string
}

func (p Profile) String() string {
	if p.Model == "" {
		return string(p.Provider)
	}
	return fmt.Sprintf("%s/%s", p.Provider, p.Model)
}

// Attempt records the outcome of one profile.
type Attempt struct {
	Profile Profile
	Err     error
}

// Runner walks an ordered profile list until one attempt produces
// output that passes the validation gate. Every failed attempt is
// recorded; the runner never accepts partial output.
type Runner struct {
	Profiles []Profile
	New      func(ctx context.Context, p Profile) (Translator, error)
	Validate func(content string) error
	Timeout  time.Duration
	Logger   *logging.Logger
}

// ExhaustedError is returned when every profile has failed.
type ExhaustedError struct {
	Attempts []Attempt
}

func (e *ExhaustedError) Error() string {
	names := make([]string, len(e.Attempts))
	for i, a := range e.Attempts {
		names[i] = a.Profile.String()
	}
	return fmt.Sprintf(
		"translation failed after %d attempts (%s)",
		len(e.Attempts),
		strings.Join(names, ", "),
	)
}

// Run translates text with the first profile that yields valid output.
// It returns the accepted text and the trail of attempts made,
// including the successful one.
func (r *Runner) Run(ctx context.Context, text string) (string, []Attempt, error) {
	if len(r.Profiles) == 0 {
		return "", nil, fmt.Errorf("no translation profiles configured")
	}

	var attempts []Attempt

	for _, profile := range r.Profiles {
		if ctx.Err() != nil {
			return "", attempts, ctx.Err()
		}

		result, err := r.attempt(ctx, profile, text)
		attempts = append(attempts, Attempt{Profile: profile, Err: err})

		if err == nil {
			return result, attempts, nil
		}

		if r.Logger != nil {
			r.Logger.Warnw("Translation attempt failed",
				"profile", profile.String(),
				"error", err,
			)
		}
	}

	return "", attempts, &ExhaustedError{Attempts: attempts}
}

func (r *Runner) attempt(ctx context.Context, profile Profile, text string) (string, error) {
	translator, err := r.New(ctx, profile)
	if err != nil {
		return "", fmt.Errorf("create translator: %w", err)
	}

	if r.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.Timeout)
		defer cancel()
	}

	result, err := translator.Translate(ctx, text)
	if err != nil {
		return "", err
	}

	result = strings.TrimSpace(FilterNoise(result))

	if r.Validate != nil {
		if err := r.Validate(result); err != nil {
			return "", fmt.Errorf("validation: %w", err)
		}
	}

	return result, nil
}
