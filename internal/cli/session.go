package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/rshade/ecostep/internal/footprint"
	"github.com/rshade/ecostep/internal/greenops"
	"github.com/rshade/ecostep/internal/logging"
)

const bannerRule = "============================================"

// Fixed session text.
const (
	ChoicePrompt = "Enter your choice by typing a letter (E - electronics / V - vehicles / H - household): "

	InvalidChoiceMessage = "Invalid choice. Please enter E, V or H."

	// equivalencyPeriod is the period the equivalency sentence refers to.
	equivalencyPeriod = "week"
)

// welcomeLines follow the opening rule of the banner.
//
//nolint:gochecknoglobals // Static banner text.
var welcomeLines = []string{
	"Welcome to EcoStep - Your Personal Carbon Footprint Calculator",
	bannerRule,
	"EcoStep helps you track and reduce your carbon footprint by estimating your CO2 emissions ",
	"from daily activities like electronics usage, vehicle fuel consumption and household energy use.",
	bannerRule,
	"LET'S TAKE A STEP TOWARDS A GREENER FUTURE!",
}

// Session is one pass of banner, category choice, quantity and report.
type Session struct {
	catalog     *footprint.Catalog
	prompter    *Prompter
	out         io.Writer
	render      Renderer
	equivalents bool
}

// SessionOption configures a Session.
type SessionOption func(*Session)

// WithEquivalents adds the weekly equivalency sentence after the tier line.
func WithEquivalents(enabled bool) SessionOption {
	return func(s *Session) {
		s.equivalents = enabled
	}
}

// NewSession creates a session reading answers from in and writing to out.
func NewSession(
	catalog *footprint.Catalog,
	in io.Reader,
	out io.Writer,
	render Renderer,
	opts ...SessionOption,
) *Session {
	s := &Session{
		catalog:  catalog,
		prompter: NewPrompter(in, out),
		out:      out,
		render:   render,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Run executes the session. An unrecognized category prints
// InvalidChoiceMessage and returns nil; unreadable input and a non-numeric
// quantity abort with an error.
func (s *Session) Run(ctx context.Context) error {
	log := logging.FromContext(ctx)

	s.printBanner()

	choice, err := s.prompter.Ask(ChoicePrompt)
	if err != nil {
		return err
	}

	category, ok := footprint.ParseCategory(choice)
	if !ok {
		log.Debug().Str("choice", choice).Msg("invalid category choice")
		fmt.Fprintln(s.out, InvalidChoiceMessage)
		return nil
	}

	return s.estimate(ctx, category)
}

func (s *Session) printBanner() {
	fmt.Fprintln(s.out, s.render.Heading(bannerRule))
	for _, line := range welcomeLines {
		fmt.Fprintln(s.out, s.render.Heading(line))
	}
}

func (s *Session) estimate(ctx context.Context, category footprint.Category) error {
	log := logging.FromContext(ctx)

	profile, err := s.catalog.Profile(category)
	if err != nil {
		return err
	}

	fmt.Fprintln(s.out)
	fmt.Fprintln(s.out, profile.Intro)

	answer, err := s.prompter.Ask(profile.Prompt)
	if err != nil {
		return err
	}
	quantity, err := footprint.ParseQuantity(answer)
	if err != nil {
		return err
	}

	result, err := s.catalog.Estimate(category, quantity)
	if err != nil {
		return err
	}
	log.Debug().
		Str("category", category.String()).
		Float64("quantity", quantity).
		Float64("daily_kg", result.DailyKg).
		Float64("weekly_kg", result.WeeklyKg).
		Str("tier", result.Tier.String()).
		Msg("footprint estimated")

	s.printResult(profile, result)
	if s.equivalents {
		s.printEquivalency(ctx, result.WeeklyKg)
	}
	s.printStrategies(profile)

	return nil
}

func (s *Session) printResult(p footprint.Profile, r footprint.Result) {
	fmt.Fprintf(s.out, "Your estimated carbon footprint from %s is %.2f kg CO2 per day.\n", p.Subject, r.DailyKg)
	fmt.Fprintf(s.out, "Your estimated carbon footprint from %s is %.2f kg CO2 per week.\n", p.Subject, r.WeeklyKg)

	line := fmt.Sprintf("Your %s carbon footprint is %s.", p.TierSubject, r.Tier.Label())
	fmt.Fprintln(s.out, s.render.Tier(line, r.Tier))
}

// printEquivalency prints the equivalency sentence. Negative footprints have
// no equivalency and are skipped.
func (s *Session) printEquivalency(ctx context.Context, weeklyKg float64) {
	out, err := greenops.Calculate(weeklyKg)
	if err != nil {
		log := logging.FromContext(ctx)
		log.Debug().Err(err).Float64("weekly_kg", weeklyKg).Msg("no equivalency")
		return
	}
	if sentence := out.Sentence(equivalencyPeriod); sentence != "" {
		fmt.Fprintln(s.out, sentence)
	}
}

func (s *Session) printStrategies(p footprint.Profile) {
	fmt.Fprintln(s.out)
	fmt.Fprintln(s.out, s.render.Heading(p.StrategyHeader))
	for _, strategy := range p.Strategies() {
		fmt.Fprintln(s.out, strategy)
	}
}
