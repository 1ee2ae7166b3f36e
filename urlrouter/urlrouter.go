// Package urlrouter dispatches URLs to views by regular expression. The
// first rule whose pattern matches the start of a URL wins, and its view
// gets the pattern's capture groups. Routers nest: a router can serve as
// the view of a rule in another router.
package urlrouter

import (
	"fmt"
	"regexp"

	"github.com/lightningnetwork/fp/fn"
	"github.com/lightningnetwork/fp/maybe"
	"github.com/lightningnetwork/fp/seq"
	"github.com/prometheus/client_golang/prometheus"
)

const (
	// outcomeMatched labels routes that found a rule.
	outcomeMatched = "matched"

	// outcomeUnmatched labels routes that found no rule.
	outcomeUnmatched = "unmatched"
)

// View renders the page for a matched URL from the pattern's capture groups.
// A View that has nothing to render returns Nothing.
type View func(args ...string) maybe.Maybe[string]

// Text lifts a view that always renders.
func Text(f func(args ...string) string) View {
	return func(args ...string) maybe.Maybe[string] {
		return maybe.Just(f(args...))
	}
}

// Rule pairs a pattern with the view serving the URLs it matches.
type Rule struct {
	Pattern string
	View    View
}

type compiledRule struct {
	re   *regexp.Regexp
	view View
}

// match is a rule that matched, together with its capture groups.
type match struct {
	rule compiledRule
	args []string
}

// Router picks the view for a URL out of an ordered list of rules. It is a
// prometheus.Collector counting the URLs it routed, by whether a rule
// matched.
type Router struct {
	rules  []compiledRule
	routed *prometheus.CounterVec
}

// New compiles rules into a router. Patterns are anchored at the start of
// the URL but not at the end.
func New(rules ...Rule) (*Router, error) {
	compiled := make([]compiledRule, 0, len(rules))
	for _, rule := range rules {
		re, err := regexp.Compile("^(?:" + rule.Pattern + ")")
		if err != nil {
			return nil, fmt.Errorf("invalid pattern %q: %w",
				rule.Pattern, err)
		}

		compiled = append(compiled, compiledRule{
			re:   re,
			view: rule.View,
		})
	}

	return &Router{
		rules: compiled,
		routed: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "urlrouter_routes_total",
				Help: "Number of URLs routed, by outcome.",
			},
			[]string{"outcome"},
		),
	}, nil
}

// MustNew is New for rule tables known to be valid. It panics on a bad
// pattern.
func MustNew(rules ...Rule) *Router {
	r, err := New(rules...)
	if err != nil {
		panic(err)
	}

	return r
}

// Route renders url with the first matching rule, or is Nothing if no rule
// matches.
func (r *Router) Route(url string) maybe.Maybe[string] {
	tryRule := func(rule compiledRule) maybe.Maybe[match] {
		groups := rule.re.FindStringSubmatch(url)
		if groups == nil {
			return maybe.Nothing[match]()
		}

		return maybe.Just(match{rule: rule, args: groups[1:]})
	}

	selected := maybe.FromSeq(
		maybe.MapMaybes(tryRule, seq.FromSlice(r.rules)),
	)
	if selected.IsNothing() {
		log.Debugf("No route for %q", url)
		r.routed.WithLabelValues(outcomeUnmatched).Inc()
	} else {
		r.routed.WithLabelValues(outcomeMatched).Inc()
	}

	return maybe.Bind(selected, apply)
}

func apply(m match) maybe.Maybe[string] {
	log.Tracef("Routing with %v, args %v", m.rule.re, fn.Repr(m.args))

	return m.rule.view(m.args...)
}

// Handler turns the router into a view so it can be mounted under a rule of
// another router. The mounted router routes the first capture group of the
// outer rule, or the empty string if it has none.
func (r *Router) Handler() View {
	return func(args ...string) maybe.Maybe[string] {
		rest := maybe.FromSeq(seq.FromSlice(args)).Default("")
		return r.Route(rest)
	}
}

// Describe implements prometheus.Collector.
func (r *Router) Describe(ch chan<- *prometheus.Desc) {
	r.routed.Describe(ch)
}

// Collect implements prometheus.Collector.
func (r *Router) Collect(ch chan<- prometheus.Metric) {
	r.routed.Collect(ch)
}
