// Package statcollect folds a flat stream of per application metrics, as
// emitted by host agents, into a per host report.
package statcollect

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"iter"

	"github.com/davecgh/go-spew/spew"
	"github.com/lightningnetwork/fp/either"
	"github.com/lightningnetwork/fp/fn"
	"github.com/lightningnetwork/fp/seq"
	"golang.org/x/exp/maps"
)

// ErrMissingField is returned when a decoded stat lacks one of its
// identifying fields.
var ErrMissingField = errors.New("stat is missing a field")

// Stat is a single sample: the value of one metric for one application on
// one host.
type Stat struct {
	Host        string `json:"host"`
	Application string `json:"application"`
	Key         string `json:"key"`
	Value       any    `json:"value"`
}

// AppStats holds every metric seen for one application on one host.
type AppStats struct {
	Application string
	Values      map[string]any
}

// MarshalJSON flattens the metrics next to the application name, which is
// the shape the report is consumed in.
func (a AppStats) MarshalJSON() ([]byte, error) {
	flat := make(map[string]any, len(a.Values)+1)
	maps.Copy(flat, a.Values)
	flat["application"] = a.Application

	return json.Marshal(flat)
}

// Report maps each host to its applications, in the order each application
// was first seen for that host.
type Report map[string][]AppStats

// Collect builds the report for stats. The input may be in any order. When a
// metric is reported twice for the same application the later value wins.
func Collect(stats []Stat) Report {
	var (
		report = make(Report)
		seen   = make(map[string]map[string]int)
	)
	for _, stat := range stats {
		apps, ok := seen[stat.Host]
		if !ok {
			apps = make(map[string]int)
			seen[stat.Host] = apps
		}

		i, ok := apps[stat.Application]
		if !ok {
			i = len(report[stat.Host])
			apps[stat.Application] = i
			report[stat.Host] = append(report[stat.Host], AppStats{
				Application: stat.Application,
				Values:      make(map[string]any),
			})
		}

		report[stat.Host][i].Values[stat.Key] = stat.Value
	}

	log.Debugf("Collected %d stats across %d hosts", len(stats),
		len(report))
	log.Tracef("Report: %v", newLogClosure(func() string {
		return spew.Sdump(report)
	}))

	return report
}

// CollectRuns builds the report in a single lazy pass by grouping runs of
// stats. It expects the stats of each host to be adjacent and, within a
// host, the stats of each application to be adjacent; on such input it
// agrees with Collect. An application that shows up in two separate runs
// is reported twice. A host that shows up in two separate runs keeps the
// applications of both, in run order.
func CollectRuns(stats iter.Seq[Stat]) Report {
	report := make(Report)
	for host, hostStats := range seq.GroupBy(byHost, stats) {
		runs := seq.GroupBy(byApplication, seq.FromSlice(hostStats))
		for app, appStats := range runs {
			report[host] = append(report[host], reduceApp(app, appStats))
		}

		log.Tracef("Host %v: %d stats", host, len(hostStats))
	}

	return report
}

func byHost(s Stat) string {
	return s.Host
}

func byApplication(s Stat) string {
	return s.Application
}

// reduceApp merges one application's stats into its key/value view.
func reduceApp(app string, stats []Stat) AppStats {
	values := seq.Fold(func(acc map[string]any, s Stat) map[string]any {
		acc[s.Key] = s.Value
		return acc
	}, make(map[string]any, len(stats)), seq.FromSlice(stats))

	return AppStats{Application: app, Values: values}
}

// validate checks that a stat names its host, application and key.
func validate(stat Stat) either.Either[error, Stat] {
	missing, ok := fn.Case(
		fn.When(func(s Stat) bool { return s.Host == "" },
			fn.Const[Stat]("host")),
		fn.When(func(s Stat) bool { return s.Application == "" },
			fn.Const[Stat]("application")),
		fn.When(func(s Stat) bool { return s.Key == "" },
			fn.Const[Stat]("key")),
	)(stat)
	if ok {
		return either.Left[Stat, error](fmt.Errorf("%w %q: %v",
			ErrMissingField, missing, fn.Repr(stat)))
	}

	return either.Right[error](stat)
}

// Decode reads a JSON array of stats from r and checks each one. The first
// invalid stat is reported.
func Decode(r io.Reader) ([]Stat, error) {
	var stats []Stat
	if err := json.NewDecoder(r).Decode(&stats); err != nil {
		return nil, fmt.Errorf("unable to decode stats: %w", err)
	}

	checked := either.MapM(validate, stats)
	err := either.Elim(checked, fn.Iden[error], fn.Const[[]Stat, error](nil))
	if err != nil {
		return nil, err
	}

	return checked.Default(nil), nil
}
